package domain

// Answer is the result of a successful dispatch
type Answer struct {
	Text   string
	Source Route
}

// AnswerEnvelope is the uniform response body returned to the caller.
// Source is omitted on error responses.
type AnswerEnvelope struct {
	Answer string `json:"answer"`
	Source string `json:"source,omitempty"`
}

// Envelope converts an answer into its response envelope
func (a *Answer) Envelope() AnswerEnvelope {
	return AnswerEnvelope{
		Answer: a.Text,
		Source: a.Source.String(),
	}
}
