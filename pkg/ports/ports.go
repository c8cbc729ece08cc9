package ports

import (
	"context"
	"time"
)

// CredentialProvider acquires a bearer token for outbound backend calls.
// Tokens are acquired fresh on every dispatch; implementations must not
// cache them.
type CredentialProvider interface {
	// Name returns the provider identifier (e.g. "metadata", "gcloud")
	Name() string

	// Token returns a bearer token, or an AuthError if the underlying
	// identity source is unreachable or returns a non-success status
	Token(ctx context.Context) (string, error)
}

// SearchBackend queries the document search service and returns the
// snippet of the top result
type SearchBackend interface {
	Search(ctx context.Context, query, token string) (string, error)
}

// AgentBackend sends a stateless conversational query to the reasoning
// agent service and returns its textual answer
type AgentBackend interface {
	Ask(ctx context.Context, query, token string) (string, error)
}

// MetricsCollector records gateway metrics
type MetricsCollector interface {
	RecordQuery(route, status string)
	RecordTokenRequest(provider, status string)
	ObserveBackendLatency(route string, duration time.Duration)
	IncInflight()
	DecInflight()
}
