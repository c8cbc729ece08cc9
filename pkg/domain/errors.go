package domain

import "fmt"

// ValidationError reports a request rejected before any backend call.
// It maps to a 400 response and is never logged as a system fault.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthError reports a failure to acquire an access token
type AuthError struct {
	Provider string
	Err      error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("token acquisition failed (%s): %v", e.Provider, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// BackendError reports a failed call to one of the backends: transport
// failure, non-2xx status, or an unparsable response body
type BackendError struct {
	Route Route
	Err   error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend call failed (%s): %v", e.Route, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
