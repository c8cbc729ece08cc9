// Package domain defines the core types of the gateway.
//
// A query is classified into a Route, dispatched to the matching backend,
// and the result is returned to the caller as an AnswerEnvelope. Failures
// are reported through the typed errors in errors.go so the API layer can
// map them to HTTP status codes.
package domain
