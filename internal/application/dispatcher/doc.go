// Package dispatcher implements the routing core of the gateway.
//
// Each query is handled independently:
//   - Classify the query into a route by keyword matching
//   - Acquire a fresh access token from the credential provider
//   - Invoke the routed backend client
//   - Return the answer, or a typed error for the API layer to map
//
// There is no shared mutable state between dispatches and exactly two
// terminal outcomes per invocation: an answer or an error.
package dispatcher
