// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - Query dispatch (POST /chat)
//   - The embedded chat widget page (GET /)
//   - Health checks
//   - Prometheus metrics
package http
