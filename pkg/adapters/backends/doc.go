// Package backends groups the outbound backend client implementations.
//
// Implementations:
//   - vertexsearch: document search over the legal index
//   - deepagent: stateless reasoning agent sessions
//
// Both clients speak plain authenticated JSON over HTTP and surface all
// failures as domain.BackendError.
package backends
