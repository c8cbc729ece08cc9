// Package ports defines the capability interfaces between the dispatcher
// and its adapters.
//
// Interfaces:
//   - CredentialProvider: bearer-token acquisition (metadata or gcloud)
//   - SearchBackend: document search calls
//   - AgentBackend: reasoning agent calls
//   - MetricsCollector: gateway metrics
package ports
