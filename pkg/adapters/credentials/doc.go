// Package credentials provides bearer-token acquisition for outbound
// backend calls.
//
// Implementations:
//   - metadata: instance metadata server token endpoint (production)
//   - gcloud: local gcloud CLI (development)
//
// Tokens are acquired fresh on every dispatch. There is no caching:
// the extra latency is accepted to avoid stale-token bugs.
package credentials
