package dispatcher

import (
	"strings"

	"github.com/aescanero/legalgw/pkg/domain"
)

// legalKeywords are the terms that route a query to the document search
// backend. Matching is substring-based on the lower-cased query, so a
// keyword embedded inside an unrelated word also matches; that coarseness
// is accepted behavior.
var legalKeywords = []string{
	"contract",
	"clause",
	"nda",
	"agreement",
	"policy",
	"legal",
	"document",
}

// Classify maps a query to its route. Deterministic and total: every
// string maps to exactly one route.
func Classify(query string) domain.Route {
	q := strings.ToLower(query)
	for _, keyword := range legalKeywords {
		if strings.Contains(q, keyword) {
			return domain.RouteSearch
		}
	}
	return domain.RouteAgent
}
