package dispatcher

import (
	"context"
	"strings"
	"time"

	"github.com/aescanero/legalgw/pkg/domain"
	"github.com/aescanero/legalgw/pkg/ports"
	"go.uber.org/zap"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// Dispatcher routes queries to the matching backend. Each dispatch is
// self-contained: classify, acquire a fresh token, call the routed
// backend, return the answer or a typed error. No retries, no fallback
// to the other backend.
type Dispatcher struct {
	credentials ports.CredentialProvider
	search      ports.SearchBackend
	agent       ports.AgentBackend
	metrics     ports.MetricsCollector
	logger      *zap.Logger
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(
	credentials ports.CredentialProvider,
	search ports.SearchBackend,
	agent ports.AgentBackend,
	metrics ports.MetricsCollector,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		credentials: credentials,
		search:      search,
		agent:       agent,
		metrics:     metrics,
		logger:      logger,
	}
}

// Dispatch handles a single query end to end. A blank query is rejected
// with a ValidationError before any credential or backend call.
func (d *Dispatcher) Dispatch(ctx context.Context, query string) (*domain.Answer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &domain.ValidationError{Message: "Empty query."}
	}

	d.metrics.IncInflight()
	defer d.metrics.DecInflight()

	route := Classify(query)

	token, err := d.credentials.Token(ctx)
	if err != nil {
		d.metrics.RecordTokenRequest(d.credentials.Name(), statusError)
		d.metrics.RecordQuery(route.String(), statusError)
		d.logger.Error("token acquisition failed",
			zap.String("provider", d.credentials.Name()),
			zap.Error(err))
		return nil, err
	}
	d.metrics.RecordTokenRequest(d.credentials.Name(), statusOK)

	start := time.Now()

	var text string
	switch route {
	case domain.RouteSearch:
		text, err = d.search.Search(ctx, query, token)
	default:
		text, err = d.agent.Ask(ctx, query, token)
	}

	duration := time.Since(start)
	d.metrics.ObserveBackendLatency(route.String(), duration)

	if err != nil {
		d.metrics.RecordQuery(route.String(), statusError)
		d.logger.Error("backend call failed",
			zap.String("route", route.String()),
			zap.Duration("duration", duration),
			zap.Error(err))
		return nil, err
	}

	d.metrics.RecordQuery(route.String(), statusOK)
	d.logger.Info("query dispatched",
		zap.String("route", route.String()),
		zap.Duration("duration", duration))

	return &domain.Answer{Text: text, Source: route}, nil
}
