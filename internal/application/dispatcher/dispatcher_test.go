package dispatcher

import (
	"context"
	"testing"

	"github.com/aescanero/legalgw/pkg/adapters/metrics/memory"
	"github.com/aescanero/legalgw/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubProvider struct {
	token string
	err   error
	calls int
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Token(ctx context.Context) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.token, nil
}

type stubSearch struct {
	answer    string
	err       error
	calls     int
	lastQuery string
	lastToken string
}

func (s *stubSearch) Search(ctx context.Context, query, token string) (string, error) {
	s.calls++
	s.lastQuery = query
	s.lastToken = token
	return s.answer, s.err
}

type stubAgent struct {
	answer    string
	err       error
	calls     int
	lastQuery string
	lastToken string
}

func (a *stubAgent) Ask(ctx context.Context, query, token string) (string, error) {
	a.calls++
	a.lastQuery = query
	a.lastToken = token
	return a.answer, a.err
}

func newTestDispatcher(provider *stubProvider, search *stubSearch, agent *stubAgent) (*Dispatcher, *memory.Collector) {
	metrics := memory.NewCollector()
	d := NewDispatcher(provider, search, agent, metrics, zap.NewNop())
	return d, metrics
}

func TestDispatch_BlankQuery(t *testing.T) {
	provider := &stubProvider{token: "tok"}
	search := &stubSearch{answer: "snippet"}
	agent := &stubAgent{answer: "answer"}
	d, _ := newTestDispatcher(provider, search, agent)

	for _, query := range []string{"", "   ", "\t\n"} {
		answer, err := d.Dispatch(context.Background(), query)
		require.Error(t, err)
		assert.Nil(t, answer)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Empty query.", validationErr.Message)
	}

	// Rejected before any credential or backend call
	assert.Zero(t, provider.calls)
	assert.Zero(t, search.calls)
	assert.Zero(t, agent.calls)
}

func TestDispatch_RoutesToSearch(t *testing.T) {
	provider := &stubProvider{token: "tok-123"}
	search := &stubSearch{answer: "NDA summary text"}
	agent := &stubAgent{answer: "unused"}
	d, metrics := newTestDispatcher(provider, search, agent)

	answer, err := d.Dispatch(context.Background(), "Can you summarize this NDA?")
	require.NoError(t, err)
	assert.Equal(t, "NDA summary text", answer.Text)
	assert.Equal(t, domain.RouteSearch, answer.Source)

	assert.Equal(t, "Can you summarize this NDA?", search.lastQuery)
	assert.Equal(t, "tok-123", search.lastToken)
	assert.Zero(t, agent.calls)

	assert.Equal(t, 1, metrics.Queries("vertex_search", "ok"))
	assert.Equal(t, 1, metrics.TokenRequests("stub", "ok"))
	assert.Len(t, metrics.Latencies("vertex_search"), 1)
}

func TestDispatch_RoutesToAgent(t *testing.T) {
	provider := &stubProvider{token: "tok-456"}
	search := &stubSearch{answer: "unused"}
	agent := &stubAgent{answer: "Sunny."}
	d, metrics := newTestDispatcher(provider, search, agent)

	answer, err := d.Dispatch(context.Background(), "What's the weather today?")
	require.NoError(t, err)
	assert.Equal(t, "Sunny.", answer.Text)
	assert.Equal(t, domain.RouteAgent, answer.Source)

	assert.Equal(t, "tok-456", agent.lastToken)
	assert.Zero(t, search.calls)
	assert.Equal(t, 1, metrics.Queries("deep_agent", "ok"))
}

func TestDispatch_TrimsQueryBeforeClassifying(t *testing.T) {
	provider := &stubProvider{token: "tok"}
	search := &stubSearch{answer: "snippet"}
	agent := &stubAgent{}
	d, _ := newTestDispatcher(provider, search, agent)

	_, err := d.Dispatch(context.Background(), "  show me the contract  ")
	require.NoError(t, err)
	assert.Equal(t, "show me the contract", search.lastQuery)
}

func TestDispatch_AuthFailure(t *testing.T) {
	authErr := &domain.AuthError{Provider: "stub", Err: assert.AnError}
	provider := &stubProvider{err: authErr}
	search := &stubSearch{}
	agent := &stubAgent{}
	d, metrics := newTestDispatcher(provider, search, agent)

	answer, err := d.Dispatch(context.Background(), "review this contract")
	require.Error(t, err)
	assert.Nil(t, answer)

	var gotErr *domain.AuthError
	require.ErrorAs(t, err, &gotErr)

	// The backend is never reached without a token
	assert.Zero(t, search.calls)
	assert.Equal(t, 1, metrics.TokenRequests("stub", "error"))
	assert.Equal(t, 1, metrics.Queries("vertex_search", "error"))
}

func TestDispatch_BackendFailure(t *testing.T) {
	provider := &stubProvider{token: "tok"}
	backendErr := &domain.BackendError{Route: domain.RouteAgent, Err: assert.AnError}
	agent := &stubAgent{err: backendErr}
	d, metrics := newTestDispatcher(provider, &stubSearch{}, agent)

	answer, err := d.Dispatch(context.Background(), "hello there")
	require.Error(t, err)
	assert.Nil(t, answer)

	var gotErr *domain.BackendError
	require.ErrorAs(t, err, &gotErr)
	assert.Equal(t, domain.RouteAgent, gotErr.Route)
	assert.Equal(t, 1, metrics.Queries("deep_agent", "error"))
}

func TestDispatch_FreshTokenPerDispatch(t *testing.T) {
	provider := &stubProvider{token: "tok"}
	agent := &stubAgent{answer: "hi"}
	d, _ := newTestDispatcher(provider, &stubSearch{}, agent)

	for i := 0; i < 3; i++ {
		_, err := d.Dispatch(context.Background(), "hello")
		require.NoError(t, err)
	}

	assert.Equal(t, 3, provider.calls)
}

func TestDispatch_InflightReturnsToZero(t *testing.T) {
	provider := &stubProvider{token: "tok"}
	agent := &stubAgent{answer: "hi"}
	d, metrics := newTestDispatcher(provider, &stubSearch{}, agent)

	_, err := d.Dispatch(context.Background(), "hello")
	require.NoError(t, err)
	assert.Zero(t, metrics.Inflight())
}
