package vertexsearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aescanero/legalgw/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(srv.URL, 3, 30*time.Second, zap.NewNop())
}

func TestSearch_ReturnsTopSnippet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "summarize this NDA", req["query"])
		assert.Equal(t, float64(3), req["pageSize"])

		_, _ = w.Write([]byte(`{"results":[{"snippet":"NDA summary text"},{"snippet":"ignored"}]}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv).Search(context.Background(), "summarize this NDA", "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "NDA summary text", got)
}

func TestSearch_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv).Search(context.Background(), "anything", "tok")
	require.NoError(t, err)
	assert.Equal(t, "No matching documents were found in the legal index.", got)
}

func TestSearch_ResultsFieldAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv).Search(context.Background(), "anything", "tok")
	require.NoError(t, err)
	assert.Equal(t, NoDocumentsAnswer, got)
}

func TestSearch_MissingSnippet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"document":{"id":"doc-1"}}]}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv).Search(context.Background(), "anything", "tok")
	require.NoError(t, err)
	assert.Equal(t, "Found documents, but no snippet was available.", got)
}

func TestSearch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Search(context.Background(), "anything", "tok")
	var backendErr *domain.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, domain.RouteSearch, backendErr.Route)
	assert.Contains(t, backendErr.Error(), "502")
}

func TestSearch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Search(context.Background(), "anything", "tok")
	var backendErr *domain.BackendError
	require.ErrorAs(t, err, &backendErr)
}

func TestSearch_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestClient(srv).Search(context.Background(), "anything", "tok")
	var backendErr *domain.BackendError
	require.ErrorAs(t, err, &backendErr)
}
