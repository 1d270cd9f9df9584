package retell

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"autopilot/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, apiKey string, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Retell: &config.RetellConfig{
			APIKey:  apiKey,
			BaseURL: server.URL,
		},
	}
	client, ok := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*Client)
	require.True(t, ok)

	return client
}

func TestClient_ListCalls_Success(t *testing.T) {
	client := newTestClient(t, "key-123", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/list-calls", r.URL.Path)
		require.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"limit":20,"sort_order":"descending"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"call_id":"call_1","agent_id":"agent_9","call_status":"ended","duration_ms":60000},
			{"call_id":"call_2","agent_id":"agent_9","call_status":"ended","duration_ms":30000}
		]`))
	}))

	outcome := client.ListCalls(context.Background(), 20)

	assert.False(t, outcome.Degraded)
	require.Len(t, outcome.Value, 2)
	assert.Equal(t, "call_1", outcome.Value[0].CallID)
	assert.EqualValues(t, 60000, outcome.Value[0].DurationMs)
}

func TestClient_ListCalls_MissingAPIKeyServesMock(t *testing.T) {
	client := newTestClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("upstream must not be called without an API key")
		w.WriteHeader(http.StatusInternalServerError)
	}))

	outcome := client.ListCalls(context.Background(), 20)

	assert.True(t, outcome.Degraded)
	assert.Equal(t, mockCalls, outcome.Value)
}

func TestClient_ListCalls_UpstreamErrorServesMock(t *testing.T) {
	client := newTestClient(t, "key-123", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
	}))

	outcome := client.ListCalls(context.Background(), 20)

	assert.True(t, outcome.Degraded)
	assert.Equal(t, mockCalls, outcome.Value)
}

func TestClient_ListCalls_MalformedBodyServesMock(t *testing.T) {
	client := newTestClient(t, "key-123", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}))

	outcome := client.ListCalls(context.Background(), 20)

	assert.True(t, outcome.Degraded)
	assert.Equal(t, mockCalls, outcome.Value)
}
