package clover

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"autopilot/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Clover: &config.CloverConfig{
			AppID:     "app-id",
			AppSecret: "app-secret",
			BaseURL:   server.URL,
			TokenURL:  server.URL + "/oauth/token",
		},
	}
	client, ok := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*Client)
	require.True(t, ok)

	return client, server
}

func TestClient_ExchangeCode_Success(t *testing.T) {
	var gotBody string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/oauth/token", r.URL.Path)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-123","merchant_id":"M1"}`))
	}))

	grant, err := client.ExchangeCode(context.Background(), "auth-code")

	require.NoError(t, err)
	assert.Equal(t, "tok-123", grant.AccessToken)
	assert.Equal(t, "M1", grant.MerchantID)
	assert.Contains(t, gotBody, "client_id=app-id")
	assert.Contains(t, gotBody, "client_secret=app-secret")
	assert.Contains(t, gotBody, "code=auth-code")
}

func TestClient_ExchangeCode_NonOKStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"invalid code"}`, http.StatusBadRequest)
	}))

	grant, err := client.ExchangeCode(context.Background(), "expired-code")

	require.Error(t, err)
	assert.Nil(t, grant)
	assert.Contains(t, err.Error(), "status 400")
}

func TestClient_ExchangeCode_MissingAccessToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"merchant_id":"M1"}`))
	}))

	grant, err := client.ExchangeCode(context.Background(), "auth-code")

	require.Error(t, err)
	assert.Nil(t, grant)
}

func TestClient_MerchantInfo_Success(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/merchants/M1", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"M1","name":"Corner Cafe"}`))
	}))

	outcome := client.MerchantInfo(context.Background(), "M1", "tok")

	assert.False(t, outcome.Degraded)
	assert.Equal(t, "Corner Cafe", outcome.Value.Name)
}

func TestClient_MerchantInfo_UpstreamFailureFallsBack(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	outcome := client.MerchantInfo(context.Background(), "M1", "tok")

	assert.True(t, outcome.Degraded)
	assert.Equal(t, "Valued Merchant", outcome.Value.Name)
}

func TestClient_MerchantInfo_CachesWithinTTL(t *testing.T) {
	var hits atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"M1","name":"Corner Cafe"}`))
	}))

	current := time.Now()
	client.now = func() time.Time { return current }

	first := client.MerchantInfo(context.Background(), "M1", "tok")
	second := client.MerchantInfo(context.Background(), "M1", "tok")

	assert.Equal(t, first.Value, second.Value)
	assert.EqualValues(t, 1, hits.Load(), "second call within TTL must be served from cache")

	// Advance past the TTL: the next call hits upstream again.
	current = current.Add(merchantInfoTTL + time.Minute)
	third := client.MerchantInfo(context.Background(), "M1", "tok")

	assert.False(t, third.Degraded)
	assert.EqualValues(t, 2, hits.Load())
}

func TestClient_MerchantInfo_FallbackIsNotCached(t *testing.T) {
	var hits atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)

			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"M1","name":"Corner Cafe"}`))
	}))

	first := client.MerchantInfo(context.Background(), "M1", "tok")
	second := client.MerchantInfo(context.Background(), "M1", "tok")

	assert.True(t, first.Degraded)
	assert.False(t, second.Degraded, "a degraded result must not poison the cache")
	assert.Equal(t, "Corner Cafe", second.Value.Name)
}

func TestClient_DailyStats_ReducesOrders(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/merchants/M1/orders", r.URL.Path)
		require.Equal(t, "100", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"elements":[{"total":1000},{"total":2500}]}`))
	}))

	outcome := client.DailyStats(context.Background(), "M1", "tok")

	assert.False(t, outcome.Degraded)
	assert.Equal(t, 35.00, outcome.Value.Total)
	assert.Equal(t, 2, outcome.Value.Count)
}

func TestClient_DailyStats_EmptyOrders(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"elements":[]}`))
	}))

	outcome := client.DailyStats(context.Background(), "M1", "tok")

	assert.False(t, outcome.Degraded)
	assert.Zero(t, outcome.Value.Total)
	assert.Zero(t, outcome.Value.Count)
}

func TestClient_DailyStats_UpstreamFailureFallsBack(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))

	outcome := client.DailyStats(context.Background(), "M1", "tok")

	assert.True(t, outcome.Degraded)
	assert.Zero(t, outcome.Value.Total)
	assert.Zero(t, outcome.Value.Count)
}

func TestClient_FetchCustomers_Success(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/merchants/M1/customers", r.URL.Path)
		require.Equal(t, "1000", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"elements":[
			{"id":"C1","firstName":"Ada","lastName":"Lovelace",
			 "emailAddresses":[{"emailAddress":"ada@example.com"}],
			 "phoneNumbers":[{"phoneNumber":"+15551230001"}]},
			{"id":"C2","firstName":"Bob","lastName":"Martin"}
		]}`))
	}))

	customers, err := client.FetchCustomers(context.Background(), "M1", "tok", 1000)

	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "C1", customers[0].ID)
	assert.Equal(t, "M1", customers[0].MerchantID)
	assert.Equal(t, "ada@example.com", customers[0].Email)
	assert.Equal(t, "+15551230001", customers[0].PhoneNumber)
	assert.Empty(t, customers[1].Email)
	assert.Empty(t, customers[1].PhoneNumber)
}

func TestClient_FetchCustomers_UpstreamFailureIsHardError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	customers, err := client.FetchCustomers(context.Background(), "M1", "tok", 1000)

	require.Error(t, err)
	assert.Nil(t, customers)
}
