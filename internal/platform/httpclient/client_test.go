package httpclient_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-business-service/internal/platform/config"
	"github.com/jsamuelsen11/go-business-service/internal/platform/httpclient"
)

func testConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL:     baseURL,
		ServiceName: "business-api",
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func newClient(cfg *config.ClientConfig) *httpclient.Client {
	return httpclient.New(cfg, cfg.ServiceName, nil, slog.New(slog.DiscardHandler))
}

// call sends method to path on c and returns the status (0 without a
// response), the body read from it, and the error from Do.
func call(t *testing.T, ctx context.Context, c *httpclient.Client, method, path, body string) (int, string, error) {
	t.Helper()

	var rdr io.Reader = http.NoBody
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL()+path, rdr)
	require.NoError(t, err)

	resp, err := c.Do(ctx, req)
	if resp == nil {
		return 0, "", err
	}
	defer func() { _ = resp.Body.Close() }()
	b, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	return resp.StatusCode, string(b), err
}

// scripted serves the statuses in order, repeating the last one, and counts
// the requests it saw.
func scripted(t *testing.T, statuses ...int) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := int(calls.Add(1))
		status := statuses[min(n, len(statuses))-1]
		w.WriteHeader(status)
		_, _ = io.WriteString(w, http.StatusText(status))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestDo_Success(t *testing.T) {
	t.Parallel()

	srv, calls := scripted(t, http.StatusOK)

	status, body, err := call(t, context.Background(), newClient(testConfig(srv.URL)), http.MethodGet, "/api/v1/orders", "")

	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "OK", body)
	require.Equal(t, int32(1), calls.Load())
}

func TestDo_RetriesRetryableStatuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		statuses  []int
		wantCalls int32
	}{
		{name: "5xx then ok", statuses: []int{500, 502, 200}, wantCalls: 3},
		{name: "429 then ok", statuses: []int{429, 200}, wantCalls: 2},
		{name: "4xx is final", statuses: []int{409}, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, calls := scripted(t, tt.statuses...)

			status, _, err := call(t, context.Background(), newClient(testConfig(srv.URL)), http.MethodGet, "/api/v1/orders/7", "")

			require.NoError(t, err)
			require.Equal(t, tt.statuses[len(tt.statuses)-1], status)
			require.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestDo_ExhaustedRetriesReturnLastResponse(t *testing.T) {
	t.Parallel()

	srv, calls := scripted(t, http.StatusServiceUnavailable)

	status, body, err := call(t, context.Background(), newClient(testConfig(srv.URL)), http.MethodDelete, "/api/v1/orders/7", "")

	require.ErrorContains(t, err, "HTTP 503 from business-api")
	require.Equal(t, http.StatusServiceUnavailable, status)
	require.Equal(t, "Service Unavailable", body, "last body stays readable")
	require.Equal(t, int32(3), calls.Load())
}

func TestDo_ReplaysBodyOnRetry(t *testing.T) {
	t.Parallel()

	var (
		mu     sync.Mutex
		bodies []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(b))
		first := len(bodies) == 1
		mu.Unlock()
		if first {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	payload := `{"id":7,"total":1250,"version":"v2"}`
	status, _, err := call(t, context.Background(), newClient(testConfig(srv.URL)), http.MethodPut, "/api/v1/orders/7", payload)

	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, []string{payload, payload}, bodies)
}

func TestDo_PostSentOnce(t *testing.T) {
	t.Parallel()

	srv, calls := scripted(t, http.StatusServiceUnavailable)

	status, _, err := call(t, context.Background(), newClient(testConfig(srv.URL)), http.MethodPost, "/api/v1/orders", `{"total":1}`)

	require.Error(t, err)
	require.Equal(t, http.StatusServiceUnavailable, status)
	require.Equal(t, int32(1), calls.Load())
}

func TestDo_HonorsRetryAfter(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.Retry.InitialInterval = 10 * time.Second
	cfg.Retry.MaxInterval = 10 * time.Second

	start := time.Now()
	status, _, err := call(t, context.Background(), newClient(cfg), http.MethodGet, "/api/v1/customers", "")

	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Less(t, time.Since(start), 5*time.Second, "Retry-After: 0 replaces the 10s backoff")
}

func TestDo_PropagatesRequestHeaders(t *testing.T) {
	t.Parallel()

	got := make(chan http.Header, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	ctx := httpclient.WithRequestID(context.Background(), "req-123")
	ctx = httpclient.WithCorrelationID(ctx, "corr-456")

	_, _, err := call(t, ctx, newClient(testConfig(srv.URL)), http.MethodGet, "/api/v1/orders", "")
	require.NoError(t, err)

	h := <-got
	require.Equal(t, "req-123", h.Get("X-Request-ID"))
	require.Equal(t, "corr-456", h.Get("X-Correlation-ID"))
}

func TestDo_NoIDHeadersWithoutContextValues(t *testing.T) {
	t.Parallel()

	got := make(chan http.Header, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	_, _, err := call(t, context.Background(), newClient(testConfig(srv.URL)), http.MethodGet, "/api/v1/orders", "")
	require.NoError(t, err)

	h := <-got
	require.Empty(t, h.Get("X-Request-ID"))
	require.Empty(t, h.Get("X-Correlation-ID"))
}

func TestDo_CircuitBreakerLifecycle(t *testing.T) {
	t.Parallel()

	var failing atomic.Bool
	failing.Store(true)
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	cfg.Retry.MaxAttempts = 1
	c := newClient(cfg)
	ctx := context.Background()

	require.NoError(t, c.HealthCheck(ctx))

	_, _, err := call(t, ctx, c, http.MethodGet, "/api/v1/orders/1", "")
	require.Error(t, err)

	// Open: rejected without reaching the server.
	before := calls.Load()
	status, _, err := call(t, ctx, c, http.MethodGet, "/api/v1/orders/1", "")
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	require.Zero(t, status)
	require.Equal(t, before, calls.Load())
	require.ErrorContains(t, c.HealthCheck(ctx), "failing")

	// Half-open after the breaker timeout.
	time.Sleep(150 * time.Millisecond)
	require.ErrorContains(t, c.HealthCheck(ctx), "degraded")

	// A successful probe closes it again.
	failing.Store(false)
	status, _, err = call(t, ctx, c, http.MethodGet, "/api/v1/orders/1", "")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, c.HealthCheck(ctx))
}

func TestDo_CanceledContext(t *testing.T) {
	t.Parallel()

	srv, calls := scripted(t, http.StatusOK)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	c := newClient(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for range 3 {
		_, _, err := call(t, ctx, c, http.MethodGet, "/api/v1/orders/1", "")
		require.True(t, errors.Is(err, context.Canceled), "err = %v", err)
	}

	require.Zero(t, calls.Load())
	require.NoError(t, c.HealthCheck(context.Background()), "canceled calls must not trip the breaker")
}

func TestDo_RateLimitWaitHonorsContext(t *testing.T) {
	t.Parallel()

	srv, calls := scripted(t, http.StatusOK)

	cfg := testConfig(srv.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1}
	c := newClient(cfg)

	_, _, err := call(t, context.Background(), c, http.MethodGet, "/api/v1/orders", "")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, _, err = call(t, ctx, c, http.MethodGet, "/api/v1/orders", "")

	require.Error(t, err, "second call exceeds the burst and cannot wait long enough")
	require.Equal(t, int32(1), calls.Load())
}

func TestClient_Identity(t *testing.T) {
	t.Parallel()

	c := newClient(testConfig("http://orders.internal:8081"))

	require.Equal(t, "business-api", c.Name())
	require.Equal(t, "http://orders.internal:8081", c.BaseURL())
}
