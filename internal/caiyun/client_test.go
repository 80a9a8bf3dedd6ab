package caiyun

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shuowang-ai/Weather-MCP/internal/config"
)

func testConfig(baseURL string) *config.AppConfig {
	return &config.AppConfig{
		APIToken:      "test-token",
		APIBaseURL:    baseURL,
		Timeout:       2 * time.Second,
		MaxRetries:    3,
		RetryInterval: 5 * time.Millisecond,
		DefaultLang:   "zh_CN",
	}
}

func TestGetSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","api_version":"v2.6","result":{"realtime":{"status":"ok","temperature":20.5,"humidity":0.65}}}`))
	}))
	defer srv.Close()

	stats := NewStats()
	client := NewClient(testConfig(srv.URL), srv.Client(), stats)

	env, err := client.Get(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Status != "ok" {
		t.Fatalf("expected status ok, got %s", env.Status)
	}
	if env.Result.Realtime == nil {
		t.Fatal("expected realtime payload")
	}
	if env.Result.Realtime.Temperature != 20.5 {
		t.Fatalf("expected temperature 20.5, got %v", env.Result.Realtime.Temperature)
	}

	snap := stats.Snapshot()
	if snap.Total != 1 || snap.Success != 1 || snap.Failed != 0 {
		t.Fatalf("expected 1 successful attempt recorded, got %+v", snap)
	}
	if snap.AvgLatency <= 0 {
		t.Fatalf("expected positive average latency, got %v", snap.AvgLatency)
	}
}

func TestGetMissingToken(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.APIToken = ""
	client := NewClient(cfg, srv.Client(), NewStats())

	_, err := client.Get(context.Background(), srv.URL, nil)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatal("expected no network traffic without a token")
	}
}

func TestGetUnauthorizedNoRetry(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	stats := NewStats()
	client := NewClient(testConfig(srv.URL), srv.Client(), stats)

	_, err := client.Get(context.Background(), srv.URL, nil)
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected exactly 1 attempt for 401, got %d", got)
	}
	if snap := stats.Snapshot(); snap.Failed != 1 {
		t.Fatalf("expected 1 failed attempt recorded, got %+v", snap)
	}
}

func TestGetRateLimitExhaustsBackoff(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	stats := NewStats()
	client := NewClient(testConfig(srv.URL), srv.Client(), stats)

	_, err := client.Get(context.Background(), srv.URL, nil)
	var rateErr *RateLimitError
	if !errors.As(err, &rateErr) {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rateErr.Attempts != 3 {
		t.Fatalf("expected 3 attempts reported, got %d", rateErr.Attempts)
	}
	if got := atomic.LoadInt32(&hits); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
	if snap := stats.Snapshot(); snap.Failed != 3 {
		t.Fatalf("expected 3 failed attempts recorded, got %+v", snap)
	}
}

func TestGetProviderErrorAfterRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), srv.Client(), NewStats())

	_, err := client.Get(context.Background(), srv.URL, nil)
	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if provErr.Status != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", provErr.Status)
	}
}

func TestGetRetriesRecoverableStatus(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	stats := NewStats()
	client := NewClient(testConfig(srv.URL), srv.Client(), stats)

	env, err := client.Get(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("expected recovery on third attempt, got %v", err)
	}
	if env.Status != "ok" {
		t.Fatalf("expected status ok, got %s", env.Status)
	}
	snap := stats.Snapshot()
	if snap.Total != 3 || snap.Success != 1 || snap.Failed != 2 {
		t.Fatalf("expected 2 failures then 1 success, got %+v", snap)
	}
}

func TestGetTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Timeout = 30 * time.Millisecond
	stats := NewStats()
	client := NewClient(cfg, srv.Client(), stats)

	_, err := client.Get(context.Background(), srv.URL, nil)
	var toErr *TimeoutError
	if !errors.As(err, &toErr) {
		t.Fatalf("expected TimeoutError, got %v", err)
	}
	if toErr.Attempts != 3 {
		t.Fatalf("expected 3 attempts reported, got %d", toErr.Attempts)
	}
	if snap := stats.Snapshot(); snap.Failed != 3 {
		t.Fatalf("expected 3 failed attempts recorded, got %+v", snap)
	}
}

func TestGetDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": truncated`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), srv.Client(), NewStats())

	_, err := client.Get(context.Background(), srv.URL, nil)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Unwrap() == nil {
		t.Fatal("expected wrapped cause")
	}
}

func TestGetCancelDuringWait(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.RetryInterval = 5 * time.Second
	client := NewClient(cfg, srv.Client(), NewStats())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.Get(ctx, srv.URL, nil)
	if err == nil {
		t.Fatal("expected error after cancellation")
	}
	if time.Since(start) > time.Second {
		t.Fatal("expected cancellation to cut the retry wait short")
	}
}

func TestGetAppendsQueryParams(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), srv.Client(), NewStats())

	params := url.Values{}
	params.Set("lang", "zh_CN")
	params.Set("dailysteps", "7")
	if _, err := client.Get(context.Background(), srv.URL, params); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery.Get("lang") != "zh_CN" || gotQuery.Get("dailysteps") != "7" {
		t.Fatalf("expected query params forwarded, got %v", gotQuery)
	}
}

func TestEndpointURL(t *testing.T) {
	cfg := testConfig("https://api.example.com/v2.6")
	client := NewClient(cfg, http.DefaultClient, NewStats())

	got := client.EndpointURL("tok", 116.4074, 39.9042, "realtime")
	want := "https://api.example.com/v2.6/tok/116.4074,39.9042/realtime"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
