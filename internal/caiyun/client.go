package caiyun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shuowang-ai/Weather-MCP/internal/config"
)

// Client is the request engine for the primary weather provider. It owns
// URL construction, the retry/backoff policy, and per-attempt statistics.
type Client struct {
	cfg   *config.AppConfig
	http  *http.Client
	stats *Stats
}

// NewClient creates a Client sharing the given HTTP client and stats.
func NewClient(cfg *config.AppConfig, httpClient *http.Client, stats *Stats) *Client {
	return &Client{
		cfg:   cfg,
		http:  httpClient,
		stats: stats,
	}
}

// Stats exposes the shared statistics record for the stats tool.
func (c *Client) Stats() *Stats { return c.stats }

// EndpointURL builds the provider path /{token}/{lng},{lat}/{endpoint}.
func (c *Client) EndpointURL(token string, lng, lat float64, endpoint string) string {
	return fmt.Sprintf("%s/%s/%s,%s/%s",
		c.cfg.APIBaseURL,
		token,
		strconv.FormatFloat(lng, 'f', -1, 64),
		strconv.FormatFloat(lat, 'f', -1, 64),
		endpoint,
	)
}

// Get fetches one provider document, retrying per the engine policy:
//   - timeout: wait RetryInterval, retry; exhausted -> TimeoutError
//   - 401: AuthError immediately, no retry
//   - 429: wait RetryInterval * 2^attempt, retry; exhausted -> RateLimitError
//   - other non-2xx: wait RetryInterval, retry; exhausted -> ProviderError
//   - transport/decode: same schedule, final failure wraps the cause
//
// Every attempt, success or failure, is recorded in Stats with its elapsed
// wall-clock time.
func (c *Client) Get(ctx context.Context, rawURL string, params url.Values) (*Envelope, error) {
	if c.cfg.APIToken == "" {
		return nil, &ConfigError{Reason: config.ErrNoToken.Error()}
	}

	attempts := c.cfg.MaxRetries
	if attempts <= 0 {
		attempts = 1
	}

	fullURL := rawURL
	if len(params) > 0 {
		fullURL = rawURL + "?" + params.Encode()
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		start := time.Now()
		env, status, err := c.attempt(ctx, fullURL)
		elapsed := time.Since(start)

		if err == nil && status >= 200 && status < 300 {
			c.stats.Record(true, elapsed)
			return env, nil
		}
		c.stats.Record(false, elapsed)
		lastErr = err

		last := attempt == attempts-1

		switch {
		case isTimeout(err):
			log.Printf("caiyun: attempt %d/%d timed out after %v", attempt+1, attempts, elapsed)
			if last {
				return nil, &TimeoutError{Attempts: attempts}
			}
			if werr := c.wait(ctx, c.cfg.RetryInterval); werr != nil {
				return nil, werr
			}

		case status == http.StatusUnauthorized:
			// A bad token stays bad; retrying cannot help.
			return nil, &AuthError{}

		case status == http.StatusTooManyRequests:
			if last {
				return nil, &RateLimitError{Attempts: attempts}
			}
			backoff := c.cfg.RetryInterval * time.Duration(1<<uint(attempt+1))
			log.Printf("caiyun: rate limited, backing off %v before attempt %d", backoff, attempt+2)
			if werr := c.wait(ctx, backoff); werr != nil {
				return nil, werr
			}

		case status != 0:
			log.Printf("caiyun: attempt %d/%d got status %d", attempt+1, attempts, status)
			if last {
				return nil, &ProviderError{Status: status}
			}
			if werr := c.wait(ctx, c.cfg.RetryInterval); werr != nil {
				return nil, werr
			}

		default:
			log.Printf("caiyun: attempt %d/%d failed: %v", attempt+1, attempts, err)
			if last {
				return nil, &RequestError{Cause: err}
			}
			if werr := c.wait(ctx, c.cfg.RetryInterval); werr != nil {
				return nil, werr
			}
		}
	}

	// Unreachable with attempts >= 1; kept for completeness.
	return nil, &RequestError{Cause: lastErr}
}

// attempt performs a single HTTP GET with the per-attempt timeout and
// decodes the envelope. A non-2xx status is reported through the status
// return, not the error.
func (c *Client) attempt(ctx context.Context, fullURL string) (*Envelope, int, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, 0, fmt.Errorf("decode response: %w", err)
	}
	return &env, resp.StatusCode, nil
}

// wait sleeps without blocking other invocations and honors cancellation.
func (c *Client) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
