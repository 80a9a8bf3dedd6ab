package caiyun

import "fmt"

// The request engine classifies every terminal failure into one of the
// types below so callers can distinguish "retrying cannot help" from
// "the provider is having a bad day" with errors.As.

// ConfigError reports a request that could not be attempted at all.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return e.Reason }

// AuthError reports a 401 from the provider. Never retried.
type AuthError struct{}

func (e *AuthError) Error() string {
	return "invalid API token; check CAIYUN_WEATHER_API_TOKEN"
}

// RateLimitError reports a 429 that survived the backoff schedule.
type RateLimitError struct {
	Attempts int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("provider rate limit exceeded after %d attempts", e.Attempts)
}

// TimeoutError reports that every attempt ran out of time.
type TimeoutError struct {
	Attempts int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %d attempts", e.Attempts)
}

// ProviderError reports a non-2xx status other than 401/429.
type ProviderError struct {
	Status int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d", e.Status)
}

// RequestError wraps transport or decode failures that exhausted retries.
type RequestError struct {
	Cause error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("weather data request failed: %v", e.Cause)
}

func (e *RequestError) Unwrap() error { return e.Cause }
