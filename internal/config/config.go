package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrNoToken is returned when a tool needs the provider token and none is configured.
var ErrNoToken = errors.New("API token not configured; set CAIYUN_WEATHER_API_TOKEN")

type AppConfig struct {
	// Provider credentials and endpoints.
	APIToken      string
	APIBaseURL    string
	StationAPIURL string

	// Outbound request behaviour.
	Timeout       time.Duration
	MaxRetries    int
	RetryInterval time.Duration // base wait between retries; 429 backoff is RetryInterval * 2^attempt
	DefaultLang   string

	// Provider limits.
	MaxHourlySteps   int
	MaxDailySteps    int
	MaxMinutelyHours int

	// Report rendering flags.
	UseEmoji             bool
	ShowAirQualityTrends bool
	ShowLifeIndices      bool

	// Operational sidecar.
	Port             string
	StatsLogInterval time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.APIToken = os.Getenv("CAIYUN_WEATHER_API_TOKEN")
	cfg.APIBaseURL = getenvDefault("CAIYUN_API_BASE_URL", "https://api.caiyunapp.com/v2.6")
	cfg.StationAPIURL = getenvDefault("KNOWAIR_STATION_API_URL", "https://air.knowair.net/v1/stations")

	timeout, err := time.ParseDuration(getenvDefault("KNOWAIR_HTTP_TIMEOUT", "30s"))
	if err != nil {
		return nil, errors.New("invalid KNOWAIR_HTTP_TIMEOUT: " + err.Error())
	}
	cfg.Timeout = timeout

	retryWait, err := time.ParseDuration(getenvDefault("KNOWAIR_RETRY_INTERVAL", "1s"))
	if err != nil {
		return nil, errors.New("invalid KNOWAIR_RETRY_INTERVAL: " + err.Error())
	}
	cfg.RetryInterval = retryWait

	cfg.MaxRetries = getenvInt("KNOWAIR_MAX_RETRIES", 3)
	cfg.DefaultLang = getenvDefault("KNOWAIR_LANG", "zh_CN")

	// Provider limits: 15-day horizons for hourly and daily forecasts.
	cfg.MaxHourlySteps = getenvInt("KNOWAIR_MAX_HOURLY_STEPS", 360)
	cfg.MaxDailySteps = getenvInt("KNOWAIR_MAX_DAILY_STEPS", 15)
	cfg.MaxMinutelyHours = getenvInt("KNOWAIR_MAX_MINUTELY_HOURS", 2)

	cfg.UseEmoji = getenvBool("KNOWAIR_USE_EMOJI", true)
	cfg.ShowAirQualityTrends = getenvBool("KNOWAIR_SHOW_AQ_TRENDS", true)
	cfg.ShowLifeIndices = getenvBool("KNOWAIR_SHOW_LIFE_INDICES", true)

	cfg.Port = getenvDefault("PORT", "8080")

	statsInterval, err := time.ParseDuration(getenvDefault("KNOWAIR_STATS_LOG_INTERVAL", "15m"))
	if err != nil {
		return nil, errors.New("invalid KNOWAIR_STATS_LOG_INTERVAL: " + err.Error())
	}
	cfg.StatsLogInterval = statsInterval

	return cfg, nil
}

// ValidateToken returns the configured token or ErrNoToken.
// A missing token is non-fatal at startup but fails every tool call that needs it.
func (c *AppConfig) ValidateToken() (string, error) {
	if c.APIToken == "" {
		return "", ErrNoToken
	}
	return c.APIToken, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
