package caiyun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/shuowang-ai/Weather-MCP/internal/config"
)

// ErrNoStation is returned when the secondary provider knows no
// monitoring station near the requested coordinate.
var ErrNoStation = errors.New("no monitoring station near the requested coordinate")

// StationForecastEntry is one hours-indexed pollutant forecast record.
type StationForecastEntry struct {
	Date string  `json:"date"`
	AQI  int     `json:"aqi"`
	PM25 int     `json:"pm25"`
	PM10 int     `json:"pm10"`
	O3   int     `json:"o3"`
	SO2  int     `json:"so2"`
	NO2  int     `json:"no2"`
	CO   float64 `json:"co"`
}

// Station is one nearby monitoring station with its forecast series.
type Station struct {
	Name     string                 `json:"name"`
	Lng      float64                `json:"longitude"`
	Lat      float64                `json:"latitude"`
	Forecast []StationForecastEntry `json:"forecast"`
}

type stationResponse struct {
	Status   string    `json:"status"`
	Stations []Station `json:"stations"`
}

// StationClient talks to the secondary, geographically-indexed pollutant
// provider. Its callers treat failures as optional data, so the client is
// wrapped in a circuit breaker to stop hammering a dead endpoint.
type StationClient struct {
	cfg     *config.AppConfig
	http    *http.Client
	stats   *Stats
	circuit *gobreaker.CircuitBreaker
}

func NewStationClient(cfg *config.AppConfig, httpClient *http.Client, stats *Stats) *StationClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "station-forecast",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &StationClient{
		cfg:     cfg,
		http:    httpClient,
		stats:   stats,
		circuit: cb,
	}
}

// Nearby returns stations close to the coordinate with an hours-long
// forecast each. Returns ErrNoStation when the provider has nothing near
// the point.
func (sc *StationClient) Nearby(ctx context.Context, lng, lat float64, hours int) ([]Station, error) {
	if sc.cfg.APIToken == "" {
		return nil, &ConfigError{Reason: config.ErrNoToken.Error()}
	}

	values := url.Values{}
	values.Set("token", sc.cfg.APIToken)
	values.Set("longitude", strconv.FormatFloat(lng, 'f', -1, 64))
	values.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("hours", strconv.Itoa(hours))

	fullURL := sc.cfg.StationAPIURL + "?" + values.Encode()

	start := time.Now()
	result, err := sc.circuit.Execute(func() (interface{}, error) {
		attemptCtx, cancel := context.WithTimeout(ctx, sc.cfg.Timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, err
		}

		resp, err := sc.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &ProviderError{Status: resp.StatusCode}
		}

		var payload stationResponse
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, fmt.Errorf("decode station response: %w", err)
		}
		return payload.Stations, nil
	})
	sc.stats.Record(err == nil, time.Since(start))

	if err != nil {
		return nil, err
	}

	stations, ok := result.([]Station)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	if len(stations) == 0 {
		return nil, ErrNoStation
	}
	return stations, nil
}
