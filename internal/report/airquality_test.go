package report

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

// aqHandler routes the three upstream calls the merged forecast makes.
func aqHandler(stationBody string) http.HandlerFunc {
	const realtimeBody = `{
		"status": "ok",
		"result": {
			"realtime": {
				"status": "ok",
				"temperature": 20.0,
				"air_quality": {
					"pm25": 30, "pm10": 50,
					"aqi": {"chn": 55, "usa": 60}
				}
			}
		}
	}`
	// Dates line up with the station buckets below.
	const dailyBody = `{
		"status": "ok",
		"result": {
			"daily": {
				"status": "ok",
				"temperature": [{"date": "2024-01-01T00:00+08:00"}, {"date": "2024-01-02T00:00+08:00"}],
				"air_quality": {
					"aqi": [
						{"date": "2024-01-01T00:00+08:00", "avg": {"chn": 50}},
						{"date": "2024-01-02T00:00+08:00", "avg": {"chn": 90}}
					],
					"pm25": [
						{"date": "2024-01-01T00:00+08:00", "avg": 25},
						{"date": "2024-01-02T00:00+08:00", "avg": 60}
					]
				}
			}
		}
	}`
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/stations"):
			serveJSON(stationBody)(w, r)
		case strings.HasSuffix(r.URL.Path, "/realtime"):
			serveJSON(realtimeBody)(w, r)
		default:
			serveJSON(dailyBody)(w, r)
		}
	}
}

func TestAirQualityForecast(t *testing.T) {
	// Station timestamps are UTC; 1704038400 is 2023-12-31 16:00 UTC,
	// which buckets to 2024-01-01 after the China +8h alignment.
	svc := newTestService(t, aqHandler(`{
		"status": "ok",
		"stations": [
			{
				"name": "城区站",
				"longitude": 116.4,
				"latitude": 39.9,
				"forecast": [
					{"date": "1704038400", "aqi": 52, "pm25": 28, "pm10": 48, "o3": 30},
					{"date": "1704124800", "aqi": 88, "pm25": 58, "pm10": 78, "o3": 50}
				]
			}
		]
	}`))

	out, err := svc.AirQualityForecast(context.Background(), 116.4, 39.9, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := out.Text()

	wants := []string{
		"空气质量预报（2天）",
		"当前: AQI 55 (良",
		"PM2.5 30 μg/m³ (优秀",
		"2024-01-01: AQI 平均 50 (优",
		"2024-01-02: AQI 平均 90 (良",
		"[站点: PM10 48, O3 30]",
		"[站点: PM10 78, O3 50]",
		"趋势: AQI +40, PM2.5 +35, PM10 +30, O3 +20",
		"最佳: 2024-01-01 (AQI 50), 最差: 2024-01-02 (AQI 90)",
		"健康建议:",
	}
	for _, want := range wants {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in report:\n%s", want, text)
		}
	}
}

func TestAirQualityForecastStationFailureIsSoft(t *testing.T) {
	svc := newTestService(t, aqHandler(`{"status":"ok","stations":[]}`))

	out, err := svc.AirQualityForecast(context.Background(), 116.4, 39.9, 2)
	if err != nil {
		t.Fatalf("station outage must not fail the report, got: %v", err)
	}
	text := out.Text()
	if strings.Contains(text, "[站点:") {
		t.Fatalf("expected no station annotations, got:\n%s", text)
	}
	if !strings.Contains(text, "趋势: AQI +40") {
		t.Fatalf("expected grid trend to survive, got:\n%s", text)
	}
}

func TestAirQualityForecastUnavailable(t *testing.T) {
	svc := newTestService(t, serveJSON(`{"status":"ok","result":{}}`))

	out, err := svc.AirQualityForecast(context.Background(), 116.4, 39.9, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.IsUnavailable() {
		t.Fatal("expected unavailable without a daily air-quality block")
	}
}
