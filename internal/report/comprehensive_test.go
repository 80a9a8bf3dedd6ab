package report

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

const comprehensivePayload = `{
	"status": "ok",
	"server_time": 1704110400,
	"result": {
		"realtime": {
			"status": "ok",
			"temperature": 18.0,
			"apparent_temperature": 17.0,
			"humidity": 0.55,
			"cloudrate": 0.2,
			"skycon": "CLEAR_DAY",
			"visibility": 20.0,
			"pressure": 101300,
			"wind": {"speed": 2.0, "direction": 90},
			"air_quality": {
				"pm25": 20, "pm10": 40, "o3": 60, "so2": 5, "no2": 18, "co": 0.5,
				"aqi": {"chn": 40, "usa": 55}
			}
		},
		"minutely": {
			"status": "ok",
			"description": "未来两小时无降水"
		},
		"hourly": {
			"status": "ok",
			"temperature": [
				{"datetime": "2024-01-01T20:00+08:00", "value": 18.0},
				{"datetime": "2024-01-01T21:00+08:00", "value": 17.0},
				{"datetime": "2024-01-01T22:00+08:00", "value": 16.0},
				{"datetime": "2024-01-01T23:00+08:00", "value": 15.0}
			],
			"skycon": [
				{"datetime": "2024-01-01T20:00+08:00", "value": "CLEAR_NIGHT"},
				{"datetime": "2024-01-01T21:00+08:00", "value": "CLEAR_NIGHT"},
				{"datetime": "2024-01-01T22:00+08:00", "value": "CLEAR_NIGHT"},
				{"datetime": "2024-01-01T23:00+08:00", "value": "CLEAR_NIGHT"}
			]
		},
		"daily": {
			"status": "ok",
			"temperature": [
				{"date": "2024-01-01T00:00+08:00", "max": 20.0, "min": 10.0},
				{"date": "2024-01-02T00:00+08:00", "max": 21.0, "min": 11.0},
				{"date": "2024-01-03T00:00+08:00", "max": 19.0, "min": 9.0}
			],
			"skycon": [
				{"date": "2024-01-01T00:00+08:00", "value": "CLEAR_DAY"},
				{"date": "2024-01-02T00:00+08:00", "value": "PARTLY_CLOUDY_DAY"},
				{"date": "2024-01-03T00:00+08:00", "value": "LIGHT_RAIN"}
			]
		},
		"alert": {
			"status": "ok",
			"content": [
				{"title": "大雾橙色预警", "status": "预警中"}
			]
		}
	}
}`

func TestComprehensive(t *testing.T) {
	var gotQuery url.Values
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		serveJSON(comprehensivePayload)(w, r)
	})

	out, err := svc.Comprehensive(context.Background(), 116.4, 39.9, true, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery.Get("dailysteps") != "3" || gotQuery.Get("hourlysteps") != "24" || gotQuery.Get("alert") != "true" {
		t.Fatalf("unexpected query: %v", gotQuery)
	}

	text := out.Text()
	sections := []string{
		"综合天气报告",
		"当前天气",
		"温度: 18.0°C (体感 17.0°C)",
		"空气质量",
		"AQI (中国): 40 (优",
		"分钟级降水: 未来两小时无降水",
		"未来24小时（间隔3小时）",
		"未来3天",
		"2024-01-01: 10.0°C ~ 20.0°C, 晴（白天）",
		"生效中的气象预警: 1条",
		"• 大雾橙色预警（预警中）",
		"数据更新时间: 2024-01-01 20:00+08:00 | 来源: 彩云天气",
	}
	// The report keeps a fixed section order.
	last := -1
	for _, section := range sections {
		idx := strings.Index(text, section)
		if idx < 0 {
			t.Fatalf("expected %q in report:\n%s", section, text)
		}
		if idx < last {
			t.Fatalf("section %q out of order:\n%s", section, text)
		}
		last = idx
	}
}

func TestComprehensiveMinimal(t *testing.T) {
	var gotQuery url.Values
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		serveJSON(comprehensivePayload)(w, r)
	})

	out, err := svc.Comprehensive(context.Background(), 116.4, 39.9, false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery.Has("hourlysteps") || gotQuery.Has("alert") {
		t.Fatalf("expected optional params omitted, got %v", gotQuery)
	}

	text := out.Text()
	if strings.Contains(text, "未来24小时") {
		t.Fatal("expected hourly section omitted")
	}
	if strings.Contains(text, "气象预警") {
		t.Fatal("expected alert section omitted")
	}
	if !strings.Contains(text, "未来3天") {
		t.Fatal("expected the 3-day section always present")
	}
}
