package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shuowang-ai/Weather-MCP/internal/caiyun"
	"github.com/shuowang-ai/Weather-MCP/internal/classify"
)

// HourlyForecast builds the hourly report for the next `hours` hours.
// Output is bounded by a display step: every hour for windows up to a
// day, every three hours beyond that.
func (s *Service) HourlyForecast(ctx context.Context, lng, lat float64, hours int) (Outcome, error) {
	const op = "获取小时级预报失败"

	hours = clamp(hours, 1, s.cfg.MaxHourlySteps)

	endpoint, err := s.weatherURL(lng, lat, "hourly")
	if err != nil {
		return Outcome{}, fail(op, err)
	}

	params := s.langParams()
	params.Set("hourlysteps", strconv.Itoa(hours))

	env, err := s.client.Get(ctx, endpoint, params)
	if err != nil {
		return Outcome{}, fail(op, err)
	}

	hourly := env.Result.Hourly
	if hourly == nil || len(hourly.Temperature) == 0 {
		return Unavailable("该位置暂无小时级预报数据。"), nil
	}

	step := 1
	if hours > 24 {
		step = 3
	}

	var b strings.Builder
	fmt.Fprintf(&b, "未来%d小时天气预报（间隔%d小时）:\n", hours, step)
	if hourly.Description != "" {
		fmt.Fprintf(&b, "概述: %s\n", hourly.Description)
	}

	for i := 0; i < len(hourly.Temperature); i += step {
		entry := hourly.Temperature[i]
		temp := entry.Value

		fmt.Fprintf(&b, "\n时间: %s\n", displayTime(entry.Datetime))
		fmt.Fprintf(&b, "温度: %.1f°C\n", temp)
		if i < len(hourly.ApparentTemperature) {
			fmt.Fprintf(&b, "体感温度: %.1f°C\n", hourly.ApparentTemperature[i].Value)
		}
		if i < len(hourly.Skycon) {
			fmt.Fprintf(&b, "天气: %s\n", classify.SkyconLabel(hourly.Skycon[i].Value))
		}
		if i < len(hourly.Precipitation) {
			p := hourly.Precipitation[i]
			fmt.Fprintf(&b, "降水概率: %d%%\n", classify.SafePrecipProbability(p.Probability))
			fmt.Fprintf(&b, "降水强度: %s\n", classify.PrecipIntensityLabel(p.Value, classify.DataHourly, &temp))
		}
		if i < len(hourly.Wind) {
			fmt.Fprintf(&b, "风: %.1f m/s, %.0f°\n", hourly.Wind[i].Speed, hourly.Wind[i].Direction)
		}
		b.WriteString(sectionDelimiter + "\n")
	}

	if s.cfg.ShowAirQualityTrends {
		if trend := airQualityTrend(hourly.AirQuality); trend != "" {
			b.WriteString("\n" + trend + "\n")
		}
	}

	return OK(b.String()), nil
}

// airQualityTrend compares the window's first and last AQI/PM2.5 values.
// A move of more than ±10 AQI points counts as a real change.
func airQualityTrend(aq *caiyun.HourlyAirQuality) string {
	if aq == nil || len(aq.AQI) < 2 {
		return ""
	}

	start := aq.AQI[0].Value.Chn
	end := aq.AQI[len(aq.AQI)-1].Value.Chn

	verdict := "基本稳定"
	switch {
	case end < start-10:
		verdict = "改善"
	case end > start+10:
		verdict = "转差"
	}

	line := fmt.Sprintf("空气质量趋势: AQI %d → %d（%s）", start, end, verdict)
	if len(aq.PM25) >= 2 {
		line += fmt.Sprintf(", PM2.5 %.0f → %.0f μg/m³",
			aq.PM25[0].Value, aq.PM25[len(aq.PM25)-1].Value)
	}
	return line
}

// displayTime strips the provider's zone suffix from ISO datetimes,
// e.g. "2025-08-25T14:00+08:00" -> "2025-08-25 14:00". Input it cannot
// recognize, including the empty string, passes through unchanged.
func displayTime(datetime string) string {
	trimmed := strings.TrimSuffix(datetime, "Z")
	if n := len(trimmed); n >= 6 && trimmed[n-3] == ':' && (trimmed[n-6] == '+' || trimmed[n-6] == '-') {
		trimmed = trimmed[:n-6]
	}
	return strings.ReplaceAll(trimmed, "T", " ")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
