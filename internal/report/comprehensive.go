package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/shuowang-ai/Weather-MCP/internal/classify"
)

// Comprehensive builds a multi-section report from one combined call.
// Section order is fixed: realtime, air quality, minutely (when present),
// hourly (when requested), 3-day daily, alerts (when requested), footer.
func (s *Service) Comprehensive(ctx context.Context, lng, lat float64, includeHourly, includeAlerts bool) (Outcome, error) {
	const op = "获取综合天气报告失败"

	endpoint, err := s.weatherURL(lng, lat, "weather")
	if err != nil {
		return Outcome{}, fail(op, err)
	}

	params := s.langParams()
	params.Set("dailysteps", "3")
	if includeHourly {
		params.Set("hourlysteps", "24")
	}
	if includeAlerts {
		params.Set("alert", "true")
	}

	env, err := s.client.Get(ctx, endpoint, params)
	if err != nil {
		return Outcome{}, fail(op, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s 综合天气报告:\n", s.icon("🌤️"))

	if rt := env.Result.Realtime; rt != nil {
		temp := rt.Temperature

		fmt.Fprintf(&b, "\n%s 当前天气:\n", s.icon("📍"))
		fmt.Fprintf(&b, "温度: %.1f°C", rt.Temperature)
		if rt.ApparentTemperature != nil {
			fmt.Fprintf(&b, " (体感 %.1f°C)", *rt.ApparentTemperature)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "天气现象: %s\n", classify.SkyconLabel(rt.Skycon))
		fmt.Fprintf(&b, "湿度: %d%% | 云量: %d%%\n",
			classify.SafePrecipProbability(rt.Humidity), classify.SafePrecipProbability(rt.Cloudrate))
		fmt.Fprintf(&b, "风: %.1f m/s @ %.0f°\n", rt.Wind.Speed, rt.Wind.Direction)
		fmt.Fprintf(&b, "气压: %.0f Pa | 能见度: %.1f km\n", rt.Pressure, rt.Visibility)
		if rt.Precipitation != nil {
			fmt.Fprintf(&b, "本地降水: %s\n",
				classify.PrecipIntensityLabel(rt.Precipitation.Local.Intensity, classify.DataRadar, &temp))
		}

		if aq := rt.AirQuality; aq != nil {
			label, _, icon := classify.AQILevel(aq.AQI.Chn)
			fmt.Fprintf(&b, "\n%s 空气质量:\n", s.icon("🏭"))
			fmt.Fprintf(&b, "PM2.5: %d μg/m³ | PM10: %d μg/m³\n", aq.PM25, aq.PM10)
			fmt.Fprintf(&b, "O3: %d μg/m³ | NO2: %d μg/m³ | SO2: %d μg/m³ | CO: %.1f mg/m³\n",
				aq.O3, aq.NO2, aq.SO2, aq.CO)
			fmt.Fprintf(&b, "AQI (中国): %d (%s %s) | AQI (美国): %d\n",
				aq.AQI.Chn, label, s.icon(icon), aq.AQI.Usa)
		}
	}

	if minutely := env.Result.Minutely; minutely != nil && minutely.Status == "ok" && minutely.Description != "" {
		fmt.Fprintf(&b, "\n%s 分钟级降水: %s\n", s.icon("🌧️"), minutely.Description)
	}

	if includeHourly {
		if hourly := env.Result.Hourly; hourly != nil && len(hourly.Temperature) > 0 {
			fmt.Fprintf(&b, "\n%s 未来24小时（间隔3小时）:\n", s.icon("🕐"))
			for i := 0; i < len(hourly.Temperature); i += 3 {
				line := fmt.Sprintf("%s: %.1f°C",
					displayTime(hourly.Temperature[i].Datetime), hourly.Temperature[i].Value)
				if i < len(hourly.Skycon) {
					line += ", " + classify.SkyconLabel(hourly.Skycon[i].Value)
				}
				if i < len(hourly.Precipitation) {
					line += fmt.Sprintf(", 降水概率 %d%%",
						classify.SafePrecipProbability(hourly.Precipitation[i].Probability))
				}
				b.WriteString(line + "\n")
			}
		}
	}

	if daily := env.Result.Daily; daily != nil && len(daily.Temperature) > 0 {
		fmt.Fprintf(&b, "\n%s 未来3天:\n", s.icon("📅"))
		for i := 0; i < len(daily.Temperature) && i < 3; i++ {
			t := daily.Temperature[i]
			line := fmt.Sprintf("%s: %.1f°C ~ %.1f°C", displayDate(t.Date), t.Min, t.Max)
			if i < len(daily.Skycon) {
				line += ", " + classify.SkyconLabel(daily.Skycon[i].Value)
			}
			if i < len(daily.Precipitation) {
				line += fmt.Sprintf(", 降水概率 %d%%",
					classify.SafePrecipProbability(daily.Precipitation[i].Probability))
			}
			b.WriteString(line + "\n")
		}
	}

	if includeAlerts {
		if alert := env.Result.Alert; alert != nil && len(alert.Content) > 0 {
			fmt.Fprintf(&b, "\n%s 生效中的气象预警: %d条\n", s.icon("⚠️"), len(alert.Content))
			shown := len(alert.Content)
			if shown > 3 {
				shown = 3
			}
			for _, a := range alert.Content[:shown] {
				fmt.Fprintf(&b, "• %s（%s）\n", a.Title, a.Status)
			}
		} else {
			fmt.Fprintf(&b, "\n%s 当前无生效中的气象预警。\n", s.icon("✅"))
		}
	}

	fmt.Fprintf(&b, "\n数据更新时间: %s | 来源: 彩云天气\n",
		classify.LocalTimeString(env.ServerTime, 8))

	return OK(b.String()), nil
}
