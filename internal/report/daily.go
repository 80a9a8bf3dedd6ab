package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shuowang-ai/Weather-MCP/internal/caiyun"
	"github.com/shuowang-ai/Weather-MCP/internal/classify"
)

// DailyForecast builds the per-day report for the next `days` days.
func (s *Service) DailyForecast(ctx context.Context, lng, lat float64, days int) (Outcome, error) {
	const op = "获取逐日预报失败"

	days = clamp(days, 1, s.cfg.MaxDailySteps)

	endpoint, err := s.weatherURL(lng, lat, "daily")
	if err != nil {
		return Outcome{}, fail(op, err)
	}

	params := s.langParams()
	params.Set("dailysteps", strconv.Itoa(days))

	env, err := s.client.Get(ctx, endpoint, params)
	if err != nil {
		return Outcome{}, fail(op, err)
	}

	daily := env.Result.Daily
	if daily == nil || len(daily.Temperature) == 0 {
		return Unavailable("该位置暂无逐日预报数据。"), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "未来%d天天气预报:\n", days)

	for i := 0; i < len(daily.Temperature) && i < days; i++ {
		b.WriteString("\n")
		b.WriteString(s.formatDay(daily, i))
		b.WriteString(sectionDelimiter + "\n")
	}

	return OK(b.String()), nil
}

// formatDay renders one daily section, starting with the date line.
// Missing sub-series simply drop their line.
func (s *Service) formatDay(daily *caiyun.Daily, i int) string {
	var b strings.Builder

	temp := daily.Temperature[i]
	fmt.Fprintf(&b, "%s 日期: %s\n", s.icon("📅"), displayDate(temp.Date))
	fmt.Fprintf(&b, "温度: %.1f°C ~ %.1f°C\n", temp.Min, temp.Max)

	// Day/night split when the provider carries the 08h-20h windows.
	if i < len(daily.Skycon08h) && i < len(daily.Skycon20h) {
		fmt.Fprintf(&b, "白天: %s, 夜间: %s\n",
			classify.SkyconLabel(daily.Skycon08h[i].Value),
			classify.SkyconLabel(daily.Skycon20h[i].Value))
	} else if i < len(daily.Skycon) {
		fmt.Fprintf(&b, "天气: %s\n", classify.SkyconLabel(daily.Skycon[i].Value))
	}

	if i < len(daily.Precipitation) {
		fmt.Fprintf(&b, "降水概率: %d%%\n", classify.SafePrecipProbability(daily.Precipitation[i].Probability))
	}
	if i < len(daily.Wind) {
		fmt.Fprintf(&b, "平均风速: %.1f m/s (风向 %.0f°)\n", daily.Wind[i].Avg.Speed, daily.Wind[i].Avg.Direction)
	}
	if i < len(daily.Humidity) {
		fmt.Fprintf(&b, "平均湿度: %d%%\n", classify.SafePrecipProbability(daily.Humidity[i].Avg))
	}

	if aq := daily.AirQuality; aq != nil {
		if i < len(aq.AQI) {
			label, _, icon := classify.AQILevel(aq.AQI[i].Avg.Chn)
			fmt.Fprintf(&b, "空气质量: AQI 平均 %d (%s %s)", aq.AQI[i].Avg.Chn, label, s.icon(icon))
			if i < len(aq.PM25) {
				fmt.Fprintf(&b, ", PM2.5 平均 %.0f μg/m³", aq.PM25[i].Avg)
			}
			b.WriteString("\n")
		}
	}

	if i < len(daily.Astro) {
		fmt.Fprintf(&b, "日出: %s, 日落: %s\n", daily.Astro[i].Sunrise.Time, daily.Astro[i].Sunset.Time)
	}

	if s.cfg.ShowLifeIndices {
		if line := lifeIndexLine(daily.LifeIndex, i); line != "" {
			fmt.Fprintf(&b, "生活指数: %s\n", line)
		}
	}

	return b.String()
}

// lifeIndexLine concatenates whichever daily life indices are present.
func lifeIndexLine(li *caiyun.DailyLifeIndex, i int) string {
	if li == nil {
		return ""
	}

	var parts []string
	add := func(name, indexType string, entries []caiyun.DailyIndex) {
		if i >= len(entries) {
			return
		}
		parts = append(parts, name+": "+dailyIndexLabel(indexType, entries[i]))
	}

	add("紫外线", "ultraviolet_daily", li.Ultraviolet)
	add("穿衣", "dressing", li.Dressing)
	add("舒适度", "comfort", li.Comfort)
	add("感冒", "coldRisk", li.ColdRisk)
	add("洗车", "carWashing", li.CarWashing)

	return strings.Join(parts, " | ")
}

// dailyIndexLabel reconciles the provider's textual description with the
// standard table when the numeric level parses.
func dailyIndexLabel(indexType string, entry caiyun.DailyIndex) string {
	if level, err := strconv.Atoi(entry.Index); err == nil {
		return classify.LifeIndexLabel(indexType, level)
	}
	if entry.Desc != "" {
		return entry.Desc
	}
	return "N/A"
}

// displayDate keeps the date part of an ISO datetime.
func displayDate(date string) string {
	if idx := strings.Index(date, "T"); idx >= 0 {
		return date[:idx]
	}
	return date
}
