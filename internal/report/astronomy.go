package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shuowang-ai/Weather-MCP/internal/classify"
)

// Astronomy builds the sunrise/sunset/moon report for the next `days`
// days. Moon data is tolerated absent; sun times should always be there.
func (s *Service) Astronomy(ctx context.Context, lng, lat float64, days int) (Outcome, error) {
	const op = "获取天文信息失败"

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
	if daily == nil || len(daily.Astro) == 0 {
		return Unavailable("该位置暂无天文数据。"), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s 天文信息（未来%d天）:\n", s.icon("🌅"), days)

	for i, astro := range daily.Astro {
		if i >= days {
			break
		}

		fmt.Fprintf(&b, "\n%s %s:\n", s.icon("📅"), displayDate(astro.Date))
		fmt.Fprintf(&b, "%s 日出 %s | 日落 %s", s.icon("☀️"), astro.Sunrise.Time, astro.Sunset.Time)
		if daylight, ok := daylightDuration(astro.Sunrise.Time, astro.Sunset.Time); ok {
			fmt.Fprintf(&b, " | 昼长 %s", daylight)
		}
		b.WriteString("\n")

		if astro.Moonrise != nil && astro.Moonset != nil {
			fmt.Fprintf(&b, "%s 月出 %s | 月落 %s\n", s.icon("🌙"), astro.Moonrise.Time, astro.Moonset.Time)
		}
		if astro.MoonPhase != "" {
			fmt.Fprintf(&b, "月相: %s\n", classify.MoonPhaseLabel(astro.MoonPhase))
		}
		if astro.MoonIllumination != nil {
			fmt.Fprintf(&b, "月面照明: %d%%\n", classify.SafePrecipProbability(*astro.MoonIllumination))
		}
		b.WriteString(sectionDelimiter + "\n")
	}

	b.WriteString("\n说明: 日出日落为当地时间；月相与月出月落数据并非所有地区可用。\n")

	return OK(b.String()), nil
}

// daylightDuration computes sunset minus sunrise for "HH:MM" times.
func daylightDuration(sunrise, sunset string) (string, bool) {
	rise, err1 := time.Parse("15:04", sunrise)
	set, err2 := time.Parse("15:04", sunset)
	if err1 != nil || err2 != nil || !set.After(rise) {
		return "", false
	}
	d := set.Sub(rise)
	return fmt.Sprintf("%d小时%d分钟", int(d.Hours()), int(d.Minutes())%60), true
}
