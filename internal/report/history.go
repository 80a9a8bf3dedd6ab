package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shuowang-ai/Weather-MCP/internal/classify"
)

// Historical builds the back-window report for the past `hoursBack`
// hours using the hourly endpoint with a computed begin timestamp.
// Step is every two hours for windows up to a day, three beyond.
func (s *Service) Historical(ctx context.Context, lng, lat float64, hoursBack int) (Outcome, error) {
	const op = "获取历史天气失败"

	hoursBack = clamp(hoursBack, 1, s.cfg.MaxHourlySteps)

	endpoint, err := s.weatherURL(lng, lat, "hourly")
	if err != nil {
		return Outcome{}, fail(op, err)
	}

	begin := time.Now().Add(-time.Duration(hoursBack) * time.Hour).Unix()

	params := s.langParams()
	params.Set("hourlysteps", strconv.Itoa(hoursBack))
	params.Set("begin", strconv.FormatInt(begin, 10))

	env, err := s.client.Get(ctx, endpoint, params)
	if err != nil {
		return Outcome{}, fail(op, err)
	}

	hourly := env.Result.Hourly
	if hourly == nil || len(hourly.Temperature) == 0 {
		return Unavailable("该位置暂无历史天气数据。"), nil
	}

	step := 2
	if hoursBack > 24 {
		step = 3
	}

	var b strings.Builder
	fmt.Fprintf(&b, "过去%d小时天气（间隔%d小时）:\n", hoursBack, step)

	for i := 0; i < len(hourly.Temperature); i += step {
		entry := hourly.Temperature[i]
		temp := entry.Value

		fmt.Fprintf(&b, "\n时间: %s\n", displayTime(entry.Datetime))
		fmt.Fprintf(&b, "温度: %.1f°C\n", temp)
		if i < len(hourly.Skycon) {
			fmt.Fprintf(&b, "天气: %s\n", classify.SkyconLabel(hourly.Skycon[i].Value))
		}
		if i < len(hourly.Precipitation) {
			fmt.Fprintf(&b, "降水强度: %s\n",
				classify.PrecipIntensityLabel(hourly.Precipitation[i].Value, classify.DataHourly, &temp))
		}
		b.WriteString(sectionDelimiter + "\n")
	}

	return OK(b.String()), nil
}
