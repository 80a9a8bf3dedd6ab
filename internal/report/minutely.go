package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/shuowang-ai/Weather-MCP/internal/classify"
)

const minutelyUnavailableMsg = "该位置暂不支持分钟级降水预报（主要覆盖中国大陆地区）。"

// MinutelyPrecipitation builds the 2-hour nowcast: 5-minute-interval
// intensities for the first hour and half-hour probabilities for the
// full window. Locations outside the radar coverage short-circuit with
// an informative unavailable result instead of an error.
func (s *Service) MinutelyPrecipitation(ctx context.Context, lng, lat float64) (Outcome, error) {
	const op = "获取分钟级降水预报失败"

	endpoint, err := s.weatherURL(lng, lat, "minutely")
	if err != nil {
		return Outcome{}, fail(op, err)
	}

	env, err := s.client.Get(ctx, endpoint, s.langParams())
	if err != nil {
		return Outcome{}, fail(op, err)
	}

	minutely := env.Result.Minutely
	if minutely == nil || (minutely.Status != "" && minutely.Status != "ok") {
		return Unavailable(minutelyUnavailableMsg), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s 未来2小时分钟级降水预报:\n", s.icon("🌧️"))
	if minutely.Description != "" {
		fmt.Fprintf(&b, "预报描述: %s\n", minutely.Description)
	}
	if minutely.Datasource != "" {
		fmt.Fprintf(&b, "数据来源: %s\n", minutely.Datasource)
	}

	if len(minutely.Precipitation2h) > 0 {
		b.WriteString("\n第1小时降水强度（每5分钟）:\n")
		limit := len(minutely.Precipitation2h)
		if limit > 60 {
			limit = 60
		}
		for i := 0; i < limit; i += 5 {
			fmt.Fprintf(&b, "T+%2d分钟: %s\n", i,
				classify.PrecipIntensityLabel(minutely.Precipitation2h[i], classify.DataMinutely, nil))
		}
	}

	if len(minutely.Probability) > 0 {
		b.WriteString("\n2小时降水概率（每30分钟）:\n")
		for i, p := range minutely.Probability {
			fmt.Fprintf(&b, "%d-%d分钟: %d%%\n", i*30, (i+1)*30, classify.SafePrecipProbability(p))
		}
	}

	return OK(b.String()), nil
}
