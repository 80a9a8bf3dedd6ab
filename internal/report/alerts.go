package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/shuowang-ai/Weather-MCP/internal/classify"
)

// Alerts builds the active-warnings report. With no alerts in effect the
// report still names the covered administrative region when the provider
// identifies one.
func (s *Service) Alerts(ctx context.Context, lng, lat float64) (Outcome, error) {
	const op = "获取天气预警失败"

	endpoint, err := s.weatherURL(lng, lat, "weather")
	if err != nil {
		return Outcome{}, fail(op, err)
	}

	params := s.langParams()
	params.Set("alert", "true")

	env, err := s.client.Get(ctx, endpoint, params)
	if err != nil {
		return Outcome{}, fail(op, err)
	}

	alert := env.Result.Alert
	if alert == nil || len(alert.Content) == 0 {
		if alert != nil && len(alert.AdCodes) > 0 {
			names := make([]string, 0, len(alert.AdCodes))
			for _, ad := range alert.AdCodes {
				if ad.Name != "" {
					names = append(names, ad.Name)
				}
			}
			if len(names) > 0 {
				return OK(fmt.Sprintf("%s（%s）当前无生效中的气象预警。",
					s.icon("✅"), strings.Join(names, "/"))), nil
			}
		}
		return OK(s.icon("✅") + " 当前无生效中的气象预警。"), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s 气象预警（%d条）:\n", s.icon("⚠️"), len(alert.Content))

	for _, a := range alert.Content {
		fmt.Fprintf(&b, "\n标题: %s\n", orNA(a.Title))
		fmt.Fprintf(&b, "状态: %s\n", orNA(a.Status))
		fmt.Fprintf(&b, "类型代码: %s\n", orNA(a.Code))
		fmt.Fprintf(&b, "发布单位: %s\n", orNA(a.Source))
		fmt.Fprintf(&b, "覆盖区域: %s\n", orNA(a.Location))
		if a.PubTimestamp > 0 {
			fmt.Fprintf(&b, "发布时间: %s\n", classify.LocalTimeString(a.PubTimestamp, 8))
		}
		fmt.Fprintf(&b, "详情: %s\n", orNA(a.Description))
		b.WriteString(sectionDelimiter + "\n")
	}

	return OK(b.String()), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
