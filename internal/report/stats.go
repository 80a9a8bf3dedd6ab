package report

import (
	"fmt"
	"strings"
)

// ServerStats renders the process-wide request statistics along with the
// configuration a caller might care about. No HTTP call is involved.
func (s *Service) ServerStats() Outcome {
	snap := s.client.Stats().Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "%s 服务器统计:\n", s.icon("📊"))
	fmt.Fprintf(&b, "总请求数: %d\n", snap.Total)
	fmt.Fprintf(&b, "成功: %d | 失败: %d\n", snap.Success, snap.Failed)
	fmt.Fprintf(&b, "成功率: %.1f%%\n", snap.SuccessRate()*100)
	fmt.Fprintf(&b, "平均响应时间: %s\n", snap.AvgLatency.Round(0))
	fmt.Fprintf(&b, "缓存命中率: %.1f%% (命中 %d / 未命中 %d)\n",
		snap.CacheHitRate()*100, snap.CacheHits, snap.CacheMiss)

	b.WriteString("\n配置:\n")
	fmt.Fprintf(&b, "  API地址: %s\n", s.cfg.APIBaseURL)
	fmt.Fprintf(&b, "  语言: %s\n", s.cfg.DefaultLang)
	fmt.Fprintf(&b, "  超时: %s | 重试次数: %d\n", s.cfg.Timeout, s.cfg.MaxRetries)
	fmt.Fprintf(&b, "  小时级上限: %d | 逐日上限: %d\n", s.cfg.MaxHourlySteps, s.cfg.MaxDailySteps)

	return OK(b.String())
}
