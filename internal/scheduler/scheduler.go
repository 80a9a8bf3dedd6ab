package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/shuowang-ai/Weather-MCP/internal/caiyun"
)

// StatsReporter periodically logs a one-line summary of the request
// statistics so long-running servers leave a usable trace.
type StatsReporter struct {
	scheduler *gocron.Scheduler
	stats     *caiyun.Stats
	interval  time.Duration
}

// New creates a new StatsReporter.
func New(stats *caiyun.Stats, interval time.Duration) *StatsReporter {
	s := gocron.NewScheduler(time.UTC)
	return &StatsReporter{
		scheduler: s,
		stats:     stats,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *StatsReporter) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		snap := s.stats.Snapshot()
		if snap.Total == 0 {
			return
		}
		log.Printf("stats: requests=%d success=%d failed=%d success_rate=%.1f%% avg_latency=%s",
			snap.Total, snap.Success, snap.Failed, snap.SuccessRate()*100, snap.AvgLatency)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *StatsReporter) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
