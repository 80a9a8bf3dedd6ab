package caiyun

import (
	"sync"
	"time"
)

// Stats tracks request outcomes and a running average response time for
// the whole process. Updates come from every request attempt, reads from
// the stats tool and the HTTP sidecar, so all access goes through the
// mutex; the running-average update is read-modify-write and must not
// interleave.
type Stats struct {
	mu sync.Mutex

	total      int64
	success    int64
	failed     int64
	cacheHits  int64
	cacheMiss  int64
	avgLatency time.Duration
}

// StatsSnapshot is a copy of the counters at one point in time.
type StatsSnapshot struct {
	Total      int64         `json:"total_requests"`
	Success    int64         `json:"successful_requests"`
	Failed     int64         `json:"failed_requests"`
	CacheHits  int64         `json:"cache_hits"`
	CacheMiss  int64         `json:"cache_misses"`
	AvgLatency time.Duration `json:"avg_latency"`
}

func NewStats() *Stats {
	return &Stats{}
}

// Record notes one completed attempt. The running average uses
// new_avg = (old_avg*(n-1) + latest) / n with n = total completed attempts.
func (s *Stats) Record(success bool, elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	if success {
		s.success++
	} else {
		s.failed++
	}

	n := s.total
	s.avgLatency = time.Duration((int64(s.avgLatency)*(n-1) + int64(elapsed)) / n)
}

// RecordCacheHit and RecordCacheMiss exist for a future response cache;
// with no cache wired they stay at zero and the stats report says so.
func (s *Stats) RecordCacheHit() {
	s.mu.Lock()
	s.cacheHits++
	s.mu.Unlock()
}

func (s *Stats) RecordCacheMiss() {
	s.mu.Lock()
	s.cacheMiss++
	s.mu.Unlock()
}

// Snapshot returns a consistent copy of the counters.
func (s *Stats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return StatsSnapshot{
		Total:      s.total,
		Success:    s.success,
		Failed:     s.failed,
		CacheHits:  s.cacheHits,
		CacheMiss:  s.cacheMiss,
		AvgLatency: s.avgLatency,
	}
}

// SuccessRate returns successes over completed requests, 0 when idle.
func (snap StatsSnapshot) SuccessRate() float64 {
	if snap.Total == 0 {
		return 0
	}
	return float64(snap.Success) / float64(snap.Total)
}

// CacheHitRate returns hits over cache lookups, 0 when the cache is cold.
func (snap StatsSnapshot) CacheHitRate() float64 {
	lookups := snap.CacheHits + snap.CacheMiss
	if lookups == 0 {
		return 0
	}
	return float64(snap.CacheHits) / float64(lookups)
}
