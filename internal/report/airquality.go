package report

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shuowang-ai/Weather-MCP/internal/caiyun"
	"github.com/shuowang-ai/Weather-MCP/internal/classify"
)

// stationDay is station data folded into one daily bucket.
type stationDay struct {
	pm10Sum, o3Sum float64
	count          int
}

// AirQualityForecast merges the grid-based daily forecast with current
// conditions and, when reachable, the denser station data. The two
// primary calls run in parallel; the station call is best-effort and its
// failure never fails the report.
func (s *Service) AirQualityForecast(ctx context.Context, lng, lat float64, days int) (Outcome, error) {
	const op = "获取空气质量预报失败"

	days = clamp(days, 1, s.cfg.MaxDailySteps)

	realtimeURL, err := s.weatherURL(lng, lat, "realtime")
	if err != nil {
		return Outcome{}, fail(op, err)
	}
	dailyURL, err := s.weatherURL(lng, lat, "daily")
	if err != nil {
		return Outcome{}, fail(op, err)
	}

	dailyParams := s.langParams()
	dailyParams.Set("dailysteps", strconv.Itoa(days))

	var (
		wg              sync.WaitGroup
		rtEnv, dailyEnv *caiyun.Envelope
		rtErr, dailyErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		rtEnv, rtErr = s.client.Get(ctx, realtimeURL, s.langParams())
	}()
	go func() {
		defer wg.Done()
		dailyEnv, dailyErr = s.client.Get(ctx, dailyURL, dailyParams)
	}()
	wg.Wait()

	if dailyErr != nil {
		return Outcome{}, fail(op, dailyErr)
	}
	if rtErr != nil {
		return Outcome{}, fail(op, rtErr)
	}

	daily := dailyEnv.Result.Daily
	if daily == nil || daily.AirQuality == nil || len(daily.AirQuality.AQI) == 0 {
		return Unavailable("该位置暂无空气质量预报数据。"), nil
	}
	aq := daily.AirQuality

	// Station data is optional densification; drop it silently on any
	// failure, including an open circuit breaker.
	stationDays := s.stationByDate(ctx, lng, lat, days*24)

	var b strings.Builder
	fmt.Fprintf(&b, "%s 空气质量预报（%d天）:\n", s.icon("🌬️"), days)

	if rt := rtEnv.Result.Realtime; rt != nil && rt.AirQuality != nil {
		cur := rt.AirQuality
		aqiLabel, _, aqiIcon := classify.AQILevel(cur.AQI.Chn)
		pmLabel, pmIcon := classify.PM25Level(cur.PM25)
		fmt.Fprintf(&b, "当前: AQI %d (%s %s), PM2.5 %d μg/m³ (%s %s)\n",
			cur.AQI.Chn, aqiLabel, s.icon(aqiIcon), cur.PM25, pmLabel, s.icon(pmIcon))
	}

	b.WriteString("\n")

	var aqiSum int
	bestIdx, worstIdx := 0, 0
	for i, day := range aq.AQI {
		if i >= days {
			break
		}
		aqiSum += day.Avg.Chn
		if day.Avg.Chn < aq.AQI[bestIdx].Avg.Chn {
			bestIdx = i
		}
		if day.Avg.Chn > aq.AQI[worstIdx].Avg.Chn {
			worstIdx = i
		}

		label, _, icon := classify.AQILevel(day.Avg.Chn)
		date := displayDate(day.Date)
		fmt.Fprintf(&b, "%s: AQI 平均 %d (%s %s)", date, day.Avg.Chn, label, s.icon(icon))
		if i < len(aq.PM25) {
			fmt.Fprintf(&b, ", PM2.5 平均 %.0f μg/m³", aq.PM25[i].Avg)
		}
		if sd, ok := stationDays[date]; ok && sd.count > 0 {
			fmt.Fprintf(&b, " [站点: PM10 %.0f, O3 %.0f]",
				sd.pm10Sum/float64(sd.count), sd.o3Sum/float64(sd.count))
		}
		b.WriteString("\n")
	}

	counted := len(aq.AQI)
	if counted > days {
		counted = days
	}

	if counted >= 2 {
		first, last := aq.AQI[0], aq.AQI[counted-1]
		fmt.Fprintf(&b, "\n趋势: AQI %+d", last.Avg.Chn-first.Avg.Chn)
		if len(aq.PM25) >= counted {
			fmt.Fprintf(&b, ", PM2.5 %+.0f", aq.PM25[counted-1].Avg-aq.PM25[0].Avg)
		}
		if delta, ok := stationTrend(stationDays, aq.AQI, counted); ok {
			fmt.Fprintf(&b, ", PM10 %+.0f, O3 %+.0f", delta[0], delta[1])
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "最佳: %s (AQI %d), 最差: %s (AQI %d)\n",
			displayDate(aq.AQI[bestIdx].Date), aq.AQI[bestIdx].Avg.Chn,
			displayDate(aq.AQI[worstIdx].Date), aq.AQI[worstIdx].Avg.Chn)
	}

	if counted > 0 {
		_, advice, _ := classify.AQILevel(aqiSum / counted)
		fmt.Fprintf(&b, "\n健康建议: %s\n", advice)
	}

	return OK(b.String()), nil
}

// stationByDate fetches station forecasts and buckets them per local
// date. An empty map means the secondary provider had nothing usable.
func (s *Service) stationByDate(ctx context.Context, lng, lat float64, hours int) map[string]*stationDay {
	out := make(map[string]*stationDay)

	stations, err := s.station.Nearby(ctx, lng, lat, hours)
	if err != nil {
		log.Printf("report: station data unavailable, continuing without it: %v", err)
		return out
	}

	for _, entry := range nearestStation(stations, lng, lat).Forecast {
		date := stationEntryDate(entry.Date, lng, lat)
		if date == "" {
			continue
		}
		sd, ok := out[date]
		if !ok {
			sd = &stationDay{}
			out[date] = sd
		}
		sd.pm10Sum += float64(entry.PM10)
		sd.o3Sum += float64(entry.O3)
		sd.count++
	}
	return out
}

// stationEntryDate extracts the bucket date from a station record,
// aligning UTC timestamps with the provider's China-local date strings.
func stationEntryDate(raw string, lng, lat float64) string {
	if ts, err := strconv.ParseInt(raw, 10, 64); err == nil {
		aligned := classify.StationMatchTimestamp(ts, lng, lat)
		return time.Unix(aligned, 0).UTC().Format("2006-01-02")
	}
	return displayDate(raw)
}

// stationTrend computes first-to-last PM10/O3 deltas over the daily
// buckets matching the grid forecast's dates.
func stationTrend(stationDays map[string]*stationDay, aqi []caiyun.DailyAQI, counted int) ([2]float64, bool) {
	first, okFirst := stationDays[displayDate(aqi[0].Date)]
	last, okLast := stationDays[displayDate(aqi[counted-1].Date)]
	if !okFirst || !okLast || first.count == 0 || last.count == 0 {
		return [2]float64{}, false
	}
	return [2]float64{
		last.pm10Sum/float64(last.count) - first.pm10Sum/float64(first.count),
		last.o3Sum/float64(last.count) - first.o3Sum/float64(first.count),
	}, true
}
