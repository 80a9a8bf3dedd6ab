package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shuowang-ai/Weather-MCP/internal/caiyun"
	"github.com/shuowang-ai/Weather-MCP/internal/classify"
)

// StationForecast builds the pollutant report from the nearest monitoring
// station. Unlike the merged air-quality forecast there is no fallback:
// when no station is near the coordinate the tool fails loudly.
func (s *Service) StationForecast(ctx context.Context, lng, lat float64, hours int) (Outcome, error) {
	const op = "获取站点空气质量预报失败"

	hours = clamp(hours, 1, s.cfg.MaxHourlySteps)

	stations, err := s.station.Nearby(ctx, lng, lat, hours)
	if err != nil {
		return Outcome{}, fail(op, err)
	}

	station := nearestStation(stations, lng, lat)
	distance := classify.HaversineKm(lat, lng, station.Lat, station.Lng)

	step := 1
	if hours > 48 {
		step = 6
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s 站点空气质量预报（%d小时，间隔%d小时）:\n", s.icon("📡"), hours, step)
	name := station.Name
	if name == "" {
		name = "未命名站点"
	}
	fmt.Fprintf(&b, "站点: %s (距离查询点 %.1f km)\n", name, distance)

	for i := 0; i < len(station.Forecast); i += step {
		entry := station.Forecast[i]
		label, _, icon := classify.AQILevel(entry.AQI)
		fmt.Fprintf(&b, "\n时间: %s\n", stationEntryTime(entry.Date, lng, lat))
		fmt.Fprintf(&b, "AQI: %d (%s %s)\n", entry.AQI, label, s.icon(icon))
		fmt.Fprintf(&b, "PM2.5: %d μg/m³ | PM10: %d μg/m³\n", entry.PM25, entry.PM10)
		fmt.Fprintf(&b, "O3: %d μg/m³ | SO2: %d μg/m³ | NO2: %d μg/m³ | CO: %.1f mg/m³\n",
			entry.O3, entry.SO2, entry.NO2, entry.CO)
		b.WriteString(sectionDelimiter + "\n")
	}

	if hours >= 24 && len(station.Forecast) >= 2 {
		first := station.Forecast[0]
		last := station.Forecast[len(station.Forecast)-1]

		verdict := "基本稳定"
		switch {
		case last.AQI < first.AQI-10:
			verdict = "改善"
		case last.AQI > first.AQI+10:
			verdict = "转差"
		}
		fmt.Fprintf(&b, "\n趋势: AQI %d → %d（%s）, PM2.5 %+d, PM10 %+d, O3 %+d\n",
			first.AQI, last.AQI, verdict,
			last.PM25-first.PM25, last.PM10-first.PM10, last.O3-first.O3)
	}

	return OK(b.String()), nil
}

// nearestStation picks the station closest to the query point.
func nearestStation(stations []caiyun.Station, lng, lat float64) caiyun.Station {
	best := stations[0]
	bestDist := classify.HaversineKm(lat, lng, best.Lat, best.Lng)
	for _, st := range stations[1:] {
		if d := classify.HaversineKm(lat, lng, st.Lat, st.Lng); d < bestDist {
			best = st
			bestDist = d
		}
	}
	return best
}

// stationEntryTime renders a station record's time, converting unix
// timestamps with the China-local alignment rule.
func stationEntryTime(raw string, lng, lat float64) string {
	if ts, err := strconv.ParseInt(raw, 10, 64); err == nil {
		aligned := classify.StationMatchTimestamp(ts, lng, lat)
		return time.Unix(aligned, 0).UTC().Format("2006-01-02 15:04")
	}
	return displayTime(raw)
}
