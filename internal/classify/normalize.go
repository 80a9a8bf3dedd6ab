package classify

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// SafePrecipProbability coerces a raw probability into an int in [0,100].
// Values at or below 1.0 are treated as fractions and scaled; values up
// to 100 are used as-is; anything larger clamps to 100. Nil or
// unparseable input yields 0.
func SafePrecipProbability(raw any) int {
	v, ok := toFloat(raw)
	if !ok || math.IsNaN(v) || v < 0 {
		return 0
	}
	switch {
	case v <= 1.0:
		return int(math.Round(v * 100))
	case v <= 100:
		return int(math.Round(v))
	default:
		return 100
	}
}

const earthRadiusKm = 6371.0

// HaversineKm computes the great-circle distance between two coordinates.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// InChinaRegion is a bounding-box test for mainland China coordinates.
func InChinaRegion(lng, lat float64) bool {
	return lng >= 73 && lng <= 135 && lat >= 18 && lat <= 54
}

// LocalTimeString converts a UTC unix timestamp to "YYYY-MM-DD HH:MM+08:00"
// (or the equivalent for another whole-hour offset). Malformed input falls
// back to the stringified input rather than failing, which also makes the
// fallback idempotent.
func LocalTimeString(raw any, offsetHours int) string {
	ts, ok := toFloat(raw)
	if !ok {
		return fmt.Sprint(raw)
	}

	loc := time.FixedZone(fmt.Sprintf("UTC%+d", offsetHours), offsetHours*3600)
	t := time.Unix(int64(ts), 0).In(loc)

	sign := "+"
	abs := offsetHours
	if offsetHours < 0 {
		sign = "-"
		abs = -offsetHours
	}
	return fmt.Sprintf("%s%s%02d:00", t.Format("2006-01-02 15:04"), sign, abs)
}

// StationMatchTimestamp aligns a station's UTC timestamp with the
// provider's China-local date strings: inside the China bounding box the
// provider labels buckets in UTC+8, so add eight hours before matching.
func StationMatchTimestamp(stationUTC int64, lng, lat float64) int64 {
	if InChinaRegion(lng, lat) {
		return stationUTC + 8*3600
	}
	return stationUTC
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case *float64:
		if v == nil {
			return 0, false
		}
		return *v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
