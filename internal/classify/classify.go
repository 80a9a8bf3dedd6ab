// Package classify holds the pure lookup tables that turn provider codes
// and numeric levels into human-readable Chinese descriptions. Every
// function here is total: unknown input falls back to a readable default,
// never an error, so one malformed field cannot abort a whole report.
package classify

import "fmt"

var skyconLabels = map[string]string{
	"CLEAR_DAY":           "晴（白天）",
	"CLEAR_NIGHT":         "晴（夜间）",
	"PARTLY_CLOUDY_DAY":   "多云（白天）",
	"PARTLY_CLOUDY_NIGHT": "多云（夜间）",
	"CLOUDY":              "阴",
	"LIGHT_HAZE":          "轻度雾霾",
	"MODERATE_HAZE":       "中度雾霾",
	"HEAVY_HAZE":          "重度雾霾",
	"LIGHT_RAIN":          "小雨",
	"MODERATE_RAIN":       "中雨",
	"HEAVY_RAIN":          "大雨",
	"STORM_RAIN":          "暴雨",
	"FOG":                 "雾",
	"LIGHT_SNOW":          "小雪",
	"MODERATE_SNOW":       "中雪",
	"HEAVY_SNOW":          "大雪",
	"STORM_SNOW":          "暴雪",
	"DUST":                "浮尘",
	"SAND":                "沙尘",
	"WIND":                "大风",
}

// SkyconLabel translates a weather phenomenon code. Unmapped codes pass
// through unchanged.
func SkyconLabel(code string) string {
	if label, ok := skyconLabels[code]; ok {
		return label
	}
	return code
}

// DataType selects the precipitation-intensity banding table.
type DataType string

const (
	DataRadar      DataType = "radar"
	DataHourly     DataType = "hourly"
	DataHourlyRad  DataType = "hourly_radar"
	DataMinutely   DataType = "minutely"
	DataMinutelyMM DataType = "minutely_mm"
	DataDaily      DataType = "daily"
	DataDailyRad   DataType = "daily_radar"
)

// precipBands holds ascending thresholds for 无/小/中/大; anything above
// the last threshold is 暴.
type precipBands struct {
	thresholds [4]float64
	decimals   int
	withUnit   bool
}

var precipTables = map[DataType]precipBands{
	// Radar-normalized 0-1 intensities.
	DataRadar:     {thresholds: [4]float64{0.031, 0.25, 0.35, 0.48}, decimals: 3},
	DataHourlyRad: {thresholds: [4]float64{0.031, 0.25, 0.35, 0.48}, decimals: 3},
	DataDailyRad:  {thresholds: [4]float64{0.031, 0.25, 0.35, 0.48}, decimals: 3},
	// mm/h rainfall rates.
	DataHourly:     {thresholds: [4]float64{0.0606, 0.8989, 2.87, 12.8638}, decimals: 2, withUnit: true},
	DataDaily:      {thresholds: [4]float64{0.0606, 0.8989, 2.87, 12.8638}, decimals: 2, withUnit: true},
	DataMinutely:   {thresholds: [4]float64{0.08, 3.44, 11.33, 51.30}, decimals: 2, withUnit: true},
	DataMinutelyMM: {thresholds: [4]float64{0.08, 3.44, 11.33, 51.30}, decimals: 4, withUnit: true},
}

var precipGrades = [5]string{"无", "小", "中", "大", "暴"}

// PrecipWord picks 雨 or 雪 from the temperature; nil temperature keeps
// the generic placeholder.
func PrecipWord(temperature *float64) string {
	if temperature == nil {
		return "雨/雪"
	}
	if *temperature > 0 {
		return "雨"
	}
	return "雪"
}

// PrecipIntensityLabel formats an intensity with its banded description,
// e.g. "0.300 (中雨)" or "2.95mm/h (中雪)". Unknown data types get the
// bare number.
func PrecipIntensityLabel(intensity float64, dataType DataType, temperature *float64) string {
	bands, ok := precipTables[dataType]
	if !ok {
		return fmt.Sprintf("%.3f", intensity)
	}

	grade := precipGrades[4]
	for i, limit := range bands.thresholds {
		if intensity < limit {
			grade = precipGrades[i]
			break
		}
	}

	word := PrecipWord(temperature)
	if bands.withUnit {
		return fmt.Sprintf("%.*fmm/h (%s%s)", bands.decimals, intensity, grade, word)
	}
	return fmt.Sprintf("%.*f (%s%s)", bands.decimals, intensity, grade, word)
}

var lifeIndexTables = map[string]map[int]string{
	"ultraviolet": {
		0: "无", 1: "很弱", 2: "很弱", 3: "弱", 4: "弱", 5: "中等",
		6: "中等", 7: "强", 8: "强", 9: "强", 10: "很强", 11: "极强",
	},
	"ultraviolet_daily": {
		1: "最弱", 2: "弱", 3: "中等", 4: "强", 5: "很强",
	},
	"dressing": {
		0: "极热", 1: "极热", 2: "很热", 3: "热", 4: "温暖",
		5: "凉爽", 6: "冷", 7: "寒冷", 8: "极冷",
	},
	"comfort": {
		0: "闷热", 1: "酷热", 2: "很热", 3: "热", 4: "温暖",
		5: "舒适", 6: "凉爽", 7: "冷", 8: "很冷", 9: "寒冷",
		10: "极冷", 11: "刺骨的冷", 12: "湿冷", 13: "干冷",
	},
	"coldRisk": {
		1: "少发", 2: "较易发", 3: "易发", 4: "极易发",
	},
	"carWashing": {
		1: "适宜", 2: "较适宜", 3: "较不适宜", 4: "不适宜",
	},
}

// LifeIndexLabel maps a life-index level to its description.
func LifeIndexLabel(indexType string, level int) string {
	table, ok := lifeIndexTables[indexType]
	if !ok {
		return fmt.Sprintf("未知指数(%s: %d)", indexType, level)
	}
	if label, ok := table[level]; ok {
		return label
	}
	return fmt.Sprintf("未知等级(%d)", level)
}

// AQILevel classifies a China-scale AQI into (label, health advice, icon).
func AQILevel(aqi int) (string, string, string) {
	switch {
	case aqi <= 50:
		return "优", "空气质量令人满意，基本无空气污染", "🟢"
	case aqi <= 100:
		return "良", "空气质量可接受，但某些污染物可能对极少数异常敏感人群健康有较弱影响", "🟡"
	case aqi <= 150:
		return "轻度污染", "易感人群症状有轻度加剧，健康人群出现刺激症状", "🟠"
	case aqi <= 200:
		return "中度污染", "进一步加剧易感人群症状，可能对健康人群心脏、呼吸系统有影响", "🔴"
	case aqi <= 300:
		return "重度污染", "心脏病和肺病患者症状显著加剧，运动耐受力降低，健康人群普遍出现症状", "🟣"
	default:
		return "严重污染", "健康人群运动耐受力降低，有明显强烈症状，提前出现某些疾病", "⚫"
	}
}

// PM25Level classifies a PM2.5 concentration into (label, icon).
func PM25Level(pm25 int) (string, string) {
	switch {
	case pm25 <= 35:
		return "优秀", "🟢"
	case pm25 <= 75:
		return "良好", "🟡"
	case pm25 <= 115:
		return "轻度污染", "🟠"
	case pm25 <= 150:
		return "中度污染", "🔴"
	case pm25 <= 250:
		return "重度污染", "🟣"
	default:
		return "严重污染", "⚫"
	}
}

var moonPhaseLabels = map[string]string{
	"new":             "新月 🌑",
	"waxing_crescent": "娥眉月 🌒",
	"first_quarter":   "上弦月 🌓",
	"waxing_gibbous":  "盈凸月 🌔",
	"full":            "满月 🌕",
	"waning_gibbous":  "亏凸月 🌖",
	"last_quarter":    "下弦月 🌗",
	"waning_crescent": "残月 🌘",
}

// MoonPhaseLabel translates the provider's moon phase code.
func MoonPhaseLabel(phase string) string {
	if label, ok := moonPhaseLabels[phase]; ok {
		return label
	}
	return fmt.Sprintf("未知月相(%s)", phase)
}
