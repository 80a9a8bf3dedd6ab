package classify

import (
	"strings"
	"testing"
)

func TestSkyconLabel(t *testing.T) {
	if got := SkyconLabel("CLOUDY"); got != "阴" {
		t.Fatalf("expected 阴, got %s", got)
	}
	if got := SkyconLabel("LIGHT_RAIN"); got != "小雨" {
		t.Fatalf("expected 小雨, got %s", got)
	}
	// Unknown codes pass through unchanged.
	if got := SkyconLabel("VOLCANIC_ASH"); got != "VOLCANIC_ASH" {
		t.Fatalf("expected passthrough, got %s", got)
	}
}

func TestPrecipWord(t *testing.T) {
	warm, cold := 5.0, -5.0
	if got := PrecipWord(&warm); got != "雨" {
		t.Fatalf("expected 雨 above freezing, got %s", got)
	}
	if got := PrecipWord(&cold); got != "雪" {
		t.Fatalf("expected 雪 below freezing, got %s", got)
	}
	if got := PrecipWord(nil); got != "雨/雪" {
		t.Fatalf("expected generic word for nil temperature, got %s", got)
	}
}

func TestPrecipIntensityLabelRadarBands(t *testing.T) {
	warm := 5.0
	cases := []struct {
		intensity float64
		want      string
	}{
		{0.0, "0.000 (无雨)"},
		{0.030, "0.030 (无雨)"},
		{0.031, "0.031 (小雨)"},
		{0.30, "0.300 (中雨)"},
		{0.40, "0.400 (大雨)"},
		{0.50, "0.500 (暴雨)"},
	}
	for _, tc := range cases {
		got := PrecipIntensityLabel(tc.intensity, DataRadar, &warm)
		if got != tc.want {
			t.Fatalf("intensity %v: expected %q, got %q", tc.intensity, tc.want, got)
		}
	}
}

func TestPrecipIntensityLabelSnowWord(t *testing.T) {
	cold := -5.0
	got := PrecipIntensityLabel(0.30, DataRadar, &cold)
	if got != "0.300 (中雪)" {
		t.Fatalf("expected 中雪 below freezing, got %q", got)
	}
}

func TestPrecipIntensityLabelHourlyUnits(t *testing.T) {
	warm := 10.0
	got := PrecipIntensityLabel(2.95, DataHourly, &warm)
	if got != "2.95mm/h (大雨)" {
		t.Fatalf("expected 2.95mm/h (大雨), got %q", got)
	}
	got = PrecipIntensityLabel(0.05, DataHourly, &warm)
	if got != "0.05mm/h (无雨)" {
		t.Fatalf("expected 无雨 below first threshold, got %q", got)
	}
}

func TestPrecipIntensityLabelMinutely(t *testing.T) {
	got := PrecipIntensityLabel(4.0, DataMinutely, nil)
	if got != "4.00mm/h (中雨/雪)" {
		t.Fatalf("expected 中雨/雪 for nil temperature, got %q", got)
	}
	got = PrecipIntensityLabel(4.0, DataMinutelyMM, nil)
	if got != "4.0000mm/h (中雨/雪)" {
		t.Fatalf("expected four decimals, got %q", got)
	}
}

func TestLifeIndexLabel(t *testing.T) {
	if got := LifeIndexLabel("ultraviolet", 11); got != "极强" {
		t.Fatalf("expected 极强, got %s", got)
	}
	if got := LifeIndexLabel("dressing", 4); got != "温暖" {
		t.Fatalf("expected 温暖, got %s", got)
	}
	if got := LifeIndexLabel("coldRisk", 1); got != "少发" {
		t.Fatalf("expected 少发, got %s", got)
	}
	if got := LifeIndexLabel("dressing", 42); got != "未知等级(42)" {
		t.Fatalf("expected out-of-range fallback, got %s", got)
	}
	if got := LifeIndexLabel("fishing", 2); got != "未知指数(fishing: 2)" {
		t.Fatalf("expected unknown-index fallback, got %s", got)
	}
}

func TestAQILevel(t *testing.T) {
	cases := []struct {
		aqi   int
		label string
		icon  string
	}{
		{0, "优", "🟢"},
		{50, "优", "🟢"},
		{51, "良", "🟡"},
		{150, "轻度污染", "🟠"},
		{200, "中度污染", "🔴"},
		{300, "重度污染", "🟣"},
		{301, "严重污染", "⚫"},
	}
	for _, tc := range cases {
		label, advice, icon := AQILevel(tc.aqi)
		if label != tc.label || icon != tc.icon {
			t.Fatalf("aqi %d: expected (%s, %s), got (%s, %s)", tc.aqi, tc.label, tc.icon, label, icon)
		}
		if advice == "" {
			t.Fatalf("aqi %d: expected non-empty advice", tc.aqi)
		}
	}
}

func TestPM25Level(t *testing.T) {
	if label, icon := PM25Level(35); label != "优秀" || icon != "🟢" {
		t.Fatalf("expected 优秀/🟢 at 35, got %s/%s", label, icon)
	}
	if label, _ := PM25Level(76); label != "轻度污染" {
		t.Fatalf("expected 轻度污染 at 76, got %s", label)
	}
	if label, icon := PM25Level(500); label != "严重污染" || icon != "⚫" {
		t.Fatalf("expected 严重污染/⚫ at 500, got %s/%s", label, icon)
	}
}

func TestMoonPhaseLabel(t *testing.T) {
	if got := MoonPhaseLabel("full"); got != "满月 🌕" {
		t.Fatalf("expected 满月 🌕, got %s", got)
	}
	got := MoonPhaseLabel("blood")
	if !strings.Contains(got, "未知月相") {
		t.Fatalf("expected unknown-phase fallback, got %s", got)
	}
}
