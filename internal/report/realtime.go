package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/shuowang-ai/Weather-MCP/internal/classify"
)

// Realtime builds the current-conditions report: temperature, humidity,
// wind, precipitation, the full pollutant breakdown, and life indices.
func (s *Service) Realtime(ctx context.Context, lng, lat float64) (Outcome, error) {
	const op = "获取实时天气失败"

	endpoint, err := s.weatherURL(lng, lat, "realtime")
	if err != nil {
		return Outcome{}, fail(op, err)
	}

	env, err := s.client.Get(ctx, endpoint, s.langParams())
	if err != nil {
		return Outcome{}, fail(op, err)
	}

	rt := env.Result.Realtime
	if rt == nil {
		return Unavailable("该位置暂无实时天气数据。"), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s 实时天气:\n", s.icon("🌡️"))
	fmt.Fprintf(&b, "温度: %.1f°C\n", rt.Temperature)
	if rt.ApparentTemperature != nil {
		fmt.Fprintf(&b, "体感温度: %.1f°C\n", *rt.ApparentTemperature)
	}
	fmt.Fprintf(&b, "湿度: %d%%\n", classify.SafePrecipProbability(rt.Humidity))
	fmt.Fprintf(&b, "云量: %d%%\n", classify.SafePrecipProbability(rt.Cloudrate))
	fmt.Fprintf(&b, "天气现象: %s\n", classify.SkyconLabel(rt.Skycon))
	fmt.Fprintf(&b, "能见度: %.1f km\n", rt.Visibility)
	fmt.Fprintf(&b, "气压: %.0f Pa\n", rt.Pressure)
	fmt.Fprintf(&b, "风速: %.1f m/s, 风向: %.0f°（正北顺时针）\n", rt.Wind.Speed, rt.Wind.Direction)

	temp := rt.Temperature
	if rt.Precipitation != nil {
		local := rt.Precipitation.Local
		fmt.Fprintf(&b, "本地降水: %s", classify.PrecipIntensityLabel(local.Intensity, classify.DataRadar, &temp))
		if local.Datasource != "" {
			fmt.Fprintf(&b, " [来源: %s]", local.Datasource)
		}
		b.WriteString("\n")

		if nearest := rt.Precipitation.Nearest; nearest != nil && nearest.Status == "ok" {
			fmt.Fprintf(&b, "最近降水带: 距离 %.1f km, 强度 %s\n",
				nearest.Distance,
				classify.PrecipIntensityLabel(nearest.Intensity, classify.DataRadar, &temp))
		}
	}

	if aq := rt.AirQuality; aq != nil {
		aqiLabel, advice, aqiIcon := classify.AQILevel(aq.AQI.Chn)
		pmLabel, pmIcon := classify.PM25Level(aq.PM25)

		fmt.Fprintf(&b, "\n%s 空气质量:\n", s.icon("🏭"))
		fmt.Fprintf(&b, "  PM2.5: %d μg/m³ (%s %s)\n", aq.PM25, pmLabel, s.icon(pmIcon))
		fmt.Fprintf(&b, "  PM10: %d μg/m³\n", aq.PM10)
		fmt.Fprintf(&b, "  O3: %d μg/m³ | SO2: %d μg/m³ | NO2: %d μg/m³ | CO: %.1f mg/m³\n",
			aq.O3, aq.SO2, aq.NO2, aq.CO)
		fmt.Fprintf(&b, "  AQI (中国): %d (%s %s)\n", aq.AQI.Chn, aqiLabel, s.icon(aqiIcon))
		fmt.Fprintf(&b, "  AQI (美国): %d\n", aq.AQI.Usa)
		fmt.Fprintf(&b, "  健康建议: %s\n", advice)
	}

	if s.cfg.ShowLifeIndices && rt.LifeIndex != nil {
		fmt.Fprintf(&b, "\n生活指数:\n")
		if uv := rt.LifeIndex.Ultraviolet; uv != nil {
			fmt.Fprintf(&b, "  紫外线: %s\n", reconcileLifeIndex("ultraviolet", uv.Index, uv.Desc))
		}
		if comfort := rt.LifeIndex.Comfort; comfort != nil {
			fmt.Fprintf(&b, "  舒适度: %s\n", reconcileLifeIndex("comfort", comfort.Index, comfort.Desc))
		}
	}

	return OK(b.String()), nil
}

// reconcileLifeIndex prefers the standard table when the numeric level is
// known, falling back to the provider's own wording.
func reconcileLifeIndex(indexType string, level *float64, desc string) string {
	if level != nil {
		return classify.LifeIndexLabel(indexType, int(*level))
	}
	if desc != "" {
		return desc
	}
	return "N/A"
}
