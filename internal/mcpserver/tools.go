package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/shuowang-ai/Weather-MCP/internal/report"
)

func lngOption() mcp.ToolOption {
	return mcp.WithNumber("lng",
		mcp.Required(),
		mcp.Description("The longitude of the location (-180 to 180)"),
		mcp.Min(-180), mcp.Max(180),
	)
}

func latOption() mcp.ToolOption {
	return mcp.WithNumber("lat",
		mcp.Required(),
		mcp.Description("The latitude of the location (-90 to 90)"),
		mcp.Min(-90), mcp.Max(90),
	)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("get_realtime_weather",
		mcp.WithDescription("Get comprehensive real-time weather data including temperature, humidity, wind, air quality, and life indices."),
		lngOption(), latOption(),
	), s.handle("get_realtime_weather", func(ctx context.Context, req mcp.CallToolRequest) (report.Outcome, error) {
		lng, lat, err := Coords(req)
		if err != nil {
			return report.Outcome{}, err
		}
		return s.svc.Realtime(ctx, lng, lat)
	}))

	s.mcp.AddTool(mcp.NewTool("get_hourly_forecast",
		mcp.WithDescription("Get hourly weather forecast including temperature, weather conditions, precipitation, and wind. Supports up to 360 hours."),
		lngOption(), latOption(),
		mcp.WithNumber("hours",
			mcp.Description("Forecast window in hours (1-360, default 24)"),
			mcp.Min(1), mcp.Max(360),
		),
	), s.handle("get_hourly_forecast", func(ctx context.Context, req mcp.CallToolRequest) (report.Outcome, error) {
		lng, lat, err := Coords(req)
		if err != nil {
			return report.Outcome{}, err
		}
		return s.svc.HourlyForecast(ctx, lng, lat, req.GetInt("hours", 24))
	}))

	s.mcp.AddTool(mcp.NewTool("get_daily_forecast",
		mcp.WithDescription("Get daily weather forecast including temperature range, conditions, precipitation probability, air quality, sun times, and life indices. Supports up to 15 days."),
		lngOption(), latOption(),
		mcp.WithNumber("days",
			mcp.Description("Forecast window in days (1-15, default 7)"),
			mcp.Min(1), mcp.Max(15),
		),
	), s.handle("get_daily_forecast", func(ctx context.Context, req mcp.CallToolRequest) (report.Outcome, error) {
		lng, lat, err := Coords(req)
		if err != nil {
			return report.Outcome{}, err
		}
		return s.svc.DailyForecast(ctx, lng, lat, req.GetInt("days", 7))
	}))

	s.mcp.AddTool(mcp.NewTool("get_historical_weather",
		mcp.WithDescription("Get historical weather data for the past hours including temperature and weather conditions."),
		lngOption(), latOption(),
		mcp.WithNumber("hours_back",
			mcp.Description("How many hours back to look (1-360, default 24)"),
			mcp.Min(1), mcp.Max(360),
		),
	), s.handle("get_historical_weather", func(ctx context.Context, req mcp.CallToolRequest) (report.Outcome, error) {
		lng, lat, err := Coords(req)
		if err != nil {
			return report.Outcome{}, err
		}
		return s.svc.Historical(ctx, lng, lat, req.GetInt("hours_back", 24))
	}))

	s.mcp.AddTool(mcp.NewTool("get_minutely_precipitation",
		mcp.WithDescription("Get minute-level precipitation forecast for the next 2 hours (available for major cities in China)."),
		lngOption(), latOption(),
	), s.handle("get_minutely_precipitation", func(ctx context.Context, req mcp.CallToolRequest) (report.Outcome, error) {
		lng, lat, err := Coords(req)
		if err != nil {
			return report.Outcome{}, err
		}
		return s.svc.MinutelyPrecipitation(ctx, lng, lat)
	}))

	s.mcp.AddTool(mcp.NewTool("get_comprehensive_weather",
		mcp.WithDescription("Get a comprehensive weather report: current conditions, air quality, minutely precipitation, a 3-day outlook, and optionally hourly details and active alerts."),
		lngOption(), latOption(),
		mcp.WithBoolean("include_hourly", mcp.Description("Include a 24-hour outlook section")),
		mcp.WithBoolean("include_alerts", mcp.Description("Include active weather alerts")),
	), s.handle("get_comprehensive_weather", func(ctx context.Context, req mcp.CallToolRequest) (report.Outcome, error) {
		lng, lat, err := Coords(req)
		if err != nil {
			return report.Outcome{}, err
		}
		return s.svc.Comprehensive(ctx, lng, lat,
			req.GetBool("include_hourly", false),
			req.GetBool("include_alerts", false))
	}))

	s.mcp.AddTool(mcp.NewTool("get_air_quality_forecast",
		mcp.WithDescription("Get a multi-day air quality forecast with trend analysis, best/worst day, and a health recommendation. Uses denser station data when available."),
		lngOption(), latOption(),
		mcp.WithNumber("days",
			mcp.Description("Forecast window in days (1-15, default 5)"),
			mcp.Min(1), mcp.Max(15),
		),
	), s.handle("get_air_quality_forecast", func(ctx context.Context, req mcp.CallToolRequest) (report.Outcome, error) {
		lng, lat, err := Coords(req)
		if err != nil {
			return report.Outcome{}, err
		}
		return s.svc.AirQualityForecast(ctx, lng, lat, req.GetInt("days", 5))
	}))

	s.mcp.AddTool(mcp.NewTool("get_station_forecast",
		mcp.WithDescription("Get a pollutant forecast from the monitoring station nearest to the coordinate. Fails when no station is nearby."),
		lngOption(), latOption(),
		mcp.WithNumber("hours",
			mcp.Description("Forecast window in hours (1-360, default 48)"),
			mcp.Min(1), mcp.Max(360),
		),
	), s.handle("get_station_forecast", func(ctx context.Context, req mcp.CallToolRequest) (report.Outcome, error) {
		lng, lat, err := Coords(req)
		if err != nil {
			return report.Outcome{}, err
		}
		return s.svc.StationForecast(ctx, lng, lat, req.GetInt("hours", 48))
	}))

	s.mcp.AddTool(mcp.NewTool("get_astronomy_info",
		mcp.WithDescription("Get astronomy information: sunrise, sunset, daylight duration, and moon data where available."),
		lngOption(), latOption(),
		mcp.WithNumber("days",
			mcp.Description("How many days ahead (1-15, default 7)"),
			mcp.Min(1), mcp.Max(15),
		),
	), s.handle("get_astronomy_info", func(ctx context.Context, req mcp.CallToolRequest) (report.Outcome, error) {
		lng, lat, err := Coords(req)
		if err != nil {
			return report.Outcome{}, err
		}
		return s.svc.Astronomy(ctx, lng, lat, req.GetInt("days", 7))
	}))

	s.mcp.AddTool(mcp.NewTool("get_weather_alerts",
		mcp.WithDescription("Get active weather alerts and warnings for the specified location."),
		lngOption(), latOption(),
	), s.handle("get_weather_alerts", func(ctx context.Context, req mcp.CallToolRequest) (report.Outcome, error) {
		lng, lat, err := Coords(req)
		if err != nil {
			return report.Outcome{}, err
		}
		return s.svc.Alerts(ctx, lng, lat)
	}))

	s.mcp.AddTool(mcp.NewTool("get_server_stats",
		mcp.WithDescription("Get request statistics and configuration of this weather server."),
	), s.handle("get_server_stats", func(ctx context.Context, req mcp.CallToolRequest) (report.Outcome, error) {
		return s.svc.ServerStats(), nil
	}))
}
