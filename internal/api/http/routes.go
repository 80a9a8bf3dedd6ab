// Package httpapi is the operational sidecar of the MCP process: a small
// fiber app exposing health and request statistics over plain HTTP.
package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shuowang-ai/Weather-MCP/internal/caiyun"
	"github.com/shuowang-ai/Weather-MCP/internal/config"
)

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, cfg *config.AppConfig, stats *caiyun.Stats) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "knowair-weather",
		})
	})

	v1 := app.Group("/api/v1")

	v1.Get("/stats", func(c *fiber.Ctx) error {
		snap := stats.Snapshot()
		return c.JSON(fiber.Map{
			"requests": fiber.Map{
				"total":          snap.Total,
				"success":        snap.Success,
				"failed":         snap.Failed,
				"success_rate":   snap.SuccessRate(),
				"avg_latency_ms": float64(snap.AvgLatency.Microseconds()) / 1000,
			},
			"cache": fiber.Map{
				"hits":     snap.CacheHits,
				"misses":   snap.CacheMiss,
				"hit_rate": snap.CacheHitRate(),
			},
			"config": fiber.Map{
				"base_url":         cfg.APIBaseURL,
				"lang":             cfg.DefaultLang,
				"timeout":          cfg.Timeout.String(),
				"max_retries":      cfg.MaxRetries,
				"max_hourly_steps": cfg.MaxHourlySteps,
				"max_daily_steps":  cfg.MaxDailySteps,
				"token_configured": cfg.APIToken != "",
			},
		})
	})
}
