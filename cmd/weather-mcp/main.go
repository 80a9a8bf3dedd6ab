package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/shuowang-ai/Weather-MCP/internal/api/http"
	"github.com/shuowang-ai/Weather-MCP/internal/caiyun"
	"github.com/shuowang-ai/Weather-MCP/internal/config"
	"github.com/shuowang-ai/Weather-MCP/internal/mcpserver"
	"github.com/shuowang-ai/Weather-MCP/internal/report"
	"github.com/shuowang-ai/Weather-MCP/internal/scheduler"
)

func main() {
	// The MCP transport owns stdout; everything we say goes to stderr.
	log.SetOutput(os.Stderr)

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.APIToken == "" {
		log.Printf("WARN: CAIYUN_WEATHER_API_TOKEN not set; tool calls will fail until it is configured")
	}

	// Shared HTTP client for outbound provider calls. Per-attempt
	// deadlines live in the request engine, not the transport.
	httpClient := &http.Client{}

	stats := caiyun.NewStats()
	client := caiyun.NewClient(cfg, httpClient, stats)
	station := caiyun.NewStationClient(cfg, httpClient, stats)
	svc := report.NewService(cfg, client, station)

	// Periodic stats summary for long-running servers.
	reporter := scheduler.New(stats, cfg.StatsLogInterval)
	if err := reporter.Start(); err != nil {
		log.Fatalf("failed to start stats reporter: %v", err)
	}
	defer reporter.Stop()

	// Operational sidecar: health and stats over plain HTTP.
	app := fiber.New(fiber.Config{
		AppName:               "knowair-weather",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})
	app.Use(logger.New(logger.Config{Output: os.Stderr}))
	app.Use(recover.New())
	httpapi.RegisterRoutes(app, cfg, stats)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("sidecar server stopped: %v", err)
		}
	}()

	// Serve MCP on stdio until the client hangs up.
	srv := mcpserver.New(svc)
	if err := srv.ServeStdio(); err != nil {
		log.Printf("mcp server stopped: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
