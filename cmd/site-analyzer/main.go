package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/renewsite/site-analyzer/internal/analysis"
	httpapi "github.com/renewsite/site-analyzer/internal/api/http"
	"github.com/renewsite/site-analyzer/internal/cache"
	"github.com/renewsite/site-analyzer/internal/config"
	"github.com/renewsite/site-analyzer/internal/geo"
	"github.com/renewsite/site-analyzer/internal/power"
	"github.com/renewsite/site-analyzer/internal/scheduler"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound POWER API calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// TTL cache keyed by (lat, lon, year).
	seriesCache := cache.New(cfg.CacheTTL)

	// NASA POWER point-data client.
	client := power.NewClient(httpClient, seriesCache)
	if cfg.PowerBaseURL != "" {
		client.SetBaseURL(cfg.PowerBaseURL)
	}

	// Core service running the analysis pipeline.
	service := analysis.NewService(client)

	// Optional address lookup.
	resolver := geo.NewResolver(cfg.GeocoderAPIKey)

	// Optional cache warming for watched sites.
	sched := scheduler.New(cfg.WatchSites, cfg.FetchInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "site-analyzer",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
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

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "site-analyzer",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service, resolver)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
