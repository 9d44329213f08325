package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"webhook-receiver/config"
	_ "webhook-receiver/docs" // Swagger docs
	"webhook-receiver/internal/httpserver"
	"webhook-receiver/internal/metrics"
	"webhook-receiver/internal/middleware"
	webhookHTTP "webhook-receiver/internal/webhook/delivery/http"
	"webhook-receiver/internal/webhook/repository/memory"
	"webhook-receiver/internal/webhook/usecase"
	"webhook-receiver/pkg/log"
)

// @title       Webhook Receiver API
// @description HMAC-SHA256 verified webhook receiver with per-webhook event history.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Webhook Receiver...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	metrics.Register()

	// 4. Webhook domain: registry -> usecase -> HTTP handler
	registry := memory.New()
	webhookUC := usecase.New(logger, registry)
	webhookHandler := webhookHTTP.New(logger, webhookUC)

	mw := middleware.New(logger, cfg.Webhook.RateLimitPerMin, cfg.Webhook.TrustedSources)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     mw,
		WebhookHandler: webhookHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run until signalled, then drain
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
