package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-assistant/config"
	_ "storefront-assistant/docs" // Swagger docs
	assistantHTTP "storefront-assistant/internal/assistant/delivery/http"
	"storefront-assistant/internal/assistant/repository/shopify"
	"storefront-assistant/internal/assistant/usecase"
	"storefront-assistant/internal/httpserver"
	"storefront-assistant/internal/middleware"
	"storefront-assistant/internal/router"
	"storefront-assistant/pkg/llmprovider"
	"storefront-assistant/pkg/log"
	"storefront-assistant/pkg/translate"
)

// @title       Storefront Assistant API
// @description Conversational front door over a Shopify commerce backend.
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

	logger.Info(ctx, "Starting Storefront Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store: %s (API %s)", cfg.Shopify.StoreURL, cfg.Shopify.APIVersion)

	// 3. LLM provider chain (classifier + chat share it)
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDurationOr(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDurationOr(cfg.LLM.MaxTotalTimeout, 45*time.Second),
	}, logger)
	logger.Infof(ctx, "LLM providers configured: %d", len(providers))

	// 4. Translation chain (optional; pass-through when empty)
	translator := translate.NewChainFromConfig(ctx, &cfg.Translate, logger)

	// 5. Commerce repository
	shopifyClient := shopify.NewClient(cfg.Shopify.StoreURL, cfg.Shopify.AccessToken, cfg.Shopify.APIVersion)
	commerceRepo := shopify.New(shopifyClient, logger)

	// 6. Semantic router + assistant usecase
	semanticRouter := router.New(llm, logger)
	assistantUC := usecase.New(
		logger,
		commerceRepo,
		llm,
		semanticRouter,
		translator,
		cfg.Assistant.TargetLanguage,
		cfg.Shopify.StoreURL,
	)

	// 7. Delivery
	assistantHandler := assistantHTTP.New(logger, assistantUC)
	mw := middleware.New(logger, cfg.Assistant.RateLimitPerMin)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		AssistantHandler: assistantHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
