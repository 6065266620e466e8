package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"laborlaw-line-bot/config"
	_ "laborlaw-line-bot/docs" // Swagger docs
	lineDelivery "laborlaw-line-bot/internal/answer/delivery/line"
	answerUC "laborlaw-line-bot/internal/answer/usecase"
	"laborlaw-line-bot/internal/article"
	"laborlaw-line-bot/internal/faq"
	"laborlaw-line-bot/internal/gateway"
	"laborlaw-line-bot/internal/httpserver"
	"laborlaw-line-bot/internal/refdata"
	"laborlaw-line-bot/pkg/ai"
	"laborlaw-line-bot/pkg/line"
	"laborlaw-line-bot/pkg/log"
)

// @title       Labor Law LINE Bot API
// @description LINE webhook responder for Taiwan Labor Standards Act questions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// .env is optional, real deployments use environment variables.
	_ = godotenv.Load()

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

	logger.Info(ctx, "Starting Labor Law LINE Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Reference data
	articles := article.NewIndex(refdata.LoadArticles(ctx, logger, cfg.RefData.ArticlesPath))
	faqs := faq.NewIndex(refdata.LoadFAQs(ctx, logger, cfg.RefData.FAQPath))

	// 4. LINE client
	lineClient := line.NewClient(cfg.Line.ChannelAccessToken)

	// 5. AI answer gateway
	aiClient := ai.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)
	gw := gateway.New(aiClient, articles, gateway.Config{
		Detailed: gateway.TierConfig{
			Name:        "detailed",
			Timeout:     cfg.Gateway.Detailed.Timeout,
			MaxTokens:   cfg.Gateway.Detailed.MaxTokens,
			Temperature: 0.3,
		},
		// The reduced tier keeps the detailed timeout but cuts the
		// token budget to the concise level.
		Reduced: gateway.TierConfig{
			Name:        "reduced",
			Timeout:     cfg.Gateway.Detailed.Timeout,
			MaxTokens:   cfg.Gateway.Concise.MaxTokens,
			Temperature: 0.3,
		},
		Concise: gateway.TierConfig{
			Name:        "concise",
			Timeout:     cfg.Gateway.Concise.Timeout,
			MaxTokens:   cfg.Gateway.Concise.MaxTokens,
			Temperature: 0.3,
		},
		MaxRetries:  cfg.Gateway.MaxRetries,
		BackoffBase: cfg.Gateway.BackoffBase,
	}, logger)

	// 6. Resolver and LINE delivery
	uc := answerUC.New(logger, articles, faqs, gw)
	sec := lineDelivery.NewSecurityValidator(lineDelivery.SecurityConfig{
		ChannelSecret:   cfg.Line.ChannelSecret,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	})
	lineHandler := lineDelivery.New(logger, uc, lineClient, sec)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		LineHandler: lineHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
