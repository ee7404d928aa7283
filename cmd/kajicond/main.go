package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	httpadapter "github.com/cobra893021/kajicon-go/internal/adapters/http"
	"github.com/cobra893021/kajicon-go/internal/adapters/llm/gemini"
	"github.com/cobra893021/kajicon-go/internal/adapters/tables"
	"github.com/cobra893021/kajicon-go/internal/app"
	"github.com/cobra893021/kajicon-go/internal/config"
	"github.com/cobra893021/kajicon-go/internal/ratelimit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	loc, err := time.LoadLocation(cfg.LimitTimezone)
	if err != nil {
		logger.Error("invalid limit timezone", "tz", cfg.LimitTimezone, "error", err)
		os.Exit(1)
	}

	store := tables.NewEmbeddedStore()
	limiter := ratelimit.NewDaily(cfg.DailyLimit, loc)

	llmClient := gemini.NewClient(
		&http.Client{Timeout: cfg.LLMTimeout},
		cfg.GeminiAPIKey,
		cfg.GeminiBaseURL,
		cfg.GeminiModel,
		logger,
	)

	svc := app.NewDiagnosisService(store, limiter, llmClient, cfg.GeminiModel)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "daily_limit", cfg.DailyLimit)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
