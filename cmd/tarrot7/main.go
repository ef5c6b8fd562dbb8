package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	httpadapter "github.com/front10k/tarrot7/internal/adapters/http"
	"github.com/front10k/tarrot7/internal/adapters/llm/openai"
	"github.com/front10k/tarrot7/internal/adapters/locales"
	"github.com/front10k/tarrot7/internal/app"
	"github.com/front10k/tarrot7/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	templates, err := locales.NewStore().Get(cfg.ReportLocale)
	if err != nil {
		logger.Error("failed to load locale bundle", "locale", cfg.ReportLocale, "error", err)
		os.Exit(1)
	}

	model := openai.NewClient(
		&http.Client{Timeout: cfg.LLMTimeout},
		cfg.OpenAIAPIKey,
		cfg.OpenAIBaseURL,
		cfg.OpenAIModel,
		logger,
	)

	svc := app.NewAnalysisService(model, templates, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = httpadapter.JSONSerializer{}

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc, templates)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "locale", cfg.ReportLocale)
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
