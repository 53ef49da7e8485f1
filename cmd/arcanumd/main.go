// arcanumd serves the reading composition API over HTTP.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mirelabs/arcanum/internal/config"
	"github.com/mirelabs/arcanum/internal/export"
	"github.com/mirelabs/arcanum/internal/httpapi"
	"github.com/mirelabs/arcanum/internal/interpret"
	"github.com/mirelabs/arcanum/internal/journal"
	"github.com/mirelabs/arcanum/internal/reading"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := os.MkdirAll(filepath.Dir(cfg.JournalPath), 0o755); err != nil {
		logger.Error("failed to create journal directory", "error", err)
		os.Exit(1)
	}
	store, err := journal.Open(cfg.JournalPath)
	if err != nil {
		logger.Error("failed to open journal", "path", cfg.JournalPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	var composer interpret.Composer
	if cfg.ComposerEnabled {
		c, err := interpret.NewAnthropicComposerFromEnv(cfg.AnthropicModel)
		if err != nil {
			logger.Error("failed to build interpreter", "error", err)
			os.Exit(1)
		}
		composer = c
		logger.Info("alternate voice enabled", "model", cfg.AnthropicModel)
	}

	svc := reading.NewService(logger)
	pdf := export.NewPDFRenderer(cfg.ChromePath)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(httpapi.RequestIDMiddleware())
	e.Use(httpapi.LoggingMiddleware(logger))
	httpapi.NewHandler(svc, store, composer, pdf, logger, httpapi.Options{
		DefaultDeck:      cfg.DefaultDeck,
		InterpretTimeout: cfg.InterpretTimeout,
	}).Register(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "journal", cfg.JournalPath)
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
