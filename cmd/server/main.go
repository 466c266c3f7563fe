package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/disposable-platform/phishguard/internal/analyzer"
	"github.com/disposable-platform/phishguard/internal/classifier"
	"github.com/disposable-platform/phishguard/internal/config"
	"github.com/disposable-platform/phishguard/internal/mlruntime"
	"github.com/disposable-platform/phishguard/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	setupLogger(cfg.Log)

	runtime := mlruntime.NewClient(cfg.Runtime.BaseURL, cfg.Runtime.Timeout)
	bert := classifier.NewBERT(runtime)

	// Load once before serving; a load failure is fatal. There is no
	// partial-service mode.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Runtime.Timeout)
	defer cancel()
	if err := bert.Load(ctx); err != nil {
		log.Fatalf("failed to load model: %v", err)
	}

	srv := server.New(*cfg, analyzer.New(bert))
	slog.Info("starting phishguard", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
