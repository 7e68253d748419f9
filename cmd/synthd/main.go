package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/rmartin/promptsynth/internal/auth"
	"github.com/rmartin/promptsynth/internal/catalog"
	"github.com/rmartin/promptsynth/internal/config"
	"github.com/rmartin/promptsynth/internal/history"
	"github.com/rmartin/promptsynth/internal/httpapi"
	"github.com/rmartin/promptsynth/internal/llm"
	"github.com/rmartin/promptsynth/internal/logger"
	"github.com/rmartin/promptsynth/internal/server"
	"github.com/rmartin/promptsynth/internal/service"
	"github.com/rmartin/promptsynth/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.DevMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := llm.NewGemini(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		log.Error("gemini client init failed", zap.Error(err))
		os.Exit(1)
	}
	if cfg.DevMode {
		log.Info("gemini model loaded", zap.String("model", cfg.Model))
	}

	store := history.NewStore(cfg.HistoryDir)
	generator := service.NewGenerator(client, store, log)
	sessions := session.NewManager(auth.DemoCredentials(), catalog.RandomTip)

	handler := httpapi.NewRouter(generator, sessions, cfg.DevMode, log)
	srv := server.New(cfg.Port, handler, log)

	if err := srv.Run(ctx); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		os.Exit(1)
	}
}
