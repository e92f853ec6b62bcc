package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/do"
	_ "go.uber.org/automaxprocs"

	"promptimage/internal/infra"
	"promptimage/internal/inject"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}

	sink, err := infra.OpenLogSink(cfg.LogFile)
	if err != nil {
		panic(err)
	}
	var logger infra.Logger
	if sink != nil {
		defer sink.Close()
		logger = infra.NewLogger(cfg.AppEnv, sink)
	} else {
		logger = infra.NewLogger(cfg.AppEnv, nil)
	}

	injector := inject.Setup(cfg, logger)
	server, err := do.Invoke[*infra.HTTPServer](injector)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("addr", server.Addr()).
		Str("provider", cfg.PromptProvider).
		Str("shape", cfg.PipelineShape).
		Msg("API listening")
	if err := server.Run(ctx, shutdownTimeout); err != nil {
		logger.Error().Err(err).Msg("http server failed")
		return
	}
	logger.Info().Msg("server stopped")
}
