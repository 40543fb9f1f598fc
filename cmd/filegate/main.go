package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/NYTimes/gziphandler"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/filegate/filegate/core/handler"
	"github.com/filegate/filegate/core/logger"
	"github.com/filegate/filegate/core/response"
	"github.com/filegate/filegate/core/router"
	"github.com/filegate/filegate/core/sandbox"
	"github.com/filegate/filegate/core/server"
	"github.com/filegate/filegate/core/static"
	"github.com/filegate/filegate/middleware"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		slog.Error("failed to parse config", logger.Error(err))
		os.Exit(1)
	}

	log := logger.New(cfg.Log, os.Stderr)
	slog.SetDefault(log)

	root, err := sandbox.Open(cfg.Dir)
	if err != nil {
		log.Error("failed to open serving directory", logger.Error(err), logger.Path(cfg.Dir))
		os.Exit(1)
	}
	defer root.Close()

	r := router.New(router.WithLogger[*router.Context](log))
	r.Use(
		middleware.RequestID[*router.Context](),
		middleware.LoggingWithLogger[*router.Context](log),
	)
	r.Get(cfg.Prefix, static.Dir[*router.Context](cfg.Prefix, root, static.WithLogger(log)))
	r.Get("/healthz", func(ctx *router.Context) handler.Response {
		return response.String("ok")
	})

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		log.Error("failed to configure server", logger.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("serving directory",
		logger.Path(root.Name()),
		slog.String("prefix", cfg.Prefix),
		slog.String("addr", cfg.Server.Addr),
	)

	if err := srv.Run(ctx, gziphandler.GzipHandler(r)); err != nil {
		log.Error("server error", logger.Error(err))
		os.Exit(1)
	}
}
