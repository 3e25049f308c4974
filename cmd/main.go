// Package main wires the HTTP server for the developer console backend.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/near/pagoda-console-sub002/config"
	"github.com/near/pagoda-console-sub002/internal/api"
	"github.com/near/pagoda-console-sub002/internal/repository"
	handlers_fiber "github.com/near/pagoda-console-sub002/internal/transport/http/server/handlers-fiber"
	"github.com/near/pagoda-console-sub002/internal/transport/http/middleware"
	"github.com/near/pagoda-console-sub002/internal/usecase"
	"github.com/near/pagoda-console-sub002/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, timeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))
	serv.Use(middleware.Metrics())

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	serv.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	authed := serv.Group("", middleware.Auth(cfg.Auth.JWTSecret, log))
	if cfg.Redis.Addr != "" {
		rl, err := middleware.NewRateLimiter(cfg.Redis, log)
		if err != nil {
			log.Errorw("rate limiter initialization error", "error", err)
			return
		}
		defer rl.Close()
		authed.Use(middleware.RateLimit(rl))
	}

	h := handlers_fiber.NewHandler(log, uc)
	api.RegisterHandlers(authed, h)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
