// @title                       Dispatch API
// @version                     1.0
// @description                 Courier dispatch, live location and order tracking for restaurant deliveries.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dispatch/cmd"
	"dispatch/internal/adapters/out/postgres"
	redisout "dispatch/internal/adapters/out/redis"
	"dispatch/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments pass the environment directly
	_ = godotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs, err := cmd.LoadConfig(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{Level: configs.LogLevel, Pretty: configs.LogPretty, Service: "dispatch"})

	gormDB, err := postgres.Open(ctx, configs.DB.DSN(), postgres.PoolConfig{
		MaxOpenConns:    configs.DB.MaxOpenConns,
		MaxIdleConns:    configs.DB.MaxIdleConns,
		ConnMaxLifetime: configs.DB.ConnMaxLifetime,
	}, log)
	if err != nil {
		return err
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}

	var redisClient *redis.Client
	if configs.Redis.Addr != "" {
		redisClient, err = redisout.Connect(ctx, redisout.Config{
			Addr:     configs.Redis.Addr,
			Password: configs.Redis.Password,
			DB:       configs.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer redisClient.Close()
	}

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, log)

	e, err := app.CreateRouter()
	if err != nil {
		return err
	}
	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	// open event streams end with the process context instead of holding shutdown
	e.Server.BaseContext = func(net.Listener) context.Context { return gctx }

	g.Go(func() error {
		log.Info().Str("port", configs.HTTPPort).Msg("http server started")
		if err := e.Start("0.0.0.0:" + configs.HTTPPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if listener := app.CreateAppendListener(); listener != nil {
		g.Go(func() error {
			return listener.Run(gctx)
		})
	}

	jobManager.Start()

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		jobManager.Stop(shutdownCtx)
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
