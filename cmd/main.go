package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"gads-manager/internal/adapter/googleads"
	"gads-manager/internal/adapter/http"
	"gads-manager/internal/adapter/postgres"
	"gads-manager/internal/adapter/redisstore"
	"gads-manager/internal/adapter/usecase"
	"gads-manager/internal/config"
	"gads-manager/internal/db"
)

// main is the entry point of the campaign manager backend. It loads
// configuration, optionally migrates and seeds the template database, wires
// the Postgres template store, Redis sessions and the Google Ads client into
// the use cases, then serves HTTP until a termination signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo templates seeded")
		}
	}

	rdb, err := db.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Error("redis connection error", slog.Any("error", err))
		return
	}
	defer rdb.Close()

	oauth := googleads.OAuthConfig(cfg.GoogleAds, cfg.OAuthRedirectURL())
	ads := googleads.NewClient(cfg.GoogleAds, oauth, nil)

	repo := postgres.NewTemplateRepository(pool)
	sessions := redisstore.NewSessionStore(rdb)
	deploySvc := usecase.NewDeployUseCase(repo, ads, logger, cfg.Deploy)
	templateSvc := usecase.NewTemplateUseCase(repo)

	handler := httpadapter.NewHandler(deploySvc, templateSvc, sessions, oauth, logger, cfg.HTTP, cfg.Redis.SessionTTL)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	// The server and its shutdown run in one group: a listen failure stops
	// the group, a signal triggers a graceful shutdown that waits for
	// in-flight deployments up to the configured timeout.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil {
		logger.Error("server error", slog.Any("error", err))
		return
	}
	exitCode = 0
	logger.Info("server gracefully stopped")
}
