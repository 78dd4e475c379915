package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/priit2000/out-of-android/internal/api/rest"
	"github.com/priit2000/out-of-android/internal/domain/screening"
	"github.com/priit2000/out-of-android/internal/infrastructure/config"
	"github.com/priit2000/out-of-android/internal/infrastructure/repository"
	"github.com/priit2000/out-of-android/internal/infrastructure/settings"
	"github.com/priit2000/out-of-android/internal/infrastructure/telemetry"
	screeningsvc "github.com/priit2000/out-of-android/internal/service/screening"
)

func main() {
	var configPath = flag.String("config", "", "Path to configuration file")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := telemetry.SetupLogger(cfg.LogLevel)
	if err != nil {
		slog.Error("failed to setup logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	zapLogger, err := zap.NewProduction()
	if err != nil {
		logger.Error("failed to setup infrastructure logger", "error", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	store, err := settings.NewRedisStore(&cfg.Redis, zapLogger)
	if err != nil {
		logger.Error("failed to connect settings store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	var decisions rest.DecisionLog
	if cfg.Database.URL != "" {
		pool, err := repository.NewPool(ctx, &cfg.Database)
		if err != nil {
			logger.Error("failed to connect decision log database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		repo := repository.NewDecisionLogRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			logger.Error("failed to prepare decision log schema", "error", err)
			os.Exit(1)
		}
		decisions = repo
	} else {
		logger.Info("decision log disabled, no database configured")
	}

	service := screeningsvc.NewService(store, prometheusMetrics{}, screening.RealClock{}, logger)

	// Report responder state on startup so operators can tell at a glance
	// whether calls will be screened.
	if enabled, err := store.AutoResponseEnabled(ctx); err != nil {
		logger.Warn("could not read responder state", "error", err)
	} else {
		logger.Info("auto-responder state loaded", "enabled", enabled)
	}

	server := rest.NewServer(&cfg.Server, rest.NewHandler(service, store, decisions, logger), logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "error", err)
			os.Exit(1)
		}
	}
}
