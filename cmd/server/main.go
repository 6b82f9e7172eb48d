// Package main runs the business service: it loads the profile's
// configuration, opens the configured storage backend, wires the order and
// customer services with samber/do v2 and serves HTTP until SIGINT or
// SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-business-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-business-service/internal/platform/config"
	"github.com/jsamuelsen11/go-business-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-business-service/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	flushTimeout          = 5 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log, os.Stderr, slog.String("service", cfg.Telemetry.ServiceName))
	slog.SetDefault(logger)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flush(logger, "telemetry", otel.Shutdown)

	store, err := openBackend(ctx, cfg, otel.metrics, logger)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer flush(logger, "storage", func(context.Context) error { return store.close() })

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, store)
	registerDependencies(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	if store.checker != nil {
		do.MustInvoke[ports.HealthRegistry](injector).Register(store.checker)
	}

	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		logger.Info("shutdown signal received", slog.String("driver", cfg.Storage.Driver))
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), serverShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	if err := <-serverErr; err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// flush runs a release step with its own deadline and logs its failure.
func flush(logger *slog.Logger, what string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		logger.Error(what+" shutdown error", slog.Any("error", err))
	}
}
