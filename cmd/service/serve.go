package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/carinsurance-service/internal/adapters/http"
	"github.com/jsamuelsen/carinsurance-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/carinsurance-service/internal/adapters/lock"
	"github.com/jsamuelsen/carinsurance-service/internal/app"
	"github.com/jsamuelsen/carinsurance-service/internal/platform/clock"
	"github.com/jsamuelsen/carinsurance-service/internal/platform/config"
	"github.com/jsamuelsen/carinsurance-service/internal/platform/metrics"
	"github.com/jsamuelsen/carinsurance-service/internal/platform/telemetry"
	"github.com/jsamuelsen/carinsurance-service/internal/ports"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and run the expiration sweeper",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), flags)
		},
	}
}

func runServe(ctx context.Context, flags *globalFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Load configuration, logging and the record store
	rt, err := bootstrap(flags)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := rt.close(); closeErr != nil {
			rt.logger.Error("closing resources", slog.Any("error", closeErr))
		}
	}()

	cfg, logger := rt.cfg, rt.logger

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 2. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	if telProvider.Enabled() {
		logger.Info("exporting telemetry", slog.String("endpoint", cfg.Telemetry.Endpoint))
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 3. Schema
	if cfg.Database.AutoMigrate {
		if err := rt.migrate(ctx, false); err != nil {
			return err
		}
	}

	// 4. Clock deciding which day "today" is
	sysClock, err := clock.NewSystem(cfg.App.Timezone)
	if err != nil {
		return fmt.Errorf("creating clock: %w", err)
	}

	// 5. Health registry and metrics registry
	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(rt.store); err != nil {
		return fmt.Errorf("registering database health check: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 6. Expiration sweeper
	var sweeper *app.ExpirationSweeper

	if cfg.Sweeper.Enabled {
		sweepLock, closeLock, err := newSweepLock(ctx, cfg.Sweeper.Lock, healthRegistry)
		if err != nil {
			return err
		}
		defer closeLock()

		sweeper = app.NewExpirationSweeper(app.SweeperConfig{
			Policies: rt.store.Policies(),
			Clock:    sysClock,
			Lock:     sweepLock,
			Metrics:  metrics.NewSweeper(registry),
			Interval: cfg.Sweeper.Interval,
			Logger:   logger,
		})
	}

	// 7. Car service and handlers
	carService := app.NewCarService(app.CarServiceConfig{
		Cars:     rt.store.Cars(),
		Owners:   rt.store.Owners(),
		Policies: rt.store.Policies(),
		Claims:   rt.store.Claims(),
		Clock:    sysClock,
		Logger:   logger,
	})

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo).WithGatherer(registry)
	carHandler := handlers.NewCarHandler(carService)

	// 8. HTTP server with all middleware and routes
	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.NewDefaultRouterConfig(logger, cfg, healthHandler, carHandler))

	serverErr, err := server.Start()
	if err != nil {
		return err
	}

	if sweeper != nil {
		sweeper.Start()
	}

	// 9. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, sweeper, serverErr, cfg.Server.ShutdownTimeout)
}

// newSweepLock returns the configured sweep lock and a function releasing
// its resources. A redis lock is also registered as a readiness check.
func newSweepLock(
	ctx context.Context,
	cfg config.LockConfig,
	healthRegistry ports.HealthRegistry,
) (ports.SweepLock, func(), error) {
	if cfg.Backend != config.LockBackendRedis {
		return lock.NewLocal(), func() {}, nil
	}

	redisLock, client, err := lock.NewRedisFromURL(ctx, cfg.RedisURL,
		lock.WithKey(cfg.Key),
		lock.WithTTL(cfg.TTL),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting sweep lock: %w", err)
	}

	if err := healthRegistry.Register(redisLock); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("registering redis health check: %w", err)
	}

	return redisLock, func() { _ = client.Close() }, nil
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then stops the sweeper and drains the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	sweeper *app.ExpirationSweeper,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error

	select {
	case err := <-serverErr:
		runErr = fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))

	case <-ctx.Done():
		logger.Info("context canceled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("server shutdown: %w", err)
	}

	if sweeper != nil {
		if err := sweeper.Stop(shutdownCtx); err != nil && runErr == nil {
			runErr = err
		}
	}

	logger.Info("shutdown complete")

	return runErr
}
