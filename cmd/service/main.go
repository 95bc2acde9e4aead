// Package main is the entry point for the service.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/carinsurance-service/internal/adapters/store/gormstore"
	"github.com/jsamuelsen/carinsurance-service/internal/platform/config"
	"github.com/jsamuelsen/carinsurance-service/internal/platform/logging"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	profile   string
	configDir string
}

// newRootCmd builds the command tree. Running the binary without a
// subcommand serves the API, as the container entrypoint expects.
func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "carinsurance-service",
		Short: "Car insurance records API",
		Long: `Serves the car insurance API: cars, policy validity checks, claims and
per-car history, plus a background sweep that reports expired policies.

Configuration is read from configs/base.yaml, configs/{profile}.yaml and
APP_ environment variables, in increasing order of precedence.`,
		SilenceUsage: true,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), flags)
		},
	}

	defaultProfile := os.Getenv("APP_ENVIRONMENT")
	if defaultProfile == "" {
		defaultProfile = "local"
	}

	rootCmd.PersistentFlags().StringVarP(&flags.profile, "profile", "p", defaultProfile,
		"Configuration profile, e.g. local or prod")
	rootCmd.PersistentFlags().StringVar(&flags.configDir, "config-dir", "configs",
		"Directory holding base.yaml and the profile files")

	rootCmd.AddCommand(
		newServeCmd(flags),
		newSweepCmd(flags),
		newMigrateCmd(flags),
	)

	return rootCmd
}

// runtime holds what every subcommand needs: validated configuration, the
// process logger and an open record store.
type runtime struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *gormstore.Store

	logCloser io.Closer
}

// bootstrap loads and validates configuration (fail fast), sets up logging
// and opens the record store.
func bootstrap(flags *globalFlags) (*runtime, error) {
	cfg, err := config.LoadFrom(flags.configDir, flags.profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, logCloser := logging.NewWithCloser(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, os.Stdout)
	logging.SetDefault(logger)

	store, err := gormstore.Open(gormstore.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
		Logger:          logger,
	})
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("opening record store: %w", err)
	}

	return &runtime{cfg: cfg, logger: logger, store: store, logCloser: logCloser}, nil
}

// migrate applies schema changes and optionally loads the demo data.
func (r *runtime) migrate(ctx context.Context, seed bool) error {
	if err := r.store.Migrate(ctx); err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "schema migrated", slog.String("driver", r.cfg.Database.Driver))

	if !seed {
		return nil
	}

	seeded, err := r.store.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seeding demo data: %w", err)
	}

	r.logger.InfoContext(ctx, "demo data", slog.Bool("seeded", seeded))

	return nil
}

// close releases the store and flushes the log file.
func (r *runtime) close() error {
	return errors.Join(r.store.Close(), r.logCloser.Close())
}
