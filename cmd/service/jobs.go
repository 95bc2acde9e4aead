package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/carinsurance-service/internal/adapters/lock"
	"github.com/jsamuelsen/carinsurance-service/internal/app"
	"github.com/jsamuelsen/carinsurance-service/internal/platform/clock"
	"github.com/jsamuelsen/carinsurance-service/internal/platform/metrics"
	"github.com/jsamuelsen/carinsurance-service/internal/ports"
)

// newSweepCmd runs a single expiration sweep, for cron-style scheduling
// instead of the in-process loop.
func newSweepCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Flag and report expired policies once, then exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			rt, err := bootstrap(flags)
			if err != nil {
				return err
			}
			defer func() { _ = rt.close() }()

			sysClock, err := clock.NewSystem(rt.cfg.App.Timezone)
			if err != nil {
				return fmt.Errorf("creating clock: %w", err)
			}

			sweepLock, closeLock, err := newSweepLock(ctx, rt.cfg.Sweeper.Lock, ports.NewHealthRegistry())
			if err != nil {
				return err
			}
			defer closeLock()

			if _, local := sweepLock.(*lock.Local); local {
				rt.logger.WarnContext(ctx, "sweep lock is process-local; concurrent sweep jobs are not serialized")
			}

			sweeper := app.NewExpirationSweeper(app.SweeperConfig{
				Policies: rt.store.Policies(),
				Clock:    sysClock,
				Lock:     sweepLock,
				Metrics:  metrics.NewSweeper(nil),
				Logger:   rt.logger,
			})

			n, err := sweeper.SweepOnce(ctx)
			if err != nil {
				return fmt.Errorf("expiration sweep: %w", err)
			}

			rt.logger.InfoContext(ctx, "expiration sweep finished", slog.Int("flagged", n))
			fmt.Fprintf(cmd.OutOrStdout(), "%d policies flagged as expired\n", n)

			return nil
		},
	}
}

// newMigrateCmd applies the schema, optionally loading demo data.
func newMigrateCmd(flags *globalFlags) *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := bootstrap(flags)
			if err != nil {
				return err
			}
			defer func() { _ = rt.close() }()

			return rt.migrate(cmd.Context(), seed)
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "Load demo owners, cars and policies into an empty database")

	return cmd
}
