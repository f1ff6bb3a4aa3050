package main

import (
	"context"
	"corvo-delivery/internal/bootstrap"
	"corvo-delivery/internal/config"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	driverFlag string
	timeout    time.Duration

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dbtool",
	Short: "Maintain the CorvoDelivery SQL database",
	Long: `dbtool creates the schema, seeds the fixture and edits couriers and
deliveries directly in the configured SQL database (DB_DRIVER=sqlite|pgx).

The in-memory driver has nothing to maintain, so memory falls back to sqlite.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if driverFlag != "" {
			cfg.DBDriver = driverFlag
		}
		if cfg.DBDriver == config.DriverMemory {
			cfg.DBDriver = config.DriverSQLite
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = bootstrap.NewLogger(cfg)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *bootstrap.Store) error {
			logger.Info("schema ready", zap.String("driver", cfg.DBDriver))
			fmt.Fprintln(cmd.OutOrStdout(), "Schema ready.")
			return nil
		})
	},
}

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the database contents with a fixture",
	Long: `Loads a JSON or YAML fixture (default: SEED_PATH, or the built-in
fixture when that file does not exist) and replaces every courier,
delivery and report row with it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := seedFile
		if path == "" {
			path = cfg.SeedPath
		}
		fixture, err := bootstrap.LoadFixture(path, logger)
		if err != nil {
			return err
		}

		return withStore(cmd, func(ctx context.Context, store *bootstrap.Store) error {
			if err := store.SQL.Seed(ctx, fixture); err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}
			logger.Info("seeding complete",
				zap.String("path", path),
				zap.Int("couriers", len(fixture.Couriers)),
				zap.Int("deliveries", len(fixture.Deliveries)),
			)
			fmt.Fprintln(cmd.OutOrStdout(), "Seeding complete.")
			return nil
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&driverFlag, "driver", "", "Override DB_DRIVER (sqlite or pgx)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Operation timeout")

	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Fixture file (.json, .yaml, .yml)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(couriersCmd)
	rootCmd.AddCommand(deliveriesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withStore opens the SQL store (creating the schema) for the duration of fn.
func withStore(cmd *cobra.Command, fn func(ctx context.Context, store *bootstrap.Store) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	store, err := bootstrap.OpenSQLStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(ctx, store)
}
