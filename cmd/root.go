package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/malexander/workhours/internal/config"
	"github.com/malexander/workhours/internal/model"
	"github.com/malexander/workhours/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "workhours",
	Short: "Track and report work hours across three jobs",
	Long: `workhours tracks worked and scheduled shifts for three concurrent jobs
(bus, HD, delivery) in a local SQLite database, and reports daily, driving,
and rolling 8-day totals against hours-of-service limits.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(futureCmd)
	rootCmd.AddCommand(alertsCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(manifestCmd)
	rootCmd.AddCommand(statusCmd)
}

// openStore loads configuration and opens the shift database. A database
// that cannot be opened is the one unrecoverable condition: there is no
// degraded mode without persisted shifts, so this logs fatal.
func openStore(ctx context.Context) (*storage.Store, *zap.Logger) {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("cannot load configuration", zap.Error(err))
	}

	store, err := storage.Open(cfg.DatabasePath, logger)
	if err != nil {
		logger.Fatal("cannot open shift database", zap.String("path", cfg.DatabasePath), zap.Error(err))
	}
	if err := store.Migrate(ctx); err != nil {
		logger.Fatal("cannot prepare shift database", zap.Error(err))
	}
	return store, logger
}

// readAllJobs loads the three jobs' full shift tables.
func readAllJobs(ctx context.Context, store *storage.Store) (bus, hd, delivery []model.Shift) {
	var err error
	if bus, err = store.ReadTable(ctx, model.Bus); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if hd, err = store.ReadTable(ctx, model.HomeDepot); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if delivery, err = store.ReadTable(ctx, model.Delivery); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return bus, hd, delivery
}

// jobFlag parses the shared --job flag value.
func jobFlag(value string) model.Job {
	job, err := model.ParseJob(value)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return job
}
