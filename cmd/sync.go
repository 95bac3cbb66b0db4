package cmd

import (
	"context"
	"fmt"
	"strconv"

	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/logger"
	"catalog-sync/core/reconcile"
	"catalog-sync/core/upstream"
	"catalog-sync/core/utils"
	"catalog-sync/feature/catalog"
	catalogreconcile "catalog-sync/feature/catalog/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for sync command
	syncLimit  int
	syncOffset int
	syncDryRun bool
)

// syncCmd runs one reconciliation from the terminal.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile one page of the remote catalog into the database",
	Long: `Fetches one page of the remote catalog, resolves every entry concurrently and
commits the valid records in a single transaction.

Examples:
  # Sync the first page with the default size
  sync

  # Sync entries 100-149
  sync --limit 50 --offset 100

  # Report what would be saved without writing
  sync --limit 50 --dry-run`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().IntVar(&syncLimit, "limit", 0, "Page size (1-100, default from server.default_limit)")
	syncCmd.Flags().IntVar(&syncOffset, "offset", 0, "Page offset (>= 0)")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Plan only, do not write to the database")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	// Validate pagination the same way the HTTP endpoint does
	limitArg := ""
	if cmd.Flags().Changed("limit") {
		limitArg = strconv.Itoa(syncLimit)
	}
	defaultLimit, maxLimit := cfg.Server.Limits()
	limit, offset, err := utils.ParseLimitOffset(limitArg, strconv.Itoa(syncOffset), defaultLimit, maxLimit)
	if err != nil {
		return err
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	if err := catalogreconcile.Prepare(ctx, db); err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}

	client := upstream.NewClient(cfg.Upstream)
	defer client.Close()
	adapter := catalogreconcile.NewAdapter(client, db)

	l.Info("Starting catalog sync",
		zap.Int("limit", limit),
		zap.Int("offset", offset),
		zap.Bool("dry_run", syncDryRun),
	)

	// Step 1: Dry run plans and reports only
	if syncDryRun {
		spec := &reconcile.Spec{Adapter: adapter, Limit: limit, Offset: offset, Logger: l}
		plan, err := reconcile.Plan(ctx, spec)
		if err != nil {
			return fmt.Errorf("failed to plan sync: %w", err)
		}
		printPlanReport(l, plan)
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	// Step 2: Full run through the same service the HTTP endpoint uses
	svc := catalog.NewService(adapter, nil, newArchiver(ctx, cfg, l), l)
	summary, err := svc.Sync(ctx, limit, offset, l)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	l.Info("Sync completed",
		zap.Int("saved_count", summary.SavedCount),
		zap.Int("limit", summary.Limit),
		zap.Int("offset", summary.Offset),
	)
	return nil
}

// printPlanReport prints a formatted plan report using logger.
func printPlanReport(l *zap.Logger, plan *reconcile.ReconcilePlan) {
	s := plan.Summary

	l.Info("Sync plan",
		zap.Int("listed", s.Listed),
		zap.Int("ready", s.Ready),
		zap.Int("missing_url", s.MissingURL),
		zap.Int("fetch_failed", s.FetchFailed),
		zap.Int("malformed", s.Malformed),
	)

	// Show sample of skipped entries (max 5 for logger)
	maxShow := 5
	if len(plan.Skipped) < maxShow {
		maxShow = len(plan.Skipped)
	}
	for i := 0; i < maxShow; i++ {
		skip := plan.Skipped[i]
		l.Info("Skipped entry",
			zap.String("name", skip.Name),
			zap.String("reason", string(skip.Reason)),
			zap.String("error", skip.Error),
		)
	}
	if len(plan.Skipped) > maxShow {
		l.Info("Additional skipped entries not shown", zap.Int("count", len(plan.Skipped)-maxShow))
	}
}
