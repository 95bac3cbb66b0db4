package cmd

import (
	"context"
	"fmt"

	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/logger"
	"catalog-sync/feature/catalog/models"
	catalogreconcile "catalog-sync/feature/catalog/reconcile"
	"catalog-sync/feature/health/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates the catalog tables if they are absent.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the catalog tables if they do not exist",
	Long: `Creates catalog_records and category_memberships when absent and reports
missing columns of existing tables. Existing tables are never altered.`,
	RunE: runMigrate,
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	if err := catalogreconcile.Prepare(context.Background(), db); err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}

	report, err := checks.CheckSchema(db, models.ExpectedColumns())
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}

	for table, tbl := range report.Tables {
		l.Info("Table checked",
			zap.String("table", table),
			zap.String("status", tbl.Status),
			zap.Strings("missing_columns", tbl.MissingColumns),
		)
	}
	if !report.Matched {
		return fmt.Errorf("schema does not match the catalog models: %v", report.Errors)
	}

	l.Info("Schema ready")
	return nil
}
