package reconcile

import (
	"context"
	"fmt"

	"catalog-sync/feature/catalog/models"

	"gorm.io/gorm"
)

// Prepare creates the catalog tables if they are absent. Existing tables are
// left untouched.
func Prepare(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is not configured")
	}

	migrator := db.WithContext(ctx).Migrator()
	for _, model := range []any{&models.CatalogRecord{}, &models.CategoryMembership{}} {
		if migrator.HasTable(model) {
			continue
		}
		if err := migrator.CreateTable(model); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}

	return nil
}
