package reconcile

import (
	"context"
	"fmt"

	"catalog-sync/core/reconcile"
	"catalog-sync/core/upstream"
	"catalog-sync/feature/catalog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogAdapter implements reconcile.Adapter for the upstream catalog.
type CatalogAdapter struct {
	client upstream.Client
	db     *gorm.DB
}

// NewAdapter creates a new catalog adapter.
func NewAdapter(client upstream.Client, db *gorm.DB) *CatalogAdapter {
	return &CatalogAdapter{client: client, db: db}
}

// Name returns the adapter name.
func (a *CatalogAdapter) Name() string {
	return "catalog"
}

// FetchPage fetches one list page and converts it to engine entries.
func (a *CatalogAdapter) FetchPage(ctx context.Context, limit, offset int) (*reconcile.Page, error) {
	raw, err := a.client.FetchPage(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	page := &reconcile.Page{
		Count:    raw.Count,
		Next:     raw.Next,
		Previous: raw.Previous,
		Entries:  make([]reconcile.Entry, 0, len(raw.Results)),
	}
	for _, entry := range raw.Results {
		page.Entries = append(page.Entries, reconcile.Entry{Name: entry.Name, URL: entry.URL})
	}

	return page, nil
}

// FetchDetail fetches the raw detail behind url.
func (a *CatalogAdapter) FetchDetail(ctx context.Context, url string) (reconcile.Detail, error) {
	detail, err := a.client.FetchDetail(ctx, url)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// Normalize converts an *upstream.Detail into a *models.CatalogRecord carrying
// its memberships in Categories.
func (a *CatalogAdapter) Normalize(detail reconcile.Detail) (reconcile.Record, error) {
	raw, ok := detail.(*upstream.Detail)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected detail type %T", reconcile.ErrMalformedRecord, detail)
	}

	record, memberships, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	record.Categories = memberships

	return record, nil
}

// Commit persists every record and replaces its memberships in one transaction.
func (a *CatalogAdapter) Commit(ctx context.Context, records []reconcile.Record) error {
	batch := make([]*models.CatalogRecord, 0, len(records))
	for _, r := range records {
		record, ok := r.(*models.CatalogRecord)
		if !ok {
			return fmt.Errorf("unexpected record type %T", r)
		}
		batch = append(batch, record)
	}

	return SaveRecords(ctx, a.db, batch)
}

// SaveRecords upserts records by primary key and rewrites their memberships.
// The whole batch is one transaction: any failure rolls back every record.
func SaveRecords(ctx context.Context, db *gorm.DB, records []*models.CatalogRecord) error {
	if db == nil {
		return fmt.Errorf("database connection is not configured")
	}
	if len(records) == 0 {
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			if err := upsertRecord(tx, record); err != nil {
				return err
			}
		}
		return nil
	})
}

// upsertRecord overwrites one record and replaces its memberships.
func upsertRecord(tx *gorm.DB, record *models.CatalogRecord) error {
	err := tx.Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(models.MutableColumns),
		}).
		Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to upsert record %d: %w", record.ID, err)
	}

	if err := tx.Where("record_id = ?", record.ID).Delete(&models.CategoryMembership{}).Error; err != nil {
		return fmt.Errorf("failed to clear memberships of record %d: %w", record.ID, err)
	}

	if len(record.Categories) == 0 {
		return nil
	}

	memberships := make([]models.CategoryMembership, len(record.Categories))
	for i, m := range record.Categories {
		m.RecordID = record.ID
		memberships[i] = m
	}
	if err := tx.Omit(clause.Associations).Create(&memberships).Error; err != nil {
		return fmt.Errorf("failed to insert memberships of record %d: %w", record.ID, err)
	}

	return nil
}
