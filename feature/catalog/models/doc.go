// Package models defines the persisted catalog tables.
//
// Two tables are owned by the catalog feature:
//
//   - catalog_records: one row per upstream record, keyed by the upstream id
//   - category_memberships: the record's categories, keyed by (record_id, category_name)
//
// Memberships reference their record with ON DELETE CASCADE. The reconciler never
// deletes records; it rewrites the membership set of every record it touches.
package models
