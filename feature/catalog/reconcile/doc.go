// Package reconcile implements the catalog adapter for the core reconcile engine.
//
// The adapter wires three concerns together:
//
//   - Fetching: list pages and details come from the upstream client
//   - Mapping: Normalize turns a raw detail into a CatalogRecord plus its memberships
//   - Persistence: SaveRecords writes a batch in a single gorm transaction
//
// # Persistence
//
// For every record of a batch, in page order:
//
//  1. Upsert catalog_records by id, overwriting every tracked column (remote wins)
//  2. Delete every category_memberships row of that id
//  3. Insert the memberships of the current payload
//
// Any failure rolls back the whole batch, so the store either contains every record
// of the run or none of them. Running the same batch twice leaves the store unchanged.
//
// # Schema
//
// Prepare creates both tables when they are absent. It is not a migration tool: an
// existing table is never altered.
package reconcile
