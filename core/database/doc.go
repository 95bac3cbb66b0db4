// Package database owns the relational store handle.
//
// It wraps GORM so the rest of the service receives one explicitly constructed
// *gorm.DB: opened once at process start, shared by every request, and closed
// at shutdown. Postgres is the production driver; MySQL and SQLite are
// supported for local runs and tests.
//
// # Connect
//
// Connect builds the driver-specific DSN, applies pool settings and pings the
// server with a bounded timeout. SQLite handles are pinned to a single
// connection so an in-memory database survives across queries.
//
// # Probing and Inspection
//
// Ping issues a one-shot SELECT 1 used by the health endpoint. GetTableColumns
// and MissingColumns inspect the live schema so bootstrap results can be
// reported.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//	defer database.Close(db)
//
//	columns, err := database.GetTableColumns(db, "catalog_records")
package database
