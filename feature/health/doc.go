// Package health provides liveness and schema checks for the catalog mirror.
//
// # Endpoints
//
//   - GET /health: Always 200 while the process runs. The "db" field is "connected"
//     when a one-shot SELECT 1 succeeds, or "error: <message>" otherwise.
//   - GET /health/schema: Inspects the owned tables and reports missing columns per
//     table. Supported dialects: postgres, mysql and sqlite.
package health
