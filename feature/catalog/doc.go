// Package catalog provides the HTTP surface of the catalog mirror.
//
// It exposes the fetch-and-reconcile pipeline and a read-only view of the upstream list.
//
// # Endpoints
//
//   - GET /sync?limit=&offset=: Reconciles one page into the store and returns
//     {"saved_count", "limit", "offset"}.
//   - GET /debug/list?limit=&offset=: Returns the upstream page unchanged
//     ({"count", "next", "previous", "results"}). Nothing is persisted.
//
// # Validation
//
// limit must be an integer in [1, max_limit] (default default_limit) and offset a
// non-negative integer (default 0). Invalid values are rejected with 400 before any
// upstream call.
//
// # Errors
//
// Internal error details are logged with the request ray id and never returned:
//   - upstream list failure: 502 {"error": "upstream error"}
//   - rolled back commit: 500 {"error": "persistence failure"}
//
// # Snapshots
//
// When an Archiver is configured, every successful run that saved at least one record
// is written to object storage as JSON under {prefix}/{date}/{unix}-o{offset}-l{limit}.json.
// Archive failures are logged and never change the response.
package catalog
