// Package reconcile provides the generic fetch-and-reconcile engine that mirrors one
// page of a remote catalog into the local store.
//
// A run is a single pass over a caller-selected page:
//   - Fetch the list page through the adapter
//   - Resolve every entry concurrently (detail fetch plus normalization)
//   - Join all resolutions, tolerating per-entry failures
//   - Commit the valid records in one transaction
//
// # Architecture
//
// The reconcile system consists of three main components:
//
// 1. Engine: Fan-out, join and error classification. Each entry gets its own goroutine
//    which writes only its own result slot, so the join needs no locks. Entries without
//    a detail URL, failed detail fetches and malformed details are skipped and logged;
//    they never abort the run.
//
// 2. Adapter: Model-specific implementations that define how to fetch the page and the
//    details, how to normalize a raw detail into a record, and how to commit a batch.
//
// 3. Cache: A singleflight page cache with an optional TTL for read-only page views.
//    Reconcile never reads from it.
//
// # Error handling
//
// Exactly two errors escape a run. An *UpstreamError (errors.Is ErrUpstreamUnavailable)
// means the page could not be fetched and nothing was written. A *PersistenceError
// (errors.Is ErrPersistenceFailure) means the commit failed and was rolled back.
//
// # Cancellation
//
// Reconcile detaches from the caller's cancellation. Per-request timeouts are enforced
// by the adapter's HTTP client; there is no batch-wide deadline.
//
// # Usage Example
//
//	adapter := catalogreconcile.NewAdapter(upstreamClient, db)
//	spec := &reconcile.Spec{
//	    Adapter: adapter,
//	    Limit:   20,
//	    Offset:  0,
//	    Logger:  log,
//	}
//
//	// Full run
//	summary, err := reconcile.Reconcile(ctx, spec)
//
//	// Dry run
//	plan, err := reconcile.Plan(ctx, spec)
//	summary, err := reconcile.ApplyPlan(ctx, spec, plan, reconcile.ReconcileOptions{DryRun: true})
package reconcile
