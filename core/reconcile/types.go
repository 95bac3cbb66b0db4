package reconcile

import "go.uber.org/zap"

// Entry is one row of a remote list page.
// The record identity is unknown until its detail resolves.
type Entry struct {
	// Name is the display name reported by the list.
	Name string `json:"name"`

	// URL is the opaque detail locator. Entries without one are skipped.
	URL string `json:"url"`
}

// Page is one page of remote list entries.
type Page struct {
	// Count is the total number of entries reported upstream.
	Count int `json:"count"`

	// Next is the upstream link to the following page, if any.
	Next *string `json:"next"`

	// Previous is the upstream link to the preceding page, if any.
	Previous *string `json:"previous"`

	// Entries holds the rows of this page in upstream order.
	Entries []Entry `json:"results"`
}

// Detail is an adapter-defined raw detail payload.
type Detail any

// Record is an adapter-defined normalized record, ready to persist.
type Record any

// Spec defines the parameters of one reconciliation run.
type Spec struct {
	// Adapter provides model-specific fetch, mapping and commit logic.
	Adapter Adapter

	// Limit is the page size requested upstream.
	Limit int

	// Offset is the page offset requested upstream.
	Offset int

	// Logger receives per-item skip warnings and the run summary.
	// If nil, logging is disabled.
	Logger *zap.Logger
}

// Summary is the externally visible result of a run.
type Summary struct {
	// SavedCount is the number of records committed.
	SavedCount int `json:"saved_count"`

	// Limit echoes the requested page size.
	Limit int `json:"limit"`

	// Offset echoes the requested page offset.
	Offset int `json:"offset"`

	// Records holds the committed records. Never serialized.
	Records []Record `json:"-"`
}

// SkipReason describes why an entry did not produce a record.
type SkipReason string

const (
	// SkipMissingURL marks entries listed without a detail locator.
	SkipMissingURL SkipReason = "missing_url"
	// SkipFetchFailed marks entries whose detail could not be fetched.
	SkipFetchFailed SkipReason = "fetch_failed"
	// SkipMalformed marks details lacking identity or name.
	SkipMalformed SkipReason = "malformed"
)

// Skip records one entry that did not produce a record.
type Skip struct {
	// Name is the entry name from the list.
	Name string `json:"name"`

	// URL is the entry detail locator.
	URL string `json:"url"`

	// Reason classifies the skip.
	Reason SkipReason `json:"reason"`

	// Error holds the underlying error text, if any.
	Error string `json:"error,omitempty"`
}

// ReconcilePlan contains the normalized records of one page and the skipped entries.
type ReconcilePlan struct {
	// Records holds valid records in page order.
	Records []Record `json:"records"`

	// Skipped holds entries that did not produce a record, in page order.
	Skipped []Skip `json:"skipped"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// Listed is the number of entries on the page.
	Listed int `json:"listed"`

	// MissingURL counts entries without a detail locator.
	MissingURL int `json:"missing_url"`

	// FetchFailed counts entries whose detail fetch failed.
	FetchFailed int `json:"fetch_failed"`

	// Malformed counts details rejected by normalization.
	Malformed int `json:"malformed"`

	// Ready counts records that would be committed.
	Ready int `json:"ready"`
}

// ReconcileOptions controls how a plan is applied.
type ReconcileOptions struct {
	// DryRun prevents the commit if true.
	DryRun bool
}
