package reconcile

import "context"

// Adapter defines the interface for model-specific reconciliation logic.
// The engine owns fan-out, joining and error classification; the adapter owns
// the wire calls, the mapping and the transaction.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "catalog").
	Name() string

	// FetchPage retrieves one page of list entries.
	// An empty page is a success.
	FetchPage(ctx context.Context, limit, offset int) (*Page, error)

	// FetchDetail retrieves the raw detail behind an entry URL.
	// It is called concurrently, once per entry.
	FetchDetail(ctx context.Context, url string) (Detail, error)

	// Normalize converts a raw detail into a record.
	// It must be pure and return ErrMalformedRecord (wrapped) when the detail
	// lacks identity or name.
	Normalize(detail Detail) (Record, error)

	// Commit persists all records in a single transaction.
	// Either every record is persisted or none is.
	Commit(ctx context.Context, records []Record) error
}
