package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"catalog-sync/core/logger"

	"go.uber.org/zap"
)

// slot holds the outcome of one entry. Each detail goroutine writes only its own slot.
type slot struct {
	record Record
	reason SkipReason
	err    error
}

// Reconcile fetches one page, resolves every entry concurrently and commits the
// valid records as a single unit. The run is detached from ctx cancellation so a
// client disconnect never leaves a half-finished batch.
func Reconcile(ctx context.Context, spec *Spec) (*Summary, error) {
	ctx = context.WithoutCancel(ctx)

	plan, err := Plan(ctx, spec)
	if err != nil {
		return nil, err
	}

	summary, err := ApplyPlan(ctx, spec, plan, ReconcileOptions{})
	if err != nil {
		return nil, err
	}

	logger.OrNop(spec.Logger).Info("Reconcile completed",
		zap.String("adapter", spec.Adapter.Name()),
		zap.Int("limit", spec.Limit),
		zap.Int("offset", spec.Offset),
		zap.Int("listed", plan.Summary.Listed),
		zap.Int("skipped", len(plan.Skipped)),
		zap.Int("saved", summary.SavedCount),
	)

	return summary, nil
}

// Plan fetches the page and resolves every entry without touching the store.
// It fails only when the page itself cannot be fetched.
func Plan(ctx context.Context, spec *Spec) (*ReconcilePlan, error) {
	if spec == nil || spec.Adapter == nil {
		return nil, errors.New("reconcile spec requires an adapter")
	}
	log := logger.OrNop(spec.Logger)

	page, err := spec.Adapter.FetchPage(ctx, spec.Limit, spec.Offset)
	if err != nil {
		return nil, &UpstreamError{Op: fmt.Sprintf("fetch page limit=%d offset=%d", spec.Limit, spec.Offset), Err: err}
	}

	plan := &ReconcilePlan{
		Records: []Record{},
		Skipped: []Skip{},
	}
	if page == nil || len(page.Entries) == 0 {
		return plan, nil
	}
	plan.Summary.Listed = len(page.Entries)

	// Fan out one goroutine per entry; the page size bounds concurrency
	slots := make([]slot, len(page.Entries))
	var wg sync.WaitGroup
	for i, entry := range page.Entries {
		if entry.URL == "" {
			slots[i] = slot{reason: SkipMissingURL}
			continue
		}
		wg.Add(1)
		go func(i int, entry Entry) {
			defer wg.Done()
			slots[i] = resolve(ctx, spec.Adapter, entry)
		}(i, entry)
	}
	wg.Wait()

	// Collect in page order
	for i, s := range slots {
		if s.reason == "" {
			plan.Records = append(plan.Records, s.record)
			continue
		}

		entry := page.Entries[i]
		skip := Skip{Name: entry.Name, URL: entry.URL, Reason: s.reason}
		if s.err != nil {
			skip.Error = s.err.Error()
		}
		plan.Skipped = append(plan.Skipped, skip)

		switch s.reason {
		case SkipMissingURL:
			plan.Summary.MissingURL++
		case SkipFetchFailed:
			plan.Summary.FetchFailed++
		case SkipMalformed:
			plan.Summary.Malformed++
		}

		log.Warn("Skipping entry",
			zap.String("name", entry.Name),
			zap.String("url", entry.URL),
			zap.String("reason", string(s.reason)),
			zap.Error(s.err),
		)
	}
	plan.Summary.Ready = len(plan.Records)

	return plan, nil
}

// ApplyPlan commits the records of a plan in one transaction.
// An empty plan or a dry run returns a zero count without calling the adapter.
func ApplyPlan(ctx context.Context, spec *Spec, plan *ReconcilePlan, opts ReconcileOptions) (*Summary, error) {
	if spec == nil || spec.Adapter == nil {
		return nil, errors.New("reconcile spec requires an adapter")
	}

	summary := &Summary{Limit: spec.Limit, Offset: spec.Offset}
	if plan == nil || len(plan.Records) == 0 || opts.DryRun {
		return summary, nil
	}

	if err := spec.Adapter.Commit(ctx, plan.Records); err != nil {
		return nil, &PersistenceError{Records: len(plan.Records), Err: err}
	}
	summary.SavedCount = len(plan.Records)
	summary.Records = plan.Records

	return summary, nil
}

// resolve fetches and normalizes a single entry.
func resolve(ctx context.Context, adapter Adapter, entry Entry) slot {
	detail, err := adapter.FetchDetail(ctx, entry.URL)
	if err != nil {
		return slot{reason: SkipFetchFailed, err: fmt.Errorf("%w: %w", ErrDetailFetch, err)}
	}
	if detail == nil {
		return slot{reason: SkipFetchFailed, err: ErrDetailFetch}
	}

	record, err := adapter.Normalize(detail)
	if err != nil {
		if !errors.Is(err, ErrMalformedRecord) {
			err = fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		return slot{reason: SkipMalformed, err: err}
	}

	return slot{record: record}
}
