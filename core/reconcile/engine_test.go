package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// testRecord is the record type produced by mockAdapter
type testRecord struct {
	ID   int
	Name string
}

// testDetail is the detail type served by mockAdapter
type testDetail struct {
	ID   int
	Name string
}

// mockAdapter is a simple in-memory test adapter
type mockAdapter struct {
	page      *Page
	pageErr   error
	details   map[string]*testDetail
	detailErr map[string]error
	commitErr error

	mu        sync.Mutex
	committed [][]Record
	pageCalls int32
}

func (m *mockAdapter) Name() string {
	return "mock"
}

func (m *mockAdapter) FetchPage(ctx context.Context, limit, offset int) (*Page, error) {
	atomic.AddInt32(&m.pageCalls, 1)
	if m.pageErr != nil {
		return nil, m.pageErr
	}
	return m.page, nil
}

func (m *mockAdapter) FetchDetail(ctx context.Context, url string) (Detail, error) {
	if err, ok := m.detailErr[url]; ok {
		return nil, err
	}
	detail, ok := m.details[url]
	if !ok {
		return nil, fmt.Errorf("unexpected status 404 for %s", url)
	}
	return detail, nil
}

func (m *mockAdapter) Normalize(detail Detail) (Record, error) {
	d := detail.(*testDetail)
	if d.ID == 0 || d.Name == "" {
		return nil, fmt.Errorf("%w: id or name missing", ErrMalformedRecord)
	}
	return testRecord{ID: d.ID, Name: d.Name}, nil
}

func (m *mockAdapter) Commit(ctx context.Context, records []Record) error {
	if m.commitErr != nil {
		return m.commitErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.committed = append(m.committed, records)
	return nil
}

// newPageAdapter builds an adapter with n valid entries.
func newPageAdapter(n int) *mockAdapter {
	adapter := &mockAdapter{
		page:      &Page{Count: n},
		details:   map[string]*testDetail{},
		detailErr: map[string]error{},
	}
	for i := 1; i <= n; i++ {
		url := fmt.Sprintf("https://upstream/catalog/%d/", i)
		name := fmt.Sprintf("item-%d", i)
		adapter.page.Entries = append(adapter.page.Entries, Entry{Name: name, URL: url})
		adapter.details[url] = &testDetail{ID: i, Name: name}
	}
	return adapter
}

func TestReconcile_AllValid(t *testing.T) {
	adapter := newPageAdapter(3)

	summary, err := Reconcile(context.Background(), &Spec{Adapter: adapter, Limit: 3, Offset: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.SavedCount)
	assert.Equal(t, 3, summary.Limit)
	assert.Equal(t, 10, summary.Offset)
	assert.Len(t, summary.Records, 3)

	require.Len(t, adapter.committed, 1)
	assert.Equal(t, []Record{
		testRecord{ID: 1, Name: "item-1"},
		testRecord{ID: 2, Name: "item-2"},
		testRecord{ID: 3, Name: "item-3"},
	}, adapter.committed[0])
}

func TestReconcile_EmptyPage(t *testing.T) {
	adapter := &mockAdapter{page: &Page{Count: 1302, Entries: []Entry{}}}

	summary, err := Reconcile(context.Background(), &Spec{Adapter: adapter, Limit: 20, Offset: 5000})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.SavedCount)
	assert.Equal(t, 20, summary.Limit)
	assert.Equal(t, 5000, summary.Offset)
	assert.Empty(t, adapter.committed)
}

func TestReconcile_PartialFailureIsolation(t *testing.T) {
	adapter := newPageAdapter(5)
	adapter.detailErr["https://upstream/catalog/3/"] = errors.New("connection reset by peer")

	summary, err := Reconcile(context.Background(), &Spec{Adapter: adapter, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 4, summary.SavedCount)

	require.Len(t, adapter.committed, 1)
	for _, record := range adapter.committed[0] {
		assert.NotEqual(t, 3, record.(testRecord).ID)
	}
}

func TestReconcile_MalformedRecordSkipped(t *testing.T) {
	adapter := newPageAdapter(3)
	adapter.details["https://upstream/catalog/2/"] = &testDetail{ID: 2}

	summary, err := Reconcile(context.Background(), &Spec{Adapter: adapter, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.SavedCount)
}

func TestReconcile_UpstreamUnavailable(t *testing.T) {
	adapter := &mockAdapter{pageErr: errors.New("dial tcp: connection refused")}

	summary, err := Reconcile(context.Background(), &Spec{Adapter: adapter, Limit: 20})
	assert.Nil(t, summary)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
	assert.False(t, errors.Is(err, ErrPersistenceFailure))
	assert.Contains(t, err.Error(), "connection refused")
	assert.Empty(t, adapter.committed)
}

func TestReconcile_PersistenceFailure(t *testing.T) {
	adapter := newPageAdapter(4)
	adapter.commitErr = errors.New("deadlock detected")

	summary, err := Reconcile(context.Background(), &Spec{Adapter: adapter, Limit: 4})
	assert.Nil(t, summary)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPersistenceFailure))
	assert.False(t, errors.Is(err, ErrUpstreamUnavailable))

	var persistErr *PersistenceError
	require.True(t, errors.As(err, &persistErr))
	assert.Equal(t, 4, persistErr.Records)
}

func TestReconcile_AllDetailsFailSkipsCommit(t *testing.T) {
	adapter := newPageAdapter(2)
	adapter.commitErr = errors.New("must not be called")
	for url := range adapter.details {
		adapter.detailErr[url] = errors.New("timeout")
	}

	summary, err := Reconcile(context.Background(), &Spec{Adapter: adapter, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.SavedCount)
}

func TestReconcile_DetachedFromCancellation(t *testing.T) {
	adapter := newPageAdapter(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := Reconcile(ctx, &Spec{Adapter: adapter, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.SavedCount)
}

func TestReconcile_LogsSkipsAndSummary(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	adapter := newPageAdapter(2)
	adapter.page.Entries = append(adapter.page.Entries, Entry{Name: "orphan"})

	_, err := Reconcile(context.Background(), &Spec{Adapter: adapter, Limit: 3, Logger: zap.New(core)})
	require.NoError(t, err)

	warnings := logs.FilterMessage("Skipping entry").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "orphan", warnings[0].ContextMap()["name"])
	assert.Equal(t, "missing_url", warnings[0].ContextMap()["reason"])

	completed := logs.FilterMessage("Reconcile completed").All()
	require.Len(t, completed, 1)
	assert.Equal(t, int64(2), completed[0].ContextMap()["saved"])
}

func TestReconcile_RequiresAdapter(t *testing.T) {
	_, err := Reconcile(context.Background(), &Spec{Limit: 20})
	assert.Error(t, err)
}

func TestPlan_Summary(t *testing.T) {
	adapter := newPageAdapter(5)
	adapter.page.Entries = append(adapter.page.Entries, Entry{Name: "no-url"})
	adapter.detailErr["https://upstream/catalog/1/"] = errors.New("unexpected status 500")
	adapter.details["https://upstream/catalog/4/"] = &testDetail{Name: "no-id"}

	plan, err := Plan(context.Background(), &Spec{Adapter: adapter, Limit: 6})
	require.NoError(t, err)

	assert.Equal(t, PlanSummary{Listed: 6, MissingURL: 1, FetchFailed: 1, Malformed: 1, Ready: 3}, plan.Summary)
	require.Len(t, plan.Skipped, 3)

	// Skips follow page order
	assert.Equal(t, "item-1", plan.Skipped[0].Name)
	assert.Equal(t, SkipFetchFailed, plan.Skipped[0].Reason)
	assert.Contains(t, plan.Skipped[0].Error, "unexpected status 500")
	assert.Equal(t, SkipMalformed, plan.Skipped[1].Reason)
	assert.Equal(t, SkipMissingURL, plan.Skipped[2].Reason)

	assert.Equal(t, []Record{
		testRecord{ID: 2, Name: "item-2"},
		testRecord{ID: 3, Name: "item-3"},
		testRecord{ID: 5, Name: "item-5"},
	}, plan.Records)
	assert.Empty(t, adapter.committed)
}

func TestPlan_FansOutConcurrently(t *testing.T) {
	const entries = 10
	adapter := &slowAdapter{mockAdapter: newPageAdapter(entries), delay: 100 * time.Millisecond}

	start := time.Now()
	plan, err := Plan(context.Background(), &Spec{Adapter: adapter, Limit: entries})
	require.NoError(t, err)
	assert.Equal(t, entries, plan.Summary.Ready)
	assert.Less(t, time.Since(start), time.Duration(entries)*adapter.delay/2)
}

// slowAdapter delays every detail fetch
type slowAdapter struct {
	*mockAdapter
	delay time.Duration
}

func (s *slowAdapter) FetchDetail(ctx context.Context, url string) (Detail, error) {
	time.Sleep(s.delay)
	return s.mockAdapter.FetchDetail(ctx, url)
}

func TestApplyPlan_DryRun(t *testing.T) {
	adapter := newPageAdapter(3)
	spec := &Spec{Adapter: adapter, Limit: 3}

	plan, err := Plan(context.Background(), spec)
	require.NoError(t, err)

	summary, err := ApplyPlan(context.Background(), spec, plan, ReconcileOptions{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.SavedCount)
	assert.Empty(t, adapter.committed)

	summary, err = ApplyPlan(context.Background(), spec, plan, ReconcileOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.SavedCount)
	assert.Len(t, adapter.committed, 1)
}

func TestApplyPlan_NilPlan(t *testing.T) {
	summary, err := ApplyPlan(context.Background(), &Spec{Adapter: newPageAdapter(0), Limit: 1}, nil, ReconcileOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.SavedCount)
}
