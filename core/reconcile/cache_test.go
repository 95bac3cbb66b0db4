package reconcile

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingAdapter holds FetchPage until released
type blockingAdapter struct {
	*mockAdapter
	release chan struct{}
}

func (b *blockingAdapter) FetchPage(ctx context.Context, limit, offset int) (*Page, error) {
	<-b.release
	return b.mockAdapter.FetchPage(ctx, limit, offset)
}

func TestPageCache_CoalescesConcurrentFetches(t *testing.T) {
	adapter := &blockingAdapter{mockAdapter: newPageAdapter(2), release: make(chan struct{})}
	cache := NewPageCache(0)

	var wg sync.WaitGroup
	results := make([]*Page, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			page, err := cache.GetPage(context.Background(), adapter, 2, 0)
			assert.NoError(t, err)
			results[i] = page
		}(i)
	}

	// Let the callers join the in-flight fetch before releasing it
	time.Sleep(50 * time.Millisecond)
	close(adapter.release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&adapter.pageCalls))
	for _, page := range results {
		assert.Len(t, page.Entries, 2)
	}
}

func TestPageCache_ZeroTTLDoesNotReuse(t *testing.T) {
	adapter := newPageAdapter(1)
	cache := NewPageCache(0)

	_, err := cache.GetPage(context.Background(), adapter, 1, 0)
	require.NoError(t, err)
	_, err = cache.GetPage(context.Background(), adapter, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&adapter.pageCalls))
}

func TestPageCache_TTL(t *testing.T) {
	adapter := newPageAdapter(1)
	cache := NewPageCache(time.Minute)
	now := time.Now()
	cache.now = func() time.Time { return now }

	_, err := cache.GetPage(context.Background(), adapter, 1, 0)
	require.NoError(t, err)
	_, err = cache.GetPage(context.Background(), adapter, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&adapter.pageCalls))

	// Different key
	_, err = cache.GetPage(context.Background(), adapter, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&adapter.pageCalls))

	// Expired
	now = now.Add(2 * time.Minute)
	_, err = cache.GetPage(context.Background(), adapter, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&adapter.pageCalls))

	// Invalidated
	cache.Invalidate()
	_, err = cache.GetPage(context.Background(), adapter, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(4), atomic.LoadInt32(&adapter.pageCalls))
}

func TestPageCache_ErrorsAreNotCached(t *testing.T) {
	adapter := &mockAdapter{pageErr: errors.New("bad gateway")}
	cache := NewPageCache(time.Minute)

	_, err := cache.GetPage(context.Background(), adapter, 20, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))

	adapter.pageErr = nil
	adapter.page = &Page{Entries: []Entry{}}
	page, err := cache.GetPage(context.Background(), adapter, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, page.Entries)
}
