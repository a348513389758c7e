package neo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/couchcryptid/impact-sim/internal/domain"
	"github.com/couchcryptid/impact-sim/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLooker struct {
	calls int
	err   error
}

func (m *countingLooker) Lookup(_ context.Context, id string) (domain.NEO, error) {
	m.calls++
	if m.err != nil {
		return domain.NEO{}, m.err
	}
	return domain.NEO{ID: id, Name: "obj-" + id}, nil
}

func TestCachedLooker_CacheHit(t *testing.T) {
	inner := &countingLooker{}
	metrics := observability.NewMetricsForTesting()
	cached := NewCachedLooker(inner, 10, metrics)

	n1, err := cached.Lookup(context.Background(), "3542519")
	require.NoError(t, err)
	n2, err := cached.Lookup(context.Background(), "3542519")
	require.NoError(t, err)

	assert.Equal(t, n1, n2)
	assert.Equal(t, 1, inner.calls, "should only call inner once")
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.NEOCache.WithLabelValues("hit")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.NEOCache.WithLabelValues("miss")), 0)
}

func TestCachedLooker_ErrorsAreNotCached(t *testing.T) {
	inner := &countingLooker{err: errors.New("boom")}
	cached := NewCachedLooker(inner, 10, observability.NewMetricsForTesting())

	_, err := cached.Lookup(context.Background(), "1")
	require.Error(t, err)
	_, err = cached.Lookup(context.Background(), "1")
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestLRUCache_Eviction(t *testing.T) {
	c := newLRUCache(2)
	c.put("a", domain.NEO{ID: "a"})
	c.put("b", domain.NEO{ID: "b"})

	// touch a so b becomes least recently used
	_, ok := c.get("a")
	require.True(t, ok)

	c.put("c", domain.NEO{ID: "c"})

	_, ok = c.get("b")
	assert.False(t, ok, "b should be evicted")
	_, ok = c.get("a")
	assert.True(t, ok)
	_, ok = c.get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.len())
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	c := newLRUCache(2)
	c.put("a", domain.NEO{Name: "old"})
	c.put("a", domain.NEO{Name: "new"})

	n, ok := c.get("a")
	require.True(t, ok)
	assert.Equal(t, "new", n.Name)
	assert.Equal(t, 1, c.len())
}

func TestLRUCache_ManyEntries(t *testing.T) {
	c := newLRUCache(100)
	for i := range 250 {
		c.put(fmt.Sprintf("id-%d", i), domain.NEO{})
	}
	assert.Equal(t, 100, c.len())
	_, ok := c.get("id-249")
	assert.True(t, ok)
	_, ok = c.get("id-0")
	assert.False(t, ok)
}

func TestLRUCache_NonPositiveCapacity(t *testing.T) {
	c := newLRUCache(0)
	c.put("a", domain.NEO{})
	c.put("b", domain.NEO{})
	assert.Equal(t, 1, c.len())
}
