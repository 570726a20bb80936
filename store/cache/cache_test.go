package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, cfg Config) *Cache {
	t.Helper()
	c := New(cfg)
	t.Cleanup(c.Close)
	return c
}

func TestCache_SetGet(t *testing.T) {
	c := newTestCache(t, Config{DefaultTTL: time.Minute, CleanupInterval: time.Minute, MaxItems: 10})

	c.Set("k", 42)
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCache_TTLExpiry(t *testing.T) {
	c := newTestCache(t, Config{DefaultTTL: time.Minute, CleanupInterval: time.Minute, MaxItems: 10})

	c.SetWithTTL("k", "v", 10*time.Millisecond)
	_, ok := c.Get("k")
	require.True(t, ok)

	time.Sleep(30 * time.Millisecond)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestCache_Delete(t *testing.T) {
	c := newTestCache(t, Config{DefaultTTL: time.Minute, CleanupInterval: time.Minute, MaxItems: 10})

	c.Set("k", "v")
	c.Delete("k")
	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCache_EvictsOldestWhenFull(t *testing.T) {
	c := newTestCache(t, Config{DefaultTTL: time.Minute, CleanupInterval: time.Minute, MaxItems: 2})

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestCache_Clear(t *testing.T) {
	c := newTestCache(t, Config{DefaultTTL: time.Minute, CleanupInterval: time.Minute, MaxItems: 10})

	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()
	assert.Equal(t, 0, c.Len())
}
