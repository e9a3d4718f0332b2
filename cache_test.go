package cssmodules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCacheIsStaleNoEntry(t *testing.T) {
	c := newCache()
	stale := c.isStale("a.css", func(string) (int64, error) { return 1, nil })
	require.True(t, stale)
}

func TestCacheIsStaleUnchanged(t *testing.T) {
	c := newCache()
	c.set("a.css", 100, LoadResult{})
	stale := c.isStale("a.css", func(string) (int64, error) { return 100, nil })
	require.False(t, stale)
}

func TestCacheIsStaleChangedMTime(t *testing.T) {
	c := newCache()
	c.set("a.css", 100, LoadResult{})
	stale := c.isStale("a.css", func(string) (int64, error) { return 200, nil })
	require.True(t, stale)
}

func TestCacheIsStaleDependencyChanged(t *testing.T) {
	c := newCache()
	c.set("b.css", 50, LoadResult{})
	c.set("a.css", 100, LoadResult{Dependencies: []string{"b.css"}})

	mtimes := map[string]int64{"a.css": 100, "b.css": 50}
	stat := func(p string) (int64, error) { return mtimes[p], nil }

	require.False(t, c.isStale("a.css", stat))

	mtimes["b.css"] = 999
	require.True(t, c.isStale("a.css", stat))
}

func TestCacheIsStaleDependencyMissingFromCache(t *testing.T) {
	c := newCache()
	c.set("a.css", 100, LoadResult{Dependencies: []string{"b.css"}})
	stat := func(string) (int64, error) { return 100, nil }
	require.True(t, c.isStale("a.css", stat))
}
