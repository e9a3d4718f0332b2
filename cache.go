package cssmodules

// cacheEntry and cache implement the Load engine's memoization: one
// entry per file path, keyed on the mtime observed the last time it
// was loaded.
type cache struct {
	entries map[string]cacheEntry
}

func newCache() *cache {
	return &cache{entries: make(map[string]cacheEntry)}
}

func (c *cache) get(path string) (cacheEntry, bool) {
	e, ok := c.entries[path]
	return e, ok
}

func (c *cache) set(path string, mtimeMS int64, result LoadResult) {
	c.entries[path] = cacheEntry{mtimeMS: mtimeMS, result: result}
}

// isStale reports whether path's cached entry, if any, can no longer be
// trusted: either path itself has no entry or has changed on disk, or
// any dependency recorded in its (already transitive) dependency list
// has changed on disk since it was last loaded. This check is only one
// level deep, but because every cached dependency was itself loaded
// under the same rule, staleness anywhere in the transitive graph
// surfaces at the root that depends on it.
func (c *cache) isStale(path string, statFn func(string) (int64, error)) bool {
	entry, ok := c.get(path)
	if !ok {
		return true
	}

	mtime, err := statFn(path)
	if err != nil || mtime != entry.mtimeMS {
		return true
	}

	for _, dep := range entry.result.Dependencies {
		depEntry, ok := c.get(dep)
		if !ok {
			return true
		}
		depMtime, err := statFn(dep)
		if err != nil || depMtime != depEntry.mtimeMS {
			return true
		}
	}

	return false
}
