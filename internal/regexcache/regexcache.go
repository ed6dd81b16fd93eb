// Package regexcache is a process-wide, never-evicted cache from pattern
// string to compiled regexp (or the compilation error), shared by every
// validation that needs `pattern`, `patternProperties`, or a regex-based
// `format` check.
package regexcache

import (
	"regexp"
	"sync"
)

type entry struct {
	re  *regexp.Regexp
	err error
}

// Cache is safe for concurrent use; compilation happens under the lock,
// which is acceptable because the patterns involved are small and rarely
// contended, per spec.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{entries: make(map[string]entry)}
}

// Compile returns the compiled regexp for pattern, compiling and caching it
// (including a compile failure, so repeated lookups of a bad pattern don't
// re-attempt compilation) on first use.
func (c *Cache) Compile(pattern string) (*regexp.Regexp, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[pattern]; ok {
		return e.re, e.err
	}
	re, err := regexp.Compile(pattern)
	c.entries[pattern] = entry{re: re, err: err}
	return re, err
}

// Len reports how many distinct patterns have been compiled, for tests and
// diagnostics.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
