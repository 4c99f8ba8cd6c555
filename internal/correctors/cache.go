package correctors

import "context"

// Cached wraps a corrector with a bounded memoization layer. Corrections are
// pure functions of their input, so hits can be shared across cues within a
// run. When the bound is reached the cache stops admitting new entries; the
// lifetime is one pipeline run.
type Cached struct {
	inner   Corrector
	maxSize int
	entries map[string]cacheEntry
}

type cacheEntry struct {
	text    string
	changed bool
}

// NewCached wraps inner with a cache of at most maxSize entries.
func NewCached(inner Corrector, maxSize int) *Cached {
	if maxSize <= 0 {
		maxSize = 1024
	}
	return &Cached{
		inner:   inner,
		maxSize: maxSize,
		entries: make(map[string]cacheEntry),
	}
}

func (c *Cached) Name() string { return c.inner.Name() }

// Correct consults the cache before delegating. Context-sensitive results
// are keyed on text alone, matching the upstream contract that corrections
// depend only on their input string.
func (c *Cached) Correct(ctx context.Context, text, contextText string) (string, bool, error) {
	if entry, ok := c.entries[text]; ok {
		return entry.text, entry.changed, nil
	}
	corrected, changed, err := c.inner.Correct(ctx, text, contextText)
	if err != nil {
		return corrected, changed, err
	}
	if len(c.entries) < c.maxSize {
		c.entries[text] = cacheEntry{text: corrected, changed: changed}
	}
	return corrected, changed, nil
}
