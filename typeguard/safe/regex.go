package safe

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

// ErrInvalidRegex is returned when a pattern does not compile.
var ErrInvalidRegex = errors.New("invalid regular expression")

// maxCachedPatterns bounds the pattern cache. A full cache is emptied before
// the next insert.
const maxCachedPatterns = 1024

var patterns = newPatternCache(maxCachedPatterns)

// Compile compiles pattern, returning ErrInvalidRegex instead of panicking on
// bad syntax. Results are cached per pattern, failures included.
func Compile(pattern string) (*regexp.Regexp, error) {
	return patterns.compile(pattern)
}

type compiled struct {
	re  *regexp.Regexp
	err error
}

type patternCache struct {
	mu      sync.RWMutex
	limit   int
	entries map[string]compiled
}

func newPatternCache(limit int) *patternCache {
	return &patternCache{limit: limit, entries: make(map[string]compiled)}
}

func (c *patternCache) compile(pattern string) (*regexp.Regexp, error) {
	c.mu.RLock()
	hit, ok := c.entries[pattern]
	c.mu.RUnlock()

	if ok {
		return hit.re, hit.err
	}

	var result compiled

	re, err := regexp.Compile(pattern)
	if err != nil {
		result.err = fmt.Errorf("%w %q: %w", ErrInvalidRegex, pattern, err)
	} else {
		result.re = re
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[pattern]; ok {
		return existing.re, existing.err
	}

	if len(c.entries) >= c.limit {
		clear(c.entries)
	}

	c.entries[pattern] = result

	return result.re, result.err
}

func (c *patternCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
