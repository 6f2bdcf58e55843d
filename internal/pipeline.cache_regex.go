package internal

import (
	"regexp"
	"sync"
)

// regexCache is a process-wide, thread-safe cache of compiled patterns
// (spec §4.8 "process-wide regex cache"). It never expires entries and is
// never required for correctness — every caller can recompile on a cache
// miss with identical results, which is exactly what happens the first time
// any given (pattern, flags) pair is seen. Modeled on the teacher's
// RWMutex+map result cache (prompty.cache.results.go) but without an
// eviction list, since compiled regexes are cheap to keep for the life of
// the process and spec §4.8 explicitly allows an implementation to bound or
// not bound total size.
type regexCache struct {
	mu sync.RWMutex
	m  map[regexCacheKey]*regexp.Regexp
}

type regexCacheKey struct {
	pattern    string
	caseInsens bool
	multiline  bool
	dotAll     bool
}

var globalRegexCache = &regexCache{m: make(map[regexCacheKey]*regexp.Regexp)}

// compileCached compiles pattern with the given inline flags, consulting and
// populating the process-wide cache. The 'g' (global) replace flag never
// participates in the key: it does not change what the compiled regexp
// looks like, only how the caller uses it.
func compileCached(pattern string, caseInsens, multiline, dotAll bool) (*regexp.Regexp, bool, error) {
	key := regexCacheKey{pattern: pattern, caseInsens: caseInsens, multiline: multiline, dotAll: dotAll}

	globalRegexCache.mu.RLock()
	re, ok := globalRegexCache.m[key]
	globalRegexCache.mu.RUnlock()
	if ok {
		return re, true, nil
	}

	prefixed := withInlineFlags(pattern, caseInsens, multiline, dotAll)
	compiled, err := regexp.Compile(prefixed)
	if err != nil {
		return nil, false, err
	}

	globalRegexCache.mu.Lock()
	globalRegexCache.m[key] = compiled
	globalRegexCache.mu.Unlock()
	return compiled, false, nil
}

// withInlineFlags prepends Go regexp inline flag syntax for the flags the
// sed-style replace/filter arguments accept (spec §4.5): i (case-insensitive),
// m (multiline: ^/$ match line boundaries), s (dot matches newline).
func withInlineFlags(pattern string, caseInsens, multiline, dotAll bool) string {
	flags := ""
	if caseInsens {
		flags += "i"
	}
	if multiline {
		flags += "m"
	}
	if dotAll {
		flags += "s"
	}
	if flags == "" {
		return pattern
	}
	return "(?" + flags + ")" + pattern
}
