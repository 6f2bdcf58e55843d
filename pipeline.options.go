package pipeline

import (
	"go.uber.org/zap"

	"github.com/lalvarezt/string-pipeline-sub000/internal"
)

// SplitCacheStore is the optional persistent backing for the process-wide
// split cache (SPEC_FULL §4.13); see PostgresSplitCacheStore for a concrete
// implementation.
type SplitCacheStore = internal.SplitCacheStore

// Option is a functional option for configuring Parse (spec §6 "External
// interfaces"), modeled on the teacher's engineConfig/Option pattern.
type Option func(*config)

type config struct {
	logger          *zap.Logger
	debugSink       DebugSink
	splitCacheStore SplitCacheStore
	debug           bool
}

func defaultConfig() *config {
	return &config{logger: zap.NewNop()}
}

// WithLogger sets the logger used for parse-time diagnostics.
// Default: a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDebugSink attaches a sink that receives structured debug events (spec
// §4.9) for every section whose pipeline has its debug bit set, or for
// every section if WithDebug(true) is also given.
func WithDebugSink(sink DebugSink) Option {
	return func(c *config) {
		c.debugSink = sink
	}
}

// WithDebug forces debug event emission on for every section of the
// resulting Template, regardless of each section's own "!" debug bit.
func WithDebug(on bool) Option {
	return func(c *config) {
		c.debug = on
	}
}

// WithSplitCacheStore attaches a persistent backing store for the
// process-wide split cache (SPEC_FULL §4.13). The store is process-wide,
// matching the scope of the in-memory cache it backs (spec §4.8) — the
// last call to WithSplitCacheStore across any Parse call wins.
func WithSplitCacheStore(store SplitCacheStore) Option {
	return func(c *config) {
		c.splitCacheStore = store
	}
}
