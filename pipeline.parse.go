package pipeline

import (
	"github.com/lalvarezt/string-pipeline-sub000/internal"
	"go.uber.org/zap"
)

// Parse compiles a template once (spec §4.3/§6 "Parse"). The returned
// Template's compiled sections are immutable, and Format is safe for
// concurrent use by multiple goroutines (spec §5); SetDebug is not.
func Parse(source string, opts ...Option) (*Template, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.splitCacheStore != nil {
		internal.SetSplitCacheStore(cfg.splitCacheStore)
	}

	compiled, err := internal.ParseTemplate(source)
	if err != nil {
		cfg.logger.Warn("template parse failed", zap.Error(err))
		return nil, err
	}
	cfg.logger.Debug("template parsed", zap.Int("sections", len(compiled.Sections)))

	return &Template{compiled: compiled, cfg: cfg}, nil
}

// MustParse parses a template and panics on error.
func MustParse(source string, opts ...Option) *Template {
	t, err := Parse(source, opts...)
	if err != nil {
		panic(err)
	}
	return t
}
