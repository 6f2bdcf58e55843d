package pipeline

import (
	"go.uber.org/zap"

	"github.com/lalvarezt/string-pipeline-sub000/internal"
)

// zapEventSink mirrors the structured debug event stream (SPEC_FULL §4.10)
// into the configured zap.Logger at Debug level, independent of whether a
// DebugSink is also attached. A zap.NewNop() logger (the default) makes
// this a no-op.
type zapEventSink struct {
	logger *zap.Logger
}

func (s *zapEventSink) OnEvent(ev internal.Event) {
	pub := convertEvent(ev)
	s.logger.Debug("pipeline event",
		zap.String("kind", string(pub.Kind)),
		zap.Int("step_index", pub.StepIndex),
		zap.String("result", pub.Result),
		zap.Duration("elapsed", pub.Elapsed),
	)
}

// fanOutSink dispatches one event to every attached sink, letting a
// Template mirror events to both zap and a caller's DebugSink in the same
// run without either needing to know about the other.
type fanOutSink struct {
	sinks []internal.EventSink
}

func (f *fanOutSink) OnEvent(ev internal.Event) {
	for _, s := range f.sinks {
		s.OnEvent(ev)
	}
}
