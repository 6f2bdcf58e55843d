package pipeline

import (
	"time"

	"github.com/lalvarezt/string-pipeline-sub000/internal"
)

// EventKind names one of the structured debug events of spec §4.9.
type EventKind string

const (
	EventPipelineStart EventKind = "pipeline-start"
	EventStepStart     EventKind = "step-start"
	EventStepEnd       EventKind = "step-end"
	EventMapItemStart  EventKind = "map-item-start"
	EventMapItemEnd    EventKind = "map-item-end"
	EventPipelineEnd   EventKind = "pipeline-end"
	EventCacheHit      EventKind = "cache-hit"
	EventCacheMiss     EventKind = "cache-miss"
)

// Event is one structured debug event, carrying enough information for an
// external formatter to render human-readable output without re-executing
// the pipeline (spec §4.9). Rendering events into tree lines, icons, or a
// particular timing precision is explicitly out of scope here.
type Event struct {
	Kind EventKind

	StepIndex int
	Op        string // operation name, e.g. "split"; empty outside step events

	ItemIndex int
	ItemTotal int
	ItemInput string

	Result  string
	Elapsed time.Duration

	CacheName string
	CacheKey  string
}

// DebugSink receives structured debug events from a Template's Format call.
// Without a DebugSink no caller sink receives events; the Template's logger
// still receives them at Debug level.
type DebugSink interface {
	OnEvent(Event)
}

// sinkAdapter bridges the internal package's EventSink to the public
// DebugSink, keeping internal.Operation and friends out of the public API.
type sinkAdapter struct {
	sink DebugSink
}

func (a *sinkAdapter) OnEvent(ev internal.Event) {
	a.sink.OnEvent(convertEvent(ev))
}

func convertEvent(ev internal.Event) Event {
	out := Event{
		StepIndex: ev.StepIndex,
		ItemIndex: ev.ItemIndex,
		ItemTotal: ev.ItemTotal,
		ItemInput: ev.ItemInput,
		Result:    ev.Result,
		Elapsed:   ev.Elapsed,
		CacheName: ev.CacheName,
		CacheKey:  ev.CacheKey,
	}
	switch ev.Kind {
	case internal.EventPipelineStart:
		out.Kind = EventPipelineStart
	case internal.EventStepStart:
		out.Kind = EventStepStart
		out.Op = opName(ev.Op)
	case internal.EventStepEnd:
		out.Kind = EventStepEnd
		out.Op = opName(ev.Op)
	case internal.EventMapItemStart:
		out.Kind = EventMapItemStart
	case internal.EventMapItemEnd:
		out.Kind = EventMapItemEnd
	case internal.EventPipelineEnd:
		out.Kind = EventPipelineEnd
	case internal.EventCacheHit:
		out.Kind = EventCacheHit
	case internal.EventCacheMiss:
		out.Kind = EventCacheMiss
	}
	return out
}

// opName returns the surface-syntax operation name for a step event's Op.
// It is only called for step events, which always have a real Op: the zero
// Operation decodes as "split", so other event kinds keep an empty Op.
func opName(op internal.Operation) string {
	names := map[internal.OpKind]string{
		internal.OpKindSplit:        internal.OpSplit,
		internal.OpKindJoin:         internal.OpJoin,
		internal.OpKindSlice:        internal.OpSlice,
		internal.OpKindSubstring:    internal.OpSubstring,
		internal.OpKindTrim:         internal.OpTrim,
		internal.OpKindPad:          internal.OpPad,
		internal.OpKindUpper:        internal.OpUpper,
		internal.OpKindLower:        internal.OpLower,
		internal.OpKindAppend:       internal.OpAppend,
		internal.OpKindPrepend:      internal.OpPrepend,
		internal.OpKindSurround:     internal.OpSurround,
		internal.OpKindReverse:      internal.OpReverse,
		internal.OpKindReplace:      internal.OpReplace,
		internal.OpKindRegexExtract: internal.OpRegexExtract,
		internal.OpKindSort:         internal.OpSort,
		internal.OpKindUnique:       internal.OpUnique,
		internal.OpKindFilter:       internal.OpFilter,
		internal.OpKindFilterNot:    internal.OpFilterNot,
		internal.OpKindStripAnsi:    internal.OpStripAnsi,
		internal.OpKindMap:          internal.OpMap,
	}
	return names[op.Kind]
}
