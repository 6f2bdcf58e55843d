package internal

import "time"

// EventKind enumerates the structured debug events of spec §4.9.
type EventKind int

const (
	EventPipelineStart EventKind = iota
	EventStepStart
	EventStepEnd
	EventMapItemStart
	EventMapItemEnd
	EventPipelineEnd
	EventCacheHit
	EventCacheMiss
)

// Event is one structured debug event. Only the fields relevant to Kind are
// populated. Formatting this into human-readable text (tree lines, icons,
// timing precision) is explicitly out of scope (spec §4.9) — Event carries
// enough information for an external formatter to do that without
// re-executing the pipeline.
type Event struct {
	Kind EventKind

	// pipeline-start / pipeline-end
	Ops    []Operation
	Result string
	Elapsed time.Duration

	// step-start / step-end
	StepIndex int
	Op        Operation

	// map-item-start / map-item-end
	ItemIndex int
	ItemTotal int
	ItemInput string

	// cache-hit / cache-miss
	CacheName string
	CacheKey  string
}

// EventSink receives structured debug events. With a nil sink (the default)
// events are built by the interpreter and then discarded — see
// Context.emit in pipeline.value.go.
type EventSink interface {
	OnEvent(Event)
}
