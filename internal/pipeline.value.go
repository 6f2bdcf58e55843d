package internal

import "strings"

// ValueKind tags a Value's shape (spec §3 "exactly one tag").
type ValueKind int

const (
	KindStr ValueKind = iota
	KindList
)

// Value is the two-shape runtime datum described by spec §3: either a
// single string or an ordered list of strings. There is no third shape —
// every operation either consumes/produces Str, List, or accepts both and
// preserves the tag it was given.
type Value struct {
	kind  ValueKind
	str   string
	items []string
}

// Str constructs a string Value.
func Str(s string) Value { return Value{kind: KindStr, str: s} }

// List constructs a list Value. The slice is taken as-is (callers should not
// mutate it afterwards); order is preserved and duplicates are allowed.
func List(items []string) Value { return Value{kind: KindList, items: items} }

// Kind reports the Value's tag.
func (v Value) Kind() ValueKind { return v.kind }

// IsStr reports whether v holds a string.
func (v Value) IsStr() bool { return v.kind == KindStr }

// IsList reports whether v holds a list.
func (v Value) IsList() bool { return v.kind == KindList }

// AsStr returns the held string. Callers must check IsStr first; calling
// this on a List value returns "" (interpreter call sites always check the
// tag before use — see internal/pipeline.interpreter.go).
func (v Value) AsStr() string { return v.str }

// AsList returns the held list. Callers must check IsList first.
func (v Value) AsList() []string { return v.items }

// TypeName returns the human name used in WrongType error messages.
func (v Value) TypeName() string {
	if v.kind == KindList {
		return "list"
	}
	return "string"
}

// Render collapses a Value to its final string form. A Str value passes
// through unchanged; a List is joined with sep (spec §4.4: "rendered by
// joining with the current last-separator value").
func (v Value) Render(sep string) string {
	if v.kind == KindStr {
		return v.str
	}
	return strings.Join(v.items, sep)
}

// Context is the small struct threaded through the interpreter (spec §3
// "Evaluation context"): the last-seen separator for implicit list
// rendering, plus an optional debug sink and the flag that enables debug
// events.
type Context struct {
	// Separator is the separator string most recently observed from a
	// split or join operation in the current (sub-)pipeline. Starts at
	// DefaultSeparator and is mutated in place by split/join.
	Separator string

	// Sink receives structured debug events when non-nil (spec §4.9).
	Sink EventSink

	// Debug reports whether event emission is enabled for this run; kept
	// separate from Sink==nil so a no-sink debug run and a
	// disabled-but-sink-present run both drop events in emit.
	Debug bool
}

// NewContext returns a fresh root context with the default separator.
func NewContext(sink EventSink, debug bool) *Context {
	return &Context{Separator: DefaultSeparator, Sink: sink, Debug: debug}
}

// Fork returns a context for a map sub-pipeline: it inherits the current
// separator by value (a copy), so the inner pipeline's own split/join calls
// never leak back into the outer context (spec §4.6 "Map semantics").
func (c *Context) Fork() *Context {
	return &Context{Separator: c.Separator, Sink: c.Sink, Debug: c.Debug}
}

// emit is a convenience no-op-safe event dispatch used by the interpreter.
func (c *Context) emit(ev Event) {
	if c.Debug && c.Sink != nil {
		c.Sink.OnEvent(ev)
	}
}
