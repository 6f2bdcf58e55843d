package pipeline

import (
	"github.com/lalvarezt/string-pipeline-sub000/internal"
)

// Template is a compiled template (spec §3 "Compiled template"). Its
// compiled sections are immutable after Parse returns and it may be applied
// to any number of inputs, concurrently, without re-parsing (spec §4.7,
// §5). SetDebug is the one mutator; it is not synchronized with Format.
type Template struct {
	compiled *internal.CompiledTemplate
	cfg      *config
}

// Format applies the template to a single input, producing its output
// (spec §6 "Format"). This is the common case: one compiled template,
// called once per request/record.
func (t *Template) Format(input string) (string, error) {
	return internal.RenderTemplate(t.compiled, input, t.eventSink(), t.cfg.debug)
}

// FormatWithInputs applies the template to each input in order (spec §6
// "FormatWithInputs"), returning one output per input. It stops at the
// first error, matching spec §7's "a failed template section aborts the
// whole format call" propagation policy extended across the batch.
func (t *Template) FormatWithInputs(inputs []string) ([]string, error) {
	out := make([]string, len(inputs))
	for i, input := range inputs {
		result, err := t.Format(input)
		if err != nil {
			return nil, err
		}
		out[i] = result
	}
	return out, nil
}

// SetDebug toggles forced debug-event emission for every subsequent Format
// call on this Template, overriding each section's own "!" bit.
func (t *Template) SetDebug(on bool) {
	t.cfg.debug = on
}

// Debug reports whether forced debug-event emission is currently on.
func (t *Template) Debug() bool {
	return t.cfg.debug
}

func (t *Template) eventSink() internal.EventSink {
	sinks := []internal.EventSink{&zapEventSink{logger: t.cfg.logger}}
	if t.cfg.debugSink != nil {
		sinks = append(sinks, &sinkAdapter{sink: t.cfg.debugSink})
	}
	return &fanOutSink{sinks: sinks}
}
