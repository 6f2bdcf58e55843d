package internal

// OpKind tags the variant of an Operation (spec §3 "Operation AST": "a
// tagged variant, one constructor per operation kind").
type OpKind int

const (
	OpKindSplit OpKind = iota
	OpKindJoin
	OpKindSlice
	OpKindSubstring
	OpKindTrim
	OpKindPad
	OpKindUpper
	OpKindLower
	OpKindAppend
	OpKindPrepend
	OpKindSurround
	OpKindReverse
	OpKindReplace
	OpKindRegexExtract
	OpKindSort
	OpKindUnique
	OpKindFilter
	OpKindFilterNot
	OpKindStripAnsi
	OpKindMap
)

// Operation is the tagged-union AST node for one pipeline step. Only the
// fields relevant to Kind are populated; this mirrors a Rust enum more
// directly than N separate structs behind an interface would, and keeps
// deep-equality (needed for the multi-template composer, spec §4.7)
// trivial: two Operations are structurally identical iff every field
// compares equal, recursively for Map's Inner pipeline.
type Operation struct {
	Kind OpKind

	// split / slice
	Sep   string // split's separator
	Range Range

	// trim / pad
	Chars string // trim: characters to trim ("" = whitespace); pad: fill rune(s)
	Width int    // pad: target width
	Dir   string // trim/pad/sort direction

	// append / prepend / surround
	Text   string // append/prepend: text to add
	Before string // surround: text before
	After  string // surround: text after

	// replace
	Pattern     string
	Replacement string
	Global      bool
	CaseInsens  bool
	Multiline   bool
	DotAll      bool

	// regex_extract
	Group int

	// filter / filter_not share Pattern above

	// sort
	CaseFold bool // SPEC_FULL §4.14 "ci" modifier

	// map
	Inner []Operation
}

// Equal reports deep structural equality between two Operations, as
// required by spec §4.7 ("Structural identity of pipelines is defined by
// deep equality of the operation AST").
func (o Operation) Equal(other Operation) bool {
	if o.Kind != other.Kind ||
		o.Sep != other.Sep ||
		o.Range != other.Range ||
		o.Chars != other.Chars ||
		o.Width != other.Width ||
		o.Dir != other.Dir ||
		o.Text != other.Text ||
		o.Before != other.Before ||
		o.After != other.After ||
		o.Pattern != other.Pattern ||
		o.Replacement != other.Replacement ||
		o.Global != other.Global ||
		o.CaseInsens != other.CaseInsens ||
		o.Multiline != other.Multiline ||
		o.DotAll != other.DotAll ||
		o.Group != other.Group ||
		o.CaseFold != other.CaseFold {
		return false
	}
	if len(o.Inner) != len(other.Inner) {
		return false
	}
	for i := range o.Inner {
		if !o.Inner[i].Equal(other.Inner[i]) {
			return false
		}
	}
	return true
}

// Pipeline is the finite ordered sequence of operations plus the per-
// pipeline debug bit (spec §3 "Pipeline").
type Pipeline struct {
	Ops   []Operation
	Debug bool
}

// Equal reports deep structural equality between two Pipelines (ops only;
// the Debug bit does not affect output and is excluded from the composer's
// cache-key comparison by design — two sections differing only in Debug
// still compute the same result).
func (p Pipeline) Equal(other Pipeline) bool {
	if len(p.Ops) != len(other.Ops) {
		return false
	}
	for i := range p.Ops {
		if !p.Ops[i].Equal(other.Ops[i]) {
			return false
		}
	}
	return true
}

// SectionKind tags a Section as literal or template (spec §3 "Section").
type SectionKind int

const (
	SectionLiteral SectionKind = iota
	SectionTemplate
)

// Section is one piece of a compiled template: either verbatim literal text
// or a pipeline to evaluate against the input.
type Section struct {
	Kind    SectionKind
	Literal string
	Pipe    Pipeline
}

// CompiledTemplate is the immutable result of a successful parse (spec §3
// "Compiled template"). Sections is never mutated after Parse returns.
type CompiledTemplate struct {
	Sections []Section
}

// Single reports whether this template is "exactly one Template section
// with no literal siblings" (spec §3, "single template" — §4.7 first
// case).
func (t *CompiledTemplate) Single() bool {
	return len(t.Sections) == 1 && t.Sections[0].Kind == SectionTemplate
}
