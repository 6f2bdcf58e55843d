package internal

// Default separator used for implicit list rendering when no split/join has
// set one yet (spec §4.4).
const DefaultSeparator = ","

// Operation name constants (spec §4.5). These are the surface-syntax tokens
// recognized by the parser and the names reported in WrongType errors.
const (
	OpSplit         = "split"
	OpJoin          = "join"
	OpSlice         = "slice"
	OpSubstring     = "substring"
	OpTrim          = "trim"
	OpPad           = "pad"
	OpUpper         = "upper"
	OpLower         = "lower"
	OpAppend        = "append"
	OpPrepend       = "prepend"
	OpSurround      = "surround"
	OpQuote         = "quote" // alias of surround
	OpReverse       = "reverse"
	OpReplace       = "replace"
	OpRegexExtract  = "regex_extract"
	OpSort          = "sort"
	OpUnique        = "unique"
	OpFilter        = "filter"
	OpFilterNot     = "filter_not"
	OpStripAnsi     = "strip_ansi"
	OpMap           = "map"
)

// Trim/pad direction constants.
const (
	DirLeft  = "left"
	DirRight = "right"
	DirBoth  = "both"
)

// Sort direction constants.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Sort case-folding modifier (SPEC_FULL §4.14, supplemented feature).
const SortCaseInsensitive = "ci"

// Replace flag characters (spec §4.5 "Replace semantics in detail").
const (
	ReplaceFlagGlobal         = 'g'
	ReplaceFlagCaseInsensitive = 'i'
	ReplaceFlagMultiline      = 'm'
	ReplaceFlagDotAll         = 's'
)

// Default values for operations with optional arguments.
const (
	DefaultPadChar = ' '
	DefaultPadDir  = DirRight
	DefaultTrimDir = DirBoth
	DefaultSortDir = SortAsc
)

// Index shorthand delimiter: a bare range/index operation is sugar for
// split:" ":<range> (spec §4.3 "Index/range shorthand").
const ShorthandSplitSeparator = " "

// Grammar punctuation (spec §4.3).
const (
	charPipe       = '|'
	charColon      = ':'
	charBraceOpen  = '{'
	charBraceClose = '}'
	charBackslash  = '\\'
	charBang       = '!'
	charDollar     = '$'
)
