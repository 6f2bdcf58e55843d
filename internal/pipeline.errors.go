package internal

import (
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error message constants. As in the rest of this codebase, error text is
// never built ad hoc with fmt.Sprintf at the call site — it lives here as a
// named constant so every raise site for a given failure says the same
// thing.
const (
	ErrMsgParseFailed      = "template parsing failed"
	ErrMsgUnexpectedChar   = "unexpected character"
	ErrMsgUnterminatedBrace = "unterminated template section"
	ErrMsgUnknownOperation = "unknown operation"
	ErrMsgMapNested        = "map operations cannot be nested"
	ErrMsgInvalidRangeLit  = "invalid range literal"
	ErrMsgInvalidEscape    = "invalid escape sequence"
	ErrMsgUnexpectedEOF    = "unexpected end of input"
	ErrMsgBadArity         = "wrong number of arguments"
	ErrMsgInvalidDirection = "invalid direction argument, expected left, right, or both"
	ErrMsgInvalidSortArg   = "invalid sort argument, expected asc, desc, or ci"
	ErrMsgInvalidReplaceForm = "replace argument must start with s/"

	ErrMsgWrongType  = "operation received the wrong value type"
	ErrMsgBadRange   = "range could not be resolved"
	ErrMsgBadRegex   = "regular expression failed to compile"
	ErrMsgMapItem    = "map item failed"
)

// Error code constants, analogous to teacher's ErrCodeParse/ErrCodeExec.
const (
	ErrCodeParse   = "PIPELINE_PARSE"
	ErrCodeType    = "PIPELINE_TYPE"
	ErrCodeRange   = "PIPELINE_RANGE"
	ErrCodeRegex   = "PIPELINE_REGEX"
	ErrCodeMapItem = "PIPELINE_MAP_ITEM"
)

// Metadata keys attached to the underlying cuserr error via WithMetadata.
const (
	MetaKeyLine     = "line"
	MetaKeyColumn   = "column"
	MetaKeyOffset   = "offset"
	MetaKeyOp       = "op"
	MetaKeyExpected = "expected"
	MetaKeyGot      = "got"
	MetaKeyHint     = "hint"
	MetaKeyPattern  = "pattern"
	MetaKeyIndex    = "index"
)

// ErrorKind enumerates the public error taxonomy from spec §7.
type ErrorKind string

const (
	KindParseError   ErrorKind = "ParseError"
	KindWrongType    ErrorKind = "WrongType"
	KindBadRange     ErrorKind = "BadRange"
	KindBadRegex     ErrorKind = "BadRegex"
	KindMapItemError ErrorKind = "MapItemError"
)

// PipelineError is the structured error type returned by every public entry
// point (Parse, Format, FormatWithInputs). It carries enough structured
// fields for a caller to branch on Kind without parsing Error() text, while
// Error()/Unwrap() give it normal Go error ergonomics via go-cuserr.
type PipelineError struct {
	Kind ErrorKind

	// Populated for KindParseError.
	Pos Position

	// Populated for KindWrongType.
	Op       string
	Expected string
	Got      string
	Hint     string

	// Populated for KindBadRegex.
	Pattern   string
	EngineMsg string

	// Populated for KindMapItemError.
	Index int
	Inner error

	cause *cuserr.CustomError
}

func (e *PipelineError) Error() string {
	if e.cause != nil {
		return e.cause.Error()
	}
	return string(e.Kind)
}

// Unwrap exposes the underlying go-cuserr error for errors.Is/errors.As.
func (e *PipelineError) Unwrap() error {
	if e.cause == nil {
		return nil
	}
	return e.cause
}

// Display renders a one-line human-readable summary (spec §6's "cheap
// display()").
func (e *PipelineError) Display() string {
	return e.Error()
}

// NewParseError builds a KindParseError at the given position.
func NewParseError(msg string, pos Position, cause error) *PipelineError {
	var ce *cuserr.CustomError
	if cause != nil {
		ce = cuserr.WrapStdError(cause, ErrCodeParse, msg)
	} else {
		ce = cuserr.NewValidationError(ErrCodeParse, msg)
	}
	ce = ce.WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
	return &PipelineError{Kind: KindParseError, Pos: pos, cause: ce}
}

// NewWrongTypeError builds a KindWrongType error. hint suggests the remedy,
// e.g. "use map:{...} for lists" or "use split first".
func NewWrongTypeError(op, expected, got, hint string) *PipelineError {
	msg := fmt.Sprintf("%s: %s (expected %s, got %s) — %s", ErrMsgWrongType, op, expected, got, hint)
	ce := cuserr.NewValidationError(ErrCodeType, msg).
		WithMetadata(MetaKeyOp, op).
		WithMetadata(MetaKeyExpected, expected).
		WithMetadata(MetaKeyGot, got).
		WithMetadata(MetaKeyHint, hint)
	return &PipelineError{Kind: KindWrongType, Op: op, Expected: expected, Got: got, Hint: hint, cause: ce}
}

// NewBadRangeError builds a KindBadRange error for a structurally invalid
// range literal that could not be resolved (spec §4.1/§7 — most ranges are
// clamped silently; this is for the rare invalid parse-time forms).
func NewBadRangeError(msg string) *PipelineError {
	ce := cuserr.NewValidationError(ErrCodeRange, msg)
	return &PipelineError{Kind: KindBadRange, cause: ce}
}

// NewBadRegexError builds a KindBadRegex error, annotated with the engine's
// own message.
func NewBadRegexError(pattern, engineMsg string) *PipelineError {
	msg := fmt.Sprintf("%s: %s (%s)", ErrMsgBadRegex, pattern, engineMsg)
	ce := cuserr.NewValidationError(ErrCodeRegex, msg).
		WithMetadata(MetaKeyPattern, pattern)
	return &PipelineError{Kind: KindBadRegex, Pattern: pattern, EngineMsg: engineMsg, cause: ce}
}

// NewMapItemError wraps any of the above with the failing item's index.
func NewMapItemError(index int, inner error) *PipelineError {
	msg := fmt.Sprintf("%s at index %d: %v", ErrMsgMapItem, index, inner)
	ce := cuserr.WrapStdError(inner, ErrCodeMapItem, msg).
		WithMetadata(MetaKeyIndex, strconv.Itoa(index))
	return &PipelineError{Kind: KindMapItemError, Index: index, Inner: inner, cause: ce}
}
