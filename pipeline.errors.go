package pipeline

import (
	"github.com/lalvarezt/string-pipeline-sub000/internal"
)

// ErrorKind is the public error taxonomy from spec §7.
type ErrorKind = internal.ErrorKind

const (
	KindParseError   = internal.KindParseError
	KindWrongType    = internal.KindWrongType
	KindBadRange     = internal.KindBadRange
	KindBadRegex     = internal.KindBadRegex
	KindMapItemError = internal.KindMapItemError
)

// EvalError is the structured error type returned by Parse, Format, and
// FormatWithInputs (spec §7). Callers can branch on Kind, or just treat it
// as a normal error via Error()/Unwrap().
type EvalError = internal.PipelineError
