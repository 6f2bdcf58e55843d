// Package pipeline compiles and runs a small string-transformation template
// language: a template is literal text interleaved with "{...}"-delimited
// pipelines of operations (split, join, slice, substring, trim, pad,
// replace, sort, map, ...) separated by "|". A template is parsed once with
// Parse and can then be applied to many inputs via Format or
// FormatWithInputs without re-parsing.
//
// # Basic usage
//
//	tmpl, err := pipeline.Parse("{split:,:0|upper}")
//	out, err := tmpl.Format("hello,world") // "HELLO"
//
// # Grammar
//
// A template section is "{" ["!"] Pipeline "}", where "!" turns on debug
// event emission for that section. A Pipeline is one or more Operations
// joined by "|", each of the form name[:arg[:arg...]]. A bare range
// literal in operation position ("{0}", "{1..3}") is shorthand for
// split:" ":<range>.
//
// # Configuration
//
// Parse accepts functional options:
//
//	tmpl, _ := pipeline.Parse(src,
//	    pipeline.WithLogger(logger),
//	    pipeline.WithDebugSink(sink),
//	    pipeline.WithSplitCacheStore(store))
//
// # Errors
//
// Parse, Format and FormatWithInputs return an *EvalError on failure,
// carrying a Kind (ParseError, WrongType, BadRange, BadRegex, MapItemError)
// that a caller can branch on without parsing the message text.
// LoadTemplateSet wraps such an error with the failing template's name.
package pipeline
