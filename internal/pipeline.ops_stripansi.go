package internal

import "regexp"

// ansiEscapePattern matches ECMA-48 CSI and OSC escape sequences (SGR color
// codes, cursor movement, OSC hyperlinks/titles). Compiled once at package
// init rather than through compileCached since it never varies.
var ansiEscapePattern = regexp.MustCompile("\x1b\\[[0-9;?]*[ -/]*[@-~]|\x1b\\][^\x07\x1b]*(\x07|\x1b\\\\)")

// applyStripAnsi implements strip_ansi (SPEC_FULL §4.15, supplemented
// feature carried over from the original implementation's terminal-output
// focus): removes ANSI escape sequences from a Str, unconditionally — no
// flags or arguments.
func applyStripAnsi(v Value) (Value, error) {
	if !v.IsStr() {
		return Value{}, NewWrongTypeError(OpStripAnsi, "string", v.TypeName(), "use map:{strip_ansi} for lists")
	}
	return Str(ansiEscapePattern.ReplaceAllString(v.AsStr(), "")), nil
}
