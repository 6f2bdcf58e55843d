package internal

import "strings"

func applyTrim(op Operation, v Value) (Value, error) {
	if !v.IsStr() {
		return Value{}, NewWrongTypeError(OpTrim, "string", v.TypeName(), "use map:{trim:...} for lists")
	}
	s := v.AsStr()
	if op.Chars == "" {
		switch op.Dir {
		case DirLeft:
			return Str(strings.TrimLeft(s, " \t\n\r")), nil
		case DirRight:
			return Str(strings.TrimRight(s, " \t\n\r")), nil
		default:
			return Str(strings.TrimSpace(s)), nil
		}
	}
	switch op.Dir {
	case DirLeft:
		return Str(strings.TrimLeft(s, op.Chars)), nil
	case DirRight:
		return Str(strings.TrimRight(s, op.Chars)), nil
	default:
		return Str(strings.Trim(s, op.Chars)), nil
	}
}

// applyPad implements pad(width, char, dir) (spec §4.5): a no-op if the
// string already meets width (measured in runes, consistent with
// substring's rune-aware indexing), otherwise filled with repeated copies
// of char to reach it.
func applyPad(op Operation, v Value) (Value, error) {
	if !v.IsStr() {
		return Value{}, NewWrongTypeError(OpPad, "string", v.TypeName(), "use map:{pad:...} for lists")
	}
	s := v.AsStr()
	have := len([]rune(s))
	if have >= op.Width || op.Chars == "" {
		return Str(s), nil
	}
	need := op.Width - have
	fill := fillRunes(op.Chars, need)
	switch op.Dir {
	case DirLeft:
		return Str(fill + s), nil
	case DirBoth:
		left := need / 2
		right := need - left
		return Str(fillRunes(op.Chars, left) + s + fillRunes(op.Chars, right)), nil
	default:
		return Str(s + fill), nil
	}
}

// fillRunes repeats chars (cycling through its runes) until it has produced
// exactly n runes.
func fillRunes(chars string, n int) string {
	runes := []rune(chars)
	if len(runes) == 0 || n <= 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(runes[i%len(runes)])
	}
	return b.String()
}

func applyUpper(v Value) (Value, error) {
	if !v.IsStr() {
		return Value{}, NewWrongTypeError(OpUpper, "string", v.TypeName(), "use map:{upper} for lists")
	}
	return Str(strings.ToUpper(v.AsStr())), nil
}

func applyLower(v Value) (Value, error) {
	if !v.IsStr() {
		return Value{}, NewWrongTypeError(OpLower, "string", v.TypeName(), "use map:{lower} for lists")
	}
	return Str(strings.ToLower(v.AsStr())), nil
}

func applyAppend(op Operation, v Value) (Value, error) {
	if !v.IsStr() {
		return Value{}, NewWrongTypeError(OpAppend, "string", v.TypeName(), "use map:{append:...} for lists")
	}
	return Str(v.AsStr() + op.Text), nil
}

func applyPrepend(op Operation, v Value) (Value, error) {
	if !v.IsStr() {
		return Value{}, NewWrongTypeError(OpPrepend, "string", v.TypeName(), "use map:{prepend:...} for lists")
	}
	return Str(op.Text + v.AsStr()), nil
}

func applySurround(op Operation, v Value) (Value, error) {
	if !v.IsStr() {
		return Value{}, NewWrongTypeError(OpSurround, "string", v.TypeName(), "use map:{surround:...} for lists")
	}
	return Str(op.Before + v.AsStr() + op.After), nil
}

// applyReverse implements reverse on either shape (spec §4.5): a Str is
// reversed rune by rune (not byte by byte, to keep multi-byte UTF-8 intact);
// a List is reversed element by element.
func applyReverse(v Value) (Value, error) {
	if v.IsStr() {
		runes := []rune(v.AsStr())
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return Str(string(runes)), nil
	}
	items := v.AsList()
	out := make([]string, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return List(out), nil
}
