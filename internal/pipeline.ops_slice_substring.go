package internal

// applySlice implements slice(range) on a List (spec §4.5): unlike split,
// slice always produces a List, even when the range resolves to a single
// index — it wraps the selected element in a one-item list rather than
// unwrapping it to a Str.
func applySlice(op Operation, v Value) (Value, error) {
	if !v.IsList() {
		return Value{}, NewWrongTypeError(OpSlice, "list", v.TypeName(), "use split first to produce a list")
	}
	items := v.AsList()
	resolved := op.Range.Resolve(len(items))
	if resolved.Single {
		if len(items) == 0 {
			return List(nil), nil
		}
		return List([]string{items[resolved.Index]}), nil
	}
	if resolved.Empty() {
		return List(nil), nil
	}
	return List(items[resolved.Lo:resolved.Hi]), nil
}

// applySubstring implements substring(range) on a Str (spec §4.5): the
// range is resolved against the rune count, not the byte count, so it
// behaves correctly on multi-byte UTF-8 input.
func applySubstring(op Operation, v Value) (Value, error) {
	if !v.IsStr() {
		return Value{}, NewWrongTypeError(OpSubstring, "string", v.TypeName(), "use map:{substring:...} for lists")
	}
	runes := []rune(v.AsStr())
	resolved := op.Range.Resolve(len(runes))
	if resolved.Single {
		if len(runes) == 0 {
			return Str(""), nil
		}
		return Str(string(runes[resolved.Index])), nil
	}
	if resolved.Empty() {
		return Str(""), nil
	}
	return Str(string(runes[resolved.Lo:resolved.Hi])), nil
}
