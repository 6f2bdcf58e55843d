package internal

// applyMap implements map:{inner} (spec §4.6): inner runs once per item of
// a List, against a forked context that inherits the outer separator as an
// independent copy — inner's own split/join calls never leak back into the
// outer context, matching the fixed resolution of spec §9's open question
// ("the outer pipeline's last-separator is unaffected by what happens
// inside a map"). Each item's inner result is rendered to a single string
// (using the inner pipeline's own final separator) and collected back into
// one List of the same length as the input.
func applyMap(op Operation, v Value, ctx *Context) (Value, error) {
	if !v.IsList() {
		return Value{}, NewWrongTypeError(OpMap, "list", v.TypeName(), "map operates on a list; use split first")
	}
	items := v.AsList()
	out := make([]string, len(items))
	for i, item := range items {
		inner := ctx.Fork()
		ctx.emit(Event{Kind: EventMapItemStart, ItemIndex: i, ItemTotal: len(items), ItemInput: item})

		result, err := runPipeline(op.Inner, Str(item), inner)
		if err != nil {
			return Value{}, NewMapItemError(i, err)
		}
		rendered := result.Render(inner.Separator)
		out[i] = rendered

		ctx.emit(Event{Kind: EventMapItemEnd, ItemIndex: i, ItemTotal: len(items), Result: rendered})
	}
	return List(out), nil
}
