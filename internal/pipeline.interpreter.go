package internal

import "time"

// EvaluateSection runs one compiled pipeline against a single string input
// and renders the result, wrapping the run in pipeline-start/pipeline-end
// debug events (spec §4.9). RenderTemplate calls it once per evaluated
// template section, so every Format and FormatWithInputs call of the root
// package goes through it. Grounded on the teacher's executor.Run — a thin
// driver around a dispatch loop, not a state machine.
func EvaluateSection(pipe Pipeline, input string, ctx *Context) (string, error) {
	start := time.Now()
	ctx.emit(Event{Kind: EventPipelineStart, Ops: pipe.Ops})

	result, err := runPipeline(pipe.Ops, Str(input), ctx)
	if err != nil {
		return "", err
	}

	rendered := result.Render(ctx.Separator)
	ctx.emit(Event{Kind: EventPipelineEnd, Ops: pipe.Ops, Result: rendered, Elapsed: time.Since(start)})
	return rendered, nil
}

// runPipeline threads a Value through each Operation in order, emitting
// step-start/step-end events per step. It is also the function map's inner
// pipeline recurses into (pipeline.ops_map.go), so nested maps-of-maps would
// loop here too were they not already rejected at parse time.
func runPipeline(ops []Operation, input Value, ctx *Context) (Value, error) {
	cur := input
	for i, op := range ops {
		ctx.emit(Event{Kind: EventStepStart, StepIndex: i, Op: op})

		next, err := applyOp(op, cur, ctx)
		if err != nil {
			return Value{}, err
		}
		cur = next

		ctx.emit(Event{Kind: EventStepEnd, StepIndex: i, Op: op, Result: cur.Render(ctx.Separator)})
	}
	return cur, nil
}

// applyOp dispatches one Operation to its implementation in the
// pipeline.ops_*.go files.
func applyOp(op Operation, v Value, ctx *Context) (Value, error) {
	switch op.Kind {
	case OpKindSplit:
		return applySplit(op, v, ctx)
	case OpKindJoin:
		return applyJoin(op, v, ctx)
	case OpKindSlice:
		return applySlice(op, v)
	case OpKindSubstring:
		return applySubstring(op, v)
	case OpKindTrim:
		return applyTrim(op, v)
	case OpKindPad:
		return applyPad(op, v)
	case OpKindUpper:
		return applyUpper(v)
	case OpKindLower:
		return applyLower(v)
	case OpKindAppend:
		return applyAppend(op, v)
	case OpKindPrepend:
		return applyPrepend(op, v)
	case OpKindSurround:
		return applySurround(op, v)
	case OpKindReverse:
		return applyReverse(v)
	case OpKindReplace:
		return applyReplace(op, v)
	case OpKindRegexExtract:
		return applyRegexExtract(op, v)
	case OpKindSort:
		return applySort(op, v)
	case OpKindUnique:
		return applyUnique(v)
	case OpKindFilter:
		return applyFilter(op, v, false)
	case OpKindFilterNot:
		return applyFilter(op, v, true)
	case OpKindStripAnsi:
		return applyStripAnsi(v)
	case OpKindMap:
		return applyMap(op, v, ctx)
	default:
		return Value{}, NewWrongTypeError("unknown", "", v.TypeName(), "")
	}
}
