package internal

import (
	"context"
	"strings"
)

// applySplit implements split(sep, range) (spec §4.5): on a Str input it
// splits once; on a List input it splits every item and flattens the
// results into one combined slice before applying range. It always records
// sep as the context's last-separator, regardless of whether range resolves
// to a single index or an interval (spec §4.4 "split... sets last-separator
// to sep").
func applySplit(op Operation, v Value, ctx *Context) (Value, error) {
	var parts []string
	switch {
	case v.IsStr():
		p, hit := cachedSplit(context.Background(), v.AsStr(), op.Sep)
		emitCacheEvent(ctx, "split", op.Sep, hit)
		parts = p
	case v.IsList():
		for _, item := range v.AsList() {
			p, hit := cachedSplit(context.Background(), item, op.Sep)
			emitCacheEvent(ctx, "split", op.Sep, hit)
			parts = append(parts, p...)
		}
	}

	ctx.Separator = op.Sep

	resolved := op.Range.Resolve(len(parts))
	if resolved.Single {
		if len(parts) == 0 {
			return Str(""), nil
		}
		return Str(parts[resolved.Index]), nil
	}
	if resolved.Empty() {
		return List(nil), nil
	}
	return List(parts[resolved.Lo:resolved.Hi]), nil
}

// applyJoin implements join(sep) (spec §4.5): a List is joined into a Str;
// a Str passes through unchanged. Either way sep becomes the context's
// last-separator.
func applyJoin(op Operation, v Value, ctx *Context) (Value, error) {
	ctx.Separator = op.Sep
	if v.IsStr() {
		return v, nil
	}
	return Str(strings.Join(v.AsList(), op.Sep)), nil
}

func emitCacheEvent(ctx *Context, name, key string, hit bool) {
	if !ctx.Debug || ctx.Sink == nil {
		return
	}
	kind := EventCacheMiss
	if hit {
		kind = EventCacheHit
	}
	ctx.emit(Event{Kind: kind, CacheName: name, CacheKey: key})
}
