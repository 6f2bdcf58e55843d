package internal

import (
	"strconv"
	"strings"
)

// RenderTemplate implements spec §4.7: concatenate each section's rendered
// result in order, reusing the result of any earlier section in the same
// call whose compiled pipeline is structurally identical (deep AST
// equality) — since every section receives the same input, structural
// identity of the pipeline is all that needs to be compared. The cache is
// local to this one call and discarded when it returns; it is unrelated to
// the process-wide caches of pipeline.cache_regex.go/pipeline.cache_split.go.
//
// Each section evaluates against its own fresh Context (default separator),
// not one carried over from a previous section — sections are independent
// renderings of the same input, not a pipe chained through each other, and
// giving each a fresh context is what makes the memoization invariant
// ("identical compiled sub-section + identical input -> identical output")
// hold unconditionally.
func RenderTemplate(ct *CompiledTemplate, input string, sink EventSink, forceDebug bool) (string, error) {
	if ct.Single() {
		debug := forceDebug || ct.Sections[0].Pipe.Debug
		return EvaluateSection(ct.Sections[0].Pipe, input, NewContext(sink, debug))
	}

	var memo []memoEntry

	var out strings.Builder
	for _, sec := range ct.Sections {
		if sec.Kind == SectionLiteral {
			out.WriteString(sec.Literal)
			continue
		}
		debug := forceDebug || sec.Pipe.Debug

		if cached, ok := lookupMemo(memo, sec.Pipe); ok {
			emitComposerCacheEvent(sink, debug, true, sec.Pipe)
			out.WriteString(cached)
			continue
		}
		emitComposerCacheEvent(sink, debug, false, sec.Pipe)

		result, err := EvaluateSection(sec.Pipe, input, NewContext(sink, debug))
		if err != nil {
			return "", err
		}
		memo = append(memo, memoEntry{pipe: sec.Pipe, result: result})
		out.WriteString(result)
	}
	return out.String(), nil
}

type memoEntry struct {
	pipe   Pipeline
	result string
}

func lookupMemo(memo []memoEntry, pipe Pipeline) (string, bool) {
	for _, e := range memo {
		if e.pipe.Equal(pipe) {
			return e.result, true
		}
	}
	return "", false
}

func emitComposerCacheEvent(sink EventSink, debug bool, hit bool, pipe Pipeline) {
	if !debug || sink == nil {
		return
	}
	kind := EventCacheMiss
	if hit {
		kind = EventCacheHit
	}
	sink.OnEvent(Event{Kind: kind, CacheName: "composer", CacheKey: strconv.Itoa(len(pipe.Ops))})
}
