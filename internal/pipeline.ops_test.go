package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEval(t *testing.T, template, input string) string {
	t.Helper()
	ct, err := ParseTemplate(template)
	require.NoError(t, err)
	out, err := RenderTemplate(ct, input, nil, false)
	require.NoError(t, err)
	return out
}

func TestOps_SplitIndexAndJoin(t *testing.T) {
	assert.Equal(t, "b", mustEval(t, "{split:,:1}", "a,b,c"))
	assert.Equal(t, "a-b-c", mustEval(t, "{split:,:..|join:-}", "a,b,c"))
}

func TestOps_SplitRangeSlice(t *testing.T) {
	assert.Equal(t, "b,c", mustEval(t, "{split:,:1..}", "a,b,c"))
	assert.Equal(t, "a,b", mustEval(t, "{split:,:..2}", "a,b,c"))
}

func TestOps_SliceAlwaysList(t *testing.T) {
	ct, err := ParseTemplate("{split:,:..|slice:0}")
	require.NoError(t, err)
	out, err := RenderTemplate(ct, "a,b,c", nil, false)
	require.NoError(t, err)
	assert.Equal(t, "a", out)
}

func TestOps_Substring_RuneAware(t *testing.T) {
	assert.Equal(t, "caf", mustEval(t, "{substring:..3}", "café noir"))
}

func TestOps_TrimPad(t *testing.T) {
	assert.Equal(t, "hi", mustEval(t, "{trim}", "  hi  "))
	assert.Equal(t, "xxhi", mustEval(t, "{pad:4:x:left}", "hi"))
	assert.Equal(t, "hixx", mustEval(t, "{pad:4:x:right}", "hi"))
	assert.Equal(t, "hi", mustEval(t, "{pad:1:x}", "hi"))
}

func TestOps_UpperLowerAppendPrependSurround(t *testing.T) {
	assert.Equal(t, "HI", mustEval(t, "{upper}", "hi"))
	assert.Equal(t, "hi", mustEval(t, "{lower}", "HI"))
	assert.Equal(t, "hi!", mustEval(t, "{append:!}", "hi"))
	assert.Equal(t, "!hi", mustEval(t, "{prepend:!}", "hi"))
	assert.Equal(t, `"hi"`, mustEval(t, `{surround:"}`, "hi"))
}

func TestOps_Reverse(t *testing.T) {
	assert.Equal(t, "olleh", mustEval(t, "{reverse}", "hello"))
	assert.Equal(t, "c,b,a", mustEval(t, "{split:,:..|reverse|join:,}", "a,b,c"))
}

// TestOps_UpperLower_Idempotence covers spec.md §8's quantified invariant
// upper(upper(s)) == upper(s) and lower(lower(s)) == lower(s).
func TestOps_UpperLower_Idempotence(t *testing.T) {
	once := mustEval(t, "{upper}", "MiXeD Case 123!")
	twice := mustEval(t, "{upper|upper}", "MiXeD Case 123!")
	assert.Equal(t, once, twice)

	once = mustEval(t, "{lower}", "MiXeD Case 123!")
	twice = mustEval(t, "{lower|lower}", "MiXeD Case 123!")
	assert.Equal(t, once, twice)
}

// TestOps_Reverse_Involution covers spec.md §8's quantified invariant
// reverse(reverse(s)) == s.
func TestOps_Reverse_Involution(t *testing.T) {
	for _, s := range []string{"hello", "", "a", "racecar", "héllo wörld"} {
		assert.Equal(t, s, mustEval(t, "{reverse|reverse}", s))
	}
}

func TestOps_ReplaceLiteralFastPath(t *testing.T) {
	assert.Equal(t, "hbllo", mustEval(t, "{replace:s/e/b/}", "hello"))
	assert.Equal(t, "hbllo", mustEval(t, "{replace:s/e/b/g}", "hello"))
}

func TestOps_ReplaceRegexFirstVsGlobal(t *testing.T) {
	assert.Equal(t, "X 2 3", mustEval(t, `{replace:s/\d+/X/}`, "1 2 3"))
	assert.Equal(t, "X X X", mustEval(t, `{replace:s/\d+/X/g}`, "1 2 3"))
}

func TestOps_RegexExtract(t *testing.T) {
	assert.Equal(t, "123", mustEval(t, `{regex_extract:\d+}`, "order 123 done"))
	assert.Equal(t, "", mustEval(t, `{regex_extract:\d+}`, "no digits"))
}

func TestOps_SortAndUnique(t *testing.T) {
	assert.Equal(t, "a,b,c", mustEval(t, "{split:,:..|sort|join:,}", "c,a,b"))
	assert.Equal(t, "c,b,a", mustEval(t, "{split:,:..|sort:desc|join:,}", "c,a,b"))
	// case-insensitive compare, original casing preserved in output order
	assert.Equal(t, "a,B,C", mustEval(t, "{split:,:..|sort:ci|join:,}", "C,a,B"))
}

// TestOps_SortUnique_StabilityAcrossInputOrder covers spec.md §8's quantified
// invariant: sort|unique yields the sorted deduplication of the input list,
// regardless of the order the duplicates appeared in.
func TestOps_SortUnique_StabilityAcrossInputOrder(t *testing.T) {
	want := "a,b,c,d"
	orderings := []string{
		"b,a,c,b,d,a",
		"d,c,b,a,a,b,c,d",
		"a,b,c,d",
		"d,d,c,c,b,b,a,a",
	}
	for _, in := range orderings {
		assert.Equal(t, want, mustEval(t, "{split:,:..|sort|unique|join:,}", in))
	}
}

func TestOps_Unique(t *testing.T) {
	assert.Equal(t, "a,b,c", mustEval(t, "{split:,:..|unique|join:,}", "a,b,a,c,b"))
}

func TestOps_FilterAndFilterNot(t *testing.T) {
	assert.Equal(t, "foo", mustEval(t, "{split:,:..|filter:o|join:,}", "foo,baz,bar"))
	assert.Equal(t, "baz,bar", mustEval(t, "{split:,:..|filter_not:o|join:,}", "foo,baz,bar"))
}

func TestOps_StripAnsi(t *testing.T) {
	assert.Equal(t, "hello", mustEval(t, "{strip_ansi}", "\x1b[31mhello\x1b[0m"))
}

func TestOps_Map(t *testing.T) {
	assert.Equal(t, "HI,THERE", mustEval(t, "{split:,:..|map:{upper}|join:,}", "hi,there"))
}

func TestOps_Map_SeparatorForkedNotLeaked(t *testing.T) {
	// The inner pipeline's own split changes only the forked context;
	// the outer list is still rendered with the separator the outer split set.
	out := mustEval(t, `{split:,:..|map:{split: :0}}`, "a b,c d")
	assert.Equal(t, "a,c", out)
}

func TestOps_WrongTypeErrors(t *testing.T) {
	ct, err := ParseTemplate("{slice:0}")
	require.NoError(t, err)
	_, err = RenderTemplate(ct, "not-a-list", nil, false)
	require.Error(t, err)
	pe, ok := err.(*PipelineError)
	require.True(t, ok)
	assert.Equal(t, KindWrongType, pe.Kind)
}
