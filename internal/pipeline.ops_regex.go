package internal

import "strings"

// isLiteralPattern reports whether pattern contains no regex metacharacters,
// letting replace take the fast path of a plain string substitution instead
// of compiling a regexp (spec §4.5 "Fast-path: literal pattern with no
// flags = string replace" — extended here to any literal pattern regardless
// of the 'g' flag, since 'g' only changes replacement count, not how the
// pattern is matched).
func isLiteralPattern(pattern string) bool {
	return !strings.ContainsAny(pattern, `.*+?()[]{}|^$\`)
}

// applyReplace implements replace(pattern, replacement, flags) (spec §4.5).
func applyReplace(op Operation, v Value) (Value, error) {
	if !v.IsStr() {
		return Value{}, NewWrongTypeError(OpReplace, "string", v.TypeName(), "use map:{replace:...} for lists")
	}
	s := v.AsStr()

	if isLiteralPattern(op.Pattern) && !op.CaseInsens && !op.Multiline && !op.DotAll {
		n := 1
		if op.Global {
			n = -1
		}
		return Str(strings.Replace(s, op.Pattern, op.Replacement, n)), nil
	}

	re, _, err := compileCached(op.Pattern, op.CaseInsens, op.Multiline, op.DotAll)
	if err != nil {
		return Value{}, NewBadRegexError(op.Pattern, err.Error())
	}

	if op.Global {
		return Str(re.ReplaceAllString(s, op.Replacement)), nil
	}

	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return Str(s), nil
	}
	var buf []byte
	buf = append(buf, s[:loc[0]]...)
	buf = re.ExpandString(buf, op.Replacement, s, loc)
	buf = append(buf, s[loc[1]:]...)
	return Str(string(buf)), nil
}

// applyRegexExtract implements regex_extract(pattern, group) (spec §4.5):
// empty string on no match, per spec (not an error — regex_extract never
// fails on a non-match, only on an invalid pattern).
func applyRegexExtract(op Operation, v Value) (Value, error) {
	if !v.IsStr() {
		return Value{}, NewWrongTypeError(OpRegexExtract, "string", v.TypeName(), "use map:{regex_extract:...} for lists")
	}
	re, _, err := compileCached(op.Pattern, false, false, false)
	if err != nil {
		return Value{}, NewBadRegexError(op.Pattern, err.Error())
	}
	m := re.FindStringSubmatch(v.AsStr())
	if m == nil || op.Group >= len(m) || op.Group < 0 {
		return Str(""), nil
	}
	return Str(m[op.Group]), nil
}

// applyFilter implements filter/filter_not (spec §4.5): on Str, keep or
// clear depending on whether it matches; on List, retain the matching (or
// non-matching) items, preserving order.
func applyFilter(op Operation, v Value, negate bool) (Value, error) {
	re, _, err := compileCached(op.Pattern, false, false, false)
	if err != nil {
		return Value{}, NewBadRegexError(op.Pattern, err.Error())
	}

	if v.IsStr() {
		matches := re.MatchString(v.AsStr())
		if matches != negate {
			return v, nil
		}
		return Str(""), nil
	}

	var out []string
	for _, item := range v.AsList() {
		if re.MatchString(item) != negate {
			out = append(out, item)
		}
	}
	return List(out), nil
}
