package internal

import "strconv"

// expectColon consumes a ':' delimiter or reports an arity error. Every
// operation with a required argument calls this before reading it.
func (p *parser) expectColon() error {
	if p.sc.peek() != charColon {
		return NewParseError(ErrMsgBadArity, p.sc.position(), nil)
	}
	p.sc.advance()
	return nil
}

// hasMoreArgs reports whether another ':'-delimited argument follows,
// consuming the ':' if so.
func (p *parser) hasMoreArgs() bool {
	if p.sc.peek() == charColon {
		p.sc.advance()
		return true
	}
	return false
}

// readSimpleArg scans a "Simple" argument (spec §4.2): raw bytes up to the
// next unescaped ':', '|', or '}', decoding backslash escapes as it goes
// via DecodeSimpleArg. A bare, unescaped '{' inside a simple argument is a
// grammar violation (spec §4.3: "Bare : | { } in an unescaped position...
// are parse errors unless the parser has already consumed them as
// structural delimiters") and raises a parse error rather than silently
// passing '{' through.
func (p *parser) readSimpleArg() (string, error) {
	start := p.sc.pos
	for !p.sc.atEnd() {
		c := p.sc.peek()
		if c == charBackslash {
			p.sc.advance()
			if !p.sc.atEnd() {
				p.sc.advance()
			}
			continue
		}
		if c == charColon || c == charPipe || c == charBraceClose {
			break
		}
		if c == charBraceOpen {
			return "", NewParseError(ErrMsgUnexpectedChar, p.sc.position(), nil)
		}
		p.sc.advance()
	}
	return DecodeSimpleArg(p.sc.src[start:p.sc.pos]), nil
}

// readRegexArg scans a "Regex" argument (spec §4.2/§4.3): raw bytes passed
// through verbatim to the regex engine, extending to the next unescaped
// ':' or '|' at the pipeline level. Brace depth is tracked so a regex
// quantifier like \d{2,3} doesn't get mistaken for the template's own
// closing '}' (spec §9 "map-body brace balancing", generalized here to any
// balanced braces within a pattern); only an unescaped '}' at depth 0 — the
// one that actually closes the enclosing section — is left unconsumed for
// the caller to see.
func (p *parser) readRegexArg() string {
	start := p.sc.pos
	depth := 0
	for !p.sc.atEnd() {
		c := p.sc.peek()
		if c == charBackslash {
			p.sc.advance()
			if !p.sc.atEnd() {
				p.sc.advance()
			}
			continue
		}
		if depth == 0 && (c == charColon || c == charPipe || c == charBraceClose) {
			break
		}
		if c == charBraceOpen {
			depth++
		} else if c == charBraceClose {
			depth--
		}
		p.sc.advance()
	}
	return DecodeRegexArg(p.sc.src[start:p.sc.pos])
}

// readUntilSlash scans raw bytes up to the next unescaped '/', used by the
// replace operation's "s/PATTERN/REPLACEMENT/FLAGS" compound argument
// (spec §4.5 "Replace semantics in detail"). The '/' delimiter itself may
// be escaped as "\/"; the escape is kept verbatim in the returned text.
// In a pattern the regex engine reads "\/" as a literal '/'; parseReplace
// turns "\/" into '/' in the replacement text.
func (p *parser) readUntilSlash() (string, error) {
	start := p.sc.pos
	for !p.sc.atEnd() {
		c := p.sc.peek()
		if c == charBackslash {
			p.sc.advance()
			if !p.sc.atEnd() {
				p.sc.advance()
			}
			continue
		}
		if c == '/' {
			text := p.sc.src[start:p.sc.pos]
			p.sc.advance() // consume '/'
			return text, nil
		}
		p.sc.advance()
	}
	return "", NewParseError(ErrMsgUnterminatedBrace, p.sc.position(), nil)
}

// readFlags scans the replace operation's trailing flag letters (g i m s),
// stopping at the first byte that isn't a recognized flag.
func (p *parser) readFlags() string {
	start := p.sc.pos
	for !p.sc.atEnd() {
		switch p.sc.peek() {
		case ReplaceFlagGlobal, ReplaceFlagCaseInsensitive, ReplaceFlagMultiline, ReplaceFlagDotAll:
			p.sc.advance()
		default:
			return p.sc.src[start:p.sc.pos]
		}
	}
	return p.sc.src[start:p.sc.pos]
}

// readSignedInt scans an optionally negative decimal integer.
func (p *parser) readSignedInt() (int, error) {
	start := p.sc.pos
	if p.sc.peek() == '-' {
		p.sc.advance()
	}
	digitsStart := p.sc.pos
	for !p.sc.atEnd() && isDigitByte(p.sc.peek()) {
		p.sc.advance()
	}
	if p.sc.pos == digitsStart {
		return 0, NewParseError(ErrMsgInvalidRangeLit, p.sc.position(), nil)
	}
	n, err := strconv.Atoi(p.sc.src[start:p.sc.pos])
	if err != nil {
		return 0, NewParseError(ErrMsgInvalidRangeLit, p.sc.position(), nil)
	}
	return n, nil
}

// parseRangeLiteral parses the compact range grammar used by slice,
// substring, split's range argument, and the bare index shorthand (spec
// §3 "Range expression", §4.3 "Index/range shorthand"):
//
//	N | N.. | N..M | N..=M | ..M | ..=M | ..
func (p *parser) parseRangeLiteral() (Range, error) {
	pos := p.sc.position()

	hasFirst := false
	first := 0
	if isDigitByte(p.sc.peek()) || p.sc.peek() == '-' {
		v, err := p.readSignedInt()
		if err != nil {
			return Range{}, err
		}
		first, hasFirst = v, true
	}

	hasDotDot := false
	inclusive := false
	if p.sc.startsWith("..") {
		hasDotDot = true
		p.sc.advanceN(2)
		if p.sc.peek() == '=' {
			inclusive = true
			p.sc.advance()
		}
	}

	hasSecond := false
	second := 0
	if isDigitByte(p.sc.peek()) || p.sc.peek() == '-' {
		v, err := p.readSignedInt()
		if err != nil {
			return Range{}, err
		}
		second, hasSecond = v, true
	}

	switch {
	case !hasDotDot:
		if !hasFirst {
			return Range{}, NewParseError(ErrMsgInvalidRangeLit, pos, nil)
		}
		return Range{Kind: RangeIndex, Index: first}, nil
	case hasFirst && hasSecond:
		return Range{Kind: RangeFromTo, Start: first, End: second, Inclusive: inclusive}, nil
	case hasFirst && !hasSecond:
		return Range{Kind: RangeFrom, Start: first}, nil
	case !hasFirst && hasSecond:
		return Range{Kind: RangeTo, End: second, Inclusive: inclusive}, nil
	default:
		return Range{Kind: RangeFull}, nil
	}
}
