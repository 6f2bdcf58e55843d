package internal

// parsePipelineBody parses `Operation ( "|" Operation )*`, stopping (without
// consuming) at the closing '}' that ends the enclosing section. An empty
// body (immediate '}') is the identity pipeline (spec §4.3 grammar comment
// "may be empty → identity"). insideMap is true while parsing a map's inner
// pipeline, so a nested "map" operation can be rejected (spec §4.3 "Map
// nesting is a parse error").
func (p *parser) parsePipelineBody(insideMap bool) ([]Operation, error) {
	if p.sc.peek() == charBraceClose || p.sc.atEnd() {
		return nil, nil
	}

	var ops []Operation
	for {
		op, err := p.parseOperation(insideMap)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)

		if p.sc.peek() == charPipe {
			p.sc.advance()
			continue
		}
		break
	}
	return ops, nil
}

// parseOperation parses one `Operation = Name [ ":" Arg (":" Arg)* ] |
// IndexShorthand | MapOp`.
func (p *parser) parseOperation(insideMap bool) (Operation, error) {
	c := p.sc.peek()

	if isIdentByte(c) {
		pos := p.sc.position()
		name := p.sc.scanIdent()
		return p.parseNamedOperation(name, insideMap, pos)
	}

	if isDigitByte(c) || c == '-' || c == '.' {
		return p.parseIndexShorthand()
	}

	return Operation{}, NewParseError(ErrMsgUnknownOperation, p.sc.position(), nil)
}

func (p *parser) parseNamedOperation(name string, insideMap bool, pos Position) (Operation, error) {
	switch name {
	case OpMap:
		if insideMap {
			return Operation{}, NewParseError(ErrMsgMapNested, pos, nil)
		}
		return p.parseMapOperation()
	case OpSplit:
		return p.parseSplit()
	case OpJoin:
		return p.parseJoin()
	case OpSlice:
		return p.parseSlice()
	case OpSubstring:
		return p.parseSubstring()
	case OpTrim:
		return p.parseTrim()
	case OpPad:
		return p.parsePad()
	case OpUpper:
		return Operation{Kind: OpKindUpper}, nil
	case OpLower:
		return Operation{Kind: OpKindLower}, nil
	case OpAppend:
		return p.parseAppendPrepend(OpKindAppend)
	case OpPrepend:
		return p.parseAppendPrepend(OpKindPrepend)
	case OpSurround, OpQuote:
		return p.parseSurround()
	case OpReverse:
		return Operation{Kind: OpKindReverse}, nil
	case OpReplace:
		return p.parseReplace()
	case OpRegexExtract:
		return p.parseRegexExtract()
	case OpSort:
		return p.parseSort()
	case OpUnique:
		return Operation{Kind: OpKindUnique}, nil
	case OpFilter:
		return p.parseFilter(OpKindFilter)
	case OpFilterNot:
		return p.parseFilter(OpKindFilterNot)
	case OpStripAnsi:
		return Operation{Kind: OpKindStripAnsi}, nil
	default:
		return Operation{}, NewParseError(ErrMsgUnknownOperation, pos, nil)
	}
}

func (p *parser) parseMapOperation() (Operation, error) {
	if p.sc.peek() != charColon {
		return Operation{}, NewParseError(ErrMsgBadArity, p.sc.position(), nil)
	}
	p.sc.advance() // ':'
	if p.sc.peek() != charBraceOpen {
		return Operation{}, NewParseError(ErrMsgUnterminatedBrace, p.sc.position(), nil)
	}
	p.sc.advance() // '{'

	inner, err := p.parsePipelineBody(true)
	if err != nil {
		return Operation{}, err
	}
	if p.sc.peek() != charBraceClose {
		return Operation{}, NewParseError(ErrMsgUnterminatedBrace, p.sc.position(), nil)
	}
	p.sc.advance() // '}'

	return Operation{Kind: OpKindMap, Inner: inner}, nil
}

// parseIndexShorthand parses a bare range literal in operation position,
// equivalent to split:" ":<range> (spec §4.3 "Index/range shorthand").
func (p *parser) parseIndexShorthand() (Operation, error) {
	r, err := p.parseRangeLiteral()
	if err != nil {
		return Operation{}, err
	}
	return Operation{Kind: OpKindSplit, Sep: ShorthandSplitSeparator, Range: r}, nil
}
