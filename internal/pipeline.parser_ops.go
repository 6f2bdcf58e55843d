package internal

import "strings"

// This file holds one parse function per operation family, each consuming
// the ':'-delimited arguments described for that operation in spec §4.5.

func (p *parser) parseSplit() (Operation, error) {
	if err := p.expectColon(); err != nil {
		return Operation{}, err
	}
	sep, err := p.readSimpleArg()
	if err != nil {
		return Operation{}, err
	}
	if err := p.expectColon(); err != nil {
		return Operation{}, err
	}
	r, err := p.parseRangeLiteral()
	if err != nil {
		return Operation{}, err
	}
	return Operation{Kind: OpKindSplit, Sep: sep, Range: r}, nil
}

func (p *parser) parseJoin() (Operation, error) {
	if err := p.expectColon(); err != nil {
		return Operation{}, err
	}
	sep, err := p.readSimpleArg()
	if err != nil {
		return Operation{}, err
	}
	return Operation{Kind: OpKindJoin, Sep: sep}, nil
}

func (p *parser) parseSlice() (Operation, error) {
	if err := p.expectColon(); err != nil {
		return Operation{}, err
	}
	r, err := p.parseRangeLiteral()
	if err != nil {
		return Operation{}, err
	}
	return Operation{Kind: OpKindSlice, Range: r}, nil
}

func (p *parser) parseSubstring() (Operation, error) {
	if err := p.expectColon(); err != nil {
		return Operation{}, err
	}
	r, err := p.parseRangeLiteral()
	if err != nil {
		return Operation{}, err
	}
	return Operation{Kind: OpKindSubstring, Range: r}, nil
}

func (p *parser) parseTrim() (Operation, error) {
	op := Operation{Kind: OpKindTrim, Dir: DefaultTrimDir}
	if !p.hasMoreArgs() {
		return op, nil
	}
	chars, err := p.readSimpleArg()
	if err != nil {
		return Operation{}, err
	}
	op.Chars = chars
	if !p.hasMoreArgs() {
		return op, nil
	}
	dir, err := p.readSimpleArg()
	if err != nil {
		return Operation{}, err
	}
	if err := validateDirection(dir, p); err != nil {
		return Operation{}, err
	}
	op.Dir = dir
	return op, nil
}

func (p *parser) parsePad() (Operation, error) {
	if err := p.expectColon(); err != nil {
		return Operation{}, err
	}
	width, err := p.readSignedInt()
	if err != nil {
		return Operation{}, err
	}
	op := Operation{Kind: OpKindPad, Width: width, Chars: string(DefaultPadChar), Dir: DefaultPadDir}
	if !p.hasMoreArgs() {
		return op, nil
	}
	ch, err := p.readSimpleArg()
	if err != nil {
		return Operation{}, err
	}
	if ch != "" {
		op.Chars = ch
	}
	if !p.hasMoreArgs() {
		return op, nil
	}
	dir, err := p.readSimpleArg()
	if err != nil {
		return Operation{}, err
	}
	if err := validateDirection(dir, p); err != nil {
		return Operation{}, err
	}
	op.Dir = dir
	return op, nil
}

func (p *parser) parseAppendPrepend(kind OpKind) (Operation, error) {
	if err := p.expectColon(); err != nil {
		return Operation{}, err
	}
	text, err := p.readSimpleArg()
	if err != nil {
		return Operation{}, err
	}
	return Operation{Kind: kind, Text: text}, nil
}

func (p *parser) parseSurround() (Operation, error) {
	if err := p.expectColon(); err != nil {
		return Operation{}, err
	}
	text, err := p.readSimpleArg()
	if err != nil {
		return Operation{}, err
	}
	return Operation{Kind: OpKindSurround, Before: text, After: text}, nil
}

func (p *parser) parseReplace() (Operation, error) {
	if err := p.expectColon(); err != nil {
		return Operation{}, err
	}
	if p.sc.peek() != 's' || p.sc.peekAt(1) != '/' {
		return Operation{}, NewParseError(ErrMsgInvalidReplaceForm, p.sc.position(), nil)
	}
	p.sc.advanceN(2) // "s/"

	pattern, err := p.readUntilSlash()
	if err != nil {
		return Operation{}, err
	}
	replacement, err := p.readUntilSlash()
	if err != nil {
		return Operation{}, err
	}
	replacement = strings.ReplaceAll(replacement, `\/`, "/")
	flags := p.readFlags()

	op := Operation{Kind: OpKindReplace, Pattern: pattern, Replacement: replacement}
	for _, f := range flags {
		switch byte(f) {
		case ReplaceFlagGlobal:
			op.Global = true
		case ReplaceFlagCaseInsensitive:
			op.CaseInsens = true
		case ReplaceFlagMultiline:
			op.Multiline = true
		case ReplaceFlagDotAll:
			op.DotAll = true
		}
	}
	return op, nil
}

func (p *parser) parseRegexExtract() (Operation, error) {
	if err := p.expectColon(); err != nil {
		return Operation{}, err
	}
	pattern := p.readRegexArg()
	op := Operation{Kind: OpKindRegexExtract, Pattern: pattern, Group: 0}
	if !p.hasMoreArgs() {
		return op, nil
	}
	group, err := p.readSignedInt()
	if err != nil {
		return Operation{}, err
	}
	op.Group = group
	return op, nil
}

func (p *parser) parseSort() (Operation, error) {
	op := Operation{Kind: OpKindSort, Dir: DefaultSortDir}
	if !p.hasMoreArgs() {
		return op, nil
	}
	first, err := p.readSimpleArg()
	if err != nil {
		return Operation{}, err
	}
	if err := applySortModifier(&op, first, p); err != nil {
		return Operation{}, err
	}
	if !p.hasMoreArgs() {
		return op, nil
	}
	second, err := p.readSimpleArg()
	if err != nil {
		return Operation{}, err
	}
	if err := applySortModifier(&op, second, p); err != nil {
		return Operation{}, err
	}
	return op, nil
}

func applySortModifier(op *Operation, arg string, p *parser) error {
	switch arg {
	case SortAsc:
		op.Dir = SortAsc
	case SortDesc:
		op.Dir = SortDesc
	case SortCaseInsensitive:
		op.CaseFold = true
	default:
		return NewParseError(ErrMsgInvalidSortArg, p.sc.position(), nil)
	}
	return nil
}

func (p *parser) parseFilter(kind OpKind) (Operation, error) {
	if err := p.expectColon(); err != nil {
		return Operation{}, err
	}
	pattern := p.readRegexArg()
	return Operation{Kind: kind, Pattern: pattern}, nil
}

func validateDirection(dir string, p *parser) error {
	switch dir {
	case DirLeft, DirRight, DirBoth:
		return nil
	default:
		return NewParseError(ErrMsgInvalidDirection, p.sc.position(), nil)
	}
}
