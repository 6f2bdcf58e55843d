package internal

import "strings"

// ParseTemplate is the entry point for spec §4.3: it splits the surface
// syntax into literal and template Sections and, for each template section,
// parses the pipeline inside the braces. It never panics — malformed input
// always comes back as a *PipelineError with a position.
func ParseTemplate(text string) (*CompiledTemplate, error) {
	p := &parser{sc: newScanner(text)}
	return p.parseTemplate()
}

type parser struct {
	sc *scanner
}

func (p *parser) parseTemplate() (*CompiledTemplate, error) {
	var sections []Section
	var literal strings.Builder

	flushLiteral := func() {
		if literal.Len() > 0 {
			sections = append(sections, Section{Kind: SectionLiteral, Literal: literal.String()})
			literal.Reset()
		}
	}

	for !p.sc.atEnd() {
		if p.sc.peek() == charDollar && p.sc.peekAt(1) == charBraceOpen {
			verbatim, ok := p.scanShellVariable()
			if ok {
				literal.WriteString(verbatim)
				continue
			}
		}

		if p.sc.peek() == charBraceOpen {
			flushLiteral()
			section, err := p.parseTemplateSection()
			if err != nil {
				return nil, err
			}
			sections = append(sections, section)
			continue
		}

		literal.WriteByte(p.sc.advance())
	}
	flushLiteral()

	return &CompiledTemplate{Sections: sections}, nil
}

// scanShellVariable recognizes the "${...}" escape exception (spec §4.3,
// rule 1): a dollar sign followed by a balanced brace pair is emitted
// verbatim as a literal, with its inner content left unparsed. Returns
// ok=false (consuming nothing) if the braces never balance before EOF, in
// which case the caller falls through to normal scanning of the lone '$'.
func (p *parser) scanShellVariable() (string, bool) {
	start := p.sc.pos
	save := *p.sc

	p.sc.advance() // '$'
	p.sc.advance() // '{'
	depth := 1
	for !p.sc.atEnd() {
		switch p.sc.peek() {
		case charBraceOpen:
			depth++
			p.sc.advance()
		case charBraceClose:
			depth--
			p.sc.advance()
			if depth == 0 {
				return p.sc.src[start:p.sc.pos], true
			}
		default:
			p.sc.advance()
		}
	}
	*p.sc = save
	return "", false
}

// parseTemplateSection parses one "{" [ "!" ] PipelineBody "}" section.
func (p *parser) parseTemplateSection() (Section, error) {
	p.sc.advance() // consume '{'

	debug := false
	if p.sc.peek() == charBang {
		debug = true
		p.sc.advance()
	}

	ops, err := p.parsePipelineBody(false)
	if err != nil {
		return Section{}, err
	}

	if p.sc.peek() != charBraceClose {
		return Section{}, NewParseError(ErrMsgUnterminatedBrace, p.sc.position(), nil)
	}
	p.sc.advance() // consume '}'

	return Section{Kind: SectionTemplate, Pipe: Pipeline{Ops: ops, Debug: debug}}, nil
}
