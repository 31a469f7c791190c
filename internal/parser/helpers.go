package parser

import (
	"fmt"
	"strings"

	"jackfront/internal/diag"
	"jackfront/internal/source"
	"jackfront/internal/token"
)

// consume reports the current token as a terminal and advances past it.
func (p *Parser) consume() error {
	tok := p.ts.Current()
	p.sink.Terminal(tok)
	p.lastSpan = tok.Span
	return p.ts.Advance()
}

func (p *Parser) expectKeyword(kw ...string) error {
	if p.cur().IsKeyword(kw...) {
		return p.consume()
	}
	return p.unexpected(diag.SynExpectKeyword, "keyword "+quoteAll(kw))
}

func (p *Parser) expectSymbol(sym string) error {
	if p.cur().IsSymbol(sym) {
		return p.consume()
	}
	return p.unexpected(diag.SynExpectSymbol, "symbol '"+sym+"'")
}

// expectIdent consumes an identifier; what names its role, e.g. "class name".
func (p *Parser) expectIdent(what string) error {
	if p.cur().IsIdent() {
		return p.consume()
	}
	return p.unexpected(diag.SynExpectIdentifier, what)
}

// expectType consumes int, char, boolean, a class name, or void when allowed.
func (p *Parser) expectType(allowVoid bool) error {
	cur := p.cur()
	if cur.IsIdent() {
		return p.consume()
	}
	if cur.IsKeyword() && (token.IsPrimitiveType(cur.Text) || allowVoid && cur.Text == "void") {
		return p.consume()
	}
	if allowVoid {
		return p.unexpected(diag.SynExpectType, "return type")
	}
	return p.unexpected(diag.SynExpectType, "type")
}

// unexpected fails on the current token; at end of input the code becomes
// SynUnexpectedEOF and the span points just past the last consumed token.
func (p *Parser) unexpected(code diag.Code, want string) error {
	cur := p.cur()
	if cur.Kind != token.EOF {
		return p.fail(code, cur.Span, fmt.Sprintf("expected %s, found %s", want, cur.Describe()))
	}
	d := diag.NewError(diag.SynUnexpectedEOF, p.lastSpan.ZeroideToEnd(), fmt.Sprintf("expected %s, found %s", want, cur.Describe()))
	if !p.classBody.Empty() {
		d = d.WithNote(p.classBody, "class body opened here")
	}
	return p.report(d)
}

func (p *Parser) fail(code diag.Code, sp source.Span, msg string) error {
	return p.report(diag.NewError(code, sp, msg))
}

func (p *Parser) report(d diag.Diagnostic) error {
	diag.Emit(p.opts.Reporter, d)
	return diag.Fail(d)
}

func quoteAll(words []string) string {
	q := make([]string, len(words))
	for i, w := range words {
		q[i] = "'" + w + "'"
	}
	return strings.Join(q, " or ")
}
