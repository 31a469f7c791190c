// Package parser is an LL(1) recursive-descent parser for Jack classes.
//
// There is one method per nonterminal. Each tagged rule reports an Open event,
// its children in grammar order and a Close event to a Sink; transparent
// rules (type, statement, subroutineCall and friends) emit their terminals
// straight into the enclosing rule. Parsing stops at the first lexical or
// syntax error, which is returned as a *diag.Error.
package parser

import (
	"context"
	"fmt"

	"jackfront/internal/cst"
	"jackfront/internal/diag"
	"jackfront/internal/lexer"
	"jackfront/internal/source"
	"jackfront/internal/token"
	"jackfront/internal/trace"
)

// Sink receives the parse as a stream of events.
type Sink interface {
	Open(r cst.Rule)
	Close(r cst.Rule)
	Terminal(tok token.Token)
}

type Options struct {
	Reporter diag.Reporter // syntax errors are emitted here as well as returned
	Tracer   trace.Tracer  // rule spans at trace.LevelRule
}

// Parser holds the state for one class.
type Parser struct {
	ctx       context.Context
	ts        *lexer.Stream
	sink      Sink
	opts      Options
	lastSpan  source.Span // span of the last consumed token, for EOF diagnostics
	classBody source.Span // the class's opening '{'
	spans     []*trace.Span
	ruleSpan  bool
}

// ParseClass parses exactly one class from ts, reporting it to sink, and
// requires the stream to be exhausted afterwards.
func ParseClass(ctx context.Context, ts *lexer.Stream, sink Sink, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.FromContext(ctx)
	}
	p := &Parser{
		ctx:      ctx,
		ts:       ts,
		sink:     sink,
		opts:     opts,
		lastSpan: ts.Current().Span,
		ruleSpan: opts.Tracer.Enabled() && opts.Tracer.Level().ShouldEmit(trace.ScopeRule),
	}
	if err := p.parseClass(); err != nil {
		p.abandonSpans()
		return err
	}
	if p.ts.HasMore() {
		cur := p.ts.Current()
		d := diag.NewError(diag.SynTrailingTokens, cur.Span,
			fmt.Sprintf("unexpected %s after the end of class", cur.Describe()))
		return p.report(d.WithNote(p.lastSpan, "class ended here"))
	}
	return nil
}

// ParseFile lexes and parses one source file.
func ParseFile(ctx context.Context, file *source.File, sink Sink, opts Options) error {
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	ts, err := lexer.NewStream(lx)
	if err != nil {
		return err
	}
	return ParseClass(ctx, ts, sink, opts)
}

func (p *Parser) cur() token.Token {
	return p.ts.Current()
}

func (p *Parser) open(r cst.Rule) {
	if p.ruleSpan {
		var parent uint64
		if n := len(p.spans); n > 0 {
			parent = p.spans[n-1].ID()
		}
		p.spans = append(p.spans, trace.Begin(p.opts.Tracer, trace.ScopeRule, r.Tag(), parent))
	}
	p.sink.Open(r)
}

func (p *Parser) close(r cst.Rule) {
	p.sink.Close(r)
	if p.ruleSpan && len(p.spans) > 0 {
		p.spans[len(p.spans)-1].End("")
		p.spans = p.spans[:len(p.spans)-1]
	}
}

// abandonSpans ends the rule spans left open by a failed parse, innermost first.
func (p *Parser) abandonSpans() {
	for i := len(p.spans) - 1; i >= 0; i-- {
		p.spans[i].End("error")
	}
	p.spans = nil
}
