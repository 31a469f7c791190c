package lexer

import (
	"jackfront/internal/diag"
	"jackfront/internal/source"
	"jackfront/internal/token"
)

type Options struct {
	Reporter diag.Reporter // may be nil; the error is still returned from Next
}

// fail records the first lexical error; the lexer stays poisoned until Reset.
func (lx *Lexer) fail(code diag.Code, sp source.Span, msg string) (token.Token, error) {
	d := diag.NewError(code, sp, msg)
	diag.Emit(lx.opts.Reporter, d)
	lx.err = diag.Fail(d)
	return lx.invalid(sp), lx.err
}

func (lx *Lexer) invalid(sp source.Span) token.Token {
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
