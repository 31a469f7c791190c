package lexer

import (
	"jackfront/internal/diag"
	"jackfront/internal/token"
)

// scanString consumes "..." on a single line. Text holds the contents without quotes.
func (lx *Lexer) scanString() (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{
				Kind: token.StringConstant,
				Span: sp,
				Text: string(lx.file.Content[sp.Start+1 : sp.End-1]),
			}, nil
		case '\n':
			sp := lx.cursor.SpanFrom(start)
			return lx.fail(diag.LexUnterminatedString, sp, "newline in string constant")
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return lx.fail(diag.LexUnterminatedString, sp, "unterminated string constant")
}

