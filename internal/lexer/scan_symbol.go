package lexer

import (
	"fmt"
	"unicode/utf8"

	"jackfront/internal/diag"
	"jackfront/internal/token"
)

// scanSymbol emits the single-byte symbol under the cursor.
func (lx *Lexer) scanSymbol() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Symbol, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) unknownChar() (token.Token, error) {
	start := lx.cursor.Mark()
	r, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:lx.cursor.Limit])
	for i := 0; i < sz; i++ {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return lx.fail(diag.LexUnknownChar, sp, fmt.Sprintf("unexpected character %q", r))
}
