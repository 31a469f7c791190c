package lexer

import (
	"jackfront/internal/token"
)

// scanIdentOrKeyword consumes [A-Za-z_][A-Za-z0-9_]* and classifies reserved words.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if token.IsKeyword(text) {
		return token.Token{Kind: token.Keyword, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Identifier, Span: sp, Text: text}
}
