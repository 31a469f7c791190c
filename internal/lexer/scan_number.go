package lexer

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"

	"jackfront/internal/diag"
	"jackfront/internal/token"
)

// MaxInt is the largest integer constant the language can represent.
const MaxInt = 32767

// scanNumber consumes a run of decimal digits. Letters directly after the
// digits are not part of the number; they start the next token.
func (lx *Lexer) scanNumber() (token.Token, error) {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	u, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return lx.fail(diag.LexIntegerOutOfRange, sp, outOfRange(text))
	}
	v, err := safecast.Conv[int16](u)
	if err != nil {
		return lx.fail(diag.LexIntegerOutOfRange, sp, outOfRange(text))
	}
	return token.Token{Kind: token.IntegerConstant, Span: sp, Text: text, Value: v}, nil
}

func outOfRange(text string) string {
	if len(text) > 16 {
		text = text[:16] + "..."
	}
	return fmt.Sprintf("integer constant %s is out of range [0, %d]", text, MaxInt)
}
