package lexer

import (
	"jackfront/internal/diag"
)

// skipTrivia moves past whitespace and comments.
//   - ' ', '\t', '\n', '\r'
//   - // ... up to the newline
//   - /* ... */ and /** ... */, not nested, may span lines
func (lx *Lexer) skipTrivia() error {
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Peek(); {
		case isSpace(b):
			lx.cursor.Bump()
		case b == '/':
			skipped, err := lx.skipComment()
			if err != nil {
				return err
			}
			if !skipped {
				return nil
			}
		default:
			return nil
		}
	}
	return nil
}

// skipComment consumes one comment starting at '/'. A lone '/' is left in
// place for the symbol scanner.
func (lx *Lexer) skipComment() (bool, error) {
	start := lx.cursor.Mark()
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' {
		return false, nil
	}
	switch b1 {
	case '/':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return true, nil
	case '*':
		lx.cursor.Bump()
		lx.cursor.Bump()
		for {
			b0, b1, ok := lx.cursor.Peek2()
			if !ok {
				// fewer than two bytes left: cannot hold "*/"
				for !lx.cursor.EOF() {
					lx.cursor.Bump()
				}
				sp := lx.cursor.SpanFrom(start)
				_, err := lx.fail(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
				return false, err
			}
			if b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				return true, nil
			}
			lx.cursor.Bump()
		}
	default:
		return false, nil
	}
}
