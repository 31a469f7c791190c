package lexer

import (
	"jackfront/internal/diag"
	"jackfront/internal/source"
	"jackfront/internal/token"
)

// Lexer turns one source file into tokens, left to right, on demand.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	err    *diag.Error // first lexical error; sticky
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// File returns the source file being scanned.
func (lx *Lexer) File() *source.File { return lx.file }

// Reset restarts the lexer from the beginning of its file and clears any
// recorded error.
func (lx *Lexer) Reset() {
	lx.cursor = NewCursor(lx.file)
	lx.err = nil
}

// Next returns the next significant token. After the last one it returns EOF
// forever. After a lexical error it returns that same error forever.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.err != nil {
		return lx.invalid(lx.emptySpan()), lx.err
	}

	if err := lx.skipTrivia(); err != nil {
		return lx.invalid(lx.emptySpan()), err
	}

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}, nil
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword(), nil
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	case token.IsSymbol(ch):
		return lx.scanSymbol(), nil
	default:
		return lx.unknownChar()
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// Collect drains the lexer into a slice, excluding the trailing EOF.
func Collect(lx *Lexer) ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return tokens, err
		}
		if tok.Kind == token.EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
