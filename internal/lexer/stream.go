package lexer

import (
	"jackfront/internal/token"
)

// Stream is the parser's view of the token sequence: one current token, an
// optional single token of lookahead, and forward-only movement.
type Stream struct {
	lx       *Lexer
	cur      token.Token
	ahead    token.Token
	hasAhead bool
}

// NewStream primes the stream with the first token.
func NewStream(lx *Lexer) (*Stream, error) {
	s := &Stream{lx: lx}
	tok, err := lx.Next()
	s.cur = tok
	return s, err
}

// HasMore reports whether a current token exists.
func (s *Stream) HasMore() bool {
	return s.cur.Kind != token.EOF && s.cur.Kind != token.Invalid
}

// Current returns the current token; EOF once the input is exhausted.
func (s *Stream) Current() token.Token {
	return s.cur
}

// Advance moves to the next token. Advancing at EOF is a no-op.
func (s *Stream) Advance() error {
	if s.cur.Kind == token.EOF {
		return nil
	}
	if s.hasAhead {
		s.cur = s.ahead
		s.hasAhead = false
		return nil
	}
	tok, err := s.lx.Next()
	s.cur = tok
	return err
}

// PeekNext returns the token after the current one without consuming anything.
func (s *Stream) PeekNext() (token.Token, error) {
	if s.hasAhead {
		return s.ahead, nil
	}
	if s.cur.Kind == token.EOF {
		return s.cur, nil
	}
	tok, err := s.lx.Next()
	if err != nil {
		return tok, err
	}
	s.ahead = tok
	s.hasAhead = true
	return tok, nil
}

// Lexer returns the lexer feeding the stream.
func (s *Stream) Lexer() *Lexer {
	return s.lx
}
