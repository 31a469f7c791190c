package token

import (
	"jackfront/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string
	Value int16 // IntegerConstant only
}

// Is reports whether the token has kind k and lexeme text.
func (t Token) Is(k Kind, text string) bool {
	return t.Kind == k && t.Text == text
}

// IsKeyword reports whether the token is the keyword kw, or any keyword when kw is empty.
func (t Token) IsKeyword(kw ...string) bool {
	if t.Kind != Keyword {
		return false
	}
	if len(kw) == 0 {
		return true
	}
	for _, w := range kw {
		if t.Text == w {
			return true
		}
	}
	return false
}

// IsSymbol reports whether the token is one of the given symbols, or any symbol when none are given.
func (t Token) IsSymbol(sym ...string) bool {
	if t.Kind != Symbol {
		return false
	}
	if len(sym) == 0 {
		return true
	}
	for _, s := range sym {
		if t.Text == s {
			return true
		}
	}
	return false
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Identifier }

// IsLiteral reports whether the token is an integer or string constant.
func (t Token) IsLiteral() bool {
	return t.Kind == IntegerConstant || t.Kind == StringConstant
}

// Describe renders the token for diagnostics, e.g. `symbol ';'`.
func (t Token) Describe() string {
	switch t.Kind {
	case EOF, Invalid:
		return t.Kind.Describe()
	case StringConstant:
		return t.Kind.Describe() + ` "` + t.Text + `"`
	default:
		return t.Kind.Describe() + " '" + t.Text + "'"
	}
}
