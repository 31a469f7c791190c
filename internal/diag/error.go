package diag

import (
	"errors"
)

// Error is a fatal diagnostic returned through the error channel.
// Lexer and parser stop at the first one; the driver turns it back into a
// bag entry for rendering.
type Error struct {
	Diagnostic
}

// Fail wraps a diagnostic into an *Error.
func Fail(d Diagnostic) *Error {
	return &Error{Diagnostic: d}
}

func (e *Error) Error() string {
	return e.Code.Phase().String() + ": " + e.Message
}

// Kind reports whether this is a lexical, parse or i/o failure.
func (e *Error) Kind() Phase {
	return e.Code.Phase()
}

// AsError unwraps err into a *Error if it carries one.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsLexical reports whether err carries a lexical diagnostic.
func IsLexical(err error) bool {
	de, ok := AsError(err)
	return ok && de.Kind() == PhaseLex
}

// IsSyntax reports whether err carries a parse diagnostic.
func IsSyntax(err error) bool {
	de, ok := AsError(err)
	return ok && de.Kind() == PhaseSyntax
}
