package token

var keywords = map[string]struct{}{
	"class":       {},
	"constructor": {},
	"function":    {},
	"method":      {},
	"field":       {},
	"static":      {},
	"var":         {},
	"int":         {},
	"char":        {},
	"boolean":     {},
	"void":        {},
	"true":        {},
	"false":       {},
	"null":        {},
	"this":        {},
	"let":         {},
	"do":          {},
	"if":          {},
	"else":        {},
	"while":       {},
	"return":      {},
}

// IsKeyword reports whether ident is a reserved word. Matching is case-sensitive.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}

// IsSymbol reports whether b is one of the single-character symbols.
func IsSymbol(b byte) bool {
	switch b {
	case '{', '}', '(', ')', '[', ']', '.', ',', ';',
		'+', '-', '*', '/', '&', '|', '<', '>', '=', '~':
		return true
	default:
		return false
	}
}

// IsBinaryOp reports whether sym is a binary operator of the expression grammar.
func IsBinaryOp(sym string) bool {
	switch sym {
	case "+", "-", "*", "/", "&", "|", "<", ">", "=":
		return true
	default:
		return false
	}
}

// IsUnaryOp reports whether sym is a prefix operator.
func IsUnaryOp(sym string) bool {
	return sym == "-" || sym == "~"
}

// IsKeywordConstant reports whether kw is one of true, false, null, this.
func IsKeywordConstant(kw string) bool {
	switch kw {
	case "true", "false", "null", "this":
		return true
	default:
		return false
	}
}

// IsPrimitiveType reports whether kw names a built-in type.
func IsPrimitiveType(kw string) bool {
	switch kw {
	case "int", "char", "boolean":
		return true
	default:
		return false
	}
}
