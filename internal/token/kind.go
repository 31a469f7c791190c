package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Keyword is a reserved word such as 'class' or 'while'.
	Keyword
	// Symbol is one punctuation or operator character.
	Symbol
	// Identifier names a class, subroutine or variable.
	Identifier
	// IntegerConstant is a decimal literal in [0, 32767].
	IntegerConstant
	// StringConstant is a double-quoted literal without escapes.
	StringConstant
)

var kindNames = [...]string{
	Invalid:         "Invalid",
	EOF:             "EOF",
	Keyword:         "Keyword",
	Symbol:          "Symbol",
	Identifier:      "Identifier",
	IntegerConstant: "IntegerConstant",
	StringConstant:  "StringConstant",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Tag returns the XML element name used for tokens of this kind.
// Sentinel kinds have no tag.
func (k Kind) Tag() string {
	switch k {
	case Keyword:
		return "keyword"
	case Symbol:
		return "symbol"
	case Identifier:
		return "identifier"
	case IntegerConstant:
		return "integerConstant"
	case StringConstant:
		return "stringConstant"
	default:
		return ""
	}
}

// Describe is the lowercase phrase used in diagnostics ("integer constant").
func (k Kind) Describe() string {
	switch k {
	case Keyword:
		return "keyword"
	case Symbol:
		return "symbol"
	case Identifier:
		return "identifier"
	case IntegerConstant:
		return "integer constant"
	case StringConstant:
		return "string constant"
	case EOF:
		return "end of input"
	default:
		return "invalid token"
	}
}

// KindFromTag maps an XML element name back to its Kind.
func KindFromTag(tag string) (Kind, bool) {
	switch tag {
	case "keyword":
		return Keyword, true
	case "symbol":
		return Symbol, true
	case "identifier":
		return Identifier, true
	case "integerConstant":
		return IntegerConstant, true
	case "stringConstant":
		return StringConstant, true
	default:
		return Invalid, false
	}
}
