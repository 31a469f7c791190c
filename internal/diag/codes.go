package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexIntegerOutOfRange        Code = 1004

	// Синтаксические
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynExpectKeyword    Code = 2002
	SynExpectSymbol     Code = 2003
	SynExpectIdentifier Code = 2004
	SynExpectType       Code = 2005
	SynExpectExpression Code = 2006
	SynUnexpectedEOF    Code = 2007
	SynTrailingTokens   Code = 2008

	// I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexIntegerOutOfRange:        "Integer constant out of range",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectKeyword:            "Expected keyword",
	SynExpectSymbol:             "Expected symbol",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectType:               "Expected type",
	SynExpectExpression:         "Expected expression",
	SynUnexpectedEOF:            "Unexpected end of input",
	SynTrailingTokens:           "Tokens after class body",
	IOLoadFileError:             "I/O load file error",
	IOWriteFileError:            "I/O write file error",
}

// Phase groups codes by the pipeline stage that produces them.
type Phase uint8

const (
	PhaseUnknown Phase = iota
	PhaseLex
	PhaseSyntax
	PhaseIO
)

func (p Phase) String() string {
	switch p {
	case PhaseLex:
		return "lexical error"
	case PhaseSyntax:
		return "parse error"
	case PhaseIO:
		return "i/o error"
	default:
		return "error"
	}
}

// Phase derives the producing stage from the numeric range of the code.
func (c Code) Phase() Phase {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return PhaseLex
	case ic >= 2000 && ic < 3000:
		return PhaseSyntax
	case ic >= 4000 && ic < 5000:
		return PhaseIO
	default:
		return PhaseUnknown
	}
}

func (c Code) ID() string {
	switch c.Phase() {
	case PhaseLex:
		return fmt.Sprintf("LEX%04d", int(c))
	case PhaseSyntax:
		return fmt.Sprintf("SYN%04d", int(c))
	case PhaseIO:
		return fmt.Sprintf("IO%04d", int(c))
	default:
		return fmt.Sprintf("E%04d", int(c))
	}
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
