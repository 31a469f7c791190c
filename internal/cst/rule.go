// Package cst holds the concrete syntax tree of one Jack class: a closed set
// of node kinds (Rule) mirroring the tagged nonterminals of the grammar, plus
// terminal leaves carrying tokens.
package cst

// Rule identifies a tagged nonterminal, or Terminal for token leaves.
type Rule uint8

const (
	Terminal Rule = iota
	Class
	ClassVarDec
	SubroutineDec
	ParameterList
	SubroutineBody
	VarDec
	Statements
	LetStatement
	IfStatement
	WhileStatement
	DoStatement
	ReturnStatement
	Expression
	Term
	ExpressionList

	ruleCount
)

var ruleTags = [ruleCount]string{
	Terminal:        "",
	Class:           "class",
	ClassVarDec:     "classVarDec",
	SubroutineDec:   "subroutineDec",
	ParameterList:   "parameterList",
	SubroutineBody:  "subroutineBody",
	VarDec:          "varDec",
	Statements:      "statements",
	LetStatement:    "letStatement",
	IfStatement:     "ifStatement",
	WhileStatement:  "whileStatement",
	DoStatement:     "doStatement",
	ReturnStatement: "returnStatement",
	Expression:      "expression",
	Term:            "term",
	ExpressionList:  "expressionList",
}

// Tag returns the element name of the nonterminal.
func (r Rule) Tag() string {
	if r < ruleCount {
		return ruleTags[r]
	}
	return ""
}

func (r Rule) String() string {
	if r == Terminal {
		return "terminal"
	}
	return r.Tag()
}

// RuleFromTag maps an element name back to its Rule.
func RuleFromTag(tag string) (Rule, bool) {
	for r := Class; r < ruleCount; r++ {
		if ruleTags[r] == tag {
			return r, true
		}
	}
	return Terminal, false
}
