package parser_test

import (
	"testing"
)

func exprOf(t *testing.T, expr string) string {
	t.Helper()
	root := mustParse(t, wrapStatements("let v = "+expr+";"))
	let := firstStatements(root).Children[0]
	// let v = <expression> ;
	return sexpr(let.Children[3])
}

func TestExpressions(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"1", "expression(term(integerConstant:1))"},
		{`"a b"`, "expression(term(stringConstant:a b))"},
		{"null", "expression(term(keyword:null))"},
		{"x", "expression(term(identifier:x))"},
		{"1 + 2 * 3", "expression(term(integerConstant:1) symbol:+ term(integerConstant:2) symbol:* term(integerConstant:3))"},
		{"(1 + 2)", "expression(term(symbol:( expression(term(integerConstant:1) symbol:+ term(integerConstant:2)) symbol:)))"},
		{"-x", "expression(term(symbol:- term(identifier:x)))"},
		{"~~b", "expression(term(symbol:~ term(symbol:~ term(identifier:b))))"},
		{"a[b[0]]", "expression(term(identifier:a symbol:[ expression(term(identifier:b symbol:[ expression(term(integerConstant:0)) symbol:])) symbol:]))"},
		{"f(1, x)", "expression(term(identifier:f symbol:( expressionList(expression(term(integerConstant:1)) symbol:, expression(term(identifier:x))) symbol:)))"},
		{"p.get()", "expression(term(identifier:p symbol:. identifier:get symbol:( expressionList() symbol:)))"},
		{"x < y & y > z", "expression(term(identifier:x) symbol:< term(identifier:y) symbol:& term(identifier:y) symbol:> term(identifier:z))"},
		{"a = b | c", "expression(term(identifier:a) symbol:= term(identifier:b) symbol:| term(identifier:c))"},
		{"8 / -2", "expression(term(integerConstant:8) symbol:/ term(symbol:- term(integerConstant:2)))"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			if got := exprOf(t, tt.expr); got != tt.want {
				t.Fatalf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}
