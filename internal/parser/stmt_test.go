package parser_test

import (
	"testing"
)

func TestStatements(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "let",
			body: "let x = 1;",
			want: "statements(letStatement(keyword:let identifier:x symbol:= expression(term(integerConstant:1)) symbol:;))",
		},
		{
			name: "let indexed",
			body: "let a[i] = a[i];",
			want: "statements(letStatement(keyword:let identifier:a symbol:[ expression(term(identifier:i)) symbol:] symbol:= " +
				"expression(term(identifier:a symbol:[ expression(term(identifier:i)) symbol:])) symbol:;))",
		},
		{
			name: "if else",
			body: "if (b) { return; } else { }",
			want: "statements(ifStatement(keyword:if symbol:( expression(term(identifier:b)) symbol:) " +
				"symbol:{ statements(returnStatement(keyword:return symbol:;)) symbol:} " +
				"keyword:else symbol:{ statements() symbol:}))",
		},
		{
			name: "while",
			body: "while (true) { do f(); }",
			want: "statements(whileStatement(keyword:while symbol:( expression(term(keyword:true)) symbol:) " +
				"symbol:{ statements(doStatement(keyword:do identifier:f symbol:( expressionList() symbol:) symbol:;)) symbol:}))",
		},
		{
			name: "do qualified",
			body: `do Output.printString("hi");`,
			want: "statements(doStatement(keyword:do identifier:Output symbol:. identifier:printString symbol:( " +
				"expressionList(expression(term(stringConstant:hi))) symbol:) symbol:;))",
		},
		{
			name: "return value",
			body: "return this;",
			want: "statements(returnStatement(keyword:return expression(term(keyword:this)) symbol:;))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := mustParse(t, wrapStatements(tt.body))
			if got := sexpr(firstStatements(root)); got != tt.want {
				t.Fatalf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestStatementSequence(t *testing.T) {
	root := mustParse(t, wrapStatements("let x = 1; do g(); while (x) { let x = 0; } return;"))
	st := firstStatements(root)
	if len(st.Children) != 4 {
		t.Fatalf("got %d statements: %s", len(st.Children), sexpr(st))
	}
	want := []string{"letStatement", "doStatement", "whileStatement", "returnStatement"}
	for i, c := range st.Children {
		if c.Tag() != want[i] {
			t.Errorf("statement %d = %s, want %s", i, c.Tag(), want[i])
		}
	}
}
