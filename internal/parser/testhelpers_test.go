package parser_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"jackfront/internal/cst"
	"jackfront/internal/diag"
	"jackfront/internal/parser"
	"jackfront/internal/source"
)

// parseSource parses src as a whole file and returns the tree, the error and
// every diagnostic reported along the way.
func parseSource(t *testing.T, src string) (*cst.Node, error, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("Test.jack", []byte(src)))
	bag := diag.NewBag(0)
	b := cst.NewBuilder()
	err := parser.ParseFile(context.Background(), file, b, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err == nil && !b.Complete() {
		t.Fatalf("parse succeeded but tree is incomplete (depth %d)", b.Depth())
	}
	return b.Root(), err, bag
}

func mustParse(t *testing.T, src string) *cst.Node {
	t.Helper()
	root, err, bag := parseSource(t, src)
	if err != nil {
		t.Fatalf("parse %q: %v (%s)", src, err, diagnosticsSummary(bag))
	}
	return root
}

// sexpr renders a tree compactly: rule(children...) with terminals as kind:text.
func sexpr(n *cst.Node) string {
	if n == nil {
		return "<nil>"
	}
	if n.IsTerminal() {
		return n.Token.Kind.Tag() + ":" + n.Token.Text
	}
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = sexpr(c)
	}
	return n.Tag() + "(" + strings.Join(parts, " ") + ")"
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

// wrapStatements puts body inside a function of class Main.
func wrapStatements(body string) string {
	return "class Main { function void main() { " + body + " } }"
}

// firstStatements returns the statements node of the first subroutine.
func firstStatements(root *cst.Node) *cst.Node {
	return root.Find(cst.SubroutineBody).Find(cst.Statements)
}
