// Package testkit holds structural checks shared by parser, emitter and
// fuzz tests.
package testkit

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"fortio.org/safecast"

	"jackfront/internal/cst"
	"jackfront/internal/source"
	"jackfront/internal/token"
)

// CheckTreeInvariants validates a parse tree built from sf:
//  1. the root is a class node
//  2. terminals have no children and nonterminals are not terminal kinds
//  3. every token span is non-empty, in bounds and belongs to sf
//  4. token spans are strictly increasing in tree order
//  5. no nonterminal other than parameterList, statements and expressionList
//     is empty
func CheckTreeInvariants(root *cst.Node, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	if root.Rule != cst.Class {
		return fmt.Errorf("root is <%s>, want <class>", root.Tag())
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("content length overflow: %w", err)
	}

	var (
		prevEnd uint32
		first   = true
		bad     error
	)
	root.Walk(func(n *cst.Node) {
		if bad != nil {
			return
		}
		if !n.IsTerminal() {
			if len(n.Children) == 0 && !mayBeEmpty(n.Rule) {
				bad = fmt.Errorf("empty <%s>", n.Tag())
			}
			return
		}
		if len(n.Children) != 0 {
			bad = fmt.Errorf("terminal %q has children", n.Token.Text)
			return
		}
		sp := n.Token.Span
		switch {
		case n.Token.Kind == token.EOF || n.Token.Kind == token.Invalid:
			bad = fmt.Errorf("tree contains %s token at %v", n.Token.Kind, sp)
		case sp.File != sf.ID:
			bad = fmt.Errorf("token %q span file mismatch: got=%d want=%d", n.Token.Text, sp.File, sf.ID)
		case sp.End <= sp.Start:
			bad = fmt.Errorf("token %q has empty span %v", n.Token.Text, sp)
		case sp.End > size:
			bad = fmt.Errorf("token %q span %v beyond content (%d bytes)", n.Token.Text, sp, size)
		case !first && sp.Start < prevEnd:
			bad = fmt.Errorf("token %q at %v overlaps previous token ending at %d", n.Token.Text, sp, prevEnd)
		}
		first = false
		prevEnd = sp.End
	}, nil)
	return bad
}

func mayBeEmpty(r cst.Rule) bool {
	switch r {
	case cst.ParameterList, cst.Statements, cst.ExpressionList:
		return true
	}
	return false
}

// CheckIndentation verifies rendered format 2 output: open and close tags
// balance, each line ends in a newline, and each line is indented by the
// number of elements open before it.
func CheckIndentation(out []byte) error {
	if len(out) == 0 {
		return fmt.Errorf("empty output")
	}
	if out[len(out)-1] != '\n' {
		return fmt.Errorf("output does not end with a newline")
	}
	var stack []string
	sc := bufio.NewScanner(bytes.NewReader(out))
	sc.Buffer(make([]byte, 0, 64*1024), len(out)+1)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := sc.Text()
		body := strings.TrimLeft(line, " ")
		indent := len(line) - len(body)
		if !strings.HasPrefix(body, "<") || !strings.HasSuffix(body, ">") {
			return fmt.Errorf("line %d: not an element: %q", lineNo, line)
		}
		switch {
		case strings.HasPrefix(body, "</"):
			name := body[2 : len(body)-1]
			if len(stack) == 0 || stack[len(stack)-1] != name {
				return fmt.Errorf("line %d: unbalanced </%s>", lineNo, name)
			}
			stack = stack[:len(stack)-1]
			if indent != len(stack) {
				return fmt.Errorf("line %d: close tag indent %d, want %d", lineNo, indent, len(stack))
			}
		case strings.Contains(body, "</"):
			if indent != len(stack) {
				return fmt.Errorf("line %d: leaf indent %d, want %d", lineNo, indent, len(stack))
			}
		default:
			if indent != len(stack) {
				return fmt.Errorf("line %d: open tag indent %d, want %d", lineNo, indent, len(stack))
			}
			stack = append(stack, body[1:len(body)-1])
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if len(stack) != 0 {
		return fmt.Errorf("unclosed <%s>", stack[len(stack)-1])
	}
	return nil
}
