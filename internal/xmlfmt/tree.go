package xmlfmt

import (
	"bufio"
	"fmt"
	"io"

	"jackfront/internal/cst"
	"jackfront/internal/token"
)

// TreeWriter renders parse events in format 2 as they arrive. Each writer
// owns its depth, so one per file. Write errors are sticky: later events are
// dropped and Err reports the first failure.
type TreeWriter struct {
	w     *bufio.Writer
	depth int
	err   error
}

func NewTreeWriter(w io.Writer) *TreeWriter {
	return &TreeWriter{w: bufio.NewWriter(w)}
}

func (tw *TreeWriter) indent() {
	for range tw.depth {
		tw.w.WriteByte(' ')
	}
}

func (tw *TreeWriter) Open(r cst.Rule) {
	if tw.err != nil {
		return
	}
	tw.indent()
	tw.w.WriteByte('<')
	tw.w.WriteString(r.Tag())
	tw.w.WriteString(">\n")
	tw.depth++
}

func (tw *TreeWriter) Close(r cst.Rule) {
	if tw.err != nil {
		return
	}
	if tw.depth == 0 {
		tw.err = fmt.Errorf("xmlfmt: close </%s> without open", r.Tag())
		return
	}
	tw.depth--
	tw.indent()
	tw.w.WriteString("</")
	tw.w.WriteString(r.Tag())
	tw.w.WriteString(">\n")
}

func (tw *TreeWriter) Terminal(tok token.Token) {
	if tw.err != nil {
		return
	}
	tw.indent()
	writeLeaf(tw.w, tok)
}

// Depth is the number of currently open elements.
func (tw *TreeWriter) Depth() int { return tw.depth }

// Flush pushes buffered output to the underlying writer.
func (tw *TreeWriter) Flush() error {
	if tw.err != nil {
		return tw.err
	}
	if err := tw.w.Flush(); err != nil {
		tw.err = err
	}
	return tw.err
}

// Err flushes and returns the first error seen.
func (tw *TreeWriter) Err() error {
	return tw.Flush()
}

// WriteTree renders a built tree in format 2.
func WriteTree(w io.Writer, root *cst.Node) error {
	tw := NewTreeWriter(w)
	root.Walk(func(n *cst.Node) {
		if n.IsTerminal() {
			tw.Terminal(n.Token)
			return
		}
		tw.Open(n.Rule)
	}, func(n *cst.Node) {
		tw.Close(n.Rule)
	})
	return tw.Err()
}
