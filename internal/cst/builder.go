package cst

import (
	"fmt"

	"jackfront/internal/token"
)

// Builder assembles a tree from open/close/terminal events.
type Builder struct {
	root  *Node
	stack []*Node
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Open(r Rule) {
	n := &Node{Rule: r}
	if len(b.stack) == 0 {
		if b.root == nil {
			b.root = n
		}
	} else {
		parent := b.stack[len(b.stack)-1]
		parent.Children = append(parent.Children, n)
	}
	b.stack = append(b.stack, n)
}

func (b *Builder) Close(r Rule) {
	if len(b.stack) == 0 {
		panic(fmt.Sprintf("cst: close %s without open", r))
	}
	top := b.stack[len(b.stack)-1]
	if top.Rule != r {
		panic(fmt.Sprintf("cst: close %s while %s is open", r, top.Rule))
	}
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *Builder) Terminal(tok token.Token) {
	if len(b.stack) == 0 {
		panic("cst: terminal outside of any rule")
	}
	parent := b.stack[len(b.stack)-1]
	parent.Children = append(parent.Children, &Node{Rule: Terminal, Token: tok})
}

// Root returns the first node opened.
func (b *Builder) Root() *Node { return b.root }

// Depth reports how many nodes are still open.
func (b *Builder) Depth() int { return len(b.stack) }

// Complete reports whether a root exists and every opened node was closed.
func (b *Builder) Complete() bool { return b.root != nil && len(b.stack) == 0 }
