package cst

import (
	"jackfront/internal/token"
)

// Node is one tree node. Terminals carry a token and no children.
type Node struct {
	Rule     Rule
	Token    token.Token
	Children []*Node
}

// IsTerminal reports whether n is a token leaf.
func (n *Node) IsTerminal() bool { return n.Rule == Terminal }

// Tag is the element name: the rule tag, or the token kind tag for leaves.
func (n *Node) Tag() string {
	if n.Rule == Terminal {
		return n.Token.Kind.Tag()
	}
	return n.Rule.Tag()
}

// Walk visits n and its descendants depth-first, calling enter before and
// leave after the children of each nonterminal. leave is not called for leaves.
func (n *Node) Walk(enter, leave func(*Node)) {
	if n == nil {
		return
	}
	if enter != nil {
		enter(n)
	}
	if n.Rule == Terminal {
		return
	}
	for _, c := range n.Children {
		c.Walk(enter, leave)
	}
	if leave != nil {
		leave(n)
	}
}

// Terminals returns the leaves of n in source order.
func (n *Node) Terminals() []token.Token {
	var out []token.Token
	n.Walk(func(x *Node) {
		if x.Rule == Terminal {
			out = append(out, x.Token)
		}
	}, nil)
	return out
}

// Find returns the first descendant (or n itself) with rule r.
func (n *Node) Find(r Rule) *Node {
	var found *Node
	n.Walk(func(x *Node) {
		if found == nil && x.Rule == r {
			found = x
		}
	}, nil)
	return found
}
