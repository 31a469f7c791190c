package parser

import (
	"jackfront/internal/cst"
	"jackfront/internal/token"
)

type tee []Sink

// Tee returns a Sink that forwards every event to each of sinks in order.
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}

func (t tee) Open(r cst.Rule) {
	for _, s := range t {
		s.Open(r)
	}
}

func (t tee) Close(r cst.Rule) {
	for _, s := range t {
		s.Close(r)
	}
}

func (t tee) Terminal(tok token.Token) {
	for _, s := range t {
		s.Terminal(tok)
	}
}

// Stats counts parse events.
type Stats struct {
	Nodes     int
	Terminals int
	MaxDepth  int
	depth     int
}

func (s *Stats) Open(cst.Rule) {
	s.Nodes++
	s.depth++
	if s.depth > s.MaxDepth {
		s.MaxDepth = s.depth
	}
}

func (s *Stats) Close(cst.Rule) { s.depth-- }

func (s *Stats) Terminal(token.Token) { s.Terminals++ }
