package fuzztests

import (
	"bytes"
	"context"
	"testing"
	"time"

	"jackfront/internal/cst"
	"jackfront/internal/diag"
	"jackfront/internal/parser"
	"jackfront/internal/source"
	"jackfront/internal/testkit"
	"jackfront/internal/xmlfmt"
)

// parseTimeout bounds a single parse; exceeding it means the parser loops.
const parseTimeout = 5 * time.Second

type parseOutcome struct {
	file *source.File
	root *cst.Node
	out  []byte
	bag  *diag.Bag
	err  error
}

func parseInput(ctx context.Context, input []byte) parseOutcome {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("Fuzz.jack", input))
	bag := diag.NewBag(0)
	b := cst.NewBuilder()
	var buf bytes.Buffer
	tw := xmlfmt.NewTreeWriter(&buf)
	err := parser.ParseFile(ctx, file, parser.Tee(b, tw), parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err == nil {
		err = tw.Err()
	}
	return parseOutcome{file: file, root: b.Root(), out: buf.Bytes(), bag: bag, err: err}
}

// FuzzParserTree checks that a successful parse yields a well-formed tree
// and output, and a failed one exactly one lexical or syntax diagnostic.
func FuzzParserTree(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)
		res := parseInput(context.Background(), input)
		if res.err != nil {
			if !diag.IsLexical(res.err) && !diag.IsSyntax(res.err) {
				t.Fatalf("unexpected error kind %v for %q", res.err, truncateForLog(input, 200))
			}
			if res.bag.Len() != 1 {
				t.Fatalf("want 1 diagnostic, got %d for %q", res.bag.Len(), truncateForLog(input, 200))
			}
			return
		}
		if err := testkit.CheckTreeInvariants(res.root, res.file); err != nil {
			t.Fatalf("tree invariant: %v\ninput: %q", err, truncateForLog(input, 200))
		}
		if err := testkit.CheckIndentation(res.out); err != nil {
			t.Fatalf("output invariant: %v\n%s", err, res.out)
		}
		var again bytes.Buffer
		if err := xmlfmt.WriteTree(&again, res.root); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(again.Bytes(), res.out) {
			t.Fatalf("streamed and built trees render differently for %q", truncateForLog(input, 200))
		}
	})
}

// FuzzParserNoHang fails when a single parse does not finish in time.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte("class A { function void f() { if (x) { if (y) { if (z) { } } } } }"))
	f.Add([]byte("class A { function void f() { let x = ((((((((1)))))))); } }"))
	f.Add([]byte("class A { function void f() { let x = a[b[c[d[0]]]]; } }"))
	f.Add([]byte("class A { function void f() { do a.b(c.d(e.f(), g()), h); } }"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)
		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = parseInput(ctx, input)
		}()
		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}
