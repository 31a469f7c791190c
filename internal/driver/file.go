package driver

import (
	"bytes"
	"context"

	"jackfront/internal/diag"
	"jackfront/internal/lexer"
	"jackfront/internal/parser"
	"jackfront/internal/source"
	"jackfront/internal/token"
	"jackfront/internal/xmlfmt"
)

// LoadFile reads path into fs. On failure it records an IO4001 error in bag
// and still returns a placeholder file so diagnostics can name the path.
func LoadFile(fs *source.FileSet, path string, bag *diag.Bag) (*source.File, error) {
	id, err := fs.Load(path)
	if err != nil {
		id = fs.AddVirtual(path, nil)
		return fs.Get(id), ioFailure(bag, diag.IOLoadFileError, id, "failed to load file: "+err.Error())
	}
	return fs.Get(id), nil
}

// Tokenize lexes the whole file. The first lexical error stops it and is
// returned as a *diag.Error after being reported to r.
func Tokenize(file *source.File, r diag.Reporter) ([]token.Token, error) {
	return lexer.Collect(lexer.New(file, lexer.Options{Reporter: r}))
}

// RenderTokens drains lx into the format 1 token dump.
func RenderTokens(lx *lexer.Lexer) ([]byte, error) {
	toks, err := lexer.Collect(lx)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := xmlfmt.WriteTokens(&buf, toks); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderTree restarts lx from the top of its file and produces the format 2
// parse tree. Syntax errors go to r.
func RenderTree(ctx context.Context, lx *lexer.Lexer, r diag.Reporter) ([]byte, error) {
	lx.Reset()
	ts, err := lexer.NewStream(lx)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	tw := xmlfmt.NewTreeWriter(&buf)
	if err := parser.ParseClass(ctx, ts, tw, parser.Options{Reporter: r}); err != nil {
		return nil, err
	}
	if err := tw.Err(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
