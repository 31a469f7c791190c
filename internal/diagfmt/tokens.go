package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"jackfront/internal/source"
	"jackfront/internal/token"
)

type TokenOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Value *int16 `json:"value,omitempty"`
	Line  uint32 `json:"line"`
	Col   uint32 `json:"col"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// FormatTokensPretty prints one token per line with its position.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		startPos, endPos := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%3d: %-15s %q at %d:%d-%d:%d\n",
			i+1, tok.Kind.Tag(), tok.Text,
			startPos.Line, startPos.Col, endPos.Line, endPos.Col); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON prints the tokens as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		pos, _ := fs.Resolve(tok.Span)
		out := TokenOutput{
			Kind:  tok.Kind.Tag(),
			Text:  tok.Text,
			Line:  pos.Line,
			Col:   pos.Col,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		}
		if tok.Kind == token.IntegerConstant {
			v := tok.Value
			out.Value = &v
		}
		output = append(output, out)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
