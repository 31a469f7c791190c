package xmlfmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"jackfront/internal/token"
)

func writeLeaf(w *bufio.Writer, tok token.Token) {
	tag := tok.Kind.Tag()
	w.WriteByte('<')
	w.WriteString(tag)
	w.WriteByte('>')
	w.WriteString(Escape(tok.Text))
	w.WriteString("</")
	w.WriteString(tag)
	w.WriteString(">\n")
}

// WriteTokens writes toks in format 1. EOF and invalid tokens are skipped.
func WriteTokens(w io.Writer, toks []token.Token) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("<tokens>\n")
	for _, tok := range toks {
		if tok.Kind.Tag() == "" {
			continue
		}
		writeLeaf(bw, tok)
	}
	bw.WriteString("</tokens>\n")
	return bw.Flush()
}

// ReadTokens parses a format 1 document back into tokens. The tokens carry
// kind, text and value but no source spans.
//
// The reader is line based and undoes exactly the escapes Escape applies, so
// any lexeme the lexer accepts reads back byte for byte.
func ReadTokens(r io.Reader) ([]token.Token, error) {
	br := bufio.NewReader(r)
	first, err := readLine(br)
	if err != nil {
		return nil, errors.New("xmlfmt: missing <tokens>")
	}
	if first != "<tokens>" {
		return nil, fmt.Errorf("xmlfmt: expected <tokens>, found %q", first)
	}
	var out []token.Token
	for lineNo := 2; ; lineNo++ {
		line, err := readLine(br)
		if err != nil {
			return nil, errors.New("xmlfmt: missing </tokens>")
		}
		if line == "</tokens>" {
			break
		}
		tok, err := decodeLeaf(line)
		if err != nil {
			return nil, fmt.Errorf("xmlfmt: line %d: %w", lineNo, err)
		}
		out = append(out, tok)
	}
	if rest, _ := br.Peek(1); len(rest) > 0 {
		return nil, errors.New("xmlfmt: trailing content after </tokens>")
	}
	return out, nil
}

// readLine returns the next line without its '\n'. A final line without a
// newline is accepted; io.EOF is returned only when nothing is left.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}

func decodeLeaf(line string) (token.Token, error) {
	if !strings.HasPrefix(line, "<") {
		return token.Token{}, fmt.Errorf("expected element, found %q", line)
	}
	end := strings.IndexByte(line, '>')
	if end < 0 {
		return token.Token{}, fmt.Errorf("unterminated start tag %q", line)
	}
	tag := line[1:end]
	kind, ok := token.KindFromTag(tag)
	if !ok {
		return token.Token{}, fmt.Errorf("unknown token element <%s>", tag)
	}
	body, ok := strings.CutSuffix(line[end+1:], "</"+tag+">")
	if !ok {
		return token.Token{}, fmt.Errorf("<%s> is not closed on the same line", tag)
	}
	if strings.ContainsAny(body, "<>") {
		return token.Token{}, fmt.Errorf("<%s>: unescaped markup in %q", tag, body)
	}
	text := unescaper.Replace(body)
	tok := token.Token{Kind: kind, Text: text}
	if kind == token.IntegerConstant {
		n, err := strconv.ParseUint(text, 10, 16)
		if err != nil {
			return token.Token{}, fmt.Errorf("integer constant %q: %w", text, err)
		}
		v, err := safecast.Conv[int16](n)
		if err != nil {
			return token.Token{}, fmt.Errorf("integer constant %q: %w", text, err)
		}
		tok.Value = v
	}
	return tok, nil
}
