package xmlfmt_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"jackfront/internal/cst"
	"jackfront/internal/lexer"
	"jackfront/internal/parser"
	"jackfront/internal/source"
	"jackfront/internal/token"
	"jackfront/internal/xmlfmt"
)

const mainSrc = `// entry point
class Main {
  field int x;
  function void main() {
    let x = -1;
    return;
  }
}
`

const mainTree = `<class>
 <keyword>class</keyword>
 <identifier>Main</identifier>
 <symbol>{</symbol>
 <classVarDec>
  <keyword>field</keyword>
  <keyword>int</keyword>
  <identifier>x</identifier>
  <symbol>;</symbol>
 </classVarDec>
 <subroutineDec>
  <keyword>function</keyword>
  <keyword>void</keyword>
  <identifier>main</identifier>
  <symbol>(</symbol>
  <parameterList>
  </parameterList>
  <symbol>)</symbol>
  <subroutineBody>
   <symbol>{</symbol>
   <statements>
    <letStatement>
     <keyword>let</keyword>
     <identifier>x</identifier>
     <symbol>=</symbol>
     <expression>
      <term>
       <symbol>-</symbol>
       <term>
        <integerConstant>1</integerConstant>
       </term>
      </term>
     </expression>
     <symbol>;</symbol>
    </letStatement>
    <returnStatement>
     <keyword>return</keyword>
     <symbol>;</symbol>
    </returnStatement>
   </statements>
   <symbol>}</symbol>
  </subroutineBody>
 </subroutineDec>
 <symbol>}</symbol>
</class>
`

func virtualFile(src string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("Main.jack", []byte(src)))
}

func renderTree(t *testing.T, src string) string {
	t.Helper()
	var buf bytes.Buffer
	tw := xmlfmt.NewTreeWriter(&buf)
	if err := parser.ParseFile(context.Background(), virtualFile(src), tw, parser.Options{}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := tw.Err(); err != nil {
		t.Fatalf("write: %v", err)
	}
	if tw.Depth() != 0 {
		t.Fatalf("depth %d after parse", tw.Depth())
	}
	return buf.String()
}

func TestTreeWriterOutput(t *testing.T) {
	if got := renderTree(t, mainSrc); got != mainTree {
		t.Fatalf("got:\n%s\nwant:\n%s", got, mainTree)
	}
}

func TestWriteTreeMatchesStreaming(t *testing.T) {
	b := cst.NewBuilder()
	if err := parser.ParseFile(context.Background(), virtualFile(mainSrc), b, parser.Options{}); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := xmlfmt.WriteTree(&buf, b.Root()); err != nil {
		t.Fatal(err)
	}
	if buf.String() != mainTree {
		t.Fatalf("built tree renders differently:\n%s", buf.String())
	}
}

func TestTreeIdempotent(t *testing.T) {
	src := `class P { method boolean lt(P o) { return (x < o.x) & ~(y > 2); } }`
	first := renderTree(t, src)
	if second := renderTree(t, src); first != second {
		t.Fatal("two parses of the same text differ")
	}
	if !strings.Contains(first, "<symbol>&lt;</symbol>") || !strings.Contains(first, "<symbol>&amp;</symbol>") {
		t.Errorf("symbols not escaped:\n%s", first)
	}
}

func TestTreeIndentationTracksDepth(t *testing.T) {
	out := renderTree(t, `class Q {
  static Array a;
  constructor Q new(int n) {
    var int i;
    while (i < n) { let a[i] = Math.max(i, n - i); let i = i + 1; }
    if (n = 0) { do Sys.halt(); } else { return this; }
    return this;
  }
}`)
	depth, opens, closes := 0, 0, 0
	for i, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		body := strings.TrimLeft(line, " ")
		indent := len(line) - len(body)
		closing := strings.HasPrefix(body, "</")
		leaf := strings.Contains(body, "</") && !closing
		want := depth
		if closing {
			want = depth - 1
		}
		if indent != want {
			t.Fatalf("line %d %q: indent %d, want %d", i+1, line, indent, want)
		}
		switch {
		case closing:
			depth--
			closes++
		case !leaf:
			depth++
			opens++
		}
	}
	if depth != 0 || opens != closes {
		t.Fatalf("unbalanced: %d opens, %d closes", opens, closes)
	}
}

func TestWriteTokens(t *testing.T) {
	toks, err := lexer.Collect(lexer.New(virtualFile(`if (a < b) { let s = "x & y"; }`), lexer.Options{}))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := xmlfmt.WriteTokens(&buf, toks); err != nil {
		t.Fatal(err)
	}
	want := `<tokens>
<keyword>if</keyword>
<symbol>(</symbol>
<identifier>a</identifier>
<symbol>&lt;</symbol>
<identifier>b</identifier>
<symbol>)</symbol>
<symbol>{</symbol>
<keyword>let</keyword>
<identifier>s</identifier>
<symbol>=</symbol>
<stringConstant>x &amp; y</stringConstant>
<symbol>;</symbol>
<symbol>}</symbol>
</tokens>
`
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestTokensRoundTrip(t *testing.T) {
	src := `class T { function void f() { do Output.printString(" <a href=\"x\"> "); return 32767 > 0; } }`
	src = strings.ReplaceAll(src, `\"`, "'")
	toks, err := lexer.Collect(lexer.New(virtualFile(src), lexer.Options{}))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := xmlfmt.WriteTokens(&buf, toks); err != nil {
		t.Fatal(err)
	}
	back, err := xmlfmt.ReadTokens(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != len(toks) {
		t.Fatalf("read %d tokens, wrote %d", len(back), len(toks))
	}
	for i := range toks {
		if back[i].Kind != toks[i].Kind || back[i].Text != toks[i].Text || back[i].Value != toks[i].Value {
			t.Errorf("token %d: got %v %q %d, want %v %q %d", i,
				back[i].Kind, back[i].Text, back[i].Value, toks[i].Kind, toks[i].Text, toks[i].Value)
		}
	}
}

func TestTokensRoundTripRawStringBytes(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"carriage return", "a\rb"},
		{"control character", "a\x01b"},
		{"tab and nul", "\t\x00"},
		{"noncharacter", "x\uFFFEy"},
		{"invalid utf8", "\xff\xfe"},
		{"entity lookalike", "&amp;lt; &gt;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "class T { function void f() { let s = \"" + tt.text + "\"; return; } }"
			toks, err := lexer.Collect(lexer.New(virtualFile(src), lexer.Options{}))
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			if err := xmlfmt.WriteTokens(&buf, toks); err != nil {
				t.Fatal(err)
			}
			back, err := xmlfmt.ReadTokens(&buf)
			if err != nil {
				t.Fatalf("ReadTokens: %v", err)
			}
			var got string
			for _, tok := range back {
				if tok.Kind == token.StringConstant {
					got = tok.Text
				}
			}
			if got != tt.text {
				t.Fatalf("string constant read back as %q, want %q", got, tt.text)
			}
		})
	}
}

func TestReadTokensRejectsGarbage(t *testing.T) {
	for _, doc := range []string{
		"",
		"<tree></tree>",
		"<tokens>\n<keyword>class</keyword>\n",
		"<tokens>\n<bogus>x</bogus>\n</tokens>\n",
		"<tokens>\n<integerConstant>40000</integerConstant>\n</tokens>\n",
		"<tokens>\n<symbol><</symbol>\n</tokens>\n",
		"<tokens>\n<keyword>class</identifier>\n</tokens>\n",
		"<tokens>\n</tokens>\n<tokens>\n",
	} {
		if _, err := xmlfmt.ReadTokens(strings.NewReader(doc)); err == nil {
			t.Errorf("ReadTokens(%q) should fail", doc)
		}
	}
}

func TestEscape(t *testing.T) {
	if got := xmlfmt.Escape(`a<b>&"c"`); got != `a&lt;b&gt;&amp;"c"` {
		t.Fatalf("Escape = %q", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTreeWriterStickyError(t *testing.T) {
	tw := xmlfmt.NewTreeWriter(failingWriter{})
	tw.Open(cst.Class)
	tw.Terminal(token.Token{Kind: token.Keyword, Text: "class"})
	tw.Close(cst.Class)
	if err := tw.Err(); err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("Err = %v", err)
	}
	if err := tw.Err(); err == nil {
		t.Fatal("error must be sticky")
	}
}

func TestTreeWriterUnbalancedClose(t *testing.T) {
	var buf bytes.Buffer
	tw := xmlfmt.NewTreeWriter(&buf)
	tw.Close(cst.Class)
	if tw.Err() == nil {
		t.Fatal("expected error")
	}
}
