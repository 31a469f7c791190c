package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"jackfront/internal/diag"
	"jackfront/internal/lexer"
	"jackfront/internal/source"
	"jackfront/internal/token"
)

// makeTestLexer creates a lexer over input with diagnostics collected in a bag.
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("Test.jack", []byte(input)))
	bag := diag.NewBag(16)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx, bag
}

type kt struct {
	kind token.Kind
	text string
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func expectTokens(t *testing.T, input string, want []kt) {
	t.Helper()
	lx, bag := makeTestLexer(input)
	tokens, err := lexer.Collect(lx)
	if err != nil {
		t.Fatalf("unexpected error: %v (diagnostics: %d)", err, bag.Len())
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %s", len(want), len(tokens), input, tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != want[i].kind || tok.Text != want[i].text {
			t.Errorf("token %d: got %v(%q), want %v(%q)", i, tok.Kind, tok.Text, want[i].kind, want[i].text)
		}
	}
}

func expectLexError(t *testing.T, input string, code diag.Code) *diag.Error {
	t.Helper()
	lx, bag := makeTestLexer(input)
	_, err := lexer.Collect(lx)
	if err == nil {
		t.Fatalf("expected lexical error for %q", input)
	}
	de, ok := diag.AsError(err)
	if !ok {
		t.Fatalf("error is not a *diag.Error: %v", err)
	}
	if de.Code != code {
		t.Fatalf("expected %s, got %s (%s)", code.ID(), de.Code.ID(), de.Message)
	}
	if !diag.IsLexical(err) {
		t.Fatalf("expected lexical error kind, got %v", de.Kind())
	}
	if bag.Len() != 1 || bag.Items()[0].Code != code {
		t.Fatalf("expected exactly one reported diagnostic %s, got %d", code.ID(), bag.Len())
	}
	return de
}

func TestIdentifiersAndKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"foo", token.Identifier},
		{"_bar", token.Identifier},
		{"x123", token.Identifier},
		{"camelCase", token.Identifier},
		{"Class", token.Identifier},
		{"classy", token.Identifier},
		{"class", token.Keyword},
		{"constructor", token.Keyword},
		{"boolean", token.Keyword},
		{"this", token.Keyword},
		{"return", token.Keyword},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, []kt{{tt.kind, tt.input}})
		})
	}
}

func TestSymbolsAreSingleCharacters(t *testing.T) {
	input := "{}()[].,;+-*/&|<>=~"
	want := make([]kt, 0, len(input))
	for _, ch := range input {
		want = append(want, kt{token.Symbol, string(ch)})
	}
	expectTokens(t, input, want)

	// no multi-character operators
	expectTokens(t, "<=", []kt{{token.Symbol, "<"}, {token.Symbol, "="}})
	expectTokens(t, "&&", []kt{{token.Symbol, "&"}, {token.Symbol, "&"}})
}

func TestIntegerConstants(t *testing.T) {
	tests := []struct {
		input string
		value int16
	}{
		{"0", 0},
		{"7", 7},
		{"007", 7},
		{"32767", 32767},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, _ := makeTestLexer(tt.input)
			tok, err := lx.Next()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tok.Kind != token.IntegerConstant || tok.Text != tt.input || tok.Value != tt.value {
				t.Fatalf("got %v(%q)=%d, want IntegerConstant(%q)=%d", tok.Kind, tok.Text, tok.Value, tt.input, tt.value)
			}
		})
	}
}

func TestIntegerOutOfRange(t *testing.T) {
	for _, input := range []string{"32768", "65536", "99999999999999999999999"} {
		t.Run(input, func(t *testing.T) {
			de := expectLexError(t, "let x = "+input+";", diag.LexIntegerOutOfRange)
			if de.Primary.Start != 8 {
				t.Errorf("error should point at the literal, got span %v", de.Primary)
			}
		})
	}
}

func TestDigitsThenLettersSplit(t *testing.T) {
	expectTokens(t, "12abc", []kt{{token.IntegerConstant, "12"}, {token.Identifier, "abc"}})
}

func TestStringConstants(t *testing.T) {
	expectTokens(t, `"hello world"`, []kt{{token.StringConstant, "hello world"}})
	expectTokens(t, `""`, []kt{{token.StringConstant, ""}})
	// no escape processing; comment markers inside strings are content
	expectTokens(t, `"a\n // b /* c"`, []kt{{token.StringConstant, `a\n // b /* c`}})
	expectTokens(t, `"x < y & z"`, []kt{{token.StringConstant, "x < y & z"}})
}

func TestUnterminatedString(t *testing.T) {
	t.Run("newline", func(t *testing.T) {
		de := expectLexError(t, "\"5\n\"", diag.LexUnterminatedString)
		if de.Message != "newline in string constant" {
			t.Errorf("message = %q", de.Message)
		}
	})
	t.Run("eof", func(t *testing.T) {
		de := expectLexError(t, `let s = "abc`, diag.LexUnterminatedString)
		if de.Message != "unterminated string constant" {
			t.Errorf("message = %q", de.Message)
		}
	})
}

func TestCommentsAndWhitespace(t *testing.T) {
	input := "// line comment\n" +
		"/* block\n comment */ class\t/** doc\n * comment */Main\r\n{ // trailing\n}"
	expectTokens(t, input, []kt{
		{token.Keyword, "class"},
		{token.Identifier, "Main"},
		{token.Symbol, "{"},
		{token.Symbol, "}"},
	})
}

func TestCommentsDoNotNest(t *testing.T) {
	expectTokens(t, "/* a /* b */ x */", []kt{
		{token.Identifier, "x"},
		{token.Symbol, "*"},
		{token.Symbol, "/"},
	})
}

func TestSlashIsDivisionWhenNotComment(t *testing.T) {
	expectTokens(t, "a/b", []kt{{token.Identifier, "a"}, {token.Symbol, "/"}, {token.Identifier, "b"}})
	expectTokens(t, "a /", []kt{{token.Identifier, "a"}, {token.Symbol, "/"}})
}

func TestUnterminatedBlockComment(t *testing.T) {
	expectLexError(t, "class /* never closed", diag.LexUnterminatedBlockComment)
	expectLexError(t, "/*/", diag.LexUnterminatedBlockComment)
}

func TestUnknownCharacter(t *testing.T) {
	for _, input := range []string{"#", "a ? b", "x = 'c';", "ü", "!"} {
		t.Run(input, func(t *testing.T) {
			expectLexError(t, input, diag.LexUnknownChar)
		})
	}
}

func TestErrorIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("a # b")
	if tok, err := lx.Next(); err != nil || tok.Text != "a" {
		t.Fatalf("first token: %v, %v", tok, err)
	}
	_, err1 := lx.Next()
	_, err2 := lx.Next()
	if err1 == nil || err1 != err2 {
		t.Fatalf("expected the same sticky error, got %v and %v", err1, err2)
	}
}

func TestResetRestartsFromScratch(t *testing.T) {
	lx, _ := makeTestLexer("class Foo { }")
	first, err := lexer.Collect(lx)
	if err != nil {
		t.Fatal(err)
	}
	lx.Reset()
	second, err := lexer.Collect(lx)
	if err != nil {
		t.Fatal(err)
	}
	if tokensToString(first) != tokensToString(second) {
		t.Fatalf("restart produced different tokens:\n%s\n%s", tokensToString(first), tokensToString(second))
	}
}

func TestResetClearsStickyError(t *testing.T) {
	lx, bag := makeTestLexer("class # { }")
	if _, err := lexer.Collect(lx); err == nil {
		t.Fatal("expected a lexical error")
	}
	lx.Reset()
	tok, err := lx.Next()
	if err != nil || tok.Text != "class" {
		t.Fatalf("after Reset: %v, %v", tok, err)
	}
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1", bag.Len())
	}
}

func TestEOFRepeats(t *testing.T) {
	lx, _ := makeTestLexer("  \n\t")
	for i := 0; i < 3; i++ {
		tok, err := lx.Next()
		if err != nil || tok.Kind != token.EOF {
			t.Fatalf("call %d: got %v, %v", i, tok.Kind, err)
		}
	}
}

func TestSpans(t *testing.T) {
	lx, _ := makeTestLexer(`let s = "ab";`)
	tokens, err := lexer.Collect(lx)
	if err != nil {
		t.Fatal(err)
	}
	str := tokens[3]
	if str.Kind != token.StringConstant || str.Span.Start != 8 || str.Span.End != 12 {
		t.Fatalf("string span = %v, want 8-12 including quotes", str.Span)
	}
	if semi := tokens[4]; semi.Span.Start != 12 || semi.Span.Len() != 1 {
		t.Fatalf("semicolon span = %v", semi.Span)
	}
}
