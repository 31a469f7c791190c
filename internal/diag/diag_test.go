package diag

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"jackfront/internal/source"
)

func TestCodeIDAndPhase(t *testing.T) {
	tests := []struct {
		code  Code
		id    string
		phase Phase
	}{
		{LexUnterminatedString, "LEX1002", PhaseLex},
		{LexIntegerOutOfRange, "LEX1004", PhaseLex},
		{SynExpectExpression, "SYN2006", PhaseSyntax},
		{IOLoadFileError, "IO4001", PhaseIO},
		{UnknownCode, "E0000", PhaseUnknown},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("%d.ID() = %q, want %q", tt.code, got, tt.id)
		}
		if got := tt.code.Phase(); got != tt.phase {
			t.Errorf("%d.Phase() = %v, want %v", tt.code, got, tt.phase)
		}
	}
	if got := LexUnknownChar.String(); got != "[LEX1001]: Unknown character" {
		t.Errorf("String() = %q", got)
	}
	if got := Code(1999).Title(); got != "Unknown error" {
		t.Errorf("unregistered code title = %q", got)
	}
}

func TestBagLimitAndErrors(t *testing.T) {
	bag := NewBag(2)
	for i := 0; i < 3; i++ {
		d := NewError(SynUnexpectedToken, source.Span{Start: uint32(i)}, "x")
		added := bag.Add(&d)
		if want := i < 2; added != want {
			t.Errorf("Add #%d = %v, want %v", i, added, want)
		}
	}
	if bag.Len() != 2 || !bag.HasErrors() {
		t.Fatalf("unexpected bag state: len=%d errors=%v", bag.Len(), bag.HasErrors())
	}

	unlimited := NewBag(0)
	for i := 0; i < 50; i++ {
		d := New(SevWarning, LexInfo, source.Span{}, "w")
		unlimited.Add(&d)
	}
	if unlimited.Len() != 50 || unlimited.HasErrors() || !unlimited.HasWarnings() {
		t.Fatalf("unlimited bag: len=%d", unlimited.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(0)
	mk := func(code Code, start uint32) *Diagnostic {
		d := NewError(code, source.Span{Start: start, End: start + 1}, "m")
		return &d
	}
	bag.Add(mk(SynExpectSymbol, 9))
	bag.Add(mk(LexUnknownChar, 3))
	bag.Add(mk(LexUnknownChar, 3))
	bag.Sort()
	bag.Dedup()

	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items after dedup, got %d", len(items))
	}
	if items[0].Code != LexUnknownChar || items[1].Code != SynExpectSymbol {
		t.Errorf("unexpected order: %v, %v", items[0].Code, items[1].Code)
	}
}

func TestErrorUnwrapping(t *testing.T) {
	base := Fail(NewError(LexUnterminatedString, source.Span{}, "unterminated string constant"))
	wrapped := fmt.Errorf("Main.jack: %w", base)

	if !IsLexical(wrapped) || IsSyntax(wrapped) {
		t.Fatal("wrapped lexical error misclassified")
	}
	de, ok := AsError(wrapped)
	if !ok || de.Code != LexUnterminatedString {
		t.Fatalf("AsError = %v, %v", de, ok)
	}
	if got := base.Error(); got != "lexical error: unterminated string constant" {
		t.Errorf("Error() = %q", got)
	}
	if _, ok := AsError(errors.New("plain")); ok {
		t.Error("plain error must not unwrap to *Error")
	}
}

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("Main.jack", []byte("class Main {\n  let x = ;\n}\n"))
	d := NewError(SynExpectExpression, source.Span{File: id, Start: 23, End: 24}, "expected expression, found symbol ';'").
		WithNote(source.Span{File: id, Start: 15, End: 18}, "in this let statement")

	out := FormatShortDiagnostics([]*Diagnostic{&d}, fs, true)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	if lines[0] != "Main.jack:2:3: NOTE SYN2006: in this let statement" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "Main.jack:2:11: ERROR SYN2006: expected expression, found symbol ';'" {
		t.Errorf("line 1 = %q", lines[1])
	}
}
