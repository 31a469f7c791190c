package fuzztests

import (
	"os"
	"path/filepath"
	"testing"
)

const maxFuzzInput = 1 << 16

var jackSeeds = []string{
	"",
	"class Main { }",
	"class Main {\n  function void main() {\n    return;\n  }\n}\n",
	`class Square {
  field int x, y;
  static boolean visible;
  constructor Square new(int ax, int ay) {
    let x = ax;
    let y = ay;
    return this;
  }
  method void move(int dx) {
    var Array a;
    let a[x + 1] = -dx;
    if (~(x < 0) & visible) { let x = x + dx; } else { let x = 0; }
    while (x > 10) { let x = x - 1; }
    do Screen.drawRectangle(x, y, x + 2, y + 2);
    return;
  }
}
`,
	"class S { function String f() { return \"a < b & c > d\"; } }",
	"/** doc */ class C { // line\n /* block */ field char c; }",
	"class E { function int f() { return 32767; } }",
	"class E { function int f() { return 32768; } }",
	"class E { function void f() { let x = \"unterminated; } }",
	"class E { /* never closed",
	"class E { function void f() { let = 1; } }",
	"class E { } trailing",
	"class E { method void f() { do g(; } }",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range jackSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every .jack file under testdata/ when present.
func addTestdataSeeds(f *testing.F) {
	matches, err := filepath.Glob(filepath.Join("testdata", "*.jack"))
	if err != nil {
		return
	}
	for _, path := range matches {
		src, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f.Add(clampSeed(src))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxFuzzInput {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxFuzzInput]...)
}

// truncateForLog shortens input for failure messages.
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], "..."...)
}
