package diagfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"jackfront/internal/source"
)

// snippet is one source line plus the caret row that underlines a span on it.
type snippet struct {
	line    uint32
	text    string
	pad     string // whitespace up to the first caret
	carets  int
	clipped bool // the span continues past this line
}

// buildSnippet lays out the underline for sp. Columns are measured in display
// cells after NFC normalisation so wide and combining runes line up.
func buildSnippet(fs *source.FileSet, sp source.Span, tabWidth int) (snippet, bool) {
	f := fs.Get(sp.File)
	if f == nil {
		return snippet{}, false
	}
	start, end := fs.Resolve(sp)
	raw := f.GetLine(start.Line)
	if tabWidth <= 0 {
		tabWidth = 4
	}

	startCol := min(int(start.Col-1), len(raw))
	endCol := len(raw)
	clipped := true
	if end.Line == start.Line {
		endCol = min(int(end.Col-1), len(raw))
		clipped = false
	}
	endCol = max(endCol, startCol)

	prefix := raw[:startCol]
	marked := raw[startCol:endCol]

	var pad strings.Builder
	for _, r := range norm.NFC.String(prefix) {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	return snippet{
		line:    start.Line,
		text:    expandTabs(norm.NFC.String(raw), tabWidth),
		pad:     expandTabs(pad.String(), tabWidth),
		carets:  max(1, displayWidth(marked, tabWidth)),
		clipped: clipped,
	}, true
}

func displayWidth(s string, tabWidth int) int {
	return runewidth.StringWidth(expandTabs(norm.NFC.String(s), tabWidth))
}

func expandTabs(s string, tabWidth int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
