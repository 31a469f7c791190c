package diag

import (
	"fmt"
	"sort"
	"strings"

	"jackfront/internal/source"
)

type shortDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatShortDiagnostics renders diagnostics one per line as
// "path:line:col: SEVERITY CODE: message", sorted by position.
// The result is stable and is what golden files and --diag-format=short use.
func FormatShortDiagnostics(diags []*Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	rendered := make([]shortDiagnostic, 0, len(diags))
	for _, d := range diags {
		if d == nil {
			continue
		}
		rendered = append(rendered, shortFor(fs, d.Primary, d.Severity.String(), d.Code.ID(), d.Message))
		if includeNotes {
			for _, n := range d.Notes {
				rendered = append(rendered, shortFor(fs, n.Span, "NOTE", d.Code.ID(), n.Msg))
			}
		}
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		return di.Column < dj.Column
	})

	var sb strings.Builder
	for _, r := range rendered {
		fmt.Fprintf(&sb, "%s:%d:%d: %s %s: %s\n", r.Path, r.Line, r.Column, r.Severity, r.Code, r.Message)
	}
	return sb.String()
}

func shortFor(fs *source.FileSet, sp source.Span, sev, code, msg string) shortDiagnostic {
	path := "<unknown>"
	var line, col uint32
	if int(sp.File) < fs.Len() {
		path = fs.Get(sp.File).Path
		start, _ := fs.Resolve(sp)
		line, col = start.Line, start.Col
	}
	return shortDiagnostic{
		Severity: sev,
		Code:     code,
		Path:     path,
		Line:     line,
		Column:   col,
		Message:  msg,
	}
}
