package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"jackfront/internal/diag"
	"jackfront/internal/source"
)

type palette struct {
	path, err, warn, info, caret, note, gutter *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path:   color.New(color.Bold),
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgBlue),
		gutter: color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.path, p.err, p.warn, p.info, p.caret, p.note, p.gutter} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty renders the bag in human-readable form, in bag order (call
// bag.Sort first for stable output). Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline and any notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts, pal)
	}
}

func location(fs *source.FileSet, sp source.Span, mode PathMode) string {
	f := fs.Get(sp.File)
	if f == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", f.FormatPath(formatPath(mode), fs.BaseDir()), start.Line, start.Col)
}

func writeDiagnostic(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		pal.path.Sprint(location(fs, d.Primary, opts.PathMode)),
		pal.severity(d.Severity).Sprint(d.Severity.String()),
		pal.severity(d.Severity).Sprint(d.Code.ID()),
		d.Message,
	)
	if opts.Snippet {
		writeSnippet(w, fs, d.Primary, opts, pal)
	}
	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		fmt.Fprintf(w, "  %s %s: %s\n", pal.note.Sprint("NOTE"), location(fs, n.Span, opts.PathMode), n.Msg)
		if opts.Snippet {
			writeSnippet(w, fs, n.Span, opts, pal)
		}
	}
}

func writeSnippet(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts, pal palette) {
	sn, ok := buildSnippet(fs, sp, opts.TabWidth)
	if !ok {
		return
	}
	num := strconv.FormatUint(uint64(sn.line), 10)
	blank := strings.Repeat(" ", len(num))
	fmt.Fprintf(w, " %s %s %s\n", pal.gutter.Sprint(num), pal.gutter.Sprint("|"), sn.text)
	underline := "^" + strings.Repeat("~", sn.carets-1)
	if sn.clipped {
		underline += "..."
	}
	fmt.Fprintf(w, " %s %s %s%s\n", blank, pal.gutter.Sprint("|"), sn.pad, pal.caret.Sprint(underline))
}
