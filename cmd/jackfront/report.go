package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jackfront/internal/diag"
	"jackfront/internal/diagfmt"
	"jackfront/internal/driver"
	"jackfront/internal/version"
)

// reportDiagnostics prints every file's diagnostics to stderr in the format
// chosen by --diag-format.
func reportDiagnostics(cmd *cobra.Command, s *settings, res *driver.Result) error {
	bag := res.Bag()
	if bag.Len() == 0 && (s.diagFmt == "pretty" || s.diagFmt == "short") {
		return nil
	}
	pathMode := diagfmt.PathModeAuto
	if s.fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	out := os.Stderr

	switch s.diagFmt {
	case "pretty":
		color, err := useColor(cmd, out)
		if err != nil {
			return err
		}
		diagfmt.Pretty(out, bag, res.FileSet, diagfmt.PrettyOpts{
			Color:     color,
			PathMode:  pathMode,
			ShowNotes: true,
			Snippet:   true,
		})
	case "short":
		if text := diag.FormatShortDiagnostics(bag.Items(), res.FileSet, true); text != "" {
			fmt.Fprintln(out, text)
		}
	case "json":
		opts := diagfmt.JSONOpts{IncludePositions: true, PathMode: pathMode, IncludeNotes: true}
		if !res.IsDir {
			return diagfmt.JSON(out, bag, res.FileSet, opts)
		}
		perFile := make(map[string]diagfmt.DiagnosticsOutput, len(res.Files))
		for i := range res.Files {
			fr := &res.Files[i]
			perFile[fr.Path] = diagfmt.BuildDiagnosticsOutput(fr.Bag, res.FileSet, opts)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(perFile); err != nil {
			return fmt.Errorf("failed to encode diagnostics output: %w", err)
		}
	case "sarif":
		meta := diagfmt.SarifRunMeta{
			ToolName:       "jackfront",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args[1:],
		}
		if err := diagfmt.Sarif(out, bag, res.FileSet, meta); err != nil {
			return fmt.Errorf("failed to write SARIF: %w", err)
		}
	}
	return nil
}
