package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jackfront/internal/diag"
	"jackfront/internal/diagfmt"
	"jackfront/internal/driver"
	"jackfront/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [path]",
	Short: "Write the token stream (NameT.xml) only",
	Long: `tokenize lexes each source and writes NameT.xml. With --format pretty
or json the tokens are printed to stdout with positions instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().Bool("stdout", false, "print the token stream instead of writing NameT.xml")
	tokenizeCmd.Flags().String("format", "xml", "output format (xml|pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "xml":
		return runAnalyze(cmd, args, modeTokenize)
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	s, err := loadSettings(cmd, args, driver.OutputTokens)
	if err != nil {
		return err
	}
	files, root, isDir, err := driver.Sources(s.input, s.extension())
	if err != nil {
		return err
	}
	res, err := listTokens(os.Stdout, files, root, isDir, format, s.maxDiags)
	if err != nil {
		return err
	}
	if err := reportDiagnostics(cmd, s, res); err != nil {
		return err
	}
	if res.Failed() > 0 {
		return errFailed
	}
	return nil
}

// listTokens prints each file's tokens with positions. A file that fails to
// load or lex is recorded in its result and the remaining files still run.
func listTokens(w io.Writer, files []string, root string, isDir bool, format string, maxDiags int) (*driver.Result, error) {
	res := &driver.Result{
		FileSet: source.NewFileSetWithBase(root),
		Root:    root,
		IsDir:   isDir,
		Files:   make([]driver.FileResult, len(files)),
	}
	for i, path := range files {
		fr := &res.Files[i]
		fr.Path, fr.Bag = path, diag.NewBag(maxDiags)
		if fr.File, fr.Err = driver.LoadFile(res.FileSet, path, fr.Bag); fr.Err != nil {
			continue
		}
		toks, err := driver.Tokenize(fr.File, diag.BagReporter{Bag: fr.Bag})
		fr.Err = err
		if format == "json" {
			err = diagfmt.FormatTokensJSON(w, toks, res.FileSet)
		} else {
			err = diagfmt.FormatTokensPretty(w, toks, res.FileSet)
		}
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
