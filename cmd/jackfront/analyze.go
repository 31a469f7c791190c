package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jackfront/internal/driver"
	"jackfront/internal/observ"
	"jackfront/internal/prof"
)

type runMode uint8

const (
	modeAnalyze runMode = iota
	modeTokenize
	modeParse
)

func (m runMode) outputs() driver.Output {
	switch m {
	case modeTokenize:
		return driver.OutputTokens
	case modeParse:
		return driver.OutputTree
	default:
		return driver.OutputBoth
	}
}

func (m runMode) title() string {
	switch m {
	case modeTokenize:
		return "tokenizing"
	case modeParse:
		return "parsing"
	default:
		return "analyzing"
	}
}

var parseCmd = &cobra.Command{
	Use:   "parse [path]",
	Short: "Write the parse tree (Name.xml) only",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd, args, modeParse)
	},
}

func init() {
	parseCmd.Flags().Bool("stdout", false, "print the parse tree instead of writing Name.xml")
}

// runAnalyze is shared by the root command, tokenize and parse. Every file
// is attempted; any failure turns into exit status 1 once diagnostics are
// printed.
func runAnalyze(cmd *cobra.Command, args []string, mode runMode) error {
	s, err := loadSettings(cmd, args, mode.outputs())
	if err != nil {
		return err
	}
	toStdout := false
	if f := cmd.Flags().Lookup("stdout"); f != nil {
		toStdout = f.Value.String() == "true"
	}

	profiling, err := startProfiling(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if err := profiling.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "profile: %v\n", err)
		}
	}()

	cache, err := s.openCache()
	if err != nil {
		return err
	}
	timer := observ.NewTimer()
	opts := driver.Options{
		Outputs:        s.outputs,
		OutputDir:      s.cfg.Output.Dir,
		Extension:      s.extension(),
		Jobs:           s.jobs,
		MaxDiagnostics: s.maxDiags,
		Write:          !toStdout,
		Cache:          cache,
		Timer:          timer,
	}

	files, root, isDir, err := driver.Sources(s.input, opts.Extension)
	if err != nil {
		return err
	}
	if isDir && len(files) == 0 && !s.quiet {
		fmt.Fprintf(os.Stderr, "no %s files in %s\n", opts.Extension, s.input)
	}

	var res *driver.Result
	phase := timer.Begin(mode.title())
	if !toStdout && !s.quiet && len(files) > 1 && shouldUseTUI(s.uiMode) {
		res, err = runWithUI(cmd.Context(), mode.title(), files, root, isDir, opts)
	} else {
		res, err = driver.AnalyzeFiles(cmd.Context(), files, root, isDir, opts)
	}
	timer.End(phase, fmt.Sprintf("%d files", len(files)))
	if err != nil && res == nil {
		return err
	}

	if toStdout {
		if werr := printArtifacts(os.Stdout, res, mode); werr != nil {
			return werr
		}
	}
	if rerr := reportDiagnostics(cmd, s, res); rerr != nil {
		return rerr
	}
	if !s.quiet {
		printSummary(os.Stderr, res, mode)
	}
	if s.timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	if err != nil {
		return err
	}
	if res.Failed() > 0 {
		dumpRing(cmd)
		closeTracing(cmd)
		return errFailed
	}
	return nil
}

func startProfiling(cmd *cobra.Command) (*prof.Session, error) {
	flags := cmd.Root().PersistentFlags()
	var cfg prof.Config
	var err error
	if cfg.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return nil, err
	}
	if cfg.Mem, err = flags.GetString("mem-profile"); err != nil {
		return nil, err
	}
	if cfg.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return nil, err
	}
	if !cfg.Enabled() {
		return nil, nil
	}
	return prof.Start(cfg)
}

// printArtifacts writes rendered outputs of successful files in input order.
func printArtifacts(w io.Writer, res *driver.Result, mode runMode) error {
	for i := range res.Files {
		fr := &res.Files[i]
		if fr.Failed() {
			continue
		}
		data := fr.Tree
		if mode == modeTokenize {
			data = fr.Tokens
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(w io.Writer, res *driver.Result, mode runMode) {
	var written, cached int
	for i := range res.Files {
		written += len(res.Files[i].Written)
		if res.Files[i].Cached {
			cached++
		}
	}
	failed := res.Failed()
	fmt.Fprintf(w, "%s: %d files, %d failed", mode.title(), len(res.Files), failed)
	if cached > 0 {
		fmt.Fprintf(w, ", %d cached", cached)
	}
	if written > 0 {
		fmt.Fprintf(w, ", %d outputs written", written)
	}
	if failed == 0 && res.Bag().HasWarnings() {
		fmt.Fprint(w, ", with warnings")
	}
	fmt.Fprintln(w)
}
