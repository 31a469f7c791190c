package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jackfront/internal/version"
)

// errFailed signals that diagnostics were already printed and only the exit
// status is left to set.
var errFailed = errors.New("analysis failed")

var rootCmd = &cobra.Command{
	Use:   "jackfront [path]",
	Short: "Jack tokenizer and parser",
	Long: `jackfront tokenizes and parses Jack source files and writes the token
stream (NameT.xml) and the parse tree (Name.xml) for every file.

path may be a single file or a directory; directories are scanned
non-recursively for files with the configured extension (default .jack).
Without a path, [sources].dir from jackfront.toml or the current directory
is used.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd, args, modeAnalyze)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupTracing(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeTracing(cmd)
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics to show per file")
	flags.Int("jobs", 0, "max parallel files (0=auto)")
	flags.String("ui", "auto", "progress UI (auto|on|off)")
	flags.String("config", "", "path to jackfront.toml (default: search upward from the input)")
	flags.Bool("cache", false, "reuse outputs of unchanged files")
	flags.Bool("cache-clear", false, "drop every cached output before running")
	flags.String("diag-format", "pretty", "diagnostic format (pretty|short|json|sarif)")
	flags.Bool("fullpath", false, "emit absolute file paths in diagnostics")
	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|phase|file|rule)")
	flags.String("trace-format", "text", "trace format (text|ndjson)")
	flags.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	flags.Int("trace-ring-size", 4096, "events kept by the ring tracer")
	flags.String("cpu-profile", "", "write a CPU profile to file")
	flags.String("mem-profile", "", "write a heap profile to file")
	flags.String("runtime-trace", "", "write a Go runtime trace to file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "jackfront: %v\n", err)
		}
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto", "":
		return isTerminal(f), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}
