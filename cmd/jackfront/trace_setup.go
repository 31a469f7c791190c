package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jackfront/internal/trace"
)

// setupTracing reads the trace flags and attaches a tracer to the command
// context. With level off and no output, the Nop tracer is used.
func setupTracing(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	output, err := flags.GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return fmt.Errorf("invalid trace level: %w", err)
	}
	// --trace alone implies file-level events
	if level == trace.LevelOff && output != "" {
		level = trace.LevelFile
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return nil
	}
	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return err
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: output,
		RingSize:   ringSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)
	cmd.Root().SetContext(ctx)
	return nil
}

// closeTracing flushes and closes the tracer. Safe to call more than once.
func closeTracing(cmd *cobra.Command) {
	tracer := trace.FromContext(cmd.Context())
	if tracer == nil || tracer == trace.Nop {
		return
	}
	if err := tracer.Flush(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
	}
	if err := tracer.Close(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
}

// dumpRing writes the ring buffer to stderr after a failed run.
func dumpRing(cmd *cobra.Command) {
	ring := trace.RingOf(trace.FromContext(cmd.Context()))
	if ring == nil {
		return
	}
	formatStr, _ := cmd.Root().PersistentFlags().GetString("trace-format")
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		format = trace.FormatText
	}
	fmt.Fprintln(os.Stderr, "-- trace ring --")
	if err := ring.Dump(os.Stderr, format); err != nil {
		fmt.Fprintf(os.Stderr, "trace: dump error: %v\n", err)
	}
}
