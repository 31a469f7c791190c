package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"jackfront/internal/driver"
	"jackfront/internal/project"
)

// settings is the project configuration with command-line flags applied.
type settings struct {
	cfg      project.Config
	input    string
	outputs  driver.Output
	jobs     int
	maxDiags int
	cache    bool
	clear    bool
	quiet    bool
	timings  bool
	fullPath bool
	uiMode   uiMode
	diagFmt  string
}

// loadSettings finds jackfront.toml (explicit --config, else upward from
// the input or the working directory) and layers the flags over it. Flags
// win only when set explicitly.
func loadSettings(cmd *cobra.Command, args []string, outputs driver.Output) (*settings, error) {
	flags := cmd.Root().PersistentFlags()
	s := &settings{outputs: outputs}

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		s.input = args[0]
	}
	switch {
	case configPath != "":
		if s.cfg, err = project.Load(configPath); err != nil {
			return nil, err
		}
	default:
		start := s.input
		if start == "" {
			if start, err = os.Getwd(); err != nil {
				return nil, err
			}
		} else if info, statErr := os.Stat(start); statErr == nil && !info.IsDir() {
			start = filepath.Dir(start)
		}
		if s.cfg, _, err = project.Discover(start); err != nil {
			return nil, err
		}
	}

	if s.input == "" {
		s.input = s.cfg.Sources.Dir
	}
	if s.input == "" {
		if s.input, err = os.Getwd(); err != nil {
			return nil, err
		}
	}
	if s.outputs == driver.OutputBoth {
		s.outputs = configOutputs(s.cfg)
	}

	s.jobs = s.cfg.Run.Jobs
	if flags.Changed("jobs") {
		if s.jobs, err = flags.GetInt("jobs"); err != nil {
			return nil, err
		}
		if s.jobs < 0 {
			return nil, fmt.Errorf("--jobs must be >= 0, got %d", s.jobs)
		}
	}
	s.cache = s.cfg.Run.Cache
	if flags.Changed("cache") {
		if s.cache, err = flags.GetBool("cache"); err != nil {
			return nil, err
		}
	}
	if s.clear, err = flags.GetBool("cache-clear"); err != nil {
		return nil, err
	}
	if s.maxDiags, err = flags.GetInt("max-diagnostics"); err != nil {
		return nil, err
	}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, err
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, err
	}
	if s.fullPath, err = flags.GetBool("fullpath"); err != nil {
		return nil, err
	}
	uiStr, err := flags.GetString("ui")
	if err != nil {
		return nil, err
	}
	if s.uiMode, err = readUIMode(uiStr); err != nil {
		return nil, err
	}
	if s.diagFmt, err = flags.GetString("diag-format"); err != nil {
		return nil, err
	}
	switch s.diagFmt {
	case "pretty", "short", "json", "sarif":
	default:
		return nil, fmt.Errorf("unknown --diag-format %q (expected pretty|short|json|sarif)", s.diagFmt)
	}
	return s, nil
}

func configOutputs(cfg project.Config) driver.Output {
	var out driver.Output
	if cfg.Output.Tokens {
		out |= driver.OutputTokens
	}
	if cfg.Output.Tree {
		out |= driver.OutputTree
	}
	if out == 0 {
		return driver.OutputBoth
	}
	return out
}

// openCache returns nil when caching is off. With --cache-clear the cache
// directory is emptied first, whether or not this run uses it.
func (s *settings) openCache() (*driver.OutputCache, error) {
	if !s.cache && !s.clear {
		return nil, nil
	}
	c, err := driver.OpenOutputCache(s.cfg.Run.CacheDir)
	if err != nil {
		return nil, err
	}
	if s.clear {
		if err := c.DropAll(); err != nil {
			return nil, fmt.Errorf("clear cache: %w", err)
		}
	}
	if !s.cache {
		return nil, nil
	}
	return c, nil
}

func (s *settings) extension() string {
	if s.cfg.Sources.Extension != "" {
		return s.cfg.Sources.Extension
	}
	return driver.DefaultExtension
}
