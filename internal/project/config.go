// Package project finds and decodes jackfront.toml.
package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	ErrBadExtension = errors.New("extension must start with '.'")
	ErrNoOutputs    = errors.New("[output] disables both tokens and tree")
)

// Config is the decoded project configuration. Paths are resolved against
// Root by Load.
type Config struct {
	Path string `toml:"-"` // location of jackfront.toml, "" for defaults
	Root string `toml:"-"` // directory holding jackfront.toml

	Sources struct {
		Dir       string `toml:"dir"`       // default input when no path is given
		Extension string `toml:"extension"` // default ".jack"
	} `toml:"sources"`

	Output struct {
		Dir    string `toml:"dir"` // "" writes next to each source
		Tokens bool   `toml:"tokens"`
		Tree   bool   `toml:"tree"`
	} `toml:"output"`

	Run struct {
		Jobs     int    `toml:"jobs"` // 0 means GOMAXPROCS
		Cache    bool   `toml:"cache"`
		CacheDir string `toml:"cache_dir"`
	} `toml:"run"`
}

// Default returns the configuration used when no jackfront.toml exists.
func Default() Config {
	var cfg Config
	cfg.Sources.Extension = ".jack"
	cfg.Output.Tokens = true
	cfg.Output.Tree = true
	cfg.Run.CacheDir = ".jackfront-cache"
	return cfg
}

// Load decodes the file at path over Default and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = abs
	cfg.Root = filepath.Dir(abs)

	if meta.IsDefined("sources", "extension") {
		cfg.Sources.Extension = strings.TrimSpace(cfg.Sources.Extension)
		if !strings.HasPrefix(cfg.Sources.Extension, ".") || len(cfg.Sources.Extension) < 2 {
			return Config{}, fmt.Errorf("%s: [sources].extension %q: %w", path, cfg.Sources.Extension, ErrBadExtension)
		}
	}
	if meta.IsDefined("output") && !cfg.Output.Tokens && !cfg.Output.Tree {
		return Config{}, fmt.Errorf("%s: %w", path, ErrNoOutputs)
	}
	if cfg.Run.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [run].jobs must be >= 0, got %d", path, cfg.Run.Jobs)
	}
	for _, p := range []struct {
		key string
		val *string
	}{
		{"[sources].dir", &cfg.Sources.Dir},
		{"[output].dir", &cfg.Output.Dir},
		{"[run].cache_dir", &cfg.Run.CacheDir},
	} {
		resolved, err := resolveWithin(cfg.Root, *p.val)
		if err != nil {
			return Config{}, fmt.Errorf("%s: invalid %s %q: %w", path, p.key, *p.val, err)
		}
		*p.val = resolved
	}
	return cfg, nil
}

// Discover looks for jackfront.toml from startDir upward. Without one it
// returns Default with ok=false.
func Discover(startDir string) (cfg Config, ok bool, err error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, false, err
	}
	if !ok {
		return Default(), false, nil
	}
	cfg, err = Load(path)
	if err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}

// resolveWithin joins a relative path to root and rejects escapes.
func resolveWithin(root, rel string) (string, error) {
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return "", nil
	}
	if filepath.IsAbs(rel) {
		return "", errors.New("must be relative")
	}
	joined := filepath.Join(root, filepath.FromSlash(rel))
	if !pathWithin(root, joined) {
		return "", errors.New("escapes the project root")
	}
	return joined, nil
}
