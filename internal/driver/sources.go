package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtension is the source file suffix used when none is configured.
const DefaultExtension = ".jack"

// ListSources returns the files in dir (not its subdirectories) ending in
// ext, sorted by name.
func ListSources(dir, ext string) ([]string, error) {
	if ext == "" {
		ext = DefaultExtension
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) || e.Name() == ext {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// OutputPaths maps Name.<ext> to NameT.xml and Name.xml, placed in outDir
// when it is set and next to the source otherwise.
func OutputPaths(src, outDir string) (tokens, tree string) {
	dir := filepath.Dir(src)
	if outDir != "" {
		dir = outDir
	}
	base := filepath.Base(src)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+"T.xml"), filepath.Join(dir, stem+".xml")
}

// writeAtomic replaces path with data through a temp file and rename, so a
// reader never sees a half-written output.
func writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()
	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(f.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
