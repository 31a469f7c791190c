// Package driver runs the analyzer over files and directories: loading,
// tokenizing, parsing, caching and writing NameT.xml / Name.xml.
package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"jackfront/internal/diag"
	"jackfront/internal/lexer"
	"jackfront/internal/observ"
	"jackfront/internal/source"
	"jackfront/internal/trace"
)

// Output selects which artifacts to produce.
type Output uint8

const (
	OutputTokens Output = 1 << iota
	OutputTree
	OutputBoth = OutputTokens | OutputTree
)

func (o Output) String() string {
	switch o {
	case OutputTokens:
		return "tokens"
	case OutputTree:
		return "tree"
	case OutputBoth:
		return "tokens+tree"
	default:
		return "none"
	}
}

type Options struct {
	Outputs        Output // zero means OutputBoth
	OutputDir      string // "" writes next to each source
	Extension      string // directory filter, default ".jack"
	Jobs           int    // parallel files, 0 means GOMAXPROCS
	MaxDiagnostics int    // per-file bag limit, 0 means unlimited
	Write          bool   // write output files; otherwise results only hold bytes
	Cache          *OutputCache
	Timer          *observ.Timer
	Progress       ProgressSink
}

// FileResult is the outcome for one source file.
type FileResult struct {
	Path    string
	File    *source.File
	Bag     *diag.Bag
	Tokens  []byte   // format 1, when requested and successful
	Tree    []byte   // format 2, when requested and successful
	Written []string // output files written
	Cached  bool
	Err     error // first failure; lexical and parse errors are *diag.Error
}

func (r *FileResult) Failed() bool { return r.Err != nil }

// Result collects every file of one run in input order.
type Result struct {
	FileSet *source.FileSet
	Root    string
	IsDir   bool
	Files   []FileResult
}

// Failed counts files that did not complete.
func (r *Result) Failed() int {
	n := 0
	for i := range r.Files {
		if r.Files[i].Failed() {
			n++
		}
	}
	return n
}

// Bag merges all per-file diagnostics, sorted by file and position, keeping
// one diagnostic per code and span.
func (r *Result) Bag() *diag.Bag {
	merged := diag.NewBag(0)
	for i := range r.Files {
		merged.Merge(r.Files[i].Bag)
	}
	merged.Sort()
	merged.Dedup()
	return merged
}

// Paths lists the input files in processing order.
func (r *Result) Paths() []string {
	out := make([]string, len(r.Files))
	for i := range r.Files {
		out[i] = r.Files[i].Path
	}
	return out
}

// Sources resolves path into the list of files to analyze: the file itself,
// or the sorted matching files directly inside a directory.
func Sources(path, ext string) (files []string, root string, isDir bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", false, err
	}
	if !info.IsDir() {
		return []string{path}, filepath.Dir(path), false, nil
	}
	files, err = ListSources(path, ext)
	if err != nil {
		return nil, "", true, err
	}
	return files, path, true, nil
}

// Analyze processes a file or a directory. Files run in parallel, each with
// its own lexer, parser and emitter; a failing file does not stop the
// others. The returned error is non-nil only when the run itself could not
// proceed (bad path, cancelled context).
func Analyze(ctx context.Context, path string, opts Options) (*Result, error) {
	sp, ctx := trace.Start(ctx, trace.ScopePhase, "analyze")
	defer sp.End(path)

	files, root, isDir, err := Sources(path, opts.Extension)
	if err != nil {
		return nil, err
	}
	return AnalyzeFiles(ctx, files, root, isDir, opts)
}

// AnalyzeFiles processes an explicit file list with root as the display base.
func AnalyzeFiles(ctx context.Context, files []string, root string, isDir bool, opts Options) (*Result, error) {
	if opts.Outputs == 0 {
		opts.Outputs = OutputBoth
	}
	res := &Result{
		FileSet: source.NewFileSetWithBase(root),
		Root:    root,
		IsDir:   isDir,
		Files:   make([]FileResult, len(files)),
	}
	for i, p := range files {
		res.Files[i] = FileResult{Path: p, Bag: diag.NewBag(opts.MaxDiagnostics)}
		emit(opts.Progress, Event{File: p, Stage: StageLoad, Status: StatusQueued})
	}
	if len(files) == 0 {
		return res, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// results are written by index; no locking needed
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))
	for i := range files {
		g.Go(func() error {
			fr := &res.Files[i]
			if err := gctx.Err(); err != nil {
				fr.Err = err
				emit(opts.Progress, Event{File: fr.Path, Stage: StageLoad, Status: StatusError, Err: err})
				return err
			}
			analyzeFile(gctx, res.FileSet, fr, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, fmt.Errorf("analyze %s: %w", root, err)
	}
	return res, nil
}

func analyzeFile(ctx context.Context, fs *source.FileSet, fr *FileResult, opts Options) {
	started := time.Now()
	sp, ctx := trace.Start(ctx, trace.ScopeFile, fr.Path)
	status := StatusDone
	stage := StageLoad
	defer func() {
		sp.WithExtra("status", string(status)).End(string(stage))
		emit(opts.Progress, Event{File: fr.Path, Stage: stage, Status: status, Err: fr.Err, Elapsed: time.Since(started)})
	}()
	reporter := diag.BagReporter{Bag: fr.Bag}

	err := opts.Timer.Track("load", func() error {
		var loadErr error
		fr.File, loadErr = LoadFile(fs, fr.Path, fr.Bag)
		return loadErr
	})
	if err != nil {
		fr.Err, status = err, StatusError
		return
	}
	id := fr.File.ID

	key := CacheKey(fr.File.Hash, opts.Outputs)
	var payload CachePayload
	hit, cacheErr := opts.Cache.Get(key, &payload)
	if cacheErr != nil {
		reporter.Report(diag.IOLoadFileError, diag.SevWarning, source.Span{File: id}, "ignoring cache entry: "+cacheErr.Error(), nil)
	}
	if hit {
		fr.Tokens, fr.Tree, fr.Cached = payload.Tokens, payload.Tree, true
		status = StatusCached
		trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache-hit", fmt.Sprintf("%x", key[:8]), sp.ID())
	} else {
		// one lexer per file; the tree pass restarts it
		lx := lexer.New(fr.File, lexer.Options{Reporter: reporter})
		if opts.Outputs&OutputTokens != 0 {
			stage = StageTokenize
			emit(opts.Progress, Event{File: fr.Path, Stage: stage, Status: StatusWorking})
			err = opts.Timer.Track("tokenize", func() error {
				var tokErr error
				fr.Tokens, tokErr = RenderTokens(lx)
				return tokErr
			})
			if err != nil {
				fr.Err, status = err, StatusError
				return
			}
		}
		if opts.Outputs&OutputTree != 0 {
			stage = StageParse
			emit(opts.Progress, Event{File: fr.Path, Stage: stage, Status: StatusWorking})
			err = opts.Timer.Track("parse", func() error {
				var parseErr error
				fr.Tree, parseErr = RenderTree(ctx, lx, reporter)
				return parseErr
			})
			if err != nil {
				fr.Err, status = err, StatusError
				return
			}
		}
		if opts.Cache != nil {
			if err := opts.Cache.Put(key, &CachePayload{Mode: opts.Outputs, Tokens: fr.Tokens, Tree: fr.Tree}); err != nil {
				reporter.Report(diag.IOWriteFileError, diag.SevWarning, source.Span{File: id}, "cache not updated: "+err.Error(), nil)
			}
		}
	}

	if !opts.Write {
		return
	}
	stage = StageWrite
	emit(opts.Progress, Event{File: fr.Path, Stage: stage, Status: StatusWorking})
	tokPath, treePath := OutputPaths(fr.Path, opts.OutputDir)
	outputs := []struct {
		want Output
		path string
		data []byte
	}{
		{OutputTokens, tokPath, fr.Tokens},
		{OutputTree, treePath, fr.Tree},
	}
	err = opts.Timer.Track("write", func() error {
		for _, out := range outputs {
			if opts.Outputs&out.want == 0 {
				continue
			}
			if err := writeAtomic(out.path, out.data); err != nil {
				return fmt.Errorf("write %s: %w", out.path, err)
			}
			fr.Written = append(fr.Written, out.path)
		}
		return nil
	})
	if err != nil {
		fr.Err = ioFailure(fr.Bag, diag.IOWriteFileError, id, err.Error())
		status = StatusError
	}
}

func ioFailure(bag *diag.Bag, code diag.Code, id source.FileID, msg string) error {
	d := diag.NewError(code, source.Span{File: id}, msg)
	bag.Add(&d)
	return diag.Fail(d)
}
