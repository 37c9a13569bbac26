package domain

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/gorector/internal/adapter"
	"github.com/mouse-blink/gorector/internal/controller"
	"github.com/mouse-blink/gorector/internal/domain/rules"
	rerr "github.com/mouse-blink/gorector/internal/errors"
	m "github.com/mouse-blink/gorector/internal/model"
	"github.com/mouse-blink/gorector/internal/printer"
	"github.com/mouse-blink/gorector/internal/syntax"
)

// ProcessArgs selects what a run touches.
type ProcessArgs struct {
	Paths      []m.Path
	IndexPaths []m.Path
	Skip       []string
	Parallel   int
	DryRun     bool
}

// WatchArgs configures watch mode.
type WatchArgs struct {
	ProcessArgs
	Debounce time.Duration
}

// Workflow defines the operations exposed to the command line.
type Workflow interface {
	// Process refactors every PHP file under the given paths. A dry run that
	// would change files reports a CHANGES_DETECTED error.
	Process(ctx context.Context, args ProcessArgs) (m.Summary, error)
	// Watch runs Process once and again on every batch of file changes until
	// ctx is done.
	Watch(ctx context.Context, args WatchArgs) error
	// Rules lists every known rule.
	Rules() error
	// Describe shows one rule with its samples.
	Describe(id string) error
}

type workflow struct {
	fsAdapter  adapter.SourceFSAdapter
	phpAdapter adapter.PHPFileAdapter
	cache      adapter.ResultCache
	ui         controller.UI
	engine     *Engine
	logger     *slog.Logger
}

// NewWorkflow wires a Workflow. A nil cache disables caching and a nil
// logger uses slog.Default.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	phpAdapter adapter.PHPFileAdapter,
	cache adapter.ResultCache,
	ui controller.UI,
	engine *Engine,
	logger *slog.Logger,
) Workflow {
	if cache == nil {
		cache = adapter.NoopResultCache{}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &workflow{
		fsAdapter:  fsAdapter,
		phpAdapter: phpAdapter,
		cache:      cache,
		ui:         ui,
		engine:     engine,
		logger:     logger,
	}
}

// parsedFile is one source after the parse phase.
type parsedFile struct {
	source m.Source
	src    []byte
	file   *syntax.File
	err    error
}

func (w *workflow) Process(ctx context.Context, args ProcessArgs) (m.Summary, error) {
	var summary m.Summary

	sources, err := w.collectSources(args)
	if err != nil {
		return summary, err
	}

	parallel := args.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	targets := 0

	for _, s := range sources {
		if !s.IndexOnly {
			targets++
		}
	}

	if err := w.ui.Start(controller.WithProcessMode(args.DryRun)); err != nil {
		return summary, err
	}
	defer w.ui.Close()

	w.ui.DisplayRunInfo(targets, parallel)
	w.logger.Info("processing files", "files", targets, "indexed", len(sources)-targets, "parallel", parallel, "dry_run", args.DryRun)

	parsed, err := w.parseAll(ctx, sources, parallel)
	if err != nil {
		return summary, err
	}

	files := make([]*syntax.File, 0, len(parsed))
	for _, p := range parsed {
		if p.file != nil {
			files = append(files, p.file)
		}
	}

	scope := rules.Scope{Ancestry: NewFamilyIndex(files)}

	results, err := w.refactorAll(ctx, scope, parsed, parallel, args.DryRun)
	if err != nil {
		return summary, err
	}

	for _, r := range results {
		summary.Add(r)
	}

	if !args.DryRun {
		if err := w.cache.Save(); err != nil {
			w.logger.Warn("failed to save result cache", "error", err)
		}
	}

	w.ui.DisplaySummary(summary)
	w.logger.Info("run finished", "files", summary.Files, "changed", summary.Changed, "cached", summary.Cached, "failed", summary.Failed)
	w.ui.Wait()

	if args.DryRun && summary.Changed > 0 {
		return summary, rerr.Newf(rerr.CodeChangesDetected, "%d file(s) would be changed", summary.Changed)
	}

	return summary, nil
}

// collectSources discovers targets and index-only files. A file reachable
// from both is a target.
func (w *workflow) collectSources(args ProcessArgs) ([]m.Source, error) {
	targets, err := w.fsAdapter.Get(args.Paths, args.Skip)
	if err != nil {
		return nil, err
	}

	if len(args.IndexPaths) == 0 {
		return targets, nil
	}

	indexed, err := w.fsAdapter.Get(args.IndexPaths, args.Skip)
	if err != nil {
		return nil, err
	}

	seen := make(map[m.Path]bool, len(targets))
	for _, s := range targets {
		seen[s.Origin.Path] = true
	}

	for _, s := range indexed {
		if seen[s.Origin.Path] {
			continue
		}

		s.IndexOnly = true
		targets = append(targets, s)
	}

	return targets, nil
}

func (w *workflow) parseAll(ctx context.Context, sources []m.Source, parallel int) ([]parsedFile, error) {
	parsed := make([]parsedFile, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, source := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			parsed[i] = w.parseOne(gctx, source)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return parsed, nil
}

func (w *workflow) parseOne(ctx context.Context, source m.Source) parsedFile {
	path := source.Origin.Path
	p := parsedFile{source: source}

	src, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		p.err = rerr.Wrap(err, rerr.CodeIO, "failed to read file").WithContext(rerr.CtxPath, string(path))

		return p
	}

	p.src = src

	file, err := w.phpAdapter.Parse(ctx, string(path), src)
	if err != nil {
		level := slog.LevelWarn
		if source.IndexOnly {
			level = slog.LevelDebug
		}

		w.logger.Log(ctx, level, "failed to parse file", "path", path, "error", err)
		p.err = err

		return p
	}

	p.file = file
	w.logger.Debug("parsed file", "path", path, "index_only", source.IndexOnly)

	return p
}

func (w *workflow) refactorAll(ctx context.Context, scope rules.Scope, parsed []parsedFile, parallel int, dryRun bool) ([]m.FileResult, error) {
	var (
		mu      sync.Mutex
		results []m.FileResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for _, p := range parsed {
		if p.source.IndexOnly {
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result := w.refactorOne(scope, p, dryRun)
			w.ui.DisplayFileResult(result)

			mu.Lock()
			results = append(results, result)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	return results, nil
}

func (w *workflow) refactorOne(scope rules.Scope, p parsedFile, dryRun bool) m.FileResult {
	path := p.source.Origin.Path
	result := m.FileResult{Path: w.displayPath(path)}

	if p.err != nil {
		result.Err = p.err

		return result
	}

	hash := cacheKey(p.source.Origin.Hash, scope.Ancestry, p.file)
	if w.cache.Clean(path, hash) {
		result.Cached = true
		w.logger.Debug("skipping cached file", "path", path)

		return result
	}

	applied := w.engine.Apply(scope, p.file)

	out := p.src
	if len(applied) > 0 {
		out = printer.Print(p.src, p.file)
	}

	if bytes.Equal(out, p.src) {
		if !dryRun {
			w.cache.Record(path, hash, false)
		}

		return result
	}

	diff, err := printer.Diff(string(result.Path), p.src, out)
	if err != nil {
		result.Err = rerr.Wrap(err, rerr.CodeInternal, "failed to diff").WithContext(rerr.CtxPath, string(path))

		return result
	}

	result.Changed = true
	result.Applied = applied
	result.Diff = diff
	result.Output = out

	w.logger.Debug("file changed", "path", path, "rules", applied)

	if dryRun {
		return result
	}

	if err := w.fsAdapter.WriteFile(path, out); err != nil {
		result.Err = rerr.Wrap(err, rerr.CodeIO, "failed to write file").WithContext(rerr.CtxPath, string(path))

		return result
	}

	// rules are idempotent, so the rewritten content is clean
	w.cache.Record(path, cacheKey(adapter.HashBytes(out), scope.Ancestry, p.file), false)

	return result
}

// cacheKey extends a content hash with the ancestry of every class declared
// in file. A parent edited in another file changes the key of its children.
// Files without classes are keyed by their content alone.
func cacheKey(hash string, ancestry rules.Ancestry, file *syntax.File) string {
	if ancestry == nil || file == nil {
		return hash
	}

	h := sha256.New()
	classes := 0

	syntax.Inspect(file, func(n syntax.Node) bool {
		class, ok := n.(*syntax.ClassDecl)
		if !ok {
			return true
		}

		classes++

		fmt.Fprintf(h, "%d:", classes)

		for _, name := range ancestry.Ancestors(class) {
			fmt.Fprintf(h, "%s;", strings.ToLower(strings.TrimPrefix(name, `\`)))
		}

		return true
	})

	if classes == 0 {
		return hash
	}

	return hash + "+" + hex.EncodeToString(h.Sum(nil))[:16]
}

// displayPath is path relative to the working directory when possible.
func (w *workflow) displayPath(path m.Path) m.Path {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := w.fsAdapter.RelPath(m.Path(wd), path)
	if err != nil || strings.HasPrefix(string(rel), "..") {
		return path
	}

	return rel
}

func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	if err := w.processLogged(ctx, args.ProcessArgs); err != nil {
		return err
	}

	skip, err := adapter.NewSkipMatcher(args.Skip)
	if err != nil {
		return err
	}

	changes := make(chan []string, 1)

	watcher, err := adapter.NewWatcher(args.Debounce, skip, w.logger, func(paths []string) {
		select {
		case changes <- paths:
		default:
			// a run is already queued and will see these files too
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	roots := make([]string, 0, len(args.Paths))
	for _, p := range args.Paths {
		roots = append(roots, string(p))
	}

	errCh := make(chan error, 1)

	go func() { errCh <- watcher.Watch(ctx, roots) }()

	for {
		select {
		case <-ctx.Done():
			return <-errCh
		case err := <-errCh:
			return err
		case paths := <-changes:
			w.logger.Info("files changed", "count", len(paths))

			if err := w.processLogged(ctx, args.ProcessArgs); err != nil {
				return err
			}
		}
	}
}

// processLogged runs Process, turning per-run outcomes into log lines. Only
// configuration problems stop watch mode.
func (w *workflow) processLogged(ctx context.Context, args ProcessArgs) error {
	_, err := w.Process(ctx, args)

	switch {
	case err == nil:
		return nil
	case rerr.IsCode(err, rerr.CodeConfig):
		return err
	case rerr.IsCode(err, rerr.CodeChangesDetected):
		w.logger.Info("dry run detected changes", "error", err)
	default:
		w.logger.Error("run failed", "error", err)
	}

	return nil
}

func (w *workflow) Rules() error {
	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	if err := w.ui.DisplayRules(rules.Catalog()); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

func (w *workflow) Describe(id string) error {
	def, ok := rules.Lookup(id)
	if !ok {
		return rerr.Newf(rerr.CodeNotFound, "unknown rule %q", id).WithContext(rerr.CtxRule, id)
	}

	return w.ui.DisplayRule(def)
}
