// Package adapter contains the infrastructure adapters of the gorector CLI.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	rerr "github.com/mouse-blink/gorector/internal/errors"
	m "github.com/mouse-blink/gorector/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get collects PHP files under the given roots. Paths matching a skip
	// pattern are left out.
	Get(roots []m.Path, skip []string) ([]m.Source, error)

	// Walk traverses root recursively.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// WriteFile replaces the contents of an existing file, keeping its mode.
	WriteFile(path m.Path, content []byte) error

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// SkipMatcher matches slash-separated paths against skip globs.
type SkipMatcher struct {
	globs []glob.Glob
}

// NewSkipMatcher compiles skip patterns. `**` crosses directories, `*` does
// not.
func NewSkipMatcher(patterns []string) (*SkipMatcher, error) {
	sm := &SkipMatcher{globs: make([]glob.Glob, 0, len(patterns))}

	for _, p := range patterns {
		g, err := glob.Compile(filepath.ToSlash(p), '/')
		if err != nil {
			return nil, rerr.Wrap(err, rerr.CodeConfig, "invalid skip pattern").WithContext(rerr.CtxOption, p)
		}

		sm.globs = append(sm.globs, g)
	}

	return sm, nil
}

// Match reports whether path, absolute or relative to the working
// directory, matches any pattern.
func (s *SkipMatcher) Match(path string) bool {
	if s == nil || len(s.globs) == 0 {
		return false
	}

	candidates := []string{filepath.ToSlash(path)}

	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, path); err == nil && !strings.HasPrefix(rel, "..") {
			candidates = append(candidates, filepath.ToSlash(rel))
		}
	}

	for _, g := range s.globs {
		for _, c := range candidates {
			if g.Match(c) {
				return true
			}
		}
	}

	return false
}

// Get collects PHP sources for the provided roots. Duplicates reached
// through overlapping roots are returned once.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, skip []string) ([]m.Source, error) {
	if len(roots) == 0 {
		return []m.Source{}, nil
	}

	matcher, err := NewSkipMatcher(skip)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	var sources []m.Source

	add := func(path string) error {
		source, ok, err := a.processFilePath(path, matcher)
		if err != nil || !ok {
			return err
		}

		if _, exists := seen[string(source.Origin.Path)]; exists {
			return nil
		}

		seen[string(source.Origin.Path)] = struct{}{}
		sources = append(sources, source)

		return nil
	}

	for _, root := range roots {
		rootPath, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, rerr.Wrap(err, rerr.CodeNotFound, "root path error").WithContext(rerr.CtxPath, string(root))
		}

		if !info.IsDir() {
			if err := add(rootPath); err != nil {
				return nil, err
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if path != rootPath && matcher.Match(path) {
					return filepath.SkipDir
				}

				return nil
			}

			return add(path)
		})
		if err != nil {
			return nil, rerr.Wrap(err, rerr.CodeIO, "walk").WithContext(rerr.CtxPath, rootPath)
		}
	}

	return sources, nil
}

// Walk iterates over files under root.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		return fn(path, info, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// HashBytes fingerprints content the same way HashFile does.
func HashBytes(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WriteFile writes content to path, keeping the existing file mode.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(string(path)); err == nil {
		perm = info.Mode().Perm()
	}

	return os.WriteFile(string(path), content, perm)
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

func normalizeRootPath(root string) (string, error) {
	rootStr := root

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	return filepath.Abs(rootStr)
}

func (a *LocalSourceFSAdapter) processFilePath(path string, skip *SkipMatcher) (m.Source, bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".php") {
		return m.Source{}, false, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return m.Source{}, false, err
	}

	if skip.Match(absPath) {
		return m.Source{}, false, nil
	}

	hash, err := a.HashFile(m.Path(absPath))
	if err != nil {
		return m.Source{}, false, rerr.Wrap(err, rerr.CodeIO, "hash file").WithContext(rerr.CtxPath, absPath)
	}

	return m.Source{Origin: &m.File{Path: m.Path(absPath), Hash: hash}}, true, nil
}
