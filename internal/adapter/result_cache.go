package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/gorector/internal/model"
)

const cacheFileName = "results.yaml"

// ResultCache remembers files that needed no change, keyed by path and
// content hash. It is safe for concurrent use.
type ResultCache interface {
	// Clean reports whether path with the given hash was clean last time.
	Clean(path m.Path, hash string) bool
	// Record stores the outcome for path. Changed files are forgotten.
	Record(path m.Path, hash string, changed bool)
	// Save persists the cache.
	Save() error
}

type cacheDocument struct {
	Fingerprint string            `yaml:"fingerprint"`
	Files       map[string]string `yaml:"files"`
}

// LocalResultCache stores its entries as YAML under a cache directory. A
// cache written under a different configuration fingerprint is discarded.
type LocalResultCache struct {
	mu          sync.Mutex
	path        string
	fingerprint string
	files       map[string]string
	dirty       bool
}

// NewLocalResultCache loads the cache under dir, starting empty when there
// is none or when it belongs to another configuration.
func NewLocalResultCache(dir, fingerprint string) (*LocalResultCache, error) {
	c := &LocalResultCache{
		path:        filepath.Join(dir, cacheFileName),
		fingerprint: fingerprint,
		files:       map[string]string{},
	}

	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}

	var doc cacheDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		// a corrupt cache only costs a full run
		c.dirty = true

		return c, nil
	}

	if doc.Fingerprint != fingerprint {
		c.dirty = true

		return c, nil
	}

	if doc.Files != nil {
		c.files = doc.Files
	}

	return c, nil
}

// Clean reports whether the file was clean with this content.
func (c *LocalResultCache) Clean(path m.Path, hash string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, ok := c.files[string(path)]

	return ok && h == hash
}

// Record stores or forgets an entry.
func (c *LocalResultCache) Record(path m.Path, hash string, changed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := string(path)

	if changed {
		if _, ok := c.files[key]; ok {
			delete(c.files, key)
			c.dirty = true
		}

		return
	}

	if c.files[key] != hash {
		c.files[key] = hash
		c.dirty = true
	}
}

// Save writes the cache when it changed.
func (c *LocalResultCache) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.dirty {
		return nil
	}

	data, err := yaml.Marshal(cacheDocument{Fingerprint: c.fingerprint, Files: c.files})
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o750); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}

	c.dirty = false

	return nil
}

// NoopResultCache never reports a hit.
type NoopResultCache struct{}

// Clean always returns false.
func (NoopResultCache) Clean(m.Path, string) bool { return false }

// Record does nothing.
func (NoopResultCache) Record(m.Path, string, bool) {}

// Save does nothing.
func (NoopResultCache) Save() error { return nil }
