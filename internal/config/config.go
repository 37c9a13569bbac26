// Package config loads the gorector configuration file.
package config

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/gorector/internal/domain/rules"
	rerr "github.com/mouse-blink/gorector/internal/errors"
)

// SearchNames are the file names looked up in the working directory when no
// configuration file is given.
var SearchNames = []string{"gorector.yaml", "gorector.yml", "gorector.toml"}

// Config is the content of a gorector configuration file after defaults
// are applied.
type Config struct {
	Paths      []string `yaml:"paths" toml:"paths"`
	IndexPaths []string `yaml:"index_paths" toml:"index_paths"`
	Skip       []string `yaml:"skip" toml:"skip"`
	Parallel   int      `yaml:"parallel" toml:"parallel"`
	Cache      Cache    `yaml:"cache" toml:"cache"`
	Logging    Logging  `yaml:"logging" toml:"logging"`
	Watch      Watch    `yaml:"watch" toml:"watch"`
	Rules      Rules    `yaml:"rules" toml:"rules"`
}

// Cache controls the result cache. Dir is relative to the working directory.
type Cache struct {
	Enabled *bool  `yaml:"enabled" toml:"enabled"`
	Dir     string `yaml:"dir" toml:"dir"`
}

// On reports whether caching is enabled. It defaults to true.
func (c Cache) On() bool {
	return c.Enabled == nil || *c.Enabled
}

// Logging selects the slog level (debug, info, warn, error) and handler
// format (text or json).
type Logging struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Watch configures watch mode. Debounce is the quiet period after the last
// file event before a run starts.
type Watch struct {
	Debounce time.Duration `yaml:"debounce" toml:"debounce"`
}

// Rules selects and configures the rules. An empty Enabled list runs every
// rule that needs no options plus every configured one.
type Rules struct {
	Enabled            []string                         `yaml:"enabled" toml:"enabled"`
	ResetState         *rules.ResetStateOptions         `yaml:"reset_state" toml:"reset_state"`
	ForbiddenFunctions *rules.ForbiddenFunctionsOptions `yaml:"forbidden_functions" toml:"forbidden_functions"`
	GlobalVars         *rules.GlobalVarsOptions         `yaml:"global_vars" toml:"global_vars"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// Load reads the configuration at path. With an empty path the working
// directory is searched for one of SearchNames, falling back to Default.
func Load(path string) (*Config, error) {
	if path == "" {
		found, ok := search(".")
		if !ok {
			return Default(), nil
		}

		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rerr.Wrap(err, rerr.CodeConfig, "failed to read config").WithContext(rerr.CtxPath, path)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, rerr.AddContext(err, rerr.CtxPath, path)
	}

	return cfg, nil
}

// Parse decodes data in the format named by ext (".yaml", ".yml" or
// ".toml"), then applies defaults and validates.
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, rerr.Wrap(err, rerr.CodeConfig, "invalid yaml config")
		}
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, rerr.Wrap(err, rerr.CodeConfig, "invalid toml config")
		}

		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, rerr.Newf(rerr.CodeConfig, "unknown config key %q", undecoded[0].String())
		}
	default:
		return nil, rerr.Newf(rerr.CodeConfig, "unsupported config format %q", ext)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func search(dir string) (string, bool) {
	for _, name := range SearchNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}

	return "", false
}

func applyDefaults(cfg *Config) {
	if len(cfg.Paths) == 0 {
		cfg.Paths = []string{"."}
	}

	if cfg.Parallel <= 0 {
		cfg.Parallel = runtime.NumCPU()
	}

	if strings.TrimSpace(cfg.Cache.Dir) == "" {
		cfg.Cache.Dir = ".gorector-cache"
	}

	if strings.TrimSpace(cfg.Logging.Level) == "" {
		cfg.Logging.Level = "info"
	}

	if strings.TrimSpace(cfg.Logging.Format) == "" {
		cfg.Logging.Format = "text"
	}

	if cfg.Watch.Debounce <= 0 {
		cfg.Watch.Debounce = 300 * time.Millisecond
	}

	if rs := cfg.Rules.ResetState; rs != nil && strings.TrimSpace(rs.ResetMethodName) == "" {
		rs.ResetMethodName = "reset"
	}
}

// Validate checks values that defaults cannot repair and builds the rule set
// once so option errors surface before any file is touched.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return invalid("logging.level", "must be one of debug, info, warn, error")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return invalid("logging.format", "must be text or json")
	}

	for _, p := range c.Skip {
		if _, err := glob.Compile(filepath.ToSlash(p), '/'); err != nil {
			return rerr.Wrap(err, rerr.CodeConfig, "invalid skip pattern").WithContext(rerr.CtxOption, p)
		}
	}

	if _, err := rules.Build(c.Rules.Enabled, c.RuleOptions()); err != nil {
		return err
	}

	return nil
}

func invalid(option, msg string) error {
	return rerr.New(rerr.CodeConfig, msg).WithContext(rerr.CtxOption, option)
}

// RuleOptions returns the options of the configurable rules.
func (c *Config) RuleOptions() rules.Options {
	return rules.Options{
		ResetState:         c.Rules.ResetState,
		ForbiddenFunctions: c.Rules.ForbiddenFunctions,
		GlobalVars:         c.Rules.GlobalVars,
	}
}

// Fingerprint identifies the rule configuration. Cached results recorded
// under another fingerprint are discarded.
func (c *Config) Fingerprint() string {
	data, err := yaml.Marshal(c.Rules)
	if err != nil {
		return ""
	}

	return fmt.Sprintf("%x", sha256.Sum256(data))
}
