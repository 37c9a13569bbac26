// Package controller provides the front ends that display refactoring runs.
package controller

import (
	m "github.com/mouse-blink/gorector/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeProcess StartMode = iota
	ModeList
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	dryRun bool
}

// WithProcessMode sets the UI to display a refactoring run.
func WithProcessMode(dryRun bool) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeProcess
		c.dryRun = dryRun
	}
}

// WithListMode sets the UI to browse the rule catalog.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how runs and rules are shown. Implementations can use
// different output methods (simple text, TUI, etc). DisplayFileResult may be
// called from several goroutines.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayRunInfo(files int, parallel int)
	DisplayFileResult(result m.FileResult)
	DisplaySummary(summary m.Summary)
	DisplayRules(defs []m.RuleDefinition) error
	DisplayRule(def m.RuleDefinition) error
}

// fileStatus names the outcome of one file.
func fileStatus(r m.FileResult, dryRun bool) string {
	switch {
	case r.Err != nil:
		return "failed"
	case r.Changed && dryRun:
		return "pending"
	case r.Changed:
		return "changed"
	case r.Cached:
		return "cached"
	default:
		return "clean"
	}
}
