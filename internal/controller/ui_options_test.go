package controller

import (
	"errors"
	"testing"

	m "github.com/mouse-blink/gorector/internal/model"
)

func TestStartOptions(t *testing.T) {
	cfg := newStartConfig([]StartOption{WithProcessMode(true)})
	if cfg.mode != ModeProcess || !cfg.dryRun {
		t.Fatalf("WithProcessMode(true) = %+v", cfg)
	}

	cfg = newStartConfig([]StartOption{WithProcessMode(true), WithListMode()})
	if cfg.mode != ModeList {
		t.Fatalf("WithListMode() mode = %v, want %v", cfg.mode, ModeList)
	}

	cfg = newStartConfig(nil)
	if cfg.mode != ModeProcess || cfg.dryRun {
		t.Fatalf("default config = %+v", cfg)
	}
}

func TestFileStatus(t *testing.T) {
	tests := []struct {
		name   string
		result m.FileResult
		dryRun bool
		want   string
	}{
		{"failed wins", m.FileResult{Changed: true, Err: errors.New("x")}, false, "failed"},
		{"changed", m.FileResult{Changed: true}, false, "changed"},
		{"pending", m.FileResult{Changed: true}, true, "pending"},
		{"cached", m.FileResult{Cached: true}, false, "cached"},
		{"clean", m.FileResult{}, true, "clean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fileStatus(tt.result, tt.dryRun); got != tt.want {
				t.Fatalf("fileStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}
