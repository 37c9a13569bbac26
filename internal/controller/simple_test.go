package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/gorector/internal/model"
)

func newTestSimpleUI(t *testing.T, options ...StartOption) (*SimpleUI, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)
	if err := ui.Start(options...); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	return ui, &buf
}

func assertContains(t *testing.T, output string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayRunInfo(t *testing.T) {
	ui, buf := newTestSimpleUI(t, WithProcessMode(false))

	ui.DisplayRunInfo(12, 4)

	assertContains(t, buf.String(), "Processing 12 file(s) with 4 worker(s)")
}

func TestSimpleUI_DisplayFileResult(t *testing.T) {
	diff := "--- a.php\n+++ a.php\n@@ -1,2 +1,1 @@\n <?php\n-echo 1;\n"

	tests := []struct {
		name    string
		dryRun  bool
		result  m.FileResult
		want    []string
		notWant []string
	}{
		{
			name:    "changed on write",
			result:  m.FileResult{Path: "a.php", Changed: true, Applied: []string{"EchoForbidRector"}, Diff: diff},
			want:    []string{"changed", "a.php", "[EchoForbidRector]"},
			notWant: []string{"-echo 1;"},
		},
		{
			name:   "pending on dry run prints diff",
			dryRun: true,
			result: m.FileResult{Path: "a.php", Changed: true, Applied: []string{"EchoForbidRector", "ExitAndDieRector"}, Diff: diff},
			want:   []string{"pending", "[EchoForbidRector, ExitAndDieRector]", "-echo 1;"},
		},
		{
			name:   "failed",
			result: m.FileResult{Path: "broken.php", Err: errors.New("syntax error")},
			want:   []string{"failed", "broken.php: syntax error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newTestSimpleUI(t, WithProcessMode(tt.dryRun))

			ui.DisplayFileResult(tt.result)

			output := buf.String()
			assertContains(t, output, tt.want...)

			for _, notWant := range tt.notWant {
				if strings.Contains(output, notWant) {
					t.Fatalf("output contains %q\noutput:\n%s", notWant, output)
				}
			}
		})
	}
}

func TestSimpleUI_DisplayFileResult_SkipsUnchanged(t *testing.T) {
	ui, buf := newTestSimpleUI(t, WithProcessMode(false))

	ui.DisplayFileResult(m.FileResult{Path: "clean.php"})
	ui.DisplayFileResult(m.FileResult{Path: "cached.php", Cached: true})

	if buf.Len() != 0 {
		t.Fatalf("expected no output, got:\n%s", buf.String())
	}
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	summary := m.Summary{
		Files:   5,
		Changed: 2,
		Cached:  1,
		Failed:  1,
		Rules:   map[string]int{"IncludeRequireRector": 1, "EchoForbidRector": 2},
	}

	t.Run("write", func(t *testing.T) {
		ui, buf := newTestSimpleUI(t, WithProcessMode(false))

		ui.DisplaySummary(summary)

		output := buf.String()
		assertContains(t, output, "FILES", "CHANGED", "CACHED", "FAILED", "5", "EchoForbidRector", "IncludeRequireRector")

		if strings.Index(output, "EchoForbidRector") > strings.Index(output, "IncludeRequireRector") {
			t.Fatalf("rules not sorted\noutput:\n%s", output)
		}
	})

	t.Run("dry run", func(t *testing.T) {
		ui, buf := newTestSimpleUI(t, WithProcessMode(true))

		ui.DisplaySummary(m.Summary{Files: 1})

		output := buf.String()
		assertContains(t, output, "WOULD CHANGE")

		if strings.Contains(output, "RULE") {
			t.Fatalf("rule table printed without rules\noutput:\n%s", output)
		}
	})
}

func TestSimpleUI_DisplayRules(t *testing.T) {
	ui, buf := newTestSimpleUI(t, WithListMode())

	defs := []m.RuleDefinition{
		{ID: "EchoForbidRector", Title: "Remove echo statements"},
		{ID: "ResetStateCheckerRector", Title: "Reset writable state", Configurable: true},
	}

	if err := ui.DisplayRules(defs); err != nil {
		t.Fatalf("DisplayRules() error = %v", err)
	}

	assertContains(t, buf.String(), "EchoForbidRector", "ResetStateCheckerRector", "yes", "no", "TOTAL RULES 2")
}

func TestSimpleUI_DisplayRule(t *testing.T) {
	ui, buf := newTestSimpleUI(t, WithListMode())

	def := m.RuleDefinition{
		ID:           "EchoForbidRector",
		Title:        "Remove echo statements",
		Configurable: true,
		Samples:      []m.CodeSample{{Before: "echo 'x';\nfoo();", After: ""}},
	}

	if err := ui.DisplayRule(def); err != nil {
		t.Fatalf("DisplayRule() error = %v", err)
	}

	assertContains(t, buf.String(),
		"EchoForbidRector\n\nRemove echo statements",
		"This rule needs configuration.",
		"Sample 1, before:",
		"    echo 'x';\n    foo();",
		"(removed)",
	)
}

func TestIndentBlock(t *testing.T) {
	got := indentBlock("a\n\nb\n")
	if got != "    a\n\n    b" {
		t.Fatalf("indentBlock() = %q", got)
	}
}
