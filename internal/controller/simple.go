package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/gorector/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
	cfg StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.mu.Lock()
	s.cfg = newStartConfig(options)
	s.mu.Unlock()

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; there is nothing to dismiss.
func (s *SimpleUI) Wait() {}

// DisplayRunInfo shows how much work is ahead.
func (s *SimpleUI) DisplayRunInfo(files int, parallel int) {
	s.printf("Processing %d file(s) with %d worker(s)\n", files, parallel)
}

// DisplayFileResult prints files that changed or failed. Diffs are printed
// for dry runs.
func (s *SimpleUI) DisplayFileResult(r m.FileResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := fileStatus(r, s.cfg.dryRun)

	switch status {
	case "failed":
		s.printf("%-8s %s: %v\n", status, r.Path, r.Err)
	case "changed", "pending":
		s.printf("%-8s %s [%s]\n", status, r.Path, strings.Join(r.Applied, ", "))

		if s.cfg.dryRun && r.Diff != "" {
			s.printf("%s", r.Diff)

			if !strings.HasSuffix(r.Diff, "\n") {
				s.printf("\n")
			}
		}
	}
}

// DisplaySummary prints totals and the number of files each rule changed.
func (s *SimpleUI) DisplaySummary(summary m.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changedLabel := "Changed"
	if s.cfg.dryRun {
		changedLabel = "Would change"
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Files", changedLabel, "Cached", "Failed"})
	table.Append([]string{
		fmt.Sprintf("%d", summary.Files),
		fmt.Sprintf("%d", summary.Changed),
		fmt.Sprintf("%d", summary.Cached),
		fmt.Sprintf("%d", summary.Failed),
	})
	table.Render()

	if len(summary.Rules) > 0 {
		ids := make([]string, 0, len(summary.Rules))
		for id := range summary.Rules {
			ids = append(ids, id)
		}

		sort.Strings(ids)

		tableBuffer.WriteString("\n")

		rulesTable := newTable(&tableBuffer, []string{"Rule", "Files"})
		for _, id := range ids {
			rulesTable.Append([]string{id, fmt.Sprintf("%d", summary.Rules[id])})
		}

		rulesTable.Render()
	}

	s.printf("\n%s", tableBuffer.String())
}

// DisplayRules prints the rule catalog.
func (s *SimpleUI) DisplayRules(defs []m.RuleDefinition) error {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Rule", "Configurable", "Title"})
	for _, def := range defs {
		configurable := "no"
		if def.Configurable {
			configurable = "yes"
		}

		table.Append([]string{def.ID, configurable, def.Title})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Rules %d", len(defs)), "", ""})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayRule prints one rule with its before and after samples.
func (s *SimpleUI) DisplayRule(def m.RuleDefinition) error {
	s.printf("%s", formatRule(def))

	return nil
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}

// formatRule renders a rule description as plain text.
func formatRule(def m.RuleDefinition) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n%s\n", def.ID, def.Title)

	if def.Configurable {
		b.WriteString("\nThis rule needs configuration.\n")
	}

	for i, sample := range def.Samples {
		fmt.Fprintf(&b, "\nSample %d, before:\n\n%s\n", i+1, indentBlock(sample.Before))

		after := sample.After
		if strings.TrimSpace(after) == "" {
			after = "(removed)"
		}

		fmt.Fprintf(&b, "\nafter:\n\n%s\n", indentBlock(after))
	}

	return b.String()
}

func indentBlock(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "    " + line
		}
	}

	return strings.Join(lines, "\n")
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
