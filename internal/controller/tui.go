package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/gorector/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	input  io.Reader

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for the requested mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)

	var model tea.Model

	switch cfg.mode {
	case ModeList:
		model = newRulesModel()
	default:
		model = newProcessModel(cfg.dryRun)
	}

	opts := []tea.ProgramOption{tea.WithOutput(t.output), tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("ui already started")
	}

	t.program = tea.NewProgram(model, opts...)
	t.done = make(chan struct{})

	go func(p *tea.Program, done chan struct{}) {
		defer close(done)

		_, _ = p.Run()
	}(t.program, t.done)

	return nil
}

// Close stops the program if it is still running.
func (t *TUI) Close() {
	t.mu.Lock()
	p, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if p == nil {
		return
	}

	p.Quit()
	<-done
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(msg)
	}
}

// DisplayRunInfo shows how much work is ahead.
func (t *TUI) DisplayRunInfo(files int, parallel int) {
	t.send(runInfoMsg{files: files, parallel: parallel})
}

// DisplayFileResult adds one file to the progress view.
func (t *TUI) DisplayFileResult(result m.FileResult) {
	t.send(fileResultMsg{result: result})
}

// DisplaySummary switches the view to the browsable result list.
func (t *TUI) DisplaySummary(summary m.Summary) {
	t.send(summaryMsg{summary: summary})
}

// DisplayRules fills the rule browser.
func (t *TUI) DisplayRules(defs []m.RuleDefinition) error {
	t.send(rulesMsg{defs: defs})

	return nil
}

// DisplayRule prints one rule; a single description needs no program.
func (t *TUI) DisplayRule(def m.RuleDefinition) error {
	_, err := fmt.Fprint(t.output, formatRule(def))

	return err
}
