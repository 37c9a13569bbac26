package controller

import (
	"time"

	m "github.com/mouse-blink/gorector/internal/model"
)

// Message types.
type tickMsg time.Time

type runInfoMsg struct {
	files    int
	parallel int
}

type fileResultMsg struct {
	result m.FileResult
}

type summaryMsg struct {
	summary m.Summary
}

type rulesMsg struct {
	defs []m.RuleDefinition
}

// List item types.
type resultItem struct {
	path   string
	status string
	rules  string
	diff   string
}

func (r resultItem) FilterValue() string {
	return r.path + " " + r.status + " " + r.rules
}

type ruleItem struct {
	def m.RuleDefinition
}

func (r ruleItem) FilterValue() string {
	return r.def.ID + " " + r.def.Title
}
