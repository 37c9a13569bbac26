package rules

import (
	m "github.com/mouse-blink/gorector/internal/model"
	"github.com/mouse-blink/gorector/internal/syntax"
)

// EchoForbidID is the short id of EchoForbid.
const EchoForbidID = "EchoForbidRector"

// ExitAndDieID is the short id of ExitAndDie.
const ExitAndDieID = "ExitAndDieRector"

// EchoForbid deletes echo statements.
type EchoForbid struct{}

func (EchoForbid) ID() string { return EchoForbidID }

func (EchoForbid) NodeKinds() []syntax.Kind { return []syntax.Kind{syntax.KindEcho} }

func (EchoForbid) Refactor(_ Scope, node syntax.Node) Outcome {
	if IsSuppressed(node, EchoForbidID) {
		return unchanged()
	}

	return removed()
}

func (EchoForbid) Definition() m.RuleDefinition {
	return m.RuleDefinition{
		ID:      EchoForbidID,
		Title:   "Forbid echo",
		Samples: []m.CodeSample{{Before: "echo $message;", After: ""}},
	}
}

// ExitAndDie deletes exit and die statements.
type ExitAndDie struct{}

func (ExitAndDie) ID() string { return ExitAndDieID }

func (ExitAndDie) NodeKinds() []syntax.Kind { return []syntax.Kind{syntax.KindExprStmt} }

func (ExitAndDie) Refactor(_ Scope, node syntax.Node) Outcome {
	stmt, ok := node.(*syntax.ExprStmt)
	if !ok {
		return unchanged()
	}

	if _, ok := stmt.Expr.(*syntax.Exit); !ok {
		return unchanged()
	}

	if IsSuppressed(node, ExitAndDieID) {
		return unchanged()
	}

	return removed()
}

func (ExitAndDie) Definition() m.RuleDefinition {
	return m.RuleDefinition{
		ID:      ExitAndDieID,
		Title:   "Forbid exit and die",
		Samples: []m.CodeSample{{Before: "exit(1);", After: ""}},
	}
}
