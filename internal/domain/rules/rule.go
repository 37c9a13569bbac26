// Package rules holds the refactoring rules. A rule declares the node kinds
// it inspects and returns an Outcome for each offered node; the engine owns
// the traversal and applies outcomes.
package rules

import (
	m "github.com/mouse-blink/gorector/internal/model"
	"github.com/mouse-blink/gorector/internal/syntax"
)

// SuppressTag is the doc-comment tag listing rule ids disabled for a node.
const SuppressTag = "rector-suppress"

// Ancestry answers class hierarchy questions across the whole project.
type Ancestry interface {
	// Ancestors returns the class's own fully qualified name followed by
	// every transitively reachable parent class and interface.
	Ancestors(class *syntax.ClassDecl) []string
}

// Scope is the read-only context a rule runs with.
type Scope struct {
	Ancestry Ancestry
}

// Outcome is the result of offering a node to a rule. The zero value means
// the rule did not change anything.
type Outcome struct {
	// Node replaces the offered node, or is the offered node itself after an
	// in-place change.
	Node syntax.Node
	// Remove deletes the offered node from its parent list.
	Remove bool
}

// Changed reports whether the rule did something.
func (o Outcome) Changed() bool {
	return o.Node != nil || o.Remove
}

// Rule is implemented by every refactoring rule.
type Rule interface {
	// ID is the stable short identifier used in suppression tags.
	ID() string
	// NodeKinds lists the kinds the rule wants to be offered.
	NodeKinds() []syntax.Kind
	// Refactor inspects one node. It must not fail; "does not apply" is the
	// zero Outcome.
	Refactor(scope Scope, node syntax.Node) Outcome
	// Definition documents the rule.
	Definition() m.RuleDefinition
}

func unchanged() Outcome { return Outcome{} }

func updated(n syntax.Node) Outcome { return Outcome{Node: n} }

func removed() Outcome { return Outcome{Remove: true} }
