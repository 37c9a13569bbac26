// Package domain contains the refactoring engine, the class family index and
// the workflow that drives them over a project.
package domain

import (
	"github.com/mouse-blink/gorector/internal/domain/rules"
	"github.com/mouse-blink/gorector/internal/syntax"
)

// Engine applies a fixed set of rules to syntax trees. Rules are dispatched
// by node kind in registration order.
type Engine struct {
	rules    []rules.Rule
	dispatch map[syntax.Kind][]rules.Rule
}

// NewEngine builds the dispatch table for rs.
func NewEngine(rs []rules.Rule) *Engine {
	e := &Engine{rules: rs, dispatch: make(map[syntax.Kind][]rules.Rule)}

	for _, r := range rs {
		for _, kind := range r.NodeKinds() {
			e.dispatch[kind] = append(e.dispatch[kind], r)
		}
	}

	return e
}

// Rules returns the registered rules.
func (e *Engine) Rules() []rules.Rule {
	return e.rules
}

// Apply rewrites file in place and returns the ids of the rules that
// changed something, in first-applied order. A node is offered to every
// interested rule before its children are visited; a removal stops further
// rules from seeing the node.
func (e *Engine) Apply(scope rules.Scope, file *syntax.File) []string {
	if len(e.dispatch) == 0 || file == nil {
		return nil
	}

	var applied []string

	seen := make(map[string]bool)
	record := func(id string) {
		if !seen[id] {
			seen[id] = true
			applied = append(applied, id)
		}
	}

	syntax.Rewrite(file, func(n syntax.Node) (syntax.Node, syntax.Action) {
		candidates := e.dispatch[n.Kind()]
		if len(candidates) == 0 {
			return nil, syntax.Keep
		}

		current := n
		replaced := false

		for _, r := range candidates {
			out := r.Refactor(scope, current)
			if !out.Changed() {
				continue
			}

			record(r.ID())

			if out.Remove {
				return nil, syntax.Remove
			}

			if out.Node != current {
				current = syntax.Replace(current, out.Node)
				replaced = true
			}
		}

		if replaced {
			return current, syntax.Update
		}

		return nil, syntax.Keep
	})

	return applied
}
