package rules

import (
	m "github.com/mouse-blink/gorector/internal/model"
	"github.com/mouse-blink/gorector/internal/syntax"
)

// IncludeRequireID is the short id of IncludeRequire.
const IncludeRequireID = "IncludeRequireRector"

// IncludeRequire turns include_once and require_once into their plain
// forms.
type IncludeRequire struct{}

func (IncludeRequire) ID() string { return IncludeRequireID }

func (IncludeRequire) NodeKinds() []syntax.Kind { return []syntax.Kind{syntax.KindInclude} }

func (IncludeRequire) Refactor(_ Scope, node syntax.Node) Outcome {
	inc, ok := node.(*syntax.Include)
	if !ok {
		return unchanged()
	}

	if IsSuppressed(node, IncludeRequireID) {
		return unchanged()
	}

	var plain syntax.IncludeType

	switch inc.Type {
	case syntax.IncludeOnce:
		plain = syntax.IncludePlain
	case syntax.RequireOnce:
		plain = syntax.RequirePlain
	default:
		return unchanged()
	}

	return updated(syntax.Replace(inc, &syntax.Include{Type: plain, Expr: inc.Expr}))
}

func (IncludeRequire) Definition() m.RuleDefinition {
	return m.RuleDefinition{
		ID:      IncludeRequireID,
		Title:   "include_once and require_once without _once",
		Samples: []m.CodeSample{{Before: "include_once 'a.php';", After: "include 'a.php';"}},
	}
}
