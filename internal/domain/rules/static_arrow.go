package rules

import (
	"strings"

	m "github.com/mouse-blink/gorector/internal/model"
	"github.com/mouse-blink/gorector/internal/syntax"
)

// StaticArrowID is the short id of StaticArrowFunctionChecker.
const StaticArrowID = "StaticArrowFunctionCheckerRector"

// StaticArrowFunctionChecker drops the static modifier of arrow functions
// that use $this, or that call a non-static method of the enclosing class
// through self::, static:: or parent::.
type StaticArrowFunctionChecker struct{}

func (StaticArrowFunctionChecker) ID() string { return StaticArrowID }

func (StaticArrowFunctionChecker) NodeKinds() []syntax.Kind {
	return []syntax.Kind{syntax.KindClass, syntax.KindTrait, syntax.KindEnum, syntax.KindArrowFunction}
}

func (StaticArrowFunctionChecker) Refactor(_ Scope, node syntax.Node) Outcome {
	switch n := node.(type) {
	case *syntax.ClassDecl:
		if dropInstanceCalls(n) {
			return updated(n)
		}
	case *syntax.ArrowFunction:
		if !n.Static || IsSuppressed(n, StaticArrowID) || !usesThis(n.Body) {
			return unchanged()
		}

		n.DropStatic()

		return updated(n)
	}

	return unchanged()
}

// dropInstanceCalls handles the static arrow functions in class's methods
// whose body calls one of class's instance methods statically. Classes are
// visited before their members, so the arrow functions are not reconsidered.
// Methods the class does not declare are left unresolved, and a parent::
// call resolves only against an override, which shares its staticness.
func dropInstanceCalls(class *syntax.ClassDecl) bool {
	changed := false

	for _, method := range class.Methods() {
		for _, stmt := range method.Stmts {
			syntax.Inspect(stmt, func(n syntax.Node) bool {
				switch v := n.(type) {
				case *syntax.ClassDecl:
					return false
				case *syntax.ArrowFunction:
					if v.Static && !IsSuppressed(v, StaticArrowID) && callsInstanceMethod(class, v.Body) {
						v.DropStatic()
						changed = true
					}
				}

				return true
			})
		}
	}

	return changed
}

func callsInstanceMethod(class *syntax.ClassDecl, body syntax.Node) bool {
	found := false

	syntax.Inspect(body, func(n syntax.Node) bool {
		if found {
			return false
		}

		call, ok := n.(*syntax.StaticCall)
		if !ok || call.Method == "" || !isRelativeScope(call.Class) {
			return true
		}

		if m := class.Method(call.Method); m != nil && !m.Static {
			found = true
		}

		return !found
	})

	return found
}

func isRelativeScope(n *syntax.Name) bool {
	return isSelfReference(n) || (n != nil && strings.EqualFold(n.Text, "parent"))
}

func usesThis(body syntax.Node) bool {
	found := false

	syntax.Inspect(body, func(n syntax.Node) bool {
		if found {
			return false
		}

		if syntax.IsThis(n) {
			found = true
		}

		return !found
	})

	return found
}

func (StaticArrowFunctionChecker) Definition() m.RuleDefinition {
	return m.RuleDefinition{
		ID:      StaticArrowID,
		Title:   "Tracks $this usage inside static arrow functions",
		Samples: []m.CodeSample{{Before: "static fn () => $this->method()", After: "fn () => $this->method()"}},
	}
}
