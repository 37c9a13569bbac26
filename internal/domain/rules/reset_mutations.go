package rules

import (
	"strings"

	"github.com/mouse-blink/gorector/internal/syntax"
)

// findMutated returns the candidates assigned in any method other than the
// constructor. Nested class declarations are not entered; closures are.
func findMutated(class *syntax.ClassDecl, candidates *propertySet) *propertySet {
	mutated := newPropertySet()

	for _, method := range class.Methods() {
		if method.IsConstructor() || !method.HasBody {
			continue
		}

		for _, stmt := range method.Stmts {
			syntax.Inspect(stmt, func(n syntax.Node) bool {
				switch v := n.(type) {
				case *syntax.ClassDecl:
					return false
				case *syntax.Assign:
					if v.ByRef {
						return true
					}

					name, ok := resolveTarget(v.Var)
					if !ok {
						return true
					}

					if p := candidates.get(name); p != nil && mutated.get(name) == nil {
						mutated.put(p)
					}
				}

				return true
			})
		}
	}

	return mutated
}

// resolveTarget names the property written by an assignment target,
// looking through one array access: $this->p[k] = v writes p.
func resolveTarget(target syntax.Node) (string, bool) {
	if dim, ok := target.(*syntax.ArrayDimFetch); ok {
		target = dim.Var
	}

	return propertyTarget(target)
}

// propertyTarget names $this->p, self::$p and static::$p.
func propertyTarget(target syntax.Node) (string, bool) {
	var name string

	switch v := target.(type) {
	case *syntax.PropertyFetch:
		if !syntax.IsThis(v.Object) {
			return "", false
		}

		name = v.Name
	case *syntax.StaticPropertyFetch:
		if !isSelfReference(v.Class) {
			return "", false
		}

		name = v.Name
	default:
		return "", false
	}

	// empty and numeric names come from dynamic or mis-resolved targets
	if name == "" || isDigits(name) {
		return "", false
	}

	return name, true
}

func isSelfReference(n *syntax.Name) bool {
	if n == nil {
		return false
	}

	return strings.EqualFold(n.Text, "self") || strings.EqualFold(n.Text, "static")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return s != ""
}
