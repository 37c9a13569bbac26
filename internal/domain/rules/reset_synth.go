package rules

import "github.com/mouse-blink/gorector/internal/syntax"

// applyReset appends reset statements for the mutated properties not yet
// reset, creating the reset method and adding the marker interface as
// needed. It reports whether the class changed.
func (r *ResetStateChecker) applyReset(class *syntax.ClassDecl, ancestors []string, mutated *propertySet) bool {
	participating := containsName(ancestors, r.opts.MarkerInterfaceName)

	var method *syntax.Method
	if participating {
		method = class.Method(r.opts.ResetMethodName)
	}

	create := method == nil
	if !create && !method.HasBody {
		return false
	}

	var done map[string]struct{}
	if !create {
		done = alreadyReset(method)
	}

	var stmts []syntax.Node

	for _, p := range mutated.ordered() {
		if _, ok := done[p.Name]; ok {
			continue
		}

		stmts = append(stmts, resetStatement(p))
	}

	if len(stmts) == 0 {
		return false
	}

	if create {
		method = &syntax.Method{
			Name:       r.opts.ResetMethodName,
			Visibility: syntax.Public,
			HasBody:    true,
		}
		class.InsertFirstMethod(method)
	} else {
		method.MarkDirty()
	}

	method.Stmts = append(method.Stmts, stmts...)

	if !participating {
		class.AddInterface(r.opts.MarkerInterfaceName)
	}

	return true
}

// alreadyReset lists properties assigned by a direct statement of the reset
// method. Assignments nested in conditionals or loops do not count.
func alreadyReset(method *syntax.Method) map[string]struct{} {
	done := make(map[string]struct{})

	for _, stmt := range method.Stmts {
		es, ok := stmt.(*syntax.ExprStmt)
		if !ok {
			continue
		}

		assign, ok := es.Expr.(*syntax.Assign)
		if !ok {
			continue
		}

		if name, ok := propertyTarget(assign.Var); ok {
			done[name] = struct{}{}
		}
	}

	return done
}

// resetStatement builds $this->p = <default>; or self::$p = <default>;. The
// default node is shared with the property declaration.
func resetStatement(p *syntax.Property) syntax.Node {
	var target syntax.Node = &syntax.PropertyFetch{
		Object: &syntax.Variable{Name: "this"},
		Name:   p.Name,
	}

	if p.Static {
		target = &syntax.StaticPropertyFetch{Class: syntax.NewName("self"), Name: p.Name}
	}

	return &syntax.ExprStmt{Expr: &syntax.Assign{Var: target, Expr: p.Default}}
}
