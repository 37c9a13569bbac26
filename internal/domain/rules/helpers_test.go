package rules

import "github.com/mouse-blink/gorector/internal/syntax"

func suppress(n syntax.Node, ids string) {
	n.NodeMeta().SetDoc(syntax.ParseDocBlock("/** @rector-suppress " + ids + " */"))
}

func lit(t syntax.LiteralType, raw string) *syntax.Literal {
	return &syntax.Literal{Type: t, Raw: raw}
}

func prop(name string, vis syntax.Visibility, def syntax.Node) *syntax.Property {
	return &syntax.Property{Name: name, Visibility: vis, Default: def}
}

func thisProp(name string) *syntax.PropertyFetch {
	return &syntax.PropertyFetch{Object: &syntax.Variable{Name: "this"}, Name: name}
}

func assign(target, value syntax.Node) *syntax.ExprStmt {
	return &syntax.ExprStmt{Expr: &syntax.Assign{Var: target, Expr: value}}
}

func method(name string, stmts ...syntax.Node) *syntax.Method {
	return &syntax.Method{Name: name, Visibility: syntax.Public, HasBody: true, Stmts: stmts}
}

func class(name string, members ...syntax.Node) *syntax.ClassDecl {
	return &syntax.ClassDecl{Name: syntax.NewName(name), Members: members}
}

func newArray(items ...syntax.Node) *syntax.Array {
	return &syntax.Array{Items: items}
}

type fixedAncestry []string

func (f fixedAncestry) Ancestors(*syntax.ClassDecl) []string { return f }
