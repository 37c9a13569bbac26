package printer

import (
	"strings"

	"github.com/mouse-blink/gorector/internal/syntax"
)

// render returns the text of n. Original nodes keep their source text with
// nested edits applied; synthesized nodes are printed from their structure.
// indent is the indentation of the line the text starts on.
func (p *Printer) render(n syntax.Node, indent string) string {
	if n == nil {
		return ""
	}

	if m := n.NodeMeta(); m.Original() {
		var edits []edit

		p.collectOwn(n, &edits)

		return string(apply(p.src, m.Span().Start, m.Span().End, edits))
	}

	switch v := n.(type) {
	case *syntax.Name:
		return v.Text
	case *syntax.Variable:
		return "$" + v.Name
	case *syntax.Literal:
		return v.Raw
	case *syntax.Array:
		return "[" + p.renderList(v.Items, indent) + "]"
	case *syntax.ConstFetch:
		return p.render(v.Name, indent)
	case *syntax.ClassConstFetch:
		return p.render(v.Class, indent) + "::" + v.Name
	case *syntax.PropertyFetch:
		op := "->"
		if v.Nullsafe {
			op = "?->"
		}

		return p.render(v.Object, indent) + op + v.Name
	case *syntax.StaticPropertyFetch:
		return p.render(v.Class, indent) + "::$" + v.Name
	case *syntax.ArrayDimFetch:
		return p.render(v.Var, indent) + "[" + p.render(v.Dim, indent) + "]"
	case *syntax.Assign:
		op := " = "
		if v.ByRef {
			op = " = &"
		}

		return p.render(v.Var, indent) + op + p.render(v.Expr, indent)
	case *syntax.Unary:
		return v.Op + p.render(v.Operand, indent)
	case *syntax.Binary:
		return p.render(v.Left, indent) + " " + v.Op + " " + p.render(v.Right, indent)
	case *syntax.New:
		return "new " + p.render(v.Class, indent) + "(" + p.renderList(v.Args, indent) + ")"
	case *syntax.FuncCall:
		return p.render(v.Func, indent) + "(" + p.renderList(v.Args, indent) + ")"
	case *syntax.Arg:
		return p.renderArg(v, indent)
	case *syntax.Include:
		return v.Type.String() + " " + p.render(v.Expr, indent)
	case *syntax.Exit:
		return p.renderExit(v, indent)
	case *syntax.ArrowFunction:
		prefix := "fn("
		if v.Static {
			prefix = "static fn("
		}

		return prefix + p.renderList(v.Params, indent) + ") => " + p.render(v.Body, indent)
	case *syntax.ExprStmt:
		return p.render(v.Expr, indent) + ";"
	case *syntax.Echo:
		return "echo " + p.renderList(v.Exprs, indent) + ";"
	case *syntax.Property:
		return p.renderProperty(v, indent)
	case *syntax.Method:
		return p.renderMethod(v, indent)
	case *syntax.Other:
		parts := make([]string, 0, len(v.Children))
		for _, c := range v.Children {
			parts = append(parts, p.render(c, indent))
		}

		return strings.Join(parts, " ")
	}

	return ""
}

func (p *Printer) renderList(items []syntax.Node, indent string) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, p.render(it, indent))
	}

	return strings.Join(parts, ", ")
}

func (p *Printer) renderArg(a *syntax.Arg, indent string) string {
	var b strings.Builder

	if a.Name != "" {
		b.WriteString(a.Name + ": ")
	}

	if a.Unpack {
		b.WriteString("...")
	}

	b.WriteString(p.render(a.Value, indent))

	return b.String()
}

func (p *Printer) renderExit(e *syntax.Exit, indent string) string {
	kw := "exit"
	if e.Die {
		kw = "die"
	}

	if e.Expr == nil {
		return kw
	}

	return kw + "(" + p.render(e.Expr, indent) + ")"
}

func (p *Printer) renderProperty(prop *syntax.Property, indent string) string {
	var b strings.Builder

	b.WriteString(prop.Visibility.String())

	if prop.Static {
		b.WriteString(" static")
	}

	if prop.Readonly {
		b.WriteString(" readonly")
	}

	b.WriteString(" $" + prop.Name)

	if prop.Default != nil {
		b.WriteString(" = " + p.render(prop.Default, indent))
	}

	b.WriteString(";")

	return b.String()
}

func (p *Printer) renderMethod(m *syntax.Method, indent string) string {
	var b strings.Builder

	b.WriteString(m.Visibility.String())

	if m.Abstract {
		b.WriteString(" abstract")
	}

	if m.Static {
		b.WriteString(" static")
	}

	b.WriteString(" function " + m.Name + "(" + p.renderList(m.Params, indent) + ")")

	if !m.HasBody {
		b.WriteString(";")

		return b.String()
	}

	inner := indent + p.unit

	b.WriteString("\n" + indent + "{\n")

	for _, s := range m.Stmts {
		b.WriteString(inner + p.render(s, inner) + "\n")
	}

	b.WriteString(indent + "}")

	return b.String()
}
