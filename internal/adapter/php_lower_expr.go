package adapter

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mouse-blink/gorector/internal/syntax"
)

var includeTypes = map[string]syntax.IncludeType{
	"include_expression":      syntax.IncludePlain,
	"include_once_expression": syntax.IncludeOnce,
	"require_expression":      syntax.RequirePlain,
	"require_once_expression": syntax.RequireOnce,
}

// lowerExpr converts the expression kinds rules look at. It returns nil for
// anything else.
func (l *lowerer) lowerExpr(n *sitter.Node) syntax.Node {
	if it, ok := includeTypes[n.Type()]; ok {
		return place(&syntax.Include{Type: it, Expr: l.lower(firstNamed(n))}, n)
	}

	switch n.Type() {
	case "assignment_expression":
		return place(&syntax.Assign{
			Var:  l.lower(n.ChildByFieldName("left")),
			Expr: l.lower(n.ChildByFieldName("right")),
		}, n)
	case "reference_assignment_expression":
		return place(&syntax.Assign{
			Var:   l.lower(n.ChildByFieldName("left")),
			Expr:  l.lower(n.ChildByFieldName("right")),
			ByRef: true,
		}, n)
	case "variable_name":
		return place(&syntax.Variable{Name: strings.TrimPrefix(l.text(n), "$")}, n)
	case "member_access_expression", "nullsafe_member_access_expression":
		return l.lowerPropertyFetch(n)
	case "scoped_property_access_expression":
		return l.lowerStaticPropertyFetch(n)
	case "class_constant_access_expression":
		return l.lowerClassConst(n)
	case "subscript_expression":
		return l.lowerSubscript(n)
	case "array_creation_expression":
		return place(&syntax.Array{Items: l.lowerList(n)}, n)
	case "integer":
		return place(&syntax.Literal{Type: syntax.LitInt, Raw: l.text(n)}, n)
	case "float":
		return place(&syntax.Literal{Type: syntax.LitFloat, Raw: l.text(n)}, n)
	case "string", "encapsed_string", "heredoc", "nowdoc":
		return place(&syntax.Literal{Type: syntax.LitString, Raw: l.text(n)}, n)
	case "boolean":
		return place(&syntax.Literal{Type: syntax.LitBool, Raw: l.text(n)}, n)
	case "null":
		return place(&syntax.Literal{Type: syntax.LitNull, Raw: l.text(n)}, n)
	case "name", "qualified_name":
		return l.lowerConstName(n)
	case "unary_op_expression":
		return l.lowerUnary(n)
	case "binary_expression":
		return place(&syntax.Binary{
			Op:    l.operator(n),
			Left:  l.lower(n.ChildByFieldName("left")),
			Right: l.lower(n.ChildByFieldName("right")),
		}, n)
	case "object_creation_expression":
		return l.lowerNew(n)
	case "function_call_expression":
		return l.lowerCall(n)
	case "scoped_call_expression":
		return l.lowerStaticCall(n)
	case "argument":
		return l.lowerArg(n)
	case "arrow_function":
		return l.lowerArrow(n)
	}

	return nil
}

func firstNamed(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() != "comment" {
			return c
		}
	}

	return nil
}

func (l *lowerer) lowerPropertyFetch(n *sitter.Node) syntax.Node {
	fetch := place(&syntax.PropertyFetch{
		Object:   l.lower(n.ChildByFieldName("object")),
		Nullsafe: n.Type() == "nullsafe_member_access_expression",
	}, n)

	if name := n.ChildByFieldName("name"); name != nil && name.Type() == "name" {
		fetch.Name = l.text(name)
	}

	return fetch
}

func (l *lowerer) lowerStaticPropertyFetch(n *sitter.Node) syntax.Node {
	fetch := place(&syntax.StaticPropertyFetch{}, n)

	if scope := n.ChildByFieldName("scope"); scope != nil {
		fetch.Class = l.className(scope)
	}

	if name := n.ChildByFieldName("name"); name != nil && name.Type() == "variable_name" {
		fetch.Name = strings.TrimPrefix(l.text(name), "$")
	}

	return fetch
}

func (l *lowerer) lowerClassConst(n *sitter.Node) syntax.Node {
	fetch := place(&syntax.ClassConstFetch{}, n)

	count := int(n.NamedChildCount())
	if count == 0 {
		return fetch
	}

	fetch.Class = l.className(n.NamedChild(0))

	if count > 1 {
		fetch.Name = l.text(n.NamedChild(count - 1))
	}

	return fetch
}

func (l *lowerer) lowerSubscript(n *sitter.Node) syntax.Node {
	dim := place(&syntax.ArrayDimFetch{}, n)

	var named []*sitter.Node

	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() != "comment" {
			named = append(named, c)
		}
	}

	if len(named) > 0 {
		dim.Var = l.lower(named[0])
	}

	if len(named) > 1 {
		dim.Dim = l.lower(named[1])
	}

	return dim
}

func (l *lowerer) lowerConstName(n *sitter.Node) syntax.Node {
	text := l.text(n)

	switch strings.ToLower(text) {
	case "true", "false":
		return place(&syntax.Literal{Type: syntax.LitBool, Raw: text}, n)
	case "null":
		return place(&syntax.Literal{Type: syntax.LitNull, Raw: text}, n)
	}

	return place(&syntax.ConstFetch{Name: place(&syntax.Name{Text: text}, n)}, n)
}

// operator returns the text of the first anonymous child, or of the
// operator field when the grammar names it.
func (l *lowerer) operator(n *sitter.Node) string {
	if op := n.ChildByFieldName("operator"); op != nil {
		return l.text(op)
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); !c.IsNamed() {
			return l.text(c)
		}
	}

	return ""
}

func (l *lowerer) lowerUnary(n *sitter.Node) syntax.Node {
	operand := n.ChildByFieldName("argument")
	if operand == nil {
		operand = firstNamed(n)
	}

	return place(&syntax.Unary{Op: l.operator(n), Operand: l.lower(operand)}, n)
}

func (l *lowerer) lowerNew(n *sitter.Node) syntax.Node {
	expr := place(&syntax.New{}, n)

	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)

		switch c.Type() {
		case "anonymous_class":
			expr.Class = l.lowerClass(c, syntax.FlavorClass, true)

			if args := childOfType(c, "arguments"); args != nil {
				expr.Args = l.lowerList(args)
			}
		case "declaration_list":
			// older grammars inline the anonymous class into the expression
			expr.Class = l.lowerClass(n, syntax.FlavorClass, true)
		case "arguments":
			expr.Args = l.lowerList(c)
		case "name", "qualified_name":
			if expr.Class == nil {
				expr.Class = l.className(c)
			}
		case "base_clause", "class_interface_clause", "attribute_list", "comment":
		default:
			if expr.Class == nil {
				expr.Class = l.lower(c)
			}
		}
	}

	return expr
}

func childOfType(n *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() == typ {
			return c
		}
	}

	return nil
}

func (l *lowerer) lowerCall(n *sitter.Node) syntax.Node {
	fn := n.ChildByFieldName("function")

	var args []syntax.Node
	if a := n.ChildByFieldName("arguments"); a != nil {
		args = l.lowerList(a)
	}

	if fn != nil && (fn.Type() == "name" || fn.Type() == "qualified_name") {
		name := l.text(fn)

		// exit(...) and die(...) parse as calls in newer grammars
		if lower := strings.ToLower(name); lower == "exit" || lower == "die" {
			exit := place(&syntax.Exit{Die: lower == "die"}, n)
			if len(args) > 0 {
				if arg, ok := args[0].(*syntax.Arg); ok {
					exit.Expr = arg.Value
				}
			}

			return exit
		}

		return place(&syntax.FuncCall{Func: place(&syntax.Name{Text: name}, fn), Args: args}, n)
	}

	return place(&syntax.FuncCall{Func: l.lower(fn), Args: args}, n)
}

func (l *lowerer) lowerStaticCall(n *sitter.Node) syntax.Node {
	call := place(&syntax.StaticCall{}, n)

	if scope := n.ChildByFieldName("scope"); scope != nil {
		call.Class = l.className(scope)
	}

	if name := n.ChildByFieldName("name"); name != nil && name.Type() == "name" {
		call.Method = l.text(name)
	}

	if a := n.ChildByFieldName("arguments"); a != nil {
		call.Args = l.lowerList(a)
	}

	return call
}

func (l *lowerer) lowerArg(n *sitter.Node) syntax.Node {
	arg := place(&syntax.Arg{}, n)

	nameNode := n.ChildByFieldName("name")
	if nameNode != nil {
		arg.Name = l.text(nameNode)
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)

		switch {
		case c.Type() == "comment":
		case c.Type() == "variadic_unpacking":
			arg.Unpack = true
			arg.Value = l.lower(firstNamed(c))
		case nameNode != nil && c.StartByte() == nameNode.StartByte() && c.EndByte() == nameNode.EndByte():
		default:
			arg.Value = l.lower(c)
		}
	}

	if strings.HasPrefix(strings.TrimSpace(l.text(n)), "...") {
		arg.Unpack = true
	}

	return arg
}

func (l *lowerer) lowerArrow(n *sitter.Node) syntax.Node {
	arrow := place(&syntax.ArrowFunction{}, n)

	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)

		if c.Type() == "static_modifier" || (!c.IsNamed() && l.text(c) == "static") {
			arrow.Static = true

			end := int(c.EndByte())
			for end < len(l.src) && (l.src[end] == ' ' || l.src[end] == '\t') {
				end++
			}

			arrow.StaticSpan = syntax.Span{Start: int(c.StartByte()), End: end}

			break
		}
	}

	if params := n.ChildByFieldName("parameters"); params != nil {
		arrow.Params = l.lowerList(params)
	}

	arrow.Body = l.lower(n.ChildByFieldName("body"))

	return arrow
}
