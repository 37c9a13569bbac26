package adapter

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mouse-blink/gorector/internal/syntax"
)

// lowerClass handles named declarations and anonymous classes. For the
// latter n is either an anonymous_class node or the object creation
// expression holding the class parts directly.
func (l *lowerer) lowerClass(n *sitter.Node, flavor syntax.ClassFlavor, anonymous bool) *syntax.ClassDecl {
	class := place(&syntax.ClassDecl{Flavor: flavor, Namespace: l.ns}, n)

	if !anonymous {
		if nn := n.ChildByFieldName("name"); nn != nil {
			text := l.text(nn)
			class.Name = place(&syntax.Name{Text: text, Resolved: l.qualify(text)}, nn)
		}
	}

	var body *sitter.Node

	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)

		switch c.Type() {
		case "attribute_list":
			class.Attributes = append(class.Attributes, l.attributeNames(c)...)
		case "abstract_modifier", "abstract":
			class.Abstract = true
		case "final_modifier", "final":
			class.Final = true
		case "readonly_modifier", "readonly":
			class.Readonly = true
		case "base_clause":
			class.Extends = append(class.Extends, l.namesIn(c)...)
		case "class_interface_clause":
			class.Implements = append(class.Implements, l.namesIn(c)...)
			class.ImplementsSpan = spanOf(c)
		case "declaration_list", "enum_declaration_list":
			body = c
		}
	}

	if body == nil {
		return class
	}

	class.BodySpan = spanOf(body)
	class.HeaderEnd = l.trimLeft(int(body.StartByte()))
	class.Members = l.lowerMembers(body)

	if !class.Readonly {
		return class
	}

	for _, p := range class.Properties() {
		p.Readonly = true
	}

	return class
}

// trimLeft moves offset back over whitespace.
func (l *lowerer) trimLeft(offset int) int {
	for offset > 0 && strings.ContainsRune(" \t\r\n", rune(l.src[offset-1])) {
		offset--
	}

	return offset
}

func (l *lowerer) namesIn(n *sitter.Node) []*syntax.Name {
	var out []*syntax.Name

	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() == "name" || c.Type() == "qualified_name" {
			out = append(out, l.className(c))
		}
	}

	return out
}

func (l *lowerer) attributeNames(n *sitter.Node) []*syntax.Name {
	var out []*syntax.Name

	var walk func(*sitter.Node)

	walk = func(c *sitter.Node) {
		if c.Type() == "attribute" {
			for i := 0; i < int(c.NamedChildCount()); i++ {
				k := c.NamedChild(i)
				if k.Type() == "name" || k.Type() == "qualified_name" {
					out = append(out, l.className(k))

					return
				}
			}

			return
		}

		for i := 0; i < int(c.NamedChildCount()); i++ {
			walk(c.NamedChild(i))
		}
	}

	walk(n)

	return out
}

// lowerMembers lowers a class body. Property declarations with several
// elements yield one Property each, all spanning the declaration.
func (l *lowerer) lowerMembers(body *sitter.Node) []syntax.Node {
	var out []syntax.Node

	for _, node := range l.lowerList(body) {
		if group, ok := node.(*propertyGroup); ok {
			for _, p := range group.props {
				if doc := group.Doc(); doc != nil {
					p.SetDoc(doc)
					p.SetLeadStart(group.LeadStart())
				}

				out = append(out, p)
			}

			continue
		}

		out = append(out, node)
	}

	return out
}

// propertyGroup is a lowering-time carrier for multi-element property
// declarations; it never survives into the final tree.
type propertyGroup struct {
	syntax.Other
	props []*syntax.Property
}

func (l *lowerer) lowerProperty(n *sitter.Node) syntax.Node {
	var (
		vis      = syntax.Public
		static   bool
		readonly bool
	)

	group := &propertyGroup{}
	group.SetSpan(spanOf(n))

	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)

		switch c.Type() {
		case "visibility_modifier":
			vis = visibilityOf(l.text(c))
		case "static_modifier":
			static = true
		case "readonly_modifier":
			readonly = true
		case "property_element":
			p := place(&syntax.Property{Name: l.propertyName(c), Default: l.propertyDefault(c)}, n)
			group.props = append(group.props, p)
		}
	}

	for _, p := range group.props {
		p.Visibility, p.Static, p.Readonly = vis, static, readonly
	}

	if len(group.props) == 1 {
		return group.props[0]
	}

	return group
}

func (l *lowerer) propertyName(el *sitter.Node) string {
	if nn := el.ChildByFieldName("name"); nn != nil {
		return strings.TrimPrefix(l.text(nn), "$")
	}

	for i := 0; i < int(el.NamedChildCount()); i++ {
		if c := el.NamedChild(i); c.Type() == "variable_name" {
			return strings.TrimPrefix(l.text(c), "$")
		}
	}

	return ""
}

func (l *lowerer) propertyDefault(el *sitter.Node) syntax.Node {
	if d := el.ChildByFieldName("default_value"); d != nil {
		return l.lower(d)
	}

	for i := 0; i < int(el.NamedChildCount()); i++ {
		c := el.NamedChild(i)
		if c.Type() == "property_initializer" && c.NamedChildCount() > 0 {
			return l.lower(c.NamedChild(0))
		}
	}

	if el.NamedChildCount() > 1 {
		return l.lower(el.NamedChild(int(el.NamedChildCount()) - 1))
	}

	return nil
}

func visibilityOf(text string) syntax.Visibility {
	switch strings.ToLower(text) {
	case "protected":
		return syntax.Protected
	case "private":
		return syntax.Private
	default:
		return syntax.Public
	}
}

func (l *lowerer) lowerMethod(n *sitter.Node) *syntax.Method {
	method := place(&syntax.Method{Visibility: syntax.Public}, n)

	if nn := n.ChildByFieldName("name"); nn != nil {
		method.Name = l.text(nn)
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)

		switch c.Type() {
		case "visibility_modifier":
			method.Visibility = visibilityOf(l.text(c))
		case "static_modifier":
			method.Static = true
		case "abstract_modifier":
			method.Abstract = true
		}
	}

	if params := n.ChildByFieldName("parameters"); params != nil {
		method.Params = l.lowerList(params)
	}

	if body := n.ChildByFieldName("body"); body != nil {
		method.HasBody = true
		method.BodySpan = spanOf(body)
		method.Stmts = l.lowerList(body)
	}

	return method
}
