package adapter

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mouse-blink/gorector/internal/syntax"
)

// lowerer converts a tree-sitter PHP tree into syntax nodes. It tracks the
// current namespace and the class imports in effect so class-like names can
// be resolved while lowering.
type lowerer struct {
	src  []byte
	ns   string
	uses map[string]string // lowercased alias -> fully qualified name
}

func newLowerer(src []byte) *lowerer {
	return &lowerer{src: src, uses: map[string]string{}}
}

func (l *lowerer) text(n *sitter.Node) string {
	return n.Content(l.src)
}

func spanOf(n *sitter.Node) syntax.Span {
	return syntax.Span{Start: int(n.StartByte()), End: int(n.EndByte())}
}

func place[T syntax.Node](node T, n *sitter.Node) T {
	node.NodeMeta().SetSpan(spanOf(n))

	return node
}

// lowerList lowers the named children of a list-like node. Doc comments
// attach to the node that follows them.
func (l *lowerer) lowerList(n *sitter.Node) []syntax.Node {
	var (
		out     []syntax.Node
		pending *sitter.Node
	)

	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)

		switch c.Type() {
		case "comment":
			if syntax.IsDocComment(l.text(c)) {
				pending = c
			} else {
				pending = nil
			}

			continue
		case "php_tag", "text_interpolation", "text":
			pending = nil

			continue
		case "namespace_definition":
			out = append(out, l.lowerNamespace(c)...)
			pending = nil

			continue
		case "namespace_use_declaration":
			l.registerUses(c)
			pending = nil

			continue
		}

		node := l.lower(c)
		if node == nil {
			continue
		}

		if pending != nil && l.onlySpaceBetween(pending, c) {
			attachDoc(node, syntax.ParseDocBlock(l.text(pending)), int(pending.StartByte()))
		}

		pending = nil

		out = append(out, node)
	}

	return out
}

func (l *lowerer) onlySpaceBetween(a, b *sitter.Node) bool {
	return strings.TrimSpace(string(l.src[a.EndByte():b.StartByte()])) == ""
}

// attachDoc gives doc to node and to every descendant starting at the same
// offset, so a tag in front of a statement also covers its leading
// expression.
func attachDoc(node syntax.Node, doc *syntax.DocBlock, lead int) {
	start := node.NodeMeta().Span().Start
	node.NodeMeta().SetLeadStart(lead)

	syntax.Inspect(node, func(n syntax.Node) bool {
		m := n.NodeMeta()
		if m.Span().Start != start {
			return false
		}

		m.SetDoc(doc)

		return true
	})
}

func (l *lowerer) lowerNamespace(n *sitter.Node) []syntax.Node {
	name := ""
	if nn := n.ChildByFieldName("name"); nn != nil {
		name = l.text(nn)
	}

	body := n.ChildByFieldName("body")
	if body == nil {
		// unbraced form: applies to the rest of the file
		l.ns = name
		l.uses = map[string]string{}

		return nil
	}

	saved, savedUses := l.ns, l.uses
	l.ns, l.uses = name, map[string]string{}

	block := place(&syntax.Other{Type: n.Type(), Children: l.lowerList(body)}, n)

	l.ns, l.uses = saved, savedUses

	return []syntax.Node{block}
}

func (l *lowerer) registerUses(n *sitter.Node) {
	prefix := ""

	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)

		switch c.Type() {
		case "function", "const":
			// only class imports take part in name resolution
			return
		case "namespace_name":
			prefix = l.text(c)
		case "namespace_use_clause":
			l.registerUseClause(c, prefix)
		case "namespace_use_group":
			for j := 0; j < int(c.NamedChildCount()); j++ {
				g := c.NamedChild(j)
				if g.Type() == "namespace_use_clause" || g.Type() == "namespace_use_group_clause" {
					l.registerUseClause(g, prefix)
				}
			}
		}
	}
}

func (l *lowerer) registerUseClause(c *sitter.Node, prefix string) {
	var target, alias string

	if a := c.ChildByFieldName("alias"); a != nil {
		alias = l.text(a)
	}

	for i := 0; i < int(c.NamedChildCount()); i++ {
		k := c.NamedChild(i)

		switch k.Type() {
		case "qualified_name", "namespace_name":
			if target == "" {
				target = l.text(k)
			}
		case "name":
			switch {
			case target == "":
				target = l.text(k)
			case alias == "":
				alias = l.text(k)
			}
		case "namespace_aliasing_clause":
			if k.NamedChildCount() > 0 {
				alias = l.text(k.NamedChild(0))
			}
		}
	}

	if target == "" {
		return
	}

	fq := strings.TrimPrefix(target, `\`)
	if prefix != "" {
		fq = strings.TrimSuffix(strings.TrimPrefix(prefix, `\`), `\`) + `\` + fq
	}

	if alias == "" {
		alias = fq[strings.LastIndex(fq, `\`)+1:]
	}

	l.uses[strings.ToLower(alias)] = fq
}

// resolveClass returns the fully qualified form of a class-like name, or ""
// for the context-dependent self, static and parent.
func (l *lowerer) resolveClass(name string) string {
	if strings.HasPrefix(name, `\`) {
		return strings.TrimPrefix(name, `\`)
	}

	switch strings.ToLower(name) {
	case "self", "static", "parent":
		return ""
	}

	if rest, ok := strings.CutPrefix(name, `namespace\`); ok {
		return l.qualify(rest)
	}

	head, tail, qualified := strings.Cut(name, `\`)
	if fq, ok := l.uses[strings.ToLower(head)]; ok {
		if qualified {
			return fq + `\` + tail
		}

		return fq
	}

	return l.qualify(name)
}

func (l *lowerer) qualify(name string) string {
	if l.ns == "" {
		return name
	}

	return l.ns + `\` + name
}

func (l *lowerer) className(n *sitter.Node) *syntax.Name {
	text := l.text(n)

	return place(&syntax.Name{Text: text, Resolved: l.resolveClass(text)}, n)
}

// lower converts one node. Unmodeled constructs become Other nodes that keep
// their lowered children.
func (l *lowerer) lower(n *sitter.Node) syntax.Node {
	if n == nil {
		return nil
	}

	switch n.Type() {
	case "comment":
		return nil
	case "class_declaration":
		return l.lowerClass(n, syntax.FlavorClass, false)
	case "interface_declaration":
		return l.lowerClass(n, syntax.FlavorInterface, false)
	case "trait_declaration":
		return l.lowerClass(n, syntax.FlavorTrait, false)
	case "enum_declaration":
		return l.lowerClass(n, syntax.FlavorEnum, false)
	case "property_declaration":
		return l.lowerProperty(n)
	case "method_declaration":
		return l.lowerMethod(n)
	case "expression_statement":
		return l.lowerExprStmt(n)
	case "echo_statement":
		return l.lowerEcho(n)
	case "exit_statement":
		exit := l.lowerExit(n)

		return place(&syntax.ExprStmt{Expr: exit}, n)
	case "exit_expression":
		return l.lowerExit(n)
	}

	if expr := l.lowerExpr(n); expr != nil {
		return expr
	}

	return l.other(n)
}

func (l *lowerer) other(n *sitter.Node) syntax.Node {
	return place(&syntax.Other{Type: n.Type(), Children: l.lowerList(n)}, n)
}

func (l *lowerer) lowerExprStmt(n *sitter.Node) syntax.Node {
	var expr syntax.Node

	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() != "comment" {
			expr = l.lower(c)

			break
		}
	}

	return place(&syntax.ExprStmt{Expr: expr}, n)
}

func (l *lowerer) lowerEcho(n *sitter.Node) syntax.Node {
	echo := place(&syntax.Echo{}, n)

	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)

		switch c.Type() {
		case "comment":
		case "sequence_expression":
			echo.Exprs = append(echo.Exprs, l.flattenSequence(c)...)
		default:
			echo.Exprs = append(echo.Exprs, l.lower(c))
		}
	}

	return echo
}

func (l *lowerer) flattenSequence(n *sitter.Node) []syntax.Node {
	var out []syntax.Node

	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() == "sequence_expression" {
			out = append(out, l.flattenSequence(c)...)

			continue
		}

		out = append(out, l.lower(c))
	}

	return out
}

func (l *lowerer) lowerExit(n *sitter.Node) *syntax.Exit {
	exit := place(&syntax.Exit{}, n)
	exit.Die = strings.HasPrefix(strings.ToLower(l.text(n)), "die")

	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() != "comment" {
			exit.Expr = l.lower(c)

			break
		}
	}

	return exit
}
