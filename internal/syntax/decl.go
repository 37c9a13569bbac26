package syntax

import "strings"

// File is the root of a lowered source file.
type File struct {
	Meta
	Path  string
	Stmts []Node
}

func (n *File) Kind() Kind { return KindFile }

func (n *File) edges() []edge { return []edge{many(&n.Stmts)} }

// Visibility of a class member.
type Visibility int

// Member visibilities.
const (
	Public Visibility = iota
	Protected
	Private
)

func (v Visibility) String() string {
	switch v {
	case Protected:
		return "protected"
	case Private:
		return "private"
	default:
		return "public"
	}
}

// ClassFlavor tells classes apart from the other class-like declarations.
type ClassFlavor int

// Class-like flavors.
const (
	FlavorClass ClassFlavor = iota
	FlavorInterface
	FlavorTrait
	FlavorEnum
)

// Name is an identifier as written in source. Resolved holds the fully
// qualified form for class-like and constant names, without a leading
// backslash.
type Name struct {
	Meta
	Text     string
	Resolved string
}

// NewName returns a synthesized name.
func NewName(text string) *Name {
	return &Name{Text: text, Resolved: strings.TrimPrefix(text, `\`)}
}

func (n *Name) Kind() Kind { return KindName }

func (n *Name) edges() []edge { return nil }

// FullName returns Resolved when known, Text otherwise.
func (n *Name) FullName() string {
	if n.Resolved != "" {
		return n.Resolved
	}

	return strings.TrimPrefix(n.Text, `\`)
}

// ClassDecl is a class, interface, trait or enum declaration. Anonymous
// classes have a nil Name.
type ClassDecl struct {
	Meta
	Flavor     ClassFlavor
	Name       *Name
	Namespace  string
	Abstract   bool
	Final      bool
	Readonly   bool
	Extends    []*Name
	Implements []*Name
	Attributes []*Name
	Members    []Node

	// HeaderEnd is the offset right after the name or extends clause.
	HeaderEnd int
	// ImplementsSpan covers "implements A, B" when present.
	ImplementsSpan Span
	// BodySpan covers the braces of the member list.
	BodySpan Span
}

// Kind maps the flavor onto the closed kind set.
func (n *ClassDecl) Kind() Kind {
	switch n.Flavor {
	case FlavorInterface:
		return KindInterface
	case FlavorTrait:
		return KindTrait
	case FlavorEnum:
		return KindEnum
	default:
		return KindClass
	}
}

func (n *ClassDecl) edges() []edge { return []edge{many(&n.Members)} }

// IsAnonymous reports whether the class has no name.
func (n *ClassDecl) IsAnonymous() bool {
	return n.Name == nil || n.Name.Text == ""
}

// ShortName is the declared name without namespace.
func (n *ClassDecl) ShortName() string {
	if n.IsAnonymous() {
		return ""
	}

	return n.Name.Text
}

// FQName is the namespace-qualified class name.
func (n *ClassDecl) FQName() string {
	if n.IsAnonymous() {
		return ""
	}

	if n.Name.Resolved != "" {
		return n.Name.Resolved
	}

	if n.Namespace == "" {
		return n.Name.Text
	}

	return n.Namespace + `\` + n.Name.Text
}

// Properties returns the property members in declaration order.
func (n *ClassDecl) Properties() []*Property {
	var out []*Property

	for _, m := range n.Members {
		if p, ok := m.(*Property); ok {
			out = append(out, p)
		}
	}

	return out
}

// Methods returns the method members in declaration order.
func (n *ClassDecl) Methods() []*Method {
	var out []*Method

	for _, m := range n.Members {
		if fn, ok := m.(*Method); ok {
			out = append(out, fn)
		}
	}

	return out
}

// Method finds a method by name, case-insensitively.
func (n *ClassDecl) Method(name string) *Method {
	for _, m := range n.Methods() {
		if strings.EqualFold(m.Name, name) {
			return m
		}
	}

	return nil
}

// InsertFirstMethod places m before the first existing method, or at the end
// of the member list when the class has none.
func (n *ClassDecl) InsertFirstMethod(m *Method) {
	at := len(n.Members)

	for i, member := range n.Members {
		if _, ok := member.(*Method); ok {
			at = i

			break
		}
	}

	n.Members = append(n.Members, nil)
	copy(n.Members[at+1:], n.Members[at:])
	n.Members[at] = m
	n.MarkDirty()
}

// AddInterface appends a fully qualified interface to the implements list.
func (n *ClassDecl) AddInterface(fqName string) {
	fq := strings.TrimPrefix(fqName, `\`)
	n.Implements = append(n.Implements, &Name{Text: `\` + fq, Resolved: fq})
	n.MarkDirty()
}

// Property is a single property element. A declaration with several
// elements is lowered into one Property per element sharing modifiers.
type Property struct {
	Meta
	Name       string
	Visibility Visibility
	Static     bool
	Readonly   bool
	Default    Node
}

func (n *Property) Kind() Kind { return KindProperty }

func (n *Property) edges() []edge {
	if n.Default == nil {
		return nil
	}

	return []edge{one(&n.Default)}
}

// Method is a class method. HasBody is false for abstract and interface
// methods.
type Method struct {
	Meta
	Name       string
	Visibility Visibility
	Static     bool
	Abstract   bool
	Params     []Node
	HasBody    bool
	Stmts      []Node
	// BodySpan covers the braces of the body.
	BodySpan Span
}

func (n *Method) Kind() Kind { return KindMethod }

func (n *Method) edges() []edge {
	return []edge{many(&n.Params), many(&n.Stmts)}
}

// IsConstructor reports whether the method is __construct.
func (n *Method) IsConstructor() bool {
	return strings.EqualFold(n.Name, "__construct")
}

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	Meta
	Expr Node
}

func (n *ExprStmt) Kind() Kind { return KindExprStmt }

func (n *ExprStmt) edges() []edge { return []edge{one(&n.Expr)} }

// Echo is an echo statement.
type Echo struct {
	Meta
	Exprs []Node
}

func (n *Echo) Kind() Kind { return KindEcho }

func (n *Echo) edges() []edge { return []edge{many(&n.Exprs)} }

// Other is any construct without a dedicated kind. Type is the source
// grammar's node type.
type Other struct {
	Meta
	Type     string
	Children []Node
}

func (n *Other) Kind() Kind { return KindOther }

func (n *Other) edges() []edge { return []edge{many(&n.Children)} }
