// Package syntax defines the lowered PHP syntax tree that rules inspect and
// rewrite. The set of node kinds is closed; constructs the rules never look at
// are kept as Other nodes so traversals still reach their children.
package syntax

// Kind identifies the concrete type of a Node.
type Kind int

// Node kinds.
const (
	KindOther Kind = iota
	KindFile
	KindClass
	KindInterface
	KindTrait
	KindEnum
	KindProperty
	KindMethod
	KindExprStmt
	KindEcho
	KindExit
	KindAssign
	KindPropertyFetch
	KindStaticPropertyFetch
	KindArrayDimFetch
	KindVariable
	KindName
	KindArray
	KindLiteral
	KindConstFetch
	KindClassConstFetch
	KindUnary
	KindBinary
	KindNew
	KindFuncCall
	KindStaticCall
	KindArg
	KindInclude
	KindArrowFunction
)

var kindNames = map[Kind]string{
	KindOther:               "other",
	KindFile:                "file",
	KindClass:               "class",
	KindInterface:           "interface",
	KindTrait:               "trait",
	KindEnum:                "enum",
	KindProperty:            "property",
	KindMethod:              "method",
	KindExprStmt:            "expression_statement",
	KindEcho:                "echo",
	KindExit:                "exit",
	KindAssign:              "assign",
	KindPropertyFetch:       "property_fetch",
	KindStaticPropertyFetch: "static_property_fetch",
	KindArrayDimFetch:       "array_dim_fetch",
	KindVariable:            "variable",
	KindName:                "name",
	KindArray:               "array",
	KindLiteral:             "literal",
	KindConstFetch:          "const_fetch",
	KindClassConstFetch:     "class_const_fetch",
	KindUnary:               "unary",
	KindBinary:              "binary",
	KindNew:                 "new",
	KindFuncCall:            "func_call",
	KindStaticCall:          "static_call",
	KindArg:                 "arg",
	KindInclude:             "include",
	KindArrowFunction:       "arrow_function",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return "unknown"
}

// Span is a half-open byte range [Start, End) in the original source.
// Synthesized nodes have the zero Span.
type Span struct {
	Start int
	End   int
}

// Valid reports whether the span covers original source text.
func (s Span) Valid() bool {
	return s.End > s.Start
}

// Node is implemented by every tree element.
type Node interface {
	Kind() Kind
	NodeMeta() *Meta
	edges() []edge
}

// Meta carries the position and change bookkeeping shared by all nodes.
type Meta struct {
	span     Span
	lead     int
	hasLead  bool
	doc      *DocBlock
	replaced Span
	dirty    bool
	removed  []Span
}

// NodeMeta returns the receiver, giving embedding structs the Node method.
func (m *Meta) NodeMeta() *Meta { return m }

// Span returns the node's source range.
func (m *Meta) Span() Span { return m.span }

// SetSpan records the node's source range.
func (m *Meta) SetSpan(s Span) { m.span = s }

// LeadStart is where the node begins once its doc comment is included.
func (m *Meta) LeadStart() int {
	if m.hasLead && m.lead < m.span.Start {
		return m.lead
	}

	return m.span.Start
}

// SetLeadStart records the offset of a leading doc comment.
func (m *Meta) SetLeadStart(offset int) {
	m.lead = offset
	m.hasLead = true
}

// Doc returns the attached doc block, or nil.
func (m *Meta) Doc() *DocBlock { return m.doc }

// SetDoc attaches a parsed doc block.
func (m *Meta) SetDoc(d *DocBlock) { m.doc = d }

// Dirty reports whether the node was changed in place.
func (m *Meta) Dirty() bool { return m.dirty }

// MarkDirty flags an in-place change.
func (m *Meta) MarkDirty() { m.dirty = true }

// Replaced is the source range of the node this one took the place of.
func (m *Meta) Replaced() Span { return m.replaced }

// Removed lists the source ranges of children deleted from this node.
func (m *Meta) Removed() []Span { return m.removed }

// Original reports whether the node was lowered from source text.
func (m *Meta) Original() bool { return m.span.Valid() }

// edge is an addressable child slot: either a single node or a list.
type edge struct {
	one  *Node
	many *[]Node
}

func one(n *Node) edge { return edge{one: n} }

func many(ns *[]Node) edge { return edge{many: ns} }
