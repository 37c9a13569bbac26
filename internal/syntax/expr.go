package syntax

// Exit is an exit or die expression. Expr is the optional status argument.
type Exit struct {
	Meta
	Expr Node
	Die  bool
}

func (n *Exit) Kind() Kind { return KindExit }

func (n *Exit) edges() []edge { return []edge{one(&n.Expr)} }

// Assign is a plain assignment. Compound assignments are lowered as Other.
type Assign struct {
	Meta
	Var   Node
	Expr  Node
	ByRef bool
}

func (n *Assign) Kind() Kind { return KindAssign }

func (n *Assign) edges() []edge { return []edge{one(&n.Var), one(&n.Expr)} }

// PropertyFetch is $object->name. Name is empty for dynamic names.
type PropertyFetch struct {
	Meta
	Object   Node
	Name     string
	Nullsafe bool
}

func (n *PropertyFetch) Kind() Kind { return KindPropertyFetch }

func (n *PropertyFetch) edges() []edge { return []edge{one(&n.Object)} }

// StaticPropertyFetch is Class::$name.
type StaticPropertyFetch struct {
	Meta
	Class *Name
	Name  string
}

func (n *StaticPropertyFetch) Kind() Kind { return KindStaticPropertyFetch }

func (n *StaticPropertyFetch) edges() []edge { return nil }

// ArrayDimFetch is $var[dim]. Dim is nil for appends ($var[] = ...).
type ArrayDimFetch struct {
	Meta
	Var Node
	Dim Node
}

func (n *ArrayDimFetch) Kind() Kind { return KindArrayDimFetch }

func (n *ArrayDimFetch) edges() []edge { return []edge{one(&n.Var), one(&n.Dim)} }

// Variable is $name. Name is empty for variable variables.
type Variable struct {
	Meta
	Name string
}

func (n *Variable) Kind() Kind { return KindVariable }

func (n *Variable) edges() []edge { return nil }

// Rename changes the variable name in place.
func (n *Variable) Rename(name string) {
	n.Name = name
	n.MarkDirty()
}

// IsThis reports whether the node is the $this variable.
func IsThis(n Node) bool {
	v, ok := n.(*Variable)

	return ok && v.Name == "this"
}

// Array is an array literal, either [] or array().
type Array struct {
	Meta
	Items []Node
}

func (n *Array) Kind() Kind { return KindArray }

func (n *Array) edges() []edge { return []edge{many(&n.Items)} }

// LiteralType classifies scalar literals.
type LiteralType int

// Literal types.
const (
	LitNull LiteralType = iota
	LitBool
	LitInt
	LitFloat
	LitString
)

// Literal is a scalar or null literal. Raw is the source text.
type Literal struct {
	Meta
	Type LiteralType
	Raw  string
}

func (n *Literal) Kind() Kind { return KindLiteral }

func (n *Literal) edges() []edge { return nil }

// ConstFetch is a global constant reference. true, false and null are
// lowered as Literal instead.
type ConstFetch struct {
	Meta
	Name *Name
}

func (n *ConstFetch) Kind() Kind { return KindConstFetch }

func (n *ConstFetch) edges() []edge { return nil }

// ClassConstFetch is Class::NAME.
type ClassConstFetch struct {
	Meta
	Class *Name
	Name  string
}

func (n *ClassConstFetch) Kind() Kind { return KindClassConstFetch }

func (n *ClassConstFetch) edges() []edge { return nil }

// Unary is a prefix operator applied to an operand.
type Unary struct {
	Meta
	Op      string
	Operand Node
}

func (n *Unary) Kind() Kind { return KindUnary }

func (n *Unary) edges() []edge { return []edge{one(&n.Operand)} }

// Binary is a binary operator expression.
type Binary struct {
	Meta
	Op    string
	Left  Node
	Right Node
}

func (n *Binary) Kind() Kind { return KindBinary }

func (n *Binary) edges() []edge { return []edge{one(&n.Left), one(&n.Right)} }

// New is an object creation. Class is a *Name, an anonymous *ClassDecl or
// an arbitrary expression.
type New struct {
	Meta
	Class Node
	Args  []Node
}

func (n *New) Kind() Kind { return KindNew }

func (n *New) edges() []edge { return []edge{one(&n.Class), many(&n.Args)} }

// FuncCall is a function call. Func is a *Name for direct calls.
type FuncCall struct {
	Meta
	Func Node
	Args []Node
}

func (n *FuncCall) Kind() Kind { return KindFuncCall }

func (n *FuncCall) edges() []edge { return []edge{one(&n.Func), many(&n.Args)} }

// FuncName returns the called name for direct calls, or "".
func (n *FuncCall) FuncName() string {
	if name, ok := n.Func.(*Name); ok {
		return name.Text
	}

	return ""
}

// StaticCall is Class::Method(...). Method is "" for dynamic names.
type StaticCall struct {
	Meta
	Class  *Name
	Method string
	Args   []Node
}

func (n *StaticCall) Kind() Kind { return KindStaticCall }

func (n *StaticCall) edges() []edge { return []edge{many(&n.Args)} }

// Arg is a call argument. Name is set for named arguments.
type Arg struct {
	Meta
	Name   string
	Value  Node
	Unpack bool
}

func (n *Arg) Kind() Kind { return KindArg }

func (n *Arg) edges() []edge { return []edge{one(&n.Value)} }

// IncludeType is the keyword of an include expression.
type IncludeType int

// Include keywords.
const (
	IncludePlain IncludeType = iota
	IncludeOnce
	RequirePlain
	RequireOnce
)

func (t IncludeType) String() string {
	switch t {
	case IncludeOnce:
		return "include_once"
	case RequirePlain:
		return "require"
	case RequireOnce:
		return "require_once"
	default:
		return "include"
	}
}

// Include is an include or require expression.
type Include struct {
	Meta
	Type IncludeType
	Expr Node
}

func (n *Include) Kind() Kind { return KindInclude }

func (n *Include) edges() []edge { return []edge{one(&n.Expr)} }

// ArrowFunction is fn(...) => expr. StaticSpan covers the static keyword
// and the whitespace after it.
type ArrowFunction struct {
	Meta
	Static     bool
	StaticSpan Span
	Params     []Node
	Body       Node
}

func (n *ArrowFunction) Kind() Kind { return KindArrowFunction }

func (n *ArrowFunction) edges() []edge { return []edge{many(&n.Params), one(&n.Body)} }

// DropStatic clears the static modifier in place.
func (n *ArrowFunction) DropStatic() {
	n.Static = false
	n.MarkDirty()
}
