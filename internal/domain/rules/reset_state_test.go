package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerr "github.com/mouse-blink/gorector/internal/errors"
	"github.com/mouse-blink/gorector/internal/syntax"
)

const marker = `App\Contract\ResetInterface`

func newResetRule(t *testing.T, mutate func(*ResetStateOptions)) *ResetStateChecker {
	t.Helper()

	opts := ResetStateOptions{MarkerInterfaceName: marker, ResetMethodName: "reset"}
	if mutate != nil {
		mutate(&opts)
	}

	r, err := NewResetStateChecker(opts)
	require.NoError(t, err)

	return r
}

// cacheClass is C with private array $cache = [] written in load().
func cacheClass() (*syntax.ClassDecl, *syntax.Property) {
	cache := prop("cache", syntax.Private, newArray())
	c := class("C",
		cache,
		method("load", assign(thisProp("cache"), newArray(lit(syntax.LitInt, "1")))),
	)

	return c, cache
}

func resetAssignment(t *testing.T, stmt syntax.Node) *syntax.Assign {
	t.Helper()

	es, ok := stmt.(*syntax.ExprStmt)
	require.True(t, ok)

	a, ok := es.Expr.(*syntax.Assign)
	require.True(t, ok)

	return a
}

func TestNewResetStateChecker(t *testing.T) {
	tests := []struct {
		name   string
		opts   ResetStateOptions
		option string
	}{
		{name: "missing marker", opts: ResetStateOptions{ResetMethodName: "reset"}, option: "markerInterfaceName"},
		{name: "missing method", opts: ResetStateOptions{MarkerInterfaceName: marker}, option: "resetMethodName"},
		{name: "blank marker", opts: ResetStateOptions{MarkerInterfaceName: "  ", ResetMethodName: "reset"}, option: "markerInterfaceName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewResetStateChecker(tt.opts)
			require.Error(t, err)
			assert.True(t, rerr.IsCode(err, rerr.CodeConfig))
			assert.Contains(t, err.Error(), tt.option)
		})
	}
}

func TestResetStateAddsMethodAndMarker(t *testing.T) {
	r := newResetRule(t, nil)
	c, cache := cacheClass()

	out := r.Refactor(Scope{}, c)
	require.True(t, out.Changed())
	assert.Same(t, c, out.Node)
	assert.True(t, c.Dirty())

	methods := c.Methods()
	require.Len(t, methods, 2)
	assert.Equal(t, "reset", methods[0].Name)
	assert.Equal(t, syntax.Public, methods[0].Visibility)
	require.Len(t, methods[0].Stmts, 1)

	a := resetAssignment(t, methods[0].Stmts[0])
	target, ok := a.Var.(*syntax.PropertyFetch)
	require.True(t, ok)
	assert.True(t, syntax.IsThis(target.Object))
	assert.Equal(t, "cache", target.Name)
	assert.Same(t, cache.Default, a.Expr)

	require.Len(t, c.Implements, 1)
	assert.Equal(t, marker, c.Implements[0].FullName())
	assert.Equal(t, `\`+marker, c.Implements[0].Text)
}

func TestResetStateIsIdempotent(t *testing.T) {
	r := newResetRule(t, nil)
	c, _ := cacheClass()

	require.True(t, r.Refactor(Scope{}, c).Changed())

	out := r.Refactor(Scope{}, c)
	assert.False(t, out.Changed())
	assert.Len(t, c.Methods(), 2)
	assert.Len(t, c.Method("reset").Stmts, 1)
	assert.Len(t, c.Implements, 1)
}

func TestResetStateExtendsExistingResetMethod(t *testing.T) {
	r := newResetRule(t, nil)

	other := assign(thisProp("other"), lit(syntax.LitNull, "null"))
	reset := method("reset", other)
	c := class("C",
		prop("cache", syntax.Private, newArray()),
		prop("other", syntax.Private, lit(syntax.LitNull, "null")),
		reset,
		method("load", assign(thisProp("cache"), newArray(lit(syntax.LitInt, "1")))),
	)
	c.Implements = []*syntax.Name{syntax.NewName(`\` + marker)}

	out := r.Refactor(Scope{}, c)
	require.True(t, out.Changed())

	require.Len(t, reset.Stmts, 2)
	assert.Same(t, other, reset.Stmts[0])
	assert.True(t, reset.Dirty())

	target, ok := resetAssignment(t, reset.Stmts[1]).Var.(*syntax.PropertyFetch)
	require.True(t, ok)
	assert.Equal(t, "cache", target.Name)

	assert.Len(t, c.Implements, 1)
	assert.Len(t, c.Methods(), 2)
}

func TestResetStateMarkerWithoutMethodCreatesIt(t *testing.T) {
	r := newResetRule(t, nil)
	c, _ := cacheClass()

	out := r.Refactor(Scope{Ancestry: fixedAncestry{"C", "App\\Base", marker}}, c)
	require.True(t, out.Changed())

	assert.Equal(t, "reset", c.Methods()[0].Name)
	assert.Empty(t, c.Implements)
}

func TestResetStateSkipsAlreadyResetProperty(t *testing.T) {
	r := newResetRule(t, nil)

	c := class("C",
		prop("cache", syntax.Private, newArray()),
		method("reset", assign(thisProp("cache"), newArray())),
		method("load", assign(thisProp("cache"), newArray(lit(syntax.LitInt, "1")))),
	)
	c.Implements = []*syntax.Name{syntax.NewName(marker)}

	assert.False(t, r.Refactor(Scope{}, c).Changed())
	assert.False(t, c.Dirty())
	assert.Len(t, c.Method("reset").Stmts, 1)
}

func TestResetStateNestedResetDoesNotCount(t *testing.T) {
	r := newResetRule(t, nil)

	nested := &syntax.Other{Type: "if_statement", Children: []syntax.Node{
		assign(thisProp("cache"), newArray()),
	}}
	c := class("C",
		prop("cache", syntax.Private, newArray()),
		method("reset", nested),
		method("load", assign(thisProp("cache"), newArray(lit(syntax.LitInt, "1")))),
	)
	c.Implements = []*syntax.Name{syntax.NewName(marker)}

	require.True(t, r.Refactor(Scope{}, c).Changed())
	assert.Len(t, c.Method("reset").Stmts, 2)
}

func TestResetStateAbstractResetMethod(t *testing.T) {
	r := newResetRule(t, nil)

	c, _ := cacheClass()
	c.Members = append(c.Members, &syntax.Method{Name: "reset", Abstract: true})
	c.Implements = []*syntax.Name{syntax.NewName(marker)}

	assert.False(t, r.Refactor(Scope{}, c).Changed())
	assert.False(t, c.Dirty())
}

func TestResetStateMarkerAbsentIgnoresSameNamedMethod(t *testing.T) {
	r := newResetRule(t, nil)

	c, _ := cacheClass()
	c.Members = append(c.Members, method("reset"))

	require.True(t, r.Refactor(Scope{}, c).Changed())
	assert.Len(t, c.Methods(), 3)
	assert.Len(t, c.Implements, 1)
}

func TestResetStateStaticProperty(t *testing.T) {
	r := newResetRule(t, nil)

	count := prop("count", syntax.Protected, lit(syntax.LitInt, "0"))
	count.Static = true
	c := class("C",
		count,
		method("inc", assign(
			&syntax.StaticPropertyFetch{Class: syntax.NewName("static"), Name: "count"},
			lit(syntax.LitInt, "5"),
		)),
	)

	require.True(t, r.Refactor(Scope{}, c).Changed())

	a := resetAssignment(t, c.Method("reset").Stmts[0])
	target, ok := a.Var.(*syntax.StaticPropertyFetch)
	require.True(t, ok)
	assert.Equal(t, "self", target.Class.Text)
	assert.Equal(t, "count", target.Name)
	assert.Same(t, count.Default, a.Expr)
}

func TestResetStateUnchanged(t *testing.T) {
	load := func(value syntax.Node) *syntax.Method {
		return method("load", assign(thisProp("cache"), value))
	}
	one := lit(syntax.LitInt, "1")

	tests := []struct {
		name  string
		class func() *syntax.ClassDecl
		scope Scope
		opts  func(*ResetStateOptions)
	}{
		{
			name: "object default is never a candidate",
			class: func() *syntax.ClassDecl {
				return class("C",
					prop("cache", syntax.Private, &syntax.New{Class: syntax.NewName("ArrayObject")}),
					load(one),
				)
			},
		},
		{
			name: "non-empty array default",
			class: func() *syntax.ClassDecl {
				return class("C", prop("cache", syntax.Private, newArray(one)), load(one))
			},
		},
		{
			name: "public property",
			class: func() *syntax.ClassDecl {
				return class("C", prop("cache", syntax.Public, newArray()), load(one))
			},
		},
		{
			name: "readonly property",
			class: func() *syntax.ClassDecl {
				p := prop("cache", syntax.Private, newArray())
				p.Readonly = true

				return class("C", p, load(one))
			},
		},
		{
			name: "readonly class",
			class: func() *syntax.ClassDecl {
				c := class("C", prop("cache", syntax.Private, newArray()), load(one))
				c.Readonly = true

				return c
			},
		},
		{
			name: "no default",
			class: func() *syntax.ClassDecl {
				return class("C", prop("cache", syntax.Private, nil), load(one))
			},
		},
		{
			name: "suppressed property",
			class: func() *syntax.ClassDecl {
				p := prop("cache", syntax.Private, newArray())
				suppress(p, ResetStateID)

				return class("C", p, load(one))
			},
		},
		{
			name: "written only in constructor",
			class: func() *syntax.ClassDecl {
				return class("C",
					prop("cache", syntax.Private, newArray()),
					method("__Construct", assign(thisProp("cache"), newArray(one))),
				)
			},
		},
		{
			name: "no candidates",
			class: func() *syntax.ClassDecl {
				return class("C", method("load", assign(&syntax.Variable{Name: "x"}, one)))
			},
		},
		{
			name: "anonymous class",
			class: func() *syntax.ClassDecl {
				c, _ := cacheClass()
				c.Name = nil

				return c
			},
		},
		{
			name: "ignored name suffix",
			class: func() *syntax.ClassDecl {
				c, _ := cacheClass()
				c.Name = syntax.NewName("UserDto")

				return c
			},
			opts: func(o *ResetStateOptions) { o.IgnoreClassNamePrefixes = []string{"Command", "Dto"} },
		},
		{
			name:  "ignored ancestor",
			class: func() *syntax.ClassDecl {
				c, _ := cacheClass()

				return c
			},
			scope: Scope{Ancestry: fixedAncestry{"C", `Symfony\Component\Console\Command\Command`}},
			opts: func(o *ResetStateOptions) {
				o.IgnoreClassNames = []string{`\symfony\component\console\command\command`}
			},
		},
		{
			name: "ignored own name",
			class: func() *syntax.ClassDecl {
				c, _ := cacheClass()
				c.Name = &syntax.Name{Text: "C", Resolved: `App\C`}

				return c
			},
			opts: func(o *ResetStateOptions) { o.IgnoreClassNames = []string{`App\C`} },
		},
		{
			name: "ignored attribute",
			class: func() *syntax.ClassDecl {
				c, _ := cacheClass()
				c.Attributes = []*syntax.Name{{Text: "Immutable", Resolved: `App\Attr\Immutable`}}

				return c
			},
			opts: func(o *ResetStateOptions) { o.IgnoreAttributes = []string{`App\Attr\Immutable`} },
		},
		{
			name: "ignored attribute by short name",
			class: func() *syntax.ClassDecl {
				c, _ := cacheClass()
				c.Attributes = []*syntax.Name{{Text: "Immutable", Resolved: `App\Attr\Immutable`}}

				return c
			},
			opts: func(o *ResetStateOptions) { o.IgnoreAttributes = []string{"Immutable"} },
		},
		{
			name: "suppressed class",
			class: func() *syntax.ClassDecl {
				c, _ := cacheClass()
				suppress(c, "Other "+ResetStateID)

				return c
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newResetRule(t, tt.opts)
			c := tt.class()
			members := len(c.Members)

			out := r.Refactor(tt.scope, c)
			assert.False(t, out.Changed())
			assert.False(t, c.Dirty())
			assert.Len(t, c.Members, members)
			assert.Empty(t, c.Implements)
		})
	}
}

func TestResetStateIgnoresOtherKinds(t *testing.T) {
	r := newResetRule(t, nil)

	assert.False(t, r.Refactor(Scope{}, &syntax.Echo{}).Changed())
	assert.Equal(t, []syntax.Kind{syntax.KindClass}, r.NodeKinds())
}

func TestClassify(t *testing.T) {
	one := lit(syntax.LitInt, "1")

	tests := []struct {
		name string
		node syntax.Node
		want valueClass
	}{
		{name: "empty array", node: newArray(), want: emptyContainer},
		{name: "filled array", node: newArray(one), want: unclassified},
		{name: "null", node: lit(syntax.LitNull, "null"), want: nullableOrScalar},
		{name: "string", node: lit(syntax.LitString, "'a'"), want: nullableOrScalar},
		{name: "constant", node: &syntax.ConstFetch{Name: syntax.NewName("PHP_EOL")}, want: nullableOrScalar},
		{name: "class constant", node: &syntax.ClassConstFetch{Class: syntax.NewName("self"), Name: "X"}, want: nullableOrScalar},
		{name: "negative number", node: &syntax.Unary{Op: "-", Operand: one}, want: nullableOrScalar},
		{name: "arithmetic", node: &syntax.Binary{Op: "*", Left: one, Right: one}, want: nullableOrScalar},
		{name: "binary with array", node: &syntax.Binary{Op: "+", Left: newArray(), Right: newArray()}, want: unclassified},
		{
			name: "parenthesized",
			node: &syntax.Other{Type: "parenthesized_expression", Children: []syntax.Node{one}},
			want: nullableOrScalar,
		},
		{name: "new", node: &syntax.New{Class: syntax.NewName("ArrayObject")}, want: unclassified},
		{name: "call", node: &syntax.FuncCall{Func: syntax.NewName("time")}, want: unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.node))
		})
	}
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		name   string
		target syntax.Node
		want   string
		ok     bool
	}{
		{name: "this property", target: thisProp("p"), want: "p", ok: true},
		{name: "element write", target: &syntax.ArrayDimFetch{Var: thisProp("p"), Dim: lit(syntax.LitString, "'k'")}, want: "p", ok: true},
		{name: "append", target: &syntax.ArrayDimFetch{Var: thisProp("p")}, want: "p", ok: true},
		{
			name:   "two levels deep",
			target: &syntax.ArrayDimFetch{Var: &syntax.ArrayDimFetch{Var: thisProp("p")}},
		},
		{name: "self static", target: &syntax.StaticPropertyFetch{Class: syntax.NewName("self"), Name: "p"}, want: "p", ok: true},
		{name: "other class static", target: &syntax.StaticPropertyFetch{Class: syntax.NewName("Other"), Name: "p"}},
		{name: "other object", target: &syntax.PropertyFetch{Object: &syntax.Variable{Name: "that"}, Name: "p"}},
		{name: "dynamic name", target: thisProp("")},
		{name: "numeric name", target: thisProp("123")},
		{name: "plain variable", target: &syntax.Variable{Name: "p"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveTarget(tt.target)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindMutated(t *testing.T) {
	one := lit(syntax.LitInt, "1")
	cache := prop("cache", syntax.Private, newArray())
	count := prop("count", syntax.Private, lit(syntax.LitInt, "0"))
	flag := prop("flag", syntax.Private, lit(syntax.LitBool, "false"))
	ref := prop("ref", syntax.Private, lit(syntax.LitNull, "null"))

	candidates := newPropertySet()
	for _, p := range []*syntax.Property{cache, count, flag, ref} {
		candidates.put(p)
	}

	nested := &syntax.ClassDecl{Members: []syntax.Node{
		method("inner", assign(thisProp("flag"), one)),
	}}
	closure := &syntax.Other{Type: "anonymous_function", Children: []syntax.Node{
		assign(thisProp("count"), one),
	}}

	c := class("C",
		method("a", assign(&syntax.ArrayDimFetch{Var: thisProp("cache")}, one)),
		method("b", &syntax.ExprStmt{Expr: &syntax.New{Class: nested}}, &syntax.ExprStmt{Expr: closure}),
		method("c", &syntax.ExprStmt{Expr: &syntax.Assign{Var: thisProp("ref"), Expr: one, ByRef: true}}),
		method("d", assign(thisProp("cache"), one)),
	)

	mutated := findMutated(c, candidates)
	assert.Equal(t, []string{"cache", "count"}, mutated.names)
}

func TestPropertySetKeepsFirstPosition(t *testing.T) {
	s := newPropertySet()
	first := prop("a", syntax.Private, newArray())
	second := prop("a", syntax.Private, lit(syntax.LitNull, "null"))

	s.put(first)
	s.put(prop("b", syntax.Private, newArray()))
	s.put(second)

	assert.Equal(t, []string{"a", "b"}, s.names)
	assert.Same(t, second, s.get("a"))
}
