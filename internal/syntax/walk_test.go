package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spanned[T Node](n T, start, end int) T {
	n.NodeMeta().SetSpan(Span{Start: start, End: end})

	return n
}

func sampleFile() *File {
	echo := spanned(&Echo{Exprs: []Node{&Literal{Type: LitString, Raw: "'a'"}}}, 10, 20)
	echo.SetLeadStart(4)

	call := &ExprStmt{Expr: &FuncCall{Func: NewName("foo"), Args: []Node{&Arg{Value: &Variable{Name: "x"}}}}}

	return &File{Stmts: []Node{spanned(call, 0, 4), echo}}
}

func TestInspectVisitsPreOrder(t *testing.T) {
	var kinds []Kind

	Inspect(sampleFile(), func(n Node) bool {
		kinds = append(kinds, n.Kind())

		return true
	})

	assert.Equal(t, []Kind{
		KindFile, KindExprStmt, KindFuncCall, KindName, KindArg, KindVariable, KindEcho, KindLiteral,
	}, kinds)
}

func TestInspectSkipsChildren(t *testing.T) {
	var count int

	Inspect(sampleFile(), func(n Node) bool {
		count++

		return n.Kind() != KindExprStmt
	})

	assert.Equal(t, 4, count)
}

func TestRewriteRemoveRecordsSpan(t *testing.T) {
	f := sampleFile()

	Rewrite(f, func(n Node) (Node, Action) {
		if n.Kind() == KindEcho {
			return nil, Remove
		}

		return nil, Keep
	})

	require.Len(t, f.Stmts, 1)
	assert.Equal(t, []Span{{Start: 4, End: 20}}, f.Removed())
}

func TestRewriteUpdateReplacesAndVisitsNewChildren(t *testing.T) {
	f := sampleFile()

	var seen []string

	Rewrite(f, func(n Node) (Node, Action) {
		switch v := n.(type) {
		case *Echo:
			repl := &Echo{Exprs: []Node{&Variable{Name: "y"}}}

			return Replace(v, repl), Update
		case *Variable:
			seen = append(seen, v.Name)
		}

		return nil, Keep
	})

	echo, ok := f.Stmts[1].(*Echo)
	require.True(t, ok)
	assert.Equal(t, Span{Start: 10, End: 20}, echo.Replaced())
	assert.Equal(t, []string{"x", "y"}, seen)
}

func TestReplaceCarriesEarlierReplacement(t *testing.T) {
	old := spanned(&Variable{Name: "a"}, 3, 5)
	mid := Replace(old, &Variable{Name: "b"})
	last := Replace(mid, &Variable{Name: "c"})

	assert.Equal(t, Span{Start: 3, End: 5}, last.NodeMeta().Replaced())
}

func TestRemoveSynthesizedLeavesNoSpan(t *testing.T) {
	f := &File{Stmts: []Node{&Echo{}}}

	Rewrite(f, func(n Node) (Node, Action) {
		if n.Kind() == KindEcho {
			return nil, Remove
		}

		return nil, Keep
	})

	assert.Empty(t, f.Stmts)
	assert.Empty(t, f.Removed())
}

func TestClassDeclHelpers(t *testing.T) {
	prop := &Property{Name: "cache", Visibility: Private, Default: &Array{}}
	run := &Method{Name: "run", HasBody: true}
	class := &ClassDecl{Name: &Name{Text: "C"}, Namespace: `App\Service`, Members: []Node{prop, run}}

	assert.Equal(t, `App\Service\C`, class.FQName())
	assert.Equal(t, "C", class.ShortName())
	assert.Same(t, run, class.Method("RUN"))
	assert.Nil(t, class.Method("reset"))

	reset := &Method{Name: "reset", HasBody: true}
	class.InsertFirstMethod(reset)
	class.AddInterface(`\Contracts\ResetInterface`)

	assert.Equal(t, []*Method{reset, run}, class.Methods())
	assert.Equal(t, []*Property{prop}, class.Properties())
	assert.Equal(t, `Contracts\ResetInterface`, class.Implements[0].FullName())
	assert.True(t, class.Dirty())
}

func TestClassDeclAnonymous(t *testing.T) {
	class := &ClassDecl{}

	assert.True(t, class.IsAnonymous())
	assert.Empty(t, class.FQName())
	assert.Equal(t, KindClass, class.Kind())
	assert.Equal(t, KindInterface, (&ClassDecl{Flavor: FlavorInterface}).Kind())
}

func TestIsThis(t *testing.T) {
	assert.True(t, IsThis(&Variable{Name: "this"}))
	assert.False(t, IsThis(&Variable{Name: "that"}))
	assert.False(t, IsThis(NewName("this")))
}
