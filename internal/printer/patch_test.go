package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/gorector/internal/syntax"
)

// spanOf locates the nth (0-based) occurrence of sub in src.
func spanOf(t *testing.T, src, sub string, nth int) syntax.Span {
	t.Helper()

	from := 0

	for i := 0; ; i++ {
		idx := strings.Index(src[from:], sub)
		require.GreaterOrEqual(t, idx, 0, "%q not found", sub)

		if i == nth {
			return syntax.Span{Start: from + idx, End: from + idx + len(sub)}
		}

		from += idx + len(sub)
	}
}

func placed[T syntax.Node](n T, s syntax.Span) T {
	n.NodeMeta().SetSpan(s)

	return n
}

const classSrc = `<?php
class C
{
    private $a = [];

    public function load()
    {
        $this->a = [1];
    }
}
`

func buildClass(t *testing.T) (*syntax.File, *syntax.ClassDecl, *syntax.Property) {
	t.Helper()

	return buildClassFrom(t, classSrc)
}

// buildClassFrom places class C of src, holding property $a and method load.
func buildClassFrom(t *testing.T, src string) (*syntax.File, *syntax.ClassDecl, *syntax.Property) {
	t.Helper()

	prop := placed(&syntax.Property{
		Name:       "a",
		Visibility: syntax.Private,
		Default:    placed(&syntax.Array{}, spanOf(t, src, "[]", 0)),
	}, spanOf(t, src, "private $a = [];", 0))

	methodText := "public function load()\n    {\n        $this->a = [1];\n    }"
	load := placed(&syntax.Method{Name: "load", HasBody: true}, spanOf(t, src, methodText, 0))
	load.BodySpan = spanOf(t, src, "{\n        $this->a = [1];\n    }", 0)

	classText := src[strings.Index(src, "class C") : strings.LastIndex(src, "}")+1]
	class := placed(&syntax.ClassDecl{
		Name:    &syntax.Name{Text: "C"},
		Members: []syntax.Node{prop, load},
	}, spanOf(t, src, classText, 0))
	class.HeaderEnd = spanOf(t, src, "class C", 0).End
	class.BodySpan = syntax.Span{Start: strings.Index(src, "\n{") + 1, End: strings.LastIndex(src, "}") + 1}

	file := placed(&syntax.File{Stmts: []syntax.Node{class}}, syntax.Span{Start: 0, End: len(src)})

	return file, class, prop
}

func resetStmt(prop *syntax.Property) syntax.Node {
	return &syntax.ExprStmt{Expr: &syntax.Assign{
		Var:  &syntax.PropertyFetch{Object: &syntax.Variable{Name: "this"}, Name: prop.Name},
		Expr: prop.Default,
	}}
}

func TestPrintUnchangedTreeIsIdentity(t *testing.T) {
	file, _, _ := buildClass(t)

	assert.Equal(t, classSrc, string(Print([]byte(classSrc), file)))
}

func TestPrintInsertsMethodAndInterface(t *testing.T) {
	file, class, prop := buildClass(t)

	class.AddInterface(`\App\ResetInterface`)
	class.InsertFirstMethod(&syntax.Method{Name: "reset", HasBody: true, Stmts: []syntax.Node{resetStmt(prop)}})

	want := `<?php
class C implements \App\ResetInterface
{
    private $a = [];

    public function reset()
    {
        $this->a = [];
    }

    public function load()
    {
        $this->a = [1];
    }
}
`
	assert.Equal(t, want, string(Print([]byte(classSrc), file)))
}

func TestPrintInsertedMethodKeepsBlankLineBeforeNextMember(t *testing.T) {
	src := strings.Replace(classSrc, "[];\n\n", "[];\n", 1)

	file, class, prop := buildClassFrom(t, src)
	class.InsertFirstMethod(&syntax.Method{Name: "reset", HasBody: true, Stmts: []syntax.Node{resetStmt(prop)}})

	want := `<?php
class C
{
    private $a = [];

    public function reset()
    {
        $this->a = [];
    }

    public function load()
    {
        $this->a = [1];
    }
}
`
	assert.Equal(t, want, string(Print([]byte(src), file)))
}

func TestPrintInsertsIntoEmptyClassBody(t *testing.T) {
	src := "<?php\nclass D\n{\n}\n"

	class := placed(&syntax.ClassDecl{Name: &syntax.Name{Text: "D"}}, spanOf(t, src, "class D\n{\n}", 0))
	class.HeaderEnd = spanOf(t, src, "class D", 0).End
	class.BodySpan = spanOf(t, src, "{\n}", 0)
	class.InsertFirstMethod(&syntax.Method{Name: "reset", HasBody: true})

	file := &syntax.File{Stmts: []syntax.Node{class}}
	file.SetSpan(syntax.Span{Start: 0, End: len(src)})

	assert.Equal(t, "<?php\nclass D\n{\n    public function reset()\n    {\n    }\n}\n", string(Print([]byte(src), file)))
}

func TestPrintAppendsToExistingImplementsAndMethod(t *testing.T) {
	src := `<?php
class E implements Foo
{
    private $cache = [];

    public function reset()
    {
        $this->other = null;
    }
}
`
	prop := placed(&syntax.Property{Name: "cache", Default: placed(&syntax.Array{}, spanOf(t, src, "[]", 0))},
		spanOf(t, src, "private $cache = [];", 0))

	existing := placed(&syntax.ExprStmt{}, spanOf(t, src, "$this->other = null;", 0))
	reset := placed(&syntax.Method{Name: "reset", HasBody: true, Stmts: []syntax.Node{existing}},
		spanOf(t, src, "public function reset()\n    {\n        $this->other = null;\n    }", 0))
	reset.BodySpan = spanOf(t, src, "{\n        $this->other = null;\n    }", 0)
	reset.Stmts = append(reset.Stmts, resetStmt(prop))
	reset.MarkDirty()

	class := placed(&syntax.ClassDecl{
		Name:       &syntax.Name{Text: "E"},
		Implements: []*syntax.Name{placed(&syntax.Name{Text: "Foo"}, spanOf(t, src, "Foo", 0))},
		Members:    []syntax.Node{prop, reset},
	}, syntax.Span{Start: strings.Index(src, "class"), End: len(src) - 1})
	class.ImplementsSpan = spanOf(t, src, "implements Foo", 0)
	class.AddInterface(`\Bar`)

	file := placed(&syntax.File{Stmts: []syntax.Node{class}}, syntax.Span{Start: 0, End: len(src)})

	want := `<?php
class E implements Foo, \Bar
{
    private $cache = [];

    public function reset()
    {
        $this->other = null;
        $this->cache = [];
    }
}
`
	assert.Equal(t, want, string(Print([]byte(src), file)))
}

func TestPrintFillsEmptyMethodBody(t *testing.T) {
	src := "<?php\nclass F\n{\n    public function reset()\n    {\n    }\n}\n"

	reset := placed(&syntax.Method{Name: "reset", HasBody: true}, spanOf(t, src, "public function reset()\n    {\n    }", 0))
	reset.BodySpan = spanOf(t, src, "{\n    }", 0)

	stmt := &syntax.ExprStmt{Expr: &syntax.Assign{
		Var:  &syntax.StaticPropertyFetch{Class: syntax.NewName("self"), Name: "count"},
		Expr: &syntax.Literal{Type: syntax.LitInt, Raw: "0"},
	}}
	reset.Stmts = append(reset.Stmts, stmt)
	reset.MarkDirty()

	class := placed(&syntax.ClassDecl{Members: []syntax.Node{reset}}, syntax.Span{Start: 6, End: len(src) - 1})
	file := placed(&syntax.File{Stmts: []syntax.Node{class}}, syntax.Span{Start: 0, End: len(src)})

	want := "<?php\nclass F\n{\n    public function reset()\n    {\n        self::$count = 0;\n    }\n}\n"
	assert.Equal(t, want, string(Print([]byte(src), file)))
}

func TestPrintRemovesStatementLine(t *testing.T) {
	src := "<?php\n/** doc */\necho 'x';\nfoo();\n"

	echo := placed(&syntax.Echo{}, spanOf(t, src, "echo 'x';", 0))
	echo.SetLeadStart(strings.Index(src, "/**"))

	call := placed(&syntax.ExprStmt{}, spanOf(t, src, "foo();", 0))
	file := placed(&syntax.File{Stmts: []syntax.Node{echo, call}}, syntax.Span{Start: 0, End: len(src)})

	syntax.Rewrite(file, func(n syntax.Node) (syntax.Node, syntax.Action) {
		if n.Kind() == syntax.KindEcho {
			return nil, syntax.Remove
		}

		return nil, syntax.Keep
	})

	assert.Equal(t, "<?php\nfoo();\n", string(Print([]byte(src), file)))
}

func TestPrintRemovalSharingLineKeepsNeighbours(t *testing.T) {
	src := "<?php\nfoo(); exit;\n"

	call := placed(&syntax.ExprStmt{}, spanOf(t, src, "foo();", 0))
	exit := placed(&syntax.ExprStmt{Expr: &syntax.Exit{}}, spanOf(t, src, "exit;", 0))
	file := placed(&syntax.File{Stmts: []syntax.Node{call, exit}}, syntax.Span{Start: 0, End: len(src)})

	syntax.Rewrite(file, func(n syntax.Node) (syntax.Node, syntax.Action) {
		if s, ok := n.(*syntax.ExprStmt); ok && s.Expr != nil {
			return nil, syntax.Remove
		}

		return nil, syntax.Keep
	})

	assert.Equal(t, "<?php\nfoo(); \n", string(Print([]byte(src), file)))
}

func TestPrintReplacedNodeRendersStructure(t *testing.T) {
	src := "<?php\nrequire_once 'a.php';\n"

	old := placed(&syntax.Include{
		Type: syntax.RequireOnce,
		Expr: placed(&syntax.Literal{Type: syntax.LitString, Raw: "'a.php'"}, spanOf(t, src, "'a.php'", 0)),
	}, spanOf(t, src, "require_once 'a.php'", 0))
	stmt := placed(&syntax.ExprStmt{Expr: old}, spanOf(t, src, "require_once 'a.php';", 0))
	file := placed(&syntax.File{Stmts: []syntax.Node{stmt}}, syntax.Span{Start: 0, End: len(src)})

	stmt.Expr = syntax.Replace(old, &syntax.Include{Type: syntax.RequirePlain, Expr: old.Expr})

	assert.Equal(t, "<?php\nrequire 'a.php';\n", string(Print([]byte(src), file)))
}

func TestPrintDirtyVariableAndArrowFunction(t *testing.T) {
	src := "<?php\n$f = static fn() => $this->x + $GLOBALS;\n"

	glob := placed(&syntax.Variable{Name: "GLOBALS"}, spanOf(t, src, "$GLOBALS", 0))
	arrow := placed(&syntax.ArrowFunction{
		Static:     true,
		StaticSpan: spanOf(t, src, "static ", 0),
		Body:       glob,
	}, spanOf(t, src, "static fn() => $this->x + $GLOBALS", 0))
	file := placed(&syntax.File{Stmts: []syntax.Node{arrow}}, syntax.Span{Start: 0, End: len(src)})

	arrow.DropStatic()
	glob.Rename("forbidden")

	assert.Equal(t, "<?php\n$f = fn() => $this->x + $forbidden;\n", string(Print([]byte(src), file)))
}

func TestPrintRenamedFunctionThroughReplacedName(t *testing.T) {
	src := "<?php\nvar_dump($a);\n"

	name := placed(syntax.NewName("var_dump"), spanOf(t, src, "var_dump", 0))
	call := placed(&syntax.FuncCall{Func: name}, spanOf(t, src, "var_dump($a)", 0))
	file := placed(&syntax.File{Stmts: []syntax.Node{call}}, syntax.Span{Start: 0, End: len(src)})

	call.Func = syntax.Replace(name, syntax.NewName("forbiddenFunction"))

	assert.Equal(t, "<?php\nforbiddenFunction($a);\n", string(Print([]byte(src), file)))
}

func TestRenderSynthesizedExpressions(t *testing.T) {
	p := New([]byte("<?php\n\tfoo();\n"))

	tests := []struct {
		name string
		node syntax.Node
		want string
	}{
		{"exit with code", &syntax.Exit{Expr: &syntax.Literal{Raw: "1"}}, "exit(1)"},
		{"die bare", &syntax.Exit{Die: true}, "die"},
		{"binary", &syntax.Binary{Op: ".", Left: &syntax.Literal{Raw: "'a'"}, Right: &syntax.Literal{Raw: "'b'"}}, "'a' . 'b'"},
		{"unary", &syntax.Unary{Op: "-", Operand: &syntax.Literal{Raw: "1"}}, "-1"},
		{"class const", &syntax.ClassConstFetch{Class: syntax.NewName("self"), Name: "A"}, "self::A"},
		{"call", &syntax.FuncCall{Func: syntax.NewName("f"), Args: []syntax.Node{
			&syntax.Arg{Value: &syntax.Variable{Name: "a"}},
			&syntax.Arg{Name: "x", Value: &syntax.Literal{Raw: "true"}},
		}}, "f($a, x: true)"},
		{"property", &syntax.Property{Name: "p", Visibility: syntax.Protected, Static: true, Default: &syntax.Literal{Raw: "null"}}, "protected static $p = null;"},
		{"method", &syntax.Method{Name: "reset", HasBody: true, Stmts: []syntax.Node{
			&syntax.Echo{Exprs: []syntax.Node{&syntax.Literal{Raw: "1"}}},
		}}, "public function reset()\n{\n\techo 1;\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.render(tt.node, ""))
		})
	}
}

func TestDetectIndentUnit(t *testing.T) {
	assert.Equal(t, "\t", detectIndentUnit([]byte("<?php\n\tfoo();\n")))
	assert.Equal(t, "  ", detectIndentUnit([]byte("<?php\n/**\n * doc\n */\n  foo();\n")))
	assert.Equal(t, "    ", detectIndentUnit([]byte("<?php\nfoo();\n")))
}
