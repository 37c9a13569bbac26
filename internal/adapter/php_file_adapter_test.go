package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerr "github.com/mouse-blink/gorector/internal/errors"
	"github.com/mouse-blink/gorector/internal/printer"
	"github.com/mouse-blink/gorector/internal/syntax"
)

func parsePHP(t *testing.T, src string) *syntax.File {
	t.Helper()

	file, err := NewTreeSitterPHPAdapter().Parse(context.Background(), "test.php", []byte(src))
	require.NoError(t, err)

	return file
}

func firstClass(t *testing.T, file *syntax.File) *syntax.ClassDecl {
	t.Helper()

	var class *syntax.ClassDecl

	syntax.Inspect(file, func(n syntax.Node) bool {
		if c, ok := n.(*syntax.ClassDecl); ok && class == nil {
			class = c

			return false
		}

		return class == nil
	})

	require.NotNil(t, class)

	return class
}

const resolvedSrc = `<?php
namespace App\Service;

use Vendor\Contracts\ResetInterface;
use Vendor\Base as BaseAlias;

#[Vendor\Attr\Ignore]
final class Cache extends BaseAlias implements ResetInterface, \Countable
{
    private array $items = [];
    protected ?string $name = null;
    public int $public = 0;
    private static int $hits = 0;

    public function load(): void
    {
        $this->items[] = 'x';
        self::$hits = 1;
    }
}
`

func TestParseResolvesClassNames(t *testing.T) {
	class := firstClass(t, parsePHP(t, resolvedSrc))

	assert.Equal(t, `App\Service\Cache`, class.FQName())
	assert.True(t, class.Final)

	require.Len(t, class.Extends, 1)
	assert.Equal(t, `Vendor\Base`, class.Extends[0].FullName())

	require.Len(t, class.Implements, 2)
	assert.Equal(t, `Vendor\Contracts\ResetInterface`, class.Implements[0].FullName())
	assert.Equal(t, `Countable`, class.Implements[1].FullName())
	assert.True(t, class.ImplementsSpan.Valid())

	require.Len(t, class.Attributes, 1)
	assert.Equal(t, `App\Service\Vendor\Attr\Ignore`, class.Attributes[0].FullName())
}

func TestParseLowersMembers(t *testing.T) {
	class := firstClass(t, parsePHP(t, resolvedSrc))

	props := class.Properties()
	require.Len(t, props, 4)

	assert.Equal(t, "items", props[0].Name)
	assert.Equal(t, syntax.Private, props[0].Visibility)
	assert.IsType(t, &syntax.Array{}, props[0].Default)

	assert.Equal(t, "name", props[1].Name)
	assert.Equal(t, syntax.Protected, props[1].Visibility)
	lit, ok := props[1].Default.(*syntax.Literal)
	require.True(t, ok)
	assert.Equal(t, syntax.LitNull, lit.Type)

	assert.Equal(t, syntax.Public, props[2].Visibility)
	assert.True(t, props[3].Static)

	load := class.Method("load")
	require.NotNil(t, load)
	assert.True(t, load.HasBody)
	require.Len(t, load.Stmts, 2)

	first, ok := load.Stmts[0].(*syntax.ExprStmt)
	require.True(t, ok)
	assign, ok := first.Expr.(*syntax.Assign)
	require.True(t, ok)
	dim, ok := assign.Var.(*syntax.ArrayDimFetch)
	require.True(t, ok)
	assert.Nil(t, dim.Dim)
	fetch, ok := dim.Var.(*syntax.PropertyFetch)
	require.True(t, ok)
	assert.Equal(t, "items", fetch.Name)
	assert.True(t, syntax.IsThis(fetch.Object))

	second := load.Stmts[1].(*syntax.ExprStmt).Expr.(*syntax.Assign)
	static, ok := second.Var.(*syntax.StaticPropertyFetch)
	require.True(t, ok)
	assert.Equal(t, "hits", static.Name)
	assert.Equal(t, "self", static.Class.Text)
}

func TestParseAttachesDocToStatementAndLeadingExpression(t *testing.T) {
	src := "<?php\n/** @rector-suppress ForbiddenFunctionsRector */\nprint_r($a);\necho 1;\n"

	file := parsePHP(t, src)
	require.Len(t, file.Stmts, 2)

	stmt := file.Stmts[0].(*syntax.ExprStmt)
	v, ok := stmt.Doc().Tag("rector-suppress")
	assert.True(t, ok)
	assert.Equal(t, "ForbiddenFunctionsRector", v)

	call, ok := stmt.Expr.(*syntax.FuncCall)
	require.True(t, ok)
	assert.Same(t, stmt.Doc(), call.Doc())
	assert.Equal(t, 6, stmt.LeadStart())

	assert.Nil(t, file.Stmts[1].NodeMeta().Doc())
}

func TestParseStatementsAndExpressions(t *testing.T) {
	src := `<?php
echo 'a', 'b';
exit(1);
require_once 'x.php';
$f = static fn($x) => $x;
`
	file := parsePHP(t, src)
	require.Len(t, file.Stmts, 4)

	echo, ok := file.Stmts[0].(*syntax.Echo)
	require.True(t, ok)
	assert.Len(t, echo.Exprs, 2)

	exitStmt, ok := file.Stmts[1].(*syntax.ExprStmt)
	require.True(t, ok)
	assert.IsType(t, &syntax.Exit{}, exitStmt.Expr)

	inc := file.Stmts[2].(*syntax.ExprStmt).Expr.(*syntax.Include)
	assert.Equal(t, syntax.RequireOnce, inc.Type)

	assign := file.Stmts[3].(*syntax.ExprStmt).Expr.(*syntax.Assign)
	arrow, ok := assign.Expr.(*syntax.ArrowFunction)
	require.True(t, ok)
	assert.True(t, arrow.Static)
	assert.Equal(t, "static ", src[arrow.StaticSpan.Start:arrow.StaticSpan.End])
}

func TestParseStaticCall(t *testing.T) {
	file := parsePHP(t, "<?php\n$f = static fn($x) => parent::wrap($x);\n")

	var call *syntax.StaticCall

	syntax.Inspect(file, func(n syntax.Node) bool {
		if c, ok := n.(*syntax.StaticCall); ok {
			call = c
		}

		return call == nil
	})

	require.NotNil(t, call)
	assert.Equal(t, "parent", call.Class.Text)
	assert.Equal(t, "wrap", call.Method)
	require.Len(t, call.Args, 1)
}

func TestParseAnonymousClass(t *testing.T) {
	file := parsePHP(t, "<?php\n$o = new class {\n    private $a = 1;\n};\n")

	class := firstClass(t, file)
	assert.True(t, class.IsAnonymous())
	assert.Len(t, class.Properties(), 1)
}

func TestParseRejectsSyntaxErrors(t *testing.T) {
	_, err := NewTreeSitterPHPAdapter().Parse(context.Background(), "bad.php", []byte("<?php\nclass {\n"))
	require.Error(t, err)
	assert.True(t, rerr.IsCode(err, rerr.CodeParse))
}

func TestParsePrintRoundTrip(t *testing.T) {
	file := parsePHP(t, resolvedSrc)

	assert.Equal(t, resolvedSrc, string(printer.Print([]byte(resolvedSrc), file)))
}

func TestGroupUseResolution(t *testing.T) {
	src := "<?php\nnamespace A;\nuse B\\{C, D as E};\nclass X extends E implements C {}\n"

	class := firstClass(t, parsePHP(t, src))
	require.Len(t, class.Extends, 1)
	assert.Equal(t, `B\D`, class.Extends[0].FullName())
	require.Len(t, class.Implements, 1)
	assert.Equal(t, `B\C`, class.Implements[0].FullName())
}
