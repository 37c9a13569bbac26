package adapter

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/php"

	rerr "github.com/mouse-blink/gorector/internal/errors"
	"github.com/mouse-blink/gorector/internal/syntax"
)

// PHPFileAdapter hides the PHP parser from the domain layer. Implementations
// return a lowered syntax tree whose spans index into src.
type PHPFileAdapter interface {
	Parse(ctx context.Context, filename string, src []byte) (*syntax.File, error)
}

// TreeSitterPHPAdapter parses PHP with the tree-sitter grammar.
type TreeSitterPHPAdapter struct{}

// NewTreeSitterPHPAdapter constructs a TreeSitterPHPAdapter.
func NewTreeSitterPHPAdapter() *TreeSitterPHPAdapter {
	return &TreeSitterPHPAdapter{}
}

// Parse builds the syntax tree for one file. Sources the grammar cannot
// parse cleanly are rejected with a PARSE error rather than half-lowered.
func (a *TreeSitterPHPAdapter) Parse(ctx context.Context, filename string, src []byte) (*syntax.File, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(php.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, rerr.Wrap(err, rerr.CodeParse, "parse php").WithContext(rerr.CtxPath, filename)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, rerr.New(rerr.CodeParse, fmt.Sprintf("syntax error near line %d", firstErrorLine(root))).
			WithContext(rerr.CtxPath, filename)
	}

	l := newLowerer(src)
	file := &syntax.File{Path: filename, Stmts: l.lowerList(root)}
	file.SetSpan(syntax.Span{Start: 0, End: len(src)})

	return file, nil
}

func firstErrorLine(n *sitter.Node) int {
	if n.IsError() || n.IsMissing() {
		return int(n.StartPoint().Row) + 1
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c.HasError() {
			return firstErrorLine(c)
		}
	}

	return int(n.StartPoint().Row) + 1
}
