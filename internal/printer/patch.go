// Package printer turns a rewritten syntax tree back into source text. Bytes
// the rules did not touch are copied from the original; every change is a
// byte edit over the original buffer.
package printer

import (
	"bytes"
	"sort"
	"strings"

	"github.com/mouse-blink/gorector/internal/syntax"
)

type edit struct {
	start int
	end   int
	text  string
}

// Printer renders a tree lowered from src.
type Printer struct {
	src  []byte
	unit string
}

// New returns a Printer for the given original source.
func New(src []byte) *Printer {
	return &Printer{src: src, unit: detectIndentUnit(src)}
}

// Print returns the source of root with all recorded changes applied.
func Print(src []byte, root syntax.Node) []byte {
	return New(src).Print(root)
}

// Print returns the source of root with all recorded changes applied.
func (p *Printer) Print(root syntax.Node) []byte {
	var edits []edit

	p.collect(root, &edits)

	return apply(p.src, 0, len(p.src), edits)
}

// apply writes src[from:to] with the edits falling inside that range.
// Overlapping edits after the first are dropped.
func apply(src []byte, from, to int, edits []edit) []byte {
	sort.SliceStable(edits, func(i, j int) bool { return edits[i].start < edits[j].start })

	var buf bytes.Buffer

	cursor := from

	for _, e := range edits {
		if e.start < cursor || e.end > to {
			continue
		}

		buf.Write(src[cursor:e.start])
		buf.WriteString(e.text)
		cursor = e.end
	}

	buf.Write(src[cursor:to])

	return buf.Bytes()
}

func (p *Printer) collect(n syntax.Node, edits *[]edit) {
	m := n.NodeMeta()

	if r := m.Replaced(); r.Valid() {
		*edits = append(*edits, edit{start: r.Start, end: r.End, text: p.render(n, p.indentAt(r.Start))})

		return
	}

	if !m.Original() {
		return
	}

	p.collectOwn(n, edits)
}

// collectOwn gathers the edits of an original node, ignoring any
// replacement recorded on the node itself.
func (p *Printer) collectOwn(n syntax.Node, edits *[]edit) {
	m := n.NodeMeta()

	for _, r := range m.Removed() {
		start, end := p.lineExtent(r)
		*edits = append(*edits, edit{start: start, end: end})
	}

	if m.Dirty() {
		p.collectDirty(n, edits)
	}

	for _, c := range syntax.Children(n) {
		p.collect(c, edits)
	}
}

func (p *Printer) collectDirty(n syntax.Node, edits *[]edit) {
	switch v := n.(type) {
	case *syntax.Variable:
		*edits = append(*edits, edit{start: v.Span().Start, end: v.Span().End, text: "$" + v.Name})
	case *syntax.ArrowFunction:
		if !v.Static && v.StaticSpan.Valid() {
			*edits = append(*edits, edit{start: v.StaticSpan.Start, end: v.StaticSpan.End})
		}
	case *syntax.ClassDecl:
		p.collectInterfaces(v, edits)
		p.insertSequence(v.Members, v.BodySpan, p.indentAt(v.LeadStart()), "\n\n", edits)
	case *syntax.Method:
		if v.HasBody {
			p.insertSequence(v.Stmts, v.BodySpan, p.indentAt(v.LeadStart()), "\n", edits)
		}
	}
}

func (p *Printer) collectInterfaces(c *syntax.ClassDecl, edits *[]edit) {
	var added []string

	for _, name := range c.Implements {
		if !name.Original() {
			added = append(added, name.Text)
		}
	}

	if len(added) == 0 {
		return
	}

	list := strings.Join(added, ", ")

	if c.ImplementsSpan.Valid() {
		*edits = append(*edits, edit{start: c.ImplementsSpan.End, end: c.ImplementsSpan.End, text: ", " + list})

		return
	}

	keyword := " implements "
	if c.Flavor == syntax.FlavorInterface {
		keyword = " extends "
	}

	*edits = append(*edits, edit{start: c.HeaderEnd, end: c.HeaderEnd, text: keyword + list})
}

// insertSequence emits insertion edits for the synthesized entries of a
// member or statement list living inside the braces of body.
func (p *Printer) insertSequence(items []syntax.Node, body syntax.Span, outer, gap string, edits *[]edit) {
	inner := outer + p.unit

	for _, it := range items {
		if it.NodeMeta().Original() {
			inner = p.indentAt(it.NodeMeta().LeadStart())

			break
		}
	}

	for i := 0; i < len(items); {
		if isPlaced(items[i]) {
			i++

			continue
		}

		j := i
		for j < len(items) && !isPlaced(items[j]) {
			j++
		}

		run := make([]string, 0, j-i)
		for _, it := range items[i:j] {
			run = append(run, inner+p.render(it, inner))
		}

		block := strings.Join(run, gap)

		switch {
		case i > 0:
			at := placedSpan(items[i-1]).End

			text := gap + block
			// members keep a blank line before the next placed one
			if j < len(items) && gap == "\n\n" && !p.blankLineAt(at) {
				text += "\n"
			}

			*edits = append(*edits, edit{start: at, end: at, text: text})
		case j < len(items):
			next := placedSpan(items[j]).Start
			if ls, ok := p.lineStart(next); ok {
				*edits = append(*edits, edit{start: ls, end: ls, text: block + gap})
			} else {
				*edits = append(*edits, edit{start: next, end: next, text: "\n" + block + gap + inner})
			}
		case body.Valid():
			*edits = append(*edits, p.fillBody(body, outer, gap, block))
		}

		i = j
	}
}

// fillBody inserts block into a body without placed entries. Whitespace-only
// bodies are rewritten; anything else, such as comments, is kept ahead of
// the block.
func (p *Printer) fillBody(body syntax.Span, outer, gap, block string) edit {
	open, closing := body.Start+1, body.End-1

	inside := p.src[open:closing]
	last := bytes.LastIndexFunc(inside, func(r rune) bool { return !isSpace(byte(r)) })

	if last < 0 {
		return edit{start: open, end: closing, text: "\n" + block + "\n" + outer}
	}

	at := open + last + 1

	return edit{start: at, end: at, text: gap + block}
}

// isPlaced reports whether a list entry already has a position in the
// source, either its own or that of the node it replaced.
func isPlaced(n syntax.Node) bool {
	m := n.NodeMeta()

	return m.Original() || m.Replaced().Valid()
}

// placedSpan is the source range a placed entry occupies, including its
// leading doc comment.
func placedSpan(n syntax.Node) syntax.Span {
	m := n.NodeMeta()

	if m.Original() {
		return syntax.Span{Start: m.LeadStart(), End: m.Span().End}
	}

	return m.Replaced()
}

// lineExtent widens a removed range to whole lines when nothing else
// shares them.
func (p *Printer) lineExtent(r syntax.Span) (int, int) {
	start, end := r.Start, r.End

	ls, ok := p.lineStart(start)
	if !ok {
		return start, end
	}

	e := end
	for e < len(p.src) && (p.src[e] == ' ' || p.src[e] == '\t') {
		e++
	}

	switch {
	case e < len(p.src) && p.src[e] == '\n':
		return ls, e + 1
	case e == len(p.src):
		return ls, e
	case e+1 < len(p.src) && p.src[e] == '\r' && p.src[e+1] == '\n':
		return ls, e + 2
	}

	return start, end
}

// lineStart returns the start of the line holding offset when only
// indentation precedes offset on it.
func (p *Printer) lineStart(offset int) (int, bool) {
	i := offset
	for i > 0 && (p.src[i-1] == ' ' || p.src[i-1] == '\t') {
		i--
	}

	if i == 0 || p.src[i-1] == '\n' {
		return i, true
	}

	return offset, false
}

// blankLineAt reports whether the whitespace starting at offset holds a
// blank line.
func (p *Printer) blankLineAt(offset int) bool {
	newlines := 0

	for i := offset; i < len(p.src) && isSpace(p.src[i]); i++ {
		if p.src[i] == '\n' {
			newlines++
		}
	}

	return newlines >= 2
}

// indentAt returns the indentation of the line holding offset.
func (p *Printer) indentAt(offset int) string {
	if offset > len(p.src) {
		offset = len(p.src)
	}

	ls := bytes.LastIndexByte(p.src[:offset], '\n') + 1

	e := ls
	for e < len(p.src) && (p.src[e] == ' ' || p.src[e] == '\t') {
		e++
	}

	return string(p.src[ls:e])
}

func detectIndentUnit(src []byte) string {
	for _, line := range bytes.Split(src, []byte("\n")) {
		if len(line) == 0 {
			continue
		}

		if line[0] == '\t' {
			return "\t"
		}

		if line[0] != ' ' {
			continue
		}

		n := 0
		for n < len(line) && line[n] == ' ' {
			n++
		}

		// skip doc comment continuation lines
		if n < len(line) && line[n] == '*' {
			continue
		}

		if n == len(line) {
			continue
		}

		return strings.Repeat(" ", n)
	}

	return "    "
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
