package domain

import (
	"strings"

	"github.com/mouse-blink/gorector/internal/syntax"
)

// FamilyIndex maps class-like names to their direct parents across the whole
// project. It is built once before any rewriting and only read afterwards,
// so it is safe for concurrent use.
type FamilyIndex struct {
	parents map[string][]string
}

// NewFamilyIndex records every named class, interface, trait and enum
// declared in files.
func NewFamilyIndex(files []*syntax.File) *FamilyIndex {
	idx := &FamilyIndex{parents: make(map[string][]string)}

	for _, f := range files {
		if f == nil {
			continue
		}

		syntax.Inspect(f, func(n syntax.Node) bool {
			class, ok := n.(*syntax.ClassDecl)
			if !ok || class.IsAnonymous() {
				return true
			}

			key := familyKey(class.FQName())
			idx.parents[key] = append(idx.parents[key], directParents(class)...)

			return true
		})
	}

	return idx
}

// Len is the number of indexed declarations.
func (f *FamilyIndex) Len() int {
	return len(f.parents)
}

// Ancestors returns the class's own name, its live extends and implements
// names and everything reachable from them through the index, breadth
// first. Names are returned as written at their first sighting.
func (f *FamilyIndex) Ancestors(class *syntax.ClassDecl) []string {
	var out []string

	seen := make(map[string]bool)
	queue := directParents(class)

	if !class.IsAnonymous() {
		own := class.FQName()
		out = append(out, own)
		seen[familyKey(own)] = true
	}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		key := familyKey(name)
		if key == "" || seen[key] {
			continue
		}

		seen[key] = true
		out = append(out, name)
		queue = append(queue, f.parents[key]...)
	}

	return out
}

func directParents(class *syntax.ClassDecl) []string {
	names := make([]string, 0, len(class.Extends)+len(class.Implements))

	for _, n := range class.Extends {
		names = append(names, n.FullName())
	}

	for _, n := range class.Implements {
		names = append(names, n.FullName())
	}

	return names
}

func familyKey(name string) string {
	return strings.ToLower(strings.TrimPrefix(name, `\`))
}
