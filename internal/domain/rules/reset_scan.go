package rules

import "github.com/mouse-blink/gorector/internal/syntax"

// propertySet is an insertion-ordered map of properties by name. Re-adding a
// name keeps its position and replaces the property.
type propertySet struct {
	names  []string
	byName map[string]*syntax.Property
}

func newPropertySet() *propertySet {
	return &propertySet{byName: make(map[string]*syntax.Property)}
}

func (s *propertySet) put(p *syntax.Property) {
	if _, ok := s.byName[p.Name]; !ok {
		s.names = append(s.names, p.Name)
	}

	s.byName[p.Name] = p
}

func (s *propertySet) get(name string) *syntax.Property { return s.byName[name] }

func (s *propertySet) empty() bool { return len(s.names) == 0 }

// ordered returns the properties in first-seen order.
func (s *propertySet) ordered() []*syntax.Property {
	out := make([]*syntax.Property, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.byName[name])
	}

	return out
}

type valueClass int

const (
	unclassified valueClass = iota
	emptyContainer
	nullableOrScalar
)

// classify tells whether a default value has a reconstructable zero state.
func classify(n syntax.Node) valueClass {
	switch v := n.(type) {
	case *syntax.Array:
		if len(v.Items) == 0 {
			return emptyContainer
		}
	case *syntax.Literal, *syntax.ConstFetch, *syntax.ClassConstFetch:
		return nullableOrScalar
	case *syntax.Unary:
		if classify(v.Operand) == nullableOrScalar {
			return nullableOrScalar
		}
	case *syntax.Binary:
		if classify(v.Left) == nullableOrScalar && classify(v.Right) == nullableOrScalar {
			return nullableOrScalar
		}
	case *syntax.Other:
		if v.Type == "parenthesized_expression" && len(v.Children) == 1 {
			return classify(v.Children[0])
		}
	}

	return unclassified
}

// scanCandidates collects the non-public writable properties with a
// classifiable default, in declaration order.
func (r *ResetStateChecker) scanCandidates(class *syntax.ClassDecl) *propertySet {
	set := newPropertySet()

	for _, p := range class.Properties() {
		if p.Readonly || class.Readonly || p.Visibility == syntax.Public || p.Default == nil {
			continue
		}

		if classify(p.Default) == unclassified {
			continue
		}

		if IsSuppressed(p, ResetStateID) {
			continue
		}

		set.put(p)
	}

	return set
}
