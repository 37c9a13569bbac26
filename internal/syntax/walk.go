package syntax

// Children returns the non-nil direct children of n in source order.
func Children(n Node) []Node {
	var out []Node

	for _, e := range n.edges() {
		switch {
		case e.one != nil:
			if *e.one != nil {
				out = append(out, *e.one)
			}
		case e.many != nil:
			for _, c := range *e.many {
				if c != nil {
					out = append(out, c)
				}
			}
		}
	}

	return out
}

// Inspect walks the tree depth-first in pre-order. Returning false from fn
// skips the node's children.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	for _, c := range Children(n) {
		Inspect(c, fn)
	}
}

// Action tells Rewrite what to do with a visited node.
type Action int

// Rewrite actions.
const (
	// Keep leaves the node where it is.
	Keep Action = iota
	// Update puts the returned node in place of the visited one.
	Update
	// Remove deletes the node from its parent list. Nodes held in a single
	// child slot cannot be removed and are kept.
	Remove
)

// Rewrite walks the tree in pre-order, letting fn replace or remove nodes
// before their children are visited. Children of a replacement are visited
// in place of the original's. The possibly replaced root is returned.
func Rewrite(root Node, fn func(Node) (Node, Action)) Node {
	if root == nil {
		return nil
	}

	next, action := fn(root)
	if action == Update && next != nil {
		root = next
	}

	rewriteChildren(root, fn)

	return root
}

func rewriteChildren(parent Node, fn func(Node) (Node, Action)) {
	for _, e := range parent.edges() {
		switch {
		case e.one != nil:
			if *e.one == nil {
				continue
			}

			next, action := fn(*e.one)
			if action == Update && next != nil {
				*e.one = next
			}

			rewriteChildren(*e.one, fn)
		case e.many != nil:
			list := *e.many
			kept := list[:0]

			for _, c := range list {
				if c == nil {
					continue
				}

				next, action := fn(c)

				switch action {
				case Remove:
					recordRemoval(parent, c)

					continue
				case Update:
					if next != nil {
						c = next
					}
				}

				kept = append(kept, c)
				rewriteChildren(c, fn)
			}

			// clear the tail so removed nodes are not retained
			for i := len(kept); i < len(list); i++ {
				list[i] = nil
			}

			*e.many = kept
		}
	}
}

func recordRemoval(parent, child Node) {
	m := child.NodeMeta()

	if !m.Original() {
		return
	}

	pm := parent.NodeMeta()
	pm.removed = append(pm.removed, Span{Start: m.LeadStart(), End: m.span.End})
}

// Replace records that n takes the place of old in the source and returns n.
func Replace(old, n Node) Node {
	om := old.NodeMeta()
	nm := n.NodeMeta()

	switch {
	case om.Replaced().Valid():
		nm.replaced = om.Replaced()
	case om.Original():
		nm.replaced = om.span
	}

	return n
}
