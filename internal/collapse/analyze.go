package collapse

import "github.com/vk/wireframego/internal/resolved"

// Analyze walks the resolved trees and returns the collapse table for every
// node they contain. Roots carry no inherited context: there is nothing
// outside a frame to fuse with.
func Analyze(roots ...*resolved.Node) Table {
	table := make(Table)
	for _, root := range roots {
		walk(table, root, Flags{})
	}
	return table
}

// walk records flags for n and computes the context each child starts from.
// inherited describes collapse already decided for n's own edges by its
// ancestors and siblings.
func walk(table Table, n *resolved.Node, inherited Flags) {
	flags := ensure(table, n)
	if n.Bordered() {
		// The context lands on this node's own border.
		flags.merge(inherited)
	}

	kids := n.Children
	if len(kids) == 0 {
		return
	}

	// Main-axis lead/trail edges and the cross-axis pair, per flow direction.
	lead, trail := edgeTop, edgeBottom
	crossA, crossB := edgeLeft, edgeRight
	if n.Style.Direction == resolved.Row {
		lead, trail = edgeLeft, edgeRight
		crossA, crossB = edgeTop, edgeBottom
	}

	ctxs := make([]Flags, len(kids))

	// Rule 1: sibling collapse across the shared main-axis edge. Any explicit
	// gap separates the borders physically, so no fusion is possible.
	if n.Style.Gap == 0 {
		for i := 1; i < len(kids); i++ {
			prev, cur := kids[i-1], kids[i]
			if borderReaches(prev, trail) && borderReaches(cur, lead) {
				ctxs[i-1].set(trail)
				ctxs[i].set(lead)
			}
		}
	}

	if n.Bordered() {
		// Rule 2: collapse children against this node's own border wherever
		// its padding leaves the two borders touching.
		pad := n.Style.Padding
		last := len(kids) - 1
		for i := range kids {
			if i == 0 && padAmount(pad, lead) == 0 {
				ctxs[i].set(lead)
			}
			if i == last && padAmount(pad, trail) == 0 && touchesTrailing(n, kids[i]) {
				ctxs[i].set(trail)
			}
			// Every child spans the cross axis, so cross-axis edges collapse
			// uniformly rather than only for first/last.
			if padAmount(pad, crossA) == 0 {
				ctxs[i].set(crossA)
			}
			if padAmount(pad, crossB) == 0 {
				ctxs[i].set(crossB)
			}
		}
	} else {
		// Rule 3: a borderless wrapper forwards its inherited context so
		// fusion can cross layout-only boxes: top/left reach the first child,
		// bottom/right the last child that touches the trailing edge.
		pad := n.Style.Padding
		last := len(kids) - 1
		if inherited.Top && pad.Top == 0 {
			ctxs[0].Top = true
		}
		if inherited.Left && pad.Left == 0 {
			ctxs[0].Left = true
		}
		if touchesTrailing(n, kids[last]) {
			if inherited.Bottom && pad.Bottom == 0 {
				ctxs[last].Bottom = true
			}
			if inherited.Right && pad.Right == 0 {
				ctxs[last].Right = true
			}
		}
	}

	for i, child := range kids {
		walk(table, child, ctxs[i])
	}
}

// ensure returns the flags record for n, creating it on first visit.
func ensure(table Table, n *resolved.Node) *Flags {
	if f, ok := table[n]; ok {
		return f
	}
	f := &Flags{}
	table[n] = f
	return f
}

// touchesTrailing reports whether a last child actually reaches its parent's
// trailing edge: either the parent is content-sized (no growth leaves no
// slack after the last child) or the child itself grows to fill the slack.
func touchesTrailing(parent, child *resolved.Node) bool {
	return !parent.Style.Grow || child.Style.Grow
}

// borderReaches reports whether n presents a border on the given edge: it is
// bordered itself, or it is an unbordered container whose chain of edge
// children reaches a border with no padding blocking the path.
func borderReaches(n *resolved.Node, e edge) bool {
	if n.Bordered() {
		return true
	}
	if n.Kind != resolved.KindBox && n.Kind != resolved.KindFrame {
		return false
	}
	if padAmount(n.Style.Padding, e) > 0 {
		return false
	}
	child := edgeChild(n, e)
	if child == nil {
		return false
	}
	return borderReaches(child, e)
}

// edgeChild picks the child that sits on the given edge of n. Along the main
// axis that is the first or last child (the last only when it touches the
// trailing edge); across the cross axis every child shares the edge, so the
// first stands in for the chain.
func edgeChild(n *resolved.Node, e edge) *resolved.Node {
	if len(n.Children) == 0 {
		return nil
	}
	first := n.Children[0]
	last := n.Children[len(n.Children)-1]

	var leadEdge, trailEdge edge
	if n.Style.Direction == resolved.Row {
		leadEdge, trailEdge = edgeLeft, edgeRight
	} else {
		leadEdge, trailEdge = edgeTop, edgeBottom
	}

	switch e {
	case leadEdge:
		return first
	case trailEdge:
		if !touchesTrailing(n, last) {
			return nil
		}
		return last
	default:
		return first
	}
}
