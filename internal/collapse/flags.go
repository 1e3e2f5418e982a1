package collapse

import "github.com/vk/wireframego/internal/resolved"

// Flags records, per edge, whether the node's border should be drawn
// collapsed into the adjacent one.
type Flags struct {
	Top    bool `json:"top"`
	Right  bool `json:"right"`
	Bottom bool `json:"bottom"`
	Left   bool `json:"left"`
}

// Any reports whether any edge is collapsed.
func (f Flags) Any() bool {
	return f.Top || f.Right || f.Bottom || f.Left
}

// merge ors the other flags into f.
func (f *Flags) merge(o Flags) {
	f.Top = f.Top || o.Top
	f.Right = f.Right || o.Right
	f.Bottom = f.Bottom || o.Bottom
	f.Left = f.Left || o.Left
}

// edge identifies one side of a node.
type edge int

const (
	edgeTop edge = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// set marks the given edge collapsed.
func (f *Flags) set(e edge) {
	switch e {
	case edgeTop:
		f.Top = true
	case edgeRight:
		f.Right = true
	case edgeBottom:
		f.Bottom = true
	case edgeLeft:
		f.Left = true
	}
}

// padAmount returns the padding on the given edge.
func padAmount(p resolved.Edges, e edge) float64 {
	switch e {
	case edgeTop:
		return p.Top
	case edgeRight:
		return p.Right
	case edgeBottom:
		return p.Bottom
	default:
		return p.Left
	}
}

// Table maps each resolved node to its collapse flags. It is keyed by node
// identity: resolved trees are never shared, so pointers are stable for the
// lifetime of a render pass.
type Table map[*resolved.Node]*Flags

// Flags returns the flags recorded for a node, or the zero flags when the
// node was not part of the analyzed tree.
func (t Table) Flags(n *resolved.Node) Flags {
	if f, ok := t[n]; ok {
		return *f
	}
	return Flags{}
}
