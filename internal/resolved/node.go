package resolved

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/wireframego/internal/procgen"
)

// Kind discriminates resolved primitive nodes. Component references never
// survive resolution, so there is no component kind here.
type Kind int

const (
	KindFrame Kind = iota
	KindBox
	KindText
	KindIcon
	KindCursor
	KindMap
	KindChart
	KindGlobe
	KindCloud
)

var kindTags = [...]string{
	KindFrame:  "frame",
	KindBox:    "box",
	KindText:   "text",
	KindIcon:   "icon",
	KindCursor: "cursor",
	KindMap:    "map",
	KindChart:  "chart",
	KindGlobe:  "globe",
	KindCloud:  "cloud",
}

// String returns the document tag for the kind.
func (k Kind) String() string {
	if int(k) < len(kindTags) {
		return kindTags[k]
	}
	return "unknown"
}

// Node is one fully resolved primitive. The presentation layer consumes it
// directly; nothing in it refers back to the component library.
type Node struct {
	Kind  Kind
	Label string

	// Text is the content of a text node.
	Text string

	// Icon is the canonicalized icon name of an icon node. The engine passes
	// the name through; path lookup belongs to the icon capability.
	Icon string

	// Link is a navigation target attached by a component instance to its
	// first resolved box.
	Link string

	// Style holds the layout-facing properties the collapse analyzer reads.
	Style Style

	// Props carries the remaining raw properties through to the presentation
	// layer untouched.
	Props map[string]cty.Value

	// Pre-computed procedural data, populated per data-bearing kind.
	Path   []procgen.Point  // KindMap
	Series []procgen.Sample // KindChart
	Route  []procgen.Vec3   // KindGlobe
	Cloud  []procgen.Vec3   // KindCloud

	Children []*Node
}

// Bordered reports whether the node draws a box border that can participate
// in border collapse. Frames draw device chrome, not a box border, so only
// boxes qualify.
func (n *Node) Bordered() bool {
	return n.Kind == KindBox && n.Style.Outline != OutlineNone
}
