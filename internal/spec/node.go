package spec

import (
	"unicode"
	"unicode/utf8"

	"github.com/zclconf/go-cty/cty"
)

// Kind discriminates the node variants of a wireframe document. It is decided
// once, at decode time, so the rest of the engine never probes raw keys.
type Kind int

const (
	// KindUnknown marks a node whose tag matched neither a primitive nor the
	// component reference convention. The resolver degrades it to an empty
	// fallback box.
	KindUnknown Kind = iota
	KindFrame
	KindBox
	KindText
	KindIcon
	KindCursor
	KindMap
	KindChart
	KindGlobe
	KindCloud

	// KindComponent is an instance of a library component, identified by a
	// capitalized tag.
	KindComponent

	// KindEach repeats a node template once per item of a scope array. It is
	// only meaningful in child position.
	KindEach

	// KindSlot requests projection of the instantiating caller's own children.
	// It is only meaningful in child position.
	KindSlot
)

// primitiveTags maps lowercase document tags to their node kinds.
var primitiveTags = map[string]Kind{
	"frame":  KindFrame,
	"box":    KindBox,
	"text":   KindText,
	"icon":   KindIcon,
	"cursor": KindCursor,
	"map":    KindMap,
	"chart":  KindChart,
	"globe":  KindGlobe,
	"cloud":  KindCloud,
	"each":   KindEach,
	"slot":   KindSlot,
}

// kindTags is the reverse of primitiveTags plus the non-document kinds,
// used for addresses and diagnostics.
var kindTags = map[Kind]string{
	KindUnknown:   "unknown",
	KindFrame:     "frame",
	KindBox:       "box",
	KindText:      "text",
	KindIcon:      "icon",
	KindCursor:    "cursor",
	KindMap:       "map",
	KindChart:     "chart",
	KindGlobe:     "globe",
	KindCloud:     "cloud",
	KindComponent: "component",
	KindEach:      "each",
	KindSlot:      "slot",
}

// String returns the document tag for the kind.
func (k Kind) String() string {
	if tag, ok := kindTags[k]; ok {
		return tag
	}
	return "unknown"
}

// KindForTag classifies a document tag. Lowercase tags map to primitives,
// capitalized tags are component references, anything else is unknown.
func KindForTag(tag string) Kind {
	if kind, ok := primitiveTags[tag]; ok {
		return kind
	}
	if IsComponentRef(tag) {
		return KindComponent
	}
	return KindUnknown
}

// IsComponentRef reports whether a tag follows the component reference naming
// convention: a leading uppercase letter, which no primitive tag has.
func IsComponentRef(tag string) bool {
	r, _ := utf8.DecodeRuneInString(tag)
	return unicode.IsUpper(r)
}

// Node is one entry of a wireframe document tree: a primitive drawing
// instruction, a component instance, or one of the two child-position
// markers (each, slot).
type Node struct {
	Kind Kind

	// Component is the referenced component name. Set only for KindComponent.
	Component string

	// Source names the scope array an each block iterates. Set only for KindEach.
	Source string

	// Label is the optional document label of the node (frame "login" { ... }).
	Label string

	// Props holds the node's attributes. cty values are immutable, so props
	// may be shared freely between copies.
	Props map[string]cty.Value

	// Children are the nested nodes, in document order. For KindEach they
	// form the repeated template rather than literal children.
	Children []*Node
}

// Prop returns the named property, or cty.NilVal when absent.
func (n *Node) Prop(name string) cty.Value {
	if n.Props == nil {
		return cty.NilVal
	}
	v, ok := n.Props[name]
	if !ok {
		return cty.NilVal
	}
	return v
}

// Clone returns a deep copy of the node tree. The component library shares
// its templates across every render request, so the resolver clones before
// any substitution touches a template.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Kind:      n.Kind,
		Component: n.Component,
		Source:    n.Source,
		Label:     n.Label,
	}
	if n.Props != nil {
		out.Props = make(map[string]cty.Value, len(n.Props))
		for name, v := range n.Props {
			out.Props[name] = v
		}
	}
	if n.Children != nil {
		out.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}
