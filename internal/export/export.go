package export

import (
	"encoding/json"
	"io"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/vk/wireframego/internal/collapse"
	"github.com/vk/wireframego/internal/nodeid"
	"github.com/vk/wireframego/internal/procgen"
	"github.com/vk/wireframego/internal/resolved"
)

// Document is the serialized render result: the resolved frames plus the
// collapse flags keyed by node address.
type Document struct {
	Frames   []*Node                   `json:"frames"`
	Collapse map[string]collapse.Flags `json:"collapse"`
}

// Node is the JSON form of one resolved node.
type Node struct {
	Address string `json:"address"`
	Kind    string `json:"kind"`
	Label   string `json:"label,omitempty"`
	Text    string `json:"text,omitempty"`
	Icon    string `json:"icon,omitempty"`
	Link    string `json:"link,omitempty"`

	Style Style `json:"style"`

	Props map[string]json.RawMessage `json:"props,omitempty"`

	Path   []procgen.Point  `json:"path,omitempty"`
	Series []procgen.Sample `json:"series,omitempty"`
	Route  []procgen.Vec3   `json:"route,omitempty"`
	Cloud  []procgen.Vec3   `json:"cloud,omitempty"`

	Children []*Node `json:"children,omitempty"`
}

// Style is the JSON form of the layout-facing node style.
type Style struct {
	Direction string  `json:"direction"`
	Gap       float64 `json:"gap,omitempty"`
	Padding   Edges   `json:"padding"`
	Grow      bool    `json:"grow,omitempty"`
	Outline   string  `json:"outline,omitempty"`
}

// Edges is the JSON form of a per-edge amount.
type Edges struct {
	Top    float64 `json:"top,omitempty"`
	Right  float64 `json:"right,omitempty"`
	Bottom float64 `json:"bottom,omitempty"`
	Left   float64 `json:"left,omitempty"`
}

// Build assembles the export document. Only nodes with at least one collapsed
// edge appear in the collapse map; consumers treat absence as all-false.
func Build(frames []*resolved.Node, table collapse.Table) *Document {
	doc := &Document{
		Frames:   make([]*Node, 0, len(frames)),
		Collapse: make(map[string]collapse.Flags),
	}
	for i, frame := range frames {
		addr := nodeid.Address{}.Child(frame.Kind.String(), i)
		doc.Frames = append(doc.Frames, buildNode(doc, frame, addr, table))
	}
	return doc
}

// WriteJSON writes the document as indented JSON.
func (d *Document) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

func buildNode(doc *Document, n *resolved.Node, addr nodeid.Address, table collapse.Table) *Node {
	out := &Node{
		Address: addr.String(),
		Kind:    n.Kind.String(),
		Label:   n.Label,
		Text:    n.Text,
		Icon:    n.Icon,
		Link:    n.Link,
		Style: Style{
			Direction: n.Style.Direction.String(),
			Gap:       n.Style.Gap,
			Padding: Edges{
				Top:    n.Style.Padding.Top,
				Right:  n.Style.Padding.Right,
				Bottom: n.Style.Padding.Bottom,
				Left:   n.Style.Padding.Left,
			},
			Grow:    n.Style.Grow,
			Outline: n.Style.Outline.String(),
		},
		Path:   n.Path,
		Series: n.Series,
		Route:  n.Route,
		Cloud:  n.Cloud,
	}

	if len(n.Props) > 0 {
		out.Props = make(map[string]json.RawMessage, len(n.Props))
		for name, v := range n.Props {
			raw, err := marshalProp(v)
			if err != nil {
				// Unserializable props are dropped rather than failing the
				// whole export.
				continue
			}
			out.Props[name] = raw
		}
	}

	if flags := table.Flags(n); flags.Any() {
		doc.Collapse[out.Address] = flags
	}

	for i, child := range n.Children {
		out.Children = append(out.Children, buildNode(doc, child, addr.Child(child.Kind.String(), i), table))
	}
	return out
}

// marshalProp serializes a cty property value with its own type, so numbers
// stay numbers and records stay objects in the exported JSON.
func marshalProp(v cty.Value) (json.RawMessage, error) {
	if v == cty.NilVal {
		return json.RawMessage("null"), nil
	}
	ty := v.Type()
	if ty == cty.NilType {
		ty = cty.DynamicPseudoType
	}
	return ctyjson.Marshal(v, ty)
}
