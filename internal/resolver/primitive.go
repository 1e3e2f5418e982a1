package resolver

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/wireframego/internal/icons"
	"github.com/vk/wireframego/internal/procgen"
	"github.com/vk/wireframego/internal/resolved"
	"github.com/vk/wireframego/internal/spec"
	"github.com/vk/wireframego/internal/template"
)

// primitiveKinds maps document node kinds to their resolved counterparts.
var primitiveKinds = map[spec.Kind]resolved.Kind{
	spec.KindFrame:  resolved.KindFrame,
	spec.KindBox:    resolved.KindBox,
	spec.KindText:   resolved.KindText,
	spec.KindIcon:   resolved.KindIcon,
	spec.KindCursor: resolved.KindCursor,
	spec.KindMap:    resolved.KindMap,
	spec.KindChart:  resolved.KindChart,
	spec.KindGlobe:  resolved.KindGlobe,
	spec.KindCloud:  resolved.KindCloud,
}

// buildPrimitive emits the resolved node for a primitive, computing any
// procedural data it carries and recursing into its children.
func (r *run) buildPrimitive(n *spec.Node, sc scope, depth int) *resolved.Node {
	out := &resolved.Node{
		Kind:  primitiveKinds[n.Kind],
		Label: n.Label,
		Style: styleOf(n),
		Props: n.Props,
	}

	switch out.Kind {
	case resolved.KindText:
		out.Text = stringProp(n, "content", "")
	case resolved.KindIcon:
		out.Icon = icons.Canonical(stringProp(n, "name", ""))
	case resolved.KindMap:
		out.Path = procgen.Path(
			procgen.PathShape(stringProp(n, "shape", string(procgen.PathLine))),
			numberProp(n, "width", 200),
			numberProp(n, "height", 120),
			r.rand,
		)
	case resolved.KindChart:
		out.Series = procgen.Series(
			procgen.ChartFunc(stringProp(n, "fn", string(procgen.ChartLinear))),
			int(numberProp(n, "points", 40)),
			numberProp(n, "min", 0),
			numberProp(n, "max", 10),
			numberProp(n, "noise", 0),
			r.rand,
		)
	case resolved.KindGlobe:
		out.Route = procgen.Route(
			procgen.Trajectory(stringProp(n, "trajectory", string(procgen.TrajectoryArc))),
			int(numberProp(n, "points", 64)),
			numberProp(n, "altitude", 0),
			waypointsProp(n),
			r.rand,
		)
	case resolved.KindCloud:
		out.Cloud = procgen.Cloud(
			procgen.Distribution(stringProp(n, "distribution", string(procgen.CloudRandom))),
			int(numberProp(n, "count", 200)),
			numberProp(n, "noise", 0),
			r.rand,
		)
	}

	out.Children = r.resolveChildren(n, sc, depth)
	return out
}

// styleOf extracts the layout-facing properties the collapse analyzer reads.
// Children stack in a column unless the document says otherwise.
func styleOf(n *spec.Node) resolved.Style {
	style := resolved.Style{
		Direction: resolved.Column,
		Gap:       numberProp(n, "gap", 0),
		Padding:   paddingProp(n),
		Grow:      boolProp(n, "grow"),
		Outline:   resolved.OutlineFor(stringProp(n, "outline", "")),
	}
	if stringProp(n, "direction", "") == "row" {
		style.Direction = resolved.Row
	}
	return style
}

// stringProp returns a property as a string, or the default when absent or
// unconvertible.
func stringProp(n *spec.Node, name, def string) string {
	v := n.Prop(name)
	if v == cty.NilVal || v.IsNull() {
		return def
	}
	s := template.Stringify(v)
	if s == "" {
		return def
	}
	return s
}

// numberProp returns a numeric property, or the default when absent or
// unconvertible.
func numberProp(n *spec.Node, name string, def float64) float64 {
	return numberVal(n.Prop(name), def)
}

func numberVal(v cty.Value, def float64) float64 {
	if v == cty.NilVal || v.IsNull() {
		return def
	}
	c, err := convert.Convert(v, cty.Number)
	if err != nil {
		return def
	}
	f, _ := c.AsBigFloat().Float64()
	return f
}

// boolProp returns a boolean property; absence and unconvertible values read
// as false.
func boolProp(n *spec.Node, name string) bool {
	v := n.Prop(name)
	if v == cty.NilVal || v.IsNull() {
		return false
	}
	c, err := convert.Convert(v, cty.Bool)
	if err != nil {
		return false
	}
	return c.True()
}

// paddingProp accepts either a single number applied to all four edges or a
// per-edge mapping with any of top/right/bottom/left.
func paddingProp(n *spec.Node) resolved.Edges {
	v := n.Prop("padding")
	if v == cty.NilVal || v.IsNull() {
		return resolved.Edges{}
	}
	if c, err := convert.Convert(v, cty.Number); err == nil {
		f, _ := c.AsBigFloat().Float64()
		return resolved.EdgeAll(f)
	}
	if !v.Type().IsObjectType() && !v.Type().IsMapType() {
		return resolved.Edges{}
	}
	edges := resolved.Edges{}
	for it := v.ElementIterator(); it.Next(); {
		key, ev := it.Element()
		switch template.Stringify(key) {
		case "top":
			edges.Top = numberVal(ev, 0)
		case "right":
			edges.Right = numberVal(ev, 0)
		case "bottom":
			edges.Bottom = numberVal(ev, 0)
		case "left":
			edges.Left = numberVal(ev, 0)
		}
	}
	return edges
}

// waypointsProp reads the custom trajectory waypoint list: a sequence of
// {lat, lon} records. Malformed entries contribute a zero coordinate rather
// than failing the node.
func waypointsProp(n *spec.Node) []procgen.LatLon {
	v := n.Prop("waypoints")
	if v == cty.NilVal || v.IsNull() || !isArray(v.Type()) {
		return nil
	}
	var points []procgen.LatLon
	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		point := procgen.LatLon{}
		if !ev.IsNull() && (ev.Type().IsObjectType() || ev.Type().IsMapType()) {
			for fit := ev.ElementIterator(); fit.Next(); {
				key, fv := fit.Element()
				switch template.Stringify(key) {
				case "lat":
					point.Lat = numberVal(fv, 0)
				case "lon":
					point.Lon = numberVal(fv, 0)
				}
			}
		}
		points = append(points, point)
	}
	return points
}
