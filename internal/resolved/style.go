package resolved

// Direction specifies the main axis for laying out children.
type Direction int

const (
	// Column stacks children top-to-bottom; top/bottom are the main-axis
	// edges and left/right the cross-axis edges.
	Column Direction = iota
	// Row lays children left-to-right, swapping which edge pair is main axis.
	Row
)

// String returns the document value for the direction.
func (d Direction) String() string {
	if d == Row {
		return "row"
	}
	return "column"
}

// Outline names a node's border treatment.
type Outline int

const (
	OutlineNone Outline = iota
	OutlineThin
	OutlineThick
	OutlineDashed
)

var outlineNames = [...]string{
	OutlineNone:   "none",
	OutlineThin:   "thin",
	OutlineThick:  "thick",
	OutlineDashed: "dashed",
}

// String returns the document value for the outline.
func (o Outline) String() string {
	if int(o) < len(outlineNames) {
		return outlineNames[o]
	}
	return "none"
}

// OutlineFor maps a document value to an outline. Unrecognized values mean no
// border rather than an error.
func OutlineFor(s string) Outline {
	switch s {
	case "thin":
		return OutlineThin
	case "thick":
		return OutlineThick
	case "dashed":
		return OutlineDashed
	default:
		return OutlineNone
	}
}

// Edges is a per-edge amount in layout units.
type Edges struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// EdgeAll returns Edges with the same amount on all four sides.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// Style is the subset of layout properties the collapse analyzer depends on.
// Pixel geometry is delegated to the host box-model engine; the analyzer only
// needs flow direction, spacing, and growth behavior.
type Style struct {
	Direction Direction
	Gap       float64
	Padding   Edges

	// Grow marks a node that stretches to fill remaining main-axis space in
	// its parent.
	Grow bool

	Outline Outline
}
