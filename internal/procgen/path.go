package procgen

import (
	"math"
	"math/rand"
)

// Point is a 2D coordinate in the map node's local box.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PathShape names a 2D trajectory generator.
type PathShape string

const (
	// PathLoop is a closed, slightly irregular loop.
	PathLoop PathShape = "loop"
	// PathLine is a near-straight route with a slight bow.
	PathLine PathShape = "line"
	// PathSCurve sweeps an S across the box.
	PathSCurve PathShape = "scurve"
	// PathWander is a random walk drifting across the box.
	PathWander PathShape = "wander"
	// PathZigzag alternates sharply between the top and bottom halves.
	PathZigzag PathShape = "zigzag"
)

// pathPadFraction insets every trajectory from the bounding box so strokes
// stay clear of the node border.
const pathPadFraction = 0.1

// Path returns a polyline for the named shape inside a w×h box, inset by a
// uniform padding. Unknown shapes fall back to PathLine. Non-positive box
// dimensions are clamped to 1.
func Path(shape PathShape, w, h float64, r *rand.Rand) []Point {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	pad := pathPadFraction * math.Min(w, h)

	switch shape {
	case PathLoop:
		return loopPath(w, h, pad, r)
	case PathSCurve:
		return sCurvePath(w, h, pad)
	case PathWander:
		return wanderPath(w, h, pad, r)
	case PathZigzag:
		return zigzagPath(w, h, pad)
	case PathLine:
		return linePath(w, h, pad)
	default:
		return linePath(w, h, pad)
	}
}

// loopPath samples an ellipse with mild radius wobble and closes it by
// repeating the first point.
func loopPath(w, h, pad float64, r *rand.Rand) []Point {
	const segments = 24
	cx, cy := w/2, h/2
	rx, ry := w/2-pad, h/2-pad

	points := make([]Point, 0, segments+1)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / segments
		wobble := 1 + 0.08*(r.Float64()*2-1)
		points = append(points, Point{
			X: cx + rx*wobble*math.Cos(angle),
			Y: cy + ry*wobble*math.Sin(angle),
		})
	}
	return append(points, points[0])
}

// linePath bows gently off the straight diagonal.
func linePath(w, h, pad float64) []Point {
	const segments = 16
	points := make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / segments
		bow := 0.15 * h * math.Sin(math.Pi*t)
		points = append(points, Point{
			X: pad + t*(w-2*pad),
			Y: pad + t*(h-2*pad) - bow,
		})
	}
	return points
}

// sCurvePath sweeps left to right while the vertical position follows a full
// sine period.
func sCurvePath(w, h, pad float64) []Point {
	const segments = 24
	points := make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / segments
		points = append(points, Point{
			X: pad + t*(w-2*pad),
			Y: h/2 + (h/2-pad)*math.Sin(2*math.Pi*t)*0.8,
		})
	}
	return points
}

// wanderPath walks rightward with random vertical drift, clamped to the box.
func wanderPath(w, h, pad float64, r *rand.Rand) []Point {
	const segments = 20
	y := h / 2
	step := h * 0.18

	points := make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / segments
		y += (r.Float64()*2 - 1) * step
		y = math.Max(pad, math.Min(h-pad, y))
		points = append(points, Point{X: pad + t*(w-2*pad), Y: y})
	}
	return points
}

// zigzagPath alternates between the upper and lower inset lines.
func zigzagPath(w, h, pad float64) []Point {
	const legs = 8
	points := make([]Point, 0, legs+1)
	for i := 0; i <= legs; i++ {
		t := float64(i) / legs
		y := pad
		if i%2 == 1 {
			y = h - pad
		}
		points = append(points, Point{X: pad + t*(w-2*pad), Y: y})
	}
	return points
}
