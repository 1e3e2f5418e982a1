package procgen

import (
	"math"
	"math/rand"
)

// LatLon is a geographic coordinate in degrees.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Vec3 is a 3D coordinate. Globe routes use unit-sphere vectors scaled by the
// elevation multiplier; point clouds use it as a plain coordinate.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// slerpEpsilon is the angular separation below which slerp degenerates to a
// direct linear blend, avoiding division by a near-zero sine.
const slerpEpsilon = 1e-6

// elevationScale converts an altitude of 1.0 into a 30% radius lift at the
// arc's midpoint.
const elevationScale = 0.3

// ToCartesian converts a geographic coordinate to a unit-sphere vector.
func ToCartesian(p LatLon) Vec3 {
	lat := p.Lat * math.Pi / 180
	lon := p.Lon * math.Pi / 180
	return Vec3{
		X: math.Cos(lat) * math.Cos(lon),
		Y: math.Sin(lat),
		Z: math.Cos(lat) * math.Sin(lon),
	}
}

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Add returns the component-wise sum.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Norm returns the vector's length.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns a unit-length copy. The zero vector is returned as-is
// rather than producing NaN components.
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// Slerp interpolates between two unit vectors along the great circle joining
// them. When the separation angle is below slerpEpsilon the points are near
// coincident and a direct linear blend is returned instead.
func Slerp(a, b Vec3, t float64) Vec3 {
	dot := math.Max(-1, math.Min(1, a.Dot(b)))
	omega := math.Acos(dot)
	if omega < slerpEpsilon {
		return a.Scale(1 - t).Add(b.Scale(t)).Normalize()
	}
	sinOmega := math.Sin(omega)
	return a.Scale(math.Sin((1-t)*omega) / sinOmega).
		Add(b.Scale(math.Sin(t*omega) / sinOmega))
}

// Elevation maps a path parameter t in [0,1] and an altitude scalar to a
// radius multiplier: 1.0 at both ends, peaking at t=0.5. The 4t(1-t) parabola
// hits exactly 1 at its apex, so the peak lift is altitude*elevationScale.
func Elevation(t, altitude float64) float64 {
	return 1 + altitude*elevationScale*4*t*(1-t)
}

// Trajectory names a globe route generator.
type Trajectory string

const (
	// TrajectoryArc is a single great-circle arc between two random points.
	TrajectoryArc Trajectory = "arc"
	// TrajectoryPolar routes over the north pole.
	TrajectoryPolar Trajectory = "polar"
	// TrajectoryEquator follows the equator with a slight latitude wobble.
	TrajectoryEquator Trajectory = "equator"
	// TrajectoryRandom visits several random waypoints.
	TrajectoryRandom Trajectory = "random"
	// TrajectoryCircuit visits random waypoints and closes back on its origin.
	TrajectoryCircuit Trajectory = "circuit"
	// TrajectoryCustom interpolates the caller's own waypoints.
	TrajectoryCustom Trajectory = "custom"
)

// Route returns n points along the named trajectory, with the parabolic
// elevation arc already applied: each point is a unit-sphere position scaled
// by Elevation(t, altitude) for its path parameter t. The waypoints argument
// is consulted only by TrajectoryCustom; a custom route with fewer than two
// waypoints degrades to a single repeated point rather than failing.
func Route(shape Trajectory, n int, altitude float64, waypoints []LatLon, r *rand.Rand) []Vec3 {
	if n < 2 {
		n = 2
	}
	stops := routeWaypoints(shape, waypoints, r)
	return interpolate(stops, n, altitude)
}

// routeWaypoints expands a trajectory name into its geographic waypoint list.
func routeWaypoints(shape Trajectory, waypoints []LatLon, r *rand.Rand) []LatLon {
	switch shape {
	case TrajectoryPolar:
		lon := r.Float64()*360 - 180
		return []LatLon{
			{Lat: 35, Lon: lon},
			{Lat: 89, Lon: lon + 90},
			{Lat: 35, Lon: lon + 180},
		}
	case TrajectoryEquator:
		stops := make([]LatLon, 0, 7)
		lon := r.Float64()*360 - 180
		for i := 0; i <= 6; i++ {
			stops = append(stops, LatLon{
				Lat: (r.Float64()*2 - 1) * 12,
				Lon: lon + float64(i)*40,
			})
		}
		return stops
	case TrajectoryRandom:
		count := 3 + r.Intn(3)
		stops := make([]LatLon, 0, count)
		for i := 0; i < count; i++ {
			stops = append(stops, randomLatLon(r))
		}
		return stops
	case TrajectoryCircuit:
		count := 3 + r.Intn(3)
		stops := make([]LatLon, 0, count+1)
		for i := 0; i < count; i++ {
			stops = append(stops, randomLatLon(r))
		}
		// A circuit returns to its own origin.
		return append(stops, stops[0])
	case TrajectoryCustom:
		if len(waypoints) >= 2 {
			return waypoints
		}
		if len(waypoints) == 1 {
			return []LatLon{waypoints[0], waypoints[0]}
		}
		return []LatLon{{}, {}}
	case TrajectoryArc:
		return []LatLon{randomLatLon(r), randomLatLon(r)}
	default:
		return []LatLon{randomLatLon(r), randomLatLon(r)}
	}
}

// randomLatLon keeps latitudes out of the extreme polar caps so arcs stay
// visually distinct.
func randomLatLon(r *rand.Rand) LatLon {
	return LatLon{
		Lat: (r.Float64()*2 - 1) * 70,
		Lon: r.Float64()*360 - 180,
	}
}

// interpolate distributes n points across the pairwise great-circle segments
// of the waypoint list and applies the elevation arc over the whole route.
func interpolate(stops []LatLon, n int, altitude float64) []Vec3 {
	unit := make([]Vec3, len(stops))
	for i, s := range stops {
		unit[i] = ToCartesian(s)
	}

	segments := len(unit) - 1
	points := make([]Vec3, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)

		// Locate the segment t falls in and its local parameter.
		pos := t * float64(segments)
		seg := int(pos)
		if seg >= segments {
			seg = segments - 1
		}
		local := pos - float64(seg)

		p := Slerp(unit[seg], unit[seg+1], local)
		points = append(points, p.Scale(Elevation(t, altitude)))
	}
	return points
}
