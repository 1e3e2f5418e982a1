package procgen

import (
	"math"
	"math/rand"
)

// Distribution names a 3D point-cloud generator. All distributions emit
// points roughly inside the [-1,1] cube.
type Distribution string

const (
	// CloudRandom scatters points uniformly through the cube volume.
	CloudRandom Distribution = "random"
	// CloudSphere distributes points evenly over the unit sphere using the
	// Fibonacci spiral.
	CloudSphere Distribution = "sphere"
	// CloudHelix winds a three-turn helix along the Y axis.
	CloudHelix Distribution = "helix"
	// CloudCube places points along the twelve wireframe edges of the cube.
	CloudCube Distribution = "cube"
	// CloudGauss clusters points around the origin via Box-Muller normals.
	CloudGauss Distribution = "gauss"
	// CloudWave samples a sin*cos product surface over the XZ plane.
	CloudWave Distribution = "wave"
)

// goldenAngle is the Fibonacci spiral's azimuthal increment in radians.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// Cloud returns n points of the named distribution, then jitters every
// coordinate by a uniform offset in [-noise, noise]. A non-positive count
// yields an empty slice; unknown distributions fall back to CloudRandom.
func Cloud(d Distribution, n int, noise float64, r *rand.Rand) []Vec3 {
	if n <= 0 {
		return nil
	}

	var points []Vec3
	switch d {
	case CloudSphere:
		points = spherePoints(n)
	case CloudHelix:
		points = helixPoints(n)
	case CloudCube:
		points = cubePoints(n)
	case CloudGauss:
		points = gaussPoints(n, r)
	case CloudWave:
		points = wavePoints(n)
	case CloudRandom:
		points = randomPoints(n, r)
	default:
		points = randomPoints(n, r)
	}

	if noise > 0 {
		for i := range points {
			points[i].X += (r.Float64()*2 - 1) * noise
			points[i].Y += (r.Float64()*2 - 1) * noise
			points[i].Z += (r.Float64()*2 - 1) * noise
		}
	}
	return points
}

func randomPoints(n int, r *rand.Rand) []Vec3 {
	points := make([]Vec3, n)
	for i := range points {
		points[i] = Vec3{
			X: r.Float64()*2 - 1,
			Y: r.Float64()*2 - 1,
			Z: r.Float64()*2 - 1,
		}
	}
	return points
}

// spherePoints walks the Fibonacci spiral: evenly spaced latitudes with the
// golden angle between consecutive azimuths.
func spherePoints(n int) []Vec3 {
	points := make([]Vec3, n)
	for i := range points {
		y := 1 - 2*(float64(i)+0.5)/float64(n)
		radius := math.Sqrt(1 - y*y)
		theta := goldenAngle * float64(i)
		points[i] = Vec3{
			X: radius * math.Cos(theta),
			Y: y,
			Z: radius * math.Sin(theta),
		}
	}
	return points
}

func helixPoints(n int) []Vec3 {
	const turns = 3
	points := make([]Vec3, n)
	for i := range points {
		t := float64(i) / float64(max(n-1, 1))
		angle := turns * 2 * math.Pi * t
		points[i] = Vec3{
			X: 0.8 * math.Cos(angle),
			Y: 2*t - 1,
			Z: 0.8 * math.Sin(angle),
		}
	}
	return points
}

// cubeEdges lists the twelve edges of the unit cube as corner pairs.
var cubeEdges = [12][2]Vec3{
	{{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}},
	{{X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}},
	{{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}},
	{{X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}},
	{{X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}},
	{{X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}},
	{{X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}},
	{{X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}},
	{{X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}},
	{{X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}},
	{{X: -1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: 1}},
	{{X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}},
}

// cubePoints spreads points along the wireframe edges, cycling edge by edge.
func cubePoints(n int) []Vec3 {
	points := make([]Vec3, n)
	perEdge := n/len(cubeEdges) + 1
	for i := range points {
		edge := cubeEdges[(i/perEdge)%len(cubeEdges)]
		t := float64(i%perEdge) / float64(perEdge)
		points[i] = edge[0].Scale(1 - t).Add(edge[1].Scale(t))
	}
	return points
}

// gaussPoints draws standard normals via the Box-Muller transform, scaled to
// keep the bulk of the cluster inside the cube.
func gaussPoints(n int, r *rand.Rand) []Vec3 {
	const spread = 0.35
	points := make([]Vec3, n)
	for i := range points {
		x, y := boxMuller(r)
		z, _ := boxMuller(r)
		points[i] = Vec3{X: x * spread, Y: y * spread, Z: z * spread}
	}
	return points
}

// boxMuller converts two uniform samples into a pair of independent standard
// normal samples. The first uniform is kept away from zero so the log stays
// finite.
func boxMuller(r *rand.Rand) (float64, float64) {
	u1 := r.Float64()
	if u1 < 1e-12 {
		u1 = 1e-12
	}
	u2 := r.Float64()
	mag := math.Sqrt(-2 * math.Log(u1))
	return mag * math.Cos(2*math.Pi*u2), mag * math.Sin(2*math.Pi*u2)
}

// wavePoints samples y = sin(pi*x)*cos(pi*z) over a square grid on the XZ
// plane. The grid is the largest square not exceeding n points; the remainder
// repeats the final row position.
func wavePoints(n int) []Vec3 {
	side := int(math.Sqrt(float64(n)))
	if side < 2 {
		side = 2
	}
	points := make([]Vec3, n)
	for i := range points {
		gx := i % side
		gz := (i / side) % side
		x := 2*float64(gx)/float64(side-1) - 1
		z := 2*float64(gz)/float64(side-1) - 1
		points[i] = Vec3{
			X: x,
			Y: 0.5 * math.Sin(math.Pi*x) * math.Cos(math.Pi*z),
			Z: z,
		}
	}
	return points
}
