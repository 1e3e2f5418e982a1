package procgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_AllShapesStayInsideBox(t *testing.T) {
	const w, h = 200.0, 120.0
	shapes := []PathShape{PathLoop, PathLine, PathSCurve, PathWander, PathZigzag}

	for _, shape := range shapes {
		t.Run(string(shape), func(t *testing.T) {
			points := Path(shape, w, h, testRand())
			require.GreaterOrEqual(t, len(points), 2)

			// The loop wobbles around its inset ellipse, so allow it a small
			// margin; everything else must respect the box exactly.
			margin := 0.0
			if shape == PathLoop {
				margin = 0.1 * h
			}
			for i, p := range points {
				assert.GreaterOrEqual(t, p.X, -margin, "point %d X", i)
				assert.LessOrEqual(t, p.X, w+margin, "point %d X", i)
				assert.GreaterOrEqual(t, p.Y, -margin, "point %d Y", i)
				assert.LessOrEqual(t, p.Y, h+margin, "point %d Y", i)
			}
		})
	}
}

func TestPath_LoopCloses(t *testing.T) {
	points := Path(PathLoop, 100, 100, testRand())
	require.Greater(t, len(points), 2)
	assert.Equal(t, points[0], points[len(points)-1])
}

func TestPath_ZigzagAlternates(t *testing.T) {
	points := Path(PathZigzag, 100, 50, testRand())
	require.Greater(t, len(points), 2)
	for i := 1; i < len(points); i++ {
		assert.NotEqual(t, points[i-1].Y, points[i].Y)
	}
}

func TestPath_ClampsDegenerateBox(t *testing.T) {
	points := Path(PathLine, 0, -5, testRand())
	require.GreaterOrEqual(t, len(points), 2)
}
