package procgen

import (
	"math"
	"math/rand"
)

// Sample is one sampled chart point.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ChartFunc names a chart sampling function.
type ChartFunc string

const (
	ChartSin    ChartFunc = "sin"
	ChartCos    ChartFunc = "cos"
	ChartTan    ChartFunc = "tan"
	ChartSquare ChartFunc = "square"
	ChartSqrt   ChartFunc = "sqrt"
	ChartLinear ChartFunc = "linear"
	ChartRandom ChartFunc = "random"
	// ChartBinary emits a digital 0/1 signal: the level holds across adjacent
	// samples and flips with a fixed probability, so the series shows runs
	// rather than per-sample noise.
	ChartBinary ChartFunc = "binary"
)

// tanClamp caps tan samples so values near the asymptotes stay plottable.
const tanClamp = 4.0

// binaryFlipProbability is the per-sample chance that the binary signal
// changes level.
const binaryFlipProbability = 0.2

// Series samples the named function at n points across [min, max], adding
// uniform noise of amplitude noise to each sample. Degenerate parameters are
// clamped: fewer than two points becomes two, an empty or inverted range is
// widened to one unit. Unknown function names sample as linear.
func Series(fn ChartFunc, n int, min, max, noise float64, r *rand.Rand) []Sample {
	if n < 2 {
		n = 2
	}
	if max <= min {
		max = min + 1
	}

	// The binary signal's level is running state local to this one call.
	level := 0.0
	if r.Float64() < 0.5 {
		level = 1.0
	}

	samples := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		x := min + (max-min)*float64(i)/float64(n-1)

		var y float64
		switch fn {
		case ChartSin:
			y = math.Sin(x)
		case ChartCos:
			y = math.Cos(x)
		case ChartTan:
			y = math.Max(-tanClamp, math.Min(tanClamp, math.Tan(x)))
		case ChartSquare:
			y = x * x
		case ChartSqrt:
			y = math.Sqrt(math.Abs(x))
		case ChartRandom:
			y = r.Float64()
		case ChartBinary:
			if r.Float64() < binaryFlipProbability {
				level = 1 - level
			}
			y = level
		case ChartLinear:
			y = x
		default:
			y = x
		}

		if noise > 0 && fn != ChartBinary {
			y += (r.Float64()*2 - 1) * noise
		}
		samples = append(samples, Sample{X: x, Y: y})
	}
	return samples
}
