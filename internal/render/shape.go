package render

import (
	"math"

	"github.com/iburimskiy/blob-background/internal/config"
)

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// NoisyCircle returns the outline of a circle whose radius is perturbed by
// a bounded function of the angle. Samples run from 0 up to, but excluding,
// 2π in steps of config.AngleStep; the caller closes the path.
func NoisyCircle(cx, cy, radius float64) []Point {
	return AppendNoisyCircle(nil, cx, cy, radius)
}

// AppendNoisyCircle is NoisyCircle appending into dst.
func AppendNoisyCircle(dst []Point, cx, cy, radius float64) []Point {
	for a := 0.0; a < 2*math.Pi; a += config.AngleStep {
		r := radius + noise(a, radius)
		dst = append(dst, Point{
			X: cx + math.Cos(a)*r,
			Y: cy + math.Sin(a)*r,
		})
	}
	return dst
}

// noise is within ±config.NoiseAmount of radius.
func noise(a, radius float64) float64 {
	return math.Sin(a*config.NoiseFreqA+math.Cos(a*config.NoiseFreqB)) * radius * config.NoiseAmount
}
