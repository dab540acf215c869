// Package blob generates the blob descriptors the background animates.
//
// Positions and radii are stored relative to the surface and resolved to
// pixels only at draw time, so a blob set stays valid for any surface of the
// size it was generated for.
package blob

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/blob-background/internal/config"
)

// RandomSource yields uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

// SystemRandom draws from the math/rand/v2 global source.
type SystemRandom struct{}

func (SystemRandom) Float64() float64 { return rand.Float64() }

// Vec is a 2D vector.
type Vec struct {
	X, Y float64
}

// Blob describes one shape. It is never mutated after generation.
type Blob struct {
	Pos    Vec     // fraction of surface width/height
	Radius float64 // fraction of the shorter surface side
	Color  color.NRGBA
	Motion Vec // displacement scale, each component in [-0.1, 0.1)
	Speed  float64
	Phase  float64
}

// Count returns how many blobs a width x height surface gets.
func Count(width, height int) int {
	area := float64(width) * float64(height)
	return max(config.MinBlobs, int(math.Round(area/config.AreaPerBlob)))
}

// Generate returns a fresh set of Count(width, height) blobs.
func Generate(width, height int, rnd RandomSource) []Blob {
	n := Count(width, height)
	blobs := make([]Blob, n)
	for i := range blobs {
		blobs[i] = sample(rnd)
	}
	return blobs
}

func sample(rnd RandomSource) Blob {
	var b Blob
	span := 1 - 2*config.Margin
	b.Pos.X = config.Margin + rnd.Float64()*span
	b.Pos.Y = config.Margin + rnd.Float64()*span
	b.Radius = config.MinRadius + rnd.Float64()*(config.MaxRadius-config.MinRadius)
	b.Color = swatchColor(config.Palette[paletteIndex(rnd.Float64())])
	b.Motion.X = (rnd.Float64() - 0.5) * config.MotionRange
	b.Motion.Y = (rnd.Float64() - 0.5) * config.MotionRange
	b.Speed = config.MinSpeed + rnd.Float64()*config.SpeedRange
	b.Phase = rnd.Float64() * config.PhaseRange
	return b
}

func paletteIndex(u float64) int {
	i := int(math.Floor(u * float64(len(config.Palette))))
	// u == 1 would index past the end
	return min(max(i, 0), len(config.Palette)-1)
}

func swatchColor(s config.Swatch) color.NRGBA {
	a := math.Round(math.Min(math.Max(s.A, 0), 1) * 255)
	return color.NRGBA{R: s.R, G: s.G, B: s.B, A: uint8(a)}
}
