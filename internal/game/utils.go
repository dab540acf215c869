package game

import (
	"image/color"
	"time"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// vertexColor converts c to straight-alpha vertex color components (0-1).
func vertexColor(c color.NRGBA) (r, g, b, a float32) {
	return float32(clamp01(float64(c.R) / 255)),
		float32(clamp01(float64(c.G) / 255)),
		float32(clamp01(float64(c.B) / 255)),
		float32(clamp01(float64(c.A) / 255))
}

// elapsedMillis converts d to fractional milliseconds
func elapsedMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
