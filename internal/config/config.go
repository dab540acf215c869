package config

import "math"

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Blobs"

	// One blob per this many pixels of surface area
	AreaPerBlob = 120000
	MinBlobs    = 6

	// Blob placement, as fractions of the surface
	Margin    = 0.06
	MinRadius = 0.10
	MaxRadius = 0.22

	// Motion
	MotionRange  = 0.2 // dx, dy sampled in [-MotionRange/2, MotionRange/2)
	MinSpeed     = 0.5
	SpeedRange   = 0.7
	TimeScale    = 9000.0 // ms per unit of animation time
	OffsetScale  = 180.0
	PhaseRange   = 2 * math.Pi
	AngleStep    = 0.1
	NoiseAmount  = 0.07
	NoiseFreqA   = 3
	NoiseFreqB   = 5
	GlowBlur     = 80.0
	GlowLayers   = 6
	GlowStrength = 0.25
)

// Swatch is a palette entry with straight alpha in [0, 1].
type Swatch struct {
	R, G, B uint8
	A       float64
}

// Palette holds the blue/purple/cyan family blobs are coloured from.
var Palette = [...]Swatch{
	{79, 100, 255, 0.32},
	{123, 79, 255, 0.23},
	{58, 200, 255, 0.20},
	{93, 155, 255, 0.27},
	{103, 186, 255, 0.23},
	{20, 90, 255, 0.19},
	{110, 120, 255, 0.18},
	{100, 80, 230, 0.19},
}
