package parameter

import "time"

// Star Field
const (
	// StarAreaPerStar is world area per star before clamping
	StarAreaPerStar = 3600.0
	StarMinCount    = 90
	StarMaxCount    = 260

	StarDepthMin = 0.25

	// StarParallax scales counter-motion to core velocity for near stars
	StarParallax = 0.12

	// StarWrapMargin lets stars leave the viewport before wrapping
	StarWrapMargin = 50.0

	// StarTwinkleRate is noise-space advance per second
	StarTwinkleRate = 0.35

	StarDriftX = 6.0
	StarDriftY = 4.0
)

// Ripples
const (
	RippleLifespan    = 900 * time.Millisecond
	RippleStartRadius = 30.0
	RippleGrowth      = 180.0
	RippleThickness   = 2.0
	RippleAlphaScale  = 0.35
	RippleMaxLive     = 32
)
