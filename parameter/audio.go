package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is linear gain applied to the whole mix
	AudioMasterVolume = 0.5
)

// Bridge Chime
// Fundamental and fifth, the fifth decays faster
const (
	ChimeDuration         = 700 * time.Millisecond
	ChimeAttack           = 5 * time.Millisecond
	ChimeFundamentalFreq  = 659.25 // E5
	ChimeFifthFreq        = 987.77 // B5
	ChimeFundamentalDecay = 650 * time.Millisecond
	ChimeFifthDecay       = 250 * time.Millisecond
	ChimeVolume           = 0.8
)

// Bridge Hum (continuous while the bridge is active)
const (
	HumBaseFreq    = 55.0
	HumWobbleRate  = 0.5 // Hz
	HumAmplitude   = 0.12
	HumFadeIn      = 200 * time.Millisecond
	HumVolume      = 0.6
	HumWobbleDepth = 0.35
)

// Palette Tick
const (
	TickDuration = 40 * time.Millisecond
	TickAttack   = 2 * time.Millisecond
	TickRelease  = 30 * time.Millisecond
	TickFreq     = 1200.0
	TickVolume   = 0.4
)
