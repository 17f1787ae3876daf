package parameter

import "time"

// Frame Loop & Timing
const (
	// FrameRate is the target frames per second of the render loop
	FrameRate = 60

	// FrameUpdateInterval is the rendering frame interval (~60 FPS)
	FrameUpdateInterval = time.Second / FrameRate

	// MaxFrameDelta caps simulated seconds per frame after a stall or suspend
	// Decay exponents are dt*60, an uncapped resume would collapse damping to zero
	MaxFrameDelta = 0.1

	// EventQueueSize is the buffered capacity of the terminal event channel
	EventQueueSize = 256
)

// World Viewport
const (
	// ViewWorldHeight is the simulated height in world units mapped onto the canvas height
	// World width follows the terminal aspect ratio
	ViewWorldHeight = 900.0

	// MinCanvasScale floors canvas pixels per world unit on tiny terminals
	MinCanvasScale = 0.02
)
