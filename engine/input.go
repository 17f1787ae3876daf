package engine

// Input is one frame's worth of pointer state and discrete requests
type Input struct {
	// Pointer in world coordinates
	PointerX, PointerY float64

	Pressed       bool // Button held
	PressedEdge   bool // Press began since the previous frame
	BridgeRequest bool
	PaletteDelta  int // Net palette cycles, negative is backward
	ToggleHUD     bool
	TogglePause   bool
}

// InputState accumulates input events between frames
// Edge-triggered requests are consumed by Snapshot; level state persists
type InputState struct {
	pointerX, pointerY float64
	pressed            bool

	pressedEdge   bool
	bridgeRequest bool
	paletteDelta  int
	toggleHUD     bool
	togglePause   bool
}

// NewInputState starts with the pointer at (x, y), released
func NewInputState(x, y float64) *InputState {
	return &InputState{pointerX: x, pointerY: y}
}

// Move updates the pointer position
func (s *InputState) Move(x, y float64) {
	s.pointerX, s.pointerY = x, y
}

// Press holds the button at (x, y)
func (s *InputState) Press(x, y float64) {
	s.Move(x, y)
	if !s.pressed {
		s.pressedEdge = true
	}
	s.pressed = true
}

// Release lets go of the button
func (s *InputState) Release() {
	s.pressed = false
}

// RequestBridge asks for the energy bridge on the next frame
func (s *InputState) RequestBridge() {
	s.bridgeRequest = true
}

// CyclePalette accumulates palette steps, -1 back and +1 forward
func (s *InputState) CyclePalette(delta int) {
	s.paletteDelta += delta
}

// ToggleHUD flips HUD visibility on the next frame; two toggles cancel
func (s *InputState) ToggleHUD() {
	s.toggleHUD = !s.toggleHUD
}

// TogglePause flips the pause state on the next frame; two toggles cancel
func (s *InputState) TogglePause() {
	s.togglePause = !s.togglePause
}

// Snapshot returns the frame input and clears edge-triggered requests
func (s *InputState) Snapshot() Input {
	in := Input{
		PointerX:      s.pointerX,
		PointerY:      s.pointerY,
		Pressed:       s.pressed,
		PressedEdge:   s.pressedEdge,
		BridgeRequest: s.bridgeRequest,
		PaletteDelta:  s.paletteDelta,
		ToggleHUD:     s.toggleHUD,
		TogglePause:   s.togglePause,
	}
	s.pressedEdge = false
	s.bridgeRequest = false
	s.paletteDelta = 0
	s.toggleHUD = false
	s.togglePause = false
	return in
}
