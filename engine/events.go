package engine

// Events reports the discrete transitions of one Step, consumed by audio and logging
type Events struct {
	BridgeActivated bool
	BridgeEnded     bool
	PaletteChanged  bool
	PauseChanged    bool
	HUDChanged      bool
}

// Any reports whether anything happened
func (e Events) Any() bool {
	return e.BridgeActivated || e.BridgeEnded || e.PaletteChanged || e.PauseChanged || e.HUDChanged
}
