package engine

import (
	"fmt"

	"github.com/lixenwraith/abyss/effect"
	"github.com/lixenwraith/abyss/parameter"
)

// BridgeState is the user-facing summary of the energy bridge
type BridgeState int

const (
	BridgeReady BridgeState = iota
	BridgeActive
	BridgeRecharging
)

// BridgeStatus returns the bridge summary and the remaining cooldown in seconds
// Countdowns under BridgeStatusEpsilon report as ready
func (w *World) BridgeStatus() (BridgeState, float64) {
	if _, ok := w.Bridge.Phase().(*effect.Active); ok {
		return BridgeActive, 0
	}
	remaining := w.Bridge.Cooldown(w.Time)
	if remaining > parameter.BridgeStatusEpsilon.Seconds() {
		return BridgeRecharging, remaining
	}
	return BridgeReady, 0
}

// StatusLine is the once-per-frame readout: palette name and bridge state
func (w *World) StatusLine() string {
	name := w.Palette().Name
	switch state, remaining := w.BridgeStatus(); state {
	case BridgeActive:
		return name + " · active"
	case BridgeRecharging:
		return fmt.Sprintf("%s · %.1fs", name, remaining)
	default:
		return name + " · ready"
	}
}
