package engine

import (
	"log"

	"github.com/lixenwraith/abyss/parameter"
	"github.com/lixenwraith/abyss/parameter/visual"
	"github.com/lixenwraith/abyss/physics"
)

// Step advances the world one frame
// Discrete toggles always apply; everything else needs a positive dt and an unpaused world
// dt above MaxFrameDelta is clamped
func (w *World) Step(in Input, dt float64) Events {
	var ev Events
	w.applyToggles(in, &ev)

	if w.Paused || dt <= 0 {
		return ev
	}
	dt = min(dt, parameter.MaxFrameDelta)
	cfg := w.Config

	if in.PressedEdge && cfg.Ambient.Ripples {
		w.Ripples.Spawn(in.PointerX, in.PointerY, w.Time)
	}

	w.Core.Follow(in.PointerX, in.PointerY, in.Pressed, cfg.Core.Stiffness, cfg.Core.Drag)

	if cfg.Ambient.Stars {
		w.Stars.Update(dt, w.Time, w.Core.Vel.X, w.Core.Vel.Y)
	}

	if in.BridgeRequest && w.Bridge.Request(w.Time) && w.Bridge.Activate(w.Time) {
		ev.BridgeActivated = true
		if cfg.Ambient.Ripples {
			w.Ripples.Spawn(w.Core.Pos.X, w.Core.Pos.Y, w.Time)
		}
		log.Printf("world %s: bridge active at t=%.2f", w.ID, w.Time)
	}

	sc := physics.StepContext{
		Core:   &w.Core,
		Ring:   &w.Ring,
		Peers:  w.Chains,
		Time:   w.Time,
		Dt:     dt,
		Active: in.Pressed,
	}
	for _, c := range w.Chains {
		c.Step(sc)
	}
	w.Ring.Update(w.Chains, dt, w.ringParams)
	w.cacheTips()

	if w.Bridge.Update(w.Time, dt, len(w.Tips), w.rng) {
		ev.BridgeEnded = true
	}

	w.Ripples.Expire(w.Time)

	w.Time += dt
	w.Frame++
	return ev
}

func (w *World) applyToggles(in Input, ev *Events) {
	if in.PaletteDelta != 0 {
		n := len(visual.Palettes)
		w.PaletteIndex = ((w.PaletteIndex+in.PaletteDelta)%n + n) % n
		w.Stars.Reseed(w.Width, w.Height, w.rng)
		ev.PaletteChanged = true
	}
	if in.ToggleHUD {
		w.HUDVisible = !w.HUDVisible
		ev.HUDChanged = true
	}
	if in.TogglePause {
		w.Paused = !w.Paused
		ev.PauseChanged = true
	}
}
