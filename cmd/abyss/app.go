package main

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/abyss/audio"
	"github.com/lixenwraith/abyss/engine"
	"github.com/lixenwraith/abyss/render"
	"github.com/lixenwraith/abyss/render/renderer"
	"github.com/lixenwraith/abyss/status"
	"github.com/lixenwraith/abyss/terminal"
)

// fpsWindow is how often the measured frame rate is republished
const fpsWindow = 500 * time.Millisecond

// app wires one world to the terminal, the render pipeline and audio
// All methods run on the main loop goroutine
type app struct {
	term         terminal.Terminal
	world        *engine.World
	input        *engine.InputState
	orchestrator *render.RenderOrchestrator
	sound        *audio.SoundManager
	clock        *engine.FrameClock
	meter        *status.FrameMeter

	cols, rows int
	colorMode  terminal.ColorMode

	// Cached metric pointers
	statStatus    *status.AtomicString
	statPaused    *atomic.Bool
	statMuted     *atomic.Bool
	statParticles *atomic.Int64
	statCooldown  *status.AtomicFloat
}

func newApp(term terminal.Terminal, world *engine.World, reg *status.Registry, sound *audio.SoundManager, provider engine.TimeProvider) *app {
	cols, rows := term.Size()
	a := &app{
		term:         term,
		world:        world,
		input:        engine.NewInputState(world.Core.Pos.X, world.Core.Pos.Y),
		orchestrator: render.NewRenderOrchestrator(term, cols, rows),
		sound:        sound,
		clock:        engine.NewFrameClock(provider),
		meter:        status.NewFrameMeter(reg, fpsWindow, provider.Now()),
		cols:         cols,
		rows:         rows,
		colorMode:    term.ColorMode(),

		statStatus:    reg.Strings.Get(status.KeyStatusLine),
		statPaused:    reg.Bools.Get(status.KeyPaused),
		statMuted:     reg.Bools.Get(status.KeyMuted),
		statParticles: reg.Ints.Get(status.KeyParticles),
		statCooldown:  reg.Floats.Get(status.KeyCooldown),
	}
	reg.Ints.Get(status.KeyChains).Store(int64(len(world.Chains)))

	type rendererDef struct {
		r        render.SystemRenderer
		priority render.RenderPriority
	}
	for _, def := range []rendererDef{
		{renderer.NewBackgroundRenderer(), render.PriorityBackground},
		{renderer.NewRippleRenderer(), render.PriorityRipple},
		{renderer.NewChainBackRenderer(), render.PriorityChainBack},
		{renderer.NewCoreRenderer(), render.PriorityCore},
		{renderer.NewChainFrontRenderer(), render.PriorityChainFront},
		{renderer.NewBridgeRenderer(), render.PriorityBridge},
		{renderer.NewHUDRenderer(world, reg), render.PriorityUI},
	} {
		a.orchestrator.Register(def.r, def.priority)
	}

	a.publish()
	return a
}

// handleEvent applies one terminal event; returns false when the user quits
func (a *app) handleEvent(ev terminal.Event) bool {
	switch ev.Type {
	case terminal.EventKey:
		return a.handleKey(ev)

	case terminal.EventMouse:
		if ev.MouseBtn != terminal.MouseBtnLeft && ev.MouseAction != terminal.MouseActionMove {
			return true
		}
		x, y := render.CellToWorld(ev.MouseX, ev.MouseY, a.rows)
		switch ev.MouseAction {
		case terminal.MouseActionPress, terminal.MouseActionDrag:
			a.input.Press(x, y)
		case terminal.MouseActionRelease:
			a.input.Move(x, y)
			a.input.Release()
		case terminal.MouseActionMove:
			a.input.Move(x, y)
		}

	case terminal.EventResize:
		a.resize(ev.Width, ev.Height)

	case terminal.EventClosed, terminal.EventError:
		return false
	}
	return true
}

func (a *app) handleKey(ev terminal.Event) bool {
	switch ev.Key {
	case terminal.KeyEscape, terminal.KeyCtrlC:
		return false
	case terminal.KeyRune:
	default:
		return true
	}

	switch ev.Rune {
	case ' ':
		a.input.RequestBridge()
	case 'q', 'Q':
		a.input.CyclePalette(-1)
	case 'e', 'E':
		a.input.CyclePalette(1)
	case 'h', 'H':
		a.input.ToggleHUD()
	case 'p', 'P':
		a.input.TogglePause()
	case 'm', 'M':
		muted := a.sound.ToggleMute()
		a.statMuted.Store(muted)
		log.Printf("audio muted: %v", muted)
	}
	return true
}

// resize rebuilds the canvas and the world viewport between frames
func (a *app) resize(cols, rows int) {
	if cols == a.cols && rows == a.rows {
		return
	}
	a.cols, a.rows = cols, rows
	a.orchestrator.Resize(cols, rows)
	a.world.Resize(render.WorldSize(cols, rows))
}

// frame steps the world by the measured delta and presents it
func (a *app) frame(now time.Time) {
	dt := a.clock.Tick()
	ev := a.world.Step(a.input.Snapshot(), dt)
	a.dispatch(ev)
	a.publish()

	a.orchestrator.RenderFrame(render.NewRenderContext(a.world, a.cols, a.rows, dt, a.colorMode))
	a.meter.Tick(now)
}

// dispatch maps frame transitions to audio cues and logs
func (a *app) dispatch(ev engine.Events) {
	if !ev.Any() {
		return
	}
	if ev.BridgeActivated {
		a.sound.PlayBridgeChime()
		a.sound.StartHum()
	}
	if ev.BridgeEnded {
		a.sound.StopHum()
		log.Printf("bridge ended at t=%.2f", a.world.Time)
	}
	if ev.PaletteChanged {
		a.sound.PlayTick()
		log.Printf("palette: %s", a.world.Palette().Name)
	}
	if ev.PauseChanged {
		if a.world.Paused {
			a.sound.StopHum()
		} else if a.world.Bridge.IsActive() {
			a.sound.StartHum()
		}
	}
}

func (a *app) publish() {
	a.statStatus.Store(a.world.StatusLine())
	a.statPaused.Store(a.world.Paused)
	a.statMuted.Store(a.sound.IsMuted())
	a.statParticles.Store(int64(len(a.world.Bridge.Particles)))
	a.statCooldown.Set(a.world.Bridge.Cooldown(a.world.Time))
}
