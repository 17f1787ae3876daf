package main

import (
	"testing"
	"time"

	"github.com/lixenwraith/abyss/audio"
	"github.com/lixenwraith/abyss/config"
	"github.com/lixenwraith/abyss/engine"
	"github.com/lixenwraith/abyss/render"
	"github.com/lixenwraith/abyss/status"
	"github.com/lixenwraith/abyss/terminal"
	"github.com/lixenwraith/abyss/vmath"
)

// stubTerminal is a fixed-size terminal that counts flushes
type stubTerminal struct {
	w, h    int
	flushes int
	syncs   int
}

func (s *stubTerminal) Init() error { return nil }
func (s *stubTerminal) Fini() {}
func (s *stubTerminal) Size() (int, int) { return s.w, s.h }
func (s *stubTerminal) ColorMode() terminal.ColorMode { return terminal.ColorModeTrueColor }
func (s *stubTerminal) Flush(_ []terminal.Cell, _, _ int) { s.flushes++ }
func (s *stubTerminal) Sync() { s.syncs++ }
func (s *stubTerminal) PollEvent() terminal.Event { return terminal.Event{Type: terminal.EventClosed} }

type testApp struct {
	*app
	term  *stubTerminal
	clock *engine.MockTimeProvider
	reg   *status.Registry
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	term := &stubTerminal{w: 80, h: 45}
	cfg := config.Default()
	cfg.Core.Chains = 6
	cfg.Chain.Segments = 10
	ww, wh := render.WorldSize(term.w, term.h)
	world := engine.NewWorld(cfg, ww, wh, vmath.NewFastRand(3))

	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	reg := status.NewRegistry()
	cfgAudio := audio.DefaultAudioConfig()
	cfgAudio.Enabled = false
	a := newApp(term, world, reg, audio.NewSoundManager(cfgAudio), clock)
	return &testApp{app: a, term: term, clock: clock, reg: reg}
}

func (ta *testApp) step() {
	ta.clock.Advance(time.Second / 60)
	ta.frame(ta.clock.Now())
}

func key(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}

func TestAppQuitKeys(t *testing.T) {
	ta := newTestApp(t)

	tests := []struct {
		name string
		ev   terminal.Event
		want bool
	}{
		{"Escape", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyEscape}, false},
		{"CtrlC", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyCtrlC}, false},
		{"Closed", terminal.Event{Type: terminal.EventClosed}, false},
		{"Arrow ignored", terminal.Event{Type: terminal.EventKey, Key: terminal.KeyUp}, true},
		{"Unbound rune", key('z'), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ta.handleEvent(tt.ev); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAppDragMovesCore(t *testing.T) {
	ta := newTestApp(t)
	start := ta.world.Core.Pos

	ta.handleEvent(terminal.Event{Type: terminal.EventMouse, MouseX: 70, MouseY: 10, MouseBtn: terminal.MouseBtnLeft, MouseAction: terminal.MouseActionPress})
	for i := 0; i < 30; i++ {
		ta.step()
	}
	if ta.world.Core.Pos.X <= start.X || ta.world.Core.Pos.Y >= start.Y {
		t.Errorf("Expected core pulled toward the upper right, got %+v from %+v", ta.world.Core.Pos, start)
	}
	if len(ta.world.Ripples.Live) == 0 {
		t.Errorf("Expected a press ripple")
	}

	ta.handleEvent(terminal.Event{Type: terminal.EventMouse, MouseX: 70, MouseY: 10, MouseBtn: terminal.MouseBtnLeft, MouseAction: terminal.MouseActionRelease})
	ta.step()
	if ta.input.Snapshot().Pressed {
		t.Errorf("Expected button released")
	}
	if ta.term.flushes != 31 {
		t.Errorf("Expected 31 presented frames, got %d", ta.term.flushes)
	}
	if got := ta.reg.Ints.Get(status.KeyFrame).Load(); got != 31 {
		t.Errorf("Expected frame metric 31, got %d", got)
	}
}

func TestAppKeys(t *testing.T) {
	ta := newTestApp(t)

	ta.handleEvent(key(' '))
	ta.step()
	if !ta.world.Bridge.IsActive() {
		t.Errorf("Expected bridge active after Space")
	}
	if got := ta.reg.Strings.Get(status.KeyStatusLine).Load(); got != ta.world.Palette().Name+" · active" {
		t.Errorf("Expected published active status, got %q", got)
	}

	ta.handleEvent(key('e'))
	ta.handleEvent(key('e'))
	ta.handleEvent(key('q'))
	ta.step()
	if ta.world.PaletteIndex != 1 {
		t.Errorf("Expected palette 1, got %d", ta.world.PaletteIndex)
	}

	ta.handleEvent(key('h'))
	ta.step()
	if ta.world.HUDVisible {
		t.Errorf("Expected HUD hidden")
	}

	ta.handleEvent(key('p'))
	ta.step()
	if !ta.world.Paused || !ta.reg.Bools.Get(status.KeyPaused).Load() {
		t.Errorf("Expected paused world and metric")
	}
	frame := ta.world.Frame
	ta.step()
	if ta.world.Frame != frame {
		t.Errorf("Expected paused world to hold at frame %d, got %d", frame, ta.world.Frame)
	}

	ta.handleEvent(key('m'))
	if !ta.reg.Bools.Get(status.KeyMuted).Load() {
		t.Errorf("Expected muted metric after m")
	}
}

func TestAppResize(t *testing.T) {
	ta := newTestApp(t)

	ta.handleEvent(terminal.Event{Type: terminal.EventResize, Width: 120, Height: 45})
	wantW, _ := render.WorldSize(120, 45)
	if ta.world.Width != wantW {
		t.Errorf("Expected world width %f, got %f", wantW, ta.world.Width)
	}
	if ta.term.syncs != 1 {
		t.Errorf("Expected one sync on resize, got %d", ta.term.syncs)
	}

	// Same size is a no-op
	ta.handleEvent(terminal.Event{Type: terminal.EventResize, Width: 120, Height: 45})
	if ta.term.syncs != 1 {
		t.Errorf("Expected no extra sync, got %d", ta.term.syncs)
	}
}
