package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// TcellTerminal implements Terminal on a tcell.Screen
type TcellTerminal struct {
	screen    tcell.Screen
	colorMode ColorMode

	mu       sync.Mutex
	finished bool
	buttons  tcell.ButtonMask
}

// New creates a terminal on the process tty
func New() (*TcellTerminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen wraps an existing screen, used with tcell.NewSimulationScreen in tests
func NewWithScreen(screen tcell.Screen) *TcellTerminal {
	return &TcellTerminal{
		screen:    screen,
		colorMode: DetectColorMode(),
	}
}

func (t *TcellTerminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.EnableMouse(tcell.MouseMotionEvents)
	t.screen.HideCursor()
	t.screen.Clear()

	if t.screen.Colors() >= 1<<24 {
		t.colorMode = ColorModeTrueColor
	}
	return nil
}

func (t *TcellTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finished {
		return
	}
	t.finished = true
	t.screen.DisableMouse()
	t.screen.Fini()
}

func (t *TcellTerminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *TcellTerminal) ColorMode() ColorMode {
	return t.colorMode
}

func (t *TcellTerminal) Flush(cells []Cell, width, height int) {
	sw, sh := t.screen.Size()
	w := min(width, sw)
	h := min(height, sh)

	for y := 0; y < h; y++ {
		row := cells[y*width : y*width+width]
		for x := 0; x < w; x++ {
			c := row[x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, cellStyle(c))
		}
	}
	t.screen.Show()
}

func (t *TcellTerminal) Sync() {
	t.screen.Sync()
}

// PollEvent blocks on the screen and translates the next relevant event
// Events with no Event equivalent are skipped
func (t *TcellTerminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}
		if out, ok := t.translate(ev); ok {
			return out
		}
	}
}

func (t *TcellTerminal) translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return Event{Type: EventKey, Key: translateKey(ev.Key()), Rune: ev.Rune()}, true

	case *tcell.EventMouse:
		x, y := ev.Position()
		btn, action := t.mouseTransition(ev.Buttons())
		return Event{
			Type:        EventMouse,
			MouseX:      x,
			MouseY:      y,
			MouseBtn:    btn,
			MouseAction: action,
		}, true

	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true

	case *tcell.EventError:
		return Event{Type: EventError, Err: ev}, true
	}
	return Event{}, false
}

// mouseTransition derives press/release/drag from tcell's button state snapshots
func (t *TcellTerminal) mouseTransition(now tcell.ButtonMask) (MouseButton, MouseAction) {
	prev := t.buttons
	t.buttons = now

	btn := MouseBtnNone
	switch {
	case now&tcell.Button1 != 0 || prev&tcell.Button1 != 0:
		btn = MouseBtnLeft
	case now&tcell.Button3 != 0 || prev&tcell.Button3 != 0:
		btn = MouseBtnMiddle
	case now&tcell.Button2 != 0 || prev&tcell.Button2 != 0:
		btn = MouseBtnRight
	}

	held := now & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	wasHeld := prev & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	switch {
	case held != 0 && wasHeld == 0:
		return btn, MouseActionPress
	case held == 0 && wasHeld != 0:
		return btn, MouseActionRelease
	case held != 0:
		return btn, MouseActionDrag
	default:
		return MouseBtnNone, MouseActionMove
	}
}

func translateKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyCtrlC:
		return KeyCtrlC
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	}
	return KeyNone
}

func cellStyle(c Cell) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
		Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
	if c.Attrs&AttrBold != 0 {
		style = style.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		style = style.Dim(true)
	}
	return style
}
