package render

import (
	"testing"

	"github.com/lixenwraith/abyss/terminal"
)

var (
	red   = RGB{R: 255}
	blue  = RGB{B: 255}
	white = RGB{R: 255, G: 255, B: 255}
)

func TestCanvasDimensions(t *testing.T) {
	c := NewCanvas(12, 5)
	if c.PixelWidth() != 12 || c.PixelHeight() != 10 {
		t.Errorf("Expected 12x10 pixels, got %dx%d", c.PixelWidth(), c.PixelHeight())
	}
	if len(c.Cells()) != 60 {
		t.Errorf("Expected 60 cells, got %d", len(c.Cells()))
	}

	c.Resize(4, 2)
	if c.PixelWidth() != 4 || c.PixelHeight() != 4 || len(c.Cells()) != 8 {
		t.Errorf("Expected 4x4 pixels and 8 cells after resize, got %dx%d and %d", c.PixelWidth(), c.PixelHeight(), len(c.Cells()))
	}
}

func TestCanvasHalfBlockComposition(t *testing.T) {
	c := NewCanvas(2, 1)
	c.SetPixel(0, 0, red, BlendReplace, 1)
	c.SetPixel(0, 1, blue, BlendReplace, 1)

	cell := c.Cells()[0]
	if cell.Rune != halfBlock {
		t.Errorf("Expected half block glyph, got %q", cell.Rune)
	}
	if cell.Fg != red || cell.Bg != blue {
		t.Errorf("Expected fg=top red and bg=bottom blue, got %+v / %+v", cell.Fg, cell.Bg)
	}
}

func TestCanvasTextOverridesPixels(t *testing.T) {
	c := NewCanvas(2, 1)
	c.SetPixel(1, 0, RGB{R: 100}, BlendReplace, 1)
	c.SetPixel(1, 1, RGB{B: 200}, BlendReplace, 1)
	c.SetText(1, 0, 'A', white, terminal.AttrBold)

	cell := c.Cells()[1]
	if cell.Rune != 'A' || cell.Fg != white || cell.Attrs != terminal.AttrBold {
		t.Errorf("Expected bold white A, got %+v", cell)
	}
	want := RGB{R: 50, B: 100}
	if cell.Bg != want {
		t.Errorf("Expected background %+v averaged from both pixels, got %+v", want, cell.Bg)
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(7, 3)
	for y := 0; y < c.PixelHeight(); y++ {
		for x := 0; x < c.PixelWidth(); x++ {
			c.SetPixel(x, y, white, BlendReplace, 1)
		}
	}
	c.DrawString(0, 1, "hello", white, terminal.AttrNone)
	c.Clear()

	for i, cell := range c.Cells() {
		if cell.Rune != halfBlock || cell.Fg != RGBBlack || cell.Bg != RGBBlack {
			t.Fatalf("Expected cleared cell at %d, got %+v", i, cell)
		}
	}
}

func TestCanvasBoundsIgnored(t *testing.T) {
	c := NewCanvas(3, 2)
	c.SetPixel(-1, 0, white, BlendReplace, 1)
	c.SetPixel(0, 4, white, BlendReplace, 1)
	c.SetText(3, 0, 'x', white, terminal.AttrNone)

	if got := c.Pixel(99, 99); got != RGBBlack {
		t.Errorf("Expected black out of bounds, got %+v", got)
	}
	for i, cell := range c.Cells() {
		if cell.Rune != halfBlock || cell.Fg != RGBBlack || cell.Bg != RGBBlack {
			t.Errorf("Expected untouched cell at %d, got %+v", i, cell)
		}
	}
}

func TestDrawStringClips(t *testing.T) {
	c := NewCanvas(5, 1)
	if n := c.DrawString(2, 0, "abcdef", white, terminal.AttrNone); n != 3 {
		t.Errorf("Expected 3 cells written, got %d", n)
	}
	cells := c.Cells()
	if cells[2].Rune != 'a' || cells[4].Rune != 'c' {
		t.Errorf("Expected 'a' at 2 and 'c' at 4, got %q and %q", cells[2].Rune, cells[4].Rune)
	}
}

func TestBlendModes(t *testing.T) {
	dst := RGB{R: 100, G: 100, B: 100}
	src := RGB{R: 200, G: 50, B: 0}

	tests := []struct {
		name  string
		mode  BlendMode
		alpha float64
		want  RGB
	}{
		{"Replace ignores alpha", BlendReplace, 0.1, src},
		{"Alpha full", BlendAlpha, 1, src},
		{"Alpha zero", BlendAlpha, 0, dst},
		{"Alpha half", BlendAlpha, 0.5, RGB{R: 150, G: 75, B: 50}},
		{"Add clamps", BlendAdd, 1, RGB{R: 255, G: 150, B: 100}},
		{"Add scaled", BlendAdd, 0.5, RGB{R: 200, G: 125, B: 100}},
		{"Max", BlendMax, 1, RGB{R: 200, G: 100, B: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.apply(dst, src, tt.alpha); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

type recordingTerminal struct {
	flushes int
	syncs   int
	cells   []terminal.Cell
	w, h    int
}

func (r *recordingTerminal) Init() error { return nil }
func (r *recordingTerminal) Fini() {}
func (r *recordingTerminal) Size() (int, int) { return r.w, r.h }
func (r *recordingTerminal) ColorMode() terminal.ColorMode { return terminal.ColorModeTrueColor }
func (r *recordingTerminal) Sync() { r.syncs++ }
func (r *recordingTerminal) PollEvent() terminal.Event { return terminal.Event{Type: terminal.EventClosed} }
func (r *recordingTerminal) Flush(cells []terminal.Cell, w, h int) {
	r.flushes++
	r.cells = append(r.cells[:0], cells...)
	r.w, r.h = w, h
}

func TestFlushToTerminal(t *testing.T) {
	term := &recordingTerminal{}
	c := NewCanvas(4, 3)
	c.SetPixel(3, 5, red, BlendReplace, 1)
	c.FlushToTerminal(term)

	if term.flushes != 1 || term.w != 4 || term.h != 3 {
		t.Fatalf("Expected one 4x3 flush, got %d flushes of %dx%d", term.flushes, term.w, term.h)
	}
	if got := term.cells[2*4+3].Bg; got != red {
		t.Errorf("Expected bottom pixel of last cell red, got %+v", got)
	}
}
