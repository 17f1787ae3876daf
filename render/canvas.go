package render

import (
	"github.com/lixenwraith/abyss/terminal"
)

// halfBlock draws the upper pixel as foreground and the lower pixel as background
const halfBlock = '▀'

type textCell struct {
	r     rune
	fg    RGB
	attrs terminal.Attr
}

// Canvas is a compositor of square-ish pixels over terminal cells: every cell carries two vertically stacked pixels
// A sparse text layer overrides the half-block glyph where set
type Canvas struct {
	pixels []RGB // pw * ph, row-major
	text   []textCell
	cells  []terminal.Cell // Persistent flush buffer

	cols, rows int
	pw, ph     int
}

// NewCanvas creates a canvas covering cols x rows terminal cells
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	c.cols, c.rows = cols, rows
	c.pw, c.ph = cols, rows*2

	np := c.pw * c.ph
	nc := cols * rows
	if cap(c.pixels) < np {
		c.pixels = make([]RGB, np)
	}
	c.pixels = c.pixels[:np]
	if cap(c.text) < nc {
		c.text = make([]textCell, nc)
		c.cells = make([]terminal.Cell, nc)
	}
	c.text = c.text[:nc]
	c.cells = c.cells[:nc]
	c.Clear()
}

// Clear resets pixels to black and removes all text using exponential copy
func (c *Canvas) Clear() {
	if len(c.pixels) > 0 {
		c.pixels[0] = RGBBlack
		for filled := 1; filled < len(c.pixels); filled *= 2 {
			copy(c.pixels[filled:], c.pixels[:filled])
		}
	}
	if len(c.text) > 0 {
		c.text[0] = textCell{}
		for filled := 1; filled < len(c.text); filled *= 2 {
			copy(c.text[filled:], c.text[:filled])
		}
	}
}

// Cols returns the width in terminal cells
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the height in terminal cells
func (c *Canvas) Rows() int { return c.rows }

// PixelWidth returns the pixel-layer width, equal to Cols
func (c *Canvas) PixelWidth() int { return c.pw }

// PixelHeight returns the pixel-layer height, twice Rows
func (c *Canvas) PixelHeight() int { return c.ph }

// Pixel returns the color at (x, y), black out of bounds
func (c *Canvas) Pixel(x, y int) RGB {
	if x < 0 || x >= c.pw || y < 0 || y >= c.ph {
		return RGBBlack
	}
	return c.pixels[y*c.pw+x]
}

// ===== COMPOSITOR API =====

// SetPixel composites a color onto one pixel
func (c *Canvas) SetPixel(x, y int, col RGB, mode BlendMode, alpha float64) {
	if x < 0 || x >= c.pw || y < 0 || y >= c.ph {
		return
	}
	idx := y*c.pw + x
	c.pixels[idx] = mode.apply(c.pixels[idx], col, alpha)
}

// SetText places a glyph in a terminal cell; the cell background becomes the mean of its two pixels
func (c *Canvas) SetText(x, y int, r rune, fg RGB, attrs terminal.Attr) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return
	}
	c.text[y*c.cols+x] = textCell{r: r, fg: fg, attrs: attrs}
}

// DrawString writes s starting at cell (x, y), clipped at the right edge. Returns cells written
func (c *Canvas) DrawString(x, y int, s string, fg RGB, attrs terminal.Attr) int {
	n := 0
	for _, r := range s {
		if x+n >= c.cols {
			break
		}
		c.SetText(x+n, y, r, fg, attrs)
		n++
	}
	return n
}

// ===== OUTPUT =====

// Cells composes the pixel and text layers into terminal cells
func (c *Canvas) Cells() []terminal.Cell {
	for y := 0; y < c.rows; y++ {
		top := c.pixels[(2*y)*c.pw : (2*y+1)*c.pw]
		bottom := c.pixels[(2*y+1)*c.pw : (2*y+2)*c.pw]
		for x := 0; x < c.cols; x++ {
			idx := y*c.cols + x
			if t := c.text[idx]; t.r != 0 {
				c.cells[idx] = terminal.Cell{
					Rune:  t.r,
					Fg:    t.fg,
					Bg:    Lerp(top[x], bottom[x], 0.5),
					Attrs: t.attrs,
				}
				continue
			}
			c.cells[idx] = terminal.Cell{Rune: halfBlock, Fg: top[x], Bg: bottom[x]}
		}
	}
	return c.cells
}

// FlushToTerminal writes the composed canvas to the terminal
func (c *Canvas) FlushToTerminal(term terminal.Terminal) {
	term.Flush(c.Cells(), c.cols, c.rows)
}
