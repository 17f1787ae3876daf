package render

import (
	"math"

	"github.com/lixenwraith/abyss/vmath"
)

// Rasterizers work in pixel space with pixel centers at (x+0.5, y+0.5)
// Edges are antialiased by coverage, applied as a multiplier on alpha

// bounds clips a float box to the pixel grid, inclusive
func (c *Canvas) bounds(x0, y0, x1, y1 float64) (int, int, int, int) {
	ix0 := max(0, int(math.Floor(x0)))
	iy0 := max(0, int(math.Floor(y0)))
	ix1 := min(c.pw-1, int(math.Ceil(x1)))
	iy1 := min(c.ph-1, int(math.Ceil(y1)))
	return ix0, iy0, ix1, iy1
}

// VerticalGradient fills every pixel row from top to bottom
func (c *Canvas) VerticalGradient(top, bottom RGB) {
	for y := 0; y < c.ph; y++ {
		t := 0.0
		if c.ph > 1 {
			t = float64(y) / float64(c.ph-1)
		}
		col := Lerp(top, bottom, t)
		row := c.pixels[y*c.pw : (y+1)*c.pw]
		for x := range row {
			row[x] = col
		}
	}
}

// FillRect composites a solid rectangle over pixels [x0,x1) x [y0,y1)
func (c *Canvas) FillRect(x0, y0, x1, y1 int, col RGB, mode BlendMode, alpha float64) {
	x0, y0 = max(0, x0), max(0, y0)
	x1, y1 = min(c.pw, x1), min(c.ph, y1)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.SetPixel(x, y, col, mode, alpha)
		}
	}
}

// FillDisc draws an antialiased filled circle
func (c *Canvas) FillDisc(cx, cy, r float64, col RGB, mode BlendMode, alpha float64) {
	if r <= 0 || alpha <= 0 {
		return
	}
	// Sub-pixel discs keep their energy as fainter single pixels
	if r < 0.5 {
		alpha *= r * 2
		r = 0.5
	}
	ix0, iy0, ix1, iy1 := c.bounds(cx-r-1, cy-r-1, cx+r+1, cy+r+1)
	for y := iy0; y <= iy1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := ix0; x <= ix1; x++ {
			dx := float64(x) + 0.5 - cx
			cov := vmath.Clamp(r-math.Hypot(dx, dy)+0.5, 0, 1)
			if cov > 0 {
				c.SetPixel(x, y, col, mode, alpha*cov)
			}
		}
	}
}

// FillRadial shades a disc by normalized radius t in [0,1]; shade returns color and alpha
func (c *Canvas) FillRadial(cx, cy, r float64, shade func(t float64) (RGB, float64), mode BlendMode) {
	if r <= 0 {
		return
	}
	ix0, iy0, ix1, iy1 := c.bounds(cx-r-1, cy-r-1, cx+r+1, cy+r+1)
	for y := iy0; y <= iy1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := ix0; x <= ix1; x++ {
			dx := float64(x) + 0.5 - cx
			d := math.Hypot(dx, dy)
			cov := vmath.Clamp(r-d+0.5, 0, 1)
			if cov <= 0 {
				continue
			}
			col, alpha := shade(vmath.Clamp(d/r, 0, 1))
			c.SetPixel(x, y, col, mode, alpha*cov)
		}
	}
}

// StrokeRing draws an antialiased circle outline of the given thickness centered on radius r
func (c *Canvas) StrokeRing(cx, cy, r, thickness float64, col RGB, mode BlendMode, alpha float64) {
	if r <= 0 || alpha <= 0 {
		return
	}
	if thickness < 1 {
		alpha *= max(thickness, 0)
		thickness = 1
	}
	half := thickness * 0.5
	ix0, iy0, ix1, iy1 := c.bounds(cx-r-half-1, cy-r-half-1, cx+r+half+1, cy+r+half+1)
	for y := iy0; y <= iy1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := ix0; x <= ix1; x++ {
			dx := float64(x) + 0.5 - cx
			cov := vmath.Clamp(half-math.Abs(math.Hypot(dx, dy)-r)+0.5, 0, 1)
			if cov > 0 {
				c.SetPixel(x, y, col, mode, alpha*cov)
			}
		}
	}
}

// StrokeLine draws an antialiased capsule from (x0,y0) to (x1,y1)
// Widths under one pixel draw at one pixel with alpha scaled by width
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col RGB, mode BlendMode, alpha float64) {
	c.strokePolyline([]float64{x0, y0, x1, y1}, width, col, mode, alpha)
}

// StrokeQuad draws a quadratic Bezier from a to b through control point ctl, sampled into steps segments
func (c *Canvas) StrokeQuad(ax, ay, cx, cy, bx, by float64, steps int, width float64, col RGB, mode BlendMode, alpha float64) {
	steps = max(steps, 1)
	pts := make([]float64, 0, (steps+1)*2)
	for i := 0; i <= steps; i++ {
		x, y := vmath.QuadBezier(ax, ay, cx, cy, bx, by, float64(i)/float64(steps))
		pts = append(pts, x, y)
	}
	c.strokePolyline(pts, width, col, mode, alpha)
}

// strokePolyline composites each pixel once using its distance to the nearest segment, so joints do not double-blend
// pts is a flat x,y list
func (c *Canvas) strokePolyline(pts []float64, width float64, col RGB, mode BlendMode, alpha float64) {
	if len(pts) < 4 || alpha <= 0 || width <= 0 {
		return
	}
	if width < 1 {
		alpha *= width
		width = 1
	}
	half := width * 0.5

	minX, minY := pts[0], pts[1]
	maxX, maxY := minX, minY
	for i := 2; i < len(pts); i += 2 {
		minX, maxX = min(minX, pts[i]), max(maxX, pts[i])
		minY, maxY = min(minY, pts[i+1]), max(maxY, pts[i+1])
	}
	ix0, iy0, ix1, iy1 := c.bounds(minX-half-1, minY-half-1, maxX+half+1, maxY+half+1)

	for y := iy0; y <= iy1; y++ {
		py := float64(y) + 0.5
		for x := ix0; x <= ix1; x++ {
			px := float64(x) + 0.5
			d := math.Inf(1)
			for i := 2; i < len(pts); i += 2 {
				d = min(d, segmentDistance(pts[i-2], pts[i-1], pts[i], pts[i+1], px, py))
			}
			cov := vmath.Clamp(half-d+0.5, 0, 1)
			if cov > 0 {
				c.SetPixel(x, y, col, mode, alpha*cov)
			}
		}
	}
}

// segmentDistance returns the distance from p to segment a-b
func segmentDistance(ax, ay, bx, by, px, py float64) float64 {
	vx, vy := bx-ax, by-ay
	denom := vx*vx + vy*vy
	t := 0.0
	if denom > 0 {
		t = vmath.Clamp(((px-ax)*vx+(py-ay)*vy)/denom, 0, 1)
	}
	return math.Hypot(px-(ax+vx*t), py-(ay+vy*t))
}
