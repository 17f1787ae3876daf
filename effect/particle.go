package effect

import (
	"math"

	"github.com/lixenwraith/abyss/vmath"
)

// Particle travels a quadratic path from the core toward one chain tip
type Particle struct {
	Tip   int     // Index into the frame's tip list
	T     float64 // Parametric position, strictly increasing until culled
	Speed float64 // Parametric units per second
}

// Ease is the brightness envelope of a running bridge, peaking mid-duration
func Ease(progress float64) float64 {
	return math.Sin(math.Pi * progress)
}

// ControlPoint returns the curve control point: midpoint lifted by lift*ease (screen up is -Y)
func ControlPoint(sx, sy, tx, ty, ease, lift float64) (float64, float64) {
	return (sx + tx) * 0.5, (sy+ty)*0.5 - lift*ease
}

// PathPoint evaluates a particle's position on the curve from (sx, sy) to (tx, ty)
func PathPoint(sx, sy, tx, ty, ease, lift, t float64) (float64, float64) {
	cx, cy := ControlPoint(sx, sy, tx, ty, ease, lift)
	return vmath.QuadBezier(sx, sy, cx, cy, tx, ty, t)
}

// Glow is sin(πt): 0 at both ends, 1 mid-path
func (p Particle) Glow() float64 {
	return math.Sin(p.T * math.Pi)
}
