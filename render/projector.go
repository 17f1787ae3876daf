package render

import (
	"github.com/lixenwraith/abyss/parameter"
	"github.com/lixenwraith/abyss/vmath"
)

// Projector is a fixed pinhole camera looking down -Z at the core
type Projector struct {
	Focal    float64
	Distance float64
	Epsilon  float64 // Floor of the depth denominator
}

// DefaultProjector returns the tuned camera
func DefaultProjector() Projector {
	return Projector{
		Focal:    parameter.CameraFocal,
		Distance: parameter.CameraDistance,
		Epsilon:  parameter.CameraEpsilon,
	}
}

// Scale returns the perspective scale at depth z
func (p Projector) Scale(z float64) float64 {
	return p.Focal / max(p.Epsilon, p.Distance-z)
}

// Project maps an offset relative to the core to a screen offset and its scale
func (p Projector) Project(off vmath.Vec3F) (sx, sy, scale float64) {
	scale = p.Scale(off.Z)
	return off.X * scale, off.Y * scale, scale
}

// ProjectFrom projects a world point around origin, returning world-space screen coordinates
func (p Projector) ProjectFrom(origin, pt vmath.Vec3F) (x, y, scale float64) {
	sx, sy, scale := p.Project(vmath.V3FSub(pt, origin))
	return origin.X + sx, origin.Y + sy, scale
}
