package physics

import (
	"github.com/lixenwraith/abyss/vmath"
)

// CentralBody is the draggable core every chain is anchored to
// Z is fixed at 0; chains measure depth relative to the core plane
type CentralBody struct {
	Pos vmath.Vec3F
	Vel vmath.Vec3F
}

// Follow applies one frame of spring-follow toward (tx, ty)
// Velocity only gains from the target while pressed; drag and integration apply every frame
func (b *CentralBody) Follow(tx, ty float64, pressed bool, stiffness, drag float64) {
	if pressed {
		b.Vel.X += (tx - b.Pos.X) * stiffness
		b.Vel.Y += (ty - b.Pos.Y) * stiffness
	}
	b.Vel.X *= drag
	b.Vel.Y *= drag
	b.Pos.X += b.Vel.X
	b.Pos.Y += b.Vel.Y
}
