package physics

import (
	"github.com/lixenwraith/abyss/vmath"
)

// AnchorRing is the shared slow rotation every chain's target angle tracks
type AnchorRing struct {
	Offset          float64 // (-π, π]
	AngularVelocity float64
}

// Update integrates the ring from the mean anchor angular velocity the chains contributed this frame
// Must run after every chain has stepped
func (r *AnchorRing) Update(chains []*Chain, dt float64, p RingParams) {
	if len(chains) == 0 || dt <= 0 {
		return
	}
	sum := 0.0
	for _, c := range chains {
		sum += c.RingShare()
	}
	avg := sum / float64(len(chains))

	av := (r.AngularVelocity + avg) * vmath.FrameDecay(p.Friction, dt)
	r.AngularVelocity = vmath.Clamp(av, -p.MaxAngularVelocity, p.MaxAngularVelocity)
	r.Offset = vmath.WrapAngle(r.Offset + r.AngularVelocity*dt)
}
