package physics

import (
	"github.com/lixenwraith/abyss/vmath"
)

// MinSeparation returns the minimum anchor separation for n chains
func MinSeparation(n int, factor float64) float64 {
	if n <= 0 {
		return 0
	}
	return vmath.TwoPi / float64(n) * factor
}

// applySpacing nudges angular velocity toward the ring target and away from encroaching neighbors
func (c *Chain) applySpacing(ring *AnchorRing, peers []*Chain) {
	a := &c.params.Anchor

	offset := 0.0
	if ring != nil {
		offset = ring.Offset
	}
	c.AngularVelocity += vmath.AngleDiff(c.Angle, c.BaseAngle+offset) * a.TargetGain

	minSep := MinSeparation(len(peers), a.MinSeparationFactor)
	if minSep <= 0 {
		return
	}
	self := -1
	for i, other := range peers {
		if other == c {
			self = i
			break
		}
	}
	for i, other := range peers {
		if other == c {
			continue
		}
		diff := vmath.AngleDiff(c.Angle, other.Angle)
		dist := diff
		if dist < 0 {
			dist = -dist
		}
		if dist >= minSep {
			continue
		}

		// Coincident anchors split by slice order
		sign := 1.0
		if diff < 0 || (diff == 0 && i < self) {
			sign = -1.0
		}
		c.AngularVelocity -= sign * a.RepulsionStrength * (minSep - dist) / minSep
	}
}
