package physics

import (
	"math"

	"github.com/lixenwraith/abyss/vmath"
)

// degenerateLength is the floor below which tangents and normals fall back
const degenerateLength = 1e-4

// pin places the root at the attach point
func (c *Chain) pin(attach vmath.Vec3F) {
	c.Segments[0].Pos = attach
}

// integrate advances every free point by its damped Verlet velocity
func (c *Chain) integrate(damp float64) {
	for i := 1; i < len(c.Segments); i++ {
		s := &c.Segments[i]
		vel := vmath.V3FScale(vmath.V3FSub(s.Pos, s.Prev), damp)
		s.Prev = s.Pos
		s.Pos = vmath.V3FAdd(s.Pos, vel)
	}
}

// injectLag drags the first two free points along with the anchor displacement, in plane only
func (c *Chain) injectLag(delta vmath.Vec3F) {
	if len(c.Segments) <= 2 {
		return
	}
	c.Segments[1].Pos.X += delta.X * c.params.LagPrimary
	c.Segments[1].Pos.Y += delta.Y * c.params.LagPrimary
	c.Segments[2].Pos.X += delta.X * c.params.LagSecondary
	c.Segments[2].Pos.Y += delta.Y * c.params.LagSecondary
}

// distancePass relaxes adjacent pairs toward rest length
// Against the pinned root only the free point moves, by RootCompliance of the correction
func (c *Chain) distancePass() {
	rest := c.params.SegmentLength
	for i := 1; i < len(c.Segments); i++ {
		a := &c.Segments[i-1]
		b := &c.Segments[i]

		delta := vmath.V3FSub(b.Pos, a.Pos)
		dist := vmath.V3FMag(delta)
		if dist < vmath.Epsilon {
			dist = 1
		}
		diff := (dist - rest) / dist

		if i == 1 {
			b.Pos = vmath.V3FSub(b.Pos, vmath.V3FScale(delta, diff*c.params.RootCompliance))
			continue
		}
		corr := vmath.V3FScale(delta, diff*0.5)
		a.Pos = vmath.V3FAdd(a.Pos, corr)
		b.Pos = vmath.V3FSub(b.Pos, corr)
	}
}

// bendPass pulls interior points toward the neighbor midpoint offset along a traveling-wave normal
func (c *Chain) bendPass(core vmath.Vec3F, time, amp, speed float64) {
	p := &c.params
	n := len(c.Segments)
	last := float64(n - 1)

	for i := 1; i < n-1; i++ {
		p0 := c.Segments[i-1].Pos
		p2 := c.Segments[i+1].Pos
		s := &c.Segments[i]

		mid := vmath.V3FMid(p0, p2)
		tangent := vmath.V3FSub(p2, p0)
		if tl := vmath.V3FMag(tangent); tl < degenerateLength {
			tangent = vmath.Vec3F{X: math.Cos(c.Angle), Y: math.Sin(c.Angle)}
		} else {
			tangent = vmath.V3FScale(tangent, 1/tl)
		}

		radial := vmath.V3FSub(s.Pos, core)
		normal := vmath.V3FSub(radial, vmath.V3FScale(tangent, vmath.V3FDot(radial, tangent)))
		normal.Z += c.ZBias * p.SegmentLength
		if nl := vmath.V3FMag(normal); nl < degenerateLength {
			normal = s.normal
		} else {
			normal = vmath.V3FScale(normal, 1/nl)
			s.normal = normal
		}

		envelope := vmath.Lerp(p.EnvelopeRoot, p.EnvelopeTip, float64(i)/last)
		curvature := amp * envelope * math.Sin(time*speed-float64(i)*p.WavePhaseOffset+c.Seed)

		target := vmath.V3FAdd(mid, vmath.V3FScale(normal, curvature*p.SegmentLength))
		s.Pos = vmath.V3FLerp(s.Pos, target, p.BendStiffness)
	}
}

// collidePoints projects free points that sit inside the core boundary back onto it
func (c *Chain) collidePoints(core vmath.Vec3F) {
	minR := c.params.AttachRadius + c.params.CollisionPad
	for i := 1; i < len(c.Segments); i++ {
		s := &c.Segments[i]
		delta := vmath.V3FSub(s.Pos, core)
		dist := vmath.V3FMag(delta)
		if dist >= minR {
			continue
		}
		dir := c.outward(delta, dist)
		s.Pos = vmath.V3FAdd(core, vmath.V3FScale(dir, minR))
	}
}

// collideEdges pushes edges whose closest point intrudes the boundary
// The tip-side point takes the full push, the root-side point a TrailingPush share unless it is the root
func (c *Chain) collideEdges(core vmath.Vec3F) {
	minR := c.params.AttachRadius + c.params.CollisionPad
	for j := 1; j < len(c.Segments); j++ {
		a := &c.Segments[j-1]
		b := &c.Segments[j]

		t := vmath.ClosestOnSegment(a.Pos, b.Pos, core)
		closest := vmath.V3FLerp(a.Pos, b.Pos, t)
		delta := vmath.V3FSub(closest, core)
		dist := vmath.V3FMag(delta)
		if dist >= minR {
			continue
		}

		dir := c.outward(delta, dist)
		if dist < vmath.Epsilon {
			dist = 0
		}
		push := minR - dist

		b.Pos = vmath.V3FAdd(b.Pos, vmath.V3FScale(dir, push))
		if j > 1 {
			a.Pos = vmath.V3FAdd(a.Pos, vmath.V3FScale(dir, push*c.params.TrailingPush))
		}
	}
}

// outward normalizes delta, falling back to the anchor direction at the core center
func (c *Chain) outward(delta vmath.Vec3F, dist float64) vmath.Vec3F {
	if dist < vmath.Epsilon {
		return vmath.Vec3F{X: math.Cos(c.Angle), Y: math.Sin(c.Angle)}
	}
	return vmath.V3FScale(delta, 1/dist)
}
