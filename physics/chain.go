package physics

import (
	"math"

	"github.com/lixenwraith/abyss/vmath"
)

// Segment is one Verlet point; index 0 of a chain is the pinned root
type Segment struct {
	Pos  vmath.Vec3F
	Prev vmath.Vec3F

	// Last non-degenerate bend normal, reused when the normal collapses
	normal vmath.Vec3F
}

// Chain is one appendage: a rotating anchor on the core perimeter and a Verlet point chain
type Chain struct {
	BaseAngle       float64 // Fixed at creation
	Angle           float64 // Current anchor angle in (-π, π]
	AngularVelocity float64

	Segments []Segment

	// Drawn once at construction
	Seed  float64
	ZBias float64

	params     ChainParams
	lastAttach vmath.Vec3F

	// Per-frame outputs
	coreTangential float64
	ringShare      float64
}

// StepContext is the shared frame state every chain reads during Step
type StepContext struct {
	Core   *CentralBody
	Ring   *AnchorRing
	Peers  []*Chain // All chains including the receiver
	Time   float64  // Simulation seconds
	Dt     float64
	Active bool // Core is being dragged
}

// NewChain lays segments out radially from the core at baseAngle, root on the perimeter
func NewChain(core *CentralBody, baseAngle float64, p ChainParams, rng vmath.Rand) *Chain {
	n := max(p.Segments, 2)
	c := &Chain{
		BaseAngle: baseAngle,
		Angle:     vmath.WrapAngle(baseAngle),
		Segments:  make([]Segment, n),
		Seed:      rng.Float64() * p.SeedMax,
		ZBias:     p.ZBiasBase + rng.Float64()*p.ZBiasJitter,
		params:    p,
	}

	dx, dy := math.Cos(baseAngle), math.Sin(baseAngle)
	up := vmath.Vec3F{Z: 1}
	for i := range c.Segments {
		r := p.AttachRadius + float64(i)*p.SegmentLength
		pos := vmath.Vec3F{X: core.Pos.X + dx*r, Y: core.Pos.Y + dy*r}
		c.Segments[i] = Segment{Pos: pos, Prev: pos, normal: up}
	}
	c.lastAttach = c.Segments[0].Pos
	return c
}

// Params returns the chain's tuning
func (c *Chain) Params() ChainParams {
	return c.params
}

// Root returns the pinned root position
func (c *Chain) Root() vmath.Vec3F {
	return c.Segments[0].Pos
}

// Tip returns the free end position
func (c *Chain) Tip() vmath.Vec3F {
	return c.Segments[len(c.Segments)-1].Pos
}

// RingShare returns the clamped anchor angular velocity this chain fed the ring this frame
func (c *Chain) RingShare() float64 {
	return c.ringShare
}

// AnchorPoint returns the perimeter point at the current anchor angle
func (c *Chain) AnchorPoint(core *CentralBody) vmath.Vec3F {
	return vmath.Vec3F{
		X: core.Pos.X + math.Cos(c.Angle)*c.params.AttachRadius,
		Y: core.Pos.Y + math.Sin(c.Angle)*c.params.AttachRadius,
	}
}

// Step advances the chain one frame. Non-positive dt is a no-op
func (c *Chain) Step(sc StepContext) {
	if sc.Dt <= 0 {
		return
	}
	p := &c.params

	c.driveAnchor(sc.Core, sc.Dt)
	c.ringShare = c.AngularVelocity

	attach := c.AnchorPoint(sc.Core)
	c.pin(attach)
	c.Segments[0].Prev = attach

	c.integrate(vmath.FrameDecay(p.AirDamping, sc.Dt))
	c.injectLag(vmath.V3FSub(attach, c.lastAttach))

	amp, speed := p.WaveAmpIdle, p.WaveSpeedIdle
	if sc.Active {
		amp, speed = p.WaveAmpActive, p.WaveSpeedActive
	}
	gain := vmath.Clamp(p.MotionGainBase+p.MotionGainSlope*math.Abs(c.coreTangential), p.MotionGainBase, p.MotionGainMax)

	for k := 0; k < p.Iterations; k++ {
		c.distancePass()
		c.pin(attach)
		c.bendPass(sc.Core.Pos, sc.Time, amp*gain, speed)
		c.collidePoints(sc.Core.Pos)
		c.collideEdges(sc.Core.Pos)
		c.pin(attach)
	}

	c.lastAttach = attach

	c.applySpacing(sc.Ring, sc.Peers)
}

// driveAnchor updates anchor angular velocity from core motion and first-segment tension, then integrates the angle
func (c *Chain) driveAnchor(core *CentralBody, dt float64) {
	a := &c.params.Anchor

	tx, ty := -math.Sin(c.Angle), math.Cos(c.Angle)
	c.coreTangential = (core.Vel.X*tx + core.Vel.Y*ty) / vmath.NonZero(c.params.AttachRadius, 1)

	tension := 0.0
	if len(c.Segments) > 1 {
		s1 := c.Segments[1].Pos
		tension = ((s1.X-c.lastAttach.X)*tx + (s1.Y-c.lastAttach.Y)*ty) / vmath.NonZero(c.params.SegmentLength, 1)
	}

	drive := a.CoreInfluence*c.coreTangential + a.TensionInfluence*tension
	av := (c.AngularVelocity + drive) * vmath.FrameDecay(a.Friction, dt)
	c.AngularVelocity = vmath.Clamp(av, -a.MaxAngularVelocity, a.MaxAngularVelocity)
	c.Angle = vmath.WrapAngle(c.Angle + c.AngularVelocity*dt)
}
