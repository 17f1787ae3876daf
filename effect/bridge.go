package effect

import (
	"math"

	"github.com/lixenwraith/abyss/parameter"
	"github.com/lixenwraith/abyss/vmath"
)

// Params tunes the bridge; times are simulation seconds
type Params struct {
	Duration float64
	Cooldown float64

	ParticleCap     int
	ParticlesPerTip int
	SpawnRatePerTip float64 // Particles per second per tip

	StartMax float64
	SpeedMin float64
	SpeedMax float64
	CullT    float64
}

// DefaultParams returns the tuned defaults
func DefaultParams() Params {
	return Params{
		Duration:        parameter.BridgeDuration.Seconds(),
		Cooldown:        parameter.BridgeCooldown.Seconds(),
		ParticleCap:     parameter.BridgeParticleCap,
		ParticlesPerTip: parameter.BridgeParticlesPerTip,
		SpawnRatePerTip: parameter.BridgeSpawnRatePerTip,
		StartMax:        parameter.BridgeParticleStartMax,
		SpeedMin:        parameter.BridgeParticleSpeedMin,
		SpeedMax:        parameter.BridgeParticleSpeedMax,
		CullT:           parameter.BridgeParticleCullT,
	}
}

// Bridge is the energy-bridge state machine: Idle -> Pending -> Active -> Idle
type Bridge struct {
	phase       Phase
	lastTrigger float64
	Particles   []Particle

	params Params
}

// NewBridge creates an idle bridge whose cooldown has already elapsed
func NewBridge(p Params) *Bridge {
	return &Bridge{
		phase:       Idle{},
		lastTrigger: math.Inf(-1),
		Particles:   make([]Particle, 0, max(p.ParticleCap, 1)),
		params:      p,
	}
}

// Phase returns the current state
func (b *Bridge) Phase() Phase {
	return b.phase
}

// IsActive reports whether the bridge is running
func (b *Bridge) IsActive() bool {
	_, ok := b.phase.(*Active)
	return ok
}

// Progress returns [0, 1] while active, 0 otherwise
func (b *Bridge) Progress() float64 {
	if a, ok := b.phase.(*Active); ok {
		return a.Progress
	}
	return 0
}

// Params returns the bridge tuning
func (b *Bridge) Params() Params {
	return b.params
}

// Request asks for activation at simulation time now
// Dropped while active, already pending, or within cooldown of the last activation
// Returns true if the request was accepted
func (b *Bridge) Request(now float64) bool {
	if _, ok := b.phase.(Idle); !ok {
		return false
	}
	if now-b.lastTrigger < b.params.Cooldown {
		return false
	}
	b.phase = Pending{RequestedAt: now}
	return true
}

// Activate promotes a pending request to Active with zero progress and no particles
// Returns true on the frame the bridge activates
func (b *Bridge) Activate(now float64) bool {
	if _, ok := b.phase.(Pending); !ok {
		return false
	}
	b.phase = &Active{Start: now}
	b.lastTrigger = now
	b.Particles = b.Particles[:0]
	return true
}

// Update advances progress and particles. tips is the number of chain tips particles may target
// Returns true on the frame the bridge returns to Idle
func (b *Bridge) Update(now, dt float64, tips int, rng vmath.Rand) bool {
	a, ok := b.phase.(*Active)
	if !ok {
		return false
	}
	p := &b.params

	elapsed := now - a.Start
	a.Progress = vmath.Clamp(elapsed/vmath.NonZero(p.Duration, 1), 0, 1)
	if elapsed >= p.Duration {
		b.phase = Idle{}
		b.Particles = b.Particles[:0]
		return true
	}

	// Activation frame only resets
	if elapsed <= 0 || dt <= 0 {
		return false
	}

	b.spawn(a, dt, tips, rng)

	live := b.Particles[:0]
	for _, pt := range b.Particles {
		pt.T += dt * pt.Speed
		if pt.T > p.CullT {
			continue
		}
		live = append(live, pt)
	}
	b.Particles = live
	return false
}

func (b *Bridge) spawn(a *Active, dt float64, tips int, rng vmath.Rand) {
	if tips <= 0 {
		return
	}
	p := &b.params
	target := min(p.ParticleCap, max(1, tips*p.ParticlesPerTip))

	a.spawnAccum += dt * float64(tips) * p.SpawnRatePerTip
	for a.spawnAccum > 1 && len(b.Particles) < target {
		a.spawnAccum--
		b.Particles = append(b.Particles, Particle{
			Tip:   rng.Intn(tips),
			T:     vmath.RandRange(rng, 0, p.StartMax),
			Speed: vmath.RandRange(rng, p.SpeedMin, p.SpeedMax),
		})
	}
}

// Cooldown returns seconds until a request would be accepted, 0 when ready
func (b *Bridge) Cooldown(now float64) float64 {
	return max(0, b.params.Cooldown-(now-b.lastTrigger))
}
