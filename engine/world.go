package engine

import (
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/abyss/ambient"
	"github.com/lixenwraith/abyss/config"
	"github.com/lixenwraith/abyss/effect"
	"github.com/lixenwraith/abyss/parameter/visual"
	"github.com/lixenwraith/abyss/physics"
	"github.com/lixenwraith/abyss/vmath"
)

// World is one independent simulation: every piece of mutable state lives here and is touched only by Step and Resize
type World struct {
	ID     uuid.UUID
	Config *config.Config

	Core   physics.CentralBody
	Chains []*physics.Chain
	Ring   physics.AnchorRing
	Bridge *effect.Bridge

	Stars   *ambient.StarField
	Ripples *ambient.Ripples

	PaletteIndex int
	HUDVisible   bool
	Paused       bool

	// Simulation seconds, advances only on stepped frames
	Time  float64
	Frame uint64

	// World viewport; the core starts at its center
	Width, Height float64

	// Chain tip positions cached after the chain pass, indexed like Chains
	Tips []vmath.Vec3F

	chainParams physics.ChainParams
	ringParams  physics.RingParams
	rng         vmath.Rand
}

// NewWorld builds a simulation over a width x height viewport
// Construction is deterministic for a given rng state, including the ID
func NewWorld(cfg *config.Config, width, height float64, rng vmath.Rand) *World {
	if cfg == nil {
		cfg = config.Default()
	}

	w := &World{
		ID:           newWorldID(rng),
		Config:       cfg,
		Bridge:       effect.NewBridge(cfg.BridgeParams()),
		Ripples:      ambient.NewRipples(),
		PaletteIndex: cfg.Engine.Palette,
		HUDVisible:   cfg.Engine.HUD,
		Width:        width,
		Height:       height,
		chainParams:  cfg.ChainParams(),
		ringParams:   cfg.RingParams(),
		rng:          rng,
	}
	w.Ripples.Lifespan = cfg.Ambient.RippleLifespan
	w.Core.Pos = vmath.Vec3F{X: width * 0.5, Y: height * 0.5}

	n := cfg.Core.Chains
	w.Chains = make([]*physics.Chain, n)
	for i := range w.Chains {
		angle := vmath.TwoPi / float64(n) * float64(i)
		w.Chains[i] = physics.NewChain(&w.Core, angle, w.chainParams, rng)
	}
	w.Tips = make([]vmath.Vec3F, n)
	w.cacheTips()

	w.Stars = ambient.NewStarField(width, height, rng)

	log.Printf("world %s: %d chains x %d segments, viewport %.0fx%.0f", w.ID, n, w.chainParams.Segments, width, height)
	return w
}

// Palette returns the active palette
func (w *World) Palette() *visual.Palette {
	return visual.PaletteAt(w.PaletteIndex)
}

// Resize changes the viewport between frames and reseeds size-dependent ambient state
// The core keeps its position; it may be dragged back into view
func (w *World) Resize(width, height float64) {
	if width == w.Width && height == w.Height {
		return
	}
	w.Width, w.Height = width, height
	w.Stars.Reseed(width, height, w.rng)
	log.Printf("world %s: resized to %.0fx%.0f", w.ID, width, height)
}

func (w *World) cacheTips() {
	w.Tips = w.Tips[:0]
	for _, c := range w.Chains {
		w.Tips = append(w.Tips, c.Tip())
	}
}

// rngReader adapts the world rng to the byte stream uuid draws from
type rngReader struct {
	rng vmath.Rand
}

func (r rngReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.rng.Intn(256))
	}
	return len(p), nil
}

func newWorldID(rng vmath.Rand) uuid.UUID {
	id, err := uuid.NewRandomFromReader(rngReader{rng})
	if err != nil {
		return uuid.New()
	}
	return id
}
