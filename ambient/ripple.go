package ambient

import (
	"github.com/lixenwraith/abyss/parameter"
)

// Ripple is an expanding ring spawned at a point
type Ripple struct {
	X, Y  float64
	Start float64 // Simulation seconds
}

// Ripples holds live rings, oldest first
type Ripples struct {
	Live     []Ripple
	Lifespan float64
	MaxLive  int
}

// NewRipples creates an empty set with the default lifespan
func NewRipples() *Ripples {
	return &Ripples{
		Live:     make([]Ripple, 0, parameter.RippleMaxLive),
		Lifespan: parameter.RippleLifespan.Seconds(),
		MaxLive:  parameter.RippleMaxLive,
	}
}

// Spawn adds a ripple, evicting the oldest when full
func (r *Ripples) Spawn(x, y, now float64) {
	if r.MaxLive > 0 && len(r.Live) >= r.MaxLive {
		copy(r.Live, r.Live[1:])
		r.Live = r.Live[:len(r.Live)-1]
	}
	r.Live = append(r.Live, Ripple{X: x, Y: y, Start: now})
}

// Expire drops ripples older than their lifespan
func (r *Ripples) Expire(now float64) {
	live := r.Live[:0]
	for _, rp := range r.Live {
		if now-rp.Start > r.Lifespan {
			continue
		}
		live = append(live, rp)
	}
	r.Live = live
}

// Shape returns radius and alpha of a ripple at now; ok is false outside its lifetime
func (r *Ripples) Shape(rp Ripple, now float64) (radius, alpha float64, ok bool) {
	t := (now - rp.Start) / r.Lifespan
	if t < 0 || t > 1 {
		return 0, 0, false
	}
	return parameter.RippleStartRadius + t*parameter.RippleGrowth, 1 - t, true
}
