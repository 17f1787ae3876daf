package vmath

import (
	"math"
)

const (
	// TwoPi is a full rotation in radians
	TwoPi = 2 * math.Pi

	// Epsilon is the floor used to guard near-zero denominators
	Epsilon = 1e-6
)

// --- Scalar ---

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates a→b by t, unclamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// NonZero returns v, or fallback when v is exactly zero
func NonZero(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}

// WrapAngle normalizes an angle to (-π, π]
func WrapAngle(a float64) float64 {
	if a > math.Pi || a <= -math.Pi {
		a = math.Mod(a+math.Pi, TwoPi)
		if a <= 0 {
			a += TwoPi
		}
		a -= math.Pi
	}
	return a
}

// AngleDiff returns the shortest signed rotation from a to b in (-π, π]
func AngleDiff(a, b float64) float64 {
	return WrapAngle(b - a)
}

// FrameDecay converts a per-frame (60 Hz) retention factor into the factor for a step of dt seconds
// Exponent floors at one frame so short frames never under-damp
func FrameDecay(factor, dt float64) float64 {
	return math.Pow(factor, math.Max(1, dt*60))
}

// --- Curves ---

// QuadBezier evaluates a 2D quadratic Bezier at t
func QuadBezier(ax, ay, cx, cy, bx, by, t float64) (float64, float64) {
	u := 1 - t
	return u*u*ax + 2*u*t*cx + t*t*bx,
		u*u*ay + 2*u*t*cy + t*t*by
}

// --- Randomness ---

// Rand is the random source injected into anything that draws random numbers
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// FastRand is a xorshift64 generator, deterministic for a given seed
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator; zero seed is remapped since xorshift sticks at zero
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// RandRange returns a value in [lo, hi) from rng
func RandRange(rng Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
