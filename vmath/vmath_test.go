package vmath

import (
	"math"
	"testing"
)

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"Zero", 0, 0},
		{"Pi stays", math.Pi, math.Pi},
		{"Negative pi maps to pi", -math.Pi, math.Pi},
		{"Three halves pi", 1.5 * math.Pi, -0.5 * math.Pi},
		{"Negative three halves pi", -1.5 * math.Pi, 0.5 * math.Pi},
		{"Multiple turns", 4*math.Pi + 0.25, 0.25},
		{"Small negative", -0.1, -0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapAngle(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.want, got)
			}
			if got <= -math.Pi || got > math.Pi {
				t.Errorf("Result %f outside (-π, π]", got)
			}
		})
	}
}

func TestAngleDiffShortestPath(t *testing.T) {
	d := AngleDiff(math.Pi-0.1, -math.Pi+0.1)
	if math.Abs(d-0.2) > 1e-9 {
		t.Errorf("Expected 0.2 across the seam, got %f", d)
	}
}

func TestFrameDecayFloorsAtOneFrame(t *testing.T) {
	if got := FrameDecay(0.9, 0.001); math.Abs(got-0.9) > 1e-12 {
		t.Errorf("Expected single-frame decay 0.9 for short dt, got %f", got)
	}
	want := math.Pow(0.9, 6)
	if got := FrameDecay(0.9, 0.1); math.Abs(got-want) > 1e-12 {
		t.Errorf("Expected %f for 6 frames, got %f", want, got)
	}
}

func TestClosestOnSegment(t *testing.T) {
	a := Vec3F{0, 0, 0}
	b := Vec3F{10, 0, 0}

	tests := []struct {
		name string
		p    Vec3F
		want float64
	}{
		{"Middle", Vec3F{5, 3, 0}, 0.5},
		{"Before start clamps", Vec3F{-4, 1, 0}, 0},
		{"After end clamps", Vec3F{14, -1, 0}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClosestOnSegment(a, b, tt.p); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Expected %f, got %f", tt.want, got)
			}
		})
	}

	if got := ClosestOnSegment(a, a, Vec3F{3, 3, 3}); got != 0 {
		t.Errorf("Expected degenerate segment to resolve to 0, got %f", got)
	}
}

func TestV3FNormalizeZero(t *testing.T) {
	if got := V3FNormalize(Vec3F{}); got != (Vec3F{}) {
		t.Errorf("Expected zero vector, got %+v", got)
	}
	n := V3FNormalize(Vec3F{3, 4, 0})
	if math.Abs(V3FMag(n)-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", V3FMag(n))
	}
}

func TestQuadBezierEndpoints(t *testing.T) {
	x, y := QuadBezier(0, 0, 5, -8, 10, 0, 0)
	if x != 0 || y != 0 {
		t.Errorf("Expected start point, got (%f,%f)", x, y)
	}
	x, y = QuadBezier(0, 0, 5, -8, 10, 0, 1)
	if x != 10 || y != 0 {
		t.Errorf("Expected end point, got (%f,%f)", x, y)
	}
	_, y = QuadBezier(0, 0, 5, -8, 10, 0, 0.5)
	if y != -4 {
		t.Errorf("Expected midpoint lifted to -4, got %f", y)
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		fa, fb := a.Float64(), b.Float64()
		if fa != fb {
			t.Fatalf("Expected identical sequences at %d, got %f vs %f", i, fa, fb)
		}
		if fa < 0 || fa >= 1 {
			t.Fatalf("Float64 out of range: %f", fa)
		}
	}

	r := NewFastRand(0)
	for i := 0; i < 100; i++ {
		if n := r.Intn(7); n < 0 || n >= 7 {
			t.Fatalf("Intn out of range: %d", n)
		}
		if v := RandRange(r, -2, 3); v < -2 || v >= 3 {
			t.Fatalf("RandRange out of range: %f", v)
		}
	}
}
