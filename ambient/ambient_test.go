package ambient

import (
	"math"
	"testing"

	"github.com/lixenwraith/abyss/parameter"
	"github.com/lixenwraith/abyss/vmath"
)

func TestStarCountClamped(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
		want int
	}{
		{"Tiny viewport floors", 100, 100, parameter.StarMinCount},
		{"Mid viewport scales", 600, 900, 150},
		{"Huge viewport caps", 4000, 3000, parameter.StarMaxCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StarCount(tt.w, tt.h); got != tt.want {
				t.Errorf("Expected %d stars, got %d", tt.want, got)
			}
		})
	}
}

func TestStarFieldDeterministic(t *testing.T) {
	a := NewStarField(800, 600, vmath.NewFastRand(4))
	b := NewStarField(800, 600, vmath.NewFastRand(4))
	if len(a.Stars) != len(b.Stars) {
		t.Fatalf("Expected equal counts, got %d and %d", len(a.Stars), len(b.Stars))
	}
	for i := range a.Stars {
		if a.Stars[i] != b.Stars[i] {
			t.Fatalf("Star %d differs for identical seeds", i)
		}
	}
}

func TestStarFieldUpdateBounds(t *testing.T) {
	f := NewStarField(800, 600, vmath.NewFastRand(9))
	m := parameter.StarWrapMargin

	for frame := 0; frame < 600; frame++ {
		// Heavy core motion exercises parallax and wrap
		f.Update(1.0/60, float64(frame)/60, 40, -25)
		for i, s := range f.Stars {
			if s.X < -m || s.X > f.Width+m || s.Y < -m || s.Y > f.Height+m {
				t.Fatalf("Frame %d star %d at (%f,%f) escaped wrap bounds", frame, i, s.X, s.Y)
			}
			if s.Twinkle < 0 || s.Twinkle > 1 {
				t.Fatalf("Frame %d star %d twinkle %f outside [0,1]", frame, i, s.Twinkle)
			}
		}
	}
}

func TestStarFieldReseedResizes(t *testing.T) {
	rng := vmath.NewFastRand(2)
	f := NewStarField(300, 300, rng)
	f.Reseed(2000, 1200, rng)
	if f.Width != 2000 || f.Height != 1200 {
		t.Errorf("Expected 2000x1200, got %fx%f", f.Width, f.Height)
	}
	if len(f.Stars) != StarCount(2000, 1200) {
		t.Errorf("Expected %d stars, got %d", StarCount(2000, 1200), len(f.Stars))
	}
	for i, s := range f.Stars {
		if s.X < 0 || s.X >= 2000 || s.Y < 0 || s.Y >= 1200 {
			t.Fatalf("Star %d seeded outside viewport at (%f,%f)", i, s.X, s.Y)
		}
		if s.Depth < parameter.StarDepthMin || s.Depth > 1 {
			t.Fatalf("Star %d depth %f out of range", i, s.Depth)
		}
	}
}

func TestRipplesLifecycle(t *testing.T) {
	r := NewRipples()
	r.Spawn(10, 20, 1.0)

	radius, alpha, ok := r.Shape(r.Live[0], 1.0+r.Lifespan/2)
	if !ok {
		t.Fatal("Expected ripple alive at half life")
	}
	wantR := parameter.RippleStartRadius + 0.5*parameter.RippleGrowth
	if math.Abs(radius-wantR) > 1e-9 || math.Abs(alpha-0.5) > 1e-9 {
		t.Errorf("Expected radius %f alpha 0.5, got %f %f", wantR, radius, alpha)
	}

	r.Expire(1.0 + r.Lifespan)
	if len(r.Live) != 1 {
		t.Errorf("Expected ripple kept at exactly its lifespan, got %d live", len(r.Live))
	}
	r.Expire(1.0 + r.Lifespan + 0.01)
	if len(r.Live) != 0 {
		t.Errorf("Expected ripple expired, got %d live", len(r.Live))
	}
}

func TestRipplesEvictOldest(t *testing.T) {
	r := NewRipples()
	for i := 0; i < r.MaxLive+3; i++ {
		r.Spawn(float64(i), 0, 0)
	}
	if len(r.Live) != r.MaxLive {
		t.Fatalf("Expected %d live, got %d", r.MaxLive, len(r.Live))
	}
	if r.Live[0].X != 3 {
		t.Errorf("Expected oldest three evicted, first X = %f", r.Live[0].X)
	}
}
