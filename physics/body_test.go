package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/abyss/parameter"
)

func TestFollowIsSpringNotTeleport(t *testing.T) {
	b := CentralBody{}
	b.Follow(1000, 0, true, parameter.CoreStiffness, parameter.CoreDrag)

	// 1000 * 0.02 * 0.85
	if math.Abs(b.Vel.X-17) > 1e-9 {
		t.Errorf("Expected vx 17, got %f", b.Vel.X)
	}
	if math.Abs(b.Pos.X-17) > 1e-9 {
		t.Errorf("Expected x 17, got %f", b.Pos.X)
	}
	if b.Pos.Y != 0 || b.Vel.Y != 0 {
		t.Errorf("Expected no vertical motion, got pos %f vel %f", b.Pos.Y, b.Vel.Y)
	}
}

func TestFollowReleasedCoasts(t *testing.T) {
	tests := []struct {
		name    string
		pressed bool
		wantVX  float64
	}{
		{"Released ignores target", false, 8.5},
		{"Pressed adds pull", true, (10 + 100*0.02) * 0.85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := CentralBody{}
			b.Vel.X = 10
			b.Follow(100, 0, tt.pressed, 0.02, 0.85)
			if math.Abs(b.Vel.X-tt.wantVX) > 1e-9 {
				t.Errorf("Expected vx %f, got %f", tt.wantVX, b.Vel.X)
			}
		})
	}
}

func TestFollowDecaysToRest(t *testing.T) {
	b := CentralBody{}
	b.Vel.X, b.Vel.Y = 30, -12
	for i := 0; i < 200; i++ {
		b.Follow(0, 0, false, 0.02, 0.85)
	}
	if math.Abs(b.Vel.X) > 1e-9 || math.Abs(b.Vel.Y) > 1e-9 {
		t.Errorf("Expected velocity to decay to zero, got (%g,%g)", b.Vel.X, b.Vel.Y)
	}
}
