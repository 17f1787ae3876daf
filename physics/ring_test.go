package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/abyss/vmath"
)

func TestRingUpdate(t *testing.T) {
	params := DefaultRingParams()

	tests := []struct {
		name       string
		shares     []float64
		start      AnchorRing
		wantAV     float64
		wantOffset float64
	}{
		{
			name:       "Average share",
			shares:     []float64{0.2, 0.8},
			wantAV:     0.5 * 0.9,
			wantOffset: 0.5 * 0.9 / 60,
		},
		{
			name:       "Clamped",
			shares:     []float64{100, 100},
			wantAV:     params.MaxAngularVelocity,
			wantOffset: params.MaxAngularVelocity / 60,
		},
		{
			name:       "Wraps past pi",
			shares:     []float64{0},
			start:      AnchorRing{Offset: math.Pi - 0.01, AngularVelocity: 6},
			wantAV:     6 * 0.9,
			wantOffset: -math.Pi - 0.01 + 6*0.9/60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chains := make([]*Chain, len(tt.shares))
			for i, v := range tt.shares {
				chains[i] = &Chain{ringShare: v}
			}
			r := tt.start
			r.Update(chains, 1.0/60, params)

			if math.Abs(r.AngularVelocity-tt.wantAV) > 1e-9 {
				t.Errorf("Expected av %f, got %f", tt.wantAV, r.AngularVelocity)
			}
			if math.Abs(r.Offset-tt.wantOffset) > 1e-9 {
				t.Errorf("Expected offset %f, got %f", tt.wantOffset, r.Offset)
			}
		})
	}
}

func TestRingIgnoresEmptyAndZeroDt(t *testing.T) {
	r := AnchorRing{Offset: 0.3, AngularVelocity: 1}
	r.Update(nil, 1.0/60, DefaultRingParams())
	r.Update([]*Chain{{ringShare: 5}}, 0, DefaultRingParams())
	if r.Offset != 0.3 || r.AngularVelocity != 1 {
		t.Errorf("Expected ring unchanged, got offset %f av %f", r.Offset, r.AngularVelocity)
	}
}

func TestRingFollowsCarriedAnchorVelocity(t *testing.T) {
	p := DefaultChainParams()
	core := &CentralBody{}
	c := NewChain(core, 0, p, vmath.NewFastRand(1))
	c.AngularVelocity = 2
	chains := []*Chain{c}
	ring := &AnchorRing{}

	// No core motion and no tension: only the carried spin reaches the ring
	c.Step(StepContext{Core: core, Ring: ring, Peers: chains, Dt: 1.0 / 60})

	wantShare := 2 * p.Anchor.Friction
	if math.Abs(c.RingShare()-wantShare) > 1e-9 {
		t.Errorf("Expected ring share %f, got %f", wantShare, c.RingShare())
	}
	if c.AngularVelocity == c.RingShare() {
		t.Errorf("Expected spacing feedback applied after the ring share was recorded")
	}

	rp := DefaultRingParams()
	ring.Update(chains, 1.0/60, rp)
	wantAV := wantShare * rp.Friction
	if math.Abs(ring.AngularVelocity-wantAV) > 1e-9 {
		t.Errorf("Expected ring av %f, got %f", wantAV, ring.AngularVelocity)
	}
}
