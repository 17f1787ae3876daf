package ambient

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/lixenwraith/abyss/parameter"
	"github.com/lixenwraith/abyss/vmath"
)

// Star is one background point; depth 1 is farthest and moves least with the core
type Star struct {
	X, Y           float64
	DriftX, DriftY float64 // World units per second
	Depth          float64 // [StarDepthMin, 1]
	Size           float64
	Phase          float64 // Noise-space offset
	Twinkle        float64 // [0, 1]
}

// StarField is the parallax background, sized to the world viewport
type StarField struct {
	Stars  []Star
	Width  float64
	Height float64

	noise opensimplex.Noise
}

// StarCount returns the density for a viewport area
func StarCount(width, height float64) int {
	n := int(width * height / parameter.StarAreaPerStar)
	return max(parameter.StarMinCount, min(parameter.StarMaxCount, n))
}

// NewStarField seeds a field over width x height
func NewStarField(width, height float64, rng vmath.Rand) *StarField {
	f := &StarField{}
	f.Reseed(width, height, rng)
	return f
}

// Reseed rebuilds every star for a new viewport or palette, drawing from rng
func (f *StarField) Reseed(width, height float64, rng vmath.Rand) {
	f.Width, f.Height = width, height
	f.noise = opensimplex.NewNormalized(int64(rng.Intn(math.MaxInt32)))

	n := StarCount(width, height)
	if cap(f.Stars) < n {
		f.Stars = make([]Star, n)
	}
	f.Stars = f.Stars[:n]

	for i := range f.Stars {
		depth := vmath.RandRange(rng, parameter.StarDepthMin, 1)
		f.Stars[i] = Star{
			X:      vmath.RandRange(rng, 0, width),
			Y:      vmath.RandRange(rng, 0, height),
			DriftX: vmath.RandRange(rng, -0.5, 0.5) * parameter.StarDriftX,
			DriftY: vmath.RandRange(rng, -0.5, 0.5) * parameter.StarDriftY,
			Depth:  depth,
			Size:   0.6 + depth*1.4,
			Phase:  vmath.RandRange(rng, 0, 100),
		}
	}
}

// Update drifts stars, counter-moves near ones against core velocity and wraps them with a margin
// coreVX/coreVY are the core's per-frame velocity
func (f *StarField) Update(dt, time, coreVX, coreVY float64) {
	m := parameter.StarWrapMargin
	spanX := f.Width + 2*m
	spanY := f.Height + 2*m

	for i := range f.Stars {
		s := &f.Stars[i]
		parallax := (1 - s.Depth) * parameter.StarParallax
		s.X += s.DriftX*dt - coreVX*parallax
		s.Y += s.DriftY*dt - coreVY*parallax

		if s.X < -m {
			s.X += spanX
		} else if s.X > f.Width+m {
			s.X -= spanX
		}
		if s.Y < -m {
			s.Y += spanY
		} else if s.Y > f.Height+m {
			s.Y -= spanY
		}

		s.Twinkle = f.noise.Eval2(s.Phase, time*parameter.StarTwinkleRate)
	}
}
