package render

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/abyss/parameter"
	"github.com/lixenwraith/abyss/physics"
	"github.com/lixenwraith/abyss/vmath"
)

// Edge is one projected chain link ready to stroke, in world-space screen coordinates
type Edge struct {
	AX, AY float64
	BX, BY float64
	AvgZ   float64
	Width  float64 // World units, before canvas scale
	Alpha  float64 // Depth alpha
}

// Scene holds the frame's chain edges split around the core
// Behind is sorted far-to-near, Front near-to-far
type Scene struct {
	Behind []Edge
	Front  []Edge

	// Scratch for one chain's projected points
	proj []projected
}

type projected struct {
	x, y, scale float64
}

// Reset empties both lists keeping capacity
func (s *Scene) Reset() {
	s.Behind = s.Behind[:0]
	s.Front = s.Front[:0]
}

// EdgeWidth returns the stroke width of edge i of n along a chain at the given mean projection scale
func EdgeWidth(i, n int, avgScale float64) float64 {
	t := 0.0
	if n > 1 {
		t = float64(i) / float64(n-1)
	}
	base := vmath.Lerp(parameter.EdgeWidthRoot, parameter.EdgeWidthTip, t)
	return base * vmath.Clamp(avgScale*parameter.EdgeScaleFactor, parameter.EdgeScaleMin, parameter.EdgeScaleMax)
}

// DepthAlpha returns stroke alpha for a mean depth relative to the core radius
func DepthAlpha(avgZ, radius float64) float64 {
	return vmath.Clamp(parameter.EdgeDepthAlphaBase+avgZ/vmath.NonZero(radius*2, 1), parameter.EdgeDepthAlphaMin, 1)
}

// Build projects every chain around the core, classifies each edge by the sign of its mean depth and depth-sorts both lists
func (s *Scene) Build(proj Projector, core vmath.Vec3F, chains []*physics.Chain, radius float64) {
	s.Reset()
	for _, c := range chains {
		n := len(c.Segments)
		if n < 2 {
			continue
		}
		s.proj = s.proj[:0]
		for _, seg := range c.Segments {
			x, y, sc := proj.ProjectFrom(core, seg.Pos)
			s.proj = append(s.proj, projected{x, y, sc})
		}
		for i := 1; i < n; i++ {
			a, b := s.proj[i-1], s.proj[i]
			avgZ := (c.Segments[i-1].Pos.Z + c.Segments[i].Pos.Z) * 0.5
			e := Edge{
				AX: a.x, AY: a.y,
				BX: b.x, BY: b.y,
				AvgZ:  avgZ,
				Width: EdgeWidth(i, n, (a.scale+b.scale)*0.5),
				Alpha: DepthAlpha(avgZ, radius),
			}
			if avgZ < 0 {
				s.Behind = append(s.Behind, e)
			} else {
				s.Front = append(s.Front, e)
			}
		}
	}

	slices.SortStableFunc(s.Behind, func(a, b Edge) int { return cmp.Compare(a.AvgZ, b.AvgZ) })
	slices.SortStableFunc(s.Front, func(a, b Edge) int { return cmp.Compare(b.AvgZ, a.AvgZ) })
}
