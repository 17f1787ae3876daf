package renderer

import (
	"github.com/lixenwraith/abyss/parameter"
	"github.com/lixenwraith/abyss/render"
)

// ChainRenderer strokes one depth half of the projected chain edges
// The back instance builds the frame's scene; the front instance must be registered after it
type ChainRenderer struct {
	front bool
}

// NewChainBackRenderer draws edges behind the core plane and builds the shared scene
func NewChainBackRenderer() *ChainRenderer {
	return &ChainRenderer{}
}

// NewChainFrontRenderer draws edges at or in front of the core plane
func NewChainFrontRenderer() *ChainRenderer {
	return &ChainRenderer{front: true}
}

// Render implements SystemRenderer
func (r *ChainRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	w := ctx.World
	edges := ctx.Scene.Front
	if !r.front {
		ctx.Scene.Build(ctx.Projector, w.Core.Pos, w.Chains, w.Config.Core.Radius)
		edges = ctx.Scene.Behind
	}

	tentacle, glow := ctx.Palette.Tentacle, ctx.Palette.Glow
	for _, e := range edges {
		ax, ay := ctx.ToPixel(e.AX, e.AY)
		bx, by := ctx.ToPixel(e.BX, e.BY)
		width := ctx.ToPixelLen(e.Width)

		canvas.StrokeLine(ax, ay, bx, by, width, tentacle, render.BlendAlpha, e.Alpha)
		canvas.StrokeLine(ax, ay, bx, by, width*parameter.EdgeGlowWidth, glow, render.BlendAlpha, e.Alpha*parameter.EdgeGlowAlpha)
	}
}
