package renderer

import (
	"github.com/lixenwraith/abyss/parameter"
	"github.com/lixenwraith/abyss/render"
)

// RippleRenderer draws expanding rings from presses and bridge activations
type RippleRenderer struct{}

func NewRippleRenderer() *RippleRenderer {
	return &RippleRenderer{}
}

// Render implements SystemRenderer
func (r *RippleRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	ripples := ctx.World.Ripples
	half := parameter.RippleThickness * 0.5
	for _, rp := range ripples.Live {
		radius, alpha, ok := ripples.Shape(rp, ctx.Time)
		if !ok {
			continue
		}
		// Band sits just inside the radius
		px, py := ctx.ToPixel(rp.X, rp.Y)
		canvas.StrokeRing(px, py,
			ctx.ToPixelLen(radius-half), ctx.ToPixelLen(parameter.RippleThickness),
			ctx.Palette.Ripple, render.BlendAlpha, alpha*parameter.RippleAlphaScale)
	}
}
