package renderer

import (
	"github.com/lixenwraith/abyss/parameter"
	"github.com/lixenwraith/abyss/render"
)

// BackgroundRenderer fills the palette gradient and draws the parallax star field
type BackgroundRenderer struct{}

// NewBackgroundRenderer creates the background layer
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

// Render implements SystemRenderer
func (r *BackgroundRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	canvas.VerticalGradient(ctx.Palette.BackgroundTop, ctx.Palette.BackgroundBottom)

	w := ctx.World
	if !w.Config.Ambient.Stars {
		return
	}
	for _, s := range w.Stars.Stars {
		alpha := parameter.StarAlphaBase + s.Twinkle*parameter.StarAlphaTwinkle
		size := s.Size * (parameter.StarSizeBase + s.Twinkle*parameter.StarSizeTwinkle)
		px, py := ctx.ToPixel(s.X, s.Y)
		canvas.FillDisc(px, py, max(ctx.ToPixelLen(size), parameter.StarMinPixelRadius), ctx.Palette.Star, render.BlendAlpha, alpha)
	}
}
