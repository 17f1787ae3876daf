package renderer

import (
	"math"

	"github.com/lixenwraith/abyss/effect"
	"github.com/lixenwraith/abyss/parameter"
	"github.com/lixenwraith/abyss/parameter/visual"
	"github.com/lixenwraith/abyss/render"
	"github.com/lixenwraith/abyss/vmath"
)

// CoreRenderer draws the layered orb glow and, while the bridge runs, the pulsing halo
type CoreRenderer struct{}

func NewCoreRenderer() *CoreRenderer {
	return &CoreRenderer{}
}

// Render implements SystemRenderer
func (r *CoreRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	w := ctx.World
	pal := ctx.Palette
	core := w.Core.Pos

	// Projected at its own plane the core keeps the camera's rest scale
	radius := w.Config.Core.Radius * ctx.Projector.Scale(0)
	cx, cy := ctx.ToPixel(core.X, core.Y)
	pr := ctx.ToPixelLen(radius)

	layers := [parameter.CoreGlowLayers]visual.GlowLayer{pal.OrbInner, pal.OrbMid, pal.OrbOuter}
	outer := pr * (1 + parameter.CoreGlowSpread)

	// Bloom fades mid to outer in Luv space beyond the last layer
	mid, edge := visual.ToColorful(pal.OrbMid.Color), visual.ToColorful(pal.OrbOuter.Color)
	canvas.FillRadial(cx, cy, outer*parameter.CoreBloomRadius, func(t float64) (render.RGB, float64) {
		return visual.FromColorful(mid.BlendLuv(edge, t)), (1 - t) * parameter.CoreBloomAlpha
	}, render.BlendScreen)

	for i, layer := range layers {
		t := float64(i) / float64(len(layers)-1)
		alpha := layer.Alpha * (1 - t*parameter.CoreGlowAlphaFalloff)
		canvas.FillDisc(cx, cy, pr*(1+t*parameter.CoreGlowSpread), layer.Color, render.BlendAlpha, alpha)
	}

	if a, ok := w.Bridge.Phase().(*effect.Active); ok {
		pulse := parameter.CoreHaloPulseBase + math.Sin(math.Pi*a.Progress)*parameter.CoreHaloPulseEase
		inner := pr * (parameter.CoreHaloInner + pulse*parameter.CoreHaloInnerPulse)
		outerR := pr * (parameter.CoreHaloOuter + pulse*parameter.CoreHaloOuterPulse)
		canvas.StrokeRing(cx, cy, (inner+outerR)*0.5, outerR-inner,
			pal.BridgeInner, render.BlendAlpha, vmath.Clamp(parameter.CoreHaloAlphaBase+pulse*parameter.CoreHaloAlphaPulse, 0, 1))
	}
}
