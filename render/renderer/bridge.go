package renderer

import (
	"github.com/lixenwraith/abyss/effect"
	"github.com/lixenwraith/abyss/parameter"
	"github.com/lixenwraith/abyss/render"
	"github.com/lixenwraith/abyss/vmath"
)

// BridgeRenderer draws the energy bridge: arcs from the core to a tip subset and particles riding them
type BridgeRenderer struct {
	// Projected tips, reused across frames
	tips []float64
}

func NewBridgeRenderer() *BridgeRenderer {
	return &BridgeRenderer{}
}

// Render implements SystemRenderer
func (r *BridgeRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	w := ctx.World
	a, ok := w.Bridge.Phase().(*effect.Active)
	if !ok || len(w.Tips) == 0 {
		return
	}
	pal := ctx.Palette
	ease := effect.Ease(a.Progress)
	lift := parameter.BridgeCurveLift
	core := w.Core.Pos

	r.tips = r.tips[:0]
	for _, tip := range w.Tips {
		x, y, _ := ctx.Projector.ProjectFrom(core, tip)
		r.tips = append(r.tips, x, y)
	}
	n := len(w.Tips)
	sx, sy := core.X, core.Y

	outerW := ctx.ToPixelLen(parameter.BridgeOuterWidth + ease*parameter.BridgeOuterWidthEase)
	innerW := ctx.ToPixelLen(parameter.BridgeInnerWidth + ease*parameter.BridgeInnerWidthEase)
	outerA := parameter.BridgeOuterAlpha + ease*parameter.BridgeOuterAlphaEase
	innerA := parameter.BridgeInnerAlpha + ease*parameter.BridgeInnerAlphaEase

	psx, psy := ctx.ToPixel(sx, sy)
	stride := max(1, n/parameter.BridgeCurveSamples)
	for i := 0; i < n; i += stride {
		tx, ty := r.tips[2*i], r.tips[2*i+1]
		cx, cy := effect.ControlPoint(sx, sy, tx, ty, ease, lift)

		pcx, pcy := ctx.ToPixel(cx, cy)
		ptx, pty := ctx.ToPixel(tx, ty)
		canvas.StrokeQuad(psx, psy, pcx, pcy, ptx, pty, parameter.BridgeCurveSteps, outerW, pal.BridgeOuter, render.BlendAlpha, outerA)
		canvas.StrokeQuad(psx, psy, pcx, pcy, ptx, pty, parameter.BridgeCurveSteps, innerW, pal.BridgeInner, render.BlendAlpha, innerA)
	}

	for _, p := range w.Bridge.Particles {
		// Indices outside the frame's tip list are skipped
		if p.Tip < 0 || p.Tip >= n {
			continue
		}
		x, y := effect.PathPoint(sx, sy, r.tips[2*p.Tip], r.tips[2*p.Tip+1], ease, lift, p.T)
		glow := p.Glow()
		px, py := ctx.ToPixel(x, y)
		canvas.FillDisc(px, py,
			ctx.ToPixelLen(parameter.BridgeParticleRadius+glow*parameter.BridgeParticleRadiusGlow),
			pal.BridgeInner, render.BlendAlpha,
			vmath.Clamp(parameter.BridgeParticleAlpha+glow*parameter.BridgeParticleAlphaGlow, 0, 1))
	}
}
