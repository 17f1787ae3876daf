package renderer

import (
	"fmt"
	"sync/atomic"

	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/abyss/engine"
	"github.com/lixenwraith/abyss/parameter"
	"github.com/lixenwraith/abyss/parameter/visual"
	"github.com/lixenwraith/abyss/render"
	"github.com/lixenwraith/abyss/status"
	"github.com/lixenwraith/abyss/terminal"
)

var hudHints = []string{
	"Drag: Move core",
	"Space: Energy bridge",
	"Q/E: Palettes",
	"H: Toggle HUD  P: Pause",
	"M: Mute  Esc: Quit",
}

const hudTagline = "Drag the core, weave the current."

// HUDRenderer draws the overlay panel: palette name, controls, bridge status and frame telemetry
type HUDRenderer struct {
	world *engine.World

	// Cached metric pointers (zero-lock reads)
	statFPS    *status.AtomicFloat
	statFrame  *atomic.Int64
	statMuted  *atomic.Bool
	statStatus *status.AtomicString
}

// NewHUDRenderer creates the HUD bound to a world and the metrics registry
func NewHUDRenderer(world *engine.World, reg *status.Registry) *HUDRenderer {
	return &HUDRenderer{
		world:      world,
		statFPS:    reg.Floats.Get(status.KeyFPS),
		statFrame:  reg.Ints.Get(status.KeyFrame),
		statMuted:  reg.Bools.Get(status.KeyMuted),
		statStatus: reg.Strings.Get(status.KeyStatusLine),
	}
}

// IsVisible implements VisibilityToggle
func (r *HUDRenderer) IsVisible() bool {
	return r.world.HUDVisible
}

// Render implements SystemRenderer
func (r *HUDRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	pal := ctx.Palette
	x0, y0 := parameter.HUDMarginX, parameter.HUDMarginY
	w := min(parameter.HUDWidth, canvas.Cols()-x0)
	// Border, title, tagline, blank, hints, blank, status, telemetry, border
	h := len(hudHints) + 8
	if w < 4 || y0+h > canvas.Rows() {
		return
	}

	canvas.FillRect(x0, y0*2, x0+w, (y0+h)*2, visual.RgbHUDPanel, render.BlendAlpha, parameter.HUDPanelAlpha)
	r.drawBorder(canvas, x0, y0, w, h, render.Lerp(visual.RgbHUDPanel, pal.Glow, parameter.HUDBorderAlpha))

	tx, y := x0+2, y0+1
	canvas.DrawString(tx, y, pal.Name, visual.RgbHUDTitle, terminal.AttrBold)
	y++
	canvas.DrawString(tx, y, fit(hudTagline, w-4), render.Lerp(visual.RgbHUDPanel, pal.Glow, 0.7), terminal.AttrNone)
	y += 2

	hint := render.Lerp(visual.RgbHUDPanel, pal.Tentacle, parameter.HUDHintAlpha)
	for _, line := range hudHints {
		canvas.DrawString(tx, y, fit(line, w-4), hint, terminal.AttrNone)
		y++
	}
	y++

	line := r.statStatus.Load()
	if line == "" {
		line = r.world.StatusLine()
	}
	if r.world.Paused {
		line += " · paused"
	}
	canvas.DrawString(tx, y, fit(line, w-4), render.Lerp(visual.RgbHUDPanel, pal.BridgeInner, 0.9), terminal.AttrNone)
	y++

	telemetry := fmt.Sprintf("%.0f fps · frame %s", r.statFPS.Get(), humanize.Comma(r.statFrame.Load()))
	if r.statMuted.Load() {
		telemetry += " · muted"
	}
	canvas.DrawString(tx, y, fit(telemetry, w-4), hint, terminal.AttrDim)
}

func (r *HUDRenderer) drawBorder(canvas *render.Canvas, x0, y0, w, h int, col render.RGB) {
	x1, y1 := x0+w-1, y0+h-1
	for x := x0 + 1; x < x1; x++ {
		canvas.SetText(x, y0, '─', col, terminal.AttrNone)
		canvas.SetText(x, y1, '─', col, terminal.AttrNone)
	}
	for y := y0 + 1; y < y1; y++ {
		canvas.SetText(x0, y, '│', col, terminal.AttrNone)
		canvas.SetText(x1, y, '│', col, terminal.AttrNone)
	}
	canvas.SetText(x0, y0, '╭', col, terminal.AttrNone)
	canvas.SetText(x1, y0, '╮', col, terminal.AttrNone)
	canvas.SetText(x0, y1, '╰', col, terminal.AttrNone)
	canvas.SetText(x1, y1, '╯', col, terminal.AttrNone)
}

// fit truncates s to n runes
func fit(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
