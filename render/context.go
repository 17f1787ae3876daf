package render

import (
	"github.com/lixenwraith/abyss/engine"
	"github.com/lixenwraith/abyss/parameter"
	"github.com/lixenwraith/abyss/parameter/visual"
	"github.com/lixenwraith/abyss/terminal"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	World   *engine.World
	Palette *visual.Palette

	Projector Projector

	// Scene is rebuilt once per frame by the chain-back renderer and drawn by the chain-front renderer
	Scene *Scene

	// Time state
	Time      float64 // Simulation seconds
	DeltaTime float64
	IsPaused  bool

	// Scale is canvas pixels per world unit
	Scale float64

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	ColorMode terminal.ColorMode
}

// NewRenderContext creates a RenderContext for the world at the given terminal size
func NewRenderContext(world *engine.World, cols, rows int, dt float64, mode terminal.ColorMode) RenderContext {
	return RenderContext{
		World:        world,
		Palette:      visual.PaletteAt(world.PaletteIndex),
		Projector:    ProjectorFor(world),
		Time:         world.Time,
		DeltaTime:    dt,
		IsPaused:     world.Paused,
		Scale:        CanvasScale(rows),
		ScreenWidth:  cols,
		ScreenHeight: rows,
		ColorMode:    mode,
	}
}

// ProjectorFor returns the world's configured camera
func ProjectorFor(world *engine.World) Projector {
	p := DefaultProjector()
	p.Focal = world.Config.Camera.Focal
	p.Distance = world.Config.Camera.Distance
	return p
}

// CanvasScale returns pixels per world unit for a terminal of rows cells
func CanvasScale(rows int) float64 {
	return max(parameter.MinCanvasScale, float64(rows*2)/parameter.ViewWorldHeight)
}

// WorldSize returns the world viewport covered by a cols x rows terminal
// Height is fixed, width follows the pixel aspect ratio
func WorldSize(cols, rows int) (float64, float64) {
	scale := CanvasScale(rows)
	return float64(cols) / scale, parameter.ViewWorldHeight
}

// CellToWorld maps a terminal cell to the world point under the lower pixel of that cell
func CellToWorld(cx, cy, rows int) (float64, float64) {
	scale := CanvasScale(rows)
	return (float64(cx) + 0.5) / scale, (float64(2*cy+1) + 0.5) / scale
}

// ToPixel converts world coordinates to canvas pixel coordinates
func (rc *RenderContext) ToPixel(x, y float64) (float64, float64) {
	return x * rc.Scale, y * rc.Scale
}

// ToPixelLen converts a world length to pixels
func (rc *RenderContext) ToPixelLen(l float64) float64 {
	return l * rc.Scale
}
