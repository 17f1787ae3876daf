package render

import (
	"github.com/lixenwraith/abyss/terminal"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	term      terminal.Terminal
	canvas    *Canvas
	scene     Scene
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator with the given terminal and dimensions
func NewRenderOrchestrator(term terminal.Terminal, cols, rows int) *RenderOrchestrator {
	return &RenderOrchestrator{
		term:      term,
		canvas:    NewCanvas(cols, rows),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	// Insertion sort: find position and insert
	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Canvas returns the compositor the renderers draw into
func (o *RenderOrchestrator) Canvas() *Canvas {
	return o.canvas
}

// Resize updates canvas dimensions and syncs terminal
func (o *RenderOrchestrator) Resize(cols, rows int) {
	o.canvas.Resize(cols, rows)
	o.term.Sync()
}

// RenderFrame executes the render pipeline: clear, render all, flush
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.scene.Reset()
	ctx.Scene = &o.scene

	o.canvas.Clear()

	for _, entry := range o.renderers {
		// Skip if renderer implements VisibilityToggle and is not visible
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.canvas)
	}

	o.canvas.FlushToTerminal(o.term)
}
