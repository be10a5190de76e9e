package render

// Renderer draws one layer of a frame
type Renderer interface {
	Render(c *Canvas)
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(c *Canvas)

// Render calls f
func (f RendererFunc) Render(c *Canvas) { f(c) }

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

type rendererEntry struct {
	renderer Renderer
	priority int
	index    int // Registration order for stable sort
}

// Orchestrator draws registered layers in priority order
type Orchestrator struct {
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an empty pipeline
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{renderers: make([]rendererEntry, 0, 8)}
}

// Register adds a renderer at priority, maintaining sorted order via insertion
func (o *Orchestrator) Register(r Renderer, priority int) {
	entry := rendererEntry{renderer: r, priority: priority, index: o.regCount}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority {
			pos = i
			break
		}
	}
	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// RenderFrame clears the canvas, draws all visible layers and shows the result
func (o *Orchestrator) RenderFrame(c *Canvas) {
	c.Clear()
	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(c)
	}
	c.Show()
}
