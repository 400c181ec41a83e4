// Package chart owns the lifecycle of the single chart instance bound to the
// dashboard canvas. The actual drawing is done by a black-box Renderer (in
// production, the browser-side charting library consuming the Spec); this
// package only guarantees that at most one handle is ever alive.
package chart

import "sync"

// Dataset is one drawn series.
type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor string    `json:"backgroundColor"`
}

// Spec is the series-data contract handed to the renderer.
type Spec struct {
	Type     string    `json:"type"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Handle is a live chart instance. The renderer does not auto-replace
// instances bound to the same canvas, so a handle must be destroyed before a
// replacement is created.
type Handle interface {
	Destroy()
}

// Renderer builds chart instances from specs.
type Renderer interface {
	New(spec Spec) (Handle, error)
}

// Context owns at most one chart handle. Destroy-then-create is exposed only
// as the single Replace operation, so a dangling stale instance cannot exist.
type Context struct {
	mu       sync.Mutex
	renderer Renderer
	current  Handle
	spec     *Spec
}

// NewContext wraps the given renderer in an empty context.
func NewContext(renderer Renderer) *Context {
	return &Context{renderer: renderer}
}

// Replace atomically destroys the current chart instance, if any, and builds
// a new one from spec. On renderer failure the context is left empty.
func (c *Context) Replace(spec Spec) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil {
		c.current.Destroy()
		c.current = nil
		c.spec = nil
	}

	handle, err := c.renderer.New(spec)
	if err != nil {
		return err
	}

	c.current = handle
	c.spec = &spec
	return nil
}

// Spec returns the spec of the live chart instance, if one exists.
func (c *Context) Spec() (Spec, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.spec == nil {
		return Spec{}, false
	}
	return *c.spec, true
}

// Close destroys the live instance, if any.
func (c *Context) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil {
		c.current.Destroy()
		c.current = nil
		c.spec = nil
	}
}

type headlessHandle struct{}

func (headlessHandle) Destroy() {}

type headlessRenderer struct{}

func (headlessRenderer) New(Spec) (Handle, error) { return headlessHandle{}, nil }

// Headless returns a renderer whose instances only record the spec. Used when
// the real drawing happens client-side from the published Spec.
func Headless() Renderer {
	return headlessRenderer{}
}
