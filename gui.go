package ui

// Renderer is the interface for rendering UI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// UI manages the immediate mode overlay and menu system.
type UI struct {
	renderer Renderer
	style    Style
	ctx      *Context
}

// UIOption configures a UI instance.
type UIOption func(*UI)

// WithStyle sets the UI style.
func WithStyle(style Style) UIOption {
	return func(u *UI) { u.style = style }
}

// New creates a new UI instance.
func New(renderer Renderer, opts ...UIOption) *UI {
	u := &UI{
		renderer: renderer,
		style:    DefaultStyle(),
		ctx:      NewContext(),
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}

// Begin starts a new frame and returns the UI context.
// Call this at the start of each frame before drawing any UI.
// Dismissal heuristics run here, so overlays closed by this frame's
// pointer input never draw.
func (u *UI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := u.ctx

	// Acquire draw lists from the pool
	ctx.DrawList = AcquireDrawList()
	ctx.ForegroundDrawList = AcquireDrawList() // Overlay surfaces, drawn on top

	// Set frame state
	ctx.Input = input
	ctx.SetStyle(u.style)
	ctx.FontTextureID = u.renderer.FontTextureID()

	// Reset per-frame state
	ctx.Reset(displaySize, deltaTime)

	// Route pointer input to open overlays before widgets see it
	ctx.ProcessDismissal()

	return ctx
}

// End finishes the frame and renders the UI.
// Call this after all UI drawing is complete.
func (u *UI) End() error {
	if u.ctx.DrawList == nil {
		return nil
	}

	u.ctx.DrawList.Finalize()
	err := u.renderer.Render(u.ctx.DrawList)
	if err != nil {
		return err
	}

	// Render foreground draw list (overlays) on top
	if u.ctx.ForegroundDrawList != nil && len(u.ctx.ForegroundDrawList.CmdBuffer) > 0 {
		u.ctx.ForegroundDrawList.Finalize()
		err = u.renderer.Render(u.ctx.ForegroundDrawList)
	}

	// Release draw lists back to pool
	ReleaseDrawList(u.ctx.DrawList)
	u.ctx.DrawList = nil
	if u.ctx.ForegroundDrawList != nil {
		ReleaseDrawList(u.ctx.ForegroundDrawList)
		u.ctx.ForegroundDrawList = nil
	}

	return err
}

// Context returns the current UI context.
// Only valid between Begin() and End() calls.
func (u *UI) Context() *Context {
	return u.ctx
}

// Style returns the current UI style.
func (u *UI) Style() Style {
	return u.style
}

// SetStyle sets the UI style.
func (u *UI) SetStyle(style Style) {
	u.style = style
}

// Resize notifies the UI of a display size change.
func (u *UI) Resize(width, height int) {
	u.renderer.Resize(width, height)
}
