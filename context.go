package ui

import "log/slog"

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated UI context type.
// Using a dedicated type avoids type assertions and map lookups.
type Context struct {
	// Drawing output
	DrawList           *DrawList
	ForegroundDrawList *DrawList // Overlay surfaces, drawn on top

	// Styling
	style      Style
	styleStack []Style // For PushStyle/PopStyle

	// Layout
	cursor      Vec2
	layoutStack []*Layout

	// Input (read-only during frame)
	Input *InputState

	// IDs
	idStack   []ID
	idCounter uint32 // Auto-increment for call-site IDs

	// Screen
	DisplaySize Vec2
	DPIScale    float32

	// Workspace bounds overlays are clamped into. Defaults to the full
	// display when not set; editors set it to the viewport region so
	// menus never cover tool rails.
	workspace    Rect
	workspaceSet bool

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// Overlay dismissal routing
	dispatcher *Dispatcher

	// Font texture ID (set by renderer) for the built-in font
	FontTextureID uint32

	// Input capture flags (output from UI to application).
	// These tell the application whether the UI wants to consume input.
	WantCaptureMouse    bool // True if mouse is over any UI element
	WantCaptureKeyboard bool // True if an open menu routes keys

	// Performance optimization: per-frame text measurement cache.
	textMeasureCache map[string]Vec2

	// Bounds of the most recently advanced item, for tooltips and
	// popovers anchored to "the last widget".
	lastItem Rect
}

// NewContext creates a new UI context with default settings.
func NewContext() *Context {
	return &Context{
		styleStack:       make([]Style, 0, 8),
		layoutStack:      make([]*Layout, 0, 16),
		idStack:          make([]ID, 0, 32),
		textMeasureCache: make(map[string]Vec2, 64),
		dispatcher:       NewDispatcher(),
		DPIScale:         1.0,
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// PushStyle temporarily overrides the style.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the previous style.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// Dispatcher returns the overlay dismissal dispatcher.
func (ctx *Context) Dispatcher() *Dispatcher {
	return ctx.dispatcher
}

// Spawners returns the spawner registry for hover hand-off.
func (ctx *Context) Spawners() *SpawnerRegistry {
	return ctx.dispatcher.Spawners()
}

// SetWorkspaceBounds restricts overlay placement to the given region.
// Pass the zero Rect to revert to the full display.
func (ctx *Context) SetWorkspaceBounds(r Rect) {
	ctx.workspace = r
	ctx.workspaceSet = !r.IsZero()
}

// Workspace returns the region overlays are clamped into.
func (ctx *Context) Workspace() Rect {
	if ctx.workspaceSet {
		return ctx.workspace
	}
	return Rect{W: ctx.DisplaySize.X, H: ctx.DisplaySize.Y}
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	// Advance frame counter and clean up stale FrameStore entries
	NextFrame()

	ctx.cursor = Vec2{0, 0}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.styleStack = ctx.styleStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.FrameCount++

	// Reset input capture flags - widgets will set these during the frame
	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false

	// Clear text measurement cache (valid only for current frame)
	clear(ctx.textMeasureCache)

	// Flip the spawner registry so this frame's hit tests read last
	// frame's complete registration set.
	ctx.dispatcher.Spawners().NextFrame()
}

// ProcessDismissal runs the global dismissal heuristics against this
// frame's input. Called once per frame before widgets draw, so a
// dismissed overlay skips rendering the same frame.
func (ctx *Context) ProcessDismissal() {
	input := ctx.Input
	if input == nil || ctx.dispatcher.Count() == 0 {
		return
	}

	if input.MouseMoved() {
		ctx.dispatcher.PointerMove(input.MousePos())
	}
	if input.MouseClicked(MouseButtonLeft) || input.MouseClicked(MouseButtonRight) {
		if ctx.dispatcher.PointerDown(input.MousePos()) {
			input.SwallowClick(MouseButtonLeft)
			input.SwallowClick(MouseButtonRight)
		}
	}
	if input.KeyPressed(KeyEscape) && ctx.dispatcher.Escape() {
		input.ConsumeKey(KeyEscape)
	}
	if ctx.dispatcher.Count() > 0 {
		ctx.WantCaptureKeyboard = true
	}
}

// Helper methods for widget interaction

// isHovered returns true if the widget area is under the mouse cursor.
func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(ctx.Input.MousePos())
}

// IsHovered returns true if the widget area is under the mouse cursor (public API).
func (ctx *Context) IsHovered(rect Rect) bool {
	return ctx.isHovered(rect)
}

// isClicked returns true if the widget was clicked this frame.
func (ctx *Context) isClicked(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	hovered := ctx.isHovered(rect)
	clicked := ctx.Input.MouseClicked(MouseButtonLeft)

	if clicked && hovered && uiVerbose() {
		uiLogger.Debug("click detected",
			slog.Uint64("id", uint64(id)),
			slog.Any("mouse", ctx.Input.MousePos()))
	}

	return hovered && clicked
}

// IsClicked returns true if the widget was clicked this frame (public API).
func (ctx *Context) IsClicked(id ID, rect Rect) bool {
	return ctx.isClicked(id, rect)
}

// isPressed returns true if the widget is being held down.
func (ctx *Context) isPressed(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return ctx.isHovered(rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// SetCursorPos moves the layout cursor to an absolute position.
func (ctx *Context) SetCursorPos(pos Vec2) {
	ctx.cursor = pos
}

// lineHeight returns the height of a single line of text.
func (ctx *Context) lineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight returns the height of a single line of text (public API).
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// MeasureText returns the size of rendered text.
// Results are cached per-frame to avoid redundant measurements.
func (ctx *Context) MeasureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}

	charW := ctx.style.CharWidth * ctx.style.FontScale
	charH := ctx.style.CharHeight * ctx.style.FontScale
	result := Vec2{X: float32(len([]rune(text))) * charW, Y: charH}

	ctx.textMeasureCache[text] = result
	return result
}

// AddText draws text with current style to the main draw list.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// AddTextTo draws text to a specific DrawList.
// This is useful for drawing to the foreground/overlay layer.
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil {
		return
	}
	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	dl.SetTexture(0)
}

// currentLayout returns the innermost layout, or nil.
func (ctx *Context) currentLayout() *Layout {
	if len(ctx.layoutStack) > 0 {
		return ctx.layoutStack[len(ctx.layoutStack)-1]
	}
	return nil
}

// currentLayoutWidth returns the available width in the current layout.
func (ctx *Context) currentLayoutWidth() float32 {
	if l := ctx.currentLayout(); l != nil && l.Width > 0 {
		return l.Width
	}
	return ctx.DisplaySize.X
}

// currentLayoutHeight returns the available height in the current layout.
func (ctx *Context) currentLayoutHeight() float32 {
	if l := ctx.currentLayout(); l != nil && l.Height > 0 {
		return l.Height
	}
	return ctx.DisplaySize.Y
}

// beginItem applies gap spacing before drawing an item.
func (ctx *Context) beginItem() {
	layout := ctx.currentLayout()
	if layout == nil {
		return
	}

	if layout.ItemCount > 0 {
		gap := layout.Gap
		if gap == 0 {
			gap = ctx.style.ItemSpacing
		}
		if layout.Type == LayoutVertical {
			ctx.cursor.Y += gap
		} else {
			ctx.cursor.X += gap
		}
	}
}

// ItemPos returns the position for the next widget with gap applied.
// This is the recommended way for widgets to get their drawing position.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

// LastItemRect returns the bounds of the most recently drawn item.
func (ctx *Context) LastItemRect() Rect {
	return ctx.lastItem
}

func (ctx *Context) lastItemRect() Rect {
	return ctx.lastItem
}

// AdvanceCursor moves the cursor after drawing an item.
func (ctx *Context) AdvanceCursor(size Vec2) {
	ctx.lastItem = Rect{X: ctx.cursor.X, Y: ctx.cursor.Y, W: size.X, H: size.Y}
	layout := ctx.currentLayout()
	if layout == nil {
		// No layout, just advance vertically
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}

	// Track content bounds
	if layout.Type == LayoutVertical {
		ctx.cursor.Y += size.Y
		layout.MaxWidth = maxf(layout.MaxWidth, size.X)
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	} else {
		ctx.cursor.X += size.X
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, size.Y)
	}

	layout.ItemCount++
}
