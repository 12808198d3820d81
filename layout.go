package ui

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
)

// Layout tracks the current layout state.
type Layout struct {
	Type LayoutType

	// Position tracking
	StartX, StartY float32

	// Sizing
	Width, Height       float32 // Available size
	MaxWidth, MaxHeight float32 // Accumulated content size

	// Spacing
	Gap      float32 // Space between children
	Padding  float32 // Inner padding
	PaddingX float32 // Horizontal padding override
	PaddingY float32 // Vertical padding override

	// State
	ItemCount int // For gap calculation
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Padding sets inner padding.
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// PaddingXY sets horizontal and vertical padding separately.
func PaddingXY(x, y float32) LayoutOption {
	return func(l *Layout) {
		l.PaddingX = x
		l.PaddingY = y
	}
}

// Width sets a fixed width for the layout.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// Height sets a fixed height for the layout.
func Height(h float32) LayoutOption {
	return func(l *Layout) { l.Height = h }
}

// pushLayout creates and pushes a new layout onto the stack.
func (ctx *Context) pushLayout(layoutType LayoutType) *Layout {
	layout := &Layout{
		Type:   layoutType,
		StartX: ctx.cursor.X,
		StartY: ctx.cursor.Y,
		Width:  ctx.currentLayoutWidth(),
		Height: ctx.currentLayoutHeight(),
	}
	ctx.layoutStack = append(ctx.layoutStack, layout)
	return layout
}

// pushLayoutWith creates a layout with options and pushes it.
func (ctx *Context) pushLayoutWith(layout *Layout) {
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	if layout.Width == 0 {
		layout.Width = ctx.currentLayoutWidth()
	}
	if layout.Height == 0 {
		layout.Height = ctx.currentLayoutHeight()
	}
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayout removes and returns the current layout's bounds.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}

	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]

	bounds := Rect{
		X: layout.StartX,
		Y: layout.StartY,
		W: layout.MaxWidth,
		H: layout.MaxHeight,
	}

	// Update parent layout to include this child's content size
	if len(ctx.layoutStack) > 0 {
		parent := ctx.layoutStack[len(ctx.layoutStack)-1]
		childSize := Vec2{X: layout.MaxWidth, Y: layout.MaxHeight}

		if parent.ItemCount > 0 {
			gap := parent.Gap
			if gap == 0 {
				gap = ctx.style.ItemSpacing
			}
			if parent.Type == LayoutVertical {
				ctx.cursor.Y += gap
			} else {
				ctx.cursor.X += gap
			}
		}

		if parent.Type == LayoutVertical {
			ctx.cursor.X = parent.StartX + parent.Padding + parent.PaddingX
			ctx.cursor.Y = layout.StartY + layout.MaxHeight
			parent.MaxWidth = maxf(parent.MaxWidth, childSize.X)
			parent.MaxHeight = ctx.cursor.Y - parent.StartY
		} else {
			ctx.cursor.X = layout.StartX + layout.MaxWidth
			ctx.cursor.Y = parent.StartY + parent.Padding + parent.PaddingY
			parent.MaxWidth = ctx.cursor.X - parent.StartX
			parent.MaxHeight = maxf(parent.MaxHeight, childSize.Y)
		}

		parent.ItemCount++
	}

	return bounds
}

// VStack lays out children vertically.
//
// Usage:
//
//	ctx.VStack(ui.Gap(8))(func() {
//	    ctx.Text("Hello")
//	    ctx.Button("Click")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutVertical}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayoutWith(layout)
		ctx.cursor.X += layout.Padding + layout.PaddingX
		ctx.cursor.Y += layout.Padding + layout.PaddingY
		contents()
		ctx.popLayout()
	}
}

// HStack lays out children horizontally.
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutHorizontal}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayoutWith(layout)
		ctx.cursor.X += layout.Padding + layout.PaddingX
		ctx.cursor.Y += layout.Padding + layout.PaddingY
		contents()
		ctx.popLayout()
	}
}

// Spacing adds empty space in the current layout direction.
func (ctx *Context) Spacing(pixels float32) {
	layout := ctx.currentLayout()
	if layout != nil && layout.Type == LayoutHorizontal {
		ctx.AdvanceCursor(Vec2{X: pixels})
		return
	}
	ctx.AdvanceCursor(Vec2{Y: pixels})
}
