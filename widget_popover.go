package ui

// popoverState is the retained state behind one popover spawner.
type popoverState struct {
	surface    *OverlaySurface
	dispatcher *Dispatcher
	anchor     Rect
	content    Vec2
}

var popoverStates = NewFrameStore[popoverState](func(st *popoverState) {
	if st.surface != nil && st.dispatcher != nil {
		st.surface.Close(st.dispatcher)
	}
})

// PopoverButton draws a button that toggles a popover overlay with a
// pointer tail aimed back at the button. The content closure runs
// inside the overlay while it is open.
//
// Usage:
//
//	ctx.PopoverButton("Color", ui.WithDirection(ui.DirBottom))(func() {
//	    ctx.Text("Pick a color")
//	    ctx.Button("OK")
//	})
func (ctx *Context) PopoverButton(label string, opts ...Option) func(func()) {
	opts = append([]Option{
		WithOpt(OptMenuType, MenuPopover),
		WithOpt(OptDirection, DirBottom),
	}, opts...)
	o := applyOptions(opts)

	return func(content func()) {
		clicked := ctx.Button(label, opts...)
		anchor := ctx.lastItemRect()

		id := ctx.GetID(label + "##popover")
		if optID := GetOpt(o, OptID); optID != "" {
			id = ctx.GetID(optID)
		}
		st := popoverStates.Get(id, popoverState{})
		st.anchor = anchor
		st.dispatcher = ctx.dispatcher

		if clicked {
			if st.surface != nil && st.surface.IsOpen() {
				st.surface.Close(ctx.dispatcher)
			} else {
				ctx.openPopover(st, id, o)
			}
		}
		if st.surface == nil || !st.surface.IsOpen() {
			return
		}

		ctx.renderPopover(st, content, o)
	}
}

func (ctx *Context) openPopover(st *popoverState, id ID, o options) {
	st.surface = NewOverlaySurface(GetOpt(o, OptMenuType), GetOpt(o, OptDirection))
	st.surface.SetEdgeMargin(GetOpt(o, OptEdgeMargin))
	st.surface.OnNaturalWidth = func(w float32) { st.content.X = w }

	listener := &DismissListener{
		EscapeCloses:  GetOpt(o, OptEscapeCloses),
		KeepOpen:      GetOpt(o, OptKeepOpen),
		StrayDistance: GetOpt(o, OptStrayDistance),
		Bounds: func() []Rect {
			return []Rect{st.surface.Bounds(), st.anchor}
		},
		OnDismiss: func(DismissReason) {
			st.surface.Close(st.dispatcher)
		},
	}
	st.surface.Open(ctx.dispatcher, id, listener)
}

// renderPopover measures the content on the hidden first frame, then
// places and draws the surface with its tail.
func (ctx *Context) renderPopover(st *popoverState, content func(), o options) {
	pad := ctx.style.MenuPadding * 2

	if st.surface.Phase() == OverlayMeasuring {
		st.content = ctx.measureContent(content)
		st.surface.SetMeasured(Vec2{X: st.content.X + pad*2, Y: st.content.Y + pad*2})
		return
	}

	size := st.surface.NaturalSize()
	placement := st.surface.Place(ctx.Workspace(), st.anchor, size, ctx.style.MenuRounding)
	b := placement.Bounds
	if b.IsZero() {
		return
	}

	dl := ctx.ForegroundDrawList
	dl.AddRectRounded(b.X, b.Y, b.W, b.H, ctx.style.MenuBgColor, placement.Radii)
	dl.AddRectOutline(b.X, b.Y, b.W, b.H, ctx.style.MenuBorderColor, 1)
	ctx.drawPopoverTail(placement)

	if ctx.isHovered(b) {
		ctx.WantCaptureMouse = true
	}

	// Run the content inside the overlay, on the foreground list
	savedCursor := ctx.cursor
	savedDL := ctx.DrawList
	ctx.DrawList = dl
	ctx.cursor = Vec2{X: b.X + pad, Y: b.Y + pad}
	ctx.VStack(Width(b.W - pad*2))(content)
	ctx.DrawList = savedDL
	ctx.cursor = savedCursor
}

// drawPopoverTail draws the triangular pointer on the edge facing the
// spawner.
func (ctx *Context) drawPopoverTail(p Placement) {
	b := p.Bounds
	half := ctx.style.TailSize
	apex := p.TailPos
	color := ctx.style.MenuBgColor

	dl := ctx.ForegroundDrawList
	switch p.TailEdge {
	case DirTop:
		dl.AddTriangle(apex.X, apex.Y, apex.X-half, b.Y, apex.X+half, b.Y, color)
	case DirBottom:
		dl.AddTriangle(apex.X, apex.Y, apex.X+half, b.Y+b.H, apex.X-half, b.Y+b.H, color)
	case DirLeft:
		dl.AddTriangle(apex.X, apex.Y, b.X, apex.Y+half, b.X, apex.Y-half, color)
	case DirRight:
		dl.AddTriangle(apex.X, apex.Y, b.X+b.W, apex.Y-half, b.X+b.W, apex.Y+half, color)
	}
}

// measureContent runs a widget closure against a scratch draw list and
// returns its laid-out size. Nothing reaches the screen.
func (ctx *Context) measureContent(content func()) Vec2 {
	scratch := AcquireDrawList()
	savedDL := ctx.DrawList
	savedFG := ctx.ForegroundDrawList
	savedCursor := ctx.cursor
	ctx.DrawList = scratch
	ctx.ForegroundDrawList = scratch
	ctx.cursor = Vec2{}

	var size Vec2
	ctx.VStack()(func() {
		content()
		if l := ctx.currentLayout(); l != nil {
			size = Vec2{X: l.MaxWidth, Y: l.MaxHeight}
		}
	})

	ctx.DrawList = savedDL
	ctx.ForegroundDrawList = savedFG
	ctx.cursor = savedCursor
	ReleaseDrawList(scratch)
	return size
}

// Tooltip draws a hover hint anchored below the given rectangle. The
// tooltip is ephemeral: it exists only on frames where the caller
// draws it, so there is no open/close lifecycle and no dismissal
// listener.
func (ctx *Context) Tooltip(anchor Rect, text string) {
	if text == "" || !ctx.isHovered(anchor) {
		return
	}

	pad := ctx.style.MenuPadding
	size := ctx.MeasureText(text)
	content := Vec2{X: size.X + pad*2, Y: size.Y + pad*2}

	placement := PlaceOverlay(ctx.Workspace(), anchor, content,
		DirBottom, MenuTooltip, ctx.style.EdgeMargin, ctx.style.MenuRounding)
	b := placement.Bounds
	if b.IsZero() {
		return
	}

	dl := ctx.ForegroundDrawList
	dl.AddRectRounded(b.X, b.Y, b.W, b.H, ctx.style.MenuBgColor, placement.Radii)
	dl.AddRectOutline(b.X, b.Y, b.W, b.H, ctx.style.MenuBorderColor, 1)
	ctx.AddTextTo(dl, b.X+pad, b.Y+pad, text, ctx.style.TextColor)
}
