package ui

// Dialog draws a centered modal surface while *open is true. Pointer
// movement and outside clicks never dismiss it; Escape sets *open to
// false unless NoEscapeClose is passed. The content closure runs
// inside the surface.
//
// Usage:
//
//	ctx.Dialog("About", &showAbout)(func() {
//	    ctx.Text("Version 1.0")
//	    if ctx.Button("Close") {
//	        showAbout = false
//	    }
//	})
func (ctx *Context) Dialog(title string, open *bool, opts ...Option) func(func()) {
	opts = append([]Option{
		WithOpt(OptMenuType, MenuDialog),
		WithOpt(OptDirection, DirCenter),
		WithOpt(OptKeepOpen, true),
		WithOpt(OptStrayDistance, float32(0)),
	}, opts...)
	o := applyOptions(opts)

	return func(content func()) {
		id := ctx.GetID(title + "##dialog")
		if optID := GetOpt(o, OptID); optID != "" {
			id = ctx.GetID(optID)
		}
		st := popoverStates.Get(id, popoverState{})
		st.dispatcher = ctx.dispatcher

		wantOpen := open != nil && *open
		surfaceOpen := st.surface != nil && st.surface.IsOpen()

		if wantOpen && !surfaceOpen {
			ctx.openPopover(st, id, o)
			st.surface.OnNaturalWidth = nil
			st.bindDismissFlag(open)
		}
		if !wantOpen && surfaceOpen {
			st.surface.Close(ctx.dispatcher)
		}
		if st.surface == nil || !st.surface.IsOpen() {
			return
		}

		titleH := ctx.lineHeight() + ctx.style.MenuPadding*2
		pad := ctx.style.MenuPadding * 2

		if st.surface.Phase() == OverlayMeasuring {
			inner := ctx.measureContent(content)
			inner.X = maxf(inner.X, ctx.MeasureText(title).X)
			st.surface.SetMeasured(Vec2{X: inner.X + pad*2, Y: inner.Y + pad*2 + titleH})
			return
		}

		placement := st.surface.Place(ctx.Workspace(), Rect{}, st.surface.NaturalSize(), ctx.style.MenuRounding)
		b := placement.Bounds
		if b.IsZero() {
			return
		}

		dl := ctx.ForegroundDrawList
		dl.AddRectRounded(b.X, b.Y, b.W, b.H, ctx.style.MenuBgColor, placement.Radii)
		dl.AddRectOutline(b.X, b.Y, b.W, b.H, ctx.style.MenuBorderColor, 1)
		dl.AddLine(b.X, b.Y+titleH, b.X+b.W, b.Y+titleH, ctx.style.SeparatorColor, 1)
		ctx.AddTextTo(dl, b.X+pad, b.Y+(titleH-ctx.lineHeight())/2, title, ctx.style.TextColor)

		if ctx.isHovered(b) {
			ctx.WantCaptureMouse = true
		}

		savedCursor := ctx.cursor
		savedDL := ctx.DrawList
		ctx.DrawList = dl
		ctx.cursor = Vec2{X: b.X + pad, Y: b.Y + titleH + pad}
		ctx.VStack(Width(b.W - pad*2))(content)
		ctx.DrawList = savedDL
		ctx.cursor = savedCursor

		// Escape dismissal closed the surface via the dispatcher; push
		// that back into the caller's flag.
		if !st.surface.IsOpen() && open != nil {
			*open = false
		}
	}
}

// bindDismissFlag makes dispatcher-driven dismissal (Escape) write the
// closed state back into the caller's flag.
func (st *popoverState) bindDismissFlag(open *bool) {
	if st.surface == nil || st.surface.listener == nil {
		return
	}
	st.surface.listener.OnDismiss = func(DismissReason) {
		st.surface.Close(st.dispatcher)
		if open != nil {
			*open = false
		}
	}
}
