package ui

import (
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// menuRow is one fixed-height slot in a rendered menu level: an entry
// or a separator between sections.
type menuRow struct {
	entry *Entry // nil for separator rows
}

// menuWidgetState is the retained state behind one menu spawner.
type menuWidgetState struct {
	surface    *OverlaySurface
	nav        *MenuNavigator
	dispatcher *Dispatcher

	sections []Section
	anchor   Rect // Spawner bounds, refreshed every frame while open

	naturalWidth float32 // Reported by the measuring frame
	maxHeight    float32 // Per-widget override of Style.MenuMaxHeight

	// Root-level scrolling
	scroll      float32
	scrollTween *gween.Tween

	typeAhead typeAheadState
	filter    string // Searchable dropdowns

	changed bool   // An entry was committed this frame
	commit  *Entry // The committed entry
}

// menuStates evicts by closing the overlay, so a spawner that stops
// rendering mid-open detaches its dismissal listener instead of
// leaking it.
var menuStates = NewFrameStore[menuWidgetState](func(st *menuWidgetState) {
	if st.surface != nil && st.dispatcher != nil {
		st.nav.Close()
		st.surface.Close(st.dispatcher)
	}
})

// buildRows flattens sections into display rows with separator slots
// between non-empty sections.
func buildRows(sections []Section) []menuRow {
	var rows []menuRow
	for _, sec := range sections {
		if len(sec) == 0 {
			continue
		}
		if len(rows) > 0 {
			rows = append(rows, menuRow{})
		}
		for _, e := range sec {
			rows = append(rows, menuRow{entry: e})
		}
	}
	return rows
}

// rowIndexOf returns the row slot holding the given flat entry index.
func rowIndexOf(rows []menuRow, flat []*Entry, flatIdx int) int {
	if flatIdx < 0 || flatIdx >= len(flat) {
		return -1
	}
	target := flat[flatIdx]
	for i, row := range rows {
		if row.entry == target {
			return i
		}
	}
	return -1
}

func shortcutLabel(s *Shortcut) string {
	if s == nil || len(s.Keys) == 0 {
		return ""
	}
	return strings.Join(s.Keys, "+")
}

// openMenu transitions a closed menu state to measuring and wires its
// dismissal listener.
func (ctx *Context) openMenu(st *menuWidgetState, id ID, sections []Section, o options) {
	typ := GetOpt(o, OptMenuType)
	dir := GetOpt(o, OptDirection)
	interactive := GetOpt(o, OptInteractive)

	st.sections = sections
	st.dispatcher = ctx.dispatcher
	st.surface = NewOverlaySurface(typ, dir)
	st.surface.SetEdgeMargin(GetOpt(o, OptEdgeMargin))
	st.maxHeight = GetOpt(o, OptMaxHeight)
	st.surface.OnNaturalWidth = func(w float32) { st.naturalWidth = w }
	st.nav = NewMenuNavigator()

	var active *Entry
	if interactive {
		active = st.commit
	}
	st.nav.Open(sections, interactive, active)
	st.scroll = 0
	st.scrollTween = nil
	st.filter = ""
	st.typeAhead.Reset()

	listener := &DismissListener{
		SpawnerGroup:  spawnerGroupOf(o),
		EscapeCloses:  false, // Escape routes through DispatchKey level by level
		KeepOpen:      GetOpt(o, OptKeepOpen),
		StrayDistance: GetOpt(o, OptStrayDistance),
		Bounds: func() []Rect {
			return append(st.nav.SubtreeBounds(), st.anchor)
		},
		OnDismiss: func(DismissReason) {
			st.nav.Close()
			st.surface.Close(st.dispatcher)
		},
	}
	st.surface.Open(ctx.dispatcher, id, listener)
}

// spawnerGroupOf reads the hover hand-off group from options.
func spawnerGroupOf(o options) string {
	return GetOpt(o, optSpawnerGroup)
}

// optSpawnerGroup ties sibling spawners together: while one menu in a
// group is open, hovering another spawner in the group hands the open
// menu over to it. Menu bars use this.
var optSpawnerGroup = NewOptKey("spawnerGroup", "")

// closeMenu tears the whole open chain down.
func (st *menuWidgetState) closeMenu() {
	if st.nav != nil {
		st.nav.Close()
	}
	if st.surface != nil {
		st.surface.Close(st.dispatcher)
	}
}

// isMenuOpen reports whether the chain is still open. The dismissal
// dispatcher may have closed it since last frame.
func (st *menuWidgetState) isMenuOpen() bool {
	return st.surface != nil && st.surface.IsOpen() && st.nav != nil && st.nav.IsOpen()
}

// routeMenuKeys feeds this frame's navigation keys to the navigator
// chain. Committing anywhere closes the whole chain.
func (ctx *Context) routeMenuKeys(st *menuWidgetState) {
	input := ctx.Input
	if input == nil || !st.isMenuOpen() {
		return
	}
	ctx.WantCaptureKeyboard = true

	keys := []Key{KeyDown, KeyUp, KeyHome, KeyEnd, KeyLeft, KeyRight, KeyEnter, KeySpace, KeyEscape}
	for _, key := range keys {
		if !input.KeyPressed(key) && !input.KeyRepeated(key) {
			continue
		}
		input.ConsumeKey(key)
		closeAll := st.nav.DispatchKey(key)
		if closeAll {
			st.commit = st.nav.lastCommit
			st.changed = true
		}
		if closeAll || !st.nav.IsOpen() {
			st.closeMenu()
			return
		}
		ctx.scrollHighlightIntoView(st)
	}

	// Type-ahead: typed characters jump the deepest level's highlight
	if input.HasInputChars() {
		deepest := st.nav
		for deepest.Child() != nil {
			deepest = deepest.Child()
		}
		if target := st.typeAhead.Update(deepest.sections, input.InputChars, ctx.DeltaTime); target != nil {
			deepest.highlighted = deepest.indexOf(target)
			if deepest == st.nav {
				ctx.scrollHighlightIntoView(st)
			}
		}
		input.ConsumeInputChars()
	} else {
		st.typeAhead.Update(nil, nil, ctx.DeltaTime)
	}
}

// scrollHighlightIntoView starts a scroll tween that brings the root
// level's highlighted row into the visible viewport.
func (ctx *Context) scrollHighlightIntoView(st *menuWidgetState) {
	rows := st.visibleRows()
	rowIdx := rowIndexOf(rows, st.nav.flat, st.nav.HighlightedIndex())
	if rowIdx < 0 {
		return
	}
	rowH := ctx.style.MenuRowHeight
	viewH := ctx.menuViewportHeight(st, len(rows))
	totalH := float32(len(rows)) * rowH
	if totalH <= viewH {
		return
	}

	rowTop := float32(rowIdx) * rowH
	target := st.scroll
	if rowTop < st.scroll {
		target = rowTop
	} else if rowTop+rowH > st.scroll+viewH {
		target = rowTop + rowH - viewH
	}
	target = clampf(target, 0, totalH-viewH)
	if target != st.scroll {
		st.scrollTween = gween.New(st.scroll, target, 0.15, ease.OutQuad)
	}
}

// visibleRows returns the root level's rows after filtering.
func (st *menuWidgetState) visibleRows() []menuRow {
	if st.filter != "" {
		matches := FilterEntries(st.sections, st.filter)
		rows := make([]menuRow, 0, len(matches))
		for _, e := range matches {
			rows = append(rows, menuRow{entry: e})
		}
		return rows
	}
	return buildRows(st.sections)
}

// menuViewportHeight returns the root level's scrollable height.
func (ctx *Context) menuViewportHeight(st *menuWidgetState, rowCount int) float32 {
	maxH := ctx.style.MenuMaxHeight
	if st.maxHeight > 0 {
		maxH = st.maxHeight
	}
	contentH := float32(rowCount) * ctx.style.MenuRowHeight
	if maxH > 0 && contentH > maxH {
		return maxH
	}
	return contentH
}

// measureMenuWidth returns the natural content width of a row set.
func (ctx *Context) measureMenuWidth(rows []menuRow, o options) float32 {
	drawIcons := GetOpt(o, OptDrawIcons)
	pad := ctx.style.MenuPadding

	hasMarks := drawIcons
	for _, row := range rows {
		if row.entry != nil && (row.entry.Checkbox || row.entry.Icon != "") {
			hasMarks = true
		}
	}

	var widest float32
	for _, row := range rows {
		e := row.entry
		if e == nil {
			continue
		}
		w := ctx.MeasureText(e.Label).X
		if sc := shortcutLabel(e.Shortcut); sc != "" {
			w += SpaceXL + ctx.MeasureText(sc).X
		}
		if e.HasChildren() {
			w += SpaceXL
		}
		widest = maxf(widest, w)
	}
	if hasMarks {
		widest += ctx.style.MenuRowHeight // Mark column is one row square
	}

	width := widest + 2*pad
	width = maxf(width, GetOpt(o, OptMinWidth))
	if explicit := GetOpt(o, OptWidth); explicit > 0 {
		width = explicit
	}
	return width
}

// RenderMenuChain draws an open menu state: the root overlay surface
// plus every open submenu level. The measuring frame computes the
// natural size without drawing; the surface shows the frame after.
func (ctx *Context) RenderMenuChain(st *menuWidgetState, o options) {
	if !st.isMenuOpen() {
		return
	}

	rows := st.visibleRows()
	width := ctx.measureMenuWidth(rows, o)
	if GetOpt(o, OptMatchSpawnerWidth) {
		width = maxf(width, st.anchor.W)
	}
	viewH := ctx.menuViewportHeight(st, len(rows))
	pad := ctx.style.MenuPadding
	content := Vec2{X: width, Y: viewH + 2*pad}

	if st.surface.Phase() == OverlayMeasuring {
		st.surface.SetMeasured(content)
		return // Hidden this frame; shown and placed next frame
	}

	placement := st.surface.Place(ctx.Workspace(), st.anchor, content, ctx.style.MenuRounding)
	if placement.Bounds.IsZero() {
		return
	}

	ctx.updateMenuScroll(st, placement.Bounds, len(rows))
	ctx.drawMenuLevel(st, st.nav, rows, placement, o, true)

	// Open submenus chain to the right of their parent row
	parent := st.nav
	parentBounds := placement.Bounds
	parentRows := rows
	for parent.Child() != nil {
		child := parent.Child()
		childRows := buildRows(parent.ChildEntry().Children)

		rowIdx := rowIndexOf(parentRows, parent.flat, parent.indexOf(parent.ChildEntry()))
		anchorRow := Rect{
			X: parentBounds.X,
			Y: parentBounds.Y + pad + float32(rowIdx)*ctx.style.MenuRowHeight,
			W: parentBounds.W,
			H: ctx.style.MenuRowHeight,
		}
		if parent == st.nav {
			anchorRow.Y -= st.scroll
		}

		childW := ctx.measureMenuWidth(childRows, o)
		childContent := Vec2{
			X: childW,
			Y: float32(len(childRows))*ctx.style.MenuRowHeight + 2*pad,
		}
		childPlacement := PlaceOverlay(ctx.Workspace(), anchorRow, childContent,
			DirRight, MenuDropdown, ctx.style.EdgeMargin, ctx.style.MenuRounding)

		ctx.drawMenuLevel(st, child, childRows, childPlacement, o, false)

		parent = child
		parentBounds = childPlacement.Bounds
		parentRows = childRows
	}
}

// updateMenuScroll advances the scroll tween and applies wheel input
// when the pointer is over the root level.
func (ctx *Context) updateMenuScroll(st *menuWidgetState, bounds Rect, rowCount int) {
	rowH := ctx.style.MenuRowHeight
	viewH := ctx.menuViewportHeight(st, rowCount)
	totalH := float32(rowCount) * rowH
	if totalH <= viewH {
		st.scroll = 0
		st.scrollTween = nil
		return
	}

	if st.scrollTween != nil {
		v, done := st.scrollTween.Update(ctx.DeltaTime)
		st.scroll = v
		if done {
			st.scrollTween = nil
		}
	}

	if ctx.Input != nil && ctx.isHovered(bounds) && ctx.Input.MouseWheelY != 0 {
		st.scroll -= ctx.Input.MouseWheelY * rowH * 3
		st.scrollTween = nil // Wheel overrides a running tween
	}
	st.scroll = clampf(st.scroll, 0, totalH-viewH)
}

// drawMenuLevel renders one level of the chain into the foreground
// draw list and feeds pointer hover and clicks back to the navigator.
func (ctx *Context) drawMenuLevel(st *menuWidgetState, nav *MenuNavigator, rows []menuRow, placement Placement, o options, scrollable bool) {
	dl := ctx.ForegroundDrawList
	style := ctx.style
	b := placement.Bounds
	rowH := style.MenuRowHeight
	pad := style.MenuPadding

	nav.SetBounds(b)
	if ctx.isHovered(b) {
		ctx.WantCaptureMouse = true
	}

	dl.AddRectRounded(b.X, b.Y, b.W, b.H, style.MenuBgColor, placement.Radii)
	dl.AddRectOutline(b.X, b.Y, b.W, b.H, style.MenuBorderColor, 1)

	scroll := float32(0)
	var win VirtualWindow
	if scrollable {
		scroll = st.scroll
		win = ComputeVirtualWindow(len(rows), rowH, b.H-2*pad, scroll)
	} else {
		win = VirtualWindow{Start: 0, End: len(rows), TotalHeight: float32(len(rows)) * rowH}
	}

	dl.PushClipRect(b.X, b.Y+pad, b.X+b.W, b.Y+b.H-pad)

	drawIcons := GetOpt(o, OptDrawIcons)
	hasMarks := drawIcons
	for _, row := range rows {
		if row.entry != nil && (row.entry.Checkbox || row.entry.Icon != "") {
			hasMarks = true
		}
	}
	markCol := float32(0)
	if hasMarks {
		markCol = rowH
	}

	highlightRow := rowIndexOf(rows, nav.flat, nav.HighlightedIndex())
	activeRow := -1
	if nav.interactive && nav.Active() != nil {
		activeRow = rowIndexOf(rows, nav.flat, nav.indexOf(nav.Active()))
	}

	for i := win.Start; i < win.End; i++ {
		row := rows[i]
		rowRect := Rect{
			X: b.X + 1,
			Y: b.Y + pad + float32(i)*rowH - scroll,
			W: b.W - 2,
			H: rowH,
		}

		if row.entry == nil {
			y := rowRect.Y + rowH/2
			dl.AddLine(rowRect.X+pad, y, rowRect.X+rowRect.W-pad, y, style.SeparatorColor, 1)
			continue
		}
		e := row.entry

		// Pointer feedback
		if ctx.Input != nil && ctx.Input.MouseMoved() && ctx.isHovered(rowRect) {
			nav.UpdateHover(e)
			highlightRow = rowIndexOf(rows, nav.flat, nav.HighlightedIndex())
		}
		if ctx.isClicked(0, rowRect) && !e.Disabled {
			ctx.Input.SwallowClick(MouseButtonLeft)
			if !e.HasChildren() {
				if nav.commit(e) {
					st.commit = e
					st.changed = true
					st.closeMenu()
					dl.PopClipRect()
					return
				}
			}
		}

		// Row background
		switch {
		case i == activeRow:
			dl.AddRect(rowRect.X, rowRect.Y, rowRect.W, rowRect.H, style.MenuActiveColor)
		case i == highlightRow && !e.Disabled:
			dl.AddRect(rowRect.X, rowRect.Y, rowRect.W, rowRect.H, style.MenuHighlightColor)
		}

		textColor := style.TextColor
		if e.Disabled {
			textColor = style.TextDisabledColor
		}

		textX := rowRect.X + pad
		textY := rowRect.Y + (rowH-ctx.lineHeight())/2

		if markCol > 0 {
			if e.Checkbox && e.Checked {
				ctx.AddTextTo(dl, textX, textY, "✓", style.CheckmarkColor)
			} else if drawIcons && e.Icon != "" {
				ctx.AddTextTo(dl, textX, textY, e.Icon, textColor)
			}
			textX += markCol
		}

		ctx.AddTextTo(dl, textX, textY, e.Label, textColor)

		if sc := shortcutLabel(e.Shortcut); sc != "" {
			scW := ctx.MeasureText(sc).X
			scX := rowRect.X + rowRect.W - pad - scW
			if e.HasChildren() {
				scX -= SpaceLG
			}
			ctx.AddTextTo(dl, scX, textY, sc, style.ShortcutTextColor)
		}
		if e.HasChildren() {
			arrowX := rowRect.X + rowRect.W - pad - ctx.style.CharWidth
			ctx.AddTextTo(dl, arrowX, textY, "►", style.ArrowColor)
		}
	}

	dl.PopClipRect()

	// A submenu opened by hover retracts when the pointer leaves both
	// its spawning row and the submenu itself, even over padding or a
	// separator where no row hover fires.
	if ctx.Input != nil && ctx.Input.MouseMoved() && nav.ChildEntry() != nil {
		overRow := false
		if idx := rowIndexOf(rows, nav.flat, nav.indexOf(nav.ChildEntry())); idx >= 0 {
			r := Rect{X: b.X + 1, Y: b.Y + pad + float32(idx)*rowH - scroll, W: b.W - 2, H: rowH}
			overRow = ctx.isHovered(r)
		}
		overSub := false
		pos := ctx.Input.MousePos()
		for _, sr := range nav.Child().SubtreeBounds() {
			if sr.Contains(pos) {
				overSub = true
				break
			}
		}
		nav.RetractHoverChild(overRow, overSub)
	}

	// Scrollbar for the root level when content overflows
	if scrollable && win.TotalHeight > b.H-2*pad {
		trackH := b.H - 2*pad
		grabH := maxf(trackH*trackH/win.TotalHeight, 16)
		grabY := b.Y + pad + (scroll/(win.TotalHeight-trackH))*(trackH-grabH)
		sbX := b.X + b.W - style.ScrollbarSize - 1
		dl.AddRect(sbX, b.Y+pad, style.ScrollbarSize, trackH, style.ScrollbarBgColor)
		dl.AddRect(sbX, grabY, style.ScrollbarSize, grabH, style.ScrollbarGrabColor)
	}
}
