package ui

// ContextMenu opens a command menu at the pointer when the trigger
// region is right-clicked. The menu behaves exactly like a menu bar
// menu: keyboard navigation, submenus, stray and click-outside
// dismissal.
//
// Returns the committed entry for the frame it was activated, or nil.
func (ctx *Context) ContextMenu(id string, sections []Section, trigger Rect, opts ...Option) *Entry {
	opts = append([]Option{
		WithOpt(OptMenuType, MenuCursor),
		WithOpt(OptDirection, DirBottomRight),
	}, opts...)
	o := applyOptions(opts)

	widgetID := ctx.GetID(id)
	st := menuStates.Get(widgetID, menuWidgetState{})

	if ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonRight) && ctx.isHovered(trigger) {
		ctx.Input.SwallowClick(MouseButtonRight)
		if st.isMenuOpen() {
			st.closeMenu()
		}
		pos := ctx.Input.MousePos()
		// Cursor menus anchor to the click point, not the trigger
		st.anchor = Rect{X: pos.X, Y: pos.Y, W: 1, H: 1}
		ctx.openMenu(st, widgetID, sections, o)
	}

	if st.isMenuOpen() {
		ctx.routeMenuKeys(st)
	}
	ctx.RenderMenuChain(st, o)

	if st.changed {
		st.changed = false
		return st.commit
	}
	return nil
}
