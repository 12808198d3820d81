package ui

// MenuBarItem is one top-level menu in a menu bar.
type MenuBarItem struct {
	Label    string
	Sections []Section
}

// MenuBar draws a horizontal row of menu spawners. Clicking a label
// opens its command menu below it; while any menu is open, hovering a
// sibling label hands the open menu over to it without another click.
//
// Committing an entry runs its Action and closes the whole chain.
func (ctx *Context) MenuBar(id string, items []MenuBarItem, opts ...Option) {
	opts = append([]Option{
		WithOpt(OptMenuType, MenuDropdown),
		WithOpt(OptDirection, DirBottom),
		WithOpt(optSpawnerGroup, id),
	}, opts...)
	o := applyOptions(opts)

	ctx.PushID(id)
	defer ctx.PopID()

	barHeight := ctx.lineHeight() + ctx.style.ButtonPadding*2

	ctx.HStack(Gap(0))(func() {
		for i := range items {
			item := &items[i]
			pos := ctx.ItemPos()
			itemID := ctx.GetID(item.Label)

			width := ctx.MeasureText(item.Label).X + ctx.style.ButtonPadding*2
			rect := Rect{X: pos.X, Y: pos.Y, W: width, H: barHeight}

			ctx.Spawners().Register(itemID, id, rect)

			st := menuStates.Get(itemID, menuWidgetState{})
			st.anchor = rect
			open := st.isMenuOpen()

			bgColor := ctx.style.ButtonColor
			if open {
				bgColor = ctx.style.ButtonActiveColor
			} else if ctx.isHovered(rect) {
				bgColor = ctx.style.ButtonHoveredColor
				ctx.WantCaptureMouse = true
			}
			ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, bgColor)
			ctx.AddText(rect.X+ctx.style.ButtonPadding, rect.Y+(barHeight-ctx.lineHeight())/2,
				item.Label, ctx.style.TextColor)

			ctx.AdvanceCursor(Vec2{X: width, Y: barHeight})

			if ctx.isClicked(itemID, rect) {
				if open {
					st.closeMenu()
				} else {
					ctx.openMenu(st, itemID, item.Sections, o)
				}
			}
			if ctx.Spawners().ConsumeActivation(itemID) && !st.isMenuOpen() {
				ctx.openMenu(st, itemID, item.Sections, o)
			}

			if st.isMenuOpen() {
				ctx.routeMenuKeys(st)
			}
			ctx.RenderMenuChain(st, o)
			st.changed = false
		}
	})
}
