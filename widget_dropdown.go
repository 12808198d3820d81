package ui

// Dropdown draws a value-picker button that opens an entry menu below
// itself. Returns the active entry and whether it changed this frame.
//
// The selector sizes itself to the menu's widest entry once the first
// open has measured the content. Committing an entry records it as the
// active choice; reopening highlights it.
//
// Usage:
//
//	font, changed := ctx.Dropdown("Font", fontSections, ui.Searchable())
func (ctx *Context) Dropdown(label string, sections []Section, opts ...Option) (*Entry, bool) {
	opts = append([]Option{
		WithOpt(OptInteractive, true),
		WithOpt(OptMatchSpawnerWidth, true),
		WithOpt(OptMenuType, MenuDropdown),
		WithOpt(OptDirection, DirBottom),
	}, opts...)
	o := applyOptions(opts)

	pos := ctx.ItemPos()
	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	st := menuStates.Get(id, menuWidgetState{})
	if st.commit == nil {
		st.commit = GetOpt(o, OptActive)
	}
	open := st.isMenuOpen()
	searchable := GetOpt(o, OptSearchable)

	display := label
	if st.commit != nil {
		display = st.commit.Label
	}
	if open && searchable && st.filter != "" {
		display = st.filter
	}

	// Selector width: widest menu entry once measured, else the label
	arrowCol := ctx.style.CharWidth + SpaceMD
	width := ctx.MeasureText(display).X + ctx.style.ButtonPadding*2 + arrowCol
	width = maxf(width, st.naturalWidth)
	width = maxf(width, GetOpt(o, OptMinWidth))
	if explicit := GetOpt(o, OptWidth); explicit > 0 {
		width = explicit
	}
	height := ctx.lineHeight() + ctx.style.ButtonPadding*2
	rect := Rect{X: pos.X, Y: pos.Y, W: width, H: height}
	st.anchor = rect

	if group := spawnerGroupOf(o); group != "" {
		ctx.Spawners().Register(id, group, rect)
	}

	disabled := GetOpt(o, OptDisabled)

	// Selector body
	bgColor := ctx.style.ButtonColor
	if disabled {
		bgColor = ctx.style.ButtonDisabledColor
	} else if open || ctx.isPressed(rect) {
		bgColor = ctx.style.ButtonActiveColor
	} else if ctx.isHovered(rect) {
		bgColor = ctx.style.ButtonHoveredColor
		ctx.WantCaptureMouse = true
	}
	ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, bgColor)
	ctx.DrawList.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, ctx.style.InputBorderColor, 1)

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	textY := rect.Y + (height-ctx.lineHeight())/2
	ctx.AddText(rect.X+ctx.style.ButtonPadding, textY, display, textColor)
	ctx.AddText(rect.X+rect.W-ctx.style.ButtonPadding-ctx.style.CharWidth, textY, "▼", ctx.style.ArrowColor)

	ctx.AdvanceCursor(Vec2{X: width, Y: height})

	if !disabled {
		if ctx.isClicked(id, rect) {
			if open {
				st.closeMenu()
			} else {
				ctx.openMenu(st, id, sections, o)
			}
		}
		if ctx.Spawners().ConsumeActivation(id) && !st.isMenuOpen() {
			ctx.openMenu(st, id, sections, o)
		}
	}

	if st.isMenuOpen() {
		if searchable {
			ctx.updateMenuFilter(st)
		}
		ctx.routeMenuKeys(st)
	}
	ctx.RenderMenuChain(st, o)

	changed := st.changed
	st.changed = false
	return st.commit, changed
}

// updateMenuFilter feeds typed characters into the dropdown's filter
// query instead of type-ahead. Backspace trims; the highlight resets
// to the best match.
func (ctx *Context) updateMenuFilter(st *menuWidgetState) {
	input := ctx.Input
	if input == nil {
		return
	}
	edited := false
	if input.HasInputChars() {
		st.filter += string(input.InputChars)
		input.ConsumeInputChars()
		edited = true
	}
	if input.KeyPressed(KeyBackspace) || input.KeyRepeated(KeyBackspace) {
		if st.filter != "" {
			runes := []rune(st.filter)
			st.filter = string(runes[:len(runes)-1])
			edited = true
		}
		input.ConsumeKey(KeyBackspace)
	}
	if edited {
		st.scroll = 0
		st.scrollTween = nil
		// Keyboard navigation walks the filtered set while a query is
		// active, so ArrowDown never lands on a hidden entry. Disabled
		// entries stay visible in the results but never take the
		// highlight.
		matches := FilterEntries(st.sections, st.filter)
		st.nav.flat = matches
		st.nav.highlighted = -1
		for i, e := range matches {
			if !e.Disabled {
				st.nav.highlighted = i
				break
			}
		}
	}
}
