package ui

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) {
	pos := ctx.ItemPos()
	ctx.AddText(pos.X, pos.Y, text, ctx.style.TextColor)
	ctx.AdvanceCursor(ctx.MeasureText(text))
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	ctx.AddText(pos.X, pos.Y, text, color)
	ctx.AdvanceCursor(ctx.MeasureText(text))
}

// TextDisabled draws text with the disabled color.
func (ctx *Context) TextDisabled(text string) {
	pos := ctx.ItemPos()
	ctx.AddText(pos.X, pos.Y, text, ctx.style.TextDisabledColor)
	ctx.AdvanceCursor(ctx.MeasureText(text))
}

// Button draws a button and returns true if clicked.
func (ctx *Context) Button(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	textSize := ctx.MeasureText(label)
	size := Vec2{
		X: textSize.X + ctx.style.ButtonPadding*2,
		Y: textSize.Y + ctx.style.ButtonPadding*2,
	}
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		size.X = optWidth
	}
	if optHeight := GetOpt(o, OptHeight); optHeight > 0 {
		size.Y = optHeight
	}

	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	disabled := GetOpt(o, OptDisabled)

	// State-based coloring
	bgColor := ctx.style.ButtonColor
	hovered := ctx.isHovered(rect) && !disabled
	pressed := ctx.isPressed(rect) && !disabled

	if hovered {
		bgColor = ctx.style.ButtonHoveredColor
		ctx.WantCaptureMouse = true
	}
	if pressed {
		bgColor = ctx.style.ButtonActiveColor
	}
	if disabled {
		bgColor = ctx.style.ButtonDisabledColor
	}

	ctx.DrawList.AddRect(pos.X, pos.Y, size.X, size.Y, bgColor)

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	textX := pos.X + (size.X-textSize.X)/2
	textY := pos.Y + (size.Y-textSize.Y)/2
	ctx.AddText(textX, textY, label, textColor)

	ctx.AdvanceCursor(size)

	if tip := GetOpt(o, OptTooltip); tip != "" && hovered {
		ctx.Tooltip(rect, tip)
	}

	return !disabled && ctx.isClicked(id, rect)
}

// Checkbox draws a checkbox bound to value. Returns true when toggled.
func (ctx *Context) Checkbox(label string, value *bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	boxSize := ctx.lineHeight()
	textSize := ctx.MeasureText(label)
	size := Vec2{X: boxSize + SpaceSM + textSize.X, Y: boxSize}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	disabled := GetOpt(o, OptDisabled)

	boxColor := ctx.style.InputBgColor
	if ctx.isHovered(rect) && !disabled {
		boxColor = ctx.style.ButtonHoveredColor
		ctx.WantCaptureMouse = true
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, boxSize, boxSize, boxColor)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, boxSize, boxSize, ctx.style.InputBorderColor, 1)

	if value != nil && *value {
		ctx.AddText(pos.X+(boxSize-ctx.style.CharWidth)/2, pos.Y, "✓", ctx.style.CheckmarkColor)
	}

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.AddText(pos.X+boxSize+SpaceSM, pos.Y+(boxSize-textSize.Y)/2, label, textColor)

	ctx.AdvanceCursor(size)

	if !disabled && value != nil && ctx.isClicked(id, rect) {
		*value = !*value
		return true
	}
	return false
}

// Separator draws a horizontal divider across the current layout.
func (ctx *Context) Separator() {
	pos := ctx.ItemPos()
	width := ctx.currentLayoutWidth()
	y := pos.Y + SpaceSM/2
	ctx.DrawList.AddLine(pos.X, y, pos.X+width, y, ctx.style.SeparatorColor, 1)
	ctx.AdvanceCursor(Vec2{X: width, Y: SpaceSM})
}
