package cozyui

import "strings"

// widgetID returns the id for a widget, preferring an explicit WithID.
func (ctx *Context) widgetID(label string, o options) ID {
	if optID := GetOpt(o, OptID); optID != "" {
		return ctx.GetID(optID)
	}
	return ctx.GetID(label)
}

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, ctx.style.TextColor)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, color)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// TextDisabled draws text with the disabled color.
func (ctx *Context) TextDisabled(text string) {
	ctx.TextColored(text, ctx.style.TextDisabledColor)
}

// Label draws text centered in WithWidth pixels, or left-aligned without it.
func (ctx *Context) Label(text string, opts ...Option) {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	size := ctx.MeasureText(text)
	w := maxf(GetOpt(o, OptWidth), size.X)
	ctx.addText(pos.X+(w-size.X)/2, pos.Y, text, ctx.style.TextColor)
	ctx.advanceCursor(Vec2{w, size.Y})
}

// TextWrapped draws text with automatic word wrapping.
// maxWidth specifies the maximum line width (0 = use current layout width).
func (ctx *Context) TextWrapped(text string, maxWidth float32) {
	if maxWidth <= 0 {
		maxWidth = ctx.currentLayoutWidth()
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return
	}

	pos := ctx.ItemPos()
	lineH := ctx.lineHeight()

	line := ""
	y := pos.Y
	lineCount := 0

	for _, word := range words {
		testLine := line
		if testLine != "" {
			testLine += " "
		}
		testLine += word

		if ctx.MeasureText(testLine).X > maxWidth && line != "" {
			ctx.addText(pos.X, y, line, ctx.style.TextColor)
			y += lineH
			lineCount++
			line = word
		} else {
			line = testLine
		}
	}

	if line != "" {
		ctx.addText(pos.X, y, line, ctx.style.TextColor)
		lineCount++
	}

	ctx.advanceCursor(Vec2{maxWidth, float32(lineCount) * lineH})
}

// LabelText draws a label and value side by side.
func (ctx *Context) LabelText(label, value string) {
	ctx.HStack()(func() {
		ctx.Text(label)
		ctx.Text(value)
	})
}

// Button draws a button and returns true if clicked.
func (ctx *Context) Button(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	padX, padY := ctx.style.buttonPadding()
	textSize := ctx.MeasureText(label)
	size := Vec2{
		X: textSize.X + padX*2,
		Y: maxf(textSize.Y+padY*2, ctx.style.InteractHeight),
	}
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		size.X = optWidth
	}
	if optHeight := GetOpt(o, OptHeight); optHeight > 0 {
		size.Y = optHeight
	}

	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	resp := ctx.interact(id, rect)

	ctx.DrawList.AddRectFilledRounded(pos.X, pos.Y, size.X, size.Y, ctx.style.Rounding, ctx.buttonColor(resp))

	textX := pos.X + (size.X-textSize.X)/2
	textY := pos.Y + (size.Y-textSize.Y)/2
	ctx.addText(textX, textY, label, ctx.style.TextColor)

	if desc := GetOpt(o, OptDescription); desc != "" && resp.Hovered && !resp.Dragged {
		ctx.Tooltip(desc)
	}

	ctx.advanceCursor(size)
	return resp.Clicked
}

// buttonColor picks the frame color of a clickable widget.
func (ctx *Context) buttonColor(resp Response) uint32 {
	switch {
	case resp.Held:
		return ctx.style.ButtonActiveColor
	case resp.Hovered:
		return ctx.style.ButtonHoveredColor
	}
	return ctx.style.ButtonColor
}

// Tooltip draws text in a box next to the mouse cursor, on the foreground
// layer. Call it when the widget it describes is hovered.
func (ctx *Context) Tooltip(text string) {
	if ctx.Input == nil || text == "" {
		return
	}
	dl := ctx.ForegroundDrawList
	if dl == nil {
		dl = ctx.DrawList
	}

	padding := float32(4)
	textSize := ctx.MeasureText(text)
	w := textSize.X + padding*2
	h := textSize.Y + padding*2

	// Position tooltip near mouse, but keep on screen
	x := ctx.Input.MouseX + 10
	y := ctx.Input.MouseY + 10
	if x+w > ctx.DisplaySize.X {
		x = ctx.DisplaySize.X - w
	}
	if y+h > ctx.DisplaySize.Y {
		y = ctx.DisplaySize.Y - h
	}

	if s := ctx.style.PopupShadowSize; s > 0 {
		dl.AddRectFilledRounded(x+s, y+s, w, h, ctx.style.Rounding, ctx.style.PopupShadowColor)
	}
	dl.AddRectFilledRounded(x, y, w, h, ctx.style.Rounding, ctx.style.PanelColor)
	dl.AddRectOutline(x, y, w, h, ctx.style.PanelBorderColor, 1)
	ctx.AddTextTo(dl, x+padding, y+padding, text, ctx.style.TextColor)
}

// CollapsingHeader draws a collapsible header.
// Returns true if the section is expanded. Headers start closed unless
// DefaultOpen is passed.
func (ctx *Context) CollapsingHeader(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	state := GetState(ctx, id, CollapsingHeaderState{Open: GetOpt(o, OptDefaultOpen)})

	w := ctx.currentLayoutWidth()
	h := maxf(ctx.lineHeight(), ctx.style.InteractHeight)
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}
	resp := ctx.interact(id, rect)

	ctx.DrawList.AddRectFilledRounded(pos.X, pos.Y, w, h, ctx.style.Rounding, ctx.buttonColor(resp))

	// Disclosure triangle
	textY := pos.Y + (h-ctx.lineHeight())/2
	s := ctx.lineHeight() * 0.6
	ax, ay := pos.X+4, pos.Y+(h-s)/2
	if state.Open {
		ctx.DrawList.AddTriangle(ax, ay, ax+s, ay, ax+s/2, ay+s, ctx.style.TextColor)
	} else {
		ctx.DrawList.AddTriangle(ax, ay, ax+s, ay+s/2, ax, ay+s, ctx.style.TextColor)
	}
	ctx.addText(ax+s+6, textY, label, ctx.style.TextColor)

	if resp.Clicked {
		state.Open = !state.Open
		SetState(ctx, id, state)
		guiLogger.Debug("collapsing header toggled", "label", label, "open", state.Open)
	}

	ctx.advanceCursor(Vec2{w, h})
	return state.Open
}

// Bullet draws a bullet point.
func (ctx *Context) Bullet() {
	pos := ctx.ItemPos()
	r := ctx.lineHeight() * 0.2
	ctx.DrawList.AddCircleFilled(Vec2{pos.X + r*2, pos.Y + ctx.lineHeight()/2}, r, ctx.style.TextColor)
	ctx.advanceCursor(Vec2{r * 4, ctx.lineHeight()})
}

// BulletText draws a bullet point with text.
func (ctx *Context) BulletText(text string) {
	ctx.HStack(Gap(ctx.style.ItemSpacing / 2))(func() {
		ctx.Bullet()
		ctx.Text(text)
	})
}
