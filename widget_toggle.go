package cozyui

import "github.com/go-theft-auto/cozyui/colors"

// Toggle draws a button with an indicator light that flips a bool on click.
// Returns true when the value changed this frame.
//
// WithSmall drops the vertical padding and the minimum height so the toggle
// fits in a text row.
func (ctx *Context) Toggle(id, text string, value GetSet[bool], opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	wid := ctx.widgetID(id, o)

	small := GetOpt(o, OptSmall)
	padX, padY := ctx.style.buttonPadding()
	if small {
		padY = 0
	}

	textSize := ctx.MeasureText(text)
	size := Vec2{
		X: textSize.X + 10 + padX*2,
		Y: textSize.Y + padY*2,
	}
	if !small {
		size.Y = maxf(size.Y, ctx.style.InteractHeight)
	}
	if w := GetOpt(o, OptWidth); w > size.X {
		size.X = w
	}

	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	resp := ctx.interact(wid, rect)

	on := value.Get()
	if resp.Clicked {
		newGesture(wid, o).Once(func() { on = value.Set(!on) })
		resp.Changed = true
		guiLogger.Debug("toggle", "id", id, "on", on)
	}

	if desc := GetOpt(o, OptDescription); desc != "" && resp.Hovered {
		ctx.Tooltip(desc)
	}

	light := ctx.AnimateBool(SubID(wid, "light"), on)

	dl := ctx.DrawList
	dl.AddRectFilledRounded(rect.X, rect.Y, rect.W, rect.H, ctx.style.Rounding, ctx.buttonColor(resp))

	center := rect.Center()
	lightRect := RectFromCenter(Vec2{rect.X + padX + 3, center.Y}, Vec2{4, rect.H - 4})
	dl.AddRectFilledRounded(lightRect.X, lightRect.Y, lightRect.W, lightRect.H, 10,
		PackColor(colors.LightGradient().At(light)))

	ctx.addText(rect.X+padX+10, center.Y-textSize.Y/2, text, ctx.style.TextColor)

	ctx.advanceCursor(size)
	return resp.Changed
}
