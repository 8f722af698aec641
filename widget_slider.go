package cozyui

import "github.com/go-theft-auto/cozyui/arc"

// SliderHeight is the fixed height of a Slider.
const SliderHeight float32 = 15

// sliderState remembers whether a gesture is open, so begin fires once per
// press and end fires on release even if the pointer left the slider.
type sliderState struct {
	inGesture      bool
	resetOnRelease bool // double-click seen; restore the default on release
}

var sliderStore = NewFrameStore[sliderState]()

// Slider draws a horizontal slider for a value in 0..1 and returns true when
// the value changed this frame.
//
// Pressing or dragging jumps the handle to the pointer. A double-click
// restores WithDefault when set, once the button comes up. Left and Right
// nudge the value while hovered.
//
//	ctx.Slider("mix", cozyui.Bind(&mix), cozyui.WithWidth(160))
func (ctx *Context) Slider(id string, value GetSet[float32], opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	wid := ctx.widgetID(id, o)
	g := newGesture(wid, o)
	state := sliderStore.Get(wid, sliderState{})

	w := GetOpt(o, OptWidth)
	if w <= 0 {
		w = ctx.style.SliderWidth
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: SliderHeight}
	resp := ctx.interact(wid, rect)

	handleR := rect.H / 2.5
	handleAspect := handleR * 0.5
	lo, hi := rect.X+handleR, rect.X+rect.W-handleR

	def, hasDefault := optDefault(o)
	if hasDefault && resp.DoubleClicked {
		state.resetOnRelease = true
	}

	if resp.Held || resp.Clicked {
		if !state.inGesture {
			state.inGesture = true
			g.Begin()
		}
		if !state.resetOnRelease {
			v := arc.RemapClamp(ctx.Input.MouseX, lo, hi, 0, 1)
			if v != value.Get() {
				value.Set(v)
				resp.Changed = true
			}
		}
	}

	if state.inGesture && ctx.Input != nil && ctx.Input.MouseReleased(MouseButtonLeft) {
		if state.resetOnRelease {
			value.Set(def)
			resp.Changed = true
			guiLogger.Debug("slider reset to default", "id", id, "value", def)
		}
		*state = sliderState{}
		g.End()
	}

	if resp.Hovered && !resp.Held && ctx.Input != nil {
		var delta float32
		if ctx.Input.KeyRepeated(KeyLeft) {
			delta -= KnobKeyStep
		}
		if ctx.Input.KeyRepeated(KeyRight) {
			delta += KnobKeyStep
		}
		if delta != 0 {
			g.Once(func() { resp.Changed = nudgeKnob(value, delta, 1) })
		}
	}

	if desc := GetOpt(o, OptDescription); desc != "" && resp.Hovered && !resp.Dragged {
		ctx.Tooltip(desc)
	}

	dl := ctx.DrawList
	track := rect.Shrink(5)
	dl.AddRectFilledRounded(track.X, track.Y, track.W, track.H, 1.5, ctx.style.WidgetBgColor)

	handleX := arc.Lerp(lo, hi, value.Get())
	if fill := handleX - track.X; fill > 0 {
		dl.AddRectFilledRounded(track.X, track.Y, minf(fill, track.W), track.H, 1.5, ctx.style.HighlightColor)
	}

	var target float32
	if resp.Hovered || resp.Held {
		target = 1
	}
	e := ctx.AnimateValue(SubID(wid, "expansion"), target, ctx.style.AnimationTime)
	handle := RectFromCenter(Vec2{handleX, rect.Center().Y}, Vec2{2 * (handleAspect + e), 2 * (handleR + e)})
	dl.AddRectFilledRounded(handle.X, handle.Y, handle.W, handle.H, 2, ColorWhite)

	ctx.advanceCursor(Vec2{rect.W, rect.H})
	return resp.Changed
}
