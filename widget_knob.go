package cozyui

import (
	"github.com/chewxy/math32"

	"github.com/go-theft-auto/cozyui/arc"
	"github.com/go-theft-auto/cozyui/colors"
)

// Knob sweep in degrees, clockwise from bottom-left to bottom-right.
const (
	knobStartDeg float32 = 225
	knobEndDeg   float32 = -45
)

// Knob input tuning.
const (
	// WheelLinePixels converts one wheel notch into pixels of travel.
	WheelLinePixels float32 = 40
	// KnobKeyStep is how far one arrow-key repeat moves a knob or slider.
	KnobKeyStep float32 = 0.01
)

// Knob draws a rotary control for a value in 0..1 and returns true when the
// value changed this frame.
//
// Dragging up or right turns it up; Shift gives finer control. Double-click
// restores WithDefault when set. Every run of writes is bracketed by the
// WithBeginSet and WithEndSet callbacks.
//
//	ctx.Knob("cutoff", 75, cozyui.Bind(&cutoff),
//	    cozyui.WithLabel("Cutoff"),
//	    cozyui.WithDefault(0.5),
//	)
func (ctx *Context) Knob(id string, diameter float32, value GetSet[float32], opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	wid := ctx.widgetID(id, o)
	g := newGesture(wid, o)

	label := GetOpt(o, OptLabel)
	knobSize := diameter + 5
	size := Vec2{knobSize, knobSize}
	var labelSize Vec2
	if label != "" {
		labelSize = ctx.MeasureText(label)
		size.Y += labelSize.Y + ctx.style.ItemSpacing
		size.X = maxf(size.X, labelSize.X)
	}

	full := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	knobRect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: knobSize}
	resp := ctx.interact(wid, full)

	shift := ctx.Input != nil && ctx.Input.ModShift
	granular := false
	if resp.Hovered {
		granular = shift
	}

	if def, ok := optDefault(o); ok && resp.DoubleClicked {
		g.Once(func() { value.Set(def) })
		resp.Changed = true
		guiLogger.Debug("knob reset to default", "id", id, "value", def)
	}

	if resp.DragStarted {
		g.Begin()
	}

	switch {
	case resp.Dragged:
		ctx.CursorHidden = true
		granular = shift
		scale := float32(2)
		if granular {
			scale = 4
		}
		d := ctx.Input.MouseDelta()
		if nudgeKnob(value, -(d.X + d.Y), diameter*scale) {
			resp.Changed = true
		}
	case resp.Hovered && ctx.hasWheel():
		scale := float32(4)
		if granular {
			scale = 8
		}
		delta := -(ctx.Input.MouseWheelX + ctx.Input.MouseWheelY) * WheelLinePixels
		g.Once(func() { resp.Changed = nudgeKnob(value, delta, diameter*scale) })
	case resp.Hovered && ctx.Input != nil:
		step := KnobKeyStep
		if granular {
			step /= 4
		}
		var delta float32
		if ctx.Input.KeyRepeated(KeyUp) {
			delta += step
		}
		if ctx.Input.KeyRepeated(KeyDown) {
			delta -= step
		}
		if delta != 0 {
			g.Once(func() { resp.Changed = nudgeKnob(value, delta, 1) })
		}
	}

	if resp.DragStopped {
		g.End()
	}

	if desc := GetOpt(o, OptDescription); desc != "" && resp.Hovered && !resp.Dragged {
		ctx.Tooltip(desc)
	}

	hovered := resp.Hovered || resp.Dragged
	animGranular := ctx.AnimateBool(SubID(wid, "granular"), granular)
	animHover := ctx.AnimateBool(SubID(wid, "hover"), hovered)

	var modulated *float32
	if HasOpt(o, OptModulated) {
		m := GetOpt(o, OptModulated)
		modulated = &m
	}
	ctx.drawKnob(knobRect.Center(), diameter, value.Get(), modulated, animGranular, animHover)

	if label != "" {
		textRect := Rect{X: pos.X, Y: pos.Y + knobSize, W: size.X, H: size.Y - knobSize}
		c := textRect.Center()
		ctx.addText(c.X-labelSize.X/2, c.Y-labelSize.Y/2, label, ColorWhite)
	}

	ctx.advanceCursor(size)
	return resp.Changed
}

// nudgeKnob moves the value by delta/span, clamped to 0..1, and reports
// whether it moved.
func nudgeKnob(value GetSet[float32], delta, span float32) bool {
	if delta == 0 || span <= 0 {
		return false
	}
	old := value.Get()
	next := clampf(old+delta/span, 0, 1)
	if next == old {
		return false
	}
	value.Set(next)
	return true
}

func (ctx *Context) hasWheel() bool {
	return ctx.Input != nil && (ctx.Input.MouseWheelX != 0 || ctx.Input.MouseWheelY != 0)
}

// optDefault returns WithDefault if it was passed.
func optDefault(o options) (float32, bool) {
	if !HasOpt(o, OptDefault) {
		return 0, false
	}
	return GetOpt(o, OptDefault), true
}

// knobAngle maps a value in 0..1 onto the sweep, in degrees.
func knobAngle(v float32) float32 {
	return arc.RemapClamp(v, 0, 1, knobStartDeg, knobEndDeg)
}

func (ctx *Context) drawKnob(center Vec2, diameter, value float32, modulated *float32, animGranular, animHover float32) {
	dl := ctx.DrawList
	radius := diameter * 0.75 / 2
	bgRadius := diameter / 2
	focusRadius := diameter * 0.9 / 2
	bg := ctx.style.WidgetBgColor

	dl.AddCircleFilled(center, bgRadius, bg)

	track := PackColor(colors.TrackGradient().At(animGranular))
	dl.AddArc(center, radius, arc.Radians(knobStartDeg), arc.Radians(knobEndDeg), track, radius*0.1)

	valueAngle := knobAngle(value)
	ctx.drawKnobStar(center, valueAngle, diameter)

	if modulated != nil {
		modAngle := knobAngle(*modulated)
		dl.AddArc(center, radius*0.75, arc.Radians(valueAngle), arc.Radians(modAngle),
			ctx.style.ModulationColor, radius*0.1)
	}

	dl.AddCircle(center, focusRadius, Fade(ctx.style.FocusRingColor, animHover), focusRadius*0.07)

	sin, cos := math32.Sincos(arc.Radians(valueAngle))
	dir := Vec2{cos, -sin}
	inner := center.Add(dir.Mul(radius * 0.5))
	outer := center.Add(dir.Mul(radius))
	dl.AddLine(inner.X, inner.Y, outer.X, outer.Y, ColorWhite, bgRadius*0.15)
	dl.AddCircleFilled(inner, bgRadius*0.07, ColorWhite)
	dl.AddCircleFilled(outer, bgRadius*0.07, ColorWhite)
}

// drawKnobStar draws the rotating four-point star: a white square whose
// corners are cut away by background discs, leaving concave points.
func (ctx *Context) drawKnobStar(center Vec2, angle, diameter float32) {
	angle += 45
	var corners [4]arc.Point
	for k := range corners {
		sin, cos := math32.Sincos(arc.Radians(angle + float32(k)*90))
		corners[k] = center.Add(Vec2{sin, cos}.Mul(diameter * 0.2)).Point()
	}
	ctx.DrawList.AddConvexPolyFilled(corners[:], ColorWhite)
	for _, c := range corners {
		ctx.DrawList.AddCircleFilled(Vec2{c.X, c.Y}, diameter*0.15, ctx.style.WidgetBgColor)
	}
}
