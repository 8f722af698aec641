package cozyui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/cozyui"
)

// A 50px knob at the origin occupies (0,0)-(55,55).
const knobCenter = 27

type gestureCounter struct {
	begins, ends int
}

func (g *gestureCounter) opts() []cozyui.Option {
	return []cozyui.Option{
		cozyui.WithBeginSet(func() { g.begins++ }),
		cozyui.WithEndSet(func() { g.ends++ }),
	}
}

func TestKnobDragGesture(t *testing.T) {
	h := newHarness(t)
	value := float32(0.5)
	var g gestureCounter
	var changed bool
	knob := func(ctx *cozyui.Context) {
		changed = ctx.Knob("drag", 50, cozyui.Bind(&value), g.opts()...)
	}

	h.frame(press(knobCenter, knobCenter), knob)
	assert.False(t, changed)
	assert.Zero(t, g.begins, "a press alone is not a gesture")

	// 10px up: past the drag threshold, so the drag starts this frame.
	h.frame(moveTo(knobCenter, knobCenter-10), knob)
	assert.True(t, changed)
	assert.Equal(t, 1, g.begins)
	assert.InDelta(t, 0.6, value, 1e-5, "10px over 2*diameter")
	assert.True(t, h.ctx.CursorHidden)

	h.frame(moveTo(knobCenter+5, knobCenter-15), knob)
	assert.InDelta(t, 0.6, value, 1e-5, "moving right and down by the same amount cancels out")

	h.frame(moveTo(knobCenter+5, knobCenter-25), knob)
	assert.InDelta(t, 0.7, value, 1e-5)
	assert.Equal(t, 1, g.begins, "begin fires once per drag")
	assert.Zero(t, g.ends)

	h.frame(release(knobCenter+5, knobCenter-25), knob)
	assert.Equal(t, 1, g.ends)
	assert.False(t, h.ctx.CursorHidden)
}

func TestKnobDragGranularAndClamp(t *testing.T) {
	h := newHarness(t)
	value := float32(0.5)
	knob := func(ctx *cozyui.Context) { ctx.Knob("fine", 50, cozyui.Bind(&value)) }

	h.frame(press(knobCenter, knobCenter), knob)
	h.frame(func(in *cozyui.InputState) {
		in.ModShift = true
		in.SetMousePos(knobCenter, knobCenter-10)
	}, knob)
	assert.InDelta(t, 0.55, value, 1e-5, "shift halves the rate")

	h.frame(func(in *cozyui.InputState) {
		in.ModShift = false
		in.SetMousePos(knobCenter, -2000)
	}, knob)
	assert.Equal(t, float32(1), value)

	h.frame(moveTo(knobCenter, 4000), knob)
	assert.Equal(t, float32(0), value)

	h.frame(release(knobCenter, 4000), knob)
}

func TestKnobDoubleClickRestoresDefault(t *testing.T) {
	h := newHarness(t)
	value := float32(0.9)
	var g gestureCounter
	knob := func(ctx *cozyui.Context) {
		ctx.Knob("reset", 50, cozyui.Bind(&value), append(g.opts(), cozyui.WithDefault(0.5))...)
	}

	h.frame(click(knobCenter, knobCenter), knob)
	assert.Equal(t, float32(0.9), value)

	h.frame(click(knobCenter, knobCenter), knob)
	assert.Equal(t, float32(0.5), value)
	assert.Equal(t, 1, g.begins)
	assert.Equal(t, 1, g.ends)
}

func TestKnobDoubleClickWithoutDefault(t *testing.T) {
	h := newHarness(t)
	value := float32(0.9)
	knob := func(ctx *cozyui.Context) { ctx.Knob("nodefault", 50, cozyui.Bind(&value)) }

	h.frame(click(knobCenter, knobCenter), knob)
	h.frame(click(knobCenter, knobCenter), knob)
	assert.Equal(t, float32(0.9), value)
}

func TestKnobWheel(t *testing.T) {
	h := newHarness(t)
	value := float32(0.5)
	var g gestureCounter
	var changed bool
	knob := func(ctx *cozyui.Context) {
		changed = ctx.Knob("wheel", 50, cozyui.Bind(&value), g.opts()...)
	}

	h.frame(func(in *cozyui.InputState) {
		in.SetMousePos(knobCenter, knobCenter)
		in.SetMouseWheel(0, 1)
	}, knob)
	assert.True(t, changed)
	assert.InDelta(t, 0.3, value, 1e-5, "one notch is 40px over 4*diameter")
	assert.Equal(t, 1, g.begins)
	assert.Equal(t, 1, g.ends)

	h.frame(func(in *cozyui.InputState) {
		in.SetMousePos(400, 400)
		in.SetMouseWheel(0, 1)
	}, knob)
	assert.InDelta(t, 0.3, value, 1e-5, "wheel outside the knob is ignored")
}

func TestKnobArrowKeys(t *testing.T) {
	h := newHarness(t)
	value := float32(0.5)
	knob := func(ctx *cozyui.Context) { ctx.Knob("keys", 50, cozyui.Bind(&value)) }

	h.frame(func(in *cozyui.InputState) {
		in.SetMousePos(knobCenter, knobCenter)
		in.SetKey(cozyui.KeyUp, true)
	}, knob)
	assert.InDelta(t, 0.5+cozyui.KnobKeyStep, value, 1e-6)

	h.frame(nil, knob)
	assert.InDelta(t, 0.5+cozyui.KnobKeyStep, value, 1e-6, "no repeat before the delay")

	h.frame(func(in *cozyui.InputState) {
		in.SetKey(cozyui.KeyUp, false)
		in.SetKey(cozyui.KeyDown, true)
	}, knob)
	assert.InDelta(t, 0.5, value, 1e-6)
}

func TestKnobLayout(t *testing.T) {
	h := newHarness(t)
	value := float32(0.5)
	spacing := cozyui.DefaultStyle().ItemSpacing

	h.frame(nil, func(ctx *cozyui.Context) {
		ctx.Knob("plain", 50, cozyui.Bind(&value))
		assert.Equal(t, 55+spacing, ctx.GetCursorPos().Y)
	})

	h.frame(nil, func(ctx *cozyui.Context) {
		ctx.Knob("labelled", 50, cozyui.Bind(&value), cozyui.WithLabel("I GOT LABELS"))
		want := 55 + ctx.LineHeight() + spacing + spacing
		assert.Equal(t, want, ctx.GetCursorPos().Y)
	})
}

func TestKnobModulationArcAddsGeometry(t *testing.T) {
	value := float32(0.25)
	vertices := func(opts ...cozyui.Option) int {
		h := newHarness(t)
		h.frame(nil, func(ctx *cozyui.Context) { ctx.Knob("mod", 100, cozyui.Bind(&value), opts...) })
		return h.renderer.vertices
	}

	assert.Greater(t, vertices(cozyui.WithModulated(0.8)), vertices())
}

func TestKnobTooltip(t *testing.T) {
	h := newHarness(t)
	value := float32(0.5)
	var tooltip int
	knob := func(ctx *cozyui.Context) {
		ctx.Knob("desc", 50, cozyui.Bind(&value), cozyui.WithDescription("cutoff\nfrequency"))
		tooltip = len(ctx.ForegroundDrawList.VtxBuffer)
	}

	h.frame(moveTo(400, 400), knob)
	assert.Zero(t, tooltip)

	h.frame(moveTo(knobCenter, knobCenter), knob)
	assert.Positive(t, tooltip)

	h.frame(press(knobCenter, knobCenter), knob)
	h.frame(moveTo(knobCenter, knobCenter-20), knob)
	assert.Zero(t, tooltip, "no tooltip while dragging")
	h.frame(release(knobCenter, knobCenter-20), knob)
}

func TestKnobCaptureBlocksOtherWidgets(t *testing.T) {
	h := newHarness(t)
	a, b := float32(0.5), float32(0.5)
	draw := func(ctx *cozyui.Context) {
		ctx.HStack()(func() {
			ctx.Knob("a", 50, cozyui.Bind(&a))
			ctx.Knob("b", 50, cozyui.Bind(&b))
		})
	}

	// The second knob starts one knob plus the item spacing to the right.
	second := knobCenter + 55 + cozyui.DefaultStyle().ItemSpacing

	h.frame(press(knobCenter, knobCenter), draw)
	// Drag onto the second knob; only the first may move.
	h.frame(moveTo(second, knobCenter), draw)
	h.frame(func(in *cozyui.InputState) {
		in.SetMousePos(second, knobCenter)
		in.SetMouseWheel(0, 1)
	}, draw)
	h.frame(release(second, knobCenter), draw)

	assert.NotEqual(t, float32(0.5), a)
	assert.Equal(t, float32(0.5), b)
}
