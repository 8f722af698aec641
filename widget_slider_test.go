package cozyui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/cozyui"
)

// The default slider spans (0,0)-(100,15); its handle travels from x=6 to x=94.
const sliderY = 7

func TestSliderPressAndDrag(t *testing.T) {
	h := newHarness(t)
	value := float32(0)
	var g gestureCounter
	var changed bool
	slider := func(ctx *cozyui.Context) {
		changed = ctx.Slider("drag", cozyui.Bind(&value), g.opts()...)
	}

	h.frame(press(50, sliderY), slider)
	assert.True(t, changed)
	assert.InDelta(t, 0.5, value, 1e-5, "a press jumps to the pointer")
	assert.Equal(t, 1, g.begins)

	h.frame(moveTo(94, sliderY), slider)
	assert.InDelta(t, 1, value, 1e-5)

	h.frame(moveTo(300, 200), slider)
	assert.Equal(t, float32(1), value, "clamped and still captured off the slider")

	h.frame(moveTo(-50, 200), slider)
	assert.Equal(t, float32(0), value)

	h.frame(nil, slider)
	assert.False(t, changed, "no write when the value is unchanged")
	assert.Equal(t, 1, g.begins, "begin fires once per press")
	assert.Zero(t, g.ends)

	h.frame(release(-50, 200), slider)
	assert.Equal(t, 1, g.ends)
}

func TestSliderClickIsOneGesture(t *testing.T) {
	h := newHarness(t)
	value := float32(0)
	var g gestureCounter

	h.frame(click(28, sliderY), func(ctx *cozyui.Context) {
		ctx.Slider("click", cozyui.Bind(&value), g.opts()...)
	})
	assert.InDelta(t, 0.25, value, 1e-5)
	assert.Equal(t, 1, g.begins)
	assert.Equal(t, 1, g.ends)
}

func TestSliderDoubleClickRestoresDefaultOnRelease(t *testing.T) {
	h := newHarness(t)
	value := float32(0)
	var g gestureCounter
	slider := func(ctx *cozyui.Context) {
		ctx.Slider("reset", cozyui.Bind(&value), append(g.opts(), cozyui.WithDefault(0.25))...)
	}

	h.frame(click(72, sliderY), slider)
	assert.InDelta(t, 0.75, value, 1e-5)

	h.frame(press(72, sliderY), slider)
	assert.InDelta(t, 0.75, value, 1e-5, "the second press does not move the handle")

	h.frame(release(72, sliderY), slider)
	assert.Equal(t, float32(0.25), value)
	assert.Equal(t, 2, g.begins)
	assert.Equal(t, 2, g.ends)

	h.frame(press(50, sliderY), slider)
	assert.InDelta(t, 0.5, value, 1e-5, "the reset does not stick to the next press")
	h.frame(release(50, sliderY), slider)
}

func TestSliderArrowKeys(t *testing.T) {
	h := newHarness(t)
	value := float32(0.5)
	slider := func(ctx *cozyui.Context) { ctx.Slider("keys", cozyui.Bind(&value)) }

	h.frame(func(in *cozyui.InputState) {
		in.SetMousePos(50, sliderY)
		in.SetKey(cozyui.KeyRight, true)
	}, slider)
	assert.InDelta(t, 0.5+cozyui.KnobKeyStep, value, 1e-6)

	h.frame(func(in *cozyui.InputState) {
		in.SetKey(cozyui.KeyRight, false)
		in.SetKey(cozyui.KeyLeft, true)
	}, slider)
	assert.InDelta(t, 0.5, value, 1e-6)

	h.frame(func(in *cozyui.InputState) {
		in.SetKey(cozyui.KeyLeft, false)
		in.SetMousePos(400, 400)
		in.SetKey(cozyui.KeyLeft, true)
	}, slider)
	assert.InDelta(t, 0.5, value, 1e-6, "keys only reach a hovered slider")
}

func TestSliderWidth(t *testing.T) {
	h := newHarness(t)
	value := float32(0)

	// With a 200px slider the handle travels from 6 to 194.
	h.frame(click(100, sliderY), func(ctx *cozyui.Context) {
		ctx.Slider("wide", cozyui.Bind(&value), cozyui.WithWidth(200))
	})
	assert.InDelta(t, 0.5, value, 1e-5)
}

func TestSliderTooltip(t *testing.T) {
	h := newHarness(t)
	value := float32(0.5)

	h.frame(moveTo(50, sliderY), func(ctx *cozyui.Context) {
		ctx.Slider("tip", cozyui.Bind(&value), cozyui.WithDescription("this is a slider.\ndo newlines work?"))
		assert.NotEmpty(t, ctx.ForegroundDrawList.VtxBuffer)
	})
	assert.Equal(t, 2, h.renderer.renderCalls)
}
