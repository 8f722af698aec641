/*
Package cozyui provides immediate-mode parameter widgets for audio plugin
interfaces: knobs, toggles and sliders drawn with vector arcs, on top of a
small immediate-mode toolkit with a dedicated Context type.

# Overview

The UI is rebuilt every frame. Widgets draw into a DrawList, read the frame's
InputState, and return whether their value changed. Values are not owned by
the widgets: each one is bound through a GetSet closure, so the same knob can
drive a plain variable or a host parameter behind an accessor.

# Quick Start

	renderer, _ := opengl.NewRenderer(800, 600)
	ui := cozyui.New(renderer, cozyui.WithStyle(cozyui.CozyStyle()))

	var cutoff float32 = 0.5
	for !window.ShouldClose() {
	    adapter.NewFrame(dt)
	    glfw.PollEvents()
	    adapter.Update()

	    ctx := ui.Begin(input, cozyui.Vec2{800, 600}, dt)
	    ctx.Panel("Filter")(func() {
	        ctx.Knob("cutoff", 75, cozyui.Bind(&cutoff),
	            cozyui.WithLabel("Cutoff"),
	            cozyui.WithDefault(0.5),
	        )
	    })
	    ui.End()
	    adapter.ApplyCursor(ctx.CursorHidden)
	    window.SwapBuffers()
	}

# Frame Order

Input for a frame is collected in this order:

	input.Reset()       clear clicks, releases and wheel from the last frame
	input.Tick(dt)      advance the clock used for double-clicks and key repeat
	(window events)     SetMousePos, SetMouseButton, SetKey, SetMouseWheel
	ui.Begin(...)       widgets run
	ui.End()            draw lists are rendered

# Value Binding

	cozyui.Bind(&v)                      bind a variable
	cozyui.BindFuncs(p.Get, p.Set)       bind an accessor pair
	gs.Get(), gs.Set(v)                  read and write through a binding

A host that records automation wants to know when a run of writes starts and
stops. Pass WithBeginSet and WithEndSet; every widget brackets its writes with
them. A knob drag is one gesture from drag start to release. A wheel notch, a
double-click reset, a toggle click and an arrow-key nudge are gestures of
their own.

# Parameter Widgets

	Knob(id, diameter, value, opts...)   rotary control for 0..1
	Toggle(id, text, value, opts...)     button with an indicator light
	Slider(id, value, opts...)           horizontal 0..1 slider, 15px high

Knob input:

	Drag             up or right turns up, value += -(dx+dy) / (2*diameter)
	Shift+Drag       fine adjustment at half the normal rate
	Mouse Wheel      one gesture per notch
	Up/Down          nudge by KnobKeyStep while hovered
	Double-click     restore WithDefault

Slider input:

	Press/Drag       jump to the pointer
	Left/Right       nudge by KnobKeyStep while hovered
	Double-click     restore WithDefault on release

The knob hides the mouse cursor while it is dragged; the backend reads
Context.CursorHidden after End and applies it.

# Supporting Widgets

	Text, TextColored, TextDisabled, TextWrapped, Label, LabelText
	Button, CollapsingHeader, Tooltip, Bullet, BulletText
	Graph                                time-series line plot

# Widget Options Reference

	WithID(id string)              Explicit ID (use in loops)
	WithWidth(width float32)       Widget width
	WithHeight(height float32)     Widget height
	WithLabel(text string)         Text under a knob
	WithDescription(text string)   Tooltip text, newlines allowed
	WithDefault(v float32)         Double-click value
	WithModulated(v float32)       Draw a modulation arc to v
	WithBeginSet(fn func())        Called before a gesture's first write
	WithEndSet(fn func())          Called after a gesture's last write
	WithSmall()                    Toggle without vertical padding
	DefaultOpen()                  Start collapsing headers expanded

# Layout Options Reference

Options for Panel, VStack, HStack and CenteredPanel:

	Gap(pixels float32)            Space between all children
	GapX(pixels float32)           Horizontal spacing override
	GapY(pixels float32)           Vertical spacing override
	Padding(pixels float32)        Inner padding on all sides
	PaddingXY(x, y float32)        Separate X/Y padding
	Width(w float32)               Fixed width
	Height(h float32)              Fixed height
	MaxHeight(h float32)           Clamp a panel's height

# Drawing

DrawList has the usual rectangles, lines, triangles and bitmap text, plus
vector shapes built from cubic Beziers: AddArc, AddCircle, AddCircleFilled,
AddRectFilledRounded, AddBezierCubic, AddPolyline and AddConvexPolyFilled.
Arcs are split into pieces of at most a quarter turn by package arc and each
piece becomes one cubic.

# State

FrameStore holds state that should vanish when a widget stops being drawn
(animations, slider gestures). StateStore holds state that should survive it
(collapsing headers, CenteredPanel sizes).

# Logging

SetVerbose(true) logs gestures, double-click resets and frame store cleanup
at debug level through log/slog.
*/
package cozyui
