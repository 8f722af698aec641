package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/cozyui"
)

// GLFWInputAdapter feeds GLFW window events into a cozyui.InputState.
//
// Per frame:
//
//	adapter.NewFrame(dt)
//	glfw.PollEvents()
//	input := adapter.Update()
//	... ui.Begin(input, ...) / ui.End() ...
//	adapter.ApplyCursor(ctx.CursorHidden)
type GLFWInputAdapter struct {
	window       *glfw.Window
	input        *cozyui.InputState
	cursorHidden bool
}

// NewGLFWInputAdapter installs the adapter's callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  cozyui.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// NewFrame clears last frame's edges and advances the input clock.
// Call it before glfw.PollEvents.
func (a *GLFWInputAdapter) NewFrame(dt float32) {
	a.input.Reset()
	a.input.Tick(dt)
}

// Update samples state that has no callback, after glfw.PollEvents.
func (a *GLFWInputAdapter) Update() *cozyui.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *cozyui.InputState {
	return a.input
}

// ApplyCursor hides the system cursor while a knob is dragged.
func (a *GLFWInputAdapter) ApplyCursor(hidden bool) {
	if hidden == a.cursorHidden {
		return
	}
	a.cursorHidden = hidden
	mode := glfw.CursorNormal
	if hidden {
		mode = glfw.CursorHidden
	}
	a.window.SetInputMode(glfw.CursorMode, mode)
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == cozyui.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

// scrollCallback can fire several times per frame; notches add up.
func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(a.input.MouseWheelX+float32(xoff), a.input.MouseWheelY+float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

func glfwKeyToKey(key glfw.Key) cozyui.Key {
	switch key {
	case glfw.KeyLeft:
		return cozyui.KeyLeft
	case glfw.KeyRight:
		return cozyui.KeyRight
	case glfw.KeyUp:
		return cozyui.KeyUp
	case glfw.KeyDown:
		return cozyui.KeyDown
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return cozyui.KeyEnter
	case glfw.KeyEscape:
		return cozyui.KeyEscape
	case glfw.KeyF1:
		return cozyui.KeyF1
	default:
		return cozyui.KeyNone
	}
}

func glfwMouseButton(button glfw.MouseButton) cozyui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return cozyui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return cozyui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return cozyui.MouseButtonMiddle
	default:
		return -1
	}
}
