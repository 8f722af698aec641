package cozyui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
	KeyF1
	KeyCount
)

// Key repeat timing constants
const (
	KeyRepeatDelay    float32 = 0.4  // Initial delay before repeat starts (seconds)
	KeyRepeatInterval float32 = 0.03 // Repeat interval once repeating (seconds)
)

// Pointer gesture thresholds.
const (
	DoubleClickTime     float32 = 0.3 // Max seconds between the presses of a double-click
	DoubleClickDistance float32 = 6   // Max pixels between the presses of a double-click
	DragThreshold       float32 = 6   // Pixels a press must travel to become a drag
)

// InputState holds input state for the current frame.
// This is typically populated by the application from GLFW or similar.
//
// A frame runs Reset, then Tick, then the event callbacks, then the widgets.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32

	// Position at the start of the frame, for MouseDelta.
	prevMouseX, prevMouseY float32

	// Mouse buttons - current frame state
	mouseDown          [MouseButtonCount]bool
	mouseClicked       [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp            [MouseButtonCount]bool // True on the frame button was released
	mouseDoubleClicked [MouseButtonCount]bool // True on the second press of a double-click

	// Press history for double-click detection
	pressPos      [MouseButtonCount]Vec2
	lastClickTime [MouseButtonCount]float64
	lastClickPos  [MouseButtonCount]Vec2
	hasLastClick  [MouseButtonCount]bool

	// Mouse wheel
	MouseWheelX float32
	MouseWheelY float32

	// Keyboard - current frame state
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed
	keyUp      [KeyCount]bool // True on the frame key was released

	// Key repeat tracking
	keyHoldTime [KeyCount]float32 // How long each key has been held

	// Frame clock
	time float64
	dt   float32

	// Modifiers
	ModShift bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	clear(s.mouseClicked[:])
	clear(s.mouseUp[:])
	clear(s.mouseDoubleClicked[:])
	clear(s.keyPressed[:])
	clear(s.keyUp[:])
	s.MouseWheelX = 0
	s.MouseWheelY = 0
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
}

// Tick advances the input clock by dt seconds and updates key repeat.
func (s *InputState) Tick(dt float32) {
	if dt < 0 {
		dt = 0
	}
	s.time += float64(dt)
	s.dt = dt
	s.UpdateKeyRepeat(dt)
}

// Time returns the seconds accumulated by Tick.
func (s *InputState) Time() float64 {
	return s.time
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// MousePos returns the mouse position.
func (s *InputState) MousePos() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}

// MouseDelta returns how far the mouse moved since the last Reset.
func (s *InputState) MouseDelta() Vec2 {
	return Vec2{X: s.MouseX - s.prevMouseX, Y: s.MouseY - s.prevMouseY}
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
		s.registerPress(button)
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// registerPress records a press and flags it as a double-click when it
// follows the previous press closely in time and space. A double-click
// consumes its first press, so a triple click is one double-click.
func (s *InputState) registerPress(button MouseButton) {
	pos := s.MousePos()
	s.pressPos[button] = pos

	if s.hasLastClick[button] &&
		s.time-s.lastClickTime[button] <= float64(DoubleClickTime) &&
		pos.Sub(s.lastClickPos[button]).LengthSq() <= DoubleClickDistance*DoubleClickDistance {
		s.mouseDoubleClicked[button] = true
		s.hasLastClick[button] = false
		return
	}

	s.hasLastClick[button] = true
	s.lastClickTime[button] = s.time
	s.lastClickPos[button] = pos
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
		s.keyHoldTime[key] = 0 // Reset hold time on fresh press
	}
	if !down && wasDown {
		s.keyUp[key] = true
		s.keyHoldTime[key] = 0 // Reset hold time on release
	}
}

// UpdateKeyRepeat updates key hold times for repeat detection.
// Tick calls it; call it directly only when driving the clock yourself.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for key := Key(0); key < KeyCount; key++ {
		if s.keyDown[key] {
			s.keyHoldTime[key] += dt
		}
	}
}

// SetMouseWheel sets the mouse wheel delta.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was just clicked (pressed this frame).
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseDoubleClicked returns true on the second press of a double-click.
func (s *InputState) MouseDoubleClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDoubleClicked[button]
}

// MouseReleased returns true if a mouse button was just released.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// PressPos returns where the button was last pressed.
func (s *InputState) PressPos(button MouseButton) Vec2 {
	if button < 0 || button >= MouseButtonCount {
		return Vec2{}
	}
	return s.pressPos[button]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was just pressed (pressed this frame).
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true if a key was just released.
func (s *InputState) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}

// KeyRepeated returns true if a key should trigger this frame.
// Returns true on initial press, then after KeyRepeatDelay, then every KeyRepeatInterval.
func (s *InputState) KeyRepeated(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}

	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] {
		return false
	}

	holdTime := s.keyHoldTime[key]
	if holdTime < KeyRepeatDelay {
		return false
	}

	// Trigger when the hold crossed an interval boundary during the last tick.
	sinceDelay := holdTime - KeyRepeatDelay
	prev := sinceDelay - s.dt
	if prev < 0 {
		return true
	}
	return int(sinceDelay/KeyRepeatInterval) > int(prev/KeyRepeatInterval)
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch k {
	case KeyNone:
		return "--"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	case KeyF1:
		return "F1"
	}
	return "?"
}
