package cozyui

// Response reports how the pointer interacted with a widget this frame.
type Response struct {
	Rect Rect

	Hovered       bool // Pointer is over the widget and nothing else holds it
	Pressed       bool // Primary button went down on the widget this frame
	Held          bool // Widget holds the pointer and the button is down
	Clicked       bool // Primary button was released over the widget without dragging
	DoubleClicked bool // Second press of a double-click landed on the widget
	DragStarted   bool // Press moved past DragThreshold this frame
	Dragged       bool // A drag is in progress
	DragStopped   bool // Primary button was released at the end of a drag

	// Changed is set by widgets whose value was written this frame.
	Changed bool
}

// interact runs the pointer state machine for one widget. A press on the
// widget captures the pointer until release; moving past DragThreshold while
// captured turns the press into a drag.
func (ctx *Context) interact(id ID, rect Rect) Response {
	resp := Response{Rect: rect}
	in := ctx.Input
	if in == nil {
		return resp
	}

	resp.Hovered = ctx.isHovered(id, rect)

	if resp.Hovered && in.MouseClicked(MouseButtonLeft) {
		ctx.activeID = id
		ctx.activeDragging = false
		resp.Pressed = true
		resp.DoubleClicked = in.MouseDoubleClicked(MouseButtonLeft)
		if resp.DoubleClicked {
			guiLogger.Debug("double-click", "id", id)
		}
	}

	if ctx.activeID != id {
		return resp
	}

	if in.MouseDown(MouseButtonLeft) {
		resp.Held = true
		if !ctx.activeDragging {
			moved := in.MousePos().Sub(in.PressPos(MouseButtonLeft))
			if moved.LengthSq() > DragThreshold*DragThreshold {
				ctx.activeDragging = true
				resp.DragStarted = true
			}
		}
		resp.Dragged = ctx.activeDragging
		return resp
	}

	// Button is up: the gesture ends here.
	if ctx.activeDragging {
		resp.DragStopped = true
	} else if rect.Contains(in.MousePos()) {
		resp.Clicked = true
	}
	ctx.activeID = 0
	ctx.activeDragging = false
	return resp
}

// Interact exposes the pointer state machine to custom widgets.
func (ctx *Context) Interact(id ID, rect Rect) Response {
	return ctx.interact(id, rect)
}

// ActiveID returns the widget that holds the pointer, or 0.
func (ctx *Context) ActiveID() ID {
	return ctx.activeID
}
