package cozyui

import "strings"

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
// Using a dedicated type avoids type assertions and map lookups,
// providing better performance and type safety.
type Context struct {
	// Drawing output
	DrawList           *DrawList
	ForegroundDrawList *DrawList // Tooltips (drawn on top)

	// Styling
	style      Style
	styleStack []Style // For PushStyle/PopStyle

	// Layout
	cursor      Vec2
	layoutStack []*Layout

	// Input (read-only during frame)
	Input *InputState

	// Widget state (persisted between frames)
	stateStore StateStore

	// IDs
	idStack   []ID
	idCounter uint32 // Auto-increment for call-site IDs

	// Screen
	DisplaySize Vec2

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// Pointer capture. activeID is the widget the primary button was pressed
	// on; it keeps the pointer until release even when the cursor leaves it.
	activeID       ID
	activeDragging bool

	// Font texture ID (set by renderer)
	FontTextureID uint32

	// Avoids redundant MeasureText calls for the same text within a frame.
	textMeasureCache map[string]Vec2

	// Output from GUI to application, valid after End.
	WantCaptureMouse bool // True if the mouse is over a panel or held by a widget
	CursorHidden     bool // True while a knob is being dragged
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		styleStack:       make([]Style, 0, 8),
		layoutStack:      make([]*Layout, 0, 16),
		idStack:          make([]ID, 0, 32),
		textMeasureCache: make(map[string]Vec2, 64),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// PushStyle temporarily overrides the style.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the previous style.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	// Advance frame counter and clean up stale FrameStore entries
	NextFrame()

	ctx.FrameCount++
	ctx.cursor = Vec2{0, 0}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.styleStack = ctx.styleStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime

	ctx.WantCaptureMouse = false
	ctx.CursorHidden = false

	// A widget that stopped drawing while it held the pointer never saw the
	// release; let go once the button is up.
	if ctx.activeID != 0 && ctx.Input != nil &&
		!ctx.Input.MouseDown(MouseButtonLeft) && !ctx.Input.MouseReleased(MouseButtonLeft) {
		guiLogger.Debug("Reset: releasing stale pointer capture", "id", ctx.activeID)
		ctx.activeID = 0
		ctx.activeDragging = false
	}

	clear(ctx.textMeasureCache)
}

// Time returns the input clock in seconds, or 0 without input.
func (ctx *Context) Time() float64 {
	if ctx.Input == nil {
		return 0
	}
	return ctx.Input.Time()
}

// isHovered returns true if the widget area is under the mouse cursor and no
// other widget holds the pointer.
func (ctx *Context) isHovered(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	if ctx.activeID != 0 && ctx.activeID != id {
		return false
	}
	return rect.Contains(ctx.Input.MousePos())
}

// IsHovered returns true if the widget area is under the mouse cursor (public API).
func (ctx *Context) IsHovered(id ID, rect Rect) bool {
	return ctx.isHovered(id, rect)
}

// isClicked returns true if the widget was pressed this frame.
func (ctx *Context) isClicked(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	hovered := ctx.isHovered(id, rect)
	clicked := ctx.Input.MouseClicked(MouseButtonLeft)

	if clicked && guiVerbose() {
		if hovered {
			guiLogger.Debug("click detected", "id", id, "rect", rect, "mouse", ctx.Input.MousePos())
		} else {
			guiLogger.Debug("click missed - not hovered", "id", id, "rect", rect, "mouse", ctx.Input.MousePos())
		}
	}

	return hovered && clicked
}

// IsClicked returns true if the widget was pressed this frame (public API).
func (ctx *Context) IsClicked(id ID, rect Rect) bool {
	return ctx.isClicked(id, rect)
}

// isPressed returns true if the widget is being held down.
func (ctx *Context) isPressed(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return ctx.isHovered(id, rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// SetCursorPos sets the cursor position for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// lineHeight returns the height of a single line of text.
func (ctx *Context) lineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight returns the height of a single line of text (public API).
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// MeasureText returns the size of rendered text. Each newline starts a new
// line. Results are cached per frame.
func (ctx *Context) MeasureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}

	charW := ctx.style.CharWidth * ctx.style.FontScale
	var widest, lines int
	for line := range strings.Lines(text) {
		line = strings.TrimSuffix(line, "\n")
		widest = max(widest, len([]rune(line)))
		lines++
	}
	result := Vec2{X: float32(widest) * charW, Y: float32(max(lines, 1)) * ctx.lineHeight()}

	if ctx.textMeasureCache != nil {
		ctx.textMeasureCache[text] = result
	}
	return result
}

// currentLayoutWidth returns the available width in the current layout.
func (ctx *Context) currentLayoutWidth() float32 {
	if len(ctx.layoutStack) > 0 {
		layout := ctx.layoutStack[len(ctx.layoutStack)-1]
		return layout.Width - layout.Padding*2 - layout.PaddingX*2
	}
	return ctx.DisplaySize.X
}

// CurrentLayoutWidth returns the available width in the current layout (public API).
func (ctx *Context) CurrentLayoutWidth() float32 {
	return ctx.currentLayoutWidth()
}

// currentLayoutHeight returns the available height in the current layout.
func (ctx *Context) currentLayoutHeight() float32 {
	if len(ctx.layoutStack) > 0 {
		layout := ctx.layoutStack[len(ctx.layoutStack)-1]
		return layout.Height - layout.Padding*2 - layout.PaddingY*2
	}
	return ctx.DisplaySize.Y
}

// currentLayout returns the current layout or nil.
func (ctx *Context) currentLayout() *Layout {
	if len(ctx.layoutStack) > 0 {
		return ctx.layoutStack[len(ctx.layoutStack)-1]
	}
	return nil
}

// addText is a helper to draw text with current style.
func (ctx *Context) addText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// AddText draws text with current style (public API).
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// AddTextTo draws text to a specific DrawList, one row per line.
// This is useful for drawing to the foreground layer.
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil {
		return
	}
	dl.SetTexture(ctx.FontTextureID)
	for line := range strings.Lines(text) {
		line = strings.TrimSuffix(line, "\n")
		dl.AddText(x, y, line, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
		y += ctx.lineHeight()
	}
	dl.SetTexture(0)
}

// beginItem applies gap spacing before drawing an item.
// Call this before drawing any widget to ensure proper spacing.
func (ctx *Context) beginItem() {
	layout := ctx.currentLayout()
	if layout == nil || layout.ItemCount == 0 {
		return
	}

	if layout.Type == LayoutVertical {
		ctx.cursor.Y += ctx.layoutGap(layout)
	} else {
		ctx.cursor.X += ctx.layoutGap(layout)
	}
}

// layoutGap returns the spacing between children of layout along its axis.
func (ctx *Context) layoutGap(layout *Layout) float32 {
	gap := layout.GapY
	if layout.Type == LayoutHorizontal {
		gap = layout.GapX
	}
	if gap == 0 {
		gap = layout.Gap
	}
	if gap == 0 {
		gap = ctx.style.ItemSpacing
	}
	return gap
}

// ItemPos returns the position for the next widget with gap applied.
// This is the recommended way for widgets to get their drawing position.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

// advanceCursor moves the cursor after drawing an item.
func (ctx *Context) advanceCursor(size Vec2) {
	ctx.AdvanceCursor(size)
}

// AdvanceCursor moves the cursor after drawing an item (public API).
func (ctx *Context) AdvanceCursor(size Vec2) {
	layout := ctx.currentLayout()
	if layout == nil {
		// No layout, just advance vertically
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}

	// Track content bounds
	if layout.Type == LayoutVertical {
		ctx.cursor.Y += size.Y
		layout.MaxWidth = maxf(layout.MaxWidth, size.X)
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	} else {
		ctx.cursor.X += size.X
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, size.Y)
	}

	layout.ItemCount++
}
