package cozyui

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
)

// Layout tracks the current layout state.
type Layout struct {
	Type LayoutType

	// Position tracking
	StartX, StartY float32

	// Sizing
	Width, Height       float32 // Available size
	MaxWidth, MaxHeight float32 // Accumulated content size

	// Spacing (Tailwind-style)
	Gap      float32 // Space between children (gap-*)
	GapX     float32 // Horizontal gap override
	GapY     float32 // Vertical gap override
	Padding  float32 // Inner padding (p-*)
	PaddingX float32 // Horizontal padding override
	PaddingY float32 // Vertical padding override

	// State
	ItemCount int // For gap calculation

	HeightConstraint float32 // Maximum panel height (0 = no limit)
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children (like Tailwind gap-*).
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// GapX sets horizontal spacing (like Tailwind gap-x-*).
func GapX(pixels float32) LayoutOption {
	return func(l *Layout) { l.GapX = pixels }
}

// GapY sets vertical spacing (like Tailwind gap-y-*).
func GapY(pixels float32) LayoutOption {
	return func(l *Layout) { l.GapY = pixels }
}

// Padding sets inner padding (like Tailwind p-*).
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// PaddingXY sets horizontal and vertical padding separately.
func PaddingXY(x, y float32) LayoutOption {
	return func(l *Layout) {
		l.PaddingX = x
		l.PaddingY = y
	}
}

// Width sets a fixed width for the layout.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// Height sets a fixed height for the layout.
func Height(h float32) LayoutOption {
	return func(l *Layout) { l.Height = h }
}

// MaxHeight caps the height of a panel. Pass 0 to disable the constraint.
func MaxHeight(h float32) LayoutOption {
	return func(l *Layout) { l.HeightConstraint = h }
}

// pushLayoutWith fills in the layout's origin and available size and pushes it.
func (ctx *Context) pushLayoutWith(layout *Layout) {
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	if layout.Width == 0 {
		layout.Width = ctx.currentLayoutWidth()
	}
	if layout.Height == 0 {
		layout.Height = ctx.currentLayoutHeight()
	}
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayout removes and returns the current layout's bounds.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}

	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]

	bounds := Rect{
		X: layout.StartX,
		Y: layout.StartY,
		W: layout.MaxWidth,
		H: layout.MaxHeight,
	}

	// Treat the popped layout as a single item in the parent
	if len(ctx.layoutStack) > 0 {
		parent := ctx.layoutStack[len(ctx.layoutStack)-1]
		childSize := Vec2{X: layout.MaxWidth, Y: layout.MaxHeight}

		if parent.Type == LayoutVertical {
			ctx.cursor.X = parent.StartX + parent.Padding + parent.PaddingX
			ctx.cursor.Y = layout.StartY + layout.MaxHeight
			parent.MaxWidth = maxf(parent.MaxWidth, childSize.X)
			parent.MaxHeight = ctx.cursor.Y - parent.StartY
		} else {
			ctx.cursor.X = layout.StartX + layout.MaxWidth
			ctx.cursor.Y = parent.StartY + parent.Padding + parent.PaddingY
			parent.MaxWidth = ctx.cursor.X - parent.StartX
			parent.MaxHeight = maxf(parent.MaxHeight, childSize.Y)
		}

		parent.ItemCount++
	}

	return bounds
}

// beginChild applies the parent's gap before a nested layout starts, so the
// child's origin already sits after the gap.
func (ctx *Context) beginChild() {
	ctx.beginItem()
}

// Panel draws a panel with a title and content.
// Returns a function that should be called with the content closure.
//
// Usage:
//
//	ctx.Panel("Mixer", Gap(8), Padding(12))(func() {
//	    ctx.Knob("gain", 50, cozyui.Bind(&gain))
//	})
func (ctx *Context) Panel(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{
			Type:    LayoutVertical,
			Padding: ctx.style.PanelPadding,
			Gap:     ctx.style.ItemSpacing,
		}
		for _, opt := range opts {
			opt(layout)
		}

		padX := layout.PaddingX
		if padX == 0 {
			padX = layout.Padding
		}
		padY := layout.PaddingY
		if padY == 0 {
			padY = layout.Padding
		}

		// 0 means auto-size to content
		userWidth := layout.Width
		userHeight := layout.Height

		ctx.beginChild()
		startX := ctx.cursor.X
		startY := ctx.cursor.Y

		headerH := float32(0)
		if title != "" {
			headerH = ctx.lineHeight() + padY*2
		}

		ctx.cursor.X += padX
		ctx.cursor.Y += padY + headerH

		// Children are measured against the inner width.
		if layout.Width > 0 {
			layout.Width -= padX * 2
		}
		ctx.pushLayoutWith(layout)
		layout.Padding, layout.PaddingX, layout.PaddingY = 0, 0, 0
		contents()
		bounds := ctx.popLayoutDetached()

		panelW := bounds.W + padX*2
		panelH := bounds.H + padY*2 + headerH
		if userWidth > 0 && panelW < userWidth {
			panelW = userWidth
		}
		if userHeight > 0 && panelH < userHeight {
			panelH = userHeight
		}
		if layout.HeightConstraint > 0 && panelH > layout.HeightConstraint {
			panelH = layout.HeightConstraint
		}

		// Background goes behind the content drawn above.
		ctx.DrawList.InsertRect(startX, startY, panelW, panelH, ctx.style.PanelColor)

		if title != "" {
			headerBg := ctx.style.PanelHeaderBgColor
			if headerBg == 0 {
				headerBg = ctx.style.ButtonColor
			}
			ctx.DrawList.AddRect(startX, startY, panelW, headerH, headerBg)

			headerTextColor := ctx.style.PanelHeaderTextColor
			if headerTextColor == 0 {
				headerTextColor = ctx.style.TextColor
			}
			textY := startY + (headerH-ctx.lineHeight())/2
			ctx.addText(startX+padX, textY, title, headerTextColor)
		}

		if ctx.style.BorderSize > 0 {
			ctx.DrawList.AddRectOutline(startX, startY, panelW, panelH,
				ctx.style.PanelBorderColor, ctx.style.BorderSize)
		}

		if ctx.Input != nil {
			panelRect := Rect{X: startX, Y: startY, W: panelW, H: panelH}
			if panelRect.Contains(ctx.Input.MousePos()) {
				ctx.WantCaptureMouse = true
			}
		}

		// The whole panel is one item of the enclosing layout.
		ctx.cursor = Vec2{X: startX, Y: startY}
		ctx.advanceCursor(Vec2{panelW, panelH})
	}
}

// popLayoutDetached pops a layout without reporting it to the parent. The
// caller advances the parent itself with the decorated size.
func (ctx *Context) popLayoutDetached() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}
	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]
	return Rect{X: layout.StartX, Y: layout.StartY, W: layout.MaxWidth, H: layout.MaxHeight}
}

// CenteredPanel draws a titled panel centered on screen.
// Uses the size measured in the previous frame, so the first frame is
// centered on a guess.
func (ctx *Context) CenteredPanel(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		panelID := ctx.GetID(title)
		cachedSize := GetState(ctx, panelID, Vec2{200, 100})

		saved := ctx.cursor
		savedLayouts := ctx.layoutStack
		ctx.layoutStack = nil

		ctx.cursor = Vec2{
			X: (ctx.DisplaySize.X - cachedSize.X) / 2,
			Y: (ctx.DisplaySize.Y - cachedSize.Y) / 2,
		}

		ctx.VStack(Gap(0))(func() {
			ctx.Panel(title, opts...)(contents)
			layout := ctx.currentLayout()
			SetState(ctx, panelID, Vec2{layout.MaxWidth, layout.MaxHeight})
		})

		ctx.cursor = saved
		ctx.layoutStack = savedLayouts
	}
}

// VStack creates a vertical layout container.
//
// Usage:
//
//	ctx.VStack(Gap(8))(func() {
//	    ctx.Text("Line 1")
//	    ctx.Text("Line 2")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutVertical, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.beginChild()
		ctx.pushLayoutWith(layout)
		contents()
		ctx.popLayout()
	}
}

// HStack creates a horizontal layout container.
//
// Usage:
//
//	ctx.HStack(Gap(8))(func() {
//	    ctx.Knob("a", 50, cozyui.Bind(&a))
//	    ctx.Knob("b", 50, cozyui.Bind(&b))
//	})
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutHorizontal, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.beginChild()
		ctx.pushLayoutWith(layout)
		contents()
		ctx.popLayout()
	}
}

// Row creates a horizontal layout for its contents (alias for HStack).
func (ctx *Context) Row(contents func()) {
	ctx.HStack()(contents)
}

// Spacing adds vertical space.
func (ctx *Context) Spacing(pixels float32) {
	ctx.cursor.Y += pixels
}

// Separator draws a horizontal line.
func (ctx *Context) Separator() {
	pos := ctx.ItemPos()
	w := ctx.currentLayoutWidth()
	y := pos.Y + 2
	ctx.DrawList.AddLine(pos.X, y, pos.X+w, y, ctx.style.SeparatorColor, 1)
	ctx.advanceCursor(Vec2{w, 4})
}

// SameLine places the next widget on the same line as the previous.
func (ctx *Context) SameLine() {
	if layout := ctx.currentLayout(); layout != nil {
		// Move cursor back to previous line
		ctx.cursor.Y -= ctx.lineHeight() + layout.Gap
		// Add horizontal spacing
		ctx.cursor.X += ctx.style.ItemSpacing
	}
}

// Indent increases the cursor X position.
func (ctx *Context) Indent(pixels float32) {
	ctx.cursor.X += pixels
}

// Unindent decreases the cursor X position.
func (ctx *Context) Unindent(pixels float32) {
	ctx.cursor.X -= pixels
}
