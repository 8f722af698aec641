package cozyui

import "github.com/go-theft-auto/cozyui/colors"

// Spacing constants for consistent layout (similar to Tailwind spacing scale).
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2  // Extra small
	SpaceSM   float32 = 4  // Small (default item spacing)
	SpaceMD   float32 = 8  // Medium (default padding)
	SpaceLG   float32 = 12 // Large
	SpaceXL   float32 = 16 // Extra large
)

// Style defines the visual appearance of UI elements.
type Style struct {
	// Colors
	TextColor         uint32
	TextDisabledColor uint32

	// Panel colors
	PanelColor           uint32
	PanelBorderColor     uint32
	PanelHeaderBgColor   uint32 // Header background (0 = use ButtonColor)
	PanelHeaderTextColor uint32 // Header text (0 = use TextColor)

	// Button colors (also the toggle frame)
	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonActiveColor  uint32

	// Graph colors
	InputBgColor uint32
	BorderColor  uint32

	// Separator
	SeparatorColor uint32

	// Parameter widgets
	WidgetBgColor   uint32 // Knob face and slider track
	HighlightColor  uint32 // Slider fill
	FocusRingColor  uint32 // Knob hover ring
	ModulationColor uint32 // Knob modulation arc

	// Tooltips
	PopupShadowColor uint32
	PopupShadowSize  float32

	// Sizing
	FontScale      float32
	CharWidth      float32
	CharHeight     float32
	ItemSpacing    float32 // Default gap between items
	PanelPadding   float32
	ButtonPadding  float32 // Horizontal button padding; vertical too unless ButtonPaddingY is set
	ButtonPaddingY float32 // Vertical button padding (0 = use ButtonPadding)
	InteractHeight float32 // Minimum height of clickable widgets
	SliderWidth    float32 // Default slider width

	// AnimationTime is how long hover and toggle transitions take, in seconds.
	AnimationTime float32

	// Border
	BorderSize float32
	Rounding   float32 // Corner rounding (0 = sharp corners)
}

// DefaultStyle returns a neutral dark style.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		PanelColor:           RGBA(20, 20, 20, 200),
		PanelBorderColor:     RGBA(80, 80, 80, 255),
		PanelHeaderBgColor:   RGBA(40, 40, 45, 255),
		PanelHeaderTextColor: 0, // Use TextColor

		ButtonColor:        RGBA(50, 50, 50, 255),
		ButtonHoveredColor: RGBA(70, 70, 70, 255),
		ButtonActiveColor:  RGBA(90, 90, 90, 255),

		InputBgColor: RGBA(30, 30, 30, 255),
		BorderColor:  RGBA(80, 80, 80, 255),

		SeparatorColor: RGBA(80, 80, 80, 255),

		WidgetBgColor:   RGBA(60, 60, 60, 255),
		HighlightColor:  RGBA(50, 100, 150, 255),
		FocusRingColor:  RGBA(100, 100, 100, 255),
		ModulationColor: RGBA(120, 120, 200, 255),

		PopupShadowColor: RGBA(0, 0, 0, 96),
		PopupShadowSize:  2,

		FontScale:      1.0,
		CharWidth:      8,
		CharHeight:     8,
		ItemSpacing:    SpaceSM,
		PanelPadding:   SpaceMD,
		ButtonPadding:  6,
		InteractHeight: 18,
		SliderWidth:    100,
		AnimationTime:  1.0 / 12.0,

		BorderSize: 1,
		Rounding:   0,
	}
}

// CozyStyle returns the plugin theme: a purple-grey background, magenta
// highlights and a hard black popup shadow.
func CozyStyle() Style {
	s := DefaultStyle()
	s.PanelColor = PackColor(colors.Background)
	s.PanelBorderColor = RGBA(60, 60, 60, 255)
	s.PanelHeaderBgColor = PackColor(colors.WidgetBackground)

	s.ButtonColor = RGBA(60, 60, 60, 255)
	s.ButtonHoveredColor = RGBA(70, 70, 70, 255)
	s.ButtonActiveColor = RGBA(55, 55, 55, 255)

	s.InputBgColor = RGBA(10, 10, 10, 255)

	s.WidgetBgColor = PackColor(colors.WidgetBackground)
	s.HighlightColor = PackColor(colors.Highlight)
	s.FocusRingColor = PackColor(colors.Purple)
	s.ModulationColor = PackColor(colors.Modulation)

	s.PopupShadowColor = ColorBlack
	s.PopupShadowSize = 1.5

	s.ButtonPadding = 4
	s.ButtonPaddingY = 1
	s.ItemSpacing = SpaceMD
	s.Rounding = 2
	return s
}

// buttonPadding returns the horizontal and vertical button padding.
func (s Style) buttonPadding() (x, y float32) {
	y = s.ButtonPaddingY
	if y == 0 {
		y = s.ButtonPadding
	}
	return s.ButtonPadding, y
}
