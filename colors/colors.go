// Package colors holds the plugin palette and the gradients the widgets blend
// through. Colours are non-premultiplied color.NRGBA values.
package colors

import "image/color"

// Palette.
var (
	Background       = color.NRGBA{R: 69, G: 65, B: 73, A: 255}
	WidgetBackground = color.NRGBA{R: 75, G: 54, B: 78, A: 255}
	Highlight        = color.NRGBA{R: 255, G: 45, B: 128, A: 255}
	Purple           = color.NRGBA{R: 118, G: 72, B: 151, A: 255}
	Modulation       = color.NRGBA{R: 133, G: 19, B: 173, A: 255}
	Magenta          = color.NRGBA{R: 0xde, G: 0x07, B: 0xdb, A: 255}
	White            = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Multiply fades c by factor, clamped to 0..1. Only alpha changes, which for
// a non-premultiplied colour is the same as scaling every premultiplied
// channel.
func Multiply(c color.NRGBA, factor float32) color.NRGBA {
	switch {
	case factor <= 0:
		c.A = 0
	case factor < 1:
		c.A = uint8(float32(c.A)*factor + 0.5)
	}
	return c
}

// Pack converts c to the 0xAABBGGRR layout used by vertex colours.
func Pack(c color.NRGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}
