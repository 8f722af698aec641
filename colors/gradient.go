package colors

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/colorgrad"
)

// Gradient is a smooth basis-spline gradient blended in Oklab.
type Gradient struct {
	grad colorgrad.Gradient
}

// NewGradient builds a gradient through stops, evenly spaced over 0..1.
func NewGradient(stops ...color.Color) (*Gradient, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("colors: gradient needs at least 2 stops, got %d", len(stops))
	}
	g, err := colorgrad.NewGradient().
		Colors(stops...).
		Mode(colorgrad.BlendOklab).
		Interpolation(colorgrad.InterpolationBasis).
		Build()
	if err != nil {
		return nil, fmt.Errorf("colors: build gradient: %w", err)
	}
	return &Gradient{grad: g}, nil
}

// NewHexGradient is NewGradient for "#rrggbb" stops.
func NewHexGradient(stops ...string) (*Gradient, error) {
	cs := make([]color.Color, 0, len(stops))
	for _, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("colors: parse %q: %w", s, err)
		}
		cs = append(cs, c)
	}
	return NewGradient(cs...)
}

func mustGradient(stops ...color.Color) *Gradient {
	g, err := NewGradient(stops...)
	if err != nil {
		panic(err)
	}
	return g
}

// At samples the gradient. t is clamped to 0..1 and the result is opaque.
func (g *Gradient) At(t float32) color.NRGBA {
	switch {
	case t < 0 || t != t:
		t = 0
	case t > 1:
		t = 1
	}
	r, gr, b := g.grad.At(float64(t)).Clamped().RGB255()
	return color.NRGBA{R: r, G: gr, B: b, A: 255}
}

// TrackGradient runs from Highlight to Magenta. Knob tracks sample it with the
// fine-adjust amount.
var TrackGradient = sync.OnceValue(func() *Gradient {
	return mustGradient(Highlight, Magenta)
})

// LightGradient runs from Background to Highlight. Toggle lights sample it with
// the on amount.
var LightGradient = sync.OnceValue(func() *Gradient {
	return mustGradient(Background, Highlight)
})
