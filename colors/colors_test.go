package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func channelsNear(t *testing.T, want, got color.NRGBA, delta float64) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, delta, "red")
	assert.InDelta(t, want.G, got.G, delta, "green")
	assert.InDelta(t, want.B, got.B, delta, "blue")
	assert.Equal(t, want.A, got.A, "alpha")
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		factor float32
		want   uint8
	}{
		{1, 255},
		{2, 255},
		{0.5, 128},
		{0, 0},
		{-1, 0},
	}
	for _, tt := range tests {
		got := Multiply(Highlight, tt.factor)
		assert.Equal(t, tt.want, got.A, "factor %v", tt.factor)
		assert.Equal(t, Highlight.R, got.R)
	}
}

func TestPack(t *testing.T) {
	assert.Equal(t, uint32(0xFF802DFF), Pack(Highlight))
	assert.Equal(t, uint32(0), Pack(color.NRGBA{}))
}

func TestGradientEndpoints(t *testing.T) {
	for _, tt := range []struct {
		name       string
		grad       *Gradient
		start, end color.NRGBA
	}{
		{"track", TrackGradient(), Highlight, Magenta},
		{"light", LightGradient(), Background, Highlight},
	} {
		t.Run(tt.name, func(t *testing.T) {
			channelsNear(t, tt.start, tt.grad.At(0), 2)
			channelsNear(t, tt.end, tt.grad.At(1), 2)
			channelsNear(t, tt.start, tt.grad.At(-3), 2)
			channelsNear(t, tt.end, tt.grad.At(7), 2)
		})
	}
}

func TestGradientIsBuiltOnce(t *testing.T) {
	assert.Same(t, TrackGradient(), TrackGradient())
	assert.Same(t, LightGradient(), LightGradient())
}

func TestGradientMidpointIsBetweenStops(t *testing.T) {
	mid := LightGradient().At(0.5)
	assert.Greater(t, mid.R, Background.R)
	assert.Less(t, mid.R, Highlight.R)
	assert.Equal(t, uint8(255), mid.A)
}

func TestNewGradientErrors(t *testing.T) {
	_, err := NewGradient(Highlight)
	assert.Error(t, err)

	_, err = NewHexGradient("#ff2d80", "not a colour")
	assert.ErrorContains(t, err, "not a colour")

	g, err := NewHexGradient("#ff2d80", "#de07db")
	require.NoError(t, err)
	channelsNear(t, Highlight, g.At(0), 2)
}
