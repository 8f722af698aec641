package cozyui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/cozyui"
)

func TestFrameHistoryOverwritesProjection(t *testing.T) {
	h := cozyui.NewFrameHistory()

	h.OnNewFrame(0, 0)
	h.OnNewFrame(0.01, 0.01)
	h.OnNewFrame(0.02, 0.012)

	assert.Equal(t, []float32{0.01, 0.012, 0.012}, h.Values())
	assert.InDelta(t, 0.034/3, h.MeanFrameTime(), 1e-6)
	assert.InDelta(t, 100, h.FPS(), 1e-3)
}

func TestFrameHistoryPrunesByAge(t *testing.T) {
	h := cozyui.NewFrameHistory()
	for i := range 10 {
		h.OnNewFrame(float64(i)*0.1, 0.1)
	}
	assert.Equal(t, 10, h.Len())

	h.OnNewFrame(2.5, 0.1)
	assert.Equal(t, 1, h.Len())
	assert.Zero(t, h.FPS(), "one sample has no interval")
}

func TestFrameHistoryPrunesByLength(t *testing.T) {
	h := &cozyui.FrameHistory{MaxAge: 10, MaxLen: 3}
	for i := range 5 {
		h.OnNewFrame(float64(i), float32(i))
	}
	assert.Equal(t, []float32{3, 4, 4}, h.Values())
}

func TestFrameHistoryEmpty(t *testing.T) {
	h := cozyui.NewFrameHistory()
	assert.Zero(t, h.MeanFrameTime())
	assert.Zero(t, h.FPS())
	assert.Zero(t, h.Len())
}
