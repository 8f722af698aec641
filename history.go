package cozyui

// FrameHistory records recent frame times for fps and frame-time readouts.
// Samples older than MaxAge seconds, or beyond MaxLen samples, are dropped.
type FrameHistory struct {
	MaxAge float64
	MaxLen int

	times  []float64 // when each sample was taken
	values []float32 // frame time in seconds
}

// NewFrameHistory keeps one second of history at up to 300 fps.
func NewFrameHistory() *FrameHistory {
	return &FrameHistory{MaxAge: 1, MaxLen: 300}
}

// OnNewFrame records a frame starting at now. The previous frame's real
// duration overwrites the projection stored last time, and a new projection
// is added for the frame that is starting.
func (h *FrameHistory) OnNewFrame(now float64, previousFrameTime float32) {
	if n := len(h.values); n > 0 {
		h.values[n-1] = previousFrameTime
	}
	h.times = append(h.times, now)
	h.values = append(h.values, previousFrameTime)
	h.prune(now)
}

func (h *FrameHistory) prune(now float64) {
	drop := 0
	for drop < len(h.times) && now-h.times[drop] > h.MaxAge {
		drop++
	}
	if over := len(h.times) - drop - h.MaxLen; h.MaxLen > 0 && over > 0 {
		drop += over
	}
	if drop > 0 {
		h.times = append(h.times[:0], h.times[drop:]...)
		h.values = append(h.values[:0], h.values[drop:]...)
	}
}

// Len returns the number of samples held.
func (h *FrameHistory) Len() int {
	return len(h.values)
}

// Values returns the frame times, oldest first. The slice is reused by the
// next OnNewFrame.
func (h *FrameHistory) Values() []float32 {
	return h.values
}

// MeanFrameTime returns the average frame time in seconds, or 0 when empty.
func (h *FrameHistory) MeanFrameTime() float32 {
	if len(h.values) == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.values {
		sum += v
	}
	return sum / float32(len(h.values))
}

// FPS returns frames per second from the mean interval between samples, or 0
// with fewer than two samples.
func (h *FrameHistory) FPS() float32 {
	n := len(h.times)
	if n < 2 {
		return 0
	}
	span := h.times[n-1] - h.times[0]
	if span <= 0 {
		return 0
	}
	return float32(float64(n-1) / span)
}
