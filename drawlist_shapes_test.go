package cozyui_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/cozyui"
	"github.com/go-theft-auto/cozyui/arc"
)

func newDrawList(t *testing.T) *cozyui.DrawList {
	t.Helper()
	dl := cozyui.AcquireDrawList()
	t.Cleanup(func() { cozyui.ReleaseDrawList(dl) })
	return dl
}

func bounds(vs []cozyui.Vertex) (minX, minY, maxX, maxY float32) {
	minX, minY = math32.Inf(1), math32.Inf(1)
	maxX, maxY = math32.Inf(-1), math32.Inf(-1)
	for _, v := range vs {
		minX = min(minX, v.Pos[0])
		minY = min(minY, v.Pos[1])
		maxX = max(maxX, v.Pos[0])
		maxY = max(maxY, v.Pos[1])
	}
	return
}

// requireIndicesInRange checks every index addresses a vertex of its own
// command.
func requireIndicesInRange(t *testing.T, dl *cozyui.DrawList) {
	t.Helper()
	for i, cmd := range dl.CmdBuffer {
		end := uint32(len(dl.VtxBuffer))
		if i+1 < len(dl.CmdBuffer) {
			end = dl.CmdBuffer[i+1].VertexOffset
		}
		for _, idx := range dl.IdxBuffer[cmd.IndexOffset : cmd.IndexOffset+cmd.ElemCount] {
			require.Less(t, cmd.VertexOffset+uint32(idx), end, "command %d", i)
		}
	}
}

func TestShapesDrawNothing(t *testing.T) {
	center := cozyui.Vec2{X: 50, Y: 50}
	tests := []struct {
		name string
		draw func(dl *cozyui.DrawList)
	}{
		{"zero radius arc", func(dl *cozyui.DrawList) { dl.AddArc(center, 0, 0, 1, cozyui.ColorWhite, 2) }},
		{"negative radius circle", func(dl *cozyui.DrawList) { dl.AddCircle(center, -4, cozyui.ColorWhite, 2) }},
		{"transparent circle", func(dl *cozyui.DrawList) { dl.AddCircleFilled(center, 10, cozyui.ColorTransparent) }},
		{"empty sweep", func(dl *cozyui.DrawList) { dl.AddArc(center, 10, 1, 1, cozyui.ColorWhite, 2) }},
		{"single point polyline", func(dl *cozyui.DrawList) {
			dl.AddPolyline([]arc.Point{{X: 1, Y: 1}, {X: 1, Y: 1}}, cozyui.ColorWhite, 2, false)
		}},
		{"zero width stroke", func(dl *cozyui.DrawList) {
			dl.AddPolyline([]arc.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, cozyui.ColorWhite, 0, false)
		}},
		{"two point polygon", func(dl *cozyui.DrawList) {
			dl.AddConvexPolyFilled([]arc.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, cozyui.ColorWhite)
		}},
		{"empty rounded rect", func(dl *cozyui.DrawList) { dl.AddRectFilledRounded(0, 0, 0, 10, 3, cozyui.ColorWhite) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dl := newDrawList(t)
			tt.draw(dl)
			assert.Empty(t, dl.VtxBuffer)
			assert.Empty(t, dl.IdxBuffer)
		})
	}
}

func TestPolylineSegment(t *testing.T) {
	dl := newDrawList(t)
	dl.AddPolyline([]arc.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, cozyui.ColorWhite, 2, false)

	require.Len(t, dl.VtxBuffer, 4)
	assert.Len(t, dl.IdxBuffer, 6)
	minX, minY, maxX, maxY := bounds(dl.VtxBuffer)
	assert.Equal(t, [4]float32{0, -1, 10, 1}, [4]float32{minX, minY, maxX, maxY})
}

func TestArcStaysOnItsRing(t *testing.T) {
	dl := newDrawList(t)
	center := cozyui.Vec2{X: 100, Y: 100}
	const radius, thickness = 40, 4

	dl.AddArc(center, radius, arc.Radians(225), arc.Radians(-45), cozyui.ColorWhite, thickness)

	require.NotEmpty(t, dl.VtxBuffer)
	for _, v := range dl.VtxBuffer {
		d := math32.Hypot(v.Pos[0]-center.X, v.Pos[1]-center.Y)
		// Miter joints reach at most a full stroke width from the curve.
		assert.InDelta(t, radius, d, thickness+0.1)
	}
	requireIndicesInRange(t, dl)
}

func TestArcRunsClockwiseOnScreen(t *testing.T) {
	dl := newDrawList(t)
	center := cozyui.Vec2{X: 0, Y: 0}

	// From east to north: the first point is at the right, the last one at
	// the top, which has a smaller screen y.
	dl.AddArc(center, 10, 0, arc.QuarterTurn, cozyui.ColorWhite, 1)

	n := len(dl.VtxBuffer)
	require.GreaterOrEqual(t, n, 4)
	first := dl.VtxBuffer[0].Pos
	last := dl.VtxBuffer[n-1].Pos
	assert.InDelta(t, 10, first[0], 0.6)
	assert.InDelta(t, -10, last[1], 0.6)
}

func TestCircleFilledOutline(t *testing.T) {
	dl := newDrawList(t)
	center := cozyui.Vec2{X: 30, Y: 40}
	const radius = 25

	dl.AddCircleFilled(center, radius, cozyui.ColorWhite)

	require.GreaterOrEqual(t, len(dl.VtxBuffer), 8)
	for _, v := range dl.VtxBuffer {
		d := math32.Hypot(v.Pos[0]-center.X, v.Pos[1]-center.Y)
		assert.InDelta(t, radius, d, 0.05, "fan vertices lie on the circle")
	}
	minX, minY, maxX, maxY := bounds(dl.VtxBuffer)
	assert.InDelta(t, center.X-radius, minX, 0.01)
	assert.InDelta(t, center.Y-radius, minY, 0.01)
	assert.InDelta(t, center.X+radius, maxX, 0.01)
	assert.InDelta(t, center.Y+radius, maxY, 0.01)
	requireIndicesInRange(t, dl)
}

func TestRoundedRectBounds(t *testing.T) {
	tests := []struct {
		name      string
		rounding  float32
		wantVerts int // 0 means "more than 4"
	}{
		{"square corners", 0, 4},
		{"sub-pixel rounding", 0.3, 4},
		{"rounded", 3, 0},
		{"pill", 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dl := newDrawList(t)
			dl.AddRectFilledRounded(10, 20, 80, 15, tt.rounding, cozyui.ColorWhite)

			if tt.wantVerts > 0 {
				assert.Len(t, dl.VtxBuffer, tt.wantVerts)
			} else {
				assert.Greater(t, len(dl.VtxBuffer), 4)
			}
			minX, minY, maxX, maxY := bounds(dl.VtxBuffer)
			assert.InDelta(t, 10, minX, 0.01)
			assert.InDelta(t, 20, minY, 0.01)
			assert.InDelta(t, 90, maxX, 0.01)
			assert.InDelta(t, 35, maxY, 0.01)
			requireIndicesInRange(t, dl)
		})
	}
}

func TestDrawListSplitsLargeBatches(t *testing.T) {
	dl := newDrawList(t)
	for i := 0; len(dl.VtxBuffer) < 100_000; i++ {
		dl.AddCircle(cozyui.Vec2{X: float32(i % 50), Y: 10}, 300, cozyui.ColorWhite, 2)
	}
	dl.Finalize()

	assert.Greater(t, len(dl.CmdBuffer), 1)
	requireIndicesInRange(t, dl)
	for i := 1; i < len(dl.CmdBuffer); i++ {
		span := dl.CmdBuffer[i].VertexOffset - dl.CmdBuffer[i-1].VertexOffset
		assert.LessOrEqual(t, span, uint32(1<<16))
	}
}

// commandSpans returns how many vertices each command owns.
func commandSpans(dl *cozyui.DrawList) []uint32 {
	spans := make([]uint32, len(dl.CmdBuffer))
	for i, cmd := range dl.CmdBuffer {
		end := uint32(len(dl.VtxBuffer))
		if i+1 < len(dl.CmdBuffer) {
			end = dl.CmdBuffer[i+1].VertexOffset
		}
		spans[i] = end - cmd.VertexOffset
	}
	return spans
}

func TestLongStrokeSplitsAcrossCommands(t *testing.T) {
	dl := newDrawList(t)
	// Twenty turns of a huge circle flatten to far more than 65536 vertices.
	dl.AddArc(cozyui.Vec2{}, 1e6, 0, 40*math32.Pi, cozyui.ColorWhite, 2)
	dl.Finalize()

	require.Greater(t, len(dl.VtxBuffer), 1<<16)
	require.Greater(t, len(dl.CmdBuffer), 1)
	requireIndicesInRange(t, dl)

	for i, span := range commandSpans(dl) {
		cmd := dl.CmdBuffer[i]
		assert.LessOrEqual(t, span, uint32(1<<16), "command %d", i)
		var maxIdx uint16
		for _, idx := range dl.IdxBuffer[cmd.IndexOffset : cmd.IndexOffset+cmd.ElemCount] {
			maxIdx = max(maxIdx, idx)
		}
		assert.Equal(t, span-1, uint32(maxIdx), "command %d must reach all its vertices", i)
	}

	// Each run starts with the pair the previous run ended on.
	for i := 1; i < len(dl.CmdBuffer); i++ {
		seam := dl.CmdBuffer[i].VertexOffset
		assert.Equal(t, dl.VtxBuffer[seam-2].Pos, dl.VtxBuffer[seam].Pos, "seam %d", i)
		assert.Equal(t, dl.VtxBuffer[seam-1].Pos, dl.VtxBuffer[seam+1].Pos, "seam %d", i)
	}
}

func TestLargeFanSplitsAcrossCommands(t *testing.T) {
	dl := newDrawList(t)
	const n = 70_000
	points := make([]arc.Point, n)
	for i := range points {
		points[i] = arc.CirclePoint(arc.Point{}, 500, 2*math32.Pi*float32(i)/n)
	}
	dl.AddConvexPolyFilled(points, cozyui.ColorWhite)
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 2)
	requireIndicesInRange(t, dl)
	for i, span := range commandSpans(dl) {
		assert.LessOrEqual(t, span, uint32(1<<16), "command %d", i)
	}
	// n-2 triangles in total, however they are split.
	var elems uint32
	for _, cmd := range dl.CmdBuffer {
		elems += cmd.ElemCount
	}
	assert.Equal(t, uint32(3*(n-2)), elems)
}

func TestClosedPolylineJoinsItsEnds(t *testing.T) {
	dl := newDrawList(t)
	square := []arc.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	dl.AddPolyline(square, cozyui.ColorWhite, 2, true)

	// Four corners plus the first pair repeated to close the loop.
	require.Len(t, dl.VtxBuffer, 10)
	assert.Len(t, dl.IdxBuffer, 4*6)
	assert.Equal(t, dl.VtxBuffer[0].Pos, dl.VtxBuffer[8].Pos)
	requireIndicesInRange(t, dl)
}
