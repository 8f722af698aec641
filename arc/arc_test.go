package arc_test

import (
	"math"
	"slices"
	"testing"

	"github.com/chewxy/math32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/cozyui/arc"
)

const widthTolerance = 1e-5

var sweeps = []struct {
	name       string
	start, end float32
}{
	{"zero", 1, 1},
	{"quarter", 0, math32.Pi / 2},
	{"half", 0, math32.Pi},
	{"full", 0, 2 * math32.Pi},
	{"knob track", arc.Radians(225), arc.Radians(-45)},
	{"beyond full turn", 0, arc.Radians(450)},
	{"negative direction", 1, -7.3},
	{"wide positive", -3, 11},
	{"narrow", 0.2, 0.3},
}

func TestSegmentsReconstructSweep(t *testing.T) {
	for _, tt := range sweeps {
		t.Run(tt.name, func(t *testing.T) {
			segs := slices.Collect(arc.Segments(tt.start, tt.end))
			require.NotEmpty(t, segs)

			assert.Equal(t, tt.start, segs[0].Start, "first segment must start at the sweep start")
			assert.Equal(t, tt.end, segs[len(segs)-1].End, "last segment must end at the sweep end")

			for i := 1; i < len(segs); i++ {
				assert.Equal(t, segs[i-1].End, segs[i].Start, "gap between segment %d and %d", i-1, i)
			}
			for i, s := range segs {
				assert.LessOrEqual(t, math32.Abs(s.Width()), arc.QuarterTurn+widthTolerance,
					"segment %d is wider than a quarter turn", i)
			}
			assert.Len(t, segs, arc.SegmentCount(tt.start, tt.end))
		})
	}
}

func TestSegmentsPreserveDirection(t *testing.T) {
	for s := range arc.Segments(arc.Radians(225), arc.Radians(-45)) {
		assert.LessOrEqual(t, s.Width(), float32(0))
	}
	for s := range arc.Segments(-3, 11) {
		assert.GreaterOrEqual(t, s.Width(), float32(0))
	}
}

func TestSegmentCount(t *testing.T) {
	tests := []struct {
		name       string
		start, end float32
		want       int
	}{
		{"zero width", 1, 1, 1},
		{"quarter", 0, math32.Pi / 2, 1},
		{"half turn is two, not three", 0, math32.Pi, 2},
		{"full turn", 0, 2 * math32.Pi, 4},
		{"full turn backwards", 2 * math32.Pi, 0, 4},
		{"just past a quarter", 0, math32.Pi/2 + 0.01, 2},
		{"knob track", arc.Radians(225), arc.Radians(-45), 3},
		{"450 degrees", 0, arc.Radians(450), 5},
		{"8.3 radians", 1, -7.3, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, arc.SegmentCount(tt.start, tt.end))
			n := 0
			for range arc.Segments(tt.start, tt.end) {
				n++
			}
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestSegmentCountMatchesCeilFormula(t *testing.T) {
	for _, tt := range sweeps {
		if tt.start == tt.end {
			continue
		}
		sweep := math.Abs(float64(tt.end) - float64(tt.start))
		want := int(math.Ceil(sweep/(math.Pi/2) - 1e-4))
		assert.Equal(t, want, arc.SegmentCount(tt.start, tt.end), tt.name)
	}
}

func TestSegmentsStopEarly(t *testing.T) {
	var got []arc.Segment
	for s := range arc.Segments(0, 10) {
		got = append(got, s)
		if len(got) == 2 {
			break
		}
	}
	want := []arc.Segment{
		{Start: 0, End: arc.QuarterTurn},
		{Start: arc.QuarterTurn, End: 2 * arc.QuarterTurn},
	}
	assert.Equal(t, want, got)
}

func TestZeroWidthSegment(t *testing.T) {
	segs := slices.Collect(arc.Segments(1, 1))
	require.Equal(t, []arc.Segment{{Start: 1, End: 1}}, segs)

	center := arc.Point{X: 20, Y: 30}
	b, ok := arc.Cubic(center, 50, segs[0])
	assert.False(t, ok, "a zero-width segment is degenerate")
	onCircle := arc.CirclePoint(center, 50, 1)
	assert.Equal(t, onCircle, b.P1)
	assert.Equal(t, b.P1, b.P4)

	assert.Empty(t, slices.Collect(arc.Beziers(center, 50, 1, 1)),
		"painters get nothing to stroke for a zero-width arc")
}

func TestCubicQuarterArc(t *testing.T) {
	b, ok := arc.Cubic(arc.Point{}, 100, arc.Segment{Start: 0, End: math32.Pi / 2})
	require.True(t, ok)

	want := arc.Bezier{
		P1: arc.Point{X: 100, Y: 0},
		P2: arc.Point{X: 100, Y: -55.2285},
		P3: arc.Point{X: 55.2285, Y: -100},
		P4: arc.Point{X: 0, Y: -100},
	}
	if diff := cmp.Diff(want, b, cmpopts.EquateApprox(0, 1e-3)); diff != "" {
		t.Errorf("quarter arc control points mismatch (-want +got):\n%s", diff)
	}

	k2, ok := arc.TangentCoefficient(b.P1, b.P4)
	require.True(t, ok)
	assert.InDelta(t, 0.5523, math32.Abs(k2), 1e-3)
}

func TestCubicEndpointsLieOnCircle(t *testing.T) {
	center := arc.Point{X: -12.5, Y: 40}
	const radius = 80
	for _, tt := range sweeps {
		for seg := range arc.Segments(tt.start, tt.end) {
			b, _ := arc.Cubic(center, radius, seg)
			for _, p := range []struct {
				got   arc.Point
				angle float32
			}{{b.P1, seg.Start}, {b.P4, seg.End}} {
				a := float64(p.angle)
				wantX := float64(center.X) + radius*math.Cos(a)
				wantY := float64(center.Y) - radius*math.Sin(a)
				assert.InDelta(t, wantX, float64(p.got.X), 1e-3, "%s x at %v", tt.name, p.angle)
				assert.InDelta(t, wantY, float64(p.got.Y), 1e-3, "%s y at %v", tt.name, p.angle)
			}
		}
	}
}

func TestBeziersReverseSymmetry(t *testing.T) {
	center := arc.Point{X: 10, Y: 10}
	forward := slices.Collect(arc.Beziers(center, 40, 0, math32.Pi/2))
	backward := slices.Collect(arc.Beziers(center, 40, math32.Pi/2, 0))
	require.Len(t, forward, 1)
	require.Len(t, backward, 1)

	if diff := cmp.Diff(forward[0].Reverse(), backward[0], cmpopts.EquateApprox(0, 1e-3)); diff != "" {
		t.Errorf("reversed arc is not the mirror of the forward arc (-want +got):\n%s", diff)
	}
}

func TestBeziersFullCircleStaysOnCircle(t *testing.T) {
	center := arc.Point{X: 200, Y: 150}
	const radius = 100
	curves := slices.Collect(arc.Beziers(center, radius, 0, 2*math32.Pi))
	require.Len(t, curves, 4)

	for i, c := range curves {
		for step := 0; step <= 10; step++ {
			p := c.Eval(float32(step) / 10)
			d := math32.Sqrt(p.Sub(center).LengthSq())
			assert.InDelta(t, radius, d, radius*1e-3, "curve %d at t=%v", i, float32(step)/10)
		}
	}
	assert.InDelta(t, curves[0].P1.X, curves[3].P4.X, 1e-3)
	assert.InDelta(t, curves[0].P1.Y, curves[3].P4.Y, 1e-3)
}

func TestBeziersInvalidRadius(t *testing.T) {
	for _, r := range []float32{0, -5} {
		assert.Empty(t, slices.Collect(arc.Beziers(arc.Point{}, r, 0, math32.Pi)), "radius %v", r)
	}
}

func TestAppendBeziers(t *testing.T) {
	dst := make([]arc.Bezier, 1, 8)
	dst = arc.AppendBeziers(dst, arc.Point{}, 10, arc.Radians(225), arc.Radians(-45))
	assert.Len(t, dst, 4)
}

func TestTangentCoefficientCollinear(t *testing.T) {
	for _, tt := range []struct {
		name string
		a, b arc.Point
	}{
		{"opposite", arc.Point{X: 1}, arc.Point{X: -1}},
		{"same direction", arc.Point{X: 1}, arc.Point{X: 2}},
		{"zero", arc.Point{}, arc.Point{}},
	} {
		_, ok := arc.TangentCoefficient(tt.a, tt.b)
		assert.False(t, ok, tt.name)
	}
}

func TestCubicHalfTurnIsStraight(t *testing.T) {
	center := arc.Point{X: 15, Y: -40}
	for _, start := range []float32{0, 0.3, 1, 2.5, -2, 7} {
		b, ok := arc.Cubic(center, 100, arc.Segment{Start: start, End: start + math32.Pi})
		require.True(t, ok, "start %v", start)
		assert.Equal(t, b.P1, b.P2, "start %v: P2 collapses onto P1", start)
		assert.Equal(t, b.P4, b.P3, "start %v: P3 collapses onto P4", start)
		for _, p := range []arc.Point{b.P1, b.P4} {
			d := math32.Sqrt(p.Sub(center).LengthSq())
			assert.InDelta(t, 100, d, 1e-3, "start %v: endpoints stay on the circle", start)
		}
	}
}

func TestTangentCoefficientNearlyCollinear(t *testing.T) {
	a := arc.Point{X: 100, Y: 0}
	_, ok := arc.TangentCoefficient(a, arc.Point{X: -100, Y: 1e-4})
	assert.False(t, ok, "a sliver off a half turn is collinear")

	k2, ok := arc.TangentCoefficient(a, arc.CirclePoint(arc.Point{}, 100, 0.01))
	require.True(t, ok, "a narrow segment still bends")
	assert.InDelta(t, 4.0/3.0*math.Tan(0.01/4), math32.Abs(k2), 1e-4)
}
