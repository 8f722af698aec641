package arc_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/cozyui/arc"
)

func quarter(t *testing.T, center arc.Point, radius float32) arc.Bezier {
	t.Helper()
	b, ok := arc.Cubic(center, radius, arc.Segment{Start: 0, End: math32.Pi / 2})
	require.True(t, ok)
	return b
}

func TestBezierEvalEndpoints(t *testing.T) {
	b := arc.Bezier{
		P1: arc.Point{X: 1, Y: 2},
		P2: arc.Point{X: 5, Y: 9},
		P3: arc.Point{X: -3, Y: 4},
		P4: arc.Point{X: 7, Y: -1},
	}
	assert.Equal(t, b.P1, b.Eval(0))
	assert.Equal(t, b.P4, b.Eval(1))
}

func TestBezierSubdivideMatchesEval(t *testing.T) {
	b := quarter(t, arc.Point{X: 50, Y: 50}, 30)
	left, right := b.Subdivide()

	assert.Equal(t, b.P1, left.P1)
	assert.Equal(t, b.P4, right.P4)
	assert.Equal(t, left.P4, right.P1)

	opt := cmpopts.EquateApprox(0, 1e-4)
	if diff := cmp.Diff(b.Eval(0.5), left.P4, opt); diff != "" {
		t.Errorf("split point (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(b.Eval(0.25), left.Eval(0.5), opt); diff != "" {
		t.Errorf("left half (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(b.Eval(0.75), right.Eval(0.5), opt); diff != "" {
		t.Errorf("right half (-want +got):\n%s", diff)
	}
}

func TestBezierFlatten(t *testing.T) {
	center := arc.Point{X: 100, Y: 100}
	const radius = 100
	b := quarter(t, center, radius)

	coarse := b.Flatten(nil, 1.25)
	fine := b.Flatten(nil, 0.01)

	require.NotEmpty(t, coarse)
	assert.Equal(t, b.P4, coarse[len(coarse)-1])
	assert.Equal(t, b.P4, fine[len(fine)-1])
	assert.NotEqual(t, b.P1, coarse[0], "the start point is left to the caller")
	assert.Greater(t, len(coarse), 2)
	assert.Greater(t, len(fine), len(coarse))

	for _, p := range fine {
		d := math32.Sqrt(p.Sub(center).LengthSq())
		assert.InDelta(t, radius, d, 0.1)
	}
}

func TestBezierFlattenAppends(t *testing.T) {
	b := quarter(t, arc.Point{}, 10)
	dst := []arc.Point{b.P1}
	dst = b.Flatten(dst, 0.5)
	assert.Equal(t, b.P1, dst[0])
	assert.Equal(t, b.P4, dst[len(dst)-1])
}

func TestBezierFlattenStraightLine(t *testing.T) {
	b := arc.Bezier{
		P1: arc.Point{X: 0, Y: 0},
		P2: arc.Point{X: 0, Y: 0},
		P3: arc.Point{X: 10, Y: 0},
		P4: arc.Point{X: 10, Y: 0},
	}
	assert.Equal(t, []arc.Point{{X: 10, Y: 0}}, b.Flatten(nil, 1))
}
