// Package arc approximates circular arcs with cubic Bezier curves.
//
// A single cubic cannot follow a circle closely past a quarter turn, so an arc
// is first split into segments no wider than pi/2 and each segment is then
// converted into one cubic. Angles are in radians, measured from east, and
// grow counter-clockwise in math convention. Because screen Y grows downward a
// circle point is center + r*(cos t, -sin t), so positive angles move up the
// screen.
//
// Everything here is a pure function over value types.
package arc

import (
	"iter"

	"github.com/chewxy/math32"
)

// QuarterTurn is the widest angle a single Segment may span.
const QuarterTurn = math32.Pi / 2

// segmentEpsilon absorbs float32 drift when the sweep is an exact multiple of
// a quarter turn, so 2*pi yields four segments instead of four plus a sliver.
const segmentEpsilon = 1e-5

// collinearTolerance is the sine of the smallest angle between two radius
// vectors that still bends a cubic. float32 rounding leaves the vectors of an
// exact half turn a few 1e-7 off collinear.
const collinearTolerance = 1e-5

// Point is a position or vector in screen space.
type Point struct {
	X, Y float32
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul scales p by s.
func (p Point) Mul(s float32) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float32 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z component of the cross product of p and q.
func (p Point) Cross(q Point) float32 { return p.X*q.Y - p.Y*q.X }

// LengthSq returns the squared length of p.
func (p Point) LengthSq() float32 { return p.Dot(p) }

// Segment is a piece of an arc no wider than a quarter turn.
type Segment struct {
	Start, End float32
}

// Width returns the signed angular width of the segment.
func (s Segment) Width() float32 { return s.End - s.Start }

// Segments splits the sweep from start to end into quarter turns.
//
// The angles are taken literally: a 450 degree sweep produces five segments,
// not one. The first segment starts exactly at start, the last ends exactly at
// end, and neighbours share their boundary. A zero sweep produces a single
// zero-width segment.
func Segments(start, end float32) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		current := start
		for {
			next, last := step(current, end)
			if !yield(Segment{Start: current, End: next}) || last {
				return
			}
			current = next
		}
	}
}

// SegmentCount returns how many segments Segments(start, end) yields. This is
// ceil(|end-start| / (pi/2)), and at least one, except that a sweep exceeding
// a multiple of pi/2 by no more than segmentEpsilon lets its last segment run
// that much wider: pi/2 + 5e-6 is one segment.
func SegmentCount(start, end float32) int {
	n := 1
	for current := start; ; n++ {
		next, last := step(current, end)
		if last {
			return n
		}
		current = next
	}
}

// step returns the boundary that closes the segment starting at current, and
// whether that segment is the final one.
func step(current, end float32) (next float32, last bool) {
	remaining := end - current
	if math32.Abs(remaining) <= QuarterTurn+segmentEpsilon {
		return end, true
	}
	if remaining < 0 {
		next = current - QuarterTurn
	} else {
		next = current + QuarterTurn
	}
	if next == current {
		// float32 ran out of precision at this magnitude; close the arc.
		return end, true
	}
	return next, false
}

// CirclePoint returns the point at angle on the circle around center.
func CirclePoint(center Point, radius, angle float32) Point {
	return Point{
		X: center.X + radius*math32.Cos(angle),
		Y: center.Y - radius*math32.Sin(angle),
	}
}

// TangentCoefficient returns the k2 factor that places the interior control
// points of a cubic approximating the arc between the radius vectors a and b.
// Its magnitude is about 0.5523 for a quarter turn; the sign follows the
// orientation of a and b. It reports false when a and b are collinear, to
// within collinearTolerance of their lengths, or the result is not finite.
func TangentCoefficient(a, b Point) (float32, bool) {
	q1 := a.LengthSq()
	denom := a.Cross(b)
	if math32.Abs(denom) <= collinearTolerance*math32.Sqrt(q1*b.LengthSq()) {
		return 0, false
	}
	q2 := q1 + a.Dot(b)
	k2 := (4.0 / 3.0) * (math32.Sqrt(2*q1*q2) - q2) / denom
	if math32.IsNaN(k2) || math32.IsInf(k2, 0) {
		return 0, false
	}
	return k2, true
}

// Cubic converts one segment into a cubic Bezier.
//
// The segment must not be wider than a quarter turn; wider input is not
// rejected but the curve will drift away from the circle. A zero-width segment
// returns all four points on the single circle point and ok=false. Any other
// segment whose radius vectors are collinear, or whose coefficient would not be
// finite, becomes a straight line from P1 to P4.
func Cubic(center Point, radius float32, seg Segment) (b Bezier, ok bool) {
	p1 := CirclePoint(center, radius, seg.Start)
	p4 := CirclePoint(center, radius, seg.End)
	if p1 == p4 {
		return Bezier{P1: p1, P2: p1, P3: p1, P4: p1}, false
	}

	a := p1.Sub(center)
	v := p4.Sub(center)
	k2, ok := TangentCoefficient(a, v)
	if !ok {
		return Bezier{P1: p1, P2: p1, P3: p4, P4: p4}, true
	}

	return Bezier{
		P1: p1,
		P2: Point{center.X + a.X - k2*a.Y, center.Y + a.Y + k2*a.X},
		P3: Point{center.X + v.X + k2*v.Y, center.Y + v.Y - k2*v.X},
		P4: p4,
	}, true
}

// Beziers yields the cubics that draw the arc from start to end.
// Degenerate segments are skipped and a non-positive radius yields nothing.
func Beziers(center Point, radius, start, end float32) iter.Seq[Bezier] {
	return func(yield func(Bezier) bool) {
		if radius <= 0 {
			return
		}
		for seg := range Segments(start, end) {
			b, ok := Cubic(center, radius, seg)
			if !ok {
				continue
			}
			if !yield(b) {
				return
			}
		}
	}
}

// AppendBeziers appends the cubics of the arc to dst and returns the result.
func AppendBeziers(dst []Bezier, center Point, radius, start, end float32) []Bezier {
	for b := range Beziers(center, radius, start, end) {
		dst = append(dst, b)
	}
	return dst
}
