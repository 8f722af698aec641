package arc

import "github.com/chewxy/math32"

// maxFlattenDepth bounds the subdivision in Flatten.
const maxFlattenDepth = 10

// Bezier is a cubic Bezier curve. P1 and P4 are the endpoints, P2 and P3 the
// control points.
type Bezier struct {
	P1, P2, P3, P4 Point
}

// Eval returns the point on the curve at parameter t in [0, 1].
func (b Bezier) Eval(t float32) Point {
	mt := 1 - t
	c1 := mt * mt * mt
	c2 := 3 * mt * mt * t
	c3 := 3 * mt * t * t
	c4 := t * t * t
	return Point{
		X: c1*b.P1.X + c2*b.P2.X + c3*b.P3.X + c4*b.P4.X,
		Y: c1*b.P1.Y + c2*b.P2.Y + c3*b.P3.Y + c4*b.P4.Y,
	}
}

// Reverse returns the same curve traversed from P4 to P1.
func (b Bezier) Reverse() Bezier {
	return Bezier{P1: b.P4, P2: b.P3, P3: b.P2, P4: b.P1}
}

// Subdivide splits the curve at t=0.5.
func (b Bezier) Subdivide() (Bezier, Bezier) {
	p12 := mid(b.P1, b.P2)
	p23 := mid(b.P2, b.P3)
	p34 := mid(b.P3, b.P4)
	p123 := mid(p12, p23)
	p234 := mid(p23, p34)
	p1234 := mid(p123, p234)
	return Bezier{b.P1, p12, p123, p1234}, Bezier{p1234, p234, p34, b.P4}
}

// Flatten appends a polyline approximation of the curve to dst. P1 is not
// appended, P4 always is, so consecutive curves of a path chain without
// duplicate points. tolerance is the squared flatness bound used to stop
// subdividing; smaller values give more points.
func (b Bezier) Flatten(dst []Point, tolerance float32) []Point {
	return b.flatten(dst, tolerance, 0)
}

func (b Bezier) flatten(dst []Point, tolerance float32, depth int) []Point {
	dx := b.P4.X - b.P1.X
	dy := b.P4.Y - b.P1.Y
	d2 := math32.Abs((b.P2.X-b.P4.X)*dy - (b.P2.Y-b.P4.Y)*dx)
	d3 := math32.Abs((b.P3.X-b.P4.X)*dy - (b.P3.Y-b.P4.Y)*dx)

	if (d2+d3)*(d2+d3) < tolerance*(dx*dx+dy*dy) || depth >= maxFlattenDepth {
		return append(dst, b.P4)
	}

	left, right := b.Subdivide()
	dst = left.flatten(dst, tolerance, depth+1)
	return right.flatten(dst, tolerance, depth+1)
}

func mid(p, q Point) Point {
	return Point{(p.X + q.X) * 0.5, (p.Y + q.Y) * 0.5}
}
