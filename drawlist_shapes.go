package cozyui

import (
	"github.com/chewxy/math32"

	"github.com/go-theft-auto/cozyui/arc"
)

// CurveTessellationTol bounds how far a flattened curve may stray from the
// true curve. Lower values produce more vertices.
const CurveTessellationTol float32 = 1.25

// maxMiter limits how far a polyline joint may extend past half the stroke
// width, as a factor of half the width.
const maxMiter = 2

// AddPolyline strokes a connected run of points. Joints use the averaged
// normal of the neighbouring segments. Consecutive duplicate points are
// ignored and fewer than two distinct points draw nothing. Any length is
// accepted; long strokes span several draw commands.
func (dl *DrawList) AddPolyline(points []arc.Point, color uint32, thickness float32, closed bool) {
	if color&0xFF000000 == 0 || thickness <= 0 {
		return
	}

	dl.line = appendDistinct(dl.line[:0], points)
	pts := dl.line
	if closed && len(pts) > 2 && nearlyEqual(pts[0], pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	n := len(pts)
	if n < 2 {
		return
	}
	if n < 3 {
		closed = false
	}

	segs := n - 1
	if closed {
		segs = n
	}
	dl.normals = dl.normals[:0]
	for i := range segs {
		d := pts[(i+1)%n].Sub(pts[i])
		inv := 1 / math32.Sqrt(d.LengthSq())
		dl.normals = append(dl.normals, arc.Point{X: -d.Y * inv, Y: d.X * inv})
	}

	half := thickness * 0.5
	dl.verts = dl.verts[:0]
	for i, p := range pts {
		var nrm arc.Point
		switch {
		case closed:
			nrm = miter(dl.normals[(i+n-1)%n], dl.normals[i])
		case i == 0:
			nrm = dl.normals[0]
		case i == n-1:
			nrm = dl.normals[n-2]
		default:
			nrm = miter(dl.normals[i-1], dl.normals[i])
		}
		off := nrm.Mul(half)
		dl.verts = append(dl.verts,
			Vertex{Pos: [2]float32{p.X + off.X, p.Y + off.Y}, Color: color},
			Vertex{Pos: [2]float32{p.X - off.X, p.Y - off.Y}, Color: color},
		)
	}

	if closed {
		dl.verts = append(dl.verts, dl.verts[0], dl.verts[1])
	}
	dl.addStrip(dl.verts)
}

// AddConvexPolyFilled fills a convex polygon as a triangle fan.
func (dl *DrawList) AddConvexPolyFilled(points []arc.Point, color uint32) {
	if color&0xFF000000 == 0 || len(points) < 3 {
		return
	}

	dl.verts = dl.verts[:0]
	for _, p := range points {
		dl.verts = append(dl.verts, Vertex{Pos: [2]float32{p.X, p.Y}, Color: color})
	}
	dl.addFan(dl.verts)
}

// AddBezierCubic strokes a cubic Bezier curve.
func (dl *DrawList) AddBezierCubic(b arc.Bezier, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.path = append(dl.path[:0], b.P1)
	dl.path = b.Flatten(dl.path, CurveTessellationTol)
	dl.AddPolyline(dl.path, color, thickness, false)
}

// AddArc strokes the arc of the circle around center from angle start to
// angle end, in radians. Angles grow counter-clockwise on screen, so 0 is
// east and pi/2 is straight up. The sweep is taken literally: a sweep beyond
// a full turn overlaps itself.
func (dl *DrawList) AddArc(center Vec2, radius, start, end float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 || radius <= 0 {
		return
	}
	dl.path = dl.pathArc(dl.path[:0], center, radius, start, end)
	dl.AddPolyline(dl.path, color, thickness, false)
}

// AddCircle strokes a full circle.
func (dl *DrawList) AddCircle(center Vec2, radius float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 || radius <= 0 {
		return
	}
	dl.path = dl.pathArc(dl.path[:0], center, radius, 0, 2*math32.Pi)
	dl.AddPolyline(dl.path, color, thickness, true)
}

// AddCircleFilled fills a full circle.
func (dl *DrawList) AddCircleFilled(center Vec2, radius float32, color uint32) {
	if color&0xFF000000 == 0 || radius <= 0 {
		return
	}
	dl.path = dl.pathArc(dl.path[:0], center, radius, 0, 2*math32.Pi)
	dl.AddConvexPolyFilled(dl.path, color)
}

// AddRectFilledRounded fills a rectangle whose corners are quarter circles.
// rounding is clamped to half the shorter side; a rounding below half a
// pixel draws a plain rectangle.
func (dl *DrawList) AddRectFilledRounded(x, y, w, h, rounding float32, color uint32) {
	if color&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	r := minf(rounding, minf(w, h)*0.5)
	if r < 0.5 {
		dl.AddRect(x, y, w, h, color)
		return
	}

	const q = arc.QuarterTurn
	p := dl.path[:0]
	p = dl.pathArc(p, Vec2{x + r, y + r}, r, 2*q, q)
	p = dl.pathArc(p, Vec2{x + w - r, y + r}, r, q, 0)
	p = dl.pathArc(p, Vec2{x + w - r, y + h - r}, r, 0, -q)
	p = dl.pathArc(p, Vec2{x + r, y + h - r}, r, -q, -2*q)
	dl.path = p
	dl.AddConvexPolyFilled(dl.path, color)
}

// pathArc appends the flattened arc to dst, starting with its first point.
func (dl *DrawList) pathArc(dst []arc.Point, center Vec2, radius, start, end float32) []arc.Point {
	first := true
	for b := range arc.Beziers(center.Point(), radius, start, end) {
		if first {
			dst = append(dst, b.P1)
			first = false
		}
		dst = b.Flatten(dst, CurveTessellationTol)
	}
	return dst
}

// miter averages two unit normals and stretches the result so the stroke
// keeps its width through the joint.
func miter(a, b arc.Point) arc.Point {
	dm := a.Add(b).Mul(0.5)
	d2 := dm.LengthSq()
	if d2 < 1e-6 {
		return a
	}
	s := 1 / d2
	if s > maxMiter*maxMiter {
		s = maxMiter * maxMiter
	}
	return dm.Mul(s)
}

func appendDistinct(dst, points []arc.Point) []arc.Point {
	for _, p := range points {
		if len(dst) > 0 && nearlyEqual(dst[len(dst)-1], p) {
			continue
		}
		dst = append(dst, p)
	}
	return dst
}

func nearlyEqual(a, b arc.Point) bool {
	return a.Sub(b).LengthSq() < 1e-6
}
