package intersection

import (
	"math"

	"github.com/philipparndt/gocut/pkg/geometry"
)

// Rectangle is the flat silhouette of a cutter in a profile plane.
// Width and Normal are unit vectors; the vertical extent runs from Bottom to
// Top along Normal x Width, measured from Center.
type Rectangle struct {
	Center    geometry.Vector3
	Normal    geometry.Vector3
	Width     geometry.Vector3
	HalfWidth float64
	Bottom    float64
	Top       float64
}

func (r Rectangle) up() geometry.Vector3 {
	return r.Normal.Cross(r.Width)
}

// RectanglePoint finds where the rectangle first covers a point.
// Points on the sides or the top are not covered; the bottom line is, so a
// point exactly at Bottom still counts.
func RectanglePoint(rect Rectangle, direction, point geometry.Vector3) (Hit, bool) {
	along := rect.Normal.Dot(direction)
	if math.Abs(along) <= geometry.Epsilon {
		return Hit{}, false
	}
	l := rect.Normal.Dot(point.Sub(rect.Center)) / along
	q := point.Sub(direction.Mul(l)).Sub(rect.Center)
	u := q.Dot(rect.Width)
	v := q.Dot(rect.up())
	if math.Abs(u) >= rect.HalfWidth-geometry.Epsilon ||
		v < rect.Bottom-geometry.Epsilon || v >= rect.Top-geometry.Epsilon {
		return Hit{}, false
	}
	return newHit(point, direction, l)
}

// RectangleLine finds where the long sides of the rectangle first meet the
// interior of a segment. A segment entering through the top or bottom of the
// rectangle is not a side contact.
func RectangleLine(rect Rectangle, direction geometry.Vector3, edge geometry.Line) (Hit, bool) {
	along := rect.Normal.Dot(direction)
	if edge.Len == 0 || math.Abs(along) <= geometry.Epsilon {
		return Hit{}, false
	}
	t0 := rect.Normal.Dot(edge.P1.Sub(rect.Center)) / along
	t1 := rect.Normal.Dot(edge.P2.Sub(rect.Center)) / along
	q0 := edge.P1.Sub(direction.Mul(t0)).Sub(rect.Center)
	q1 := edge.P2.Sub(direction.Mul(t1)).Sub(rect.Center)
	span := q1.Sub(q0)
	if span.LengthSq() < geometry.Epsilon*geometry.Epsilon {
		return Hit{}, false
	}

	up := rect.up()
	u0, du := q0.Dot(rect.Width), span.Dot(rect.Width)
	v0, dv := q0.Dot(up), span.Dot(up)

	c := clip{lo: math.Inf(-1), hi: math.Inf(1)}
	c.bound(du, rect.HalfWidth-u0, true)
	c.bound(-du, rect.HalfWidth+u0, true)
	c.bound(dv, rect.Top-v0, false)
	c.bound(-dv, v0-rect.Bottom, false)
	if c.empty || c.lo > c.hi {
		return Hit{}, false
	}

	dt := t1 - t0
	var s float64
	var onSide bool
	switch {
	case dt > geometry.Epsilon:
		s, onSide = c.lo, c.loSide
	case dt < -geometry.Epsilon:
		s, onSide = c.hi, c.hiSide
	case c.loSide:
		s, onSide = c.lo, true
	default:
		s, onSide = c.hi, c.hiSide
	}
	if !onSide || math.IsInf(s, 0) || !edge.Interior(s*edge.Len) {
		return Hit{}, false
	}
	return newHit(edge.P1.Add(edge.Vector().Mul(s)), direction, t0+s*dt)
}

// clip narrows a parameter interval by half-planes p*s <= q, remembering
// whether each end was set by a side of the rectangle
type clip struct {
	lo, hi         float64
	loSide, hiSide bool
	empty          bool
}

func (c *clip) bound(p, q float64, side bool) {
	if math.Abs(p) < geometry.Epsilon*geometry.Epsilon {
		if q < 0 {
			c.empty = true
		}
		return
	}
	r := q / p
	if p < 0 {
		if r > c.lo {
			c.lo, c.loSide = r, side
		}
		return
	}
	if r < c.hi {
		c.hi, c.hiSide = r, side
	}
}
