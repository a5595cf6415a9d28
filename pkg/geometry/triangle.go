package geometry

import "math"

// Triangle represents a triangular facet in 3D space.
// E1 spans P1->P2, E2 spans P2->P3 and E3 spans P3->P1. A Triangle is built
// once by NewTriangle and treated as read-only afterwards.
type Triangle struct {
	P1, P2, P3 Vector3
	E1, E2, E3 Line

	normal Vector3
	center Vector3
	radius float64
	bounds BoundingBox
}

// NewTriangle creates a triangle and derives its edges, normal and bounds
func NewTriangle(p1, p2, p3 Vector3) Triangle {
	t := Triangle{
		P1: p1,
		P2: p2,
		P3: p3,
		E1: NewLine(p1, p2),
		E2: NewLine(p2, p3),
		E3: NewLine(p3, p1),
	}
	t.normal = p3.Sub(p1).Cross(p2.Sub(p1)).Normalize()
	t.center = Vector3{
		X: (p1.X + p2.X + p3.X) / 3.0,
		Y: (p1.Y + p2.Y + p3.Y) / 3.0,
		Z: (p1.Z + p2.Z + p3.Z) / 3.0,
	}
	t.radius = math.Max(t.center.Distance(p1), math.Max(t.center.Distance(p2), t.center.Distance(p3)))
	t.bounds = NewBoundingBox()
	t.bounds.Extend(p1)
	t.bounds.Extend(p2)
	t.bounds.Extend(p3)
	return t
}

// Vertices returns the three corners in winding order
func (t *Triangle) Vertices() [3]Vector3 {
	return [3]Vector3{t.P1, t.P2, t.P3}
}

// Edges returns the three directed edges in winding order
func (t *Triangle) Edges() [3]Line {
	return [3]Line{t.E1, t.E2, t.E3}
}

// Normal returns the unit normal, or the zero vector for a degenerate triangle
func (t *Triangle) Normal() Vector3 {
	return t.normal
}

// Plane returns the supporting plane of the triangle
func (t *Triangle) Plane() Plane {
	return Plane{Point: t.P1, Normal: t.normal}
}

// Center returns the centroid of the triangle
func (t *Triangle) Center() Vector3 {
	return t.center
}

// Middle returns the center of the bounding sphere described by Radius
func (t *Triangle) Middle() Vector3 {
	return t.center
}

// Radius returns the radius of a sphere around Middle enclosing all vertices
func (t *Triangle) Radius() float64 {
	return t.radius
}

// Bounds returns the axis-aligned bounding box of the triangle
func (t *Triangle) Bounds() BoundingBox {
	return t.bounds
}

// IsDegenerate reports whether the triangle has no usable area
func (t *Triangle) IsDegenerate() bool {
	return t.normal.IsZero()
}

// Area returns the surface area of the triangle
func (t *Triangle) Area() float64 {
	return t.P2.Sub(t.P1).Cross(t.P3.Sub(t.P1)).Length() / 2.0
}

// EdgeLengths returns the lengths of all three edges
func (t *Triangle) EdgeLengths() [3]float64 {
	return [3]float64{t.E1.Len, t.E2.Len, t.E3.Len}
}

// Perimeter returns the total length of all edges
func (t *Triangle) Perimeter() float64 {
	return t.E1.Len + t.E2.Len + t.E3.Len
}

// Angles returns the three interior angles in radians
func (t *Triangle) Angles() [3]float64 {
	angle := func(a, b Vector3) float64 {
		cos := a.Dot(b)
		return math.Acos(math.Max(-1, math.Min(1, cos)))
	}
	return [3]float64{
		angle(t.E1.Dir, t.E3.Dir.Neg()),
		angle(t.E1.Dir.Neg(), t.E2.Dir),
		angle(t.E2.Dir.Neg(), t.E3.Dir),
	}
}

// IsPointInside reports whether p, assumed to lie in the triangle's plane,
// falls inside the triangle or on its boundary.
// Degenerate triangles contain no points.
func (t *Triangle) IsPointInside(p Vector3) bool {
	v0 := t.P3.Sub(t.P1)
	v1 := t.P2.Sub(t.P1)
	v2 := p.Sub(t.P1)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if math.Abs(denom) < Epsilon*Epsilon {
		return false
	}
	u := (dot11*dot02 - dot01*dot12) / denom
	v := (dot00*dot12 - dot01*dot02) / denom
	return u >= -Epsilon && v >= -Epsilon && u+v <= 1+Epsilon
}
