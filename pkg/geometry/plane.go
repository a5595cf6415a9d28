package geometry

import "math"

// Plane is defined by a point on it and a unit normal
type Plane struct {
	Point  Vector3
	Normal Vector3
}

// NewPlane creates a plane, normalizing the given normal
func NewPlane(point, normal Vector3) Plane {
	return Plane{Point: point, Normal: normal.Normalize()}
}

// SignedDistance returns the distance of p above the plane along its normal
func (p Plane) SignedDistance(point Vector3) float64 {
	return p.Normal.Dot(point.Sub(p.Point))
}

// IntersectPoint moves point along direction until it meets the plane.
// It returns the meeting point and the signed travel in units of direction.
// Directions parallel to the plane report false.
func (p Plane) IntersectPoint(direction, point Vector3) (Vector3, float64, bool) {
	denom := p.Normal.Dot(direction)
	if math.Abs(denom) < Epsilon {
		return Vector3{}, 0, false
	}
	l := p.Normal.Dot(p.Point.Sub(point)) / denom
	return point.Add(direction.Mul(l)), l, true
}
