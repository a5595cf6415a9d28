package intersection

import (
	"github.com/philipparndt/gocut/pkg/geometry"
)

// Sphere is a ball-shaped cutter part
type Sphere struct {
	Center geometry.Vector3
	Radius float64
}

// SpherePlane finds where the sphere first touches a plane
func SpherePlane(sphere Sphere, direction geometry.Vector3, plane geometry.Plane) (Hit, bool) {
	n := facing(plane.Normal, direction)
	plane.Normal = n
	ccp := sphere.Center.Sub(n.Mul(sphere.Radius))
	cp, l, ok := plane.IntersectPoint(direction, ccp)
	if !ok {
		return Hit{}, false
	}
	return Hit{CutterPoint: ccp, SurfacePoint: cp, Distance: l}, true
}

// SpherePoint finds where the sphere surface first reaches a point
func SpherePoint(sphere Sphere, direction, point geometry.Vector3) (Hit, bool) {
	w := point.Sub(sphere.Center)
	b := w.Dot(direction)
	c := w.LengthSq() - sphere.Radius*sphere.Radius
	l, ok := lowerRoot(1, -2*b, c)
	if !ok {
		return Hit{}, false
	}
	return newHit(point, direction, l)
}

// SphereLine finds where the sphere first touches the interior of a segment
func SphereLine(sphere Sphere, direction geometry.Vector3, edge geometry.Line) (Hit, bool) {
	if edge.Len == 0 {
		return Hit{}, false
	}
	w := sphere.Center.Sub(edge.P1)
	u := w.Cross(edge.Dir)
	v := direction.Cross(edge.Dir)
	l, ok := lowerRoot(v.Dot(v), 2*u.Dot(v), u.Dot(u)-sphere.Radius*sphere.Radius)
	if !ok {
		return Hit{}, false
	}
	moved := sphere.Center.Add(direction.Mul(l))
	s := edge.Dir.Dot(moved.Sub(edge.P1))
	if !edge.Interior(s) {
		return Hit{}, false
	}
	cp := edge.PointAt(s)
	return Hit{CutterPoint: cp.Sub(direction.Mul(l)), SurfacePoint: cp, Distance: l}, true
}
