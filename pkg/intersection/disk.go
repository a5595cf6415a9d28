package intersection

import (
	"math"

	"github.com/philipparndt/gocut/pkg/geometry"
)

// Disk is a flat circular cutter part
type Disk struct {
	Center geometry.Vector3
	Axis   geometry.Vector3 // unit normal of the disk plane
	Radius float64
}

func (d Disk) plane() geometry.Plane {
	return geometry.Plane{Point: d.Center, Normal: d.Axis}
}

// inside reports whether p, lying in the disk plane, is strictly inside the rim
func (d Disk) inside(p geometry.Vector3) bool {
	return p.Sub(d.Center).LengthSq() < d.Radius*d.Radius-geometry.Epsilon
}

// DiskPlane finds where the rim of the disk first meets a plane
func DiskPlane(disk Disk, direction geometry.Vector3, plane geometry.Plane) (Hit, bool) {
	n := facing(plane.Normal, direction)
	plane.Normal = n
	m := n.Sub(disk.Axis.Mul(n.Dot(disk.Axis)))
	ccp := disk.Center
	if m.Length() > geometry.Epsilon {
		ccp = disk.Center.Sub(m.Normalize().Mul(disk.Radius))
	}
	cp, l, ok := plane.IntersectPoint(direction, ccp)
	if !ok {
		return Hit{}, false
	}
	return Hit{CutterPoint: ccp, SurfacePoint: cp, Distance: l}, true
}

// DiskPoint finds where the disk first covers a point
func DiskPoint(disk Disk, direction, point geometry.Vector3) (Hit, bool) {
	along := disk.Axis.Dot(direction)
	if math.Abs(along) <= geometry.Epsilon {
		// sweeping within the disk plane: only points of that plane can be met
		if math.Abs(disk.plane().SignedDistance(point)) > geometry.Epsilon {
			return Hit{}, false
		}
		return SpherePoint(Sphere{Center: disk.Center, Radius: disk.Radius}, direction, point)
	}
	l := disk.Axis.Dot(point.Sub(disk.Center)) / along
	if !disk.inside(point.Sub(direction.Mul(l))) {
		return Hit{}, false
	}
	return newHit(point, direction, l)
}

// DiskLine finds where the rim of the disk first meets the interior of a segment
func DiskLine(disk Disk, direction geometry.Vector3, edge geometry.Line) (Hit, bool) {
	if edge.Len == 0 {
		return Hit{}, false
	}
	along := disk.Axis.Dot(direction)
	if math.Abs(along) <= geometry.Epsilon {
		return diskLineInPlane(disk, direction, edge)
	}

	// project both endpoints along the direction into the disk plane
	t0 := disk.Axis.Dot(edge.P1.Sub(disk.Center)) / along
	t1 := disk.Axis.Dot(edge.P2.Sub(disk.Center)) / along
	q0 := edge.P1.Sub(direction.Mul(t0))
	q1 := edge.P2.Sub(direction.Mul(t1))
	span := q1.Sub(q0)
	w := q0.Sub(disk.Center)

	a := span.LengthSq()
	b := 2 * span.Dot(w)
	c := w.LengthSq() - disk.Radius*disk.Radius
	disc := b*b - 4*a*c
	if a < geometry.Epsilon*geometry.Epsilon || disc < 0 {
		return Hit{}, false
	}
	sq := math.Sqrt(disc)
	s := (-b - sq) / (2 * a)
	if other := (-b + sq) / (2 * a); t0+other*(t1-t0) < t0+s*(t1-t0) {
		s = other
	}
	if !edge.Interior(s * edge.Len) {
		return Hit{}, false
	}
	cp := edge.P1.Add(edge.Vector().Mul(s))
	return newHit(cp, direction, t0+s*(t1-t0))
}

func diskLineInPlane(disk Disk, direction geometry.Vector3, edge geometry.Line) (Hit, bool) {
	plane := disk.plane()
	d1 := plane.SignedDistance(edge.P1)
	d2 := plane.SignedDistance(edge.P2)
	if math.Abs(d1) <= geometry.Epsilon && math.Abs(d2) <= geometry.Epsilon {
		return SphereLine(Sphere{Center: disk.Center, Radius: disk.Radius}, direction, edge)
	}
	if d1*d2 >= 0 {
		return Hit{}, false
	}
	s := d1 / (d1 - d2)
	if !edge.Interior(s * edge.Len) {
		return Hit{}, false
	}
	pierce := edge.P1.Add(edge.Vector().Mul(s))
	return SpherePoint(Sphere{Center: disk.Center, Radius: disk.Radius}, direction, pierce)
}
