package intersection

import (
	"math"

	"github.com/philipparndt/gocut/pkg/geometry"
)

// Cylinder is the vertical side wall of a cutter between two absolute heights
type Cylinder struct {
	Center geometry.Vector3 // any point on the axis
	Radius float64
	Bottom float64
	Top    float64
}

func (c Cylinder) covers(z float64) bool {
	return z >= c.Bottom && z <= c.Top
}

// CylinderPoint finds where the side wall first reaches a point. Only the
// horizontal part of the direction moves the wall towards the point.
func CylinderPoint(cyl Cylinder, direction, point geometry.Vector3) (Hit, bool) {
	dh := direction.Horizontal()
	w := point.Sub(cyl.Center).Horizontal()
	l, ok := lowerRoot(dh.LengthSq(), -2*w.Dot(dh), w.LengthSq()-cyl.Radius*cyl.Radius)
	if !ok {
		return Hit{}, false
	}
	hit, ok := newHit(point, direction, l)
	if !ok || !cyl.covers(hit.CutterPoint.Z) {
		return Hit{}, false
	}
	return hit, true
}

// CylinderLine finds where the side wall first touches the interior of a
// segment. Vertical segments are left to their endpoints.
func CylinderLine(cyl Cylinder, direction geometry.Vector3, edge geometry.Line) (Hit, bool) {
	span := edge.Vector()
	eh := span.Horizontal()
	if eh.Length() < geometry.Epsilon {
		return Hit{}, false
	}
	// unit normal of the segment's footprint in the XY plane
	n := geometry.Vector3{X: -eh.Y, Y: eh.X}.Normalize()
	k := n.Dot(direction)
	if math.Abs(k) < geometry.Epsilon {
		return Hit{}, false
	}
	f0 := n.Dot(cyl.Center.Sub(edge.P1))
	side := 1.0
	l := (cyl.Radius - f0) / k
	if other := (-cyl.Radius - f0) / k; other < l {
		l, side = other, -1
	}

	foot := cyl.Center.Add(direction.Mul(l)).Sub(n.Mul(side * cyl.Radius))
	frac := foot.Sub(edge.P1).Horizontal().Dot(eh) / eh.LengthSq()
	if !edge.Interior(frac * edge.Len) {
		return Hit{}, false
	}
	hit, ok := newHit(edge.P1.Add(span.Mul(frac)), direction, l)
	if !ok || !cyl.covers(hit.CutterPoint.Z) {
		return Hit{}, false
	}
	return hit, true
}
