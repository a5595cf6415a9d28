package cutter

import (
	"github.com/philipparndt/gocut/pkg/intersection"
)

func (c *Cutter) visitSpherical(q *query) {
	ball := intersection.Sphere{Center: q.center, Radius: c.distanceRadius}

	q.face(intersection.SpherePlane(ball, q.dir, q.tri.Plane()))
	for i, edge := range q.tri.Edges() {
		q.emit(Edge, i, q.contact(intersection.SphereLine(ball, q.dir, edge)))
	}
	for i, p := range q.tri.Vertices() {
		q.emit(Vertex, i, q.contact(intersection.SpherePoint(ball, q.dir, p)))
	}

	if !q.sideways() {
		return
	}
	// the shank continues the ball above its equator
	c.visitShank(q, intersection.Cylinder{
		Center: q.center,
		Radius: c.distanceRadius,
		Bottom: q.center.Z,
		Top:    c.tipZ(q.center) + c.height,
	})
}
