package cutter

import (
	"github.com/philipparndt/gocut/pkg/geometry"
	"github.com/philipparndt/gocut/pkg/intersection"
)

func (c *Cutter) visitCylindrical(q *query) {
	disk := intersection.Disk{Center: q.center, Axis: geometry.AxisZ, Radius: c.distanceRadius}

	q.face(intersection.DiskPlane(disk, q.dir, q.tri.Plane()))
	for i, edge := range q.tri.Edges() {
		q.emit(Edge, i, q.contact(intersection.DiskLine(disk, q.dir, edge)))
	}
	for i, p := range q.tri.Vertices() {
		q.emit(Vertex, i, q.contact(intersection.DiskPoint(disk, q.dir, p)))
	}

	if !q.sideways() {
		return
	}
	shank := intersection.Cylinder{
		Center: q.center,
		Radius: c.distanceRadius,
		Bottom: q.center.Z,
		Top:    c.tipZ(q.center) + c.height,
	}
	c.visitShank(q, shank)
}

// visitShank checks the straight tool wall against edges and corners
func (c *Cutter) visitShank(q *query, shank intersection.Cylinder) {
	for i, edge := range q.tri.Edges() {
		q.emit(SideEdge, i, q.contact(intersection.CylinderLine(shank, q.dir, edge)))
	}
	for i, p := range q.tri.Vertices() {
		q.emit(SideVertex, i, q.contact(intersection.CylinderPoint(shank, q.dir, p)))
	}
}
