package cutter

import (
	"github.com/philipparndt/gocut/pkg/geometry"
	"github.com/philipparndt/gocut/pkg/intersection"
)

// The profile circle of a circular cutter stands upright in the plane normal
// to the X axis.
func (c *Cutter) visitCircular(q *query) {
	profile := intersection.Disk{Center: q.center, Axis: geometry.AxisX, Radius: c.distanceRadius}

	q.face(intersection.DiskPlane(profile, q.dir, q.tri.Plane()))
	for i, edge := range q.tri.Edges() {
		q.emit(Edge, i, q.contact(intersection.DiskLine(profile, q.dir, edge)))
	}
	for i, p := range q.tri.Vertices() {
		q.emit(Vertex, i, q.contact(intersection.DiskPoint(profile, q.dir, p)))
	}

	if !q.sideways() {
		return
	}
	// silhouette of the tool seen along the profile axis, cut off below the
	// circle center where the circle itself is the outline
	silhouette := intersection.Rectangle{
		Center:    q.center,
		Normal:    geometry.AxisX,
		Width:     geometry.AxisY,
		HalfWidth: c.distanceRadius,
		Bottom:    0,
		Top:       c.tipZ(q.center) + c.height - q.center.Z,
	}
	for i, edge := range q.tri.Edges() {
		q.emit(SideEdge, i, q.contact(intersection.RectangleLine(silhouette, q.dir, edge)))
	}
	for i, p := range q.tri.Vertices() {
		q.emit(SideVertex, i, q.contact(intersection.RectanglePoint(silhouette, q.dir, p)))
	}
}
