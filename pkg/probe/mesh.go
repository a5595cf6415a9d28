// Package probe runs cutter queries against whole meshes.
package probe

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gocut/pkg/cutter"
	"github.com/philipparndt/gocut/pkg/geometry"
)

// ErrEmptyMesh is returned for meshes without triangles
var ErrEmptyMesh = errors.New("mesh has no triangles")

// Mesh is a read-only triangle set with a spatial index
type Mesh struct {
	triangles []geometry.Triangle
	index     *Index
	bounds    geometry.BoundingBox
}

// Result is the nearest contact over a mesh and the triangle producing it.
// Triangle is -1 when nothing was touched.
type Result struct {
	Contact  cutter.Contact
	Triangle int
}

// NewMesh indexes triangles. The slice must not be modified afterwards.
func NewMesh(triangles []geometry.Triangle) (*Mesh, error) {
	if len(triangles) == 0 {
		return nil, ErrEmptyMesh
	}
	index, err := NewIndex(triangles)
	if err != nil {
		return nil, fmt.Errorf("failed to build index: %w", err)
	}
	bounds := geometry.NewBoundingBox()
	for i := range triangles {
		b := triangles[i].Bounds()
		bounds.Extend(b.Min)
		bounds.Extend(b.Max)
	}
	return &Mesh{triangles: triangles, index: index, bounds: bounds}, nil
}

// Len returns the number of triangles
func (m *Mesh) Len() int {
	return len(m.triangles)
}

// Bounds returns the bounding box of all triangles
func (m *Mesh) Bounds() geometry.BoundingBox {
	return m.bounds
}

// Triangle returns the triangle with the given id
func (m *Mesh) Triangle(id int) *geometry.Triangle {
	return &m.triangles[id]
}

// Nearest moves the cutter from start along direction and returns the
// contact with the smallest signed distance over all triangles. Ties keep
// the triangle with the lower id.
//
// Vertical moves only consult triangles under the cutter's footprint; other
// moves scan the whole mesh.
func (m *Mesh) Nearest(c *cutter.Cutter, direction, start geometry.Vector3) Result {
	best := Result{Contact: cutter.NoContact(), Triangle: -1}
	visit := func(id int) {
		contact := c.IntersectFrom(direction, &m.triangles[id], start)
		if contact.Distance() < best.Contact.Distance() {
			best = Result{Contact: contact, Triangle: id}
		}
	}

	if direction.Horizontal().Length() > geometry.Epsilon*direction.Length() {
		for id := range m.triangles {
			visit(id)
		}
		return best
	}
	for _, id := range m.index.Search(c.FootprintAt(start)) {
		visit(id)
	}
	return best
}

// Drop lowers the cutter vertically through start onto the mesh and returns
// the resting tip location
func (m *Mesh) Drop(c *cutter.Cutter, start geometry.Vector3) (geometry.Vector3, bool) {
	return m.Nearest(c, geometry.Down, start).Contact.Location()
}
