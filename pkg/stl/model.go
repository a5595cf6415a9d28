package stl

import (
	"github.com/philipparndt/gocut/pkg/geometry"
)

// Model is a triangulated surface loaded from an STL file
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle appends a facet given by its corners in file order
func (m *Model) AddTriangle(p1, p2, p3 geometry.Vector3) {
	m.Triangles = append(m.Triangles, geometry.NewTriangle(p1, p2, p3))
}

// TriangleCount returns the number of facets
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// DegenerateCount returns the number of facets without area
func (m *Model) DegenerateCount() int {
	count := 0
	for i := range m.Triangles {
		if m.Triangles[i].IsDegenerate() {
			count++
		}
	}
	return count
}

// BoundingBox returns the bounds of all facets
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for i := range m.Triangles {
		b := m.Triangles[i].Bounds()
		bbox.Extend(b.Min)
		bbox.Extend(b.Max)
	}
	return bbox
}

// SurfaceArea returns the summed area of all facets
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for i := range m.Triangles {
		totalArea += m.Triangles[i].Area()
	}
	return totalArea
}
