package probe

import (
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/philipparndt/gocut/pkg/geometry"
)

// R-tree branching factors
const (
	minChildren = 25
	maxChildren = 50
)

// padding widens every rectangle so flat and touching boxes still intersect
const padding = geometry.Epsilon

// Index is a 2-D R-tree over the XY bounds of a triangle list
type Index struct {
	tree *rtreego.Rtree
	size int
}

type entry struct {
	id   int
	rect rtreego.Rect
}

func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// NewIndex bulk-loads the XY bounds of triangles
func NewIndex(triangles []geometry.Triangle) (*Index, error) {
	items := make([]rtreego.Spatial, 0, len(triangles))
	for i := range triangles {
		rect, err := xyRect(triangles[i].Bounds())
		if err != nil {
			return nil, fmt.Errorf("failed to index triangle %d: %w", i, err)
		}
		items = append(items, &entry{id: i, rect: rect})
	}
	return &Index{
		tree: rtreego.NewTree(2, minChildren, maxChildren, items...),
		size: len(items),
	}, nil
}

// Len returns the number of indexed triangles
func (ix *Index) Len() int {
	return ix.size
}

// Search returns the ids of triangles whose XY bounds touch area, in
// ascending order
func (ix *Index) Search(area geometry.BoundingBox) []int {
	rect, err := xyRect(area)
	if err != nil {
		return nil
	}
	found := ix.tree.SearchIntersect(rect)
	ids := make([]int, 0, len(found))
	for _, s := range found {
		ids = append(ids, s.(*entry).id)
	}
	sort.Ints(ids)
	return ids
}

func xyRect(b geometry.BoundingBox) (rtreego.Rect, error) {
	return rtreego.NewRectFromPoints(
		rtreego.Point{b.Min.X - padding, b.Min.Y - padding},
		rtreego.Point{b.Max.X + padding, b.Max.Y + padding},
	)
}
