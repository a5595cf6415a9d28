package intersection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gocut/pkg/geometry"
)

const tol = 1e-9

func v(x, y, z float64) geometry.Vector3 {
	return geometry.NewVector3(x, y, z)
}

func assertVector(t *testing.T, expected, actual geometry.Vector3) {
	t.Helper()
	assert.True(t, expected.ApproxEqual(actual, tol), "expected %v, got %v", expected, actual)
}

func TestDiskPlane(t *testing.T) {
	disk := Disk{Center: v(3, 0, 2.5), Axis: geometry.AxisX, Radius: 0.5}
	tri := geometry.NewTriangle(v(-2, 2, 1), v(2, 0, 3), v(-2, -2, 1))

	hit, ok := DiskPlane(disk, v(-1, 0, 0), tri.Plane())
	require.True(t, ok)
	assert.InDelta(t, 3.0, hit.Distance, tol)
	assertVector(t, v(3, 0, 2), hit.CutterPoint)
	assertVector(t, v(0, 0, 2), hit.SurfacePoint)

	// a flipped normal describes the same face
	plane := tri.Plane()
	plane.Normal = plane.Normal.Neg()
	flipped, ok := DiskPlane(disk, v(-1, 0, 0), plane)
	require.True(t, ok)
	assert.InDelta(t, hit.Distance, flipped.Distance, tol)
}

func TestDiskPlaneParallel(t *testing.T) {
	disk := Disk{Center: v(0, 0, 0.5), Axis: geometry.AxisX, Radius: 0.5}
	plane := geometry.NewPlane(v(0, 0, 0), geometry.AxisX)

	_, ok := DiskPlane(disk, geometry.Down, plane)
	assert.False(t, ok)
}

func TestDiskPoint(t *testing.T) {
	disk := Disk{Center: v(0, 0, 0), Axis: geometry.AxisZ, Radius: 1}

	hit, ok := DiskPoint(disk, geometry.Down, v(0.5, 0, 2))
	require.True(t, ok)
	assert.InDelta(t, -2.0, hit.Distance, tol)
	assertVector(t, v(0.5, 0, 0), hit.CutterPoint)

	_, ok = DiskPoint(disk, geometry.Down, v(1, 0, 2))
	assert.False(t, ok, "a point on the rim only grazes the disk")
}

func TestDiskPointInPlane(t *testing.T) {
	disk := Disk{Center: v(0, 0, 0.5), Axis: geometry.AxisX, Radius: 0.5}

	hit, ok := DiskPoint(disk, geometry.Down, v(0, 0, 3))
	require.True(t, ok)
	assert.InDelta(t, -3.0, hit.Distance, tol)
	assertVector(t, v(0, 0, 0), hit.CutterPoint)

	_, ok = DiskPoint(disk, geometry.Down, v(1, 0, 3))
	assert.False(t, ok, "points off the sweep plane are never met")
}

func TestDiskLine(t *testing.T) {
	disk := Disk{Center: v(0, 0, 0), Axis: geometry.AxisZ, Radius: 1}
	edge := geometry.NewLine(v(-2, 2, 1), v(2, 0, 3))

	hit, ok := DiskLine(disk, geometry.Down, edge)
	require.True(t, ok)
	assert.InDelta(t, -2.4, hit.Distance, tol)
	assertVector(t, v(0.8, 0.6, 2.4), hit.SurfacePoint)
	assertVector(t, v(0.8, 0.6, 0), hit.CutterPoint)
}

func TestDiskLineEndpointIsNotAnEdgeContact(t *testing.T) {
	disk := Disk{Center: v(3, 0, 2.5), Axis: geometry.AxisX, Radius: 0.5}

	for _, edge := range []geometry.Line{
		geometry.NewLine(v(-2, 2, 1), v(2, 0, 3)),
		geometry.NewLine(v(2, 0, 3), v(-2, -2, 1)),
		geometry.NewLine(v(-2, -2, 1), v(-2, 2, 1)),
	} {
		_, ok := DiskLine(disk, v(-1, 0, 0), edge)
		assert.False(t, ok, "edge %v", edge)
	}
}

func TestDiskLineInPlane(t *testing.T) {
	disk := Disk{Center: v(0, 0, 0.5), Axis: geometry.AxisX, Radius: 0.5}

	t.Run("pierce", func(t *testing.T) {
		hit, ok := DiskLine(disk, geometry.Down, geometry.NewLine(v(-1, 0, 2), v(1, 0, 4)))
		require.True(t, ok)
		assert.InDelta(t, -3.0, hit.Distance, tol)
		assertVector(t, v(0, 0, 3), hit.SurfacePoint)
	})

	t.Run("lying in the plane", func(t *testing.T) {
		hit, ok := DiskLine(disk, geometry.Down, geometry.NewLine(v(0, -2, 1), v(0, 2, 1)))
		require.True(t, ok)
		assert.InDelta(t, -1.0, hit.Distance, tol)
		assertVector(t, v(0, 0, 1), hit.SurfacePoint)
	})

	t.Run("not crossing", func(t *testing.T) {
		_, ok := DiskLine(disk, geometry.Down, geometry.NewLine(v(1, -2, 1), v(1, 2, 1)))
		assert.False(t, ok)
	})
}
