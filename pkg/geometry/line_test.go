package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLine(t *testing.T) {
	l := NewLine(NewVector3(0, 0, 0), NewVector3(0, 3, 4))

	assert.InDelta(t, 5.0, l.Len, 1e-12)
	assert.True(t, NewVector3(0, 0.6, 0.8).ApproxEqual(l.Dir, 1e-12))
	assert.True(t, NewVector3(0, 0.6, 0.8).ApproxEqual(l.PointAt(1), 1e-12))
	assert.True(t, NewVector3(0, 3, 4).ApproxEqual(l.ClosestPoint(NewVector3(7, 3, 4)), 1e-12))
}

func TestLineInterior(t *testing.T) {
	l := NewLine(NewVector3(0, 0, 0), NewVector3(2, 0, 0))

	assert.True(t, l.Interior(1))
	assert.False(t, l.Interior(0))
	assert.False(t, l.Interior(2))
	assert.False(t, l.Interior(-1))
}

func TestLineZeroLength(t *testing.T) {
	l := NewLine(NewVector3(1, 1, 1), NewVector3(1, 1, 1))

	assert.Equal(t, 0.0, l.Len)
	assert.True(t, l.Dir.IsZero())
	assert.False(t, l.Interior(0))
}

func TestPlaneIntersectPoint(t *testing.T) {
	p := NewPlane(NewVector3(0, 0, 3), NewVector3(0, 0, 2))

	hit, l, ok := p.IntersectPoint(Down, NewVector3(1, 1, 0))
	assert.True(t, ok)
	assert.InDelta(t, -3.0, l, 1e-12)
	assert.True(t, NewVector3(1, 1, 3).ApproxEqual(hit, 1e-12))
	assert.InDelta(t, 2.0, p.SignedDistance(NewVector3(0, 0, 5)), 1e-12)

	_, _, ok = p.IntersectPoint(AxisX, NewVector3(1, 1, 0))
	assert.False(t, ok, "parallel direction")
}
