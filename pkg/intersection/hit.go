// Package intersection holds the closed-form contact primitives between a
// moving cutter part (disk, sphere, cylinder side, silhouette rectangle) and a
// fixed plane, segment or point.
//
// Every primitive takes a unit direction and returns a Hit whose CutterPoint,
// moved by Distance along the direction, lands on SurfacePoint. Distances are
// signed: a negative distance means the contact lies behind the start.
package intersection

import (
	"math"

	"github.com/philipparndt/gocut/pkg/geometry"
)

// Hit describes where a moving cutter part first touches a surface element
type Hit struct {
	CutterPoint  geometry.Vector3
	SurfacePoint geometry.Vector3
	Distance     float64
}

func newHit(surface, direction geometry.Vector3, distance float64) (Hit, bool) {
	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return Hit{}, false
	}
	return Hit{
		CutterPoint:  surface.Sub(direction.Mul(distance)),
		SurfacePoint: surface,
		Distance:     distance,
	}, true
}

// facing orients a face normal so that material lies behind it: upwards for
// any non-vertical face, against the direction for vertical ones
func facing(normal, direction geometry.Vector3) geometry.Vector3 {
	if math.Abs(normal.Z) > geometry.Epsilon {
		if normal.Z < 0 {
			return normal.Neg()
		}
		return normal
	}
	if normal.Dot(direction) > 0 {
		return normal.Neg()
	}
	return normal
}

// lowerRoot returns the smaller root of a*x^2 + b*x + c = 0
func lowerRoot(a, b, c float64) (float64, bool) {
	if math.Abs(a) < geometry.Epsilon*geometry.Epsilon {
		return 0, false
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	r1 := (-b - sq) / (2 * a)
	r2 := (-b + sq) / (2 * a)
	return math.Min(r1, r2), true
}
