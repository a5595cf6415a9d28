package cutter

import (
	"math"

	"github.com/philipparndt/gocut/pkg/geometry"
)

// Contact is the outcome of a nearest-contact query.
// A miss has an infinite distance and neither a location nor a point.
type Contact struct {
	location geometry.Vector3
	point    geometry.Vector3
	distance float64
	hit      bool
}

// NoContact returns the result of a query that found nothing
func NoContact() Contact {
	return Contact{distance: math.Inf(1)}
}

// NewContact creates a contact at the given cutter location and triangle point.
// A non-finite distance yields NoContact.
func NewContact(location, point geometry.Vector3, distance float64) Contact {
	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return NoContact()
	}
	return Contact{location: location, point: point, distance: distance, hit: true}
}

// Hit reports whether a contact was found
func (c Contact) Hit() bool {
	return c.hit
}

// Distance returns the signed travel along the query direction, +Inf for a miss
func (c Contact) Distance() float64 {
	return c.distance
}

// Location returns where the cutter tip is when touching the triangle
func (c Contact) Location() (geometry.Vector3, bool) {
	return c.location, c.hit
}

// Point returns the touched point on the triangle
func (c Contact) Point() (geometry.Vector3, bool) {
	return c.point, c.hit
}

// Nearer returns other if it is strictly closer, otherwise c
func (c Contact) Nearer(other Contact) Contact {
	if other.distance < c.distance {
		return other
	}
	return c
}
