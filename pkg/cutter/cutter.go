// Package cutter computes where a milling cutter moving in a straight line
// first touches a triangle.
package cutter

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gocut/pkg/geometry"
	"github.com/philipparndt/gocut/pkg/intersection"
)

// Validation errors returned by New
var (
	ErrInvalidRadius   = errors.New("radius must be a positive finite number")
	ErrInvalidHeight   = errors.New("height must be a positive finite number")
	ErrInvalidDistance = errors.New("required distance must be a non-negative finite number")
	ErrUnknownShape    = errors.New("unknown cutter shape")
)

// DefaultHeight is the shank length of cylindrical and spherical cutters
const DefaultHeight = 10.0

// Cutter is a milling tool placed at a location. The location is the lowest
// point of the tool (its tip) and the tool axis is vertical.
//
// Queries never modify the cutter; only PlaceAt does. Concurrent queries are
// safe as long as nobody moves the cutter at the same time.
type Cutter struct {
	shape            Shape
	radius           float64
	height           float64
	requiredDistance float64

	distanceRadius   float64
	distanceRadiusSq float64

	location geometry.Vector3
	center   geometry.Vector3
}

type options struct {
	height           float64
	hasHeight        bool
	location         geometry.Vector3
	requiredDistance float64
}

// Option configures a Cutter in New
type Option func(*options)

// WithHeight sets the usable length of the tool
func WithHeight(height float64) Option {
	return func(o *options) {
		o.height = height
		o.hasHeight = true
	}
}

// WithLocation places the tool tip at location
func WithLocation(location geometry.Vector3) Option {
	return func(o *options) {
		o.location = location
	}
}

// WithRequiredDistance grows the tool by a safety margin kept to the surface
func WithRequiredDistance(distance float64) Option {
	return func(o *options) {
		o.requiredDistance = distance
	}
}

// New creates a cutter of the given shape and radius
func New(shape Shape, radius float64, opts ...Option) (*Cutter, error) {
	if !shape.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownShape, shape)
	}
	if !positive(radius) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasHeight {
		o.height = DefaultHeight
		if shape == Circular {
			o.height = 2 * radius
		}
	}
	if !positive(o.height) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHeight, o.height)
	}
	if o.requiredDistance < 0 || math.IsNaN(o.requiredDistance) || math.IsInf(o.requiredDistance, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDistance, o.requiredDistance)
	}

	c := &Cutter{
		shape:            shape,
		radius:           radius,
		height:           o.height,
		requiredDistance: o.requiredDistance,
		distanceRadius:   radius + o.requiredDistance,
	}
	c.distanceRadiusSq = c.distanceRadius * c.distanceRadius
	c.PlaceAt(o.location)
	return c, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Shape returns the contact strategy
func (c *Cutter) Shape() Shape { return c.shape }

// Radius returns the nominal tool radius
func (c *Cutter) Radius() float64 { return c.radius }

// Height returns the usable tool length
func (c *Cutter) Height() float64 { return c.height }

// RequiredDistance returns the safety margin added to the radius
func (c *Cutter) RequiredDistance() float64 { return c.requiredDistance }

// DistanceRadius returns the radius grown by the required distance
func (c *Cutter) DistanceRadius() float64 { return c.distanceRadius }

// Location returns the tool tip
func (c *Cutter) Location() geometry.Vector3 { return c.location }

// Center returns the reference point of the tool's contact body: the bottom
// disk center for cylindrical tools, the sphere or profile circle center
// otherwise
func (c *Cutter) Center() geometry.Vector3 { return c.center }

// PlaceAt moves the tool tip to location
func (c *Cutter) PlaceAt(location geometry.Vector3) {
	c.location = location
	c.center = c.centerAt(location)
}

func (c *Cutter) centerAt(location geometry.Vector3) geometry.Vector3 {
	if c.shape == Cylindrical {
		return location.Sub(geometry.AxisZ.Mul(c.requiredDistance))
	}
	return location.Add(geometry.AxisZ.Mul(c.radius))
}

// tipZ returns the height of the lowest point of the grown contact body
func (c *Cutter) tipZ(center geometry.Vector3) float64 {
	if c.shape == Cylindrical {
		return center.Z
	}
	return center.Z - c.distanceRadius
}

// Footprint returns the XY area covered by the tool at its location
func (c *Cutter) Footprint() geometry.BoundingBox {
	return c.FootprintAt(c.location)
}

// FootprintAt returns the XY area covered by the tool with its tip at start.
// The Z extent of the returned box is zero.
func (c *Cutter) FootprintAt(start geometry.Vector3) geometry.BoundingBox {
	hx, hy := c.distanceRadius, c.distanceRadius
	if c.shape == Circular {
		// the profile circle is upright in the YZ plane
		hx = 0
	}
	return geometry.BoundingBox{
		Min: geometry.NewVector3(start.X-hx, start.Y-hy, start.Z),
		Max: geometry.NewVector3(start.X+hx, start.Y+hy, start.Z),
	}
}

// Intersect finds the nearest contact when moving from the current location
func (c *Cutter) Intersect(direction geometry.Vector3, tri *geometry.Triangle) Contact {
	return c.IntersectFrom(direction, tri, c.location)
}

// IntersectFrom finds the nearest contact of the tool moving along direction
// with its tip starting at start. The distance of the result is signed and
// measured in units of the normalized direction.
func (c *Cutter) IntersectFrom(direction geometry.Vector3, tri *geometry.Triangle, start geometry.Vector3) Contact {
	best := NoContact()
	c.visit(direction, tri, start, func(_ Kind, _ int, contact Contact) {
		best = best.Nearer(contact)
	})
	return best
}

// Candidates returns every contact possibility IntersectFrom considers, in
// evaluation order. Misses are included as NoContact.
func (c *Cutter) Candidates(direction geometry.Vector3, tri *geometry.Triangle, start geometry.Vector3) []Candidate {
	var out []Candidate
	c.visit(direction, tri, start, func(kind Kind, index int, contact Contact) {
		out = append(out, Candidate{Kind: kind, Index: index, Contact: contact})
	})
	return out
}

// Drop lowers the tool vertically from its location onto the triangle
func (c *Cutter) Drop(tri *geometry.Triangle) (geometry.Vector3, bool) {
	return c.DropFrom(tri, c.location)
}

// DropFrom returns the tip location where the tool, moving vertically through
// start, rests on the triangle. Triangles outside the tool's footprint are
// rejected without computing any contact.
func (c *Cutter) DropFrom(tri *geometry.Triangle, start geometry.Vector3) (geometry.Vector3, bool) {
	if !c.FootprintAt(start).Overlaps2D(tri.Bounds(), geometry.Epsilon) {
		return geometry.Vector3{}, false
	}
	return c.IntersectFrom(geometry.Down, tri, start).Location()
}

func (c *Cutter) String() string {
	return fmt.Sprintf("%s cutter r=%g h=%g at (%g, %g, %g)",
		c.shape, c.radius, c.height, c.location.X, c.location.Y, c.location.Z)
}

type emitFunc func(kind Kind, index int, contact Contact)

// query carries the per-call state shared by the shape strategies
type query struct {
	dir    geometry.Vector3
	start  geometry.Vector3
	center geometry.Vector3
	tri    *geometry.Triangle
	emit   emitFunc
}

// sideways reports whether the move has a horizontal component
func (q *query) sideways() bool {
	return q.dir.Horizontal().Length() > geometry.Epsilon
}

// contact turns a primitive hit into a tool contact relative to the start
func (q *query) contact(hit intersection.Hit, ok bool) Contact {
	if !ok {
		return NoContact()
	}
	return NewContact(hit.SurfacePoint.Add(q.start.Sub(hit.CutterPoint)), hit.SurfacePoint, hit.Distance)
}

func (q *query) face(hit intersection.Hit, ok bool) {
	if ok && (q.tri.IsDegenerate() || !q.tri.IsPointInside(hit.SurfacePoint)) {
		ok = false
	}
	q.emit(Face, 0, q.contact(hit, ok))
}

func (c *Cutter) visit(direction geometry.Vector3, tri *geometry.Triangle, start geometry.Vector3, emit emitFunc) {
	dir := direction.Normalize()
	if dir.IsZero() {
		return
	}
	q := &query{
		dir:    dir,
		start:  start,
		center: start.Add(c.center.Sub(c.location)),
		tri:    tri,
		emit:   emit,
	}
	switch c.shape {
	case Cylindrical:
		c.visitCylindrical(q)
	case Spherical:
		c.visitSpherical(q)
	case Circular:
		c.visitCircular(q)
	}
}
