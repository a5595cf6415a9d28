package cutter

import (
	"fmt"
	"strings"
)

// Shape selects the contact strategy of a Cutter
type Shape int

const (
	// Cylindrical is a flat end mill: a disk at the tip and a straight shank
	Cylindrical Shape = iota
	// Spherical is a ball end mill: a sphere resting on the tip
	Spherical
	// Circular is a toroidal tool modeled by its upright profile circle
	Circular
)

var shapeNames = map[Shape]string{
	Cylindrical: "cylindrical",
	Spherical:   "spherical",
	Circular:    "circular",
}

// String returns the canonical name of the shape
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

func (s Shape) valid() bool {
	_, ok := shapeNames[s]
	return ok
}

// ParseShape resolves a shape by name or common alias
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cylindrical", "cylinder", "flat":
		return Cylindrical, nil
	case "spherical", "sphere", "ball":
		return Spherical, nil
	case "circular", "circle", "toroidal", "torus":
		return Circular, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}
