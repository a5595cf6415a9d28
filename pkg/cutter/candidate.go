package cutter

import "fmt"

// Kind tells which part of the triangle a candidate was computed against
type Kind int

const (
	// Face is the triangle's plane, restricted to the triangle
	Face Kind = iota
	// Edge is an edge met by the tip part of the cutter
	Edge
	// Vertex is a corner met by the tip part of the cutter
	Vertex
	// SideEdge is an edge met by the shank or silhouette
	SideEdge
	// SideVertex is a corner met by the shank or silhouette
	SideVertex
)

func (k Kind) String() string {
	switch k {
	case Face:
		return "face"
	case Edge:
		return "edge"
	case Vertex:
		return "vertex"
	case SideEdge:
		return "side-edge"
	case SideVertex:
		return "side-vertex"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Candidate is one evaluated contact possibility of a query
type Candidate struct {
	Kind    Kind
	Index   int // 0-based edge or vertex index, 0 for the face
	Contact Contact
}

// Label names the element, e.g. "edge E2" or "vertex P1"
func (c Candidate) Label() string {
	switch c.Kind {
	case Edge, SideEdge:
		return fmt.Sprintf("%s E%d", c.Kind, c.Index+1)
	case Vertex, SideVertex:
		return fmt.Sprintf("%s P%d", c.Kind, c.Index+1)
	}
	return c.Kind.String()
}
