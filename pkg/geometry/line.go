package geometry

// Line is a directed segment from P1 to P2.
// Dir is the unit direction and Len the segment length; both are zero for
// a segment whose endpoints coincide.
type Line struct {
	P1, P2 Vector3
	Dir    Vector3
	Len    float64
}

// NewLine creates a directed segment between two points
func NewLine(p1, p2 Vector3) Line {
	span := p2.Sub(p1)
	return Line{
		P1:  p1,
		P2:  p2,
		Dir: span.Normalize(),
		Len: span.Length(),
	}
}

// Vector returns P2 - P1
func (l Line) Vector() Vector3 {
	return l.P2.Sub(l.P1)
}

// PointAt returns the point at distance s from P1 along the segment direction
func (l Line) PointAt(s float64) Vector3 {
	return l.P1.Add(l.Dir.Mul(s))
}

// ClosestPoint returns the point of the infinite line nearest to p
func (l Line) ClosestPoint(p Vector3) Vector3 {
	return l.PointAt(p.Sub(l.P1).Dot(l.Dir))
}

// Interior reports whether the distance s along the segment lies strictly
// between the endpoints, keeping Epsilon away from both
func (l Line) Interior(s float64) bool {
	return s > Epsilon && s < l.Len-Epsilon
}
