package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gocut/pkg/cutter"
	"github.com/philipparndt/gocut/pkg/geometry"
	"github.com/philipparndt/gocut/pkg/stl"
)

// MeasurementResult contains various measurements of an STL model
type MeasurementResult struct {
	BoundingBox       geometry.BoundingBox
	Dimensions        geometry.Vector3
	SurfaceArea       float64
	TriangleCount     int
	DegenerateCount   int
	EdgeCount         int
	MinEdgeLength     float64
	MaxEdgeLength     float64
	AvgEdgeLength     float64
	MaxTriangleRadius float64
}

// AnalyzeModel collects size and edge statistics of a model
func AnalyzeModel(model *stl.Model) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:     model.BoundingBox(),
		SurfaceArea:     model.SurfaceArea(),
		TriangleCount:   model.TriangleCount(),
		DegenerateCount: model.DegenerateCount(),
	}
	if result.TriangleCount == 0 {
		return result
	}
	result.Dimensions = result.BoundingBox.Size()

	minLength := math.MaxFloat64
	totalLength := 0.0
	for i := range model.Triangles {
		triangle := &model.Triangles[i]
		for _, length := range triangle.EdgeLengths() {
			totalLength += length
			minLength = math.Min(minLength, length)
			result.MaxEdgeLength = math.Max(result.MaxEdgeLength, length)
		}
		result.MaxTriangleRadius = math.Max(result.MaxTriangleRadius, triangle.Radius())
	}

	result.EdgeCount = 3 * result.TriangleCount
	result.MinEdgeLength = minLength
	result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	return result
}

// HeightSummary describes the heights found by a drop grid
type HeightSummary struct {
	Samples int
	Hits    int
	Misses  int
	MinZ    float64
	MaxZ    float64
	MeanZ   float64
}

// Summarize computes statistics over the hit samples of a height map
func Summarize(heights []float64, total int) HeightSummary {
	s := HeightSummary{Samples: total, Hits: len(heights), Misses: total - len(heights)}
	if len(heights) == 0 {
		return s
	}
	s.MinZ, s.MaxZ = math.Inf(1), math.Inf(-1)
	sum := 0.0
	for _, z := range heights {
		s.MinZ = math.Min(s.MinZ, z)
		s.MaxZ = math.Max(s.MaxZ, z)
		sum += z
	}
	s.MeanZ = sum / float64(len(heights))
	return s
}

// String formats the summary on one line
func (s HeightSummary) String() string {
	if s.Hits == 0 {
		return fmt.Sprintf("%d samples, no contact", s.Samples)
	}
	return fmt.Sprintf("%d samples, %d hits, %d misses, z min %.6f max %.6f mean %.6f",
		s.Samples, s.Hits, s.Misses, s.MinZ, s.MaxZ, s.MeanZ)
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatContact formats a contact as location, point and distance
func FormatContact(c cutter.Contact) string {
	location, ok := c.Location()
	if !ok {
		return "no contact"
	}
	point, _ := c.Point()
	return fmt.Sprintf("location %s point %s distance %.6f",
		FormatVector(location), FormatVector(point), c.Distance())
}
