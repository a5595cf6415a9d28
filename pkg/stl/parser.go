package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gocut/pkg/geometry"
)

const (
	binaryHeaderSize = 80
	binaryFacetSize  = 50
)

// ErrMalformed is wrapped by every error caused by the file contents
var ErrMalformed = errors.New("malformed STL")

// facet is the on-disk layout of a binary STL record
type facet struct {
	Normal    [3]float32
	Vertices  [3][3]float32
	Attribute uint16
}

// Parse reads an STL file and returns a Model.
// Facet normals stored in the file are ignored; they are derived from the
// vertex order instead.
func Parse(filename string) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseBytes(data)
}

// ParseReader reads a complete STL document from r
func ParseReader(r io.Reader) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read STL: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes detects the format of data and parses it.
// Binary files may start with "solid" as well, so the record count in the
// header decides before the ASCII keyword does.
func ParseBytes(data []byte) (*Model, error) {
	if isBinary(data) {
		return parseBinary(data)
	}
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return parseASCII(bytes.NewReader(data))
	}
	return parseBinary(data)
}

func isBinary(data []byte) bool {
	if len(data) < binaryHeaderSize+4 {
		return false
	}
	count := binary.LittleEndian.Uint32(data[binaryHeaderSize:])
	return int64(len(data)) == binaryHeaderSize+4+int64(count)*binaryFacetSize
}

// parseASCII parses an ASCII STL document
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var vertices []geometry.Vector3
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			vertices = vertices[:0]

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: vertex needs three coordinates", ErrMalformed, lineNo)
			}
			p, err := parseVector(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, lineNo, err)
			}
			vertices = append(vertices, p)

		case "endfacet":
			if len(vertices) != 3 {
				return nil, fmt.Errorf("%w: line %d: facet has %d vertices", ErrMalformed, lineNo, len(vertices))
			}
			model.AddTriangle(vertices[0], vertices[1], vertices[2])
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

func parseVector(fields []string) (geometry.Vector3, error) {
	var c [3]float64
	for i, f := range fields {
		value, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector3{}, err
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return geometry.Vector3{}, fmt.Errorf("coordinate %q is not finite", f)
		}
		c[i] = value
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}

// parseBinary parses a binary STL document.
// The record count in the header is checked against the data length before
// anything is allocated for it.
func parseBinary(data []byte) (*Model, error) {
	model := NewModel("")
	reader := bytes.NewReader(data)

	header := make([]byte, binaryHeaderSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", ErrMalformed, err)
	}
	model.Name = strings.TrimSpace(string(bytes.TrimRight(header, "\x00")))

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("%w: failed to read triangle count: %w", ErrMalformed, err)
	}

	available := (len(data) - binaryHeaderSize - 4) / binaryFacetSize
	if int64(triangleCount) > int64(available) {
		return nil, fmt.Errorf("%w: header claims %d triangles, data holds %d", ErrMalformed, triangleCount, available)
	}

	model.Triangles = make([]geometry.Triangle, 0, triangleCount)
	for i := uint32(0); i < triangleCount; i++ {
		var f facet
		if err := binary.Read(reader, binary.LittleEndian, &f); err != nil {
			return nil, fmt.Errorf("%w: failed to read triangle %d: %w", ErrMalformed, i, err)
		}
		var vertices [3]geometry.Vector3
		for j, v := range f.Vertices {
			p, err := toVector(v)
			if err != nil {
				return nil, fmt.Errorf("%w: triangle %d: %w", ErrMalformed, i, err)
			}
			vertices[j] = p
		}
		model.AddTriangle(vertices[0], vertices[1], vertices[2])
	}

	return model, nil
}

func toVector(v [3]float32) (geometry.Vector3, error) {
	for _, c := range v {
		if f := float64(c); math.IsNaN(f) || math.IsInf(f, 0) {
			return geometry.Vector3{}, fmt.Errorf("coordinate %v is not finite", c)
		}
	}
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2])), nil
}
