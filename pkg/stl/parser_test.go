package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gocut/pkg/geometry"
)

const asciiTetra = `solid tetra
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 0 1 0
      vertex 1 0 0
    endloop
  endfacet
  facet normal 0 -1 0
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 0 1
    endloop
  endfacet
  facet normal -1 0 0
    outer loop
      vertex 0 0 0
      vertex 0 0 1
      vertex 0 1 0
    endloop
  endfacet
  facet normal 1 1 1
    outer loop
      vertex 1 0 0
      vertex 0 1 0
      vertex 0 0 1
    endloop
  endfacet
endsolid tetra
`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func binarySTL(t *testing.T, header string, tris [][3][3]float32) []byte {
	t.Helper()
	var buf bytes.Buffer
	h := make([]byte, binaryHeaderSize)
	copy(h, header)
	buf.Write(h)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(len(tris))))
	for _, tri := range tris {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, facet{Vertices: tri}))
	}
	return buf.Bytes()
}

func TestParseASCII(t *testing.T) {
	model, err := Parse(writeFile(t, "tetra.stl", []byte(asciiTetra)))
	require.NoError(t, err)

	assert.Equal(t, "tetra", model.Name)
	assert.Equal(t, 4, model.TriangleCount())
	assert.Equal(t, 0, model.DegenerateCount())

	bbox := model.BoundingBox()
	assert.Equal(t, geometry.NewVector3(0, 0, 0), bbox.Min)
	assert.Equal(t, geometry.NewVector3(1, 1, 1), bbox.Max)
	assert.InDelta(t, 1.5+0.8660254037844386, model.SurfaceArea(), 1e-9)

	first := model.Triangles[0]
	assert.Equal(t, geometry.NewVector3(0, 1, 0), first.P2)
}

func TestParseBinary(t *testing.T) {
	data := binarySTL(t, "solid but binary", [][3][3]float32{
		{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}},
		{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}},
	})
	model, err := Parse(writeFile(t, "binary.stl", data))
	require.NoError(t, err)

	assert.Equal(t, "solid but binary", model.Name)
	assert.Equal(t, 2, model.TriangleCount())
	assert.Equal(t, 1, model.DegenerateCount())
	assert.Equal(t, geometry.NewVector3(1, 0, 0), model.Triangles[0].P3)
}

func TestParseNormalsFromWinding(t *testing.T) {
	model, err := ParseReader(bytes.NewBufferString(asciiTetra))
	require.NoError(t, err)

	// the file claims 0 0 -1, the winding says up
	assert.Equal(t, geometry.NewVector3(0, 0, 1), model.Triangles[0].Normal())
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"bad number":   "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 a\n",
		"short vertex": "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0\n",
		"two vertices": "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nvertex 1 0 0\nendloop\nendfacet\n",
		"infinite":     "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 inf\n",
		"short binary": "not an stl",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseBytes([]byte(content))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.stl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseBinaryCountBeyondData(t *testing.T) {
	data := make([]byte, binaryHeaderSize+4+binaryFacetSize)
	binary.LittleEndian.PutUint32(data[binaryHeaderSize:], 0xFFFFFFFF)

	_, err := ParseBytes(data)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ParseBytes(data[:binaryHeaderSize+4])
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParseBinaryNonFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(-1))
	for name, bad := range map[string]float32{"nan": nan, "inf": inf} {
		t.Run(name, func(t *testing.T) {
			data := binarySTL(t, "bad", [][3][3]float32{
				{{0, 0, 0}, {0, 1, bad}, {1, 0, 0}},
			})
			_, err := ParseBytes(data)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}
