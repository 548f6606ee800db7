package meshio

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukas-voss/trimesh/vecmath"
)

func TestReadOBJ_Triangle(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	points, faces, err := ReadOBJ(bytes.NewBufferString(src))
	require.NoError(t, err)
	assert.Len(t, points, 3)
	assert.Equal(t, [][3]int{{0, 1, 2}}, faces)
}

func TestReadOBJ_IgnoresGroupsAndConcatenatesModels(t *testing.T) {
	src := "g model_a\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n" +
		"g model_b\nv 2 0 0\nv 3 0 0\nv 2 1 0\nf 4 5 6\n"
	points, faces, err := ReadOBJ(bytes.NewBufferString(src))
	require.NoError(t, err)
	assert.Len(t, points, 6)
	assert.Len(t, faces, 2)
}

func TestReadOBJ_SkipsNonTriangularAndDegenerateFaces(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nv 1 1 0\n" +
		"f 1 2 3 4\n" + // quad, skipped
		"f 1 1 2\n" + // degenerate, skipped
		"f 1 2 3\n" // kept
	points, faces, err := ReadOBJ(bytes.NewBufferString(src))
	require.NoError(t, err)
	assert.Len(t, points, 4)
	assert.Equal(t, [][3]int{{0, 1, 2}}, faces)
}

func TestReadOBJ_InvalidVertexErrors(t *testing.T) {
	src := "v 0 0\n"
	_, _, err := ReadOBJ(bytes.NewBufferString(src))
	assert.ErrorIs(t, err, ErrInvalidVertex)
}

func TestReadOBJ_InvalidFaceTokenErrors(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 x\n"
	_, _, err := ReadOBJ(bytes.NewBufferString(src))
	assert.ErrorIs(t, err, ErrInvalidFace)
}

func TestWriteOBJ_EmitsOnlyVAndF(t *testing.T) {
	points := []vecmath.Vec3{
		vecmath.NewVec3(0, 0, 0),
		vecmath.NewVec3(1, 0, 0),
		vecmath.NewVec3(0, 1, 0),
	}
	faces := [][3]int{{0, 1, 2}}

	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, points, faces))

	expected := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	assert.Equal(t, expected, buf.String())
}

func TestOBJ_RoundTripsThroughPath(t *testing.T) {
	points := []vecmath.Vec3{
		vecmath.NewVec3(0, 0, 0),
		vecmath.NewVec3(1, 0, 0),
		vecmath.NewVec3(0, 1, 0),
	}
	faces := [][3]int{{0, 1, 2}}

	path := filepath.Join(t.TempDir(), "mesh.obj")
	require.NoError(t, WriteOBJToPath(path, points, faces))

	gotPoints, gotFaces, err := ReadOBJFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, points, gotPoints)
	assert.Equal(t, faces, gotFaces)
}

func TestOBJ_RoundTripsThroughGzipPath(t *testing.T) {
	points := []vecmath.Vec3{
		vecmath.NewVec3(0, 0, 0),
		vecmath.NewVec3(1, 0, 0),
		vecmath.NewVec3(0, 1, 0),
	}
	faces := [][3]int{{0, 1, 2}}

	path := filepath.Join(t.TempDir(), "mesh.obj.gz")
	require.NoError(t, WriteOBJToPath(path, points, faces))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	gz, err := gzip.NewReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer gz.Close()

	gotPoints, gotFaces, err := ReadOBJFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, points, gotPoints)
	assert.Equal(t, faces, gotFaces)
}
