package vtk_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xerusn/meshkit/compmesh"
	"github.com/xerusn/meshkit/halfedge"
	"github.com/xerusn/meshkit/vtk"
)

func triangulatedSquareComp(t *testing.T) *compmesh.Computational2DMesh {
	t.Helper()
	vertices := []halfedge.Point2{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
	edges := []halfedge.BoundaryEdge{
		{From: 0, To: 1, Patch: 0},
		{From: 1, To: 2, Patch: 0},
		{From: 2, To: 3, Patch: 0},
		{From: 3, To: 0, Patch: 0},
	}
	m, err := halfedge.NewFromBoundary(vertices, edges, []string{"wall"})
	require.NoError(t, err)
	_, err = m.Trimming(1, 3, 1)
	require.NoError(t, err)
	safe, err := m.ValidateTopology()
	require.NoError(t, err)
	return compmesh.NewFromSafe(safe)
}

func TestWriteTriangulatedSquare(t *testing.T) {
	mesh := triangulatedSquareComp(t)

	var buf bytes.Buffer
	require.NoError(t, vtk.Write(&buf, mesh))

	out := buf.String()
	assert.Contains(t, out, `<VTKFile type="UnstructuredGrid"`)
	assert.Contains(t, out, `NumberOfPoints="4"`)
	assert.Contains(t, out, `NumberOfCells="2"`)
	assert.Contains(t, out, `Name="connectivity"`)
	assert.Contains(t, out, `Name="offsets"`)
	assert.Contains(t, out, `Name="types"`)

	// two type codes (5, 5); the offsets are 3 and 6, so only the type
	// lines consist of a bare 5
	assert.Equal(t, 2, strings.Count(out, "          5\n"))
}

func TestWriteRejectsNonTriangularCells(t *testing.T) {
	vertices := []halfedge.Point2{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
	edges := []halfedge.BoundaryEdge{
		{From: 0, To: 1, Patch: 0},
		{From: 1, To: 2, Patch: 0},
		{From: 2, To: 3, Patch: 0},
		{From: 3, To: 0, Patch: 0},
	}
	m, err := halfedge.NewFromBoundary(vertices, edges, []string{"wall"})
	require.NoError(t, err)
	safe, err := m.ValidateTopology()
	require.NoError(t, err)
	mesh := compmesh.NewFromSafe(safe)

	var buf bytes.Buffer
	err = vtk.Write(&buf, mesh)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only triangles are supported")
}
