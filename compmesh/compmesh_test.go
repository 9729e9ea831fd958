package compmesh_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xerusn/meshkit/compmesh"
	"github.com/xerusn/meshkit/halfedge"
)

func unitSquareSafe(t *testing.T) *halfedge.Safe2DMesh {
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
	safe, err := m.ValidateTopology()
	require.NoError(t, err)
	return safe
}

func TestNewFromSafeUnitSquare(t *testing.T) {
	safe := unitSquareSafe(t)
	mesh := compmesh.NewFromSafe(safe)

	assert.Equal(t, 1, mesh.NumCells())
	assert.Equal(t, 4, mesh.NumFaces())
	assert.Equal(t, 4, mesh.NumVertices())

	cell, err := mesh.Cell(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cell.Volume, 1e-9)
	assert.InDelta(t, 0.5, cell.Centroid.X, 1e-9)
	assert.InDelta(t, 0.5, cell.Centroid.Y, 1e-9)
	assert.Len(t, cell.Faces, 4)
	assert.Len(t, cell.Vertices, 4)
}

func TestNewFromSafeTriangulated(t *testing.T) {
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

	mesh := compmesh.NewFromSafe(safe)
	assert.Equal(t, 2, mesh.NumCells())
	assert.Equal(t, 5, mesh.NumFaces())
	assert.Equal(t, 4, mesh.NumVertices())

	var totalArea float64
	for ci := 0; ci < mesh.NumCells(); ci++ {
		cell, err := mesh.Cell(halfedge.CellIndex(ci))
		require.NoError(t, err)
		assert.InDelta(t, 0.5, cell.Volume, 1e-9)
		totalArea += cell.Volume
	}
	assert.InDelta(t, 1.0, totalArea, 1e-9)
}

func TestGeometricWeightingFactorEqualTriangles(t *testing.T) {
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
	mesh := compmesh.NewFromSafe(safe)

	var sharedFace halfedge.FaceIndex
	found := false
	for fi := 0; fi < mesh.NumFaces(); fi++ {
		face, err := mesh.Face(halfedge.FaceIndex(fi))
		require.NoError(t, err)
		if face.Patches[0].Kind == compmesh.PatchCell && face.Patches[1].Kind == compmesh.PatchCell {
			sharedFace = halfedge.FaceIndex(fi)
			found = true
		}
	}
	require.True(t, found)

	_, _, factor, err := mesh.GeometricWeightingFactor(sharedFace)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, factor, 1e-6)
}

func TestGeometricWeightingFactorBoundaryFace(t *testing.T) {
	safe := unitSquareSafe(t)
	mesh := compmesh.NewFromSafe(safe)

	var boundaryFace halfedge.FaceIndex
	found := false
	for fi := 0; fi < mesh.NumFaces(); fi++ {
		face, err := mesh.Face(halfedge.FaceIndex(fi))
		require.NoError(t, err)
		if face.Patches[0].Kind == compmesh.PatchBoundary || face.Patches[1].Kind == compmesh.PatchBoundary {
			boundaryFace = halfedge.FaceIndex(fi)
			found = true
			break
		}
	}
	require.True(t, found)

	mid, err := mesh.MiddlePointFromFace(boundaryFace)
	require.NoError(t, err)

	left, right, factor, err := mesh.GeometricWeightingFactor(boundaryFace)
	require.NoError(t, err)

	cellSide := left
	if cellSide.Kind == compmesh.PatchBoundary {
		cellSide = right
	}
	cell, err := mesh.Cell(cellSide.Cell)
	require.NoError(t, err)

	want := halfedge.Length(mid, cell.Centroid)
	assert.InDelta(t, want, factor, 1e-9)
}

func TestSnapshotRoundTrip(t *testing.T) {
	safe := unitSquareSafe(t)
	mesh := compmesh.NewFromSafe(safe)

	var buf bytes.Buffer
	require.NoError(t, mesh.WriteTo(&buf))

	restored, err := compmesh.ReadFrom(&buf)
	require.NoError(t, err)

	assert.Equal(t, mesh.NumCells(), restored.NumCells())
	assert.Equal(t, mesh.NumFaces(), restored.NumFaces())
	assert.Equal(t, mesh.NumVertices(), restored.NumVertices())

	origCell, err := mesh.Cell(0)
	require.NoError(t, err)
	restoredCell, err := restored.Cell(0)
	require.NoError(t, err)
	assert.Equal(t, origCell, restoredCell)
}
