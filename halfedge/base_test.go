package halfedge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckMeshPassesOnFreshSquare(t *testing.T) {
	m := unitSquare(t)
	assert.NoError(t, m.CheckMesh())
}

func TestCheckMeshCatchesBrokenTwin(t *testing.T) {
	m := unitSquare(t)
	m.heToTwin[0] = 2 // break twin(twin(0)) == 0

	err := m.CheckMesh()
	require.Error(t, err)
	var meshErr *MeshError
	require.True(t, errors.As(err, &meshErr))
	assert.Equal(t, TwinNotCorrect, meshErr.Kind)
}

func TestCheckMeshCatchesBrokenNextPrev(t *testing.T) {
	m := unitSquare(t)
	m.heToNext[0] = 4 // skip ahead, breaking prev(next(0)) == 0

	err := m.CheckMesh()
	require.Error(t, err)
	var meshErr *MeshError
	require.True(t, errors.As(err, &meshErr))
	assert.Equal(t, NextPrevNotCorrect, meshErr.Kind)
}

func TestVertexOutOfBound(t *testing.T) {
	m := unitSquare(t)
	_, err := m.Vertex(100)
	require.Error(t, err)
	var meshErr *MeshError
	require.True(t, errors.As(err, &meshErr))
	assert.Equal(t, VertexOutOfBound, meshErr.Kind)
	assert.Equal(t, 100, meshErr.Got)
	assert.Equal(t, 4, meshErr.Len)
}

func TestHalfEdgeOutOfBound(t *testing.T) {
	m := unitSquare(t)
	_, err := m.Twin(100)
	require.Error(t, err)
	var meshErr *MeshError
	require.True(t, errors.As(err, &meshErr))
	assert.Equal(t, HalfEdgeOutOfBound, meshErr.Kind)
}

func TestHEFromParentAndNeighbors(t *testing.T) {
	m := unitSquare(t)

	cycle, err := m.HEFromParent(0)
	require.NoError(t, err)
	assert.Len(t, cycle, 4)

	neighbors, err := m.NeighborsFromParent(0)
	require.NoError(t, err)
	require.Len(t, neighbors, 4)
	for _, n := range neighbors {
		assert.Equal(t, ParentIndex(1), n)
	}
}

func TestHEFromVertex(t *testing.T) {
	m := unitSquare(t)
	hes, err := m.HEFromVertex(0)
	require.NoError(t, err)
	assert.Len(t, hes, 2) // one boundary he, one interior he originate at vertex 0
}
