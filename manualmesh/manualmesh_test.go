package manualmesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xerusn/meshkit/manualmesh"
)

func TestStraightLineValidates(t *testing.T) {
	m, err := manualmesh.StraightLine(4, 2.0, "ends")
	require.NoError(t, err)

	_, err = m.ValidateTopology()
	assert.NoError(t, err)

	assert.Equal(t, 5, m.NumVertices())
}

func TestStraightLineRejectsNonPositiveSegments(t *testing.T) {
	_, err := manualmesh.StraightLine(0, 1.0, "ends")
	require.Error(t, err)
}

func TestQuadSquareValidates(t *testing.T) {
	m, err := manualmesh.QuadSquare("wall")
	require.NoError(t, err)

	safe, err := m.ValidateTopology()
	require.NoError(t, err)

	assert.Equal(t, 4, safe.NumVertices())
	assert.Equal(t, 2, safe.NumParents())
}
