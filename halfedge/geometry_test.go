package halfedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriangleAreaRightTriangle(t *testing.T) {
	area := TriangleArea(Point2{0, 0}, Point2{1, 0}, Point2{0, 1})
	assert.InDelta(t, 0.5, area, 1e-9)
}

func TestTriangleAreaDegenerate(t *testing.T) {
	area := TriangleArea(Point2{0, 0}, Point2{1, 0}, Point2{2, 0})
	assert.InDelta(t, 0, area, 1e-9)
}

func TestTriangleCentroid(t *testing.T) {
	c := TriangleCentroid(Point2{0, 0}, Point2{3, 0}, Point2{0, 3})
	assert.InDelta(t, 1, c.X, 1e-9)
	assert.InDelta(t, 1, c.Y, 1e-9)
}

func TestNormalCCWRotation(t *testing.T) {
	n := Normal(Point2{0, 0}, Point2{1, 0})
	assert.InDelta(t, 0, n.X, 1e-9)
	assert.InDelta(t, 1, n.Y, 1e-9)
}

func TestCentroidAndAreaTriangle(t *testing.T) {
	centroid, area := CentroidAndArea([]Point2{{0, 0}, {2, 0}, {0, 2}})
	assert.InDelta(t, 2, area, 1e-9)
	assert.InDelta(t, 2.0/3, centroid.X, 1e-9)
	assert.InDelta(t, 2.0/3, centroid.Y, 1e-9)
}

func TestCentroidAndAreaSquare(t *testing.T) {
	centroid, area := CentroidAndArea([]Point2{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	assert.InDelta(t, 1, area, 1e-9)
	assert.InDelta(t, 0.5, centroid.X, 1e-9)
	assert.InDelta(t, 0.5, centroid.Y, 1e-9)
}

func TestCentroidAndAreaPanicsBelowThreePoints(t *testing.T) {
	assert.Panics(t, func() {
		CentroidAndArea([]Point2{{0, 0}, {1, 0}})
	})
}

func TestGeometricWeightingFactorHalfway(t *testing.T) {
	cA := Point2{0, 0}
	cB := Point2{2, 0}
	face := Point2{1, 0}
	factor := GeometricWeightingFactor(cA, cB, face)
	assert.InDelta(t, 0.5, factor, 1e-9)
}
