package halfedge

import "math"

// Point2 is a point in the plane. Both coordinates must be finite;
// callers are responsible for not feeding NaN/Inf into the mesh.
type Point2 struct {
	X, Y float64
}

// Sub returns a - b as a displacement vector (itself a Point2, since the
// kernel has no separate vector type).
func (a Point2) Sub(b Point2) Point2 { return Point2{a.X - b.X, a.Y - b.Y} }

// Add returns a + b.
func (a Point2) Add(b Point2) Point2 { return Point2{a.X + b.X, a.Y + b.Y} }

// Scale returns a scaled by s.
func (a Point2) Scale(s float64) Point2 { return Point2{a.X * s, a.Y * s} }

// Norm returns the Euclidean length of a treated as a vector from the origin.
func (a Point2) Norm() float64 { return math.Hypot(a.X, a.Y) }

// Lerp returns the point a fraction t of the way from a to b.
func (a Point2) Lerp(b Point2, t float64) Point2 {
	return Point2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Length returns the Euclidean distance between a and b.
func Length(a, b Point2) float64 {
	return b.Sub(a).Norm()
}

// Normal returns the unit vector perpendicular to b-a, rotated
// counter-clockwise: (a.y-b.y, b.x-a.x) / ||b-a||.
func Normal(a, b Point2) Point2 {
	v := Point2{a.Y - b.Y, b.X - a.X}
	n := v.Norm()
	if n == 0 {
		return Point2{}
	}
	return v.Scale(1 / n)
}

// TriangleArea returns the (always non-negative) area of the triangle
// p0-p1-p2 via Heron's formula.
func TriangleArea(p0, p1, p2 Point2) float64 {
	a := Length(p0, p1)
	b := Length(p1, p2)
	c := Length(p2, p0)
	s := (a + b + c) / 2
	radicand := s * (s - a) * (s - b) * (s - c)
	if radicand < 0 {
		// Guards against a tiny negative value from floating-point
		// cancellation on a near-degenerate (collinear) triangle.
		radicand = 0
	}
	return math.Sqrt(radicand)
}

// TriangleCentroid returns the arithmetic mean of the triangle's vertices.
func TriangleCentroid(p0, p1, p2 Point2) Point2 {
	return Point2{
		X: (p0.X + p1.X + p2.X) / 3,
		Y: (p0.Y + p1.Y + p2.Y) / 3,
	}
}

// CentroidAndArea computes the centroid and area of a simple polygon
// given at least 3 points. For a triangle it uses TriangleCentroid and
// TriangleArea directly; otherwise it fan-triangulates from the
// arithmetic mean of the points and returns the area-weighted mean of
// the sub-triangle centroids and the sum of their areas.
//
// It panics if fewer than 3 points are given, matching the crate this
// library's core is grounded on: centroid_and_area is only ever called
// from contexts where the polygon has already been validated to have at
// least 3 vertices, so a caller tripping this is a programming error,
// not a recoverable input condition.
func CentroidAndArea(points []Point2) (centroid Point2, area float64) {
	if len(points) < 3 {
		panic("halfedge: CentroidAndArea requires at least 3 points")
	}

	if len(points) == 3 {
		return TriangleCentroid(points[0], points[1], points[2]), TriangleArea(points[0], points[1], points[2])
	}

	mean := Point2{}
	for _, p := range points {
		mean = mean.Add(p)
	}
	mean = mean.Scale(1 / float64(len(points)))

	var weightedCentroid Point2
	var totalArea float64
	n := len(points)
	for i := 0; i < n; i++ {
		p0 := points[i]
		p1 := points[(i+1)%n]
		triArea := TriangleArea(mean, p0, p1)
		triCentroid := TriangleCentroid(mean, p0, p1)
		weightedCentroid = weightedCentroid.Add(triCentroid.Scale(triArea))
		totalArea += triArea
	}

	if totalArea == 0 {
		return mean, 0
	}
	return weightedCentroid.Scale(1 / totalArea), totalArea
}

// GeometricWeightingFactor is the classical finite-volume face-to-cell
// interpolation factor: the distance from cell B's centroid to the face,
// as a fraction of the distance between the two centroids. It returns 0
// when the two centroids coincide.
func GeometricWeightingFactor(cA, cB, face Point2) float64 {
	denom := Length(cB, cA)
	if denom == 0 {
		return 0
	}
	return Length(cB, face) / denom
}
