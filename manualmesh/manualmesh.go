// Package manualmesh provides canonical test geometries built directly
// as halfedge.Modifiable2DMesh values. They exercise the half-edge
// core's construction path; they hold no privileged access to it.
package manualmesh

import (
	"errors"

	"github.com/xerusn/meshkit/halfedge"
)

// StraightLine builds a chain of n collinear segments of equal length
// (total length length) along the X axis, with a single interior cell
// whose boundary is the chain doubled back on itself. Every boundary
// edge is tagged with the single boundary patch named patch. It is
// useful for exercising SplitEdge/Trimming without needing a full 2D
// domain.
func StraightLine(n int, length float64, patch string) (*halfedge.Modifiable2DMesh, error) {
	if n < 1 {
		return nil, errors.New("manualmesh: StraightLine requires at least 1 segment")
	}

	step := length / float64(n)
	vertices := make([]halfedge.Point2, n+1)
	for i := 0; i <= n; i++ {
		vertices[i] = halfedge.Point2{X: step * float64(i), Y: 0}
	}

	// The chain is folded into a degenerate closed boundary cycle: walk
	// forward from vertex 0 to vertex n, then back from n to 0, so the
	// whole thing is a single Boundary-parent cycle of length 2n
	// bounding one interior Cell of zero true area (a line has no
	// interior, but the half-edge model still requires a Cell parent on
	// one side of every boundary half-edge).
	edges := make([]halfedge.BoundaryEdge, 0, 2*n)
	for i := 0; i < n; i++ {
		edges = append(edges, halfedge.BoundaryEdge{
			From:  halfedge.VertexIndex(i),
			To:    halfedge.VertexIndex(i + 1),
			Patch: 0,
		})
	}
	for i := n; i > 0; i-- {
		edges = append(edges, halfedge.BoundaryEdge{
			From:  halfedge.VertexIndex(i),
			To:    halfedge.VertexIndex(i - 1),
			Patch: 0,
		})
	}

	return halfedge.NewFromBoundary(vertices, edges, []string{patch})
}

// QuadSquare builds the unit square [0,1]x[0,1] as a single Boundary
// parent with four edges and a single interior Cell parent, all tagged
// with the same boundary patch.
func QuadSquare(patch string) (*halfedge.Modifiable2DMesh, error) {
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
	return halfedge.NewFromBoundary(vertices, edges, []string{patch})
}
