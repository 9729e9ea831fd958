// Package compmesh builds and queries the computational mesh derived
// from a validated half-edge topology: faces with precomputed length
// and normal, cells with volume and centroid, and boundary patches.
// Downstream finite-volume solvers consume only this package; the
// half-edge package is the construction and mutation layer beneath it.
package compmesh

import (
	"fmt"

	"github.com/xerusn/meshkit/halfedge"
)

// PatchKind tags which side of a Face a Patch refers to.
type PatchKind int

const (
	// PatchNone is the zero value and never appears on a built mesh.
	PatchNone PatchKind = iota
	// PatchCell marks a side of a face as an interior cell.
	PatchCell
	// PatchBoundary marks a side of a face as a named boundary patch.
	PatchBoundary
)

// Patch identifies one side of a Face: either a Cell by index or a
// boundary patch by its tag index into the mesh's boundary-patch list
// (see Computational2DMesh.BoundaryPatch).
type Patch struct {
	Kind  PatchKind
	Cell  halfedge.CellIndex
	Patch halfedge.BoundaryPatchIndex
}

// Face is an undirected edge of the mesh: its two endpoint vertices,
// its length, its CCW-rotated geometric normal, and the two Patches on
// either side. Patches[0] is the parent of the half-edge running
// Vertices[0] -> Vertices[1] and Patches[1] the parent of its twin. For
// a boundary ring given counter-clockwise to halfedge.NewFromBoundary,
// Patches[0] lies on the right-hand side of that direction, so Normal
// points from Patches[0] into Patches[1].
type Face struct {
	Vertices [2]halfedge.VertexIndex
	Area     float64
	Normal   halfedge.Point2
	Patches  [2]Patch
}

// Cell is a polygon of the computational mesh: its volume (area), its
// centroid, the ordered faces forming its boundary, and its
// deduplicated vertex set.
type Cell struct {
	Volume   float64
	Centroid halfedge.Point2
	Faces    []halfedge.FaceIndex
	Vertices []halfedge.VertexIndex
}

// BoundaryPatch is just the tag; its faces are not materialized here —
// callers filter Faces by Patches when they need the set for a given
// patch.
type BoundaryPatch struct {
	Tag string
}

// Computational2DMesh is the read-only, geometry-rich mesh consumed by
// solvers. It is built once by NewFromSafe and never mutated afterward,
// so it is safe to read concurrently from multiple goroutines.
type Computational2DMesh struct {
	vertices  []halfedge.Point2
	faces     []Face
	cells     []Cell
	boundary  []BoundaryPatch
	heToFace  map[halfedge.HalfEdgeIndex]halfedge.FaceIndex
}

// NumCells returns the number of cells.
func (c *Computational2DMesh) NumCells() int { return len(c.cells) }

// NumFaces returns the number of faces.
func (c *Computational2DMesh) NumFaces() int { return len(c.faces) }

// NumVertices returns the number of vertices.
func (c *Computational2DMesh) NumVertices() int { return len(c.vertices) }

// NumBoundaryPatches returns the number of boundary-patch tags.
func (c *Computational2DMesh) NumBoundaryPatches() int { return len(c.boundary) }

// Vertex returns the coordinates of vertex v.
func (c *Computational2DMesh) Vertex(v halfedge.VertexIndex) (halfedge.Point2, error) {
	if int(v) < 0 || int(v) >= len(c.vertices) {
		return halfedge.Point2{}, fmt.Errorf("compmesh: vertex index %d out of bound (have %d)", v, len(c.vertices))
	}
	return c.vertices[v], nil
}

// Face returns face f.
func (c *Computational2DMesh) Face(f halfedge.FaceIndex) (Face, error) {
	if int(f) < 0 || int(f) >= len(c.faces) {
		return Face{}, fmt.Errorf("compmesh: face index %d out of bound (have %d)", f, len(c.faces))
	}
	return c.faces[f], nil
}

// Cell returns cell ci.
func (c *Computational2DMesh) Cell(ci halfedge.CellIndex) (Cell, error) {
	if int(ci) < 0 || int(ci) >= len(c.cells) {
		return Cell{}, fmt.Errorf("compmesh: cell index %d out of bound (have %d)", ci, len(c.cells))
	}
	return c.cells[ci], nil
}

// BoundaryPatch returns boundary patch p.
func (c *Computational2DMesh) BoundaryPatch(p halfedge.BoundaryPatchIndex) (BoundaryPatch, error) {
	if int(p) < 0 || int(p) >= len(c.boundary) {
		return BoundaryPatch{}, fmt.Errorf("compmesh: boundary patch index %d out of bound (have %d)", p, len(c.boundary))
	}
	return c.boundary[p], nil
}

// MiddlePointFromFace returns the midpoint of face f's two endpoints.
func (c *Computational2DMesh) MiddlePointFromFace(f halfedge.FaceIndex) (halfedge.Point2, error) {
	face, err := c.Face(f)
	if err != nil {
		return halfedge.Point2{}, err
	}
	a, err := c.Vertex(face.Vertices[0])
	if err != nil {
		return halfedge.Point2{}, err
	}
	b, err := c.Vertex(face.Vertices[1])
	if err != nil {
		return halfedge.Point2{}, err
	}
	return a.Lerp(b, 0.5), nil
}

// NeighboringCellsID returns, for each face of cell ci, the cell on the
// other side, skipping faces that have a boundary on the other side.
func (c *Computational2DMesh) NeighboringCellsID(ci halfedge.CellIndex) ([]halfedge.CellIndex, error) {
	cell, err := c.Cell(ci)
	if err != nil {
		return nil, err
	}
	var out []halfedge.CellIndex
	for _, fi := range cell.Faces {
		face, err := c.Face(fi)
		if err != nil {
			return nil, err
		}
		for _, side := range face.Patches {
			if side.Kind == PatchCell && side.Cell != ci {
				out = append(out, side.Cell)
			}
		}
	}
	return out, nil
}

// NeighboringPatches returns, for each face of cell ci, the Patch on
// the other side (which may itself be a boundary).
func (c *Computational2DMesh) NeighboringPatches(ci halfedge.CellIndex) ([]Patch, error) {
	pairs, err := c.NeighboringPatchesAndFaces(ci)
	if err != nil {
		return nil, err
	}
	out := make([]Patch, len(pairs))
	for i, pr := range pairs {
		out[i] = pr.Patch
	}
	return out, nil
}

// PatchAndFace pairs a neighboring Patch with the Face it was derived from.
type PatchAndFace struct {
	Patch Patch
	Face  halfedge.FaceIndex
}

// NeighboringPatchesAndFaces is NeighboringPatches paired with the
// FaceIndex each neighbor came from, useful to a solver assembling
// per-face flux terms without a second lookup.
func (c *Computational2DMesh) NeighboringPatchesAndFaces(ci halfedge.CellIndex) ([]PatchAndFace, error) {
	cell, err := c.Cell(ci)
	if err != nil {
		return nil, err
	}
	out := make([]PatchAndFace, 0, len(cell.Faces))
	for _, fi := range cell.Faces {
		face, err := c.Face(fi)
		if err != nil {
			return nil, err
		}
		var other Patch
		found := false
		for _, side := range face.Patches {
			if side.Kind != PatchCell || side.Cell != ci {
				other = side
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("compmesh: face %d has no side distinct from cell %d", fi, ci)
		}
		out = append(out, PatchAndFace{Patch: other, Face: fi})
	}
	return out, nil
}

// NormalsFromCell returns, for each face of cell ci, the outward unit
// normal: the stored geometric normal, flipped if ci is on its
// right-hand (Patches[1]) side.
func (c *Computational2DMesh) NormalsFromCell(ci halfedge.CellIndex) ([]halfedge.Point2, error) {
	cell, err := c.Cell(ci)
	if err != nil {
		return nil, err
	}
	out := make([]halfedge.Point2, len(cell.Faces))
	for i, fi := range cell.Faces {
		face, err := c.Face(fi)
		if err != nil {
			return nil, err
		}
		n := face.Normal
		if face.Patches[0].Kind == PatchCell && face.Patches[0].Cell == ci {
			out[i] = n
		} else {
			out[i] = n.Scale(-1)
		}
	}
	return out, nil
}

// GeometricWeightingFactor returns the two sides of face f and the
// classical finite-volume interpolation factor between them: the
// distance from Patches[1]'s cell centroid to the face midpoint,
// relative to the full Patches[0]-to-Patches[1] centroid distance. When one side
// is a boundary, there is no second centroid to interpolate towards, so
// the factor degenerates to the raw distance from the face midpoint to
// the other side's cell centroid, matching
// original_source/src/mesh/computational_mesh.rs.
func (c *Computational2DMesh) GeometricWeightingFactor(f halfedge.FaceIndex) (left, right Patch, factor float64, err error) {
	face, err := c.Face(f)
	if err != nil {
		return Patch{}, Patch{}, 0, err
	}
	if face.Patches[0].Kind == PatchBoundary && face.Patches[1].Kind == PatchBoundary {
		return Patch{}, Patch{}, 0, fmt.Errorf("compmesh: face %d has a boundary on both sides", f)
	}

	mid, err := c.MiddlePointFromFace(f)
	if err != nil {
		return Patch{}, Patch{}, 0, err
	}

	cellCentroid := func(p Patch) (halfedge.Point2, error) {
		cell, err := c.Cell(p.Cell)
		if err != nil {
			return halfedge.Point2{}, err
		}
		return cell.Centroid, nil
	}

	if face.Patches[0].Kind == PatchBoundary || face.Patches[1].Kind == PatchBoundary {
		cellSide := face.Patches[0]
		if cellSide.Kind == PatchBoundary {
			cellSide = face.Patches[1]
		}
		centroid, err := cellCentroid(cellSide)
		if err != nil {
			return Patch{}, Patch{}, 0, err
		}
		return face.Patches[0], face.Patches[1], halfedge.Length(mid, centroid), nil
	}

	cA, err := cellCentroid(face.Patches[0])
	if err != nil {
		return Patch{}, Patch{}, 0, err
	}
	cB, err := cellCentroid(face.Patches[1])
	if err != nil {
		return Patch{}, Patch{}, 0, err
	}

	return face.Patches[0], face.Patches[1], halfedge.GeometricWeightingFactor(cA, cB, mid), nil
}
