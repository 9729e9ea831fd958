package compmesh

import (
	"fmt"

	"github.com/xerusn/meshkit/halfedge"
)

// NewFromSafe converts a validated half-edge mesh into a computational
// mesh. It folds each twin pair (he < twin(he)) into one Face, assigns
// a CellIndex to every Cell parent, and assembles each Cell's face
// list, vertex set, centroid, and volume.
//
// The mesh passed in has already been claimed Safe, so any invariant
// break found here — a Parent of kind None, a half-edge that is its own
// twin, or a cell whose vertex set disagrees with its half-edge cycle —
// is fatal: it means the claim was wrong, not that the input was merely
// malformed, so NewFromSafe panics rather than returning an error.
func NewFromSafe(safe *halfedge.Safe2DMesh) *Computational2DMesh {
	numHE := safe.NumHalfEdges()
	numParents := safe.NumParents()

	parentToCell := make([]halfedge.CellIndex, numParents)
	isCell := make([]bool, numParents)
	var numCells int
	for p := 0; p < numParents; p++ {
		parent, err := safe.Parent(halfedge.ParentIndex(p))
		if err != nil {
			panic(fmt.Sprintf("compmesh: %v", err))
		}
		switch parent.Kind {
		case halfedge.ParentCell:
			parentToCell[p] = halfedge.CellIndex(numCells)
			isCell[p] = true
			numCells++
		case halfedge.ParentBoundary:
			// Patch identity is carried per half-edge, not here.
		default:
			panic(fmt.Sprintf("compmesh: parent %d has kind None", p))
		}
	}

	toPatch := func(h halfedge.HalfEdgeIndex, p halfedge.ParentIndex) (Patch, error) {
		parent, err := safe.Parent(p)
		if err != nil {
			return Patch{}, err
		}
		switch parent.Kind {
		case halfedge.ParentCell:
			return Patch{Kind: PatchCell, Cell: parentToCell[p]}, nil
		case halfedge.ParentBoundary:
			patch, err := safe.PatchOf(h)
			if err != nil {
				return Patch{}, err
			}
			return Patch{Kind: PatchBoundary, Patch: patch}, nil
		default:
			return Patch{}, fmt.Errorf("compmesh: parent %d has kind None", p)
		}
	}

	var faces []Face
	heToFace := make(map[halfedge.HalfEdgeIndex]halfedge.FaceIndex, numHE)

	for h := 0; h < numHE; h++ {
		hi := halfedge.HalfEdgeIndex(h)
		twin, err := safe.Twin(hi)
		if err != nil {
			panic(fmt.Sprintf("compmesh: %v", err))
		}
		if twin == hi {
			panic(fmt.Sprintf("compmesh: half-edge %d is its own twin", h))
		}
		if hi > twin {
			continue
		}

		from, to, err := safe.VerticesFromHE(hi)
		if err != nil {
			panic(fmt.Sprintf("compmesh: %v", err))
		}
		pFrom, err := safe.Vertex(from)
		if err != nil {
			panic(fmt.Sprintf("compmesh: %v", err))
		}
		pTo, err := safe.Vertex(to)
		if err != nil {
			panic(fmt.Sprintf("compmesh: %v", err))
		}

		heParent, err := safe.ParentOf(hi)
		if err != nil {
			panic(fmt.Sprintf("compmesh: %v", err))
		}
		twinParent, err := safe.ParentOf(twin)
		if err != nil {
			panic(fmt.Sprintf("compmesh: %v", err))
		}
		left, err := toPatch(hi, heParent)
		if err != nil {
			panic(fmt.Sprintf("compmesh: %v", err))
		}
		right, err := toPatch(twin, twinParent)
		if err != nil {
			panic(fmt.Sprintf("compmesh: %v", err))
		}

		face := Face{
			Vertices: [2]halfedge.VertexIndex{from, to},
			Area:     halfedge.Length(pFrom, pTo),
			Normal:   halfedge.Normal(pFrom, pTo),
			Patches:  [2]Patch{left, right},
		}
		fi := halfedge.FaceIndex(len(faces))
		faces = append(faces, face)
		heToFace[hi] = fi
		heToFace[twin] = fi
	}

	cells := make([]Cell, numCells)
	for p := 0; p < numParents; p++ {
		if !isCell[p] {
			continue
		}
		pi := halfedge.ParentIndex(p)
		cycle, err := safe.HEFromParent(pi)
		if err != nil {
			panic(fmt.Sprintf("compmesh: %v", err))
		}

		faceIdx := make([]halfedge.FaceIndex, len(cycle))
		points := make([]halfedge.Point2, len(cycle))
		vertexIdx := make([]halfedge.VertexIndex, 0, len(cycle))
		seen := make(map[halfedge.VertexIndex]bool, len(cycle))
		for i, h := range cycle {
			fi, ok := heToFace[h]
			if !ok {
				panic(fmt.Sprintf("compmesh: half-edge %d has no assigned face", h))
			}
			faceIdx[i] = fi

			v, err := safe.OriginVertex(h)
			if err != nil {
				panic(fmt.Sprintf("compmesh: %v", err))
			}
			pt, err := safe.Vertex(v)
			if err != nil {
				panic(fmt.Sprintf("compmesh: %v", err))
			}
			points[i] = pt
			if !seen[v] {
				seen[v] = true
				vertexIdx = append(vertexIdx, v)
			}
		}
		if len(vertexIdx) != len(cycle) {
			panic(fmt.Sprintf("compmesh: cell %d's assembled vertex set disagrees with its half-edge cycle", parentToCell[p]))
		}

		centroid, area := halfedge.CentroidAndArea(points)
		cells[parentToCell[p]] = Cell{
			Volume:   area,
			Centroid: centroid,
			Faces:    faceIdx,
			Vertices: vertexIdx,
		}
	}

	boundary := make([]BoundaryPatch, safe.NumBoundaryPatches())
	for i := range boundary {
		tag, err := safe.BoundaryPatchTag(halfedge.BoundaryPatchIndex(i))
		if err != nil {
			panic(fmt.Sprintf("compmesh: %v", err))
		}
		boundary[i] = BoundaryPatch{Tag: tag}
	}

	vertices := make([]halfedge.Point2, safe.NumVertices())
	for i := range vertices {
		v, err := safe.Vertex(halfedge.VertexIndex(i))
		if err != nil {
			panic(fmt.Sprintf("compmesh: %v", err))
		}
		vertices[i] = v
	}

	return &Computational2DMesh{
		vertices: vertices,
		faces:    faces,
		cells:    cells,
		boundary: boundary,
		heToFace: heToFace,
	}
}
