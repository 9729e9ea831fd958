package halfedge

// Base2DMesh is the array-based half-edge store: five half-edge arrays
// (vertex, twin, next, prev, parent), the vertex coordinate array, the
// parent list, a parent -> first-half-edge map, and the boundary-patch
// tag list. All operations are O(1) except cycle traversal (O(cycle
// length)) and neighbor queries from a vertex (O(|HE|) linear scan,
// acceptable given the interactive mesh sizes this library targets).
//
// Base2DMesh itself carries no safety guarantees; it is embedded by
// Modifiable2DMesh (mutable) and Safe2DMesh (frozen, validated).
type Base2DMesh struct {
	heToVertex []VertexIndex
	heToTwin   []HalfEdgeIndex
	heToNext   []HalfEdgeIndex
	heToPrev   []HalfEdgeIndex
	heToParent []ParentIndex
	// heToPatch holds the boundary-patch tag of each half-edge whose
	// parent is ParentBoundary; entries for half-edges with any other
	// parent kind are unused. Patches are carried per-half-edge rather
	// than on the shared boundary Parent so a single ring's next/prev
	// cycle can be stitched from multiple patches without breaking the
	// cycle-closure invariant.
	heToPatch []BoundaryPatchIndex

	vertices []Point2
	parents  []Parent

	parentToFirstHE []HalfEdgeIndex
	boundaryPatches []string
}

// NumVertices returns the number of vertices in the mesh.
func (m *Base2DMesh) NumVertices() int { return len(m.vertices) }

// NumHalfEdges returns the number of half-edges in the mesh.
func (m *Base2DMesh) NumHalfEdges() int { return len(m.heToVertex) }

// NumParents returns the number of parents (cells + boundaries) in the mesh.
func (m *Base2DMesh) NumParents() int { return len(m.parents) }

// NumBoundaryPatches returns the number of distinct boundary-patch tags.
func (m *Base2DMesh) NumBoundaryPatches() int { return len(m.boundaryPatches) }

// Vertex returns the coordinates of vertex v.
func (m *Base2DMesh) Vertex(v VertexIndex) (Point2, error) {
	if int(v) < 0 || int(v) >= len(m.vertices) {
		return Point2{}, errVertexOutOfBound(v, len(m.vertices))
	}
	return m.vertices[v], nil
}

// BoundaryPatchTag returns the name of the given boundary patch.
func (m *Base2DMesh) BoundaryPatchTag(p BoundaryPatchIndex) (string, error) {
	if int(p) < 0 || int(p) >= len(m.boundaryPatches) {
		return "", &MeshError{Kind: VertexOutOfBound, Got: int(p), Len: len(m.boundaryPatches), Message: "boundary patch index out of bound"}
	}
	return m.boundaryPatches[p], nil
}

func (m *Base2DMesh) checkHE(h HalfEdgeIndex) error {
	if int(h) < 0 || int(h) >= len(m.heToVertex) {
		return errHalfEdgeOutOfBound(h, len(m.heToVertex))
	}
	return nil
}

func (m *Base2DMesh) checkParent(p ParentIndex) error {
	if int(p) < 0 || int(p) >= len(m.parents) {
		return errParentOutOfBound(p, len(m.parents))
	}
	return nil
}

// Twin returns the twin half-edge of h.
func (m *Base2DMesh) Twin(h HalfEdgeIndex) (HalfEdgeIndex, error) {
	if err := m.checkHE(h); err != nil {
		return 0, err
	}
	return m.heToTwin[h], nil
}

// Next returns the next half-edge around h's parent cycle.
func (m *Base2DMesh) Next(h HalfEdgeIndex) (HalfEdgeIndex, error) {
	if err := m.checkHE(h); err != nil {
		return 0, err
	}
	return m.heToNext[h], nil
}

// Prev returns the previous half-edge around h's parent cycle.
func (m *Base2DMesh) Prev(h HalfEdgeIndex) (HalfEdgeIndex, error) {
	if err := m.checkHE(h); err != nil {
		return 0, err
	}
	return m.heToPrev[h], nil
}

// ParentOf returns the parent index of h.
func (m *Base2DMesh) ParentOf(h HalfEdgeIndex) (ParentIndex, error) {
	if err := m.checkHE(h); err != nil {
		return 0, err
	}
	return m.heToParent[h], nil
}

// OriginVertex returns the vertex h originates from.
func (m *Base2DMesh) OriginVertex(h HalfEdgeIndex) (VertexIndex, error) {
	if err := m.checkHE(h); err != nil {
		return 0, err
	}
	return m.heToVertex[h], nil
}

// Parent returns the tagged Parent value for p.
func (m *Base2DMesh) Parent(p ParentIndex) (Parent, error) {
	if err := m.checkParent(p); err != nil {
		return Parent{}, err
	}
	return m.parents[p], nil
}

// PatchOf returns the boundary-patch tag of h. h's parent must be of
// kind ParentBoundary; any other kind is an error, since only boundary
// half-edges carry a patch.
func (m *Base2DMesh) PatchOf(h HalfEdgeIndex) (BoundaryPatchIndex, error) {
	if err := m.checkHE(h); err != nil {
		return 0, err
	}
	parent, err := m.Parent(m.heToParent[h])
	if err != nil {
		return 0, err
	}
	if parent.Kind != ParentBoundary {
		return 0, &MeshError{Kind: ParentNotCorrect, HalfEdge: h, Message: "half-edge's parent is not a boundary ring"}
	}
	return m.heToPatch[h], nil
}

// FirstHalfEdge returns the half-edge parent->first_he[p] used to start
// walking p's cycle.
func (m *Base2DMesh) FirstHalfEdge(p ParentIndex) (HalfEdgeIndex, error) {
	if err := m.checkParent(p); err != nil {
		return 0, err
	}
	return m.parentToFirstHE[p], nil
}

// VerticesFromHE returns the (from, to) endpoints of h, where to is the
// origin of h's twin.
func (m *Base2DMesh) VerticesFromHE(h HalfEdgeIndex) (from, to VertexIndex, err error) {
	if err = m.checkHE(h); err != nil {
		return 0, 0, err
	}
	twin := m.heToTwin[h]
	if err = m.checkHE(twin); err != nil {
		return 0, 0, err
	}
	return m.heToVertex[h], m.heToVertex[twin], nil
}

// HEVector returns the displacement vector of h, from its origin to its
// twin's origin.
func (m *Base2DMesh) HEVector(h HalfEdgeIndex) (Point2, error) {
	from, to, err := m.VerticesFromHE(h)
	if err != nil {
		return Point2{}, err
	}
	a, err := m.Vertex(from)
	if err != nil {
		return Point2{}, err
	}
	b, err := m.Vertex(to)
	if err != nil {
		return Point2{}, err
	}
	return b.Sub(a), nil
}

// NormalOf returns the CCW-rotated unit normal of h's edge.
func (m *Base2DMesh) NormalOf(h HalfEdgeIndex) (Point2, error) {
	from, to, err := m.VerticesFromHE(h)
	if err != nil {
		return Point2{}, err
	}
	a, err := m.Vertex(from)
	if err != nil {
		return Point2{}, err
	}
	b, err := m.Vertex(to)
	if err != nil {
		return Point2{}, err
	}
	return Normal(a, b), nil
}

// maxCycleSteps bounds a cycle walk so a corrupt (open) mesh cannot spin
// forever; invariant 3 (spec.md §3) requires closure within |HE| steps.
func (m *Base2DMesh) maxCycleSteps() int {
	n := len(m.heToVertex)
	if n == 0 {
		return 1
	}
	return n
}

// HEFromParent returns the ordered half-edges forming p's cycle,
// starting at parent_to_he[p] and following next.
func (m *Base2DMesh) HEFromParent(p ParentIndex) ([]HalfEdgeIndex, error) {
	first, err := m.FirstHalfEdge(p)
	if err != nil {
		return nil, err
	}
	cycle := []HalfEdgeIndex{first}
	cur := first
	limit := m.maxCycleSteps()
	for i := 0; i < limit; i++ {
		next, err := m.Next(cur)
		if err != nil {
			return nil, err
		}
		if next == first {
			return cycle, nil
		}
		cycle = append(cycle, next)
		cur = next
	}
	return nil, errWrongHalfEdgeLoop(first)
}

// VerticesFromParent walks p's cycle and returns the origin vertex of
// each half-edge in the same order.
func (m *Base2DMesh) VerticesFromParent(p ParentIndex) ([]VertexIndex, error) {
	cycle, err := m.HEFromParent(p)
	if err != nil {
		return nil, err
	}
	out := make([]VertexIndex, len(cycle))
	for i, h := range cycle {
		v, err := m.OriginVertex(h)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// NeighborsFromParent returns, for each half-edge of p's cycle, the
// parent of its twin.
func (m *Base2DMesh) NeighborsFromParent(p ParentIndex) ([]ParentIndex, error) {
	cycle, err := m.HEFromParent(p)
	if err != nil {
		return nil, err
	}
	out := make([]ParentIndex, len(cycle))
	for i, h := range cycle {
		twin, err := m.Twin(h)
		if err != nil {
			return nil, err
		}
		parent, err := m.ParentOf(twin)
		if err != nil {
			return nil, err
		}
		out[i] = parent
	}
	return out, nil
}

// HEFromVertex returns every half-edge originating at v. This is a
// linear scan over all half-edges; an auxiliary vertex->some_he map
// would make it O(degree) but is not required by the spec at
// interactive mesh sizes.
func (m *Base2DMesh) HEFromVertex(v VertexIndex) ([]HalfEdgeIndex, error) {
	if int(v) < 0 || int(v) >= len(m.vertices) {
		return nil, errVertexOutOfBound(v, len(m.vertices))
	}
	var out []HalfEdgeIndex
	for h, origin := range m.heToVertex {
		if origin == v {
			out = append(out, HalfEdgeIndex(h))
		}
	}
	return out, nil
}

// CheckMesh verifies invariants 1-5 of the module's data model against
// the whole mesh and returns a typed error identifying the first broken
// invariant and the exact indices involved. It is not called on every
// mutation; it is the gate validate_topology uses to produce a Safe mesh.
func (m *Base2DMesh) CheckMesh() error {
	n := len(m.heToVertex)

	if len(m.heToTwin) != n || len(m.heToNext) != n || len(m.heToPrev) != n || len(m.heToParent) != n || len(m.heToPatch) != n {
		return &MeshError{Kind: WrongMeshInitialisation, Message: "half-edge arrays have mismatched lengths"}
	}

	// Invariant 5: all indices in range.
	for h := 0; h < n; h++ {
		hi := HalfEdgeIndex(h)
		if int(m.heToVertex[h]) < 0 || int(m.heToVertex[h]) >= len(m.vertices) {
			return errVertexOutOfBound(m.heToVertex[h], len(m.vertices))
		}
		if int(m.heToTwin[h]) < 0 || int(m.heToTwin[h]) >= n {
			return errHalfEdgeOutOfBound(m.heToTwin[h], n)
		}
		if int(m.heToNext[h]) < 0 || int(m.heToNext[h]) >= n {
			return errHalfEdgeOutOfBound(m.heToNext[h], n)
		}
		if int(m.heToPrev[h]) < 0 || int(m.heToPrev[h]) >= n {
			return errHalfEdgeOutOfBound(m.heToPrev[h], n)
		}
		if int(m.heToParent[h]) < 0 || int(m.heToParent[h]) >= len(m.parents) {
			return errParentOutOfBound(m.heToParent[h], len(m.parents))
		}
		if m.parents[m.heToParent[h]].Kind == ParentBoundary {
			if int(m.heToPatch[h]) < 0 || int(m.heToPatch[h]) >= len(m.boundaryPatches) {
				return &MeshError{Kind: VertexOutOfBound, HalfEdge: hi, Got: int(m.heToPatch[h]), Len: len(m.boundaryPatches), Message: "boundary half-edge references an out-of-range patch tag"}
			}
		}

		// Invariant 1: twin(twin(h)) == h.
		twin := m.heToTwin[h]
		if m.heToTwin[twin] != hi {
			return errTwinNotCorrect(hi, twin)
		}

		// Invariant 2: prev(next(h)) == h.
		next := m.heToNext[h]
		if m.heToPrev[next] != hi {
			return errNextPrevNotCorrect(hi, next)
		}
	}

	if len(m.parentToFirstHE) != len(m.parents) {
		return &MeshError{Kind: WrongMeshInitialisation, Message: "parent-to-first-half-edge map has wrong length"}
	}

	// Invariant 4: every parent has at least one half-edge, the cycle
	// from parent_to_he[p] stays within parent p, and every half-edge
	// with parent p is reachable from that cycle (checked by comparing
	// the cycle's length against the count of half-edges claiming p).
	heCountByParent := make(map[ParentIndex]int, len(m.parents))
	for h := 0; h < n; h++ {
		heCountByParent[m.heToParent[h]]++
	}

	for p := 0; p < len(m.parents); p++ {
		pi := ParentIndex(p)

		// Invariant 6: no parent is None.
		if m.parents[p].IsNone() {
			return &MeshError{Kind: ParentNotCorrect, Parent: pi, Message: "parent has kind None"}
		}

		cycle, err := m.HEFromParent(pi)
		if err != nil {
			return err
		}
		if len(cycle) == 0 {
			return &MeshError{Kind: ParentNotCorrect, Parent: pi, Message: "parent has an empty cycle"}
		}
		for _, h := range cycle {
			if m.heToParent[h] != pi {
				return errParentNotCorrect(h, pi)
			}
		}
		if len(cycle) != heCountByParent[pi] {
			return &MeshError{Kind: ParentNotCorrect, Parent: pi, Message: "half-edges claim this parent but are not reachable from its cycle"}
		}
	}

	return nil
}
