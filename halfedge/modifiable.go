package halfedge

// BoundaryEdge describes one oriented edge of the boundary cycle passed
// to NewFromBoundary: it runs from From to To and its outer (boundary)
// side is tagged with the patch at index Patch in the patches slice
// also passed to NewFromBoundary. Every boundary edge shares the same
// underlying Boundary parent (the whole ring), regardless of how many
// distinct patches tag its edges.
type BoundaryEdge struct {
	From  VertexIndex
	To    VertexIndex
	Patch BoundaryPatchIndex
}

// Modifiable2DMesh is a half-edge mesh under construction: it exposes
// the topology mutations (SplitEdge, Trimming, Notching, SwapEdge) and
// can be consumed into a Safe2DMesh once ValidateTopology passes.
//
// A Modifiable2DMesh must not be mutated concurrently with itself;
// nothing here is safe for concurrent use until it becomes Safe.
type Modifiable2DMesh struct {
	Base2DMesh
}

// NewFromBoundary builds a mesh from a single closed boundary ring.
// edges must be given in cyclic order: edges[i].To == edges[(i+1)%n].From.
// patches holds the boundary-patch tag strings referenced by edges[i].Patch;
// a ring may be stitched from any number of distinct patches (e.g. an
// "inlet" run of edges followed by a "wall" run). Exactly one Boundary
// parent is created for the whole ring and one interior Cell parent is
// appended automatically; a ring's patches do not get their own Parent,
// since the ring's next/prev cycle must stay intact across patch
// boundaries for invariant 4 (cycle closure) to hold.
//
// This constructor does not check that the boundary is simple
// (non-self-intersecting) or that edges form a single closed cycle
// beyond the endpoint-matching it relies on; ValidateTopology is the
// gate that catches violations CheckMesh can detect.
func NewFromBoundary(vertices []Point2, edges []BoundaryEdge, patches []string) (*Modifiable2DMesh, error) {
	n := len(edges)
	if n < 3 {
		return nil, errWrongMeshInitialisation("a boundary needs at least 3 edges")
	}
	for i, e := range edges {
		next := edges[(i+1)%n]
		if e.To != next.From {
			return nil, errWrongMeshInitialisation("boundary edges are not given in cyclic order")
		}
		if int(e.Patch) < 0 || int(e.Patch) >= len(patches) {
			return nil, errWrongMeshInitialisation("boundary edge references an out-of-range patch tag")
		}
		if int(e.From) < 0 || int(e.From) >= len(vertices) || int(e.To) < 0 || int(e.To) >= len(vertices) {
			return nil, errVertexOutOfBound(e.From, len(vertices))
		}
	}

	const boundaryParent = ParentIndex(0)
	const cellParent = ParentIndex(1)
	allParents := []Parent{NewBoundaryParent(), NewCellParent()}

	heToVertex := make([]VertexIndex, 2*n)
	heToTwin := make([]HalfEdgeIndex, 2*n)
	heToNext := make([]HalfEdgeIndex, 2*n)
	heToPrev := make([]HalfEdgeIndex, 2*n)
	heToParent := make([]ParentIndex, 2*n)
	heToPatch := make([]BoundaryPatchIndex, 2*n)
	parentToFirstHE := make([]HalfEdgeIndex, len(allParents))

	for i, e := range edges {
		boundary := HalfEdgeIndex(2 * i)
		interior := HalfEdgeIndex(2*i + 1)

		heToVertex[boundary] = e.From
		heToVertex[interior] = e.To

		heToTwin[boundary] = interior
		heToTwin[interior] = boundary

		heToParent[boundary] = boundaryParent
		heToParent[interior] = cellParent
		heToPatch[boundary] = e.Patch

		heToNext[boundary] = HalfEdgeIndex(2 * ((i + 1) % n))
		heToPrev[boundary] = HalfEdgeIndex(2 * ((i - 1 + n) % n))

		// The interior cycle runs in the opposite direction around the
		// single interior cell, so its next/prev mirror the boundary's.
		heToNext[interior] = HalfEdgeIndex(2*((i-1+n)%n) + 1)
		heToPrev[interior] = HalfEdgeIndex(2*((i+1)%n) + 1)
	}
	parentToFirstHE[boundaryParent] = 0
	parentToFirstHE[cellParent] = 1

	vertexCopy := make([]Point2, len(vertices))
	copy(vertexCopy, vertices)
	patchCopy := make([]string, len(patches))
	copy(patchCopy, patches)

	return &Modifiable2DMesh{Base2DMesh{
		heToVertex:      heToVertex,
		heToTwin:        heToTwin,
		heToNext:        heToNext,
		heToPrev:        heToPrev,
		heToParent:      heToParent,
		heToPatch:       heToPatch,
		vertices:        vertexCopy,
		parents:         allParents,
		parentToFirstHE: parentToFirstHE,
		boundaryPatches: patchCopy,
	}}, nil
}

// SplitEdge inserts a new vertex on half-edge h at parameter t in (0,1)
// and returns its index. h and its twin each gain one new half-edge;
// twins are re-paired so the new edges point across the inserted vertex.
func (m *Modifiable2DMesh) SplitEdge(h HalfEdgeIndex, t float64) (VertexIndex, error) {
	if err := m.checkHE(h); err != nil {
		return 0, err
	}
	if t <= 0 || t >= 1 {
		return 0, errWrongFloatValue(t, 0, 1)
	}

	twin := m.heToTwin[h]
	from, to, err := m.VerticesFromHE(h)
	if err != nil {
		return 0, err
	}
	pFrom, err := m.Vertex(from)
	if err != nil {
		return 0, err
	}
	pTo, err := m.Vertex(to)
	if err != nil {
		return 0, err
	}

	newVertex := VertexIndex(len(m.vertices))
	m.vertices = append(m.vertices, pFrom.Lerp(pTo, t))

	hPrime := HalfEdgeIndex(len(m.heToVertex))
	tPrime := HalfEdgeIndex(len(m.heToVertex) + 1)

	oldNextH := m.heToNext[h]
	oldNextTwin := m.heToNext[twin]

	m.heToVertex = append(m.heToVertex, newVertex, newVertex)
	m.heToTwin = append(m.heToTwin, twin, h)
	m.heToNext = append(m.heToNext, oldNextH, oldNextTwin)
	m.heToPrev = append(m.heToPrev, h, twin)
	m.heToParent = append(m.heToParent, m.heToParent[h], m.heToParent[twin])
	m.heToPatch = append(m.heToPatch, m.heToPatch[h], m.heToPatch[twin])

	m.heToTwin[h] = tPrime
	m.heToTwin[twin] = hPrime

	m.heToNext[h] = hPrime
	m.heToPrev[oldNextH] = hPrime

	m.heToNext[twin] = tPrime
	m.heToPrev[oldNextTwin] = tPrime

	return newVertex, nil
}

// edgeExists reports whether a half-edge runs directly from u to v.
func (m *Modifiable2DMesh) edgeExists(u, v VertexIndex) (bool, error) {
	hes, err := m.HEFromVertex(u)
	if err != nil {
		return false, err
	}
	for _, h := range hes {
		_, to, err := m.VerticesFromHE(h)
		if err != nil {
			return false, err
		}
		if to == v {
			return true, nil
		}
	}
	return false, nil
}

// indexOfOrigin returns the position in cycle of the half-edge
// originating at v, or -1 if none does.
func (m *Modifiable2DMesh) indexOfOrigin(cycle []HalfEdgeIndex, v VertexIndex) int {
	for i, h := range cycle {
		if m.heToVertex[h] == v {
			return i
		}
	}
	return -1
}

// Trimming connects vertices u and v, which must both lie on parent's
// cycle and must not already be directly connected. It splits parent's
// region in two, returning the index of the newly created Cell parent.
func (m *Modifiable2DMesh) Trimming(u, v VertexIndex, parent ParentIndex) (ParentIndex, error) {
	if int(u) < 0 || int(u) >= len(m.vertices) {
		return 0, errVertexOutOfBound(u, len(m.vertices))
	}
	if int(v) < 0 || int(v) >= len(m.vertices) {
		return 0, errVertexOutOfBound(v, len(m.vertices))
	}
	if u == v {
		return 0, errWrongMeshInitialisation("trimming requires two distinct vertices")
	}
	if err := m.checkParent(parent); err != nil {
		return 0, err
	}

	exists, err := m.edgeExists(u, v)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, errAlreadyExists(u, v)
	}

	cycle, err := m.HEFromParent(parent)
	if err != nil {
		return 0, err
	}

	iu := m.indexOfOrigin(cycle, u)
	if iu < 0 {
		return 0, errParentDoesNotContainVertex(parent, u)
	}
	iv := m.indexOfOrigin(cycle, v)
	if iv < 0 {
		return 0, errParentDoesNotContainVertex(parent, v)
	}

	n := len(cycle)
	lastOfArcA := cycle[(iv-1+n)%n] // ends at v, stays with parent
	lastOfArcB := cycle[(iu-1+n)%n] // ends at u, reparented

	newCell := ParentIndex(len(m.parents))
	m.parents = append(m.parents, NewCellParent())
	m.parentToFirstHE = append(m.parentToFirstHE, 0)

	heUV := HalfEdgeIndex(len(m.heToVertex))     // u -> v, new cell
	heVU := HalfEdgeIndex(len(m.heToVertex) + 1) // v -> u, original parent

	m.heToVertex = append(m.heToVertex, u, v)
	m.heToTwin = append(m.heToTwin, heVU, heUV)
	m.heToNext = append(m.heToNext, cycle[iv], cycle[iu])
	m.heToPrev = append(m.heToPrev, lastOfArcB, lastOfArcA)
	m.heToParent = append(m.heToParent, newCell, parent)
	m.heToPatch = append(m.heToPatch, 0, 0)

	m.heToNext[lastOfArcB] = heUV
	m.heToPrev[cycle[iv]] = heUV

	m.heToNext[lastOfArcA] = heVU
	m.heToPrev[cycle[iu]] = heVU

	for i := iv; i != iu; i = (i + 1) % n {
		m.heToParent[cycle[i]] = newCell
	}

	m.parentToFirstHE[newCell] = heUV
	m.parentToFirstHE[parent] = heVU

	return newCell, nil
}

// Notching carves a new triangular cell off half-edge h, with q as its
// apex. h's neighbour parent (the parent of h's twin) must be a Cell;
// otherwise there is no region to carve the triangle into.
func (m *Modifiable2DMesh) Notching(h HalfEdgeIndex, q Point2) (ParentIndex, error) {
	if err := m.checkHE(h); err != nil {
		return 0, err
	}
	twin, err := m.Twin(h)
	if err != nil {
		return 0, err
	}
	neighborParent, err := m.ParentOf(twin)
	if err != nil {
		return 0, err
	}
	neighbor, err := m.Parent(neighborParent)
	if err != nil {
		return 0, err
	}
	if neighbor.Kind != ParentCell {
		return 0, errNoElementCreatable(h)
	}

	vFrom, vTo, err := m.VerticesFromHE(h)
	if err != nil {
		return 0, err
	}

	newVertex, err := m.SplitEdge(h, 0.5)
	if err != nil {
		return 0, err
	}
	m.vertices[newVertex] = q

	return m.Trimming(vFrom, vTo, neighborParent)
}

// SwapEdge flips the shared edge of two adjacent triangular cells,
// replacing it with the edge joining their two opposite vertices.
func (m *Modifiable2DMesh) SwapEdge(cellA, cellB ParentIndex) error {
	pa, err := m.Parent(cellA)
	if err != nil {
		return err
	}
	pb, err := m.Parent(cellB)
	if err != nil {
		return err
	}
	if pa.Kind != ParentCell || pb.Kind != ParentCell {
		return errWrongMeshInitialisation("swap-edge requires two Cell parents")
	}

	cycleA, err := m.HEFromParent(cellA)
	if err != nil {
		return err
	}
	cycleB, err := m.HEFromParent(cellB)
	if err != nil {
		return err
	}
	if len(cycleA) != 3 || len(cycleB) != 3 {
		return errWrongMeshInitialisation("swap-edge requires two triangular cells")
	}

	var heA HalfEdgeIndex
	shared := 0
	for _, h := range cycleA {
		twin := m.heToTwin[h]
		if m.heToParent[twin] == cellB {
			heA = h
			shared++
		}
	}
	if shared != 1 {
		return errWrongMeshInitialisationCells(cellA, cellB)
	}
	heB := m.heToTwin[heA]

	hA2 := m.heToNext[heA]
	hA3 := m.heToNext[hA2]
	hB2 := m.heToNext[heB]
	hB3 := m.heToNext[hB2]

	p3 := m.heToVertex[hA3]
	p4 := m.heToVertex[hB3]

	p3Pt, err := m.Vertex(p3)
	if err != nil {
		return err
	}
	p1Pt, err := m.Vertex(m.heToVertex[heA])
	if err != nil {
		return err
	}
	p4Pt, err := m.Vertex(p4)
	if err != nil {
		return err
	}
	p2Pt, err := m.Vertex(m.heToVertex[heB])
	if err != nil {
		return err
	}
	if TriangleArea(p3Pt, p1Pt, p4Pt) == 0 || TriangleArea(p3Pt, p4Pt, p2Pt) == 0 {
		return errAlignedEdges()
	}

	firstA := m.parentToFirstHE[cellA]
	firstB := m.parentToFirstHE[cellB]

	// Repurpose heA/heB in place: heA becomes the new edge P4->P3 (cellA
	// side), heB becomes the new edge P3->P4 (cellB side). Their twin
	// pairing (heA <-> heB) is unchanged.
	m.heToVertex[heA] = p4
	m.heToVertex[heB] = p3

	m.heToParent[hA2] = cellB
	m.heToParent[hB2] = cellA

	m.heToNext[hA3] = hB2
	m.heToPrev[hB2] = hA3
	m.heToNext[hB2] = heA
	m.heToPrev[heA] = hB2
	m.heToNext[heA] = hA3
	m.heToPrev[hA3] = heA

	m.heToNext[heB] = hB3
	m.heToPrev[hB3] = heB
	m.heToNext[hB3] = hA2
	m.heToPrev[hA2] = hB3
	m.heToNext[hA2] = heB
	m.heToPrev[heB] = hA2

	if firstA == hA2 {
		m.parentToFirstHE[cellA] = hA3
	}
	if firstB == hB2 {
		m.parentToFirstHE[cellB] = hB3
	}

	return nil
}

// ValidateTopology runs CheckMesh and, if it passes, consumes m into a
// frozen Safe2DMesh. On failure the error reports the first invariant
// violation found; m is left unchanged and may be repaired and
// re-validated.
func (m *Modifiable2DMesh) ValidateTopology() (*Safe2DMesh, error) {
	if err := m.CheckMesh(); err != nil {
		return nil, err
	}
	return &Safe2DMesh{Base2DMesh: m.Base2DMesh}, nil
}

// IntoSafeUnchecked consumes m into a Safe2DMesh without running
// CheckMesh. Callers take on the obligation that m already satisfies
// every invariant in package halfedge's documentation.
func (m *Modifiable2DMesh) IntoSafeUnchecked() *Safe2DMesh {
	return &Safe2DMesh{Base2DMesh: m.Base2DMesh}
}
