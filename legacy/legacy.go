// Package legacy implements the pre-half-edge mesh model: a simple
// nodes/edges/cells-by-index block with an Editable -> Finished
// lifecycle.
//
// Deprecated: this package predates the half-edge core in package
// halfedge and is kept only so callers who built against it before the
// half-edge model existed still compile against this module. New code
// should build meshes with halfedge.NewFromBoundary and convert them
// with compmesh.NewFromSafe instead.
package legacy

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned by every mutating operation this
// package has not completed. The half-edge core is the canonical,
// actively developed model; this surface is transitional and its
// topology-editing operations were never finished upstream either.
var ErrNotImplemented = errors.New("legacy: not implemented")

// NodeIndex identifies a node (vertex) within a MeshBlock2D. It is
// distinct from halfedge.VertexIndex: the two models were never
// unified, and mixing their indices would be a silent bug.
type NodeIndex int

// EdgeIndex identifies an edge within a MeshBlock2D.
type EdgeIndex int

// CellIndex identifies a cell within a MeshBlock2D.
type CellIndex int

// Point2 is a 2D point, duplicated here rather than imported from
// halfedge so this package carries no dependency on the core it is
// transitional to.
type Point2 struct {
	X, Y float64
}

// Edge is a directed-by-position edge record: the two node indices it
// connects and the cell(s) on either side. ParentCells is kept as the
// caller supplied it; Finish does not fill it in.
type Edge struct {
	NodeA, NodeB NodeIndex
	ParentCells  [2]*CellIndex
}

// Cell is a polygon identified by the ordered edge indices forming its
// boundary; its node list is derived from those edges by Finish.
type Cell struct {
	EdgeIndices []EdgeIndex
	nodes       []NodeIndex
}

// meshBlock2D is the shared representation behind both lifecycle phases.
type meshBlock2D struct {
	nodes           []Point2
	edges           []Edge
	cells           []Cell
	boundaryPatches []string
	boundaryEdgeIdx [][]EdgeIndex
}

// EditableMeshBlock2D is a MeshBlock2D under construction.
type EditableMeshBlock2D struct {
	block meshBlock2D
}

// FinishedMeshBlock2D is a MeshBlock2D that has passed Check; its read
// accessors are identical to EditableMeshBlock2D's, it simply forbids
// further mutation.
type FinishedMeshBlock2D struct {
	block meshBlock2D
}

// NewFromBoundaries creates a new editable mesh containing only the
// given boundary description; no interior cells exist until AddCells
// is used (not yet implemented — see ErrNotImplemented).
func NewFromBoundaries(nodes []Point2, edges []Edge, boundaryPatches []string, boundaryEdgeIdx [][]EdgeIndex) (*EditableMeshBlock2D, error) {
	if len(boundaryEdgeIdx) != len(boundaryPatches) {
		return nil, fmt.Errorf("legacy: got %d boundary patches but %d boundary edge groups", len(boundaryPatches), len(boundaryEdgeIdx))
	}
	return &EditableMeshBlock2D{block: meshBlock2D{
		nodes:           append([]Point2(nil), nodes...),
		edges:           append([]Edge(nil), edges...),
		boundaryPatches: append([]string(nil), boundaryPatches...),
		boundaryEdgeIdx: boundaryEdgeIdx,
	}}, nil
}

// NewUnchecked builds an editable mesh from already-assembled parts
// with no topology check, mirroring the original model's unsafe
// constructor. Callers take on the obligation Check would otherwise
// enforce.
func NewUnchecked(nodes []Point2, edges []Edge, cells []Cell, boundaryPatches []string, boundaryEdgeIdx [][]EdgeIndex) *EditableMeshBlock2D {
	return &EditableMeshBlock2D{block: meshBlock2D{
		nodes:           nodes,
		edges:           edges,
		cells:           cells,
		boundaryPatches: boundaryPatches,
		boundaryEdgeIdx: boundaryEdgeIdx,
	}}
}

// Cells returns every cell.
func (m *EditableMeshBlock2D) Cells() []Cell { return m.block.cells }

// Edges returns every edge.
func (m *EditableMeshBlock2D) Edges() []Edge { return m.block.edges }

// Nodes returns every node.
func (m *EditableMeshBlock2D) Nodes() []Point2 { return m.block.nodes }

// CellNodes returns the nodes of the cell at cellIdx, in cell order.
func (m *EditableMeshBlock2D) CellNodes(cellIdx CellIndex) ([]Point2, error) {
	return m.block.cellNodes(cellIdx)
}

// CellEdges returns the edges of the cell at cellIdx, in cell order.
func (m *EditableMeshBlock2D) CellEdges(cellIdx CellIndex) ([]Edge, error) {
	return m.block.cellEdges(cellIdx)
}

// Check verifies the mesh's topology. Unimplemented upstream and here.
func (m *EditableMeshBlock2D) Check() error { return ErrNotImplemented }

// Finish runs Check and, on success, freezes the mesh into a
// FinishedMeshBlock2D, updating each cell's derived node list.
func (m *EditableMeshBlock2D) Finish() (*FinishedMeshBlock2D, error) {
	if err := m.Check(); err != nil {
		return nil, err
	}
	for i := range m.block.cells {
		nodes, err := m.block.cellNodesRaw(CellIndex(i))
		if err != nil {
			return nil, err
		}
		m.block.cells[i].nodes = nodes
	}
	return &FinishedMeshBlock2D{block: m.block}, nil
}

// FinishWithoutCheck freezes the mesh without running Check. Any
// badly-formed mesh will produce undefined results when queried later.
func (m *EditableMeshBlock2D) FinishWithoutCheck() *FinishedMeshBlock2D {
	return &FinishedMeshBlock2D{block: m.block}
}

// AddCells is not implemented; the half-edge core's Trimming/Notching
// are the supported ways to add cells to a mesh.
func (m *EditableMeshBlock2D) AddCells(edgeGroups [][]EdgeIndex) error { return ErrNotImplemented }

// AddEdges is not implemented.
func (m *EditableMeshBlock2D) AddEdges(edges []Edge) error { return ErrNotImplemented }

// RemoveNode is not implemented: node removal requires renumbering
// every index referencing it, whose semantics this module deliberately
// leaves unresolved (see the module's design notes).
func (m *EditableMeshBlock2D) RemoveNode(idx NodeIndex) error { return ErrNotImplemented }

// RemoveCell is not implemented.
func (m *EditableMeshBlock2D) RemoveCell(idx CellIndex) error { return ErrNotImplemented }

// SwapEdge is not implemented; use halfedge.Modifiable2DMesh.SwapEdge.
func (m *EditableMeshBlock2D) SwapEdge(cellA, cellB CellIndex) error { return ErrNotImplemented }

// Edit reopens a finished mesh for editing.
func (m *FinishedMeshBlock2D) Edit() *EditableMeshBlock2D {
	return &EditableMeshBlock2D{block: m.block}
}

// Cells returns every cell.
func (m *FinishedMeshBlock2D) Cells() []Cell { return m.block.cells }

// Edges returns every edge.
func (m *FinishedMeshBlock2D) Edges() []Edge { return m.block.edges }

// Nodes returns every node.
func (m *FinishedMeshBlock2D) Nodes() []Point2 { return m.block.nodes }

// CellNodes returns the nodes of the cell at cellIdx, in cell order.
func (m *FinishedMeshBlock2D) CellNodes(cellIdx CellIndex) ([]Point2, error) {
	return m.block.cellNodes(cellIdx)
}

// CellEdges returns the edges of the cell at cellIdx, in cell order.
func (m *FinishedMeshBlock2D) CellEdges(cellIdx CellIndex) ([]Edge, error) {
	return m.block.cellEdges(cellIdx)
}

func (b *meshBlock2D) cell(idx CellIndex) (*Cell, error) {
	if int(idx) < 0 || int(idx) >= len(b.cells) {
		return nil, fmt.Errorf("legacy: cell index %d out of bound (have %d)", idx, len(b.cells))
	}
	return &b.cells[idx], nil
}

func (b *meshBlock2D) cellEdges(idx CellIndex) ([]Edge, error) {
	cell, err := b.cell(idx)
	if err != nil {
		return nil, err
	}
	out := make([]Edge, len(cell.EdgeIndices))
	for i, ei := range cell.EdgeIndices {
		if int(ei) < 0 || int(ei) >= len(b.edges) {
			return nil, fmt.Errorf("legacy: edge index %d out of bound (have %d)", ei, len(b.edges))
		}
		out[i] = b.edges[ei]
	}
	return out, nil
}

func (b *meshBlock2D) cellNodesRaw(idx CellIndex) ([]NodeIndex, error) {
	edges, err := b.cellEdges(idx)
	if err != nil {
		return nil, err
	}
	var out []NodeIndex
	seen := make(map[NodeIndex]bool)
	for _, e := range edges {
		for _, n := range [2]NodeIndex{e.NodeA, e.NodeB} {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out, nil
}

func (b *meshBlock2D) cellNodes(idx CellIndex) ([]Point2, error) {
	nodeIdx, err := b.cellNodesRaw(idx)
	if err != nil {
		return nil, err
	}
	out := make([]Point2, len(nodeIdx))
	for i, n := range nodeIdx {
		if int(n) < 0 || int(n) >= len(b.nodes) {
			return nil, fmt.Errorf("legacy: node index %d out of bound (have %d)", n, len(b.nodes))
		}
		out[i] = b.nodes[n]
	}
	return out, nil
}
