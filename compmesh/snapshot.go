package compmesh

import (
	"encoding/gob"
	"io"

	"github.com/xerusn/meshkit/halfedge"
)

// Snapshot is a gob-encodable flattening of a Computational2DMesh,
// round-trippable field for field. No third-party binary codec appears
// anywhere in the retrieved library pack this module is grounded on, so
// this uses encoding/gob, the standard library's closest equivalent to
// a Rust bincode/serde pairing for a Go-only consumer.
type Snapshot struct {
	Vertices []halfedge.Point2
	Faces    []Face
	Cells    []Cell
	Boundary []BoundaryPatch
	HEToFace map[halfedge.HalfEdgeIndex]halfedge.FaceIndex
}

// ToSnapshot flattens c into its serializable form.
func (c *Computational2DMesh) ToSnapshot() Snapshot {
	return Snapshot{
		Vertices: c.vertices,
		Faces:    c.faces,
		Cells:    c.cells,
		Boundary: c.boundary,
		HEToFace: c.heToFace,
	}
}

// FromSnapshot rebuilds a Computational2DMesh from a Snapshot.
func FromSnapshot(s Snapshot) *Computational2DMesh {
	return &Computational2DMesh{
		vertices: s.Vertices,
		faces:    s.Faces,
		cells:    s.Cells,
		boundary: s.Boundary,
		heToFace: s.HEToFace,
	}
}

// WriteTo gob-encodes c's snapshot to w.
func (c *Computational2DMesh) WriteTo(w io.Writer) error {
	return gob.NewEncoder(w).Encode(c.ToSnapshot())
}

// ReadFrom gob-decodes a Computational2DMesh previously written by WriteTo.
func ReadFrom(r io.Reader) (*Computational2DMesh, error) {
	var s Snapshot
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	return FromSnapshot(s), nil
}
