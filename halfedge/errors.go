package halfedge

import "fmt"

// ErrorKind enumerates the typed failure modes raised by the halfedge
// package, mirroring the Kind table in the module's specification: local
// preconditions on mutating operations return recoverable errors of
// these kinds, and validate_topology recovers the first invariant
// violation it finds rather than panicking, so a broken mesh can be
// repaired by the caller.
type ErrorKind int

const (
	_ ErrorKind = iota
	// VertexOutOfBound: an index into the vertex array exceeds the
	// vertex count. It is also returned for an out-of-range
	// boundary-patch index, with Got holding that index and Message
	// saying it is a patch index.
	VertexOutOfBound
	// HalfEdgeOutOfBound: a half-edge index exceeds the half-edge count.
	HalfEdgeOutOfBound
	// ParentOutOfBound: a parent index exceeds the parent count.
	ParentOutOfBound
	// WrongFloatValue: a split ratio or similar value falls outside its
	// declared range.
	WrongFloatValue
	// TwinNotCorrect: twin(twin(h)) != h during validation.
	TwinNotCorrect
	// ParentNotCorrect: a half-edge's parent disagrees with the parent
	// cycle that is supposed to contain it.
	ParentNotCorrect
	// NextPrevNotCorrect: prev(next(h)) != h.
	NextPrevNotCorrect
	// WrongHalfEdgeLoop: a parent cycle does not close within the
	// half-edge count.
	WrongHalfEdgeLoop
	// AlreadyExists: trimming was requested between vertices that are
	// already directly connected by an edge.
	AlreadyExists
	// ParentDoesNotContainVertex: trimming was requested in a parent
	// whose cycle does not reach one of the requested endpoints.
	ParentDoesNotContainVertex
	// AlignedEdges: swap-edge would yield a degenerate, zero-area
	// triangle.
	AlignedEdges
	// WrongMeshInitialisation: inconsistent input to NewFromBoundary or
	// to a swap-edge precondition (the two parents do not share exactly
	// one edge).
	WrongMeshInitialisation
	// MaxIterationReached: a bounded cycle walk exceeded its iteration
	// cap without closing.
	MaxIterationReached
	// NoElementCreatable: notching was requested on an edge whose
	// neighbour side cannot host a new triangle.
	NoElementCreatable
)

var errorKindNames = map[ErrorKind]string{
	VertexOutOfBound:           "VertexOutOfBound",
	HalfEdgeOutOfBound:         "HalfEdgeOutOfBound",
	ParentOutOfBound:           "ParentOutOfBound",
	WrongFloatValue:            "WrongFloatValue",
	TwinNotCorrect:             "TwinNotCorrect",
	ParentNotCorrect:           "ParentNotCorrect",
	NextPrevNotCorrect:         "NextPrevNotCorrect",
	WrongHalfEdgeLoop:          "WrongHalfEdgeLoop",
	AlreadyExists:              "AlreadyExists",
	ParentDoesNotContainVertex: "ParentDoesNotContainVertex",
	AlignedEdges:               "AlignedEdges",
	WrongMeshInitialisation:    "WrongMeshInitialisation",
	MaxIterationReached:        "MaxIterationReached",
	NoElementCreatable:         "NoElementCreatable",
}

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "Unspecified"
}

// MeshError is the single error type raised by this package. Kind
// selects which of the fields below are meaningful; callers recover the
// exact failing indices with errors.As rather than parsing a message.
type MeshError struct {
	Kind ErrorKind

	// Index-range fields (VertexOutOfBound, HalfEdgeOutOfBound, ParentOutOfBound).
	Got int
	Len int

	// WrongFloatValue fields.
	Value          float64
	ExpectedLow    float64
	ExpectedHigh   float64

	// Invariant-violation fields (TwinNotCorrect, ParentNotCorrect, NextPrevNotCorrect, WrongHalfEdgeLoop).
	HalfEdge HalfEdgeIndex
	Other    HalfEdgeIndex
	Parent   ParentIndex

	// Trimming/swap-edge operand fields.
	VertexA VertexIndex
	VertexB VertexIndex
	CellA   ParentIndex
	CellB   ParentIndex

	// Message carries extra, non-structured context; it is empty for
	// errors that carry only structured fields.
	Message string
}

// Error implements the error interface.
func (e *MeshError) Error() string {
	switch e.Kind {
	case VertexOutOfBound:
		return fmt.Sprintf("vertex index out of bound: got %d, have %d vertices", e.Got, e.Len)
	case HalfEdgeOutOfBound:
		return fmt.Sprintf("half-edge index out of bound: got %d, have %d half-edges", e.Got, e.Len)
	case ParentOutOfBound:
		return fmt.Sprintf("parent index out of bound: got %d, have %d parents", e.Got, e.Len)
	case WrongFloatValue:
		return fmt.Sprintf("value %g not in expected range (%g, %g)", e.Value, e.ExpectedLow, e.ExpectedHigh)
	case TwinNotCorrect:
		return fmt.Sprintf("twin(twin(%s)) != %s", e.HalfEdge, e.HalfEdge)
	case ParentNotCorrect:
		return fmt.Sprintf("half-edge %s does not belong to the cycle of parent %s", e.HalfEdge, e.Parent)
	case NextPrevNotCorrect:
		return fmt.Sprintf("prev(next(%s)) != %s", e.HalfEdge, e.HalfEdge)
	case WrongHalfEdgeLoop:
		return fmt.Sprintf("cycle starting at %s did not close within the half-edge count", e.HalfEdge)
	case AlreadyExists:
		return fmt.Sprintf("an edge between %s and %s already exists", e.VertexA, e.VertexB)
	case ParentDoesNotContainVertex:
		return fmt.Sprintf("parent %s does not contain vertex %s", e.Parent, e.VertexA)
	case AlignedEdges:
		return "swap-edge would produce a degenerate zero-area triangle"
	case WrongMeshInitialisation:
		if e.Message != "" {
			return "wrong mesh initialisation: " + e.Message
		}
		return "wrong mesh initialisation"
	case MaxIterationReached:
		return fmt.Sprintf("bounded cycle walk from %s exceeded its iteration cap", e.HalfEdge)
	case NoElementCreatable:
		return fmt.Sprintf("half-edge %s has no neighbour region that can host a new element", e.HalfEdge)
	default:
		if e.Message != "" {
			return e.Message
		}
		return "unspecified mesh error"
	}
}

func errVertexOutOfBound(got VertexIndex, length int) error {
	return &MeshError{Kind: VertexOutOfBound, Got: int(got), Len: length}
}

func errHalfEdgeOutOfBound(got HalfEdgeIndex, length int) error {
	return &MeshError{Kind: HalfEdgeOutOfBound, Got: int(got), Len: length}
}

func errParentOutOfBound(got ParentIndex, length int) error {
	return &MeshError{Kind: ParentOutOfBound, Got: int(got), Len: length}
}

func errWrongFloatValue(value, low, high float64) error {
	return &MeshError{Kind: WrongFloatValue, Value: value, ExpectedLow: low, ExpectedHigh: high}
}

func errAlreadyExists(a, b VertexIndex) error {
	return &MeshError{Kind: AlreadyExists, VertexA: a, VertexB: b}
}

func errParentDoesNotContainVertex(p ParentIndex, v VertexIndex) error {
	return &MeshError{Kind: ParentDoesNotContainVertex, Parent: p, VertexA: v}
}

func errAlignedEdges() error {
	return &MeshError{Kind: AlignedEdges}
}

func errWrongMeshInitialisation(msg string) error {
	return &MeshError{Kind: WrongMeshInitialisation, Message: msg}
}

func errTwinNotCorrect(h, other HalfEdgeIndex) error {
	return &MeshError{Kind: TwinNotCorrect, HalfEdge: h, Other: other}
}

func errParentNotCorrect(h HalfEdgeIndex, p ParentIndex) error {
	return &MeshError{Kind: ParentNotCorrect, HalfEdge: h, Parent: p}
}

func errNextPrevNotCorrect(h, other HalfEdgeIndex) error {
	return &MeshError{Kind: NextPrevNotCorrect, HalfEdge: h, Other: other}
}

func errWrongHalfEdgeLoop(h HalfEdgeIndex) error {
	return &MeshError{Kind: WrongHalfEdgeLoop, HalfEdge: h}
}

func errNoElementCreatable(h HalfEdgeIndex) error {
	return &MeshError{Kind: NoElementCreatable, HalfEdge: h}
}

func errWrongMeshInitialisationCells(a, b ParentIndex) error {
	return &MeshError{Kind: WrongMeshInitialisation, CellA: a, CellB: b, Message: "the two cells do not share exactly one edge"}
}
