// Package meshkit implements a two-dimensional polygonal mesh library for
// computational fluid dynamics. Its core is an array-based half-edge
// topology (see the halfedge package) which is constructed and mutated
// through an explicit Modifiable -> Safe lifecycle, then converted to a
// geometry-rich computational mesh (see the compmesh package) consumed by
// finite-volume solvers.
//
// # Basic Usage
//
// Build a mesh from a boundary description, mutate it, validate it, and
// convert it to a computational mesh:
//
//	m, err := halfedge.NewFromBoundary(vertices, edges, patches)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if _, err := m.SplitEdge(someHalfEdge, 0.5); err != nil {
//		log.Fatal(err)
//	}
//	safe, err := m.ValidateTopology()
//	if err != nil {
//		log.Fatal(err)
//	}
//	mesh := compmesh.NewFromSafe(safe)
//	fmt.Printf("%d cells, %d faces\n", mesh.NumCells(), mesh.NumFaces())
//
// # Packages
//
//   - halfedge: index types, geometry kernel, the Base/Modifiable/Safe
//     half-edge store and its topology mutations (split-edge, trimming,
//     notching, swap-edge).
//   - compmesh: the computational mesh builder and its read-only queries
//     (neighbors, normals, geometric weighting factors, face midpoints).
//   - vtk: ASCII VTK unstructured-grid export of a computational mesh.
//   - manualmesh: canonical test geometries (straight line, quad square)
//     built directly as Modifiable half-edge meshes.
//   - legacy: the pre-half-edge MeshBlock2D surface, kept for backward
//     compatibility; deprecated in favor of halfedge.
//
// # Lifecycle
//
// Mesh values move through three phases, each a distinct Go type rather
// than a single mutable object guarded by a status flag:
//
//	Modifiable2DMesh --ValidateTopology()--> Safe2DMesh --NewFromSafe()--> Computational2DMesh
//
// Once a mesh is Safe it is frozen; once it is Computational it is
// read-only and safe to query from multiple goroutines since nothing ever
// mutates it after construction.
//
// # Concurrency
//
// The core is single-threaded and synchronous: no operation blocks, and
// a Modifiable2DMesh must not be mutated concurrently with itself. This
// is a deliberate departure from locking every mutable structure; there
// is nothing here for a lock to protect against once construction is
// sequential.
package meshkit
