// Package vtk writes a Computational2DMesh as an ASCII VTK unstructured
// grid (.vtu), for visualization in ParaView and similar tools. It is a
// pure export collaborator: it reads a mesh and never constructs or
// mutates one.
package vtk

import (
	"bufio"
	"fmt"
	"io"

	"github.com/xerusn/meshkit/compmesh"
	"github.com/xerusn/meshkit/halfedge"
)

// triangleType is the VTK cell-type code for a linear triangle.
const triangleType = 5

// Write streams mesh as an ASCII VTK UnstructuredGrid to w. Every cell
// must be a triangle (exactly 3 vertices); a non-triangular cell
// returns an error rather than panicking, since this is a public API
// boundary reachable from arbitrary caller-provided meshes.
func Write(w io.Writer, mesh *compmesh.Computational2DMesh) error {
	for ci := 0; ci < mesh.NumCells(); ci++ {
		cell, err := mesh.Cell(halfedge.CellIndex(ci))
		if err != nil {
			return err
		}
		if len(cell.Vertices) != 3 {
			return fmt.Errorf("vtk: cell %d has %d vertices, only triangles are supported", ci, len(cell.Vertices))
		}
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, `<VTKFile type="UnstructuredGrid" version="0.1" byte_order="LittleEndian">`)
	fmt.Fprintln(bw, `  <UnstructuredGrid>`)
	fmt.Fprintf(bw, "    <Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", mesh.NumVertices(), mesh.NumCells())

	fmt.Fprintln(bw, `      <Points>`)
	fmt.Fprintln(bw, `        <DataArray type="Float64" NumberOfComponents="3">`)
	for i := 0; i < mesh.NumVertices(); i++ {
		p, err := mesh.Vertex(halfedge.VertexIndex(i))
		if err != nil {
			bw.Flush()
			return err
		}
		fmt.Fprintf(bw, "          %g %g 0\n", p.X, p.Y)
	}
	fmt.Fprintln(bw, `        </DataArray>`)
	fmt.Fprintln(bw, `      </Points>`)

	fmt.Fprintln(bw, `      <Cells>`)
	fmt.Fprintln(bw, `        <DataArray type="Int64" Name="connectivity">`)
	for ci := 0; ci < mesh.NumCells(); ci++ {
		cell, err := mesh.Cell(halfedge.CellIndex(ci))
		if err != nil {
			bw.Flush()
			return err
		}
		fmt.Fprintf(bw, "          %d %d %d\n", cell.Vertices[0], cell.Vertices[1], cell.Vertices[2])
	}
	fmt.Fprintln(bw, `        </DataArray>`)

	fmt.Fprintln(bw, `        <DataArray type="Int64" Name="offsets">`)
	for ci := 0; ci < mesh.NumCells(); ci++ {
		fmt.Fprintf(bw, "          %d\n", (ci+1)*3)
	}
	fmt.Fprintln(bw, `        </DataArray>`)

	fmt.Fprintln(bw, `        <DataArray type="UInt8" Name="types">`)
	for ci := 0; ci < mesh.NumCells(); ci++ {
		fmt.Fprintf(bw, "          %d\n", triangleType)
	}
	fmt.Fprintln(bw, `        </DataArray>`)
	fmt.Fprintln(bw, `      </Cells>`)

	fmt.Fprintln(bw, `    </Piece>`)
	fmt.Fprintln(bw, `  </UnstructuredGrid>`)
	fmt.Fprintln(bw, `</VTKFile>`)

	return bw.Flush()
}
