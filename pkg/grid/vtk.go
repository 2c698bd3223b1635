package grid

import (
	"bufio"
	"fmt"
	"io"
)

// ExportVTK writes the block as a legacy-ASCII VTK rectilinear grid with the
// geology ids as cell data, for inspection in external viewers. Coordinates
// are model-local, starting at the origin.
func (m *BlockModel) ExportVTK(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# vtk DataFile Version 3.0")
	fmt.Fprintf(bw, "%s geology block\n", m.Basename)
	fmt.Fprintln(bw, "ASCII")
	fmt.Fprintln(bw, "DATASET RECTILINEAR_GRID")
	fmt.Fprintf(bw, "DIMENSIONS %d %d %d\n", m.NX+1, m.NY+1, m.NZ+1)

	writeCoords := func(label string, n int, del float64) {
		fmt.Fprintf(bw, "%s_COORDINATES %d double\n", label, n+1)
		for i := 0; i <= n; i++ {
			if i > 0 {
				fmt.Fprint(bw, " ")
			}
			fmt.Fprintf(bw, "%g", float64(i)*del)
		}
		fmt.Fprintln(bw)
	}
	writeCoords("X", m.NX, m.DelX)
	writeCoords("Y", m.NY, m.DelY)
	writeCoords("Z", m.NZ, m.DelZ)

	fmt.Fprintf(bw, "CELL_DATA %d\n", m.CellCount())
	fmt.Fprintln(bw, "SCALARS geology double 1")
	fmt.Fprintln(bw, "LOOKUP_TABLE default")
	// VTK cell order varies x fastest, then y, then z.
	for k := 0; k < m.NZ; k++ {
		for j := 0; j < m.NY; j++ {
			for i := 0; i < m.NX; i++ {
				fmt.Fprintf(bw, "%g\n", m.At(i, j, k))
			}
		}
	}

	return bw.Flush()
}
