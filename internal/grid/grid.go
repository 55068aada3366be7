package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid is a dense, row-major 2D array of float64 samples.
//
// A Grid is treated as a value: every operation returns a new Grid and
// never mutates its operands. Set exists for filling a freshly created
// Grid and panics on out-of-range indices, like a slice access.
//
// Example:
//
//	g := grid.Zeros(32, 32)
//	g.Set(16, 16, 255)
//	padded := g.Pad(1, 1, 1, 1)
type Grid struct {
	rows, cols int
	data       []float64
}

// Zeros creates a rows×cols Grid filled with zeros.
// Panics if either dimension is < 1; dimensions are a programmer
// decision, not caller input.
func Zeros(rows, cols int) *Grid {
	if err := validateDims(rows, cols); err != nil {
		panic(err)
	}
	return &Grid{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// Full creates a rows×cols Grid with every sample set to v.
func Full(rows, cols int, v float64) *Grid {
	g := Zeros(rows, cols)
	for i := range g.data {
		g.data[i] = v
	}
	return g
}

// FromRows creates a Grid from a slice of rows.
// All rows must have the same non-zero length. The data is copied.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("grid requires at least one row and one column")
	}
	cols := len(rows[0])
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("row %d has %d columns, expected %d", i, len(r), cols)
		}
	}
	g := Zeros(len(rows), cols)
	for i, r := range rows {
		copy(g.data[i*cols:(i+1)*cols], r)
	}
	return g, nil
}

// FromSlice creates a rows×cols Grid from a flat row-major slice.
// The slice is copied into the Grid's memory.
func FromSlice(data []float64, rows, cols int) (*Grid, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("shape %dx%d requires %d elements, but got %d", rows, cols, rows*cols, len(data))
	}
	g := Zeros(rows, cols)
	copy(g.data, data)
	return g, nil
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Dims returns (rows, cols).
func (g *Grid) Dims() (int, int) { return g.rows, g.cols }

// NumElements returns the total number of samples.
func (g *Grid) NumElements() int { return len(g.data) }

// At returns the sample at (r, c). Panics if out of bounds.
func (g *Grid) At(r, c int) float64 {
	g.boundsCheck(r, c)
	return g.data[r*g.cols+c]
}

// Set writes the sample at (r, c). Panics if out of bounds.
// Intended for filling a Grid during construction.
func (g *Grid) Set(r, c int, v float64) {
	g.boundsCheck(r, c)
	g.data[r*g.cols+c] = v
}

// Row returns a zero-copy view of row r.
//
// WARNING: modifications to the returned slice modify the Grid.
func (g *Grid) Row(r int) []float64 {
	g.boundsCheck(r, 0)
	return g.data[r*g.cols : (r+1)*g.cols]
}

// Data returns a zero-copy view of the backing row-major slice.
//
// WARNING: modifications to the returned slice modify the Grid.
func (g *Grid) Data() []float64 { return g.data }

// Clone creates a deep copy of the Grid.
func (g *Grid) Clone() *Grid {
	out := Zeros(g.rows, g.cols)
	copy(out.data, g.data)
	return out
}

// SameDims reports whether both grids have identical dimensions.
func (g *Grid) SameDims(other *Grid) bool {
	return g.rows == other.rows && g.cols == other.cols
}

// Equal reports exact sample-wise equality (dimensions and values).
func (g *Grid) Equal(other *Grid) bool {
	return g.AllClose(other, 0)
}

// AllClose reports whether both grids have identical dimensions and all
// samples differ by at most tol.
func (g *Grid) AllClose(other *Grid, tol float64) bool {
	if !g.SameDims(other) {
		return false
	}
	for i := range g.data {
		if math.Abs(g.data[i]-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// Pad returns a new Grid with the given number of zero rows/columns
// added on each side. Negative padding panics.
func (g *Grid) Pad(top, bottom, left, right int) *Grid {
	if top < 0 || bottom < 0 || left < 0 || right < 0 {
		panic(fmt.Sprintf("negative padding: top=%d bottom=%d left=%d right=%d", top, bottom, left, right))
	}
	out := Zeros(g.rows+top+bottom, g.cols+left+right)
	for r := 0; r < g.rows; r++ {
		copy(out.Row(r+top)[left:left+g.cols], g.Row(r))
	}
	return out
}

// Scale returns a new Grid with every sample multiplied by a.
func (g *Grid) Scale(a float64) *Grid {
	out := g.Clone()
	floats.Scale(a, out.data)
	return out
}

// Add returns the elementwise sum of two equal-shaped grids.
func (g *Grid) Add(other *Grid) (*Grid, error) {
	if !g.SameDims(other) {
		return nil, fmt.Errorf("dimension mismatch: %dx%d vs %dx%d", g.rows, g.cols, other.rows, other.cols)
	}
	out := g.Clone()
	floats.Add(out.data, other.data)
	return out, nil
}

// Hypot returns the elementwise sqrt(g² + other²) of two equal-shaped
// grids. This is the gradient-magnitude combination of two directional
// derivative responses.
func (g *Grid) Hypot(other *Grid) (*Grid, error) {
	if !g.SameDims(other) {
		return nil, fmt.Errorf("dimension mismatch: %dx%d vs %dx%d", g.rows, g.cols, other.rows, other.cols)
	}
	out := Zeros(g.rows, g.cols)
	for i := range out.data {
		out.data[i] = math.Hypot(g.data[i], other.data[i])
	}
	return out, nil
}

// Min returns the smallest sample.
func (g *Grid) Min() float64 { return floats.Min(g.data) }

// Max returns the largest sample.
func (g *Grid) Max() float64 { return floats.Max(g.data) }

// Sum returns the sum of all samples.
func (g *Grid) Sum() float64 { return floats.Sum(g.data) }

// String returns a short human-readable description.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid[%dx%d]", g.rows, g.cols)
}

func (g *Grid) boundsCheck(r, c int) {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		panic(fmt.Sprintf("index (%d, %d) out of bounds for %dx%d grid", r, c, g.rows, g.cols))
	}
}

func validateDims(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("invalid dimensions %dx%d (must be >= 1)", rows, cols)
	}
	return nil
}
