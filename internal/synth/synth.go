// Package synth generates synthetic test images: simple geometric
// shapes rendered into fixed-size grids at a given intensity.
//
// The generators exist so filter behavior can be demonstrated and
// tested without any image files on disk.
package synth

import (
	"math"
	"math/rand"

	"github.com/fovea-cv/fovea/internal/grid"
)

// Orientation names the four L-shape corner orientations by the
// position of the corner point.
type Orientation int

const (
	NW Orientation = iota
	NE
	SW
	SE
)

// VerticalLine renders a one-pixel vertical line at column col.
func VerticalLine(rows, cols, col int, intensity float64) *grid.Grid {
	g := grid.Zeros(rows, cols)
	for r := 0; r < rows; r++ {
		g.Set(r, col, intensity)
	}
	return g
}

// HorizontalLine renders a one-pixel horizontal line at row row.
func HorizontalLine(rows, cols, row int, intensity float64) *grid.Grid {
	g := grid.Zeros(rows, cols)
	for c := 0; c < cols; c++ {
		g.Set(row, c, intensity)
	}
	return g
}

// Diagonal renders the main diagonal (and its mirror when anti is true).
func Diagonal(rows, cols int, anti bool, intensity float64) *grid.Grid {
	g := grid.Zeros(rows, cols)
	n := min(rows, cols)
	for i := 0; i < n; i++ {
		if anti {
			g.Set(i, n-1-i, intensity)
		} else {
			g.Set(i, i, intensity)
		}
	}
	return g
}

// Square renders a hollow square border inset by margin cells.
func Square(rows, cols, margin int, intensity float64) *grid.Grid {
	g := grid.Zeros(rows, cols)
	top, bottom := margin, rows-1-margin
	left, right := margin, cols-1-margin
	for c := left; c <= right; c++ {
		g.Set(top, c, intensity)
		g.Set(bottom, c, intensity)
	}
	for r := top; r <= bottom; r++ {
		g.Set(r, left, intensity)
		g.Set(r, right, intensity)
	}
	return g
}

// Corner renders an L shape with the corner point at (r0, c0) and arms
// of the given length extending away from it per the orientation.
func Corner(rows, cols, r0, c0, arm int, o Orientation, intensity float64) *grid.Grid {
	g := grid.Zeros(rows, cols)
	dr, dc := 1, 1
	switch o {
	case NE:
		dc = -1
	case SW:
		dr = -1
	case SE:
		dr, dc = -1, -1
	}
	for i := 0; i < arm; i++ {
		if r := r0 + i*dr; r >= 0 && r < rows {
			g.Set(r, c0, intensity)
		}
		if c := c0 + i*dc; c >= 0 && c < cols {
			g.Set(r0, c, intensity)
		}
	}
	return g
}

// Circle renders a one-pixel ring of the given radius centered at
// (cr, cc): all cells whose distance from the center is within half a
// cell of the radius.
func Circle(rows, cols, cr, cc, radius int, intensity float64) *grid.Grid {
	g := grid.Zeros(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			d := math.Hypot(float64(r-cr), float64(c-cc))
			if math.Abs(d-float64(radius)) < 0.5 {
				g.Set(r, c, intensity)
			}
		}
	}
	return g
}

// Noise fills a grid with uniform samples in [0, intensity).
// The seed makes test images reproducible; math/rand is intentional
// here, there is nothing cryptographic about test pixels.
func Noise(rows, cols int, intensity float64, seed int64) *grid.Grid {
	rng := rand.New(rand.NewSource(seed))
	g := grid.Zeros(rows, cols)
	data := g.Data()
	for i := range data {
		data[i] = rng.Float64() * intensity
	}
	return g
}
