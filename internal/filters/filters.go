// Package filters provides the catalogue of classic edge, corner and
// blob detection kernels, applied to grids via cross-correlation.
//
// All kernels are small odd-sized grids of fixed weights. Derivative
// kernels (Sobel, Prewitt, diagonal, corner, Laplacian) sum to zero, so
// they respond with zero on constant regions.
package filters

import (
	"fmt"

	"github.com/fovea-cv/fovea/internal/correlate"
	"github.com/fovea-cv/fovea/internal/grid"
)

// SobelX approximates the horizontal first derivative; it responds to
// vertical edges.
func SobelX() *grid.Grid {
	return mustKernel([][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})
}

// SobelY approximates the vertical first derivative; it responds to
// horizontal edges.
func SobelY() *grid.Grid {
	return mustKernel([][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	})
}

// PrewittX is the equal-weight horizontal first derivative.
func PrewittX() *grid.Grid {
	return mustKernel([][]float64{
		{-1, 0, 1},
		{-1, 0, 1},
		{-1, 0, 1},
	})
}

// PrewittY is the equal-weight vertical first derivative.
func PrewittY() *grid.Grid {
	return mustKernel([][]float64{
		{-1, -1, -1},
		{0, 0, 0},
		{1, 1, 1},
	})
}

// Diagonal45 is the Sobel pattern rotated 45°; it responds to edges
// running from lower-left to upper-right.
func Diagonal45() *grid.Grid {
	return mustKernel([][]float64{
		{0, 1, 2},
		{-1, 0, 1},
		{-2, -1, 0},
	})
}

// Diagonal135 is the Sobel pattern rotated 135°; it responds to edges
// running from upper-left to lower-right.
func Diagonal135() *grid.Grid {
	return mustKernel([][]float64{
		{2, 1, 0},
		{1, 0, -1},
		{0, -1, -2},
	})
}

// Corner detectors, one per L-shape orientation. The name gives the
// corner position: CornerNW matches an L whose arms extend right and
// down from the top-left. Each kernel is zero-sum, with the positive
// lobe on the corner's 2×2 interior block and the negative lobe on the
// arms, so flat regions and straight edges score near zero while the
// matching corner scores strongly.

// CornerNW detects a corner opening toward the south-east.
func CornerNW() *grid.Grid {
	return mustKernel([][]float64{
		{-4, -4, -4},
		{-4, 5, 5},
		{-4, 5, 5},
	})
}

// CornerNE detects a corner opening toward the south-west.
func CornerNE() *grid.Grid {
	return mustKernel([][]float64{
		{-4, -4, -4},
		{5, 5, -4},
		{5, 5, -4},
	})
}

// CornerSW detects a corner opening toward the north-east.
func CornerSW() *grid.Grid {
	return mustKernel([][]float64{
		{-4, 5, 5},
		{-4, 5, 5},
		{-4, -4, -4},
	})
}

// CornerSE detects a corner opening toward the north-west.
func CornerSE() *grid.Grid {
	return mustKernel([][]float64{
		{5, 5, -4},
		{5, 5, -4},
		{-4, -4, -4},
	})
}

// Laplacian is the 4-neighbor second-derivative kernel. It responds to
// edges in all directions at once.
func Laplacian() *grid.Grid {
	return mustKernel([][]float64{
		{0, -1, 0},
		{-1, 4, -1},
		{0, -1, 0},
	})
}

// Sharpen is identity plus Laplacian: the original image with its
// edges re-added on top.
func Sharpen() *grid.Grid {
	return mustKernel([][]float64{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	})
}

// LaplacianOfGaussian is a 5×5 Mexican-hat kernel for blob and
// circular-edge detection: Gaussian smoothing fused with the Laplacian.
func LaplacianOfGaussian() *grid.Grid {
	return mustKernel([][]float64{
		{0, 0, -1, 0, 0},
		{0, -1, -2, -1, 0},
		{-1, -2, 16, -2, -1},
		{0, -1, -2, -1, 0},
		{0, 0, -1, 0, 0},
	})
}

// Box returns an n×n averaging kernel with every weight 1/n².
// n must be odd and >= 1.
func Box(n int) (*grid.Grid, error) {
	if n < 1 || n%2 == 0 {
		return nil, fmt.Errorf("%w: box size %d", correlate.ErrInvalidKernelShape, n)
	}
	return grid.Full(n, n, 1/float64(n*n)), nil
}

// Apply correlates image with kernel under the given padding mode.
// It is a convenience wrapper over correlate.Correlate.
func Apply(image, kernel *grid.Grid, mode correlate.PaddingMode) (*grid.Grid, error) {
	return correlate.Correlate(image, kernel, mode)
}

// GradientMagnitude combines two equal-shaped directional derivative
// responses into sqrt(gx² + gy²) elementwise.
func GradientMagnitude(gx, gy *grid.Grid) (*grid.Grid, error) {
	out, err := gx.Hypot(gy)
	if err != nil {
		return nil, fmt.Errorf("gradient magnitude: %w", err)
	}
	return out, nil
}

// Catalogue returns the named fixed-size kernels, keyed by the names
// the CLI accepts. Box is excluded: it is parameterized by size.
func Catalogue() map[string]*grid.Grid {
	return map[string]*grid.Grid{
		"sobel-x":      SobelX(),
		"sobel-y":      SobelY(),
		"prewitt-x":    PrewittX(),
		"prewitt-y":    PrewittY(),
		"diagonal-45":  Diagonal45(),
		"diagonal-135": Diagonal135(),
		"corner-nw":    CornerNW(),
		"corner-ne":    CornerNE(),
		"corner-sw":    CornerSW(),
		"corner-se":    CornerSE(),
		"laplacian":    Laplacian(),
		"sharpen":      Sharpen(),
		"log":          LaplacianOfGaussian(),
	}
}

// mustKernel builds a kernel from literal rows. The literals above are
// fixed data; a malformed one is a programming error.
func mustKernel(rows [][]float64) *grid.Grid {
	k, err := grid.FromRows(rows)
	if err != nil {
		panic(err)
	}
	return k
}
