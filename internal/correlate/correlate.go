package correlate

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/fovea-cv/fovea/internal/grid"
	"github.com/fovea-cv/fovea/internal/parallel"
)

// PaddingMode selects the boundary policy for Correlate.
type PaddingMode int

const (
	// Valid uses no border padding; the output shrinks by the kernel
	// size minus one in each dimension.
	Valid PaddingMode = iota
	// Same zero-pads the image so the output matches the input size.
	// Responses near the border are biased toward zero; that is the
	// accepted artifact of zero padding, not a defect.
	Same
)

// String returns the mode name as used on the CLI.
func (m PaddingMode) String() string {
	switch m {
	case Valid:
		return "valid"
	case Same:
		return "same"
	default:
		return fmt.Sprintf("PaddingMode(%d)", int(m))
	}
}

// ParseMode converts a mode name ("valid" or "same") to a PaddingMode.
func ParseMode(s string) (PaddingMode, error) {
	switch s {
	case "valid":
		return Valid, nil
	case "same":
		return Same, nil
	default:
		return 0, fmt.Errorf("unknown padding mode %q (want \"valid\" or \"same\")", s)
	}
}

// Correlate computes the cross-correlation of image with kernel under
// the given padding mode: for every output cell, the dot product of the
// kernel against the window of the (possibly zero-padded) image at that
// position. The kernel is applied without spatial flipping.
//
// The kernel must have odd height and width so that a center cell
// exists; in Valid mode it must also fit within the image. Output
// dimensions are (H-Kh+1)×(W-Kw+1) for Valid and H×W for Same.
//
// Correlate is a pure function: inputs are never mutated and repeated
// calls with equal inputs produce equal outputs.
func Correlate(image, kernel *grid.Grid, mode PaddingMode) (*grid.Grid, error) {
	return CorrelateWith(image, kernel, mode, parallel.DefaultConfig())
}

// CorrelateWith is Correlate with explicit parallelism control.
// Output rows are independent, so they are computed concurrently;
// results do not depend on scheduling order.
func CorrelateWith(image, kernel *grid.Grid, mode PaddingMode, cfg parallel.Config) (*grid.Grid, error) {
	kh, kw := kernel.Dims()
	if kh%2 == 0 || kw%2 == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidKernelShape, kh, kw)
	}

	src := image
	switch mode {
	case Same:
		src = image.Pad(kh/2, kh/2, kw/2, kw/2)
	case Valid:
		h, w := image.Dims()
		if kh > h || kw > w {
			return nil, fmt.Errorf("%w: kernel %dx%d vs image %dx%d", ErrIncompatibleDimensions, kh, kw, h, w)
		}
	default:
		return nil, fmt.Errorf("unknown padding mode %d", int(mode))
	}

	outH := src.Rows() - kh + 1
	outW := src.Cols() - kw + 1
	out := grid.Zeros(outH, outW)

	parallel.For(outH, func(i int) {
		dst := out.Row(i)
		for j := 0; j < outW; j++ {
			sum := 0.0
			for r := 0; r < kh; r++ {
				window := src.Row(i + r)[j : j+kw]
				sum += floats.Dot(window, kernel.Row(r))
			}
			dst[j] = sum
		}
	}, cfg)

	return out, nil
}
