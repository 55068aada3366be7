package correlate

import "errors"

// Failure conditions. Both are caller errors with no recovery path:
// the caller must supply a corrected kernel, switch padding mode, or
// grow the image.
var (
	// ErrInvalidKernelShape reports a kernel whose height or width is
	// even or zero. Odd dimensions are required so a center cell exists
	// and Same padding's symmetric half-padding is well defined.
	ErrInvalidKernelShape = errors.New("kernel height and width must be odd and >= 1")

	// ErrIncompatibleDimensions reports a Valid-mode kernel that exceeds
	// the image in some axis, leaving no position where the kernel fully
	// overlaps the image.
	ErrIncompatibleDimensions = errors.New("kernel exceeds image dimensions in valid mode")
)
