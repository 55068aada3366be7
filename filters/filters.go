// Copyright 2026 Fovea CV. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package filters provides the public catalogue of classic filter
// kernels: edge detectors (Sobel, Prewitt, diagonal), corner detectors,
// the Laplacian family, and the box filter.
//
// Example:
//
//	gx, _ := filters.Apply(img, filters.SobelX(), correlate.Same)
//	gy, _ := filters.Apply(img, filters.SobelY(), correlate.Same)
//	mag, _ := filters.GradientMagnitude(gx, gy)
package filters

import (
	"github.com/fovea-cv/fovea/correlate"
	"github.com/fovea-cv/fovea/grid"
	"github.com/fovea-cv/fovea/internal/filters"
)

// First-derivative edge kernels.
var (
	SobelX      = filters.SobelX
	SobelY      = filters.SobelY
	PrewittX    = filters.PrewittX
	PrewittY    = filters.PrewittY
	Diagonal45  = filters.Diagonal45
	Diagonal135 = filters.Diagonal135
)

// Corner detectors, one per L-shape orientation.
var (
	CornerNW = filters.CornerNW
	CornerNE = filters.CornerNE
	CornerSW = filters.CornerSW
	CornerSE = filters.CornerSE
)

// Second-derivative and smoothing kernels.
var (
	Laplacian           = filters.Laplacian
	Sharpen             = filters.Sharpen
	LaplacianOfGaussian = filters.LaplacianOfGaussian
)

// Box returns an n×n averaging kernel (n odd, all weights 1/n²).
func Box(n int) (*grid.Grid, error) {
	return filters.Box(n)
}

// Apply correlates image with kernel under the given padding mode.
func Apply(image, kernel *grid.Grid, mode correlate.PaddingMode) (*grid.Grid, error) {
	return filters.Apply(image, kernel, mode)
}

// GradientMagnitude combines two equal-shaped directional responses
// into sqrt(gx² + gy²) elementwise.
func GradientMagnitude(gx, gy *grid.Grid) (*grid.Grid, error) {
	return filters.GradientMagnitude(gx, gy)
}

// Catalogue returns the named fixed-size kernels keyed by CLI name.
func Catalogue() map[string]*grid.Grid {
	return filters.Catalogue()
}
