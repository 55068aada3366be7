// Copyright 2026 Fovea CV. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package correlate provides the public API for 2D cross-correlation.
//
// Correlate slides a small odd-sized kernel over an image grid and
// produces the grid of windowed dot products. Despite the exercise's
// traditional name "convolution", the kernel is applied without
// spatial flipping.
//
// Example:
//
//	response, err := correlate.Correlate(img, filters.SobelX(), correlate.Same)
package correlate

import (
	"github.com/fovea-cv/fovea/grid"
	"github.com/fovea-cv/fovea/internal/correlate"
)

// PaddingMode selects the boundary policy.
type PaddingMode = correlate.PaddingMode

// Padding modes.
const (
	// Valid uses no border padding; the output shrinks.
	Valid PaddingMode = correlate.Valid
	// Same zero-pads the image so the output matches the input size.
	Same PaddingMode = correlate.Same
)

// Failure conditions, checked with errors.Is.
var (
	ErrInvalidKernelShape     = correlate.ErrInvalidKernelShape
	ErrIncompatibleDimensions = correlate.ErrIncompatibleDimensions
)

// Correlate computes the cross-correlation of image with kernel under
// the given padding mode.
func Correlate(image, kernel *grid.Grid, mode PaddingMode) (*grid.Grid, error) {
	return correlate.Correlate(image, kernel, mode)
}

// ParseMode converts a mode name ("valid" or "same") to a PaddingMode.
func ParseMode(s string) (PaddingMode, error) {
	return correlate.ParseMode(s)
}
