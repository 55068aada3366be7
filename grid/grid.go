// Copyright 2026 Fovea CV. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grid provides the public API for the dense 2D grid type used
// throughout Fovea.
//
// A Grid is a dense, row-major 2D array of float64 samples — an
// "image" in the classic filtering exercises. Grids are values: every
// operation returns a new Grid.
//
// Example:
//
//	img := grid.Zeros(64, 64)
//	img.Set(32, 32, 255)
//	padded := img.Pad(1, 1, 1, 1)
package grid

import (
	"github.com/fovea-cv/fovea/internal/grid"
)

// Grid is a dense, row-major 2D array of float64 samples.
type Grid = grid.Grid

// Zeros creates a rows×cols Grid filled with zeros.
func Zeros(rows, cols int) *Grid {
	return grid.Zeros(rows, cols)
}

// Full creates a rows×cols Grid with every sample set to v.
func Full(rows, cols int, v float64) *Grid {
	return grid.Full(rows, cols, v)
}

// FromRows creates a Grid from a slice of equal-length rows.
func FromRows(rows [][]float64) (*Grid, error) {
	return grid.FromRows(rows)
}

// FromSlice creates a rows×cols Grid from a flat row-major slice.
func FromSlice(data []float64, rows, cols int) (*Grid, error) {
	return grid.FromSlice(data, rows, cols)
}
