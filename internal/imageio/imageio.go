// Package imageio converts between image files and grids.
//
// Decoding maps any registered image format (PNG and JPEG are
// registered here) to a single-channel grid of 8-bit luma values in
// [0, 255]. Encoding linearly rescales a grid's value range to 8-bit
// grayscale PNG, which is how filter responses (including negative
// ones) are made viewable.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	_ "image/jpeg" // register JPEG decoding

	"github.com/fovea-cv/fovea/internal/grid"
)

// Decode reads an image and converts it to a grid of luma values.
func Decode(r io.Reader) (*grid.Grid, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("decode image: empty %s image", format)
	}

	g := grid.Zeros(bounds.Dy(), bounds.Dx())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := g.Row(y - bounds.Min.Y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			row[x-bounds.Min.X] = float64(gray.Y)
		}
	}
	return g, nil
}

// DecodeFile reads an image file and converts it to a grid.
func DecodeFile(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// EncodePNG writes the grid as an 8-bit grayscale PNG, rescaling the
// grid's [min, max] range to [0, 255]. A constant grid encodes as
// black.
func EncodePNG(w io.Writer, g *grid.Grid) error {
	rows, cols := g.Dims()
	lo, hi := g.Min(), g.Max()
	scale := 0.0
	if hi > lo {
		scale = 255 / (hi - lo)
	}

	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for r := 0; r < rows; r++ {
		row := g.Row(r)
		for c := 0; c < cols; c++ {
			img.SetGray(c, r, color.Gray{Y: uint8((row[c] - lo) * scale)})
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WritePNG writes the grid as a grayscale PNG file.
func WritePNG(path string, g *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := EncodePNG(f, g); err != nil {
		return err
	}
	return f.Close()
}
