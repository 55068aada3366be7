package correlate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fovea-cv/fovea/internal/grid"
	"github.com/fovea-cv/fovea/internal/parallel"
	"github.com/fovea-cv/fovea/internal/synth"
)

func TestCorrelate_ValidOutputDims(t *testing.T) {
	cases := []struct {
		name               string
		h, w, kh, kw       int
		wantRows, wantCols int
	}{
		{"3x3 kernel", 8, 10, 3, 3, 6, 8},
		{"5x5 kernel", 9, 9, 5, 5, 5, 5},
		{"1x1 kernel", 4, 7, 1, 1, 4, 7},
		{"row kernel", 6, 6, 1, 3, 6, 4},
		{"kernel equals image", 5, 5, 5, 5, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img := synth.Noise(tc.h, tc.w, 255, 1)
			kernel := grid.Full(tc.kh, tc.kw, 0.5)

			out, err := Correlate(img, kernel, Valid)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRows, out.Rows())
			assert.Equal(t, tc.wantCols, out.Cols())
		})
	}
}

func TestCorrelate_SameOutputDims(t *testing.T) {
	img := synth.Noise(7, 11, 255, 2)
	for _, k := range []int{1, 3, 5} {
		kernel := grid.Full(k, k, 1)
		out, err := Correlate(img, kernel, Same)
		require.NoError(t, err)
		assert.Equal(t, img.Rows(), out.Rows(), "kernel %dx%d", k, k)
		assert.Equal(t, img.Cols(), out.Cols(), "kernel %dx%d", k, k)
	}
}

func TestCorrelate_IdentityKernel(t *testing.T) {
	img := synth.Noise(6, 9, 255, 3)
	identity := grid.Full(1, 1, 1)

	for _, mode := range []PaddingMode{Valid, Same} {
		out, err := Correlate(img, identity, mode)
		require.NoError(t, err)
		assert.True(t, img.Equal(out), "identity under %s should return the input unchanged", mode)
	}
}

func TestCorrelate_ZeroKernel(t *testing.T) {
	img := synth.Noise(8, 8, 255, 4)
	zero := grid.Zeros(3, 5)

	out, err := Correlate(img, zero, Same)
	require.NoError(t, err)
	require.Equal(t, 8, out.Rows())
	require.Equal(t, 8, out.Cols())
	for _, v := range out.Data() {
		assert.Zero(t, v)
	}
}

func TestCorrelate_Linearity(t *testing.T) {
	img := synth.Noise(10, 10, 255, 5)
	k1 := synth.Noise(3, 3, 2, 6)
	k2 := synth.Noise(3, 3, 2, 7)
	a, b := 1.5, -0.75

	combined, err := k1.Scale(a).Add(k2.Scale(b))
	require.NoError(t, err)

	for _, mode := range []PaddingMode{Valid, Same} {
		lhs, err := Correlate(img, combined, mode)
		require.NoError(t, err)

		r1, err := Correlate(img, k1, mode)
		require.NoError(t, err)
		r2, err := Correlate(img, k2, mode)
		require.NoError(t, err)
		rhs, err := r1.Scale(a).Add(r2.Scale(b))
		require.NoError(t, err)

		assert.True(t, lhs.AllClose(rhs, 1e-9), "correlation should be linear in the kernel under %s", mode)
	}
}

// A 3x3 averaging kernel over an all-255 image: at a corner only 4 of
// the 9 window cells are in bounds, so zero padding biases the corner
// response to 255*4/9 while the center sees the full 255.
func TestCorrelate_SameZeroPaddingBias(t *testing.T) {
	img := grid.Full(3, 3, 255)
	box := grid.Full(3, 3, 1.0/9.0)

	out, err := Correlate(img, box, Same)
	require.NoError(t, err)

	corner := 255.0 * 4 / 9
	for _, rc := range [][2]int{{0, 0}, {0, 2}, {2, 0}, {2, 2}} {
		assert.InDelta(t, corner, out.At(rc[0], rc[1]), 1e-9)
	}
	assert.InDelta(t, 255, out.At(1, 1), 1e-9)
}

func TestCorrelate_SobelXLocalizedAtVerticalLine(t *testing.T) {
	const col = 6
	img := synth.VerticalLine(13, 13, col, 255)
	sobelX, err := grid.FromRows([][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})
	require.NoError(t, err)

	out, err := Correlate(img, sobelX, Same)
	require.NoError(t, err)

	nonZero := false
	for r := 0; r < out.Rows(); r++ {
		for c := 0; c < out.Cols(); c++ {
			v := out.At(r, c)
			if c < col-1 || c > col+1 {
				assert.Zero(t, v, "response at (%d,%d) should be far from the line", r, c)
			} else if v != 0 {
				nonZero = true
			}
		}
	}
	assert.True(t, nonZero, "expected a response next to the line")
}

func TestCorrelate_KernelLargerThanImage(t *testing.T) {
	img := grid.Full(4, 4, 1)
	kernel := grid.Full(5, 5, 1)

	_, err := Correlate(img, kernel, Valid)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompatibleDimensions), "got %v", err)

	// Same mode pads, so the same pair is fine.
	out, err := Correlate(img, kernel, Same)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Rows())
	assert.Equal(t, 4, out.Cols())
}

func TestCorrelate_EvenKernelRejected(t *testing.T) {
	img := grid.Full(6, 6, 1)
	evenKernel := grid.Full(2, 3, 1)

	for _, mode := range []PaddingMode{Valid, Same} {
		_, err := Correlate(img, evenKernel, mode)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidKernelShape), "mode %s: got %v", mode, err)
	}
}

func TestCorrelate_KnownValues(t *testing.T) {
	img, err := grid.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, err)
	kernel, err := grid.FromRows([][]float64{
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	})
	require.NoError(t, err)

	out, err := Correlate(img, kernel, Valid)
	require.NoError(t, err)
	require.Equal(t, 1, out.Rows())
	require.Equal(t, 1, out.Cols())
	// 2 + 4 + 5 + 6 + 8
	assert.InDelta(t, 25, out.At(0, 0), 1e-12)

	out, err = Correlate(img, kernel, Same)
	require.NoError(t, err)
	want, err := grid.FromRows([][]float64{
		{7, 11, 11},
		{17, 25, 23},
		{19, 29, 23},
	})
	require.NoError(t, err)
	assert.True(t, out.AllClose(want, 1e-12), "got %v", out.Data())
}

func TestCorrelateWith_ParallelMatchesSequential(t *testing.T) {
	img := synth.Noise(64, 48, 255, 8)
	kernel := synth.Noise(5, 5, 2, 9)

	forced := parallel.Config{Enabled: true, Workers: 8, MinChunk: 1}
	for _, mode := range []PaddingMode{Valid, Same} {
		par, err := CorrelateWith(img, kernel, mode, forced)
		require.NoError(t, err)
		seq, err := CorrelateWith(img, kernel, mode, parallel.Sequential())
		require.NoError(t, err)
		assert.True(t, par.Equal(seq), "parallel and sequential results should be identical under %s", mode)
	}
}

func TestCorrelate_DoesNotMutateInputs(t *testing.T) {
	img := synth.Noise(9, 9, 255, 10)
	kernel := synth.Noise(3, 3, 2, 11)
	imgCopy := img.Clone()
	kernelCopy := kernel.Clone()

	_, err := Correlate(img, kernel, Same)
	require.NoError(t, err)
	assert.True(t, img.Equal(imgCopy))
	assert.True(t, kernel.Equal(kernelCopy))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("valid")
	require.NoError(t, err)
	assert.Equal(t, Valid, m)

	m, err = ParseMode("same")
	require.NoError(t, err)
	assert.Equal(t, Same, m)

	_, err = ParseMode("reflect")
	assert.Error(t, err)
}

func TestPaddingMode_String(t *testing.T) {
	assert.Equal(t, "valid", Valid.String())
	assert.Equal(t, "same", Same.String())
}

func TestCorrelate_UnknownMode(t *testing.T) {
	img := grid.Full(3, 3, 1)
	kernel := grid.Full(1, 1, 1)
	_, err := Correlate(img, kernel, PaddingMode(42))
	assert.Error(t, err)
}

// Accumulation over the largest supported in-catalogue kernel (5x5 =
// 25 terms) stays exact for representable sums.
func TestCorrelate_AccumulationExact(t *testing.T) {
	img := grid.Full(5, 5, 1)
	kernel := grid.Full(5, 5, 1)

	out, err := Correlate(img, kernel, Valid)
	require.NoError(t, err)
	assert.True(t, math.Abs(out.At(0, 0)-25) == 0)
}
