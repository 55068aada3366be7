package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fovea-cv/fovea/internal/synth"
)

func TestHeatmap_WritesPNG(t *testing.T) {
	g := synth.Circle(32, 32, 16, 16, 10, 255)
	path := filepath.Join(t.TempDir(), "ring.png")

	require.NoError(t, Heatmap(g, "ring", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGridXYZ_Adapter(t *testing.T) {
	g := synth.VerticalLine(4, 6, 2, 255)
	xyz := gridXYZ{g}

	c, r := xyz.Dims()
	assert.Equal(t, 6, c)
	assert.Equal(t, 4, r)

	// Row 0 of the grid maps to the top plot row.
	assert.Equal(t, g.At(0, 2), xyz.Z(2, 3))
	assert.Equal(t, g.At(3, 2), xyz.Z(2, 0))
}

func TestHTMLReport(t *testing.T) {
	sections := []Section{
		{Title: "input-square", Grid: synth.Square(16, 16, 4, 255)},
		{Title: "input-line", Grid: synth.VerticalLine(16, 16, 8, 255)},
	}

	var buf bytes.Buffer
	require.NoError(t, HTMLReport(&buf, "test report", sections))

	html := buf.String()
	assert.True(t, strings.Contains(html, "input-square"), "report should name every section")
	assert.True(t, strings.Contains(html, "input-line"))
	assert.True(t, strings.Contains(html, "16x16"), "report should show grid dimensions")
}

func TestHTMLReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTMLReport(&buf, "empty", nil))
	assert.Greater(t, buf.Len(), 0)
}
