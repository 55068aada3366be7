// Package render visualizes grids and filter responses.
//
// Two outputs are supported: standalone heatmap PNGs via gonum/plot,
// and a self-contained HTML report with interactive heatmaps via
// go-echarts. The core packages never import render; render only
// consumes grids.
package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fovea-cv/fovea/internal/grid"
)

// gridXYZ adapts a grid to gonum/plot's heatmap data interface.
// Plot rows grow upward, image rows grow downward, so Z flips the row
// axis to keep row 0 at the top of the rendered heatmap.
type gridXYZ struct {
	g *grid.Grid
}

func (p gridXYZ) Dims() (c, r int)   { return p.g.Cols(), p.g.Rows() }
func (p gridXYZ) Z(c, r int) float64 { return p.g.At(p.g.Rows()-1-r, c) }
func (p gridXYZ) X(c int) float64    { return float64(c) }
func (p gridXYZ) Y(r int) float64    { return float64(r) }

// Heatmap renders the grid as a heatmap and saves it as a PNG file.
func Heatmap(g *grid.Grid, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"

	h := plotter.NewHeatMap(gridXYZ{g}, palette.Heat(16, 1))
	p.Add(h)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save heatmap %s: %w", path, err)
	}
	return nil
}
