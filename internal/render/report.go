package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/fovea-cv/fovea/internal/grid"
)

// Section is one named grid in an HTML report, typically an input image
// or a filter response.
type Section struct {
	Title string
	Grid  *grid.Grid
}

// viridisColors is the usual perceptually-uniform ramp for response
// magnitudes.
var viridisColors = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// HTMLReport renders every section as an interactive heatmap on a
// single self-contained HTML page. Intended as a teaching/debugging
// artifact, not a serving surface.
func HTMLReport(w io.Writer, title string, sections []Section) error {
	page := components.NewPage()
	page.PageTitle = title

	for _, s := range sections {
		page.AddCharts(heatmapChart(s.Title, s.Grid))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// heatmapChart builds one echarts heatmap for a grid. Rows are emitted
// bottom-up because echarts category axes grow upward.
func heatmapChart(title string, g *grid.Grid) *charts.HeatMap {
	rows, cols := g.Dims()

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "700px", Height: "520px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("%dx%d", rows, cols)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(g.Min()),
			Max:        float32(g.Max()),
			InRange:    &opts.VisualMapInRange{Color: viridisColors},
		}),
	)

	xs := make([]string, cols)
	for c := 0; c < cols; c++ {
		xs[c] = fmt.Sprintf("%d", c)
	}

	data := make([]opts.HeatMapData, 0, rows*cols)
	for r := 0; r < rows; r++ {
		row := g.Row(r)
		for c := 0; c < cols; c++ {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{c, rows - 1 - r, row[c]}})
		}
	}

	hm.SetXAxis(xs).AddSeries("response", data)
	return hm
}
