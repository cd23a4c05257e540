package export

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/bnema/datagrid/internal/application/port"
	"github.com/bnema/datagrid/internal/domain/entity"
	"github.com/bnema/datagrid/internal/logging"
)

// HTMLExporter writes one echarts page per panel and an index page placing
// them in a CSS grid that mirrors the tiling.
type HTMLExporter struct {
	assetsHost string
}

// NewHTMLExporter creates an HTML exporter. An empty assetsHost keeps the
// go-echarts default CDN.
func NewHTMLExporter(assetsHost string) *HTMLExporter {
	return &HTMLExporter{assetsHost: assetsHost}
}

// Format implements port.FigureExporter.
func (e *HTMLExporter) Format() string {
	return "html"
}

type indexCell struct {
	File     string
	Title    string
	RowStart int // 1-based CSS grid lines
	RowEnd   int
	ColStart int
	ColEnd   int
}

type indexPage struct {
	Title  string
	Rows   int
	Cols   int
	Height int // pixels per grid row
	Cells  []indexCell
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { margin: 0; font-family: sans-serif; }
h1 { font-size: 16px; margin: 8px; }
.grid { display: grid; grid-template-columns: repeat({{.Cols}}, 1fr); grid-template-rows: repeat({{.Rows}}, {{.Height}}px); gap: 4px; padding: 4px; }
.grid iframe { width: 100%; height: 100%; border: 1px solid #d3d3d3; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="grid">
{{- range .Cells}}
<iframe src="{{.File}}" title="{{.Title}}" style="grid-row: {{.RowStart}} / {{.RowEnd}}; grid-column: {{.ColStart}} / {{.ColEnd}};"></iframe>
{{- end}}
</div>
</body>
</html>
`))

// Export implements port.FigureExporter.
func (e *HTMLExporter) Export(ctx context.Context, fig *entity.Tiling, dir string, opts port.FigureOptions) (string, error) {
	opts = withDefaults(opts)
	log := logging.FromContext(ctx).With().Str("format", "html").Logger()

	base := baseName(opts.Title)
	rowHeight := int(opts.HeightIn * float64(opts.DPI) / float64(fig.Rows()))
	page := indexPage{Title: opts.Title, Rows: fig.Rows(), Cols: fig.Cols(), Height: rowHeight}

	for _, p := range fig.Panels() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		file := fmt.Sprintf("%s_%s.html", base, p.ID)
		chart := e.panelChart(p, rowHeight*p.Rect.RowSpan())
		err := writeFile(filepath.Join(dir, file), func(f *os.File) error {
			return chart.Render(f)
		})
		if err != nil {
			return "", fmt.Errorf("panel %s: %w", p.ID, err)
		}
		page.Cells = append(page.Cells, indexCell{
			File:     file,
			Title:    panelTitle(p),
			RowStart: p.Rect.RowStart + 1,
			RowEnd:   p.Rect.RowEnd + 2,
			ColStart: p.Rect.ColStart + 1,
			ColEnd:   p.Rect.ColEnd + 2,
		})
	}

	path := filepath.Join(dir, base+".html")
	if err := writeFile(path, func(f *os.File) error {
		return indexTmpl.Execute(f, page)
	}); err != nil {
		return "", err
	}
	log.Debug().Str("path", path).Int("panels", len(page.Cells)).Msg("dashboard written")
	return path, nil
}

// panelChart builds a value-axis line chart and overlaps bar and scatter
// series onto it so every artist shares the same axes.
func (e *HTMLExporter) panelChart(p *entity.Panel, height int) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  panelTitle(p),
			Width:      "100%",
			Height:     fmt.Sprintf("%dpx", height),
			AssetsHost: e.assetsHost,
		}),
		charts.WithTitleOpts(opts.Title{Title: string(p.ID)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "10"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
	)

	var bar *charts.Bar
	var scatter *charts.Scatter
	for _, a := range p.Artists() {
		xs, ys := a.Points()
		style := charts.WithItemStyleOpts(opts.ItemStyle{Color: a.Color().String()})
		switch a.Kind() {
		case entity.PlotLine:
			data := make([]opts.LineData, len(xs))
			for i := range xs {
				data[i] = opts.LineData{Value: []interface{}{xs[i], ys[i]}}
			}
			line.AddSeries(a.Label(), data, style,
				charts.WithLineStyleOpts(opts.LineStyle{Color: a.Color().String()}),
				charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
			)
		case entity.PlotBar:
			if bar == nil {
				bar = charts.NewBar()
			}
			data := make([]opts.BarData, len(xs))
			for i := range xs {
				data[i] = opts.BarData{Value: []interface{}{xs[i], ys[i]}}
			}
			bar.AddSeries(a.Label(), data, style)
		case entity.PlotScatter:
			if scatter == nil {
				scatter = charts.NewScatter()
			}
			data := make([]opts.ScatterData, len(xs))
			for i := range xs {
				data[i] = opts.ScatterData{Value: []interface{}{xs[i], ys[i]}}
			}
			scatter.AddSeries(a.Label(), data, style,
				charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
		}
	}
	if bar != nil {
		line.Overlap(bar)
	}
	if scatter != nil {
		line.Overlap(scatter)
	}
	return line
}
