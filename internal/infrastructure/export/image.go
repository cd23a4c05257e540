package export

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/bnema/datagrid/internal/application/port"
	"github.com/bnema/datagrid/internal/domain/entity"
	"github.com/bnema/datagrid/internal/logging"
)

const (
	lineWidth     = 1.2 // points
	scatterRadius = 2   // points
	barFill       = 0.8 // fraction of the x spacing covered by a bar
)

// ImageExporter renders the figure with gonum/plot, one plot per panel,
// each placed where its grid rect sits in the figure.
type ImageExporter struct {
	format string
}

// NewPNGExporter creates a PNG figure exporter.
func NewPNGExporter() *ImageExporter {
	return &ImageExporter{format: "png"}
}

// NewSVGExporter creates an SVG figure exporter.
func NewSVGExporter() *ImageExporter {
	return &ImageExporter{format: "svg"}
}

// Format implements port.FigureExporter.
func (e *ImageExporter) Format() string {
	return e.format
}

// Export implements port.FigureExporter.
func (e *ImageExporter) Export(ctx context.Context, fig *entity.Tiling, dir string, opts port.FigureOptions) (string, error) {
	opts = withDefaults(opts)
	log := logging.FromContext(ctx).With().Str("format", e.format).Logger()

	w := vg.Length(opts.WidthIn) * vg.Inch
	h := vg.Length(opts.HeightIn) * vg.Inch

	var (
		canvas vg.CanvasWriterTo
		dc     draw.Canvas
	)
	switch e.format {
	case "png":
		img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(opts.DPI))
		dc = draw.New(img)
		canvas = vgimg.PngCanvas{Canvas: img}
	case "svg":
		svg := vgsvg.New(w, h)
		dc = draw.New(svg)
		canvas = svg
	default:
		return "", fmt.Errorf("unsupported image format %q", e.format)
	}

	if err := drawFigure(ctx, fig, dc); err != nil {
		return "", err
	}

	path := filepath.Join(dir, baseName(opts.Title)+"."+e.format)
	err := writeFile(path, func(f *os.File) error {
		_, err := canvas.WriteTo(f)
		return err
	})
	if err != nil {
		return "", err
	}
	log.Debug().Str("path", path).Int("panels", fig.Len()).Msg("image written")
	return path, nil
}

// drawFigure lays the panels out over dc. Grid row 0 is at the top of the
// figure while vg's y axis grows upwards.
func drawFigure(ctx context.Context, fig *entity.Tiling, dc draw.Canvas) error {
	dc.SetColor(color.White)
	dc.Fill(dc.Rectangle.Path())

	area := dc.Rectangle
	cellW := area.Size().X / vg.Length(fig.Cols())
	cellH := area.Size().Y / vg.Length(fig.Rows())

	for _, p := range fig.Panels() {
		if err := ctx.Err(); err != nil {
			return err
		}
		pl, err := panelPlot(p)
		if err != nil {
			return fmt.Errorf("panel %s: %w", p.ID, err)
		}
		sub := draw.Canvas{
			Canvas: dc.Canvas,
			Rectangle: vg.Rectangle{
				Min: vg.Point{
					X: area.Min.X + vg.Length(p.Rect.ColStart)*cellW,
					Y: area.Max.Y - vg.Length(p.Rect.RowEnd+1)*cellH,
				},
				Max: vg.Point{
					X: area.Min.X + vg.Length(p.Rect.ColEnd+1)*cellW,
					Y: area.Max.Y - vg.Length(p.Rect.RowStart)*cellH,
				},
			},
		}
		pl.Draw(sub)
	}
	return nil
}

// panelPlot builds the gonum plot for one panel's artists.
func panelPlot(p *entity.Panel) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = string(p.ID)
	pl.Legend.Top = true
	pl.Legend.Left = false
	pl.Legend.XOffs = -5
	pl.Legend.YOffs = -5

	for _, a := range p.Artists() {
		xs, ys := a.Points()
		if len(xs) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(xs))
		for i := range xs {
			xys[i] = plotter.XY{X: xs[i], Y: ys[i]}
		}

		switch v := a.(type) {
		case *entity.LineArtist:
			line, err := plotter.NewLine(xys)
			if err != nil {
				return nil, fmt.Errorf("line %s: %w", a.Label(), err)
			}
			line.Color = rgba(v.Color())
			line.Width = vg.Points(lineWidth)
			pl.Add(line)
			pl.Legend.Add(a.Label(), line)
		case *entity.ScatterArtist:
			sc, err := plotter.NewScatter(xys)
			if err != nil {
				return nil, fmt.Errorf("scatter %s: %w", a.Label(), err)
			}
			faces := v.FaceColors()
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
			sc.GlyphStyle.Radius = vg.Points(scatterRadius)
			sc.GlyphStyle.Color = rgba(v.Color())
			sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
				gs := sc.GlyphStyle
				if i < len(faces) {
					gs.Color = rgba(faces[i])
				}
				return gs
			}
			pl.Add(sc)
			pl.Legend.Add(a.Label(), sc)
		case *entity.BarArtist:
			bc, err := newBars(xys, v.BarColors())
			if err != nil {
				return nil, fmt.Errorf("bars %s: %w", a.Label(), err)
			}
			pl.Add(bc)
			pl.Legend.Add(a.Label(), bc)
		default:
			return nil, fmt.Errorf("%w: %s", entity.ErrInvalidPlotKind, a.Kind())
		}
	}
	return pl, nil
}

// bars draws one filled rectangle per point, centred on its x value.
// plotter.BarChart places bars at category indices, not data x values.
type bars struct {
	xys    plotter.XYs
	colors []color.Color
	width  float64 // in data units
}

func newBars(xys plotter.XYs, faces []entity.Color) (*bars, error) {
	if len(xys) == 0 {
		return nil, plotter.ErrNoData
	}
	b := &bars{xys: xys, colors: make([]color.Color, len(faces))}
	for i, c := range faces {
		b.colors[i] = rgba(c)
	}
	b.width = barFill * minSpacing(xys)
	return b, nil
}

// minSpacing returns the smallest positive gap between x values, or 1.
func minSpacing(xys plotter.XYs) float64 {
	xs := make([]float64, len(xys))
	for i := range xys {
		xs[i] = xys[i].X
	}
	gap := math.Inf(1)
	for i := 1; i < len(xs); i++ {
		d := math.Abs(xs[i] - xs[i-1])
		if d > 0 && d < gap {
			gap = d
		}
	}
	if math.IsInf(gap, 1) {
		return 1
	}
	return gap
}

func (b *bars) color(i int) color.Color {
	if i < len(b.colors) {
		return b.colors[i]
	}
	if len(b.colors) > 0 {
		return b.colors[0]
	}
	return color.Black
}

// Plot implements plot.Plotter.
func (b *bars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	half := b.width / 2
	for i, xy := range b.xys {
		x0, x1 := trX(xy.X-half), trX(xy.X+half)
		y0, y1 := trY(0), trY(xy.Y)
		pts := []vg.Point{{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}}
		c.FillPolygon(b.color(i), c.ClipPolygonXY(pts))
	}
}

// DataRange implements plot.DataRanger. Bars always include the zero baseline.
func (b *bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xs := make([]float64, len(b.xys))
	ys := make([]float64, len(b.xys))
	for i, xy := range b.xys {
		xs[i], ys[i] = xy.X, xy.Y
	}
	half := b.width / 2
	return floats.Min(xs) - half, floats.Max(xs) + half,
		math.Min(0, floats.Min(ys)), math.Max(0, floats.Max(ys))
}

// Thumbnail implements plot.Thumbnailer for the legend.
func (b *bars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.color(0), c.ClipPolygonY(pts))
}
