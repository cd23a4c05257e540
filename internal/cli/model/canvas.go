package model

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/datagrid/internal/domain/entity"
)

// Braille cells hold a 2x4 dot matrix.
const (
	brailleBase = 0x2800
	dotsX       = 2
	dotsY       = 4
)

// brailleBits maps a dot position inside a cell to its bit.
var brailleBits = [dotsX][dotsY]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Canvas is a braille chart surface. Every cell remembers the color and the
// series that drew into it last, which makes pick hit-testing a lookup.
type Canvas struct {
	w, h   int
	dots   []rune
	colors []entity.Color
	owners []entity.ArtistID
}

// NewCanvas creates a w×h cell canvas.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n := w * h
	return &Canvas{
		w:      w,
		h:      h,
		dots:   make([]rune, n),
		colors: make([]entity.Color, n),
		owners: make([]entity.ArtistID, n),
	}
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

// set lights the dot at pixel (px, py); py grows downwards.
func (c *Canvas) set(px, py int, color entity.Color, owner entity.ArtistID) {
	if px < 0 || py < 0 || px >= c.w*dotsX || py >= c.h*dotsY {
		return
	}
	i := (py/dotsY)*c.w + px/dotsX
	c.dots[i] |= brailleBits[px%dotsX][py%dotsY]
	c.colors[i] = color
	c.owners[i] = owner
}

// line draws with Bresenham between two pixels.
func (c *Canvas) line(x0, y0, x1, y1 int, color entity.Color, owner entity.ArtistID) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0, color, owner)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Owner returns the series drawn at cell (x, y), or "".
func (c *Canvas) Owner(x, y int) entity.ArtistID {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return ""
	}
	return c.owners[y*c.w+x]
}

// Render returns h lines of w cells each.
func (c *Canvas) Render(bg lipgloss.Style) string {
	lines := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var sb strings.Builder
		for x := 0; x < c.w; x++ {
			i := y*c.w + x
			if c.dots[i] == 0 {
				sb.WriteString(bg.Render(" "))
				continue
			}
			st := bg.Foreground(lipgloss.Color(string(c.colors[i])))
			sb.WriteString(st.Render(string(brailleBase + c.dots[i])))
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// bounds is the data window mapped onto the canvas.
type bounds struct {
	xmin, xmax, ymin, ymax float64
}

// dataBounds spans the finite points of every artist, padding degenerate
// ranges. Bars pull the y range to zero.
func dataBounds(artists []entity.Artist) (bounds, bool) {
	b := bounds{xmin: math.Inf(1), xmax: math.Inf(-1), ymin: math.Inf(1), ymax: math.Inf(-1)}
	for _, a := range artists {
		xs, ys := a.Points()
		for i := range xs {
			if !finitePoint(xs, ys, i) {
				continue
			}
			b.xmin, b.xmax = math.Min(b.xmin, xs[i]), math.Max(b.xmax, xs[i])
			b.ymin, b.ymax = math.Min(b.ymin, ys[i]), math.Max(b.ymax, ys[i])
		}
		if a.Kind() == entity.PlotBar && !math.IsInf(b.ymin, 1) {
			b.ymin = math.Min(b.ymin, 0)
			b.ymax = math.Max(b.ymax, 0)
		}
	}
	if math.IsInf(b.xmin, 1) {
		return b, false
	}
	if b.xmax == b.xmin {
		b.xmin, b.xmax = b.xmin-1, b.xmax+1
	}
	if b.ymax == b.ymin {
		b.ymin, b.ymax = b.ymin-1, b.ymax+1
	}
	return b, true
}

// finitePoint reports whether point i exists in both series and is finite.
func finitePoint(xs, ys []float64, i int) bool {
	return i < len(xs) && i < len(ys) && entity.IsFinite(xs[i]) && entity.IsFinite(ys[i])
}

// DrawArtists plots every artist in draw order, so later series own the
// cells they share with earlier ones.
func (c *Canvas) DrawArtists(artists []entity.Artist) {
	b, ok := dataBounds(artists)
	if !ok || c.w == 0 || c.h == 0 {
		return
	}
	pw, ph := c.w*dotsX-1, c.h*dotsY-1
	px := func(x float64) int {
		return toDot((x-b.xmin)/(b.xmax-b.xmin)*float64(pw), pw)
	}
	py := func(y float64) int {
		return ph - toDot((y-b.ymin)/(b.ymax-b.ymin)*float64(ph), ph)
	}

	for _, a := range artists {
		xs, ys := a.Points()
		id := a.ID()
		switch v := a.(type) {
		case *entity.LineArtist:
			// Non-finite points break the polyline like a gap.
			for i := range xs {
				if !finitePoint(xs, ys, i) {
					continue
				}
				if i > 0 && finitePoint(xs, ys, i-1) {
					c.line(px(xs[i-1]), py(ys[i-1]), px(xs[i]), py(ys[i]), v.Color(), id)
				} else {
					c.set(px(xs[i]), py(ys[i]), v.Color(), id)
				}
			}
		case *entity.ScatterArtist:
			faces := v.FaceColors()
			for i := range xs {
				if !finitePoint(xs, ys, i) {
					continue
				}
				col := v.Color()
				if i < len(faces) {
					col = faces[i]
				}
				x, y := px(xs[i]), py(ys[i])
				c.set(x, y, col, id)
				c.set(x+1, y, col, id)
			}
		case *entity.BarArtist:
			bars := v.BarColors()
			zero := py(0)
			for i := range xs {
				if !finitePoint(xs, ys, i) {
					continue
				}
				col := v.Color()
				if i < len(bars) {
					col = bars[i]
				}
				x := px(xs[i])
				c.line(x, zero, x, py(ys[i]), col, id)
			}
		}
	}
}

// toDot rounds a scaled coordinate and clamps it to one dot outside
// [0, n], so lines stay bounded even when the data range overflows.
func toDot(v float64, n int) int {
	switch {
	case math.IsNaN(v) || v < -1:
		return -1
	case v > float64(n+1):
		return n + 1
	}
	return int(math.Round(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
