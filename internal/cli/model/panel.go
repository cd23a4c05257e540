package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/datagrid/internal/cli/styles"
	"github.com/bnema/datagrid/internal/domain/entity"
	"github.com/bnema/datagrid/internal/ui/layout"
)

// renderPanel draws one bordered panel: a title row, the braille chart and
// a legend with one row per series.
func renderPanel(theme *styles.Theme, p *entity.Panel, box layout.Box, highlighted bool) *panelView {
	v := &panelView{id: p.ID, rect: p.Rect, box: box}
	if box.W < 3 || box.H < 3 {
		v.rendered = blankLines(box.W, box.H)
		v.canvas = NewCanvas(0, 0)
		return v
	}

	innerW, innerH := box.W-2, box.H-2
	artists := p.Artists()

	legendRows := min(len(artists), max(0, (innerH-1)/3))
	chartH := max(0, innerH-1-legendRows)

	style := theme.Panel
	if highlighted {
		style = theme.PanelHighlighted
	}
	bg := panelBackground(theme, highlighted)

	v.canvas = NewCanvas(innerW, chartH)
	v.canvas.DrawArtists(artists)
	v.chart = layout.Box{X: box.X + 1, Y: box.Y + 2, W: innerW, H: chartH}

	rows := make([]string, 0, innerH)
	title := fmt.Sprintf("%s %s", p.ID, p.Rect)
	rows = append(rows, fit(theme.PanelTitle.Inherit(bg).Render(title), innerW))
	if chartH > 0 {
		rows = append(rows, strings.Split(v.canvas.Render(bg), "\n")...)
	}
	for _, a := range artists[len(artists)-legendRows:] {
		mark := theme.Series(a.Color().String()).Inherit(bg).Render(legendMark(a.Kind()))
		rows = append(rows, fit(mark+theme.Legend.Inherit(bg).Render(" "+a.Label()), innerW))
	}

	body := style.Width(innerW).Height(innerH).Render(strings.Join(rows, "\n"))
	v.rendered = strings.Split(body, "\n")
	return v
}

// panelBackground fills a highlighted panel with the theme highlight color.
func panelBackground(theme *styles.Theme, highlighted bool) lipgloss.Style {
	bg := lipgloss.NewStyle()
	if highlighted {
		bg = bg.Background(theme.HighlightBg)
	}
	return bg
}

func legendMark(kind entity.PlotKind) string {
	switch kind {
	case entity.PlotBar:
		return "▮"
	case entity.PlotScatter:
		return "•"
	default:
		return "─"
	}
}

// fit truncates s to w cells and pads it with spaces to exactly w.
func fit(s string, w int) string {
	s = ansi.Truncate(s, w, "…")
	if pad := w - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func blankLines(w, h int) []string {
	if h <= 0 {
		return nil
	}
	out := make([]string, h)
	line := strings.Repeat(" ", max(w, 0))
	for i := range out {
		out[i] = line
	}
	return out
}
