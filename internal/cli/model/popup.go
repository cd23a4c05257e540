package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sahilm/fuzzy"

	"github.com/bnema/datagrid/internal/application/usecase"
	"github.com/bnema/datagrid/internal/cli/styles"
	"github.com/bnema/datagrid/internal/ui/controller"
	"github.com/bnema/datagrid/internal/ui/layout"
)

// hit is a clickable span of a popup row, in content coordinates.
type hit struct {
	row    int
	x0, x1 int
	run    func(ctx context.Context)
}

// popup is a rendered overlay with its clickable spans.
type popup struct {
	box  layout.Box
	body string
	hits []hit
}

// at returns the action under the screen cell (x, y). The bool reports
// whether the cell is inside the popup at all.
func (p *popup) at(x, y int) (func(ctx context.Context), bool) {
	if p == nil || !p.box.Contains(x, y) {
		return nil, false
	}
	cx, cy := x-p.box.X-1, y-p.box.Y-1
	for _, h := range p.hits {
		if h.row == cy && cx >= h.x0 && cx < h.x1 {
			return h.run, true
		}
	}
	return nil, true
}

// popupBuilder accumulates rows and hit spans.
type popupBuilder struct {
	theme *styles.Theme
	rows  []string
	hits  []hit
}

func (b *popupBuilder) title(s string) {
	b.rows = append(b.rows, b.theme.MenuTitle.Render(s))
}

func (b *popupBuilder) text(s string) {
	b.rows = append(b.rows, b.theme.MenuItem.Render(s))
}

func (b *popupBuilder) separator() {
	b.rows = append(b.rows, "")
}

// item adds a full-width clickable row.
func (b *popupBuilder) item(label string, run func(ctx context.Context)) {
	b.hits = append(b.hits, hit{row: len(b.rows), x0: 0, x1: 1 << 16, run: run})
	b.rows = append(b.rows, b.theme.MenuItem.Render(" "+label+" "))
}

// span is a clickable piece of a row built with segments.
type span struct {
	text string
	run  func(ctx context.Context)
}

// segments adds one row made of clickable spans.
func (b *popupBuilder) segments(parts []span) {
	row := len(b.rows)
	var sb strings.Builder
	x := 0
	for _, p := range parts {
		w := ansi.StringWidth(p.text)
		if p.run != nil {
			b.hits = append(b.hits, hit{row: row, x0: x, x1: x + w, run: p.run})
		}
		sb.WriteString(p.text)
		x += w
	}
	b.rows = append(b.rows, sb.String())
}

// build frames the rows and anchors the popup at (x, y) inside screen.
func (b *popupBuilder) build(x, y int, screen layout.Box) *popup {
	width := 0
	for _, r := range b.rows {
		width = max(width, ansi.StringWidth(r))
	}
	lines := make([]string, len(b.rows))
	for i, r := range b.rows {
		if r == "" {
			lines[i] = b.theme.MenuSeparator.Render(strings.Repeat("─", width))
			continue
		}
		if pad := width - ansi.StringWidth(r); pad > 0 {
			r += b.theme.MenuItem.Render(strings.Repeat(" ", pad))
		}
		lines[i] = r
	}
	body := b.theme.Menu.Render(strings.Join(lines, "\n"))
	w, h := lipgloss.Width(body), lipgloss.Height(body)
	return &popup{box: layout.Anchor(x, y, w, h, screen), body: body, hits: b.hits}
}

// buildMenuPopup renders the open controller menu.
func (m *GridModel) buildMenuPopup(menu *controller.Menu, screen layout.Box) *popup {
	b := &popupBuilder{theme: m.theme}
	b.title(" " + menu.Kind.Title() + " ")

	switch menu.Kind {
	case controller.MenuGrid:
		m.gridRows(b, menu)
	case controller.MenuData:
		m.dataRows(b, menu, screen)
	case controller.MenuAction:
		m.actionRows(b, menu)
	case controller.MenuColor:
		m.colorRows(b, menu)
	}
	return b.build(menu.X, menu.Y, screen)
}

func (m *GridModel) gridRows(b *popupBuilder, menu *controller.Menu) {
	for _, e := range menu.Grid {
		if e.Action == usecase.GridActionSeparator {
			b.separator()
			continue
		}
		entry := e
		b.item(entry.Label, func(ctx context.Context) { m.ctrl.SelectGrid(ctx, entry) })
	}
	if len(menu.Grid) == 0 {
		b.text(" nothing to do on this panel ")
	}
}

func (m *GridModel) dataRows(b *popupBuilder, menu *controller.Menu, screen layout.Box) {
	kinds := make([]span, 0, len(menu.Kinds)+1)
	kinds = append(kinds, span{text: b.theme.MenuItem.Render(" kind:")})
	for i, k := range menu.Kinds {
		idx := i
		st := b.theme.MenuItem
		if i == m.kindIdx {
			st = b.theme.MenuActive
		}
		kinds = append(kinds, span{
			text: b.theme.MenuItem.Render(" ") + st.Render(string(k)),
			run:  func(context.Context) { m.kindIdx = idx },
		})
	}
	b.segments(kinds)
	b.rows = append(b.rows, " "+m.filter.View())
	b.separator()

	names := filterNames(menu.Datasets, m.filter.Value())
	room := max(1, screen.H-8)
	if len(names) > room {
		names = names[:room]
	}
	kind := menu.Kinds[min(m.kindIdx, len(menu.Kinds)-1)]
	for _, name := range names {
		ds := name
		b.item(ds, func(ctx context.Context) { m.ctrl.SelectData(ctx, ds, kind) })
	}
	if len(names) == 0 {
		b.text(" no match ")
	}
}

func (m *GridModel) actionRows(b *popupBuilder, menu *controller.Menu) {
	if s := menu.Series; s != nil {
		b.segments([]span{
			{text: b.theme.MenuItem.Render(" ")},
			{text: m.theme.Swatch(s.Color.String(), 2)},
			{text: b.theme.MenuItem.Render(fmt.Sprintf(" %s (%s) %s ", s.Label, s.Kind, s.Color))},
		})
		b.separator()
	}
	b.item("Remove", m.ctrl.RemoveSeries)
	b.item("Color…", func(ctx context.Context) {
		m.ctrl.OpenColorPicker(ctx)
		m.hex.SetValue("")
		m.hex.Focus()
	})
	b.item("Cancel", m.ctrl.Dismiss)
}

func (m *GridModel) colorRows(b *popupBuilder, menu *controller.Menu) {
	for _, row := range colorPalette() {
		parts := []span{{text: b.theme.MenuItem.Render(" ")}}
		for _, hex := range row {
			c := hex
			parts = append(parts, span{
				text: m.theme.Swatch(c, 2),
				run:  func(ctx context.Context) { m.ctrl.ApplyColor(ctx, c) },
			})
		}
		parts = append(parts, span{text: b.theme.MenuItem.Render(" ")})
		b.segments(parts)
	}
	b.separator()
	b.rows = append(b.rows, " "+m.hex.View())
	b.segments([]span{
		{text: b.theme.MenuItem.Render(" ")},
		{text: b.theme.MenuActive.Render(" Apply "), run: func(ctx context.Context) {
			m.ctrl.ApplyColor(ctx, hexInput(m.hex.Value()))
		}},
		{text: b.theme.MenuItem.Render("  ")},
		{text: b.theme.MenuItem.Render(" Cancel "), run: func(ctx context.Context) { m.ctrl.ApplyColor(ctx, "") }},
	})
	if s := menu.Series; s != nil {
		b.text(fmt.Sprintf(" current %s ", s.Color))
	}
}

// filterNames keeps the frame order for an empty pattern, otherwise the
// fuzzy match order.
func filterNames(names []string, pattern string) []string {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return names
	}
	matches := fuzzy.Find(pattern, names)
	out := make([]string, len(matches))
	for i, mt := range matches {
		out[i] = mt.Str
	}
	return out
}

// colorPalette returns swatch rows: three value levels over twelve hues,
// then a grey ramp.
func colorPalette() [][]string {
	const hues = 12
	levels := []struct{ s, v float64 }{{0.45, 1}, {0.85, 0.9}, {0.9, 0.55}}
	rows := make([][]string, 0, len(levels)+1)
	for _, l := range levels {
		row := make([]string, hues)
		for i := range row {
			row[i] = colorful.Hsv(float64(i)*360/hues, l.s, l.v).Hex()
		}
		rows = append(rows, row)
	}
	greys := make([]string, hues)
	for i := range greys {
		g := float64(i) / float64(hues-1)
		greys[i] = colorful.Color{R: g, G: g, B: g}.Hex()
	}
	return append(rows, greys)
}

// hexInput normalizes the picker entry; the prompt already shows "#".
func hexInput(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	return v
}
