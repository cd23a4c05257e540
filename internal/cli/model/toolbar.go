package model

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/datagrid/internal/cli/styles"
	"github.com/bnema/datagrid/internal/ui/controller"
	"github.com/bnema/datagrid/internal/ui/layout"
)

// Toolbar buttons, stored in hit.row.
const (
	toolbarHelp = iota
	toolbarSave
	toolbarQuit
)

var toolbarButtons = []struct {
	id    int
	label string
}{
	{toolbarHelp, "Help"},
	{toolbarSave, "Save"},
	{toolbarQuit, "Quit"},
}

// buildToolbar renders the bottom row: buttons on the left, the current
// notice after them.
func (m *GridModel) buildToolbar() (string, []hit) {
	var (
		sb   strings.Builder
		hits []hit
		x    int
	)
	for _, b := range toolbarButtons {
		btn := m.theme.ToolbarButton.Render(b.label)
		w := ansi.StringWidth(btn)
		hits = append(hits, hit{row: b.id, x0: x, x1: x + w})
		sb.WriteString(btn)
		sb.WriteString(m.theme.Toolbar.Render(" "))
		x += w + 1
	}

	if n := m.ctrl.Notice(); n != nil {
		sb.WriteString(noticeStyle(m.theme, n.Level).Render(" " + n.Text))
	} else if m.exporting {
		sb.WriteString(m.theme.Toolbar.Render(" saving…"))
	}
	return fit(sb.String(), m.width), hits
}

func noticeStyle(theme *styles.Theme, level controller.NoticeLevel) lipgloss.Style {
	switch level {
	case controller.NoticeWarn:
		return theme.WarningStyle.Background(theme.Surface)
	case controller.NoticeError:
		return theme.ErrorStyle.Background(theme.Surface)
	}
	return theme.Toolbar
}

// buildHelp renders the help window: pointer bindings, then the key map.
func (m *GridModel) buildHelp() *popup {
	b := &popupBuilder{theme: m.theme}
	b.title(" Help ")
	for _, row := range styles.MouseHelp() {
		b.segments([]span{
			{text: m.theme.MenuItem.Render(" ")},
			{text: m.theme.HelpKey.Background(m.theme.Surface).Render(row[0])},
			{text: m.theme.MenuItem.Render("  " + row[1] + " ")},
		})
	}
	b.separator()
	for _, line := range strings.Split(m.help.FullHelpView(m.keys.FullHelp()), "\n") {
		b.rows = append(b.rows, " "+line+" ")
	}
	b.separator()
	b.item("Close", func(context.Context) { m.ctrl.CloseHelp() })

	body := b.build(0, 0, m.screen())
	body.box = layout.Anchor((m.width-body.box.W)/2, (m.height-body.box.H)/2, body.box.W, body.box.H, m.screen())
	return body
}
