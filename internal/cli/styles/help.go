package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// GridKeyMap defines keybindings for the plot grid. Layout operations are
// mouse-only, so there is no binding for them.
type GridKeyMap struct {
	Dismiss  key.Binding
	NextKind key.Binding
	Confirm  key.Binding
	Save     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k GridKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss, k.Save, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k GridKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Dismiss, k.NextKind, k.Confirm},
		{k.Save, k.Help, k.Quit},
	}
}

// DefaultGridKeyMap returns the default grid keybindings.
func DefaultGridKeyMap() GridKeyMap {
	return GridKeyMap{
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close menu"),
		),
		NextKind: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next plot kind"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply color"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save figure"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MouseHelp lists the pointer bindings shown in the help window.
func MouseHelp() [][2]string {
	return [][2]string{
		{"left click on a series", "series actions (remove, color)"},
		{"right click on a panel", "data menu (plot a dataset)"},
		{"middle click on a panel", "grid menu (split, extend)"},
		{"click outside a menu", "close the menu"},
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
