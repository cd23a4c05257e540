package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledInput creates a themed text input.
func NewStyledInput(theme *Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted).Background(theme.Surface)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text).Background(theme.Surface)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent).Background(theme.Surface)
	ti.Prompt = "/ "
	return ti
}

// NewFilterInput creates the dataset filter of the data menu.
func NewFilterInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "filter...")
	ti.CharLimit = 64
	return ti
}

// NewHexInput creates the hex entry of the color picker.
func NewHexInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "#rrggbb")
	ti.Prompt = "# "
	ti.CharLimit = 7
	return ti
}
