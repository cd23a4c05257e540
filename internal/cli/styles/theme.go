// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/datagrid/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Base colors (from config.PaletteConfig)
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	// HighlightBg marks the panel a menu is open on.
	HighlightBg lipgloss.Color

	// Additional semantic colors
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	// Pre-built styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Grid styles
	Panel            lipgloss.Style
	PanelHighlighted lipgloss.Style
	PanelTitle       lipgloss.Style
	Legend           lipgloss.Style

	// Popup styles
	Menu          lipgloss.Style
	MenuTitle     lipgloss.Style
	MenuItem      lipgloss.Style
	MenuSeparator lipgloss.Style
	MenuActive    lipgloss.Style

	Toolbar       lipgloss.Style
	ToolbarButton lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// DefaultPalette returns the palette used when config has none.
func DefaultPalette() config.PaletteConfig {
	return config.DefaultConfig().Appearance.Palette
}

// NewTheme creates a Theme from config.
func NewTheme(cfg *config.Config) *Theme {
	p := DefaultPalette()
	highlight := config.DefaultConfig().Appearance.Highlight
	if cfg != nil {
		if cfg.Appearance.Palette.Background != "" {
			p = cfg.Appearance.Palette
		}
		if cfg.Appearance.Highlight != "" {
			highlight = cfg.Appearance.Highlight
		}
	}

	t := NewThemeFromPalette(p)
	t.HighlightBg = lipgloss.Color(highlight)
	t.buildStyles()
	return t
}

// NewThemeFromPalette creates a Theme from a PaletteConfig.
func NewThemeFromPalette(p config.PaletteConfig) *Theme {
	t := &Theme{
		Background: lipgloss.Color(p.Background),
		Surface:    lipgloss.Color(p.Surface),
		Text:       lipgloss.Color(p.Text),
		Muted:      lipgloss.Color(p.Muted),
		Accent:     lipgloss.Color(p.Accent),
		Border:     lipgloss.Color(p.Border),

		HighlightBg: lipgloss.Color("#d3d3d3"),

		// Semantic colors (not in config, use sensible defaults)
		Error:   lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color("#f59e0b"),
		Success: lipgloss.Color(p.Accent),
	}

	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	// Text styles
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	// Panels: the border is drawn by the style, so content is 2 cells smaller.
	t.Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)

	t.PanelHighlighted = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(t.HighlightBg).
		Background(t.Surface)

	t.PanelTitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.Legend = lipgloss.NewStyle().
		Foreground(t.Text)

	// Menus
	t.Menu = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Background(t.Surface).
		Foreground(t.Text)

	t.MenuTitle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	t.MenuItem = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface)

	t.MenuSeparator = lipgloss.NewStyle().
		Foreground(t.Border).
		Background(t.Surface)

	t.MenuActive = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true)

	// Toolbar
	t.Toolbar = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface)

	t.ToolbarButton = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	// Input styles
	t.Input = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface)

	t.InputFocused = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Underline(true)

	// Help styles
	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	// Box/container styles
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)
}

// Series returns the foreground style for a plotted series color.
func (t *Theme) Series(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// Swatch renders a block of width cells filled with hex.
func (t *Theme) Swatch(hex string, width int) string {
	if width <= 0 {
		return ""
	}
	block := make([]rune, width)
	for i := range block {
		block[i] = ' '
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(string(block))
}
