package model

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/datagrid/internal/cli/styles"
	"github.com/bnema/datagrid/internal/infrastructure/config"
)

func TestPanelBackground_UsesHighlightColor(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.Highlight = "#ff0000"
	theme := styles.NewTheme(cfg)

	assert.Equal(t, lipgloss.Color("#ff0000"), panelBackground(theme, true).GetBackground())
	assert.NotEqual(t, theme.Surface, panelBackground(theme, true).GetBackground())
	assert.Equal(t, lipgloss.TerminalColor(lipgloss.NoColor{}), panelBackground(theme, false).GetBackground())
}
