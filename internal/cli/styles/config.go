package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location.
func (r *ConfigRenderer) RenderPath(path string, created bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	var note string
	if created {
		note = fmt.Sprintf("\n  %s %s",
			iconStyle.Render(IconInfo),
			r.theme.Subtle.Render("Created with all defaults."),
		)
	}

	return fmt.Sprintf(
		"\n  %s Config %s%s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		note,
	)
}

// RenderEffective renders the effective TOML with a header line.
func (r *ConfigRenderer) RenderEffective(path string, body []byte) string {
	var sb strings.Builder
	sb.WriteString(r.theme.Subtle.Render("# effective configuration, file: " + path))
	sb.WriteString("\n")
	sb.Write(body)
	return sb.String()
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderExported lists the files written by an export.
func (r *ConfigRenderer) RenderExported(paths []string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s Exported %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(fmt.Sprintf("%d file(s)", len(paths))),
	))
	for _, p := range paths {
		sb.WriteString(fmt.Sprintf("    %s %s\n", iconStyle.Render(IconImage), r.theme.Subtle.Render(p)))
	}
	return sb.String()
}
