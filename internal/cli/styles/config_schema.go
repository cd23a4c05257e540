package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/datagrid/internal/infrastructure/config"
)

// ConfigSchemaRenderer renders the config key reference.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders keys grouped by section, in config.SectionOrder.
func (r *ConfigSchemaRenderer) Render(keys []config.KeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	sections := groupBySection(keys)
	parts := []string{r.renderHeader(), ""}
	for _, section := range config.SectionOrder {
		if sectionKeys, ok := sections[section]; ok {
			parts = append(parts, r.renderSection(section, sectionKeys), "")
		}
	}
	return strings.Join(parts, "\n")
}

func (r *ConfigSchemaRenderer) renderHeader() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Title.Render("Config Reference"))
}

func groupBySection(keys []config.KeyInfo) map[string][]config.KeyInfo {
	sections := make(map[string][]config.KeyInfo)
	for _, key := range keys {
		sections[key.Section] = append(sections[key.Section], key)
	}
	return sections
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []config.KeyInfo) string {
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, r.renderKey(key))
	}
	content := r.theme.Highlight.Render(name) + "\n" + strings.Join(lines, "\n")
	return r.theme.Box.PaddingTop(0).Render(content)
}

func (r *ConfigSchemaRenderer) renderKey(key config.KeyInfo) string {
	def := key.Default
	if def == "" {
		def = `""`
	}
	result := fmt.Sprintf("%s  %s  %s\n  %s",
		r.theme.Normal.Bold(true).Render(key.Key),
		r.theme.Subtle.Render(key.Type),
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(def),
		r.theme.Subtle.Render(key.Description),
	)

	switch {
	case len(key.Values) > 0:
		result += "\n  " + r.theme.Normal.Render("Values: "+strings.Join(key.Values, ", "))
	case key.Range != "":
		result += "\n  " + r.theme.Normal.Render("Range: "+key.Range)
	}
	return result
}
