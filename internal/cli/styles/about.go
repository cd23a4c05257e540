package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/datagrid/internal/domain/build"
)

// AboutRenderer renders build info next to a small logo.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// AboutDetails is the runtime context shown under the build info.
type AboutDetails struct {
	ConfigFile string
	Formats    []string
}

// Render renders the logo next to build info and runtime details.
func (r *AboutRenderer) Render(info build.Info, details AboutDetails) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", r.renderInfoLines(info, details))
}

func (r *AboutRenderer) renderLogo() string {
	// A 2x2 grid of plot panels.
	logo := `┌───┬───┐
│ ╱ │ ▂▅│
├───┴───┤
│ ∿∿∿∿∿ │
└───────┘`
	return lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true).MarginTop(1).MarginLeft(2).Render(logo)
}

func (r *AboutRenderer) renderInfoLines(info build.Info, details AboutDetails) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	var lines []string
	add := func(icon, key, val string) {
		if val == "" {
			return
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", iconStyle.Render(icon), r.theme.Subtle.Render(key), r.theme.Highlight.Render(val)))
	}

	add(IconVersion, "Version", info.DisplayVersion())
	add(IconGitBranch, "Commit", info.Commit)
	add(IconCalendar, "Built", info.BuildDate)
	add(IconGo, "Go", info.GoVersion)
	add(IconConfig, "Config", details.ConfigFile)
	add(IconImage, "Export", strings.Join(details.Formats, ", "))
	lines = append(lines, "",
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), r.theme.Subtle.Render(build.RepoURL())),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconHeart), r.theme.Subtle.Render("Made with love by"),
			r.theme.Highlight.Render(strings.Join(build.Contributors(), ", "))),
	)
	return strings.Join(lines, "\n")
}
