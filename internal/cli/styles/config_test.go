package styles_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/datagrid/internal/cli/styles"
	"github.com/bnema/datagrid/internal/domain/build"
	"github.com/bnema/datagrid/internal/infrastructure/config"
)

func TestConfigRenderer(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig())
	r := styles.NewConfigRenderer(theme)

	out := r.RenderPath("/tmp/datagrid/config.toml", true)
	require.Contains(t, out, "config.toml")
	assert.Contains(t, out, "Created")
	assert.NotContains(t, r.RenderPath("/tmp/x.toml", false), "Created")

	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")

	out = r.RenderExported([]string{"/out/a.png", "/out/a.svg"})
	assert.Contains(t, out, "2 file(s)")
	assert.Contains(t, out, "/out/a.svg")
}

func TestNewTheme_UsesConfigHighlight(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.Highlight = "#ff0000"

	theme := styles.NewTheme(cfg)
	assert.Equal(t, "#ff0000", string(theme.HighlightBg))
	assert.Equal(t, cfg.Appearance.Palette.Accent, string(theme.Accent))

	assert.NotPanics(t, func() { styles.NewTheme(nil) })
	assert.Empty(t, theme.Swatch("#000000", 0))
}

func TestConfigSchemaRenderer(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme(config.DefaultConfig()))

	out := r.Render(config.Keys())
	assert.Contains(t, out, "Config Reference")
	assert.Contains(t, out, "grid.rows")
	assert.Contains(t, out, "interaction.pick_debounce_ms")
	assert.Contains(t, out, "Range: 0-5000")
	assert.Contains(t, out, "Values: png, svg, html")
	assert.Less(t, strings.Index(out, "Grid"), strings.Index(out, "Logging"))

	assert.Contains(t, r.Render(nil), "No configuration keys")
}

func TestAboutRenderer(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme(config.DefaultConfig()))

	out := r.Render(build.Info{Version: "1.4.0", Commit: "abc123"}, styles.AboutDetails{
		ConfigFile: "/home/u/.config/datagrid/config.toml",
		Formats:    []string{"png", "svg"},
	})
	assert.Contains(t, out, "1.4.0")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "config.toml")
	assert.Contains(t, out, "png, svg")
	assert.NotContains(t, out, "Built", "empty build date is omitted")
}
