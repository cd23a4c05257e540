package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "cols too large",
			mutate: func(c *Config) { c.Grid.Cols = 65 },
			want:   "grid.cols must be between 1 and 64",
		},
		{
			name:   "layout does not parse",
			mutate: func(c *Config) { c.Grid.Layout = []string{"0,0,3"} },
			want:   "grid.layout[0]",
		},
		{
			name:   "layout leaves a gap",
			mutate: func(c *Config) { c.Grid.Layout = []string{"0,0,1,3"} },
			want:   "grid.layout: panels do not cover the grid",
		},
		{
			name:   "negative debounce",
			mutate: func(c *Config) { c.Interaction.PickDebounceMS = -5 },
			want:   "interaction.pick_debounce_ms",
		},
		{
			name:   "palette color",
			mutate: func(c *Config) { c.Appearance.Palette.Accent = "blue" },
			want:   "appearance.palette.accent must be a hex color",
		},
		{
			name:   "cycle color",
			mutate: func(c *Config) { c.Appearance.ColorCycle = []string{"#123456", "nope"} },
			want:   "appearance.color_cycle[1]",
		},
		{
			name: "dataset without source",
			mutate: func(c *Config) {
				c.Datasets = []DatasetConfig{{Name: "x"}}
			},
			want: "datasets[0] must set expr or file",
		},
		{
			name: "duplicate dataset",
			mutate: func(c *Config) {
				c.Datasets = []DatasetConfig{
					{Name: "x", Expr: "x", XMax: 1, Points: 10},
					{Name: "x", Expr: "x", XMax: 1, Points: 10},
				}
			},
			want: `datasets[1].name "x" is defined twice`,
		},
		{
			name: "empty expression range",
			mutate: func(c *Config) {
				c.Datasets = []DatasetConfig{{Name: "x", Expr: "x", XMin: 1, XMax: 1, Points: 10}}
			},
			want: "datasets[0].x_max must be greater than x_min",
		},
		{
			name:   "export format",
			mutate: func(c *Config) { c.Export.Formats = []ExportFormat{"pdf"} },
			want:   "export.formats[0]",
		},
		{
			name:   "log level",
			mutate: func(c *Config) { c.Logging.Level = "loud" },
			want:   "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
