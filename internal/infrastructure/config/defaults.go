package config

const (
	defaultRows           = 4
	defaultCols           = 4
	defaultPickDebounceMS = 400
)

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Rows: defaultRows,
			Cols: defaultCols,
		},
		Demo: DemoConfig{
			Enabled:         true,
			BuiltinDatasets: true,
		},
		Interaction: InteractionConfig{
			PickDebounceMS: defaultPickDebounceMS,
			NoticeSeconds:  4,
		},
		Toolbar: ToolbarConfig{Enabled: true},
		Appearance: AppearanceConfig{
			Palette: PaletteConfig{
				Background: "#1e1e2e",
				Surface:    "#313244",
				Text:       "#cdd6f4",
				Muted:      "#7f849c",
				Accent:     "#89b4fa",
				Border:     "#585b70",
			},
			Highlight: "#d3d3d3",
		},
		Export: ExportConfig{
			Formats:  []ExportFormat{ExportPNG, ExportSVG, ExportHTML},
			Title:    "datagrid",
			WidthIn:  10,
			HeightIn: 7.5,
			DPI:      96,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: true,
			MaxSizeMB:     10,
			MaxBackups:    5,
			MaxAgeDays:    7,
		},
	}
}
