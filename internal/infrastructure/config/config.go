package config

// Config represents the complete configuration for datagrid.
type Config struct {
	// Grid fixes the cell grid of a session and its starting partition.
	Grid GridConfig `mapstructure:"grid" toml:"grid" json:"grid"`
	// Demo controls the random datasets plotted on new panels.
	Demo        DemoConfig        `mapstructure:"demo" toml:"demo" json:"demo"`
	Interaction InteractionConfig `mapstructure:"interaction" toml:"interaction" json:"interaction"`
	Toolbar     ToolbarConfig     `mapstructure:"toolbar" toml:"toolbar" json:"toolbar"`
	Appearance  AppearanceConfig  `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	// Datasets adds named series on top of the built-in ones.
	Datasets []DatasetConfig `mapstructure:"datasets" toml:"datasets" json:"datasets,omitempty"`
	Export   ExportConfig    `mapstructure:"export" toml:"export" json:"export"`
	Logging  LoggingConfig   `mapstructure:"logging" toml:"logging" json:"logging"`
}

// GridConfig sets the grid size. Changes apply on the next start.
type GridConfig struct {
	Rows int `mapstructure:"rows" toml:"rows" json:"rows" jsonschema:"minimum=1,maximum=64"`
	Cols int `mapstructure:"cols" toml:"cols" json:"cols" jsonschema:"minimum=1,maximum=64"`
	// Layout lists "r1,c1,r2,c2" panel rectangles. Empty means top and bottom halves.
	Layout []string `mapstructure:"layout" toml:"layout" json:"layout,omitempty"`
}

// DemoConfig controls demo plotting.
type DemoConfig struct {
	// Enabled plots a random dataset on every initial and newly split panel.
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// BuiltinDatasets includes the built-in sample series.
	BuiltinDatasets bool `mapstructure:"builtin_datasets" toml:"builtin_datasets" json:"builtin_datasets"`
}

// InteractionConfig tunes pointer handling.
type InteractionConfig struct {
	// PickDebounceMS ignores picks arriving this soon after the previous one.
	PickDebounceMS int `mapstructure:"pick_debounce_ms" toml:"pick_debounce_ms" json:"pick_debounce_ms" jsonschema:"minimum=0,maximum=5000"`
	// NoticeSeconds is how long a notification stays in the status line.
	NoticeSeconds int `mapstructure:"notice_seconds" toml:"notice_seconds" json:"notice_seconds" jsonschema:"minimum=0"`
}

// ToolbarConfig controls the bottom toolbar.
type ToolbarConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
}

// PaletteConfig holds the UI colors as #RRGGBB values.
type PaletteConfig struct {
	Background string `mapstructure:"background" toml:"background" json:"background"`
	Surface    string `mapstructure:"surface" toml:"surface" json:"surface"`
	Text       string `mapstructure:"text" toml:"text" json:"text"`
	Muted      string `mapstructure:"muted" toml:"muted" json:"muted"`
	Accent     string `mapstructure:"accent" toml:"accent" json:"accent"`
	Border     string `mapstructure:"border" toml:"border" json:"border"`
}

// AppearanceConfig holds colors for panels and series.
type AppearanceConfig struct {
	Palette PaletteConfig `mapstructure:"palette" toml:"palette" json:"palette"`
	// Highlight fills the panel a menu is open on.
	Highlight string `mapstructure:"highlight" toml:"highlight" json:"highlight"`
	// ColorCycle colors successive series of a panel. Empty uses tab10.
	ColorCycle []string `mapstructure:"color_cycle" toml:"color_cycle" json:"color_cycle,omitempty"`
}

// DatasetConfig defines a dataset from an expression or a CSV file.
type DatasetConfig struct {
	Name string `mapstructure:"name" toml:"name" json:"name"`
	// Expr is a JavaScript expression in x, e.g. "Math.sin(x) * 2".
	Expr   string  `mapstructure:"expr" toml:"expr,omitempty" json:"expr,omitempty"`
	XMin   float64 `mapstructure:"x_min" toml:"x_min,omitempty" json:"x_min,omitempty"`
	XMax   float64 `mapstructure:"x_max" toml:"x_max,omitempty" json:"x_max,omitempty"`
	Points int     `mapstructure:"points" toml:"points,omitempty" json:"points,omitempty"`
	// File is a CSV file with a header row.
	File    string `mapstructure:"file" toml:"file,omitempty" json:"file,omitempty"`
	XColumn string `mapstructure:"x_column" toml:"x_column,omitempty" json:"x_column,omitempty"`
	YColumn string `mapstructure:"y_column" toml:"y_column,omitempty" json:"y_column,omitempty"`
}

// ExportFormat names a figure output format.
type ExportFormat string

const (
	ExportPNG  ExportFormat = "png"
	ExportSVG  ExportFormat = "svg"
	ExportHTML ExportFormat = "html"
)

// ExportConfig controls the Save button and the export command.
type ExportConfig struct {
	// Dir is where figures are written. Empty uses $XDG_DATA_HOME/datagrid/exports.
	Dir      string         `mapstructure:"dir" toml:"dir" json:"dir"`
	Formats  []ExportFormat `mapstructure:"formats" toml:"formats" json:"formats"`
	Title    string         `mapstructure:"title" toml:"title" json:"title"`
	WidthIn  float64        `mapstructure:"width_in" toml:"width_in" json:"width_in" jsonschema:"exclusiveMinimum=0"`
	HeightIn float64        `mapstructure:"height_in" toml:"height_in" json:"height_in" jsonschema:"exclusiveMinimum=0"`
	DPI      int            `mapstructure:"dpi" toml:"dpi" json:"dpi" jsonschema:"minimum=30,maximum=600"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// LogDir is where session logs go. Empty uses $XDG_STATE_HOME/datagrid/logs.
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days"`
	Compress      bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}
