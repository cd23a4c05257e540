package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Section names for grouping config keys.
const (
	SectionGrid        = "Grid"
	SectionDemo        = "Demo"
	SectionInteraction = "Interaction"
	SectionToolbar     = "Toolbar"
	SectionAppearance  = "Appearance"
	SectionExport      = "Export"
	SectionLogging     = "Logging"
)

// SectionOrder is the display order of the sections.
var SectionOrder = []string{
	SectionGrid,
	SectionDemo,
	SectionInteraction,
	SectionToolbar,
	SectionAppearance,
	SectionExport,
	SectionLogging,
}

// KeyInfo describes a single configuration key for schema documentation.
type KeyInfo struct {
	// Key is the full dotted path, e.g. "grid.rows".
	Key         string   `json:"key"`
	Type        string   `json:"type"`
	Default     string   `json:"default"`
	Description string   `json:"description"`
	Values      []string `json:"values,omitempty"`
	// Range describes numeric constraints, e.g. "1-64".
	Range   string `json:"range,omitempty"`
	Section string `json:"section"`
}

// Keys returns every scalar configuration key with its default.
// [[datasets]] tables are documented by the JSON schema only.
func Keys() []KeyInfo {
	d := DefaultConfig()
	itoa := strconv.Itoa
	btoa := strconv.FormatBool
	ftoa := func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

	formats := make([]string, len(d.Export.Formats))
	for i, f := range d.Export.Formats {
		formats[i] = string(f)
	}
	p := d.Appearance.Palette

	return []KeyInfo{
		{Key: "grid.rows", Type: "int", Default: itoa(d.Grid.Rows), Range: fmt.Sprintf("1-%d", maxGridSide),
			Description: "Grid rows, fixed for a session", Section: SectionGrid},
		{Key: "grid.cols", Type: "int", Default: itoa(d.Grid.Cols), Range: fmt.Sprintf("1-%d", maxGridSide),
			Description: "Grid columns, fixed for a session", Section: SectionGrid},
		{Key: "grid.layout", Type: "[]string", Default: "[]",
			Description: `Starting panels as "r1,c1,r2,c2"; empty means top and bottom halves`, Section: SectionGrid},

		{Key: "demo.enabled", Type: "bool", Default: btoa(d.Demo.Enabled),
			Description: "Plot a random dataset on every new panel", Section: SectionDemo},
		{Key: "demo.builtin_datasets", Type: "bool", Default: btoa(d.Demo.BuiltinDatasets),
			Description: "Include the built-in sample series", Section: SectionDemo},

		{Key: "interaction.pick_debounce_ms", Type: "int", Default: itoa(d.Interaction.PickDebounceMS), Range: "0-5000",
			Description: "Ignore series picks arriving sooner than this", Section: SectionInteraction},
		{Key: "interaction.notice_seconds", Type: "int", Default: itoa(d.Interaction.NoticeSeconds), Range: ">=0",
			Description: "How long a notification stays in the toolbar", Section: SectionInteraction},

		{Key: "toolbar.enabled", Type: "bool", Default: btoa(d.Toolbar.Enabled),
			Description: "Show the Help/Save/Quit bar", Section: SectionToolbar},

		{Key: "appearance.palette.background", Type: "string", Default: p.Background, Description: "Screen background", Section: SectionAppearance},
		{Key: "appearance.palette.surface", Type: "string", Default: p.Surface, Description: "Menu and toolbar background", Section: SectionAppearance},
		{Key: "appearance.palette.text", Type: "string", Default: p.Text, Description: "Text color", Section: SectionAppearance},
		{Key: "appearance.palette.muted", Type: "string", Default: p.Muted, Description: "Secondary text color", Section: SectionAppearance},
		{Key: "appearance.palette.accent", Type: "string", Default: p.Accent, Description: "Titles and active items", Section: SectionAppearance},
		{Key: "appearance.palette.border", Type: "string", Default: p.Border, Description: "Panel borders", Section: SectionAppearance},
		{Key: "appearance.highlight", Type: "string", Default: d.Appearance.Highlight,
			Description: "Fill of the panel a menu is open on", Section: SectionAppearance},
		{Key: "appearance.color_cycle", Type: "[]string", Default: "tab10",
			Description: "Series colors of a panel, in order", Section: SectionAppearance},

		{Key: "export.dir", Type: "string", Default: d.Export.Dir,
			Description: "Output directory; empty uses the data dir", Section: SectionExport},
		{Key: "export.formats", Type: "[]string", Default: strings.Join(formats, ","),
			Values: []string{string(ExportPNG), string(ExportSVG), string(ExportHTML)},
			Description: "Formats written by Save and the export command", Section: SectionExport},
		{Key: "export.title", Type: "string", Default: d.Export.Title, Description: "Figure title", Section: SectionExport},
		{Key: "export.width_in", Type: "float64", Default: ftoa(d.Export.WidthIn), Range: ">0",
			Description: "Image width in inches", Section: SectionExport},
		{Key: "export.height_in", Type: "float64", Default: ftoa(d.Export.HeightIn), Range: ">0",
			Description: "Image height in inches", Section: SectionExport},
		{Key: "export.dpi", Type: "int", Default: itoa(d.Export.DPI), Range: "30-600",
			Description: "PNG resolution", Section: SectionExport},

		{Key: "logging.level", Type: "string", Default: d.Logging.Level,
			Values: []string{"trace", "debug", "info", "warn", "error"}, Description: "Minimum log level", Section: SectionLogging},
		{Key: "logging.format", Type: "string", Default: d.Logging.Format,
			Values: []string{"console", "json"}, Description: "Console log format", Section: SectionLogging},
		{Key: "logging.log_dir", Type: "string", Default: d.Logging.LogDir,
			Description: "Session log directory; empty uses the state dir", Section: SectionLogging},
		{Key: "logging.enable_file_log", Type: "bool", Default: btoa(d.Logging.EnableFileLog),
			Description: "Write a JSON log per session", Section: SectionLogging},
		{Key: "logging.max_size_mb", Type: "int", Default: itoa(d.Logging.MaxSizeMB), Description: "Rotate the log after this size", Section: SectionLogging},
		{Key: "logging.max_backups", Type: "int", Default: itoa(d.Logging.MaxBackups), Description: "Rotated files to keep", Section: SectionLogging},
		{Key: "logging.max_age_days", Type: "int", Default: itoa(d.Logging.MaxAgeDays), Description: "Delete rotated files older than this", Section: SectionLogging},
		{Key: "logging.compress", Type: "bool", Default: btoa(d.Logging.Compress), Description: "Gzip rotated files", Section: SectionLogging},
	}
}
