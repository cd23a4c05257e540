package config

import (
	"fmt"
	"strings"

	"github.com/bnema/datagrid/internal/domain/entity"
	domainvalidation "github.com/bnema/datagrid/internal/domain/validation"
)

const maxGridSide = 64

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateGrid(config)...)
	validationErrors = append(validationErrors, validateInteraction(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateDatasets(config)...)
	validationErrors = append(validationErrors, validateExport(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateGrid(config *Config) []string {
	var errs []string
	g := config.Grid
	if g.Rows < 1 || g.Rows > maxGridSide {
		errs = append(errs, fmt.Sprintf("grid.rows must be between 1 and %d", maxGridSide))
	}
	if g.Cols < 1 || g.Cols > maxGridSide {
		errs = append(errs, fmt.Sprintf("grid.cols must be between 1 and %d", maxGridSide))
	}
	if len(errs) > 0 || len(g.Layout) == 0 {
		return errs
	}

	specs := make([]entity.PanelSpec, 0, len(g.Layout))
	for i, s := range g.Layout {
		r, err := entity.ParseRect(s)
		if err != nil {
			errs = append(errs, fmt.Sprintf("grid.layout[%d]: %v", i, err))
			continue
		}
		specs = append(specs, entity.PanelSpec{ID: entity.PanelID(fmt.Sprintf("layout-%d", i)), Rect: r})
	}
	if len(errs) == 0 {
		if _, err := entity.NewTiling(g.Rows, g.Cols, specs); err != nil {
			errs = append(errs, fmt.Sprintf("grid.layout: %v", err))
		}
	}
	return errs
}

func validateInteraction(config *Config) []string {
	var errs []string
	if config.Interaction.PickDebounceMS < 0 || config.Interaction.PickDebounceMS > 5000 {
		errs = append(errs, "interaction.pick_debounce_ms must be between 0 and 5000")
	}
	if config.Interaction.NoticeSeconds < 0 {
		errs = append(errs, "interaction.notice_seconds must be non-negative")
	}
	return errs
}

func validateAppearance(config *Config) []string {
	a := config.Appearance
	errs := domainvalidation.ValidatePaletteHex("appearance.palette", map[string]string{
		"background": a.Palette.Background,
		"surface":    a.Palette.Surface,
		"text":       a.Palette.Text,
		"muted":      a.Palette.Muted,
		"accent":     a.Palette.Accent,
		"border":     a.Palette.Border,
	})
	if _, err := entity.ParseColor(a.Highlight); err != nil {
		errs = append(errs, fmt.Sprintf("appearance.highlight: %v", err))
	}
	for i, c := range a.ColorCycle {
		if _, err := entity.ParseColor(c); err != nil {
			errs = append(errs, fmt.Sprintf("appearance.color_cycle[%d]: %v", i, err))
		}
	}
	return errs
}

func validateDatasets(config *Config) []string {
	var errs []string
	seen := make(map[string]bool, len(config.Datasets))
	for i, d := range config.Datasets {
		prefix := fmt.Sprintf("datasets[%d]", i)
		if d.Name == "" {
			errs = append(errs, prefix+".name is required")
		} else if seen[d.Name] {
			errs = append(errs, fmt.Sprintf("%s.name %q is defined twice", prefix, d.Name))
		}
		seen[d.Name] = true

		switch {
		case d.Expr != "" && d.File != "":
			errs = append(errs, prefix+" must set either expr or file, not both")
		case d.Expr != "":
			if d.Points < 2 {
				errs = append(errs, prefix+".points must be at least 2")
			}
			if d.XMax <= d.XMin {
				errs = append(errs, prefix+".x_max must be greater than x_min")
			}
		case d.File != "":
			if d.YColumn == "" {
				errs = append(errs, prefix+".y_column is required for file datasets")
			}
		default:
			errs = append(errs, prefix+" must set expr or file")
		}
	}
	return errs
}

func validateExport(config *Config) []string {
	var errs []string
	e := config.Export
	for i, f := range e.Formats {
		switch f {
		case ExportPNG, ExportSVG, ExportHTML:
		default:
			errs = append(errs, fmt.Sprintf("export.formats[%d] must be one of png, svg, html (got %q)", i, f))
		}
	}
	if e.WidthIn <= 0 || e.HeightIn <= 0 {
		errs = append(errs, "export.width_in and export.height_in must be positive")
	}
	if e.DPI < 30 || e.DPI > 600 {
		errs = append(errs, "export.dpi must be between 30 and 600")
	}
	return errs
}

func validateLogging(config *Config) []string {
	var errs []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 0 || config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		errs = append(errs, "logging rotation limits must be non-negative")
	}
	return errs
}
