// Package export writes figure snapshots to disk as images or HTML dashboards.
package export

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/bnema/datagrid/internal/application/port"
	"github.com/bnema/datagrid/internal/domain/entity"
)

const (
	defaultTitle    = "figure"
	defaultWidthIn  = 10.0
	defaultHeightIn = 7.5
	defaultDPI      = 96
	filePerm        = 0o644
)

// withDefaults fills zero-valued options.
func withDefaults(opts port.FigureOptions) port.FigureOptions {
	if strings.TrimSpace(opts.Title) == "" {
		opts.Title = defaultTitle
	}
	if opts.WidthIn <= 0 {
		opts.WidthIn = defaultWidthIn
	}
	if opts.HeightIn <= 0 {
		opts.HeightIn = defaultHeightIn
	}
	if opts.DPI <= 0 {
		opts.DPI = defaultDPI
	}
	return opts
}

// baseName turns a figure title into a file name stem.
func baseName(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '.':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return defaultTitle
	}
	return b.String()
}

// rgba converts a series color, falling back to black for malformed values.
func rgba(c entity.Color) color.Color {
	cc, err := colorful.Hex(string(c))
	if err != nil {
		return color.Black
	}
	return cc
}

// writeFile creates path and streams into it with fn.
func writeFile(path string, fn func(f *os.File) error) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", filepath.Base(path), cerr)
		}
	}()
	return fn(f)
}

func panelTitle(p *entity.Panel) string {
	return fmt.Sprintf("%s %s", p.ID, p.Rect)
}
