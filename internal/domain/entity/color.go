package entity

import (
	"fmt"
	"strings"

	"github.com/bnema/datagrid/internal/domain/validation"
)

// Color is a "#rrggbb" hex color.
type Color string

// namedColors covers the names accepted in config files.
var namedColors = map[string]Color{
	"black":     "#000000",
	"white":     "#ffffff",
	"lightgrey": "#d3d3d3",
	"lightgray": "#d3d3d3",
	"grey":      "#808080",
	"gray":      "#808080",
	"red":       "#ff0000",
	"green":     "#008000",
	"blue":      "#0000ff",
}

// DefaultColorCycle is the tab10 series cycle.
var DefaultColorCycle = []Color{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// ParseColor accepts "#rrggbb", "#rgb" or a known color name.
func ParseColor(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[v]; ok {
		return c, nil
	}
	if len(v) == 4 && v[0] == '#' {
		v = string([]byte{'#', v[1], v[1], v[2], v[2], v[3], v[3]})
	}
	if !validation.IsHexColor(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color(v), nil
}

// String returns the hex form.
func (c Color) String() string {
	return string(c)
}
