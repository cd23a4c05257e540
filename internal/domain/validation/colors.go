// Package validation holds shared value checks for config and domain types.
package validation

import (
	"regexp"
	"sort"
)

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidatePaletteHex checks every named palette entry is a #RRGGBB color.
// Messages are returned in field-name order.
func ValidatePaletteHex(prefix string, fields map[string]string) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []string
	for _, name := range names {
		if !IsHexColor(fields[name]) {
			errs = append(errs, prefix+"."+name+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}
