package model

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// placeOverlay draws fg over bg with its top-left corner at (x, y). Both are
// newline separated and may contain ANSI styling.
func placeOverlay(bg []string, fg string, x, y int) []string {
	out := make([]string, len(bg))
	copy(out, bg)

	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 || row >= len(out) {
			continue
		}
		base := out[row]
		if w := ansi.StringWidth(base); w < x {
			base += strings.Repeat(" ", x-w)
		}
		left := ansi.Truncate(base, x, "")
		right := ansi.TruncateLeft(base, x+ansi.StringWidth(line), "")
		out[row] = left + line + right
	}
	return out
}
