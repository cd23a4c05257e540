package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePaletteHex(t *testing.T) {
	errs := ValidatePaletteHex("appearance.palette", map[string]string{
		"text":       "#ffffff",
		"border":     "grey",
		"background": "#12",
	})

	assert.Equal(t, []string{
		"appearance.palette.background must be a hex color like #RRGGBB",
		"appearance.palette.border must be a hex color like #RRGGBB",
	}, errs)
	assert.True(t, IsHexColor("#A0b1C2"))
}
