package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceOverlay(t *testing.T) {
	tests := []struct {
		name string
		bg   []string
		fg   string
		x, y int
		want []string
	}{
		{
			name: "inside",
			bg:   []string{"aaaaa", "bbbbb", "ccccc"},
			fg:   "XY\nZW",
			x:    1, y: 1,
			want: []string{"aaaaa", "bXYbb", "cZWcc"},
		},
		{
			name: "rows below the screen are dropped",
			bg:   []string{"aaa", "bbb"},
			fg:   "X\nY\nZ",
			x:    0, y: 1,
			want: []string{"aaa", "Xbb"},
		},
		{
			name: "short background is padded",
			bg:   []string{"ab"},
			fg:   "X",
			x:    4, y: 0,
			want: []string{"ab  X"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, placeOverlay(tt.bg, tt.fg, tt.x, tt.y))
		})
	}
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab   ", fit("ab", 5))
	assert.Equal(t, "abc…", fit("abcdef", 4))
}
