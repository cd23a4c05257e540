package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/datagrid/internal/domain/entity"
)

func TestParseOp(t *testing.T) {
	tests := []struct {
		in   string
		want layoutOp
	}{
		{"split:p1:vertical", layoutOp{kind: "split", panel: "p1", axis: entity.AxisVertical}},
		{"split:p2:hsplit", layoutOp{kind: "split", panel: "p2", axis: entity.AxisHorizontal}},
		{"extend:p3:up", layoutOp{kind: "extend", panel: "p3", dir: entity.DirTop}},
		{"plot:p1:d_sin", layoutOp{kind: "plot", panel: "p1", dataset: "d_sin", plot: entity.PlotLine}},
		{"plot:p1:d_cos:scatter", layoutOp{kind: "plot", panel: "p1", dataset: "d_cos", plot: entity.PlotScatter}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseOp(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOp_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"split:p1",
		"split::vertical",
		"split:p1:diagonal",
		"extend:p1:north",
		"extend:p1:top:extra",
		"plot:p1:d_sin:pie",
		"merge:p1:p2",
	} {
		_, err := parseOp(in)
		assert.Error(t, err, in)
	}

	_, err := parseOp("split:p1:diagonal")
	assert.ErrorIs(t, err, entity.ErrInvalidSplitAxis)
	_, err = parseOp("extend:p1:north")
	assert.ErrorIs(t, err, entity.ErrInvalidExtendDirection)
}

func TestLayoutOp_String(t *testing.T) {
	op, err := parseOp("extend:p2:down")
	require.NoError(t, err)
	assert.Equal(t, "extend:p2:bottom", op.String())
}
