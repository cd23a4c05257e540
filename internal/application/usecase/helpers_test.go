package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/bnema/datagrid/internal/domain/entity"
	"github.com/bnema/datagrid/internal/logging"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

func newTiling(t *testing.T, rows, cols int, rects ...string) *entity.Tiling {
	t.Helper()
	specs := make([]entity.PanelSpec, 0, len(rects))
	for i, s := range rects {
		r, err := entity.ParseRect(s)
		require.NoError(t, err)
		specs = append(specs, entity.PanelSpec{ID: entity.PanelID(fmt.Sprintf("p%d", i+1)), Rect: r})
	}
	tl, err := entity.NewTiling(rows, cols, specs)
	require.NoError(t, err)
	return tl
}

func demoFrame(t *testing.T, names ...string) *entity.DataFrame {
	t.Helper()
	f := entity.NewDataFrame()
	for i, n := range names {
		require.NoError(t, f.Add(&entity.Dataset{
			Name: n,
			X:    []float64{0, 1, 2},
			Y:    []float64{float64(i), float64(i + 1), float64(i + 2)},
		}))
	}
	return f
}
