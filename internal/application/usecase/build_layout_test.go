package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/datagrid/internal/application/port/mocks"
	"github.com/bnema/datagrid/internal/application/usecase"
	"github.com/bnema/datagrid/internal/domain/entity"
)

func TestBuildLayoutUseCase_DefaultHalves(t *testing.T) {
	uc := usecase.NewBuildLayoutUseCase(usecase.SequentialIDs("p"), nil)

	tl, err := uc.Build(testContext(), usecase.BuildLayoutInput{Rows: 4, Cols: 4})
	require.NoError(t, err)

	p1, err := tl.Panel("p1")
	require.NoError(t, err)
	p2, err := tl.Panel("p2")
	require.NoError(t, err)
	assert.Equal(t, entity.NewRect(0, 0, 1, 3), p1.Rect)
	assert.Equal(t, entity.NewRect(2, 0, 3, 3), p2.Rect)
}

func TestBuildLayoutUseCase_CustomLayout(t *testing.T) {
	uc := usecase.NewBuildLayoutUseCase(usecase.SequentialIDs("p"), nil)

	tl, err := uc.Build(testContext(), usecase.BuildLayoutInput{
		Rows:   2,
		Cols:   2,
		Layout: []string{"0,0,1,0", "0,1,1,1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, tl.Len())

	_, err = uc.Build(testContext(), usecase.BuildLayoutInput{Rows: 2, Cols: 2, Layout: []string{"0,0,0,1"}})
	assert.ErrorIs(t, err, entity.ErrGap)

	_, err = uc.Build(testContext(), usecase.BuildLayoutInput{Rows: 2, Cols: 2, Layout: []string{"0,0"}})
	assert.ErrorIs(t, err, entity.ErrInvalidRect)
}

func TestBuildLayoutUseCase_DemoFillsEveryPanel(t *testing.T) {
	ctx := testContext()
	renderer := mocks.NewMockRenderer(t)
	renderer.EXPECT().Invalidate(ctx, mock.Anything).Return().Times(2)

	plotter := usecase.NewPlotDatasetUseCase(renderer, nil).WithRandom(func(int) int { return 0 })
	uc := usecase.NewBuildLayoutUseCase(usecase.SequentialIDs("p"), plotter)

	tl, err := uc.Build(ctx, usecase.BuildLayoutInput{Rows: 4, Cols: 4, Demo: true, Frame: demoFrame(t, "d_sin")})
	require.NoError(t, err)

	for _, p := range tl.Panels() {
		require.Len(t, p.Artists(), 1)
		assert.Equal(t, "d_sin", p.Artists()[0].Label())
		assert.Equal(t, entity.PlotLine, p.Artists()[0].Kind())
	}
}
