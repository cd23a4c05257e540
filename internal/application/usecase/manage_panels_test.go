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

func TestManagePanelsUseCase_Split_InvalidatesOriginalRegion(t *testing.T) {
	ctx := testContext()
	renderer := mocks.NewMockRenderer(t)
	tl := newTiling(t, 4, 4, "0,0,1,3", "2,0,3,3")

	renderer.EXPECT().Invalidate(ctx, entity.NewRect(0, 0, 1, 3)).Return().Once()

	uc := usecase.NewManagePanelsUseCase(renderer, func() string { return "p3" })
	out, err := uc.Split(ctx, usecase.SplitPanelInput{Tiling: tl, PanelID: "p1", Axis: entity.AxisVertical})
	require.NoError(t, err)

	assert.False(t, out.Skipped)
	assert.Equal(t, entity.PanelID("p3"), out.NewPanel.ID)
	assert.Equal(t, entity.NewRect(0, 2, 1, 3), out.NewPanel.Rect)
	assert.Equal(t, 3, tl.Len())
}

func TestManagePanelsUseCase_Split_TooSmallIsSilentNoOp(t *testing.T) {
	ctx := testContext()
	renderer := mocks.NewMockRenderer(t)
	tl := newTiling(t, 2, 1, "0,0,0,0", "1,0,1,0")

	uc := usecase.NewManagePanelsUseCase(renderer, func() string { return "p3" })
	out, err := uc.Split(ctx, usecase.SplitPanelInput{Tiling: tl, PanelID: "p1", Axis: entity.AxisHorizontal})
	require.NoError(t, err)

	assert.True(t, out.Skipped)
	assert.Nil(t, out.NewPanel)
	assert.Equal(t, 2, tl.Len())
	renderer.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestManagePanelsUseCase_Split_SkippedSplitKeepsIDSequence(t *testing.T) {
	ctx := testContext()
	renderer := mocks.NewMockRenderer(t)
	tl := newTiling(t, 2, 2, "0,0,0,0", "1,0,1,0", "0,1,1,1")

	renderer.EXPECT().Invalidate(ctx, entity.NewRect(0, 1, 1, 1)).Return().Once()

	uc := usecase.NewManagePanelsUseCase(renderer, usecase.SequentialIDs("x"))
	out, err := uc.Split(ctx, usecase.SplitPanelInput{Tiling: tl, PanelID: "p1", Axis: entity.AxisHorizontal})
	require.NoError(t, err)
	require.True(t, out.Skipped)

	out, err = uc.Split(ctx, usecase.SplitPanelInput{Tiling: tl, PanelID: "p3", Axis: entity.AxisHorizontal})
	require.NoError(t, err)
	require.False(t, out.Skipped)
	assert.Equal(t, entity.PanelID("x1"), out.NewPanel.ID)
}

func TestManagePanelsUseCase_Split_InvalidAxis(t *testing.T) {
	ctx := testContext()
	renderer := mocks.NewMockRenderer(t)
	tl := newTiling(t, 2, 2, "0,0,1,1")

	uc := usecase.NewManagePanelsUseCase(renderer, func() string { return "p2" })
	_, err := uc.Split(ctx, usecase.SplitPanelInput{Tiling: tl, PanelID: "p1", Axis: "diagonal"})
	assert.ErrorIs(t, err, entity.ErrInvalidSplitAxis)

	_, err = uc.Split(ctx, usecase.SplitPanelInput{PanelID: "p1", Axis: entity.AxisVertical})
	assert.Error(t, err)
}

func TestManagePanelsUseCase_Extend(t *testing.T) {
	ctx := testContext()
	renderer := mocks.NewMockRenderer(t)
	tl := newTiling(t, 4, 4, "0,0,1,3", "2,0,3,3")

	renderer.EXPECT().Invalidate(ctx, entity.NewRect(0, 0, 3, 3)).Return().Once()

	uc := usecase.NewManagePanelsUseCase(renderer, usecase.SequentialIDs("x"))
	out, err := uc.Extend(ctx, usecase.ExtendPanelInput{Tiling: tl, PanelID: "p2", Direction: entity.DirTop})
	require.NoError(t, err)

	assert.Equal(t, entity.PanelID("p1"), out.Removed.ID)
	assert.Equal(t, entity.NewRect(0, 0, 3, 3), out.Panel.Rect)
	assert.Equal(t, 1, tl.Len())
}

func TestManagePanelsUseCase_Extend_NoNeighborLeavesTilingUnchanged(t *testing.T) {
	ctx := testContext()
	renderer := mocks.NewMockRenderer(t)
	tl := newTiling(t, 4, 4, "0,0,1,1", "0,2,1,3", "2,0,3,3")

	uc := usecase.NewManagePanelsUseCase(renderer, usecase.SequentialIDs("x"))
	_, err := uc.Extend(ctx, usecase.ExtendPanelInput{Tiling: tl, PanelID: "p3", Direction: entity.DirTop})
	require.ErrorIs(t, err, entity.ErrNoSuchNeighbor)

	assert.Equal(t, 3, tl.Len())
	require.NoError(t, tl.Validate())
	renderer.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestManagePanelsUseCase_GridMenu(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		rects      []string
		want       []string
	}{
		{
			name:  "top half of 4x4",
			rows:  4,
			cols:  4,
			rects: []string{"0,0,1,3", "2,0,3,3"},
			want:  []string{"hsplit", "vsplit", "---", "extend downwards"},
		},
		{
			name:  "single cell beside a taller panel",
			rows:  2,
			cols:  2,
			rects: []string{"0,0,0,0", "0,1,1,1", "1,0,1,0"},
			want:  []string{"extend downwards"},
		},
		{
			name:  "whole grid",
			rows:  4,
			cols:  4,
			rects: []string{"0,0,3,3"},
			want:  []string{"hsplit", "vsplit"},
		},
		{
			name:  "1x1 grid",
			rows:  1,
			cols:  1,
			rects: []string{"0,0,0,0"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := newTiling(t, tt.rows, tt.cols, tt.rects...)
			uc := usecase.NewManagePanelsUseCase(mocks.NewMockRenderer(t), usecase.SequentialIDs("x"))

			entries, err := uc.GridMenu(testContext(), tl, "p1")
			require.NoError(t, err)

			var got []string
			for _, e := range entries {
				if e.Action == usecase.GridActionSeparator {
					got = append(got, "---")
					continue
				}
				got = append(got, e.Label)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestManagePanelsUseCase_EndToEndScenario(t *testing.T) {
	ctx := testContext()
	renderer := mocks.NewMockRenderer(t)
	renderer.EXPECT().Invalidate(ctx, mock.Anything).Return()

	tl := newTiling(t, 4, 4, "0,0,1,3", "2,0,3,3")
	uc := usecase.NewManagePanelsUseCase(renderer, func() string { return "p3" })

	_, err := uc.Split(ctx, usecase.SplitPanelInput{Tiling: tl, PanelID: "p1", Axis: entity.AxisVertical})
	require.NoError(t, err)

	nbrs, err := uc.Neighbors(ctx, tl, "p2")
	require.NoError(t, err)
	assert.Empty(t, nbrs)

	entries, err := uc.GridMenu(ctx, tl, "p2")
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, usecase.GridActionExtend, e.Action)
	}

	_, err = uc.Extend(ctx, usecase.ExtendPanelInput{Tiling: tl, PanelID: "p2", Direction: entity.DirTop})
	assert.ErrorIs(t, err, entity.ErrNoSuchNeighbor)
	assert.Equal(t, 3, tl.Len())

	nbrs, err = uc.Neighbors(ctx, tl, "p1")
	require.NoError(t, err)
	assert.Equal(t, map[entity.Direction]entity.PanelID{entity.DirRight: "p3"}, nbrs)
}
