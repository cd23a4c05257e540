package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/datagrid/internal/application/port"
	"github.com/bnema/datagrid/internal/application/port/mocks"
	"github.com/bnema/datagrid/internal/application/usecase"
	"github.com/bnema/datagrid/internal/domain/entity"
)

func TestExportFigureUseCase_RunsEveryExporterOnSnapshot(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	tl := newTiling(t, 2, 2, "0,0,1,1")
	opts := port.FigureOptions{Title: "demo", WidthIn: 8, HeightIn: 6, DPI: 96}

	png := mocks.NewMockFigureExporter(t)
	html := mocks.NewMockFigureExporter(t)
	png.EXPECT().Format().Return("png").Maybe()
	html.EXPECT().Format().Return("html").Maybe()

	png.EXPECT().Export(mock.Anything, mock.Anything, dir, opts).
		RunAndReturn(func(_ context.Context, fig *entity.Tiling, dir string, _ port.FigureOptions) (string, error) {
			assert.NotSame(t, tl, fig)
			assert.Equal(t, tl.Len(), fig.Len())
			return filepath.Join(dir, "figure.png"), nil
		})
	html.EXPECT().Export(mock.Anything, mock.Anything, dir, opts).
		Return(filepath.Join(dir, "index.html"), nil)

	uc := usecase.NewExportFigureUseCase(png, html)
	out, err := uc.Export(ctx, usecase.ExportFigureInput{Tiling: tl, Dir: dir, Options: opts})
	require.NoError(t, err)

	assert.NotEmpty(t, out.RunID)
	assert.Equal(t, []string{filepath.Join(dir, "figure.png"), filepath.Join(dir, "index.html")}, out.Paths)
}

func TestExportFigureUseCase_SelectsFormats(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	tl := newTiling(t, 1, 1, "0,0,0,0")

	png := mocks.NewMockFigureExporter(t)
	svg := mocks.NewMockFigureExporter(t)
	png.EXPECT().Format().Return("png").Maybe()
	svg.EXPECT().Format().Return("svg").Maybe()
	svg.EXPECT().Export(mock.Anything, mock.Anything, dir, mock.Anything).Return(filepath.Join(dir, "figure.svg"), nil)

	uc := usecase.NewExportFigureUseCase(png, svg)
	out, err := uc.Export(ctx, usecase.ExportFigureInput{Tiling: tl, Dir: dir, Formats: []string{"svg"}})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "figure.svg")}, out.Paths)

	_, err = uc.Export(ctx, usecase.ExportFigureInput{Tiling: tl, Dir: dir, Formats: []string{"pdf"}})
	assert.ErrorContains(t, err, "unsupported export format")
}

func TestExportFigureUseCase_PropagatesFailure(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	tl := newTiling(t, 1, 1, "0,0,0,0")
	boom := errors.New("disk full")

	png := mocks.NewMockFigureExporter(t)
	png.EXPECT().Format().Return("png").Maybe()
	png.EXPECT().Export(mock.Anything, mock.Anything, dir, mock.Anything).Return("", boom)

	uc := usecase.NewExportFigureUseCase(png)
	_, err := uc.Export(ctx, usecase.ExportFigureInput{Tiling: tl, Dir: dir})
	assert.ErrorIs(t, err, boom)
}
