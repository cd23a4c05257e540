package cli

import (
	"context"
	"fmt"

	"github.com/bnema/datagrid/internal/application/usecase"
	"github.com/bnema/datagrid/internal/cli/model"
	"github.com/bnema/datagrid/internal/domain/entity"
)

// SessionOptions override the grid settings of the config.
type SessionOptions struct {
	Rows   int
	Cols   int
	Layout []string
	NoDemo bool
}

// Session is a built tiling with the use cases operating on it.
type Session struct {
	Tiling  *entity.Tiling
	Frame   *entity.DataFrame
	Surface *model.Surface
	Panels  *usecase.ManagePanelsUseCase
	Plot    *usecase.PlotDatasetUseCase
	Style   *usecase.StyleSeriesUseCase
	Export  *usecase.ExportFigureUseCase
	Demo    bool
}

// NewSession loads the datasets and builds the starting tiling.
func (a *App) NewSession(ctx context.Context, opts SessionOptions) (*Session, error) {
	cfg := a.Config
	rows, cols, layout := cfg.Grid.Rows, cfg.Grid.Cols, cfg.Grid.Layout
	if opts.Rows > 0 {
		rows = opts.Rows
	}
	if opts.Cols > 0 {
		cols = opts.Cols
	}
	if len(opts.Layout) > 0 {
		layout = opts.Layout
	} else if opts.Rows > 0 || opts.Cols > 0 {
		// A configured layout was written for the configured grid size.
		layout = nil
	}
	demo := cfg.Demo.Enabled && !opts.NoDemo

	if a.Datasets == nil {
		return nil, fmt.Errorf("load datasets: no dataset source")
	}
	frame, err := a.Datasets.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load datasets: %w", err)
	}

	surface := model.NewSurface()
	plot := usecase.NewPlotDatasetUseCase(surface, cfg.Appearance.SeriesColors())
	builder := usecase.NewBuildLayoutUseCase(usecase.SequentialIDs("p"), plot)
	tiling, err := builder.Build(ctx, usecase.BuildLayoutInput{
		Rows:   rows,
		Cols:   cols,
		Layout: layout,
		Demo:   demo,
		Frame:  frame,
	})
	if err != nil {
		return nil, err
	}

	return &Session{
		Tiling:  tiling,
		Frame:   frame,
		Surface: surface,
		// New panels continue the numbering after the starting ones.
		Panels: usecase.NewManagePanelsUseCase(surface, nextIDs(tiling)),
		Plot:   plot,
		Style:  usecase.NewStyleSeriesUseCase(surface),
		Export: usecase.NewExportFigureUseCase(a.Exporters()...),
		Demo:   demo,
	}, nil
}

// nextIDs yields p<n> ids that are not taken in t.
func nextIDs(t *entity.Tiling) usecase.IDGenerator {
	seq := usecase.SequentialIDs("p")
	return func() string {
		for {
			id := seq()
			if _, err := t.Panel(entity.PanelID(id)); err != nil {
				return id
			}
		}
	}
}
