package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/bnema/datagrid/internal/application/port"
	"github.com/bnema/datagrid/internal/domain/entity"
	"github.com/bnema/datagrid/internal/logging"
)

// PlotDatasetUseCase draws datasets onto panels.
type PlotDatasetUseCase struct {
	renderer port.Renderer
	cycle    []entity.Color
	intn     func(n int) int
}

// NewPlotDatasetUseCase creates a plotting use case. An empty cycle falls
// back to entity.DefaultColorCycle.
func NewPlotDatasetUseCase(renderer port.Renderer, cycle []entity.Color) *PlotDatasetUseCase {
	return &PlotDatasetUseCase{
		renderer: renderer,
		cycle:    cycle,
		intn:     rand.IntN,
	}
}

// WithRandom replaces the random source used by DemoSelect.
func (uc *PlotDatasetUseCase) WithRandom(intn func(n int) int) *PlotDatasetUseCase {
	uc.intn = intn
	return uc
}

// SetColorCycle swaps the cycle used for series added from now on.
func (uc *PlotDatasetUseCase) SetColorCycle(cycle []entity.Color) {
	uc.cycle = cycle
}

// ShowDatasetInput contains parameters for plotting a dataset.
type ShowDatasetInput struct {
	Tiling  *entity.Tiling
	PanelID entity.PanelID
	Frame   *entity.DataFrame
	Dataset string
	Kind    entity.PlotKind
}

// Show plots the named dataset on a panel with the next cycle color.
func (uc *PlotDatasetUseCase) Show(ctx context.Context, input ShowDatasetInput) (entity.Artist, error) {
	log := logging.FromContext(ctx)

	if input.Tiling == nil || input.Frame == nil {
		return nil, fmt.Errorf("tiling and data frame are required")
	}
	p, err := input.Tiling.Panel(input.PanelID)
	if err != nil {
		return nil, err
	}
	ds, err := input.Frame.Get(input.Dataset)
	if err != nil {
		return nil, err
	}
	a, err := p.Plot(ds, input.Kind, uc.cycle)
	if err != nil {
		return nil, fmt.Errorf("plot %s on %s: %w", input.Dataset, input.PanelID, err)
	}

	uc.renderer.Invalidate(ctx, p.Rect)
	log.Debug().
		Str("panel_id", string(p.ID)).
		Str("dataset", input.Dataset).
		Str("kind", string(input.Kind)).
		Str("color", a.Color().String()).
		Msg("dataset plotted")
	return a, nil
}

// DemoSelect picks a random dataset name, always as a line plot.
func (uc *PlotDatasetUseCase) DemoSelect(frame *entity.DataFrame) (string, entity.PlotKind, error) {
	if frame == nil || frame.Len() == 0 {
		return "", "", fmt.Errorf("%w: data frame is empty", entity.ErrDatasetNotFound)
	}
	names := frame.Names()
	return names[uc.intn(len(names))], entity.PlotLine, nil
}

// ShowDemo plots a randomly selected dataset on the panel.
func (uc *PlotDatasetUseCase) ShowDemo(ctx context.Context, t *entity.Tiling, id entity.PanelID, frame *entity.DataFrame) (entity.Artist, error) {
	name, kind, err := uc.DemoSelect(frame)
	if err != nil {
		return nil, err
	}
	return uc.Show(ctx, ShowDatasetInput{Tiling: t, PanelID: id, Frame: frame, Dataset: name, Kind: kind})
}
