package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/datagrid/internal/domain/entity"
	"github.com/bnema/datagrid/internal/logging"
)

// BuildLayoutUseCase creates the starting tiling of a session.
type BuildLayoutUseCase struct {
	idGenerator IDGenerator
	plotter     *PlotDatasetUseCase
}

// NewBuildLayoutUseCase creates a layout builder. plotter may be nil when
// demo filling is never requested.
func NewBuildLayoutUseCase(idGenerator IDGenerator, plotter *PlotDatasetUseCase) *BuildLayoutUseCase {
	return &BuildLayoutUseCase{
		idGenerator: idGenerator,
		plotter:     plotter,
	}
}

// BuildLayoutInput describes the starting partition.
type BuildLayoutInput struct {
	Rows int
	Cols int
	// Layout holds "r1,c1,r2,c2" rectangles. Empty means top and bottom halves.
	Layout []string
	// Demo plots a random dataset from Frame on every panel.
	Demo  bool
	Frame *entity.DataFrame
}

// Build validates the partition and returns the tiling.
func (uc *BuildLayoutUseCase) Build(ctx context.Context, input BuildLayoutInput) (*entity.Tiling, error) {
	log := logging.FromContext(ctx)

	var specs []entity.PanelSpec
	if len(input.Layout) == 0 {
		specs = entity.DefaultLayout(input.Rows, input.Cols, func() entity.PanelID {
			return entity.PanelID(uc.idGenerator())
		})
	} else {
		specs = make([]entity.PanelSpec, 0, len(input.Layout))
		for _, s := range input.Layout {
			r, err := entity.ParseRect(s)
			if err != nil {
				return nil, err
			}
			specs = append(specs, entity.PanelSpec{ID: entity.PanelID(uc.idGenerator()), Rect: r})
		}
	}

	t, err := entity.NewTiling(input.Rows, input.Cols, specs)
	if err != nil {
		return nil, fmt.Errorf("build layout: %w", err)
	}

	if input.Demo {
		if uc.plotter == nil {
			return nil, fmt.Errorf("build layout: demo requested without a plotter")
		}
		for _, p := range t.Panels() {
			if _, err := uc.plotter.ShowDemo(ctx, t, p.ID, input.Frame); err != nil {
				return nil, fmt.Errorf("build layout: %w", err)
			}
		}
	}

	log.Info().
		Int("rows", t.Rows()).
		Int("cols", t.Cols()).
		Int("panels", t.Len()).
		Bool("demo", input.Demo).
		Msg("layout built")
	return t, nil
}
