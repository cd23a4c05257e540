package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/datagrid/internal/application/port"
	"github.com/bnema/datagrid/internal/domain/entity"
	"github.com/bnema/datagrid/internal/logging"
)

// GridAction identifies what a grid menu entry does.
type GridAction string

const (
	GridActionSplit     GridAction = "split"
	GridActionExtend    GridAction = "extend"
	GridActionSeparator GridAction = "separator"
)

// gridLabels are the grid menu captions.
var gridLabels = map[string]string{
	string(entity.AxisHorizontal): "hsplit",
	string(entity.AxisVertical):   "vsplit",
	string(entity.DirTop):         "extend upwards",
	string(entity.DirRight):       "extend to the right",
	string(entity.DirBottom):      "extend downwards",
	string(entity.DirLeft):        "extend to the left",
}

// GridMenuEntry is one line of the grid menu.
type GridMenuEntry struct {
	Action    GridAction
	Label     string
	Axis      entity.Axis      // set for GridActionSplit
	Direction entity.Direction // set for GridActionExtend
}

// ManagePanelsUseCase applies layout operations to a tiling.
type ManagePanelsUseCase struct {
	renderer    port.Renderer
	idGenerator IDGenerator
}

// NewManagePanelsUseCase creates a new panel management use case.
func NewManagePanelsUseCase(renderer port.Renderer, idGenerator IDGenerator) *ManagePanelsUseCase {
	return &ManagePanelsUseCase{
		renderer:    renderer,
		idGenerator: idGenerator,
	}
}

// SplitPanelInput contains parameters for splitting a panel.
type SplitPanelInput struct {
	Tiling  *entity.Tiling
	PanelID entity.PanelID
	Axis    entity.Axis
}

// SplitPanelOutput contains the result of a split.
type SplitPanelOutput struct {
	NewPanel *entity.Panel
	Region   entity.Rect
	// Skipped is set when the panel was too small to split. Nothing changed.
	Skipped bool
}

// Split divides a panel in two along the given axis.
func (uc *ManagePanelsUseCase) Split(ctx context.Context, input SplitPanelInput) (*SplitPanelOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("panel_id", string(input.PanelID)).
		Str("axis", string(input.Axis)).
		Msg("splitting panel")

	if input.Tiling == nil {
		return nil, fmt.Errorf("tiling is required")
	}
	p, err := input.Tiling.Panel(input.PanelID)
	if err != nil {
		return nil, err
	}
	region := p.Rect

	// A skipped split must not consume an id.
	if input.Axis.Valid() && !p.CanSplit(input.Axis) {
		log.Debug().Str("panel_id", string(input.PanelID)).Msg("panel too small to split, ignoring")
		return &SplitPanelOutput{Region: region, Skipped: true}, nil
	}

	newPanel, err := input.Tiling.Split(input.PanelID, input.Axis, entity.PanelID(uc.idGenerator()))
	if err != nil {
		return nil, fmt.Errorf("split %s: %w", input.PanelID, err)
	}

	uc.renderer.Invalidate(ctx, region)
	log.Info().
		Str("panel_id", string(input.PanelID)).
		Str("new_panel_id", string(newPanel.ID)).
		Str("kept", p.Rect.String()).
		Str("created", newPanel.Rect.String()).
		Msg("panel split")

	return &SplitPanelOutput{NewPanel: newPanel, Region: region}, nil
}

// ExtendPanelInput contains parameters for extending a panel.
type ExtendPanelInput struct {
	Tiling    *entity.Tiling
	PanelID   entity.PanelID
	Direction entity.Direction
}

// ExtendPanelOutput contains the result of an extend.
type ExtendPanelOutput struct {
	Panel   *entity.Panel
	Removed *entity.Panel
	Region  entity.Rect
}

// Extend grows a panel over its full-edge neighbor in the given direction.
// A missing neighbor is returned as entity.ErrNoSuchNeighbor and leaves the
// tiling untouched.
func (uc *ManagePanelsUseCase) Extend(ctx context.Context, input ExtendPanelInput) (*ExtendPanelOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("panel_id", string(input.PanelID)).
		Str("direction", string(input.Direction)).
		Msg("extending panel")

	if input.Tiling == nil {
		return nil, fmt.Errorf("tiling is required")
	}

	removed, err := input.Tiling.Extend(input.PanelID, input.Direction)
	if err != nil {
		if errors.Is(err, entity.ErrNoSuchNeighbor) {
			log.Warn().Err(err).Str("panel_id", string(input.PanelID)).Msg("extend rejected")
		}
		return nil, fmt.Errorf("extend %s: %w", input.PanelID, err)
	}

	p, err := input.Tiling.Panel(input.PanelID)
	if err != nil {
		return nil, err
	}
	uc.renderer.Invalidate(ctx, p.Rect)
	log.Info().
		Str("panel_id", string(input.PanelID)).
		Str("removed_panel_id", string(removed.ID)).
		Str("rect", p.Rect.String()).
		Msg("panel extended")

	return &ExtendPanelOutput{Panel: p, Removed: removed, Region: p.Rect}, nil
}

// Neighbors returns the full-edge neighbor ids of a panel keyed by side.
func (uc *ManagePanelsUseCase) Neighbors(ctx context.Context, t *entity.Tiling, id entity.PanelID) (map[entity.Direction]entity.PanelID, error) {
	if t == nil {
		return nil, fmt.Errorf("tiling is required")
	}
	nbrs, err := t.Neighbors(id)
	if err != nil {
		return nil, err
	}
	out := make(map[entity.Direction]entity.PanelID, len(nbrs))
	for dir, p := range nbrs {
		out[dir] = p.ID
	}
	logging.FromContext(ctx).Debug().
		Str("panel_id", string(id)).
		Int("count", len(out)).
		Msg("neighbors computed")
	return out, nil
}

// GridMenu lists the legal layout operations for a panel: splits first,
// then extends in top, right, bottom, left order. The separator is only
// present when both groups are non-empty.
func (uc *ManagePanelsUseCase) GridMenu(ctx context.Context, t *entity.Tiling, id entity.PanelID) ([]GridMenuEntry, error) {
	if t == nil {
		return nil, fmt.Errorf("tiling is required")
	}
	p, err := t.Panel(id)
	if err != nil {
		return nil, err
	}
	nbrs, err := t.Neighbors(id)
	if err != nil {
		return nil, err
	}

	var splits, extends []GridMenuEntry
	for _, axis := range []entity.Axis{entity.AxisHorizontal, entity.AxisVertical} {
		if p.CanSplit(axis) {
			splits = append(splits, GridMenuEntry{
				Action: GridActionSplit,
				Label:  gridLabels[string(axis)],
				Axis:   axis,
			})
		}
	}
	for _, dir := range entity.Directions {
		if _, ok := nbrs[dir]; ok {
			extends = append(extends, GridMenuEntry{
				Action:    GridActionExtend,
				Label:     gridLabels[string(dir)],
				Direction: dir,
			})
		}
	}

	entries := splits
	if len(splits) > 0 && len(extends) > 0 {
		entries = append(entries, GridMenuEntry{Action: GridActionSeparator})
	}
	entries = append(entries, extends...)

	logging.FromContext(ctx).Debug().
		Str("panel_id", string(id)).
		Int("entries", len(entries)).
		Msg("grid menu built")
	return entries, nil
}
