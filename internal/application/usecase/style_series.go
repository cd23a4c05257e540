package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/datagrid/internal/application/port"
	"github.com/bnema/datagrid/internal/domain/entity"
	"github.com/bnema/datagrid/internal/logging"
)

// StyleSeriesUseCase changes or removes plotted series.
type StyleSeriesUseCase struct {
	renderer port.Renderer
}

// NewStyleSeriesUseCase creates a series styling use case.
func NewStyleSeriesUseCase(renderer port.Renderer) *StyleSeriesUseCase {
	return &StyleSeriesUseCase{renderer: renderer}
}

// SeriesRef points at one artist on one panel.
type SeriesRef struct {
	Tiling   *entity.Tiling
	PanelID  entity.PanelID
	ArtistID entity.ArtistID
}

// SeriesSummary is what the action menu shows for a series.
type SeriesSummary struct {
	Label string
	Kind  entity.PlotKind
	Color entity.Color
}

func (uc *StyleSeriesUseCase) resolve(ref SeriesRef) (*entity.Panel, entity.Artist, error) {
	if ref.Tiling == nil {
		return nil, nil, fmt.Errorf("tiling is required")
	}
	p, err := ref.Tiling.Panel(ref.PanelID)
	if err != nil {
		return nil, nil, err
	}
	a, err := p.Artist(ref.ArtistID)
	if err != nil {
		return nil, nil, err
	}
	return p, a, nil
}

// Describe returns the label and current color of a series.
func (uc *StyleSeriesUseCase) Describe(ctx context.Context, ref SeriesRef) (*SeriesSummary, error) {
	_, a, err := uc.resolve(ref)
	if err != nil {
		return nil, err
	}
	return &SeriesSummary{Label: a.Label(), Kind: a.Kind(), Color: a.Color()}, nil
}

// Remove deletes a series from its panel.
func (uc *StyleSeriesUseCase) Remove(ctx context.Context, ref SeriesRef) error {
	p, _, err := uc.resolve(ref)
	if err != nil {
		return err
	}
	if err := p.RemoveArtist(ref.ArtistID); err != nil {
		return err
	}
	uc.renderer.Invalidate(ctx, p.Rect)
	logging.FromContext(ctx).Debug().
		Str("panel_id", string(p.ID)).
		Str("artist_id", string(ref.ArtistID)).
		Msg("series removed")
	return nil
}

// Recolor applies a new color to the whole series. Bars are recolored as a
// container, scatter points all at once.
func (uc *StyleSeriesUseCase) Recolor(ctx context.Context, ref SeriesRef, color string) error {
	c, err := entity.ParseColor(color)
	if err != nil {
		return err
	}
	p, a, err := uc.resolve(ref)
	if err != nil {
		return err
	}
	old := a.Color()
	a.SetColor(c)
	uc.renderer.Invalidate(ctx, p.Rect)
	logging.FromContext(ctx).Debug().
		Str("artist_id", string(ref.ArtistID)).
		Str("from", old.String()).
		Str("to", c.String()).
		Msg("series recolored")
	return nil
}
