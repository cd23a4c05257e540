package controller

import (
	"github.com/bnema/datagrid/internal/application/usecase"
	"github.com/bnema/datagrid/internal/domain/entity"
)

// MenuKind identifies a contextual menu.
type MenuKind string

const (
	// MenuGrid splits or extends the panel.
	MenuGrid MenuKind = "grid"
	// MenuData plots a dataset on the panel.
	MenuData MenuKind = "data"
	// MenuAction restyles or removes the picked series.
	MenuAction MenuKind = "action"
	// MenuColor chooses a new color for the picked series.
	MenuColor MenuKind = "color"
)

// Title returns the window caption of the menu.
func (k MenuKind) Title() string {
	switch k {
	case MenuGrid:
		return "Grid Menu"
	case MenuData:
		return "Data Menu"
	case MenuAction:
		return "Action Menu"
	case MenuColor:
		return "Color"
	}
	return string(k)
}

// Menu is the single open contextual menu.
type Menu struct {
	Kind  MenuKind
	Panel entity.PanelID
	// X, Y anchor the popup at the press position.
	X, Y int

	Grid     []usecase.GridMenuEntry
	Datasets []string
	Kinds    []entity.PlotKind

	Artist entity.ArtistID
	Series *usecase.SeriesSummary
}
