package entity

import "errors"

// Layout errors.
var (
	ErrInvalidGrid            = errors.New("invalid grid size")
	ErrInvalidRect            = errors.New("invalid panel rectangle")
	ErrOverlap                = errors.New("panels overlap")
	ErrGap                    = errors.New("panels do not cover the grid")
	ErrPanelNotFound          = errors.New("panel not found")
	ErrDuplicatePanel         = errors.New("duplicate panel id")
	ErrInvalidSplitAxis       = errors.New("invalid split axis")
	ErrSplitTooSmall          = errors.New("panel too small to split")
	ErrInvalidExtendDirection = errors.New("invalid extend direction")
	ErrNoSuchNeighbor         = errors.New("no full-edge neighbor")
)

// Content errors.
var (
	ErrArtistNotFound  = errors.New("artist not found")
	ErrDatasetNotFound = errors.New("dataset not found")
	ErrInvalidDataset  = errors.New("invalid dataset")
	ErrInvalidColor    = errors.New("invalid color")
	ErrInvalidPlotKind = errors.New("invalid plot kind")
)
