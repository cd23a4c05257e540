package entity

import (
	"fmt"
	"slices"
	"strings"
)

// ArtistID identifies a plotted series inside its panel.
type ArtistID string

// PlotKind is the closed set of series renderings.
type PlotKind string

const (
	PlotLine    PlotKind = "line"
	PlotBar     PlotKind = "bar"
	PlotScatter PlotKind = "scatter"
)

// PlotKinds lists the kinds in data menu order.
var PlotKinds = []PlotKind{PlotLine, PlotBar, PlotScatter}

// ParsePlotKind accepts the kind names and the short codes p, b and s.
func ParsePlotKind(s string) (PlotKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line", "plot", "p":
		return PlotLine, nil
	case "bar", "b":
		return PlotBar, nil
	case "scatter", "s":
		return PlotScatter, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPlotKind, s)
}

// Artist is a series drawn on a panel. Each variant owns how its color is
// read and written.
type Artist interface {
	ID() ArtistID
	Kind() PlotKind
	Label() string
	Points() (x, y []float64)
	Color() Color
	SetColor(Color)
	Clone() Artist
}

type series struct {
	id    ArtistID
	label string
	x, y  []float64
}

func (s series) ID() ArtistID { return s.id }
func (s series) Label() string { return s.label }
func (s series) Points() (x, y []float64) { return s.x, s.y }

// LineArtist is a polyline with a single stroke color.
type LineArtist struct {
	series
	stroke Color
}

func (a *LineArtist) Kind() PlotKind { return PlotLine }
func (a *LineArtist) Color() Color { return a.stroke }
func (a *LineArtist) SetColor(c Color) { a.stroke = c }
func (a *LineArtist) Clone() Artist {
	c := *a
	return &c
}

// ScatterArtist carries one face color per point. base is the collection
// color, reported when there are no points.
type ScatterArtist struct {
	series
	base  Color
	faces []Color
}

func (a *ScatterArtist) Kind() PlotKind { return PlotScatter }

// Color returns the face color of the first point.
func (a *ScatterArtist) Color() Color {
	if len(a.faces) == 0 {
		return a.base
	}
	return a.faces[0]
}

// SetColor recolors every point.
func (a *ScatterArtist) SetColor(c Color) {
	a.base = c
	for i := range a.faces {
		a.faces[i] = c
	}
}

// FaceColors returns the per-point colors.
func (a *ScatterArtist) FaceColors() []Color { return a.faces }

func (a *ScatterArtist) Clone() Artist {
	c := *a
	c.faces = slices.Clone(a.faces)
	return &c
}

// BarArtist is a container of bars, one per data point.
type BarArtist struct {
	series
	base Color
	bars []Color
}

func (a *BarArtist) Kind() PlotKind { return PlotBar }

// Color returns the face color of the first bar.
func (a *BarArtist) Color() Color {
	if len(a.bars) == 0 {
		return a.base
	}
	return a.bars[0]
}

// SetColor recolors the whole container.
func (a *BarArtist) SetColor(c Color) {
	a.base = c
	for i := range a.bars {
		a.bars[i] = c
	}
}

// BarColors returns the per-bar face colors.
func (a *BarArtist) BarColors() []Color { return a.bars }

func (a *BarArtist) Clone() Artist {
	c := *a
	c.bars = slices.Clone(a.bars)
	return &c
}

// NewArtist plots a dataset with the given kind and initial color.
func NewArtist(id ArtistID, kind PlotKind, ds *Dataset, c Color) (Artist, error) {
	if ds == nil {
		return nil, ErrDatasetNotFound
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	base := series{id: id, label: ds.Name, x: slices.Clone(ds.X), y: slices.Clone(ds.Y)}
	switch kind {
	case PlotLine:
		return &LineArtist{series: base, stroke: c}, nil
	case PlotScatter:
		return &ScatterArtist{series: base, base: c, faces: filled(len(ds.X), c)}, nil
	case PlotBar:
		return &BarArtist{series: base, base: c, bars: filled(len(ds.X), c)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidPlotKind, kind)
}

func filled(n int, c Color) []Color {
	out := make([]Color, n)
	for i := range out {
		out[i] = c
	}
	return out
}
