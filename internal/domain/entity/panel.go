package entity

import (
	"fmt"
	"slices"
)

// PanelID uniquely identifies a panel within a tiling.
type PanelID string

// Panel is a rectangular region of the grid holding plotted series.
type Panel struct {
	ID   PanelID
	Rect Rect

	artists    []Artist
	colorIndex int // position in the color cycle for the next series
	artistSeq  int
}

// NewPanel creates an empty panel.
func NewPanel(id PanelID, r Rect) *Panel {
	return &Panel{ID: id, Rect: r}
}

// Artists returns the plotted series in draw order.
func (p *Panel) Artists() []Artist {
	return slices.Clone(p.artists)
}

// Artist looks up a series by id.
func (p *Panel) Artist(id ArtistID) (Artist, error) {
	for _, a := range p.artists {
		if a.ID() == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %s in panel %s", ErrArtistNotFound, id, p.ID)
}

// Plot adds a series for the dataset, colored with the next entry of cycle.
func (p *Panel) Plot(ds *Dataset, kind PlotKind, cycle []Color) (Artist, error) {
	if len(cycle) == 0 {
		cycle = DefaultColorCycle
	}
	color := cycle[p.colorIndex%len(cycle)]
	id := ArtistID(fmt.Sprintf("%s.%d", p.ID, p.artistSeq))
	a, err := NewArtist(id, kind, ds, color)
	if err != nil {
		return nil, err
	}
	p.colorIndex++
	p.artistSeq++
	p.artists = append(p.artists, a)
	return a, nil
}

// RemoveArtist deletes a series from the panel.
func (p *Panel) RemoveArtist(id ArtistID) error {
	for i, a := range p.artists {
		if a.ID() == id {
			p.artists = slices.Delete(p.artists, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("%w: %s in panel %s", ErrArtistNotFound, id, p.ID)
}

// Clone returns a deep copy of the panel and its series.
func (p *Panel) Clone() *Panel {
	c := *p
	c.artists = make([]Artist, len(p.artists))
	for i, a := range p.artists {
		c.artists[i] = a.Clone()
	}
	return &c
}
