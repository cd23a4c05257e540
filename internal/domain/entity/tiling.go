package entity

import (
	"fmt"
	"sort"
)

// Tiling is a set of panels that exactly partitions a fixed rows×cols grid.
type Tiling struct {
	rows, cols int
	panels     map[PanelID]*Panel
}

// PanelSpec describes a panel of a starting partition.
type PanelSpec struct {
	ID   PanelID
	Rect Rect
}

// NewTiling builds a tiling from a starting partition. The partition must
// cover every cell exactly once.
func NewTiling(rows, cols int, specs []PanelSpec) (*Tiling, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, rows, cols)
	}
	t := &Tiling{rows: rows, cols: cols, panels: make(map[PanelID]*Panel, len(specs))}
	for _, s := range specs {
		if !s.Rect.Valid(rows, cols) {
			return nil, fmt.Errorf("%w: %s does not fit %dx%d", ErrInvalidRect, s.Rect, rows, cols)
		}
		if _, dup := t.panels[s.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePanel, s.ID)
		}
		t.panels[s.ID] = NewPanel(s.ID, s.Rect)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// DefaultLayout returns the starting partition used when none is given:
// the top half and the bottom half of the grid.
func DefaultLayout(rows, cols int, ids func() PanelID) []PanelSpec {
	if rows < 2 {
		return []PanelSpec{{ID: ids(), Rect: NewRect(0, 0, rows-1, cols-1)}}
	}
	half := rows / 2
	return []PanelSpec{
		{ID: ids(), Rect: NewRect(0, 0, half-1, cols-1)},
		{ID: ids(), Rect: NewRect(half, 0, rows-1, cols-1)},
	}
}

// Rows returns the grid height in cells.
func (t *Tiling) Rows() int { return t.rows }

// Cols returns the grid width in cells.
func (t *Tiling) Cols() int { return t.cols }

// Len returns the number of panels.
func (t *Tiling) Len() int { return len(t.panels) }

// Panel looks up a panel by id.
func (t *Tiling) Panel(id PanelID) (*Panel, error) {
	p, ok := t.panels[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPanelNotFound, id)
	}
	return p, nil
}

// Panels returns the panels ordered by their top-left cell, row-major.
func (t *Tiling) Panels() []*Panel {
	out := make([]*Panel, 0, len(t.panels))
	for _, p := range t.panels {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Rect, out[j].Rect
		if a.RowStart != b.RowStart {
			return a.RowStart < b.RowStart
		}
		return a.ColStart < b.ColStart
	})
	return out
}

// PanelAt returns the panel covering cell (row, col), or nil outside the grid.
func (t *Tiling) PanelAt(row, col int) *Panel {
	for _, p := range t.panels {
		if p.Rect.Contains(row, col) {
			return p
		}
	}
	return nil
}

// Validate checks the tiling invariant: every cell is covered by exactly one panel.
func (t *Tiling) Validate() error {
	cover := make([]PanelID, t.rows*t.cols)
	for _, p := range t.Panels() {
		if !p.Rect.Valid(t.rows, t.cols) {
			return fmt.Errorf("%w: %s (%s)", ErrInvalidRect, p.ID, p.Rect)
		}
		for r := p.Rect.RowStart; r <= p.Rect.RowEnd; r++ {
			for c := p.Rect.ColStart; c <= p.Rect.ColEnd; c++ {
				idx := r*t.cols + c
				if cover[idx] != "" {
					return fmt.Errorf("%w: %s and %s at cell (%d,%d)", ErrOverlap, cover[idx], p.ID, r, c)
				}
				cover[idx] = p.ID
			}
		}
	}
	for idx, id := range cover {
		if id == "" {
			return fmt.Errorf("%w: cell (%d,%d) is empty", ErrGap, idx/t.cols, idx%t.cols)
		}
	}
	return nil
}

// Neighbors returns, per direction, the panel sharing the full edge on that side.
func (t *Tiling) Neighbors(id PanelID) (map[Direction]*Panel, error) {
	p, err := t.Panel(id)
	if err != nil {
		return nil, err
	}
	a := p.Rect
	out := make(map[Direction]*Panel, 4)
	for _, o := range t.panels {
		if o.ID == id {
			continue
		}
		b := o.Rect
		switch {
		case b.ColStart == a.ColStart && b.ColEnd == a.ColEnd && b.RowEnd == a.RowStart-1:
			out[DirTop] = o
		case b.ColStart == a.ColStart && b.ColEnd == a.ColEnd && b.RowStart == a.RowEnd+1:
			out[DirBottom] = o
		case b.RowStart == a.RowStart && b.RowEnd == a.RowEnd && b.ColStart == a.ColEnd+1:
			out[DirRight] = o
		case b.RowStart == a.RowStart && b.RowEnd == a.RowEnd && b.ColEnd == a.ColStart-1:
			out[DirLeft] = o
		}
		if len(out) == 4 {
			break
		}
	}
	return out, nil
}

// CanSplit reports whether the panel spans at least two cells along the axis.
func (p *Panel) CanSplit(axis Axis) bool {
	switch axis {
	case AxisHorizontal:
		return p.Rect.RowSpan() >= 2
	case AxisVertical:
		return p.Rect.ColSpan() >= 2
	}
	return false
}

// Split divides a panel along axis. The panel keeps the first half (span/2,
// rounded down) and its series; a new empty panel with newID takes the rest.
func (t *Tiling) Split(id PanelID, axis Axis, newID PanelID) (*Panel, error) {
	if axis != AxisHorizontal && axis != AxisVertical {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSplitAxis, axis)
	}
	p, err := t.Panel(id)
	if err != nil {
		return nil, err
	}
	if _, dup := t.panels[newID]; dup || newID == "" {
		return nil, fmt.Errorf("%w: %q", ErrDuplicatePanel, newID)
	}
	if !p.CanSplit(axis) {
		return nil, fmt.Errorf("%w: %s along %s", ErrSplitTooSmall, id, axis)
	}

	first, second := p.Rect, p.Rect
	switch axis {
	case AxisHorizontal:
		half := p.Rect.RowSpan() / 2
		first.RowEnd = p.Rect.RowStart + half - 1
		second.RowStart = p.Rect.RowStart + half
	case AxisVertical:
		half := p.Rect.ColSpan() / 2
		first.ColEnd = p.Rect.ColStart + half - 1
		second.ColStart = p.Rect.ColStart + half
	}

	p.Rect = first
	np := NewPanel(newID, second)
	t.panels[newID] = np
	return np, nil
}

// Extend merges the full-edge neighbor on side dir into the panel. The
// neighbor and its series are discarded. Returns the removed panel.
func (t *Tiling) Extend(id PanelID, dir Direction) (*Panel, error) {
	if !dir.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidExtendDirection, dir)
	}
	nbrs, err := t.Neighbors(id)
	if err != nil {
		return nil, err
	}
	nbr, ok := nbrs[dir]
	if !ok {
		return nil, fmt.Errorf("%w: %s has none on the %s", ErrNoSuchNeighbor, id, dir)
	}
	p := t.panels[id]
	delete(t.panels, nbr.ID)
	p.Rect = p.Rect.Union(nbr.Rect)
	return nbr, nil
}

// Clone returns a deep copy of the tiling and all panel content.
func (t *Tiling) Clone() *Tiling {
	c := &Tiling{rows: t.rows, cols: t.cols, panels: make(map[PanelID]*Panel, len(t.panels))}
	for id, p := range t.panels {
		c.panels[id] = p.Clone()
	}
	return c
}
