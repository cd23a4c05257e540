// Package entity defines domain entities for the plot grid.
package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// Rect is a grid-aligned rectangle in cell units, bounds inclusive.
type Rect struct {
	RowStart int
	ColStart int
	RowEnd   int
	ColEnd   int
}

// NewRect returns the rectangle covering rows r1..r2 and columns c1..c2.
func NewRect(r1, c1, r2, c2 int) Rect {
	return Rect{RowStart: r1, ColStart: c1, RowEnd: r2, ColEnd: c2}
}

// RowSpan returns the number of rows covered.
func (r Rect) RowSpan() int {
	return r.RowEnd - r.RowStart + 1
}

// ColSpan returns the number of columns covered.
func (r Rect) ColSpan() int {
	return r.ColEnd - r.ColStart + 1
}

// Cells returns the number of grid cells covered.
func (r Rect) Cells() int {
	return r.RowSpan() * r.ColSpan()
}

// Contains reports whether the cell (row, col) lies inside the rectangle.
func (r Rect) Contains(row, col int) bool {
	return row >= r.RowStart && row <= r.RowEnd && col >= r.ColStart && col <= r.ColEnd
}

// Intersects reports whether two rectangles share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	return r.RowStart <= o.RowEnd && o.RowStart <= r.RowEnd &&
		r.ColStart <= o.ColEnd && o.ColStart <= r.ColEnd
}

// Union returns the bounding rectangle of r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		RowStart: min(r.RowStart, o.RowStart),
		ColStart: min(r.ColStart, o.ColStart),
		RowEnd:   max(r.RowEnd, o.RowEnd),
		ColEnd:   max(r.ColEnd, o.ColEnd),
	}
}

// Valid reports whether the rectangle is well-formed and fits a rows×cols grid.
func (r Rect) Valid(rows, cols int) bool {
	return r.RowStart >= 0 && r.ColStart >= 0 &&
		r.RowEnd >= r.RowStart && r.ColEnd >= r.ColStart &&
		r.RowEnd < rows && r.ColEnd < cols
}

// String formats the rectangle as "r1,c1,r2,c2".
func (r Rect) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.RowStart, r.ColStart, r.RowEnd, r.ColEnd)
}

// ParseRect parses "r1,c1,r2,c2" into a Rect. Bounds are not checked against a grid.
func ParseRect(s string) (Rect, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 4 {
		return Rect{}, fmt.Errorf("%w: %q: want r1,c1,r2,c2", ErrInvalidRect, s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Rect{}, fmt.Errorf("%w: %q: %v", ErrInvalidRect, s, err)
		}
		v[i] = n
	}
	return NewRect(v[0], v[1], v[2], v[3]), nil
}
