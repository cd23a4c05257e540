// Package layout maps grid cells onto terminal cells.
package layout

import "github.com/bnema/datagrid/internal/domain/entity"

// Box is a rectangle in terminal cells, W and H exclusive of the origin.
type Box struct {
	X, Y int
	W, H int
}

// Contains reports whether the terminal cell (x, y) lies in the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Empty reports whether the box has no area.
func (b Box) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Inset shrinks the box by n cells on every side.
func (b Box) Inset(n int) Box {
	out := Box{X: b.X + n, Y: b.Y + n, W: b.W - 2*n, H: b.H - 2*n}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Grid divides an area of the screen into rows×cols grid cells. Cell edges
// are spread so rounding leftovers land evenly.
type Grid struct {
	rows, cols int
	area       Box
}

// New creates a grid mapping over area.
func New(rows, cols int, area Box) Grid {
	return Grid{rows: rows, cols: cols, area: area}
}

// Area returns the screen area covered by the grid.
func (g Grid) Area() Box { return g.area }

func (g Grid) colEdge(c int) int { return g.area.X + c*g.area.W/g.cols }

func (g Grid) rowEdge(r int) int { return g.area.Y + r*g.area.H/g.rows }

// Box returns the screen rectangle of a grid rectangle.
func (g Grid) Box(r entity.Rect) Box {
	x0, x1 := g.colEdge(r.ColStart), g.colEdge(r.ColEnd+1)
	y0, y1 := g.rowEdge(r.RowStart), g.rowEdge(r.RowEnd+1)
	return Box{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// CellAt returns the grid cell under the terminal cell (x, y).
func (g Grid) CellAt(x, y int) (row, col int, ok bool) {
	if g.rows <= 0 || g.cols <= 0 || !g.area.Contains(x, y) {
		return 0, 0, false
	}
	col, row = -1, -1
	for c := 0; c < g.cols; c++ {
		if x >= g.colEdge(c) && x < g.colEdge(c+1) {
			col = c
			break
		}
	}
	for r := 0; r < g.rows; r++ {
		if y >= g.rowEdge(r) && y < g.rowEdge(r+1) {
			row = r
			break
		}
	}
	if row < 0 || col < 0 {
		return 0, 0, false
	}
	return row, col, true
}

// PanelAt returns the panel under the terminal cell (x, y), or nil.
func (g Grid) PanelAt(t *entity.Tiling, x, y int) *entity.Panel {
	row, col, ok := g.CellAt(x, y)
	if !ok {
		return nil
	}
	return t.PanelAt(row, col)
}

// Anchor places a w×h popup with its top-left corner at (x, y), shifted so
// it stays inside screen.
func Anchor(x, y, w, h int, screen Box) Box {
	if x+w > screen.X+screen.W {
		x = screen.X + screen.W - w
	}
	if y+h > screen.Y+screen.H {
		y = screen.Y + screen.H - h
	}
	if x < screen.X {
		x = screen.X
	}
	if y < screen.Y {
		y = screen.Y
	}
	return Box{X: x, Y: y, W: w, H: h}
}
