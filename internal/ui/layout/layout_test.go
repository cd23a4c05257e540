package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/datagrid/internal/domain/entity"
)

func TestGrid_BoxesTileTheArea(t *testing.T) {
	g := New(3, 4, Box{X: 0, Y: 1, W: 81, H: 22})

	total := 0
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			b := g.Box(entity.NewRect(r, c, r, c))
			require.False(t, b.Empty())
			total += b.W * b.H
		}
	}
	assert.Equal(t, 81*22, total)

	whole := g.Box(entity.NewRect(0, 0, 2, 3))
	assert.Equal(t, Box{X: 0, Y: 1, W: 81, H: 22}, whole)
}

func TestGrid_CellAtRoundTrips(t *testing.T) {
	g := New(4, 4, Box{X: 2, Y: 0, W: 50, H: 30})

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			b := g.Box(entity.NewRect(r, c, r, c))
			for _, pt := range [][2]int{{b.X, b.Y}, {b.X + b.W - 1, b.Y + b.H - 1}} {
				row, col, ok := g.CellAt(pt[0], pt[1])
				require.True(t, ok)
				assert.Equal(t, [2]int{r, c}, [2]int{row, col})
			}
		}
	}

	_, _, ok := g.CellAt(1, 0)
	assert.False(t, ok)
	_, _, ok = g.CellAt(52, 0)
	assert.False(t, ok)
}

func TestGrid_PanelAt(t *testing.T) {
	tl, err := entity.NewTiling(4, 4, []entity.PanelSpec{
		{ID: "top", Rect: entity.NewRect(0, 0, 1, 3)},
		{ID: "bottom", Rect: entity.NewRect(2, 0, 3, 3)},
	})
	require.NoError(t, err)
	g := New(4, 4, Box{W: 40, H: 20})

	assert.Equal(t, entity.PanelID("top"), g.PanelAt(tl, 39, 9).ID)
	assert.Equal(t, entity.PanelID("bottom"), g.PanelAt(tl, 0, 10).ID)
	assert.Nil(t, g.PanelAt(tl, 0, 20))
}

func TestAnchor_ClampsToScreen(t *testing.T) {
	screen := Box{W: 80, H: 24}

	assert.Equal(t, Box{X: 10, Y: 5, W: 20, H: 6}, Anchor(10, 5, 20, 6, screen))
	assert.Equal(t, Box{X: 60, Y: 18, W: 20, H: 6}, Anchor(75, 22, 20, 6, screen))
	assert.Equal(t, Box{X: 0, Y: 0, W: 100, H: 6}, Anchor(5, -3, 100, 6, screen))
}

func TestBox_Inset(t *testing.T) {
	assert.Equal(t, Box{X: 1, Y: 1, W: 8, H: 3}, Box{W: 10, H: 5}.Inset(1))
	assert.True(t, Box{W: 1, H: 1}.Inset(1).Empty())
}
