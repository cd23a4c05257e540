package model

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/datagrid/internal/domain/entity"
)

func artist(t *testing.T, id entity.ArtistID, kind entity.PlotKind, x, y []float64) entity.Artist {
	t.Helper()
	a, err := entity.NewArtist(id, kind, &entity.Dataset{Name: string(id), X: x, Y: y}, "#ff0000")
	require.NoError(t, err)
	return a
}

func TestCanvas_LineOwnership(t *testing.T) {
	// 4x2 cells are 8x8 dots; the diagonal runs bottom-left to top-right.
	c := NewCanvas(4, 2)
	c.DrawArtists([]entity.Artist{artist(t, "a", entity.PlotLine, []float64{0, 1}, []float64{0, 1})})

	assert.Equal(t, entity.ArtistID("a"), c.Owner(0, 1))
	assert.Equal(t, entity.ArtistID("a"), c.Owner(3, 0))
	assert.Empty(t, c.Owner(0, 0))
	assert.Empty(t, c.Owner(3, 1))
	assert.Empty(t, c.Owner(-1, 0))
	assert.Empty(t, c.Owner(4, 0))
}

func TestCanvas_LaterSeriesOwnsSharedCells(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawArtists([]entity.Artist{
		artist(t, "a", entity.PlotLine, []float64{0, 1}, []float64{0, 1}),
		artist(t, "b", entity.PlotLine, []float64{0, 1}, []float64{0, 1}),
	})
	assert.Equal(t, entity.ArtistID("b"), c.Owner(0, 1))
}

func TestCanvas_BarsStartAtZero(t *testing.T) {
	c := NewCanvas(2, 2)
	c.DrawArtists([]entity.Artist{artist(t, "bars", entity.PlotBar, []float64{0, 1}, []float64{1, 4})})

	// Both bars reach the bottom row; only the taller one the top row.
	assert.Equal(t, entity.ArtistID("bars"), c.Owner(0, 1))
	assert.Equal(t, entity.ArtistID("bars"), c.Owner(1, 1))
	assert.Empty(t, c.Owner(0, 0))
	assert.Equal(t, entity.ArtistID("bars"), c.Owner(1, 0))
}

func TestCanvas_Render(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawArtists([]entity.Artist{artist(t, "a", entity.PlotLine, []float64{0, 1}, []float64{0, 1})})

	lines := strings.Split(ansi.Strip(c.Render(lipgloss.NewStyle())), "\n")
	require.Len(t, lines, 2)
	top := []rune(lines[0])
	require.Len(t, top, 4)
	assert.Equal(t, ' ', top[0])
	assert.GreaterOrEqual(t, top[3], rune(brailleBase+1))
	assert.LessOrEqual(t, top[3], rune(brailleBase+0xff))
}

func TestCanvas_EmptyAndDegenerate(t *testing.T) {
	c := NewCanvas(0, 3)
	c.DrawArtists([]entity.Artist{artist(t, "a", entity.PlotLine, []float64{0, 1}, []float64{0, 1})})
	w, h := c.Size()
	assert.Equal(t, 0, w)
	assert.Equal(t, 3, h)

	// A single point still lands on the canvas.
	c = NewCanvas(3, 3)
	c.DrawArtists([]entity.Artist{artist(t, "dot", entity.PlotScatter, []float64{5}, []float64{5})})
	owned := 0
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if c.Owner(x, y) != "" {
				owned++
			}
		}
	}
	assert.Positive(t, owned)
}

func TestCanvas_SkipsNonFinitePoints(t *testing.T) {
	a := artist(t, "a", entity.PlotLine, []float64{0, 1, 2}, []float64{0, 1, 2})
	b := artist(t, "b", entity.PlotBar, []float64{0, 1}, []float64{1, 2})
	_, ys := a.Points()
	ys[1] = math.NaN()
	xs, _ := b.Points()
	xs[0] = math.Inf(-1)

	c := NewCanvas(20, 5)
	done := make(chan struct{})
	go func() {
		c.DrawArtists([]entity.Artist{a, b})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("DrawArtists did not return")
	}

	// The finite endpoints of the line are still drawn.
	assert.Equal(t, entity.ArtistID("a"), c.Owner(0, 4))
	b2, ok := dataBounds([]entity.Artist{a, b})
	require.True(t, ok)
	assert.Equal(t, bounds{xmin: 0, xmax: 2, ymin: 0, ymax: 2}, b2)
}

func TestToDot_Clamps(t *testing.T) {
	assert.Equal(t, 3, toDot(2.6, 10))
	assert.Equal(t, -1, toDot(math.NaN(), 10))
	assert.Equal(t, -1, toDot(-1e300, 10))
	assert.Equal(t, 11, toDot(math.Inf(1), 10))
}
