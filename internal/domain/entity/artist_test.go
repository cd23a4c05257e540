package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() *Dataset {
	return &Dataset{Name: "d_sin", X: []float64{0, 1, 2}, Y: []float64{0, 0.8, 0.9}}
}

func TestArtists_ColorAccessors(t *testing.T) {
	for _, kind := range PlotKinds {
		t.Run(string(kind), func(t *testing.T) {
			a, err := NewArtist("a.0", kind, testDataset(), "#1f77b4")
			require.NoError(t, err)

			assert.Equal(t, kind, a.Kind())
			assert.Equal(t, "d_sin", a.Label())
			assert.Equal(t, Color("#1f77b4"), a.Color())

			a.SetColor("#ff0000")
			assert.Equal(t, Color("#ff0000"), a.Color())

			switch v := a.(type) {
			case *ScatterArtist:
				assert.Equal(t, []Color{"#ff0000", "#ff0000", "#ff0000"}, v.FaceColors())
			case *BarArtist:
				assert.Equal(t, []Color{"#ff0000", "#ff0000", "#ff0000"}, v.BarColors())
			}
		})
	}
}

func TestNewArtist_Errors(t *testing.T) {
	_, err := NewArtist("a", PlotKind("pie"), testDataset(), "#000000")
	assert.ErrorIs(t, err, ErrInvalidPlotKind)

	_, err = NewArtist("a", PlotLine, &Dataset{Name: "bad", X: []float64{1}}, "#000000")
	assert.ErrorIs(t, err, ErrInvalidDataset)

	_, err = NewArtist("a", PlotLine, nil, "#000000")
	assert.ErrorIs(t, err, ErrDatasetNotFound)
}

func TestPanel_PlotCyclesColorsAndRemoves(t *testing.T) {
	p := NewPanel("p1", NewRect(0, 0, 0, 0))
	cycle := []Color{"#111111", "#222222"}

	a1, err := p.Plot(testDataset(), PlotLine, cycle)
	require.NoError(t, err)
	a2, err := p.Plot(testDataset(), PlotBar, cycle)
	require.NoError(t, err)
	a3, err := p.Plot(testDataset(), PlotScatter, cycle)
	require.NoError(t, err)

	assert.Equal(t, Color("#111111"), a1.Color())
	assert.Equal(t, Color("#222222"), a2.Color())
	assert.Equal(t, Color("#111111"), a3.Color())
	assert.Equal(t, ArtistID("p1.0"), a1.ID())

	require.NoError(t, p.RemoveArtist(a2.ID()))
	assert.Len(t, p.Artists(), 2)
	assert.ErrorIs(t, p.RemoveArtist(a2.ID()), ErrArtistNotFound)

	got, err := p.Artist(a3.ID())
	require.NoError(t, err)
	assert.Same(t, a3, got)
}

func TestParseHelpers(t *testing.T) {
	axis, err := ParseAxis("vsplit")
	require.NoError(t, err)
	assert.Equal(t, AxisVertical, axis)
	_, err = ParseAxis("diagonal")
	assert.ErrorIs(t, err, ErrInvalidSplitAxis)

	dir, err := ParseDirection("up")
	require.NoError(t, err)
	assert.Equal(t, DirTop, dir)
	_, err = ParseDirection("north")
	assert.ErrorIs(t, err, ErrInvalidExtendDirection)

	kind, err := ParsePlotKind("s")
	require.NoError(t, err)
	assert.Equal(t, PlotScatter, kind)

	c, err := ParseColor("#ABC")
	require.NoError(t, err)
	assert.Equal(t, Color("#aabbcc"), c)
	c, err = ParseColor("lightgrey")
	require.NoError(t, err)
	assert.Equal(t, Color("#d3d3d3"), c)
	_, err = ParseColor("#12345")
	assert.ErrorIs(t, err, ErrInvalidColor)

	r, err := ParseRect(" 0, 1 ,2,3")
	require.NoError(t, err)
	assert.Equal(t, NewRect(0, 1, 2, 3), r)
	_, err = ParseRect("0,1,2")
	assert.ErrorIs(t, err, ErrInvalidRect)
}

func TestDataFrame_KeepsOrderAndReplaces(t *testing.T) {
	f := NewDataFrame()
	require.NoError(t, f.Add(&Dataset{Name: "b", X: []float64{1}, Y: []float64{1}}))
	require.NoError(t, f.Add(&Dataset{Name: "a", X: []float64{1}, Y: []float64{1}}))
	require.NoError(t, f.Add(&Dataset{Name: "b", X: []float64{2}, Y: []float64{2}}))

	assert.Equal(t, []string{"b", "a"}, f.Names())
	ds, err := f.Get("b")
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, ds.X)

	_, err = f.Get("zzz")
	assert.ErrorIs(t, err, ErrDatasetNotFound)
	assert.ErrorIs(t, f.Add(&Dataset{}), ErrInvalidDataset)
}

func TestDataset_ValidateRejectsUnplottable(t *testing.T) {
	tests := []struct {
		name string
		ds   Dataset
	}{
		{"no points", Dataset{Name: "empty"}},
		{"nan y", Dataset{Name: "nan", X: []float64{0, 1}, Y: []float64{1, math.NaN()}}},
		{"inf x", Dataset{Name: "inf", X: []float64{math.Inf(1)}, Y: []float64{1}}},
		{"length mismatch", Dataset{Name: "short", X: []float64{0, 1}, Y: []float64{1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.ds.Validate(), ErrInvalidDataset)
			_, err := NewArtist("a", PlotScatter, &tt.ds, "#000000")
			assert.ErrorIs(t, err, ErrInvalidDataset)
		})
	}
	assert.NoError(t, (&Dataset{Name: "one", X: []float64{0}, Y: []float64{0}}).Validate())
}

func TestArtist_ContainerColorWithoutPoints(t *testing.T) {
	for _, a := range []Artist{
		&ScatterArtist{series: series{id: "s"}, base: "#1f77b4"},
		&BarArtist{series: series{id: "b"}, base: "#1f77b4"},
	} {
		assert.Equal(t, Color("#1f77b4"), a.Color(), a.ID())
		a.SetColor("#ff0000")
		assert.Equal(t, Color("#ff0000"), a.Color(), a.ID())
	}
}
