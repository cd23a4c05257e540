package dataset_test

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/datagrid/internal/domain/entity"
	"github.com/bnema/datagrid/internal/infrastructure/config"
	"github.com/bnema/datagrid/internal/infrastructure/dataset"
	"github.com/bnema/datagrid/internal/infrastructure/dataset/mocks"
)

func TestBuiltin_MatchesDemoFrame(t *testing.T) {
	sets := dataset.Builtin(rand.New(rand.NewPCG(1, 2)))

	names := make([]string, len(sets))
	for i, ds := range sets {
		names[i] = ds.Name
		require.NoError(t, ds.Validate())
		assert.Len(t, ds.X, 100)
	}
	assert.Equal(t, []string{"d_x", "d_sin", "d_cos", "d_sample1", "d_sample2", "d_sqrt(x+5)", "d_x**2", "d_csili"}, names)

	assert.InDelta(t, -5.0, sets[0].X[0], 1e-12)
	assert.InDelta(t, 5.0, sets[0].X[99], 1e-12)
	assert.InDelta(t, 0.25, sets[6].Y[0], 1e-12)
	assert.InDelta(t, 0.0, sets[5].Y[0], 1e-12)
	for _, y := range sets[4].Y {
		assert.True(t, y >= 0 && y < 1.5)
	}
}

func TestJSEvaluator(t *testing.T) {
	ev := dataset.NewJSEvaluator()

	ys, err := ev.Eval(context.Background(), "Math.sin(x) * 2 + 1", []float64{0, math.Pi / 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ys[0], 1e-12)
	assert.InDelta(t, 3.0, ys[1], 1e-12)

	_, err = ev.Eval(context.Background(), "x +* 2", []float64{1})
	assert.ErrorIs(t, err, dataset.ErrExpression)

	_, err = ev.Eval(context.Background(), "Math.sqrt(x)", []float64{-1})
	assert.ErrorIs(t, err, dataset.ErrExpression)

	_, err = ev.Eval(context.Background(), "undefinedName + x", []float64{1})
	assert.ErrorIs(t, err, dataset.ErrExpression)
}

func TestJSEvaluator_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dataset.NewJSEvaluator().Eval(ctx, "(function () { while (true) {} })()", []float64{1})
	assert.ErrorIs(t, err, dataset.ErrExpression)
}

func TestReadCSV(t *testing.T) {
	in := "t, v, other\n0, 1.5, a\n1, 2.5, b\n2, -1, c\n"

	ds, err := dataset.ReadCSV(strings.NewReader(in), "m", "t", "V")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, ds.X)
	assert.Equal(t, []float64{1.5, 2.5, -1}, ds.Y)

	ds, err = dataset.ReadCSV(strings.NewReader("v\n4\n5\n"), "idx", "", "v")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, ds.X)

	_, err = dataset.ReadCSV(strings.NewReader(in), "m", "t", "missing")
	assert.ErrorIs(t, err, entity.ErrInvalidDataset)

	_, err = dataset.ReadCSV(strings.NewReader("v\nabc\n"), "bad", "", "v")
	assert.ErrorIs(t, err, entity.ErrInvalidDataset)
}

func TestReadCSV_RejectsUnplottableData(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"nan", "x,y\n0,1\n1,NaN\n2,3\n"},
		{"inf", "x,y\n0,1\n1,+Inf\n"},
		{"negative inf x", "x,y\n-Inf,1\n"},
		{"header only", "x,y\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := dataset.ReadCSV(strings.NewReader(tt.in), "d", "x", "y")
			assert.ErrorIs(t, err, entity.ErrInvalidDataset)
			assert.Nil(t, ds)
		})
	}
}

func TestSource_MergesConfigOverBuiltin(t *testing.T) {
	ctrl := gomock.NewController(t)
	ev := mocks.NewMockEvaluator(ctrl)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.csv"), []byte("x,y\n1,10\n2,20\n"), 0o644))

	ev.EXPECT().
		Eval(gomock.Any(), "x * 3", gomock.Len(3)).
		DoAndReturn(func(_ context.Context, _ string, xs []float64) ([]float64, error) {
			out := make([]float64, len(xs))
			for i, x := range xs {
				out[i] = 3 * x
			}
			return out, nil
		})

	src := dataset.NewSource(dataset.SourceOptions{
		Builtin: true,
		BaseDir: dir,
		Seed:    7,
		Datasets: []config.DatasetConfig{
			{Name: "d_sin", Expr: "x * 3", XMin: 0, XMax: 2, Points: 3},
			{Name: "csv", File: "data.csv", XColumn: "x", YColumn: "y"},
		},
		Evaluator: ev,
	})

	frame, err := src.Load(context.Background())
	require.NoError(t, err)

	names := frame.Names()
	assert.Equal(t, "d_sin", names[1], "override keeps the built-in position")
	assert.Equal(t, "csv", names[len(names)-1])

	sin, err := frame.Get("d_sin")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 6}, sin.Y)

	csv, err := frame.Get("csv")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20}, csv.Y)
}

func TestSource_EvaluatorFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	ev := mocks.NewMockEvaluator(ctrl)
	boom := errors.New("boom")
	ev.EXPECT().Eval(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

	src := dataset.NewSource(dataset.SourceOptions{
		Datasets:  []config.DatasetConfig{{Name: "bad", Expr: "x", XMax: 1, Points: 2}},
		Evaluator: ev,
	})
	_, err := src.Load(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestSource_EmptyFrame(t *testing.T) {
	_, err := dataset.NewSource(dataset.SourceOptions{}).Load(context.Background())
	assert.ErrorIs(t, err, entity.ErrDatasetNotFound)
}
