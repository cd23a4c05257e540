// Package dataset loads the named series offered by the data menu.
package dataset

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"

	"github.com/bnema/datagrid/internal/domain/entity"
)

const (
	builtinPoints = 100
	builtinXMin   = -5.0
	builtinXMax   = 5.0
)

// Linspace returns n evenly spaced samples over [lo, hi].
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Builtin returns the demo datasets sampled over [-5, 5].
func Builtin(rng *rand.Rand) []*entity.Dataset {
	x := Linspace(builtinXMin, builtinXMax, builtinPoints)
	apply := func(f func(float64) float64) []float64 {
		out := make([]float64, len(x))
		for i, v := range x {
			out[i] = f(v)
		}
		return out
	}

	return []*entity.Dataset{
		{Name: "d_x", X: x, Y: apply(func(v float64) float64 { return v })},
		{Name: "d_sin", X: x, Y: apply(math.Sin)},
		{Name: "d_cos", X: x, Y: apply(math.Cos)},
		{Name: "d_sample1", X: x, Y: apply(func(float64) float64 { return rng.Float64() })},
		{Name: "d_sample2", X: x, Y: apply(func(float64) float64 { return 1.5 * rng.Float64() })},
		{Name: "d_sqrt(x+5)", X: x, Y: apply(func(v float64) float64 { return math.Sqrt(v + 5) })},
		{Name: "d_x**2", X: x, Y: apply(func(v float64) float64 { return (v / 10) * (v / 10) })},
		{Name: "d_csili", X: x, Y: apply(func(v float64) float64 { return math.Exp(-0.5*v) * math.Sin(5*v) / 3 })},
	}
}
