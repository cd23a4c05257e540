package dataset

//go:generate mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/grafana/sobek"
)

// ErrExpression marks a dataset expression that failed to compile or run.
var ErrExpression = errors.New("dataset expression failed")

// Evaluator computes y values of an expression in x.
type Evaluator interface {
	Eval(ctx context.Context, expr string, xs []float64) ([]float64, error)
}

// JSEvaluator evaluates JavaScript expressions such as "Math.sin(x) * 2".
// Each call runs in a fresh runtime.
type JSEvaluator struct{}

// NewJSEvaluator creates a JavaScript evaluator.
func NewJSEvaluator() *JSEvaluator {
	return &JSEvaluator{}
}

// Eval compiles expr as the body of f(x) and applies it to every x.
// Evaluation stops when ctx is cancelled.
func (e *JSEvaluator) Eval(ctx context.Context, expr string, xs []float64) ([]float64, error) {
	prog, err := sobek.Compile("dataset", "(function (x) { return (\n"+expr+"\n); })", true)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrExpression, expr, err)
	}

	vm := sobek.New()
	stop := context.AfterFunc(ctx, func() { vm.Interrupt(ctx.Err()) })
	defer stop()

	v, err := vm.RunProgram(prog)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrExpression, expr, err)
	}
	fn, ok := sobek.AssertFunction(v)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not callable", ErrExpression, expr)
	}

	ys := make([]float64, len(xs))
	for i, x := range xs {
		r, err := fn(sobek.Undefined(), vm.ToValue(x))
		if err != nil {
			return nil, fmt.Errorf("%w: %q at x=%g: %v", ErrExpression, expr, x, err)
		}
		y := r.ToFloat()
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, fmt.Errorf("%w: %q is not finite at x=%g", ErrExpression, expr, x)
		}
		ys[i] = y
	}
	return ys, nil
}
