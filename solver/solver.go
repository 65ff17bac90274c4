// SPDX-License-Identifier: MIT

// Package solver provides a Newton-Raphson root finder for scalar objectives
// with an analytic derivative.
//
// Non-convergence is not an error: NewtonRaphson always returns its last
// iterate together with the residual there, and callers decide whether the
// residual is acceptable.
package solver

import "math"

// Objective is a scalar function with its first derivative.
type Objective interface {
	Value(x float64) float64
	Derivative(x float64) float64
}

// Func adapts a pair of closures to Objective.
type Func struct {
	F  func(x float64) float64
	DF func(x float64) float64
}

// Value implements Objective.
func (f Func) Value(x float64) float64 { return f.F(x) }

// Derivative implements Objective.
func (f Func) Derivative(x float64) float64 { return f.DF(x) }

// Result describes the outcome of a root search.
type Result struct {
	Root       float64 // last iterate
	Iterations int     // objective evaluations performed by the loop
	Residual   float64 // Value(Root)
}

// Converged reports whether |Residual| <= tol.
func (r Result) Converged(tol float64) bool { return math.Abs(r.Residual) <= tol }

// NewtonRaphson iterates x ← x − f(x)/f'(x) from x0 until |f(x)| <= tol or
// maxIter evaluations have been made.
//
// A zero derivative yields an infinite or NaN iterate, which is returned as
// is with its residual.
func NewtonRaphson(obj Objective, x0 float64, maxIter int, tol float64) Result {
	x := x0
	var i int
	for i = 0; i < maxIter; i++ {
		y := obj.Value(x)
		if math.Abs(y) <= tol {
			return Result{Root: x, Iterations: i + 1, Residual: y}
		}
		x -= y / obj.Derivative(x)
	}

	return Result{Root: x, Iterations: maxIter, Residual: obj.Value(x)}
}
