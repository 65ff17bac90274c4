// SPDX-License-Identifier: MIT

package pricer

import (
	"fmt"
	"math"
	"sort"
)

// Result holds per-contract values (or a density) on the grid at time zero.
type Result struct {
	X         []float64   // grid nodes
	Log       bool        // X is log S
	Values    [][]float64 // one vector per contract, aligned with X
	Contracts []Contract
}

// Levels returns the underlying level of every node (exp(X) in log mode).
func (r *Result) Levels() []float64 {
	out := make([]float64, len(r.X))
	for i, x := range r.X {
		if r.Log {
			x = math.Exp(x)
		}
		out[i] = x
	}

	return out
}

// ValueAt linearly interpolates vector k at the underlying level spot.
//
// Errors: ErrContractIndex, ErrSpotOutsideGrid.
func (r *Result) ValueAt(k int, spot float64) (float64, error) {
	if k < 0 || k >= len(r.Values) {
		return 0, fmt.Errorf("ValueAt(%d): %w", k, ErrContractIndex)
	}
	x := spot
	if r.Log {
		x = math.Log(spot)
	}
	n := len(r.X)
	if n == 0 || math.IsNaN(x) || x < r.X[0] || x > r.X[n-1] {
		return 0, fmt.Errorf("ValueAt(%d, %g): %w", k, spot, ErrSpotOutsideGrid)
	}
	v := r.Values[k]
	j := sort.SearchFloat64s(r.X, x) // first node >= x
	if r.X[j] == x {
		return v[j], nil
	}
	w := (x - r.X[j-1]) / (r.X[j] - r.X[j-1])

	return (1-w)*v[j-1] + w*v[j], nil
}
