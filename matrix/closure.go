// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Turn a partial cost matrix into a complete one by replacing every entry
//     with the cheapest path cost between the two elements (metric closure).
//   - Tours over the closure never pay more than the direct entry, and missing
//     direct entries (+Inf) become usable.
//
// Contract:
//   - Square input; +Inf means "no direct edge"; the diagonal is forced to 0.
//   - NaN and negative entries are rejected before any work is done.
//   - Every pair must end up connected, otherwise ErrDisconnected.

package matrix

import (
	"fmt"
	"math"
)

const opMetricClosure = "MetricClosure"

// MetricClosure returns a new Dense holding all-pairs shortest path costs of m
// (Floyd–Warshall). m is not modified.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare, ErrNaNInf (NaN or
// -Inf entry), ErrNegativeCost, ErrDisconnected.
//
// Complexity: O(n³) time, O(n²) memory for the copy.
func MetricClosure(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, validatorErrorf(opMetricClosure, err)
	}
	var (
		n    = m.Rows()
		d, _ = NewDense(n, n) // n > 0 after ValidateSquare
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // distance to self stays 0
			}
			v, _ = m.At(i, j) // range already validated
			if math.IsNaN(v) || math.IsInf(v, -1) {
				return nil, validatorErrorf(fmt.Sprintf("%s(%d,%d)", opMetricClosure, i, j), ErrNaNInf)
			}
			if v < 0 {
				return nil, validatorErrorf(fmt.Sprintf("%s(%d,%d)", opMetricClosure, i, j), ErrNegativeCost)
			}
			d.data[i*n+j] = v
		}
	}

	floydWarshallInPlace(d)

	for i = 0; i < len(d.data); i++ {
		if math.IsInf(d.data[i], 1) {
			return nil, validatorErrorf(fmt.Sprintf("%s(%d,%d)", opMetricClosure, i/n, i%n), ErrDisconnected)
		}
	}

	return d, nil
}

// floydWarshallInPlace relaxes d in the fixed k → i → j order. Pairs whose
// leg is +Inf are skipped; only strict improvements are written.
// Complexity: O(n³) time, O(1) extra space.
func floydWarshallInPlace(d *Dense) {
	var (
		n            = d.r
		data         = d.data
		k, i, j      int
		baseK, baseI int
		ik, kj       float64
		cand         float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand = ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}
