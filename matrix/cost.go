// SPDX-License-Identifier: MIT
// Package matrix - validated cost model.
//
// CostMatrix is the read-only view handed to the tour operators. It is built
// once from any Matrix, validated against the cost policy, and then answers
// Size/Cost in O(1) without bounds checks or error returns, which keeps the
// O(N³) local-search loops free of interface error handling.
//
// Design:
//   - Snapshot semantics: the source Matrix is copied, later writes to it are
//     not observed.
//   - Strict sentinels at construction; no errors afterwards.
package matrix

// DefaultSymmetryTol is the tolerance used by NewCostMatrix callers that have
// no domain-specific preference.
const DefaultSymmetryTol = 1e-12

// CostMatrix is an immutable, symmetric, non-negative N×N cost model.
// It satisfies tour.CostModel.
type CostMatrix struct {
	n    int
	data []float64 // row-major, len == n*n
}

// NewCostMatrix validates m and returns an immutable snapshot of it.
//
// Contract:
//   - m is square with n ≥ 1 (ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare).
//   - every entry is finite (ErrNaNInf) and non-negative (ErrNegativeCost).
//   - |m[i,j] − m[j,i]| ≤ tol (ErrAsymmetry).
//
// Complexity: O(n²) time and memory.
func NewCostMatrix(m Matrix, tol float64) (*CostMatrix, error) {
	if err := ValidateCosts(m); err != nil {
		return nil, err
	}
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, err
	}

	var (
		n    = m.Rows()
		data = make([]float64, n*n)
		i, j int
	)
	if d, ok := m.(*Dense); ok {
		copy(data, d.data) // fast path: same row-major layout
	} else {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				data[i*n+j], _ = m.At(i, j) // range already validated
			}
		}
	}

	return &CostMatrix{n: n, data: data}, nil
}

// NewCostMatrixFromRows is a convenience wrapper over NewDenseFromRows and
// NewCostMatrix with DefaultSymmetryTol.
// Complexity: O(n²).
func NewCostMatrixFromRows(rows [][]float64) (*CostMatrix, error) {
	d, err := NewDenseFromRows(rows)
	if err != nil {
		return nil, err
	}

	return NewCostMatrix(d, DefaultSymmetryTol)
}

// Size returns N.
func (c *CostMatrix) Size() int {
	return c.n
}

// Cost returns the cost between elements i and j. Indices must lie in [0, N);
// out-of-range indices panic like any slice access.
// Complexity: O(1).
func (c *CostMatrix) Cost(i, j int) float64 {
	return c.data[i*c.n+j]
}

// Dense returns a mutable copy of the underlying matrix.
// Complexity: O(n²).
func (c *CostMatrix) Dense() *Dense {
	data := make([]float64, len(c.data))
	copy(data, c.data)

	return &Dense{r: c.n, c: c.n, data: data}
}
