// Package matrix provides the dense cost-matrix container consumed by the
// tour operators.
//
// The package offers:
//
//   - Matrix, a minimal bounds-checked interface over a two-dimensional array
//     of float64 values, and Dense, its row-major implementation.
//   - Validators for the numeric policy of a cost model: square shape, finite
//     entries, non-negative costs and symmetry within a tolerance.
//   - CostMatrix, an immutable, validated snapshot that satisfies
//     tour.CostModel (Size/Cost) with O(1) unchecked lookups.
//   - DecodeYAML / LoadCostMatrix for reading precomputed matrices from YAML
//     or JSON documents, and LoadDense for reading them unvalidated.
//   - MetricClosure, which fills missing (+Inf) entries with shortest path
//     costs so that partial matrices become usable cost models.
//
// The package does not know how costs are derived; whatever produced the
// numbers (a puzzle-specific builder, a distance function, a test fixture)
// lives outside of it.
package matrix
