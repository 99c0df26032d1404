// Package tour provides the operator set for closed-tour permutation search.
//
// A tour is a []int of length N holding every element of [0, N) exactly once,
// read as a cycle: the last element connects back to the first. Elements are
// scored through a CostModel (a symmetric, non-negative N×N cost accessor)
// and every stochastic operator draws from an injected RandomSource.
//
// Operators:
//
//   - Fitness: closed-cycle cost of a tour.
//
//   - RandomSolution, GreedySolution, GRCSolution: constructors (uniform,
//     nearest-neighbour, and GRASP semi-greedy with a restricted candidate list).
//
//   - Repair: restores the permutation invariant on an arbitrary int slice.
//
//   - Neighbor, Perturbate: single random swap (copy) and k random swaps
//     (in place).
//
//   - LocalSearch2OptFirst, LocalSearch2OptBest: one pass of the pairwise
//     swap neighbourhood with first/best improvement. Each call applies at
//     most one move; Descend repeats until the tour is stable.
//
//   - GetTabu: the (min,max) value pair exchanged between two tours that
//     differ by one transposition.
//
//   - Distance: count of differing adjacent pairs between two tours.
//
//   - LowerBound: Held–Karp 1-tree bound on the optimal fitness.
//
// Mutation contract: constructors and Neighbor allocate; Repair, the local
// searches and Perturbate mutate their argument in place. All argument
// checks happen before any mutation.
//
// Concurrency: operators keep no state. A RandomSource with internal state
// (such as *Rand) must not be shared across goroutines; use (*Rand).Derive
// to create one stream per trajectory.
package tour
