// Package tour - constructors.
//
// Every constructor allocates and returns a fresh permutation of [0, N):
//   - RandomSolution: uniform permutation by sampling without replacement.
//   - GreedySolution: deterministic nearest neighbour anchored at element 0.
//   - GRCSolution:    GRASP semi-greedy construction over a restricted
//     candidate list (RCL).
package tour

import "math"

// RandomSolution draws a uniformly random permutation. For each position it
// samples an index among the remaining unplaced elements and removes it.
//
// Errors: ErrNilCostModel, ErrInvalidDimension, ErrNilRandomSource, or any
// error of rs.
//
// Complexity: O(N²) time (ordered removal), O(N) space.
func RandomSolution(cm CostModel, rs RandomSource) ([]int, error) {
	n, err := checkModel(cm)
	if err != nil {
		return nil, err
	}
	if err = checkSource(rs); err != nil {
		return nil, err
	}

	var (
		remaining = make([]int, n)
		out       = make([]int, n)
		i, k      int
	)
	for i = 0; i < n; i++ {
		remaining[i] = i
	}
	for i = 0; i < n; i++ {
		if k, err = rs.UniformInt(0, len(remaining)-1); err != nil {
			return nil, err
		}
		out[i] = remaining[k]
		remaining = append(remaining[:k], remaining[k+1:]...)
	}

	return out, nil
}

// GreedySolution builds a nearest-neighbour tour. Position 0 holds element 0;
// each later position scans the unvisited candidates 1..N-1 in index order and
// keeps the first one with strictly lower cost to the previous element.
//
// Candidate 0 is never scanned, so element 0 only ever occupies position 0.
//
// Errors: ErrNilCostModel, ErrInvalidDimension.
//
// Complexity: O(N²) time, O(N) space.
func GreedySolution(cm CostModel) ([]int, error) {
	n, err := checkModel(cm)
	if err != nil {
		return nil, err
	}

	var (
		out      = make([]int, n)
		visited  = make([]bool, n)
		i, c     int
		cur      int
		next     int
		cost     float64
		bestCost float64
	)
	out[0] = 0
	visited[0] = true
	for i = 1; i < n; i++ {
		cur = out[i-1]
		next = -1
		bestCost = math.Inf(1)
		for c = 1; c < n; c++ {
			if visited[c] {
				continue
			}
			cost = cm.Cost(cur, c)
			if next == -1 || cost < bestCost {
				next = c
				bestCost = cost
			}
		}
		out[i] = next
		visited[next] = true
	}

	return out, nil
}

// GRCSolution runs a greedy randomized construction (GRASP).
//
// The start element is drawn uniformly. At every step the unvisited
// candidates are ranked by their cost to the last placed element in a
// restricted candidate list:
//   - the first candidate seeds the list and sets best;
//   - a candidate with cost < best becomes the new best, every kept entry
//     above the new acceptance bound is pruned, then it is inserted;
//   - any other candidate within the acceptance bound of best is inserted.
//
// The acceptance bound is best + rclThreshold·best. The next element is drawn
// uniformly among the list entries. rclThreshold = 0 keeps only the cheapest
// candidates (ties included); larger thresholds admit costlier ones.
//
// Errors: ErrNilCostModel, ErrInvalidDimension, ErrNilRandomSource,
// ErrInvalidThreshold, or any error of rs.
//
// Complexity: O(N²) scans plus O(N) per RCL insertion.
func GRCSolution(cm CostModel, rs RandomSource, rclThreshold float64) ([]int, error) {
	n, err := checkModel(cm)
	if err != nil {
		return nil, err
	}
	if err = checkSource(rs); err != nil {
		return nil, err
	}
	if math.IsNaN(rclThreshold) || rclThreshold < 0 || rclThreshold > 1 {
		return nil, ErrInvalidThreshold
	}

	bound := func(best float64) float64 { return best + rclThreshold*best }

	var (
		out     = make([]int, n)
		visited = make([]bool, n)
		list    = newRCL(n)
		idx, c  int
		k       int
		last    int
		cost    float64
		best    float64
	)
	if out[0], err = rs.UniformInt(0, n-1); err != nil {
		return nil, err
	}
	if out[0] < 0 || out[0] >= n {
		return nil, ErrInvalidRange
	}
	visited[out[0]] = true

	for idx = 1; idx < n; idx++ {
		list.reset()
		last = out[idx-1]
		for c = 0; c < n; c++ {
			if visited[c] {
				continue
			}
			cost = cm.Cost(last, c)
			switch {
			case list.len() == 0:
				best = cost
				list.insert(cost, c)
			case cost < best:
				best = cost
				list.pruneAbove(bound(best))
				list.insert(cost, c)
			case cost <= bound(best):
				list.insert(cost, c)
			}
		}

		if k, err = rs.UniformInt(0, list.len()-1); err != nil {
			return nil, err
		}
		if k < 0 || k >= list.len() {
			return nil, ErrInvalidRange
		}
		out[idx] = list.city(k)
		visited[out[idx]] = true
	}

	return out, nil
}
