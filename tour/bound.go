// Package tour - Held–Karp 1-tree lower bound.
//
// LowerBound certifies how far a tour can be from optimal. For multipliers
// π ∈ ℝ^N it builds a minimum 1-tree on the reduced costs
// c'(i,j) = c(i,j) + π_i + π_j (an MST over every element except the root,
// plus the two cheapest root edges) and evaluates
//
//	L(π) = c'(T) − 2·Σ π_i  ≤  optimal closed-tour fitness.
//
// π is improved by subgradient ascent with s_i = deg_T(i) − 2; a 1-tree in
// which every degree is 2 is itself a tour and ends the loop.
//
// Determinism:
//   - No randomness. Prim and root-edge selection break ties by index.
package tour

import "math"

// BoundConfig controls the subgradient loop of LowerBound.
//
// MaxIter - iteration budget (values < 1 mean 1).
// Alpha   - step scale in (0, 2); other values fall back to 0.9.
// Upper   - fitness of a known tour. When positive and finite, steps follow
//
//	Alpha·(Upper − L)/‖s‖²; otherwise Alpha/(1+iter).
type BoundConfig struct {
	MaxIter int
	Alpha   float64
	Upper   float64
}

// DefaultBoundConfig returns a small deterministic budget with no upper
// bound feedback.
func DefaultBoundConfig() BoundConfig {
	return BoundConfig{MaxIter: 32, Alpha: 0.9, Upper: math.Inf(1)}
}

// LowerBound returns the best L(π) seen, rounded to 1e-9. Element 0 is the
// root. For N < 3 the only closed tour is the identity, so its fitness is
// returned exactly.
//
// Errors: ErrNilCostModel, ErrInvalidDimension.
//
// Complexity: O(MaxIter · N²) time, O(N) space.
func LowerBound(cm CostModel, cfg BoundConfig) (float64, error) {
	n, err := checkModel(cm)
	if err != nil {
		return 0, err
	}
	if n < 3 {
		id, _ := Identity(n)
		return fitness(cm, id), nil
	}
	if cfg.MaxIter < 1 {
		cfg.MaxIter = 1
	}
	if !(cfg.Alpha > 0 && cfg.Alpha < 2) {
		cfg.Alpha = 0.9
	}
	useUpper := cfg.Upper > 0 && !math.IsInf(cfg.Upper, 0) && !math.IsNaN(cfg.Upper)

	var (
		ot    = newOneTree(cm, n)
		best  = math.Inf(-1)
		iter  int
		i     int
		sumPi float64
		l     float64
		norm2 float64
		s     int
		step  float64
	)
	for iter = 0; iter < cfg.MaxIter; iter++ {
		sumPi = 0
		for i = 0; i < n; i++ {
			sumPi += ot.pi[i]
		}
		l = ot.build() - 2*sumPi
		if l > best {
			best = l
		}

		norm2 = 0
		for i = 0; i < n; i++ {
			s = ot.deg[i] - 2
			norm2 += float64(s * s)
		}
		if norm2 == 0 {
			break // the 1-tree is a tour
		}

		if useUpper {
			step = math.Max(cfg.Upper-l, 0) * cfg.Alpha / norm2
		} else {
			step = cfg.Alpha / (1 + float64(iter))
		}
		if step == 0 {
			break
		}
		for i = 0; i < n; i++ {
			ot.pi[i] += step * float64(ot.deg[i]-2)
		}
	}

	return round1e9(best), nil
}

// oneTree holds the reusable working state of LowerBound. The root is 0.
type oneTree struct {
	cm     CostModel
	n      int
	pi     []float64
	deg    []int
	inTree []bool
	parent []int
	key    []float64
}

func newOneTree(cm CostModel, n int) *oneTree {
	return &oneTree{
		cm:     cm,
		n:      n,
		pi:     make([]float64, n),
		deg:    make([]int, n),
		inTree: make([]bool, n),
		parent: make([]int, n),
		key:    make([]float64, n),
	}
}

// reduced returns c(u,v) + π_u + π_v.
func (o *oneTree) reduced(u, v int) float64 {
	return o.cm.Cost(u, v) + o.pi[u] + o.pi[v]
}

// build constructs a minimum 1-tree on reduced costs, fills deg and returns
// its reduced cost. Costs are finite, so the tree always exists for N ≥ 3.
//
// Complexity: O(N²).
func (o *oneTree) build() float64 {
	var (
		v, pick, k int
		c, total   float64
	)
	for v = 0; v < o.n; v++ {
		o.deg[v] = 0
		o.inTree[v] = false
		o.parent[v] = -1
		o.key[v] = math.Inf(1)
	}
	o.key[1] = 0 // Prim over 1..N-1 starts at element 1

	for k = 1; k < o.n; k++ {
		pick = -1
		for v = 1; v < o.n; v++ {
			if !o.inTree[v] && (pick < 0 || o.key[v] < o.key[pick]) {
				pick = v
			}
		}
		o.inTree[pick] = true
		if o.parent[pick] >= 0 {
			total += o.reduced(pick, o.parent[pick])
			o.deg[pick]++
			o.deg[o.parent[pick]]++
		}
		for v = 1; v < o.n; v++ {
			if o.inTree[v] {
				continue
			}
			if c = o.reduced(pick, v); c < o.key[v] {
				o.key[v] = c
				o.parent[v] = pick
			}
		}
	}

	// two cheapest root edges
	var (
		m1, m2     = math.Inf(1), math.Inf(1)
		m1To, m2To = -1, -1
	)
	for v = 1; v < o.n; v++ {
		c = o.reduced(0, v)
		switch {
		case c < m1:
			m2, m2To = m1, m1To
			m1, m1To = c, v
		case c < m2:
			m2, m2To = c, v
		}
	}
	total += m1 + m2
	o.deg[0] += 2
	o.deg[m1To]++
	o.deg[m2To]++

	return total
}
