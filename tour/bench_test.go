// Package tour_test - benchmarks for the operator set.
//
// Policy:
//   - Deterministic geometry (rippled circle) and fixed seeds.
//   - Inputs are built outside the timer; each iteration works on a fresh copy
//     of the same start tour so that in-place operators see identical input.
package tour_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/permtour/matrix"
	"github.com/katalvlaran/permtour/tour"
)

// circleModel places n points on a rippled circle and uses Euclidean
// distances as costs.
func circleModel(tb testing.TB, n int) *matrix.CostMatrix {
	tb.Helper()
	var (
		pts  = make([][2]float64, n)
		i, j int
		th   float64
		r    float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 1.0 + 0.02*float64((i*5)%7)
		pts[i] = [2]float64{r * math.Cos(th), r * math.Sin(th)}
	}
	d, err := matrix.NewDense(n, n)
	if err != nil {
		tb.Fatal(err)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err = d.SetSymmetric(i, j, math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])); err != nil {
				tb.Fatal(err)
			}
		}
	}
	cm, err := matrix.NewCostMatrix(d, matrix.DefaultSymmetryTol)
	if err != nil {
		tb.Fatal(err)
	}

	return cm
}

func benchStart(b *testing.B, n int) (*matrix.CostMatrix, []int) {
	b.Helper()
	cm := circleModel(b, n)
	start, err := tour.RandomSolution(cm, tour.NewRand(seedDet))
	if err != nil {
		b.Fatal(err)
	}

	return cm, start
}

func BenchmarkFitness_n200(b *testing.B) {
	cm, start := benchStart(b, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tour.Fitness(cm, start)
	}
}

func BenchmarkLocalSearch2OptFirst_n40(b *testing.B) {
	cm, start := benchStart(b, 40)
	work := make([]int, len(start))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, start)
		_, _ = tour.LocalSearch2OptFirst(cm, work)
	}
}

func BenchmarkLocalSearch2OptBest_n40(b *testing.B) {
	cm, start := benchStart(b, 40)
	work := make([]int, len(start))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, start)
		_, _ = tour.LocalSearch2OptBest(cm, work)
	}
}

func BenchmarkGRCSolution_n200(b *testing.B) {
	cm := circleModel(b, 200)
	rs := tour.NewRand(seedDet)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tour.GRCSolution(cm, rs, 0.2)
	}
}

func BenchmarkRepair_n200(b *testing.B) {
	const n = 200
	cm := circleModel(b, n)
	rs := tour.NewRand(seedDet)
	broken := make([]int, n)
	for i := range broken {
		broken[i] = i / 2 // every value twice, half of them missing
	}
	work := make([]int, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, broken)
		_ = tour.Repair(cm, rs, work)
	}
}
