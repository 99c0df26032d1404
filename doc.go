// Package permtour is a toolkit for closed-tour permutation search: ordering
// N elements in a cycle so that the sum of pairwise costs along the cycle is
// small.
//
// What is inside:
//
//	matrix/      - dense cost matrices, validation, YAML/JSON loading, metric closure
//	tour/        - the operator set: fitness, constructors, repair, swap
//	               neighbourhoods, 2-opt style local search, tabu moves,
//	               tour distance and the 1-tree lower bound
//	search/      - multi-start tabu search over the tour operators, one
//	               goroutine per trajectory
//	cmd/permtour - command-line front end (solve, eval, version)
//
// Quick example, a 4-element ring where neighbours cost 1:
//
//	    0───1
//	    │   │
//	    3───2
//
//	cm, _ := matrix.NewCostMatrixFromRows([][]float64{
//		{0, 1, 5, 1},
//		{1, 0, 1, 5},
//		{5, 1, 0, 1},
//		{1, 5, 1, 0},
//	})
//	res, _ := search.Run(ctx, cm, search.DefaultConfig())
//	// res.Fitness == 4, res.Gap == 0
//
//	go install github.com/katalvlaran/permtour/cmd/permtour@latest
package permtour
