package tour_test

import (
	"testing"

	"github.com/katalvlaran/permtour/tour"
	"github.com/stretchr/testify/require"
)

func TestRCL_OrdersByCostAndKeepsDuplicates(t *testing.T) {
	p := tour.NewRCLProbe()
	p.Insert(3, 1)
	p.Insert(1, 2)
	p.Insert(3, 4)
	p.Insert(1, 5)
	p.Insert(2, 0)

	require.Equal(t, []int{2, 5, 0, 1, 4}, p.Cities())

	p.PruneAbove(2)
	require.Equal(t, []int{2, 5, 0}, p.Cities())

	p.PruneAbove(1)
	require.Equal(t, []int{2, 5}, p.Cities())

	p.PruneAbove(0.5)
	require.Empty(t, p.Cities())
}

func TestRCL_ResetKeepsNothing(t *testing.T) {
	p := tour.NewRCLProbe()
	p.Insert(1, 1)
	p.Reset()
	require.Empty(t, p.Cities())
	p.Insert(4, 2)
	require.Equal(t, []int{2}, p.Cities())
}
