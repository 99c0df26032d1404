package search

import "github.com/katalvlaran/permtour/tour"

// TabuList is a fixed-capacity FIFO of recently applied swaps. Once full, a
// Push evicts the oldest move. A zero tenure disables the list.
//
// Not goroutine-safe; each trajectory owns its list.
type TabuList struct {
	moves []tour.Move // ring buffer, len == tenure
	head  int         // index of the oldest move
	size  int
}

// NewTabuList returns an empty list holding at most tenure moves.
// A negative tenure is treated as zero.
// Complexity: O(tenure).
func NewTabuList(tenure int) *TabuList {
	if tenure < 0 {
		tenure = 0
	}

	return &TabuList{moves: make([]tour.Move, tenure)}
}

// Len reports how many moves are currently tabu.
func (l *TabuList) Len() int {
	return l.size
}

// Contains reports whether m is tabu. tour.NoMove is never tabu.
// Complexity: O(tenure).
func (l *TabuList) Contains(m tour.Move) bool {
	if m.IsNone() {
		return false
	}
	var i int
	for i = 0; i < l.size; i++ {
		if l.moves[(l.head+i)%len(l.moves)] == m {
			return true
		}
	}

	return false
}

// Push records m as the newest tabu move. tour.NoMove is ignored.
// Complexity: O(1).
func (l *TabuList) Push(m tour.Move) {
	if len(l.moves) == 0 || m.IsNone() {
		return
	}
	if l.size < len(l.moves) {
		l.moves[(l.head+l.size)%len(l.moves)] = m
		l.size++
		return
	}
	l.moves[l.head] = m // overwrite the oldest
	l.head = (l.head + 1) % len(l.moves)
}
