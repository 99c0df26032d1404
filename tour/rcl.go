package tour

// rclEntry is one ranked candidate of a construction step.
type rclEntry struct {
	cost float64
	city int
}

// rcl is the restricted candidate list of GRCSolution: entries ordered by
// ascending cost, equal costs kept as separate entries in insertion order.
// The backing slice is reused across construction steps.
type rcl struct {
	entries []rclEntry
}

// newRCL returns an empty list with room for n candidates.
func newRCL(n int) *rcl {
	return &rcl{entries: make([]rclEntry, 0, n)}
}

// reset empties the list, keeping its capacity.
func (l *rcl) reset() {
	l.entries = l.entries[:0]
}

// len returns the number of kept entries.
func (l *rcl) len() int {
	return len(l.entries)
}

// city returns the candidate at rank k.
func (l *rcl) city(k int) int {
	return l.entries[k].city
}

// insert places (cost, city) after every entry with cost ≤ cost.
//
// Complexity: O(len) time.
func (l *rcl) insert(cost float64, city int) {
	var pos = len(l.entries)
	for pos > 0 && l.entries[pos-1].cost > cost {
		pos--
	}
	l.entries = append(l.entries, rclEntry{})
	copy(l.entries[pos+1:], l.entries[pos:])
	l.entries[pos] = rclEntry{cost: cost, city: city}
}

// pruneAbove drops every entry whose cost exceeds bound. Entries are sorted,
// so this truncates the tail.
//
// Complexity: O(len) worst case.
func (l *rcl) pruneAbove(bound float64) {
	var k = len(l.entries)
	for k > 0 && l.entries[k-1].cost > bound {
		k--
	}
	l.entries = l.entries[:k]
}
