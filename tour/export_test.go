package tour

// RCLProbe exposes the restricted candidate list to black-box tests.
type RCLProbe struct{ l *rcl }

// NewRCLProbe returns an empty probe.
func NewRCLProbe() *RCLProbe { return &RCLProbe{l: newRCL(0)} }

func (p *RCLProbe) Insert(cost float64, city int) { p.l.insert(cost, city) }
func (p *RCLProbe) PruneAbove(bound float64)      { p.l.pruneAbove(bound) }
func (p *RCLProbe) Reset()                        { p.l.reset() }

// Cities returns the kept candidates in rank order.
func (p *RCLProbe) Cities() []int {
	out := make([]int, p.l.len())
	for i := range out {
		out[i] = p.l.city(i)
	}
	return out
}

// DeriveSeed exposes deriveSeed.
var DeriveSeed = deriveSeed
