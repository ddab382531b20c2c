package engine

// Matcher evaluates patterns in priority order and reports the first success.
// The order decides which booster an oversized match creates.
type Matcher struct {
	patterns []Pattern
}

// NewMatcher returns a matcher with the standard priority:
// T-shape, square, horizontal run, vertical run.
func NewMatcher() *Matcher {
	return NewMatcherWith(TPattern{}, SquarePattern{}, HorizontalRun(), VerticalRun())
}

// NewMatcherWith returns a matcher over the given patterns, tried in order.
func NewMatcherWith(patterns ...Pattern) *Matcher {
	return &Matcher{patterns: patterns}
}

// Patterns returns the patterns in priority order.
func (m *Matcher) Patterns() []Pattern {
	return m.patterns
}

// Match evaluates every pattern at i. The occupant of i must be a figure.
func (m *Matcher) Match(b *Board, i Index) (Match, bool) {
	if !b.Get(i).IsFigure() {
		return Match{}, false
	}
	for _, p := range m.patterns {
		if res, ok := p.Match(b, i); ok {
			return res, true
		}
	}
	return Match{}, false
}

// ProxyMatch reports whether swapping a and z would have an effect, without
// swapping. For two figures each colour is overlaid on the other cell, every
// pattern is probed at both overlaid cells, and the overlays are removed before
// returning. A figure paired with a booster reports true without probing,
// since Select fires the booster for any such swap. Two boosters or an empty
// cell never have an effect. Occupants are never touched.
func (m *Matcher) ProxyMatch(b *Board, a, z Index) bool {
	if !b.CanSwap(a, z) {
		return false
	}
	pa, pz := b.Get(a), b.Get(z)
	if pa.IsBooster() != pz.IsBooster() {
		return !pa.IsEmpty() && !pz.IsEmpty()
	}
	ca, okA := pa.Color()
	cz, okZ := pz.Color()
	if !okA || !okZ {
		return false
	}
	b.AddProxy(cz, a)
	b.AddProxy(ca, z)
	probes := [2]Index{a, z}
	defer func() {
		for _, i := range probes {
			b.RemoveProxy(i)
		}
	}()

	for _, p := range m.patterns {
		for _, i := range probes {
			if p.Probe(b, i) {
				return true
			}
		}
	}
	return false
}
