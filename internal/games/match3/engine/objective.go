package engine

// Objective tracks how many figures of one colour remain to be destroyed.
type Objective struct {
	Color     Color
	Remaining int
}

// Done reports whether nothing remains.
func (o Objective) Done() bool { return o.Remaining == 0 }

// Objectives is the set of level goals. Counts only ever go down.
type Objectives struct {
	items []Objective
}

// NewObjectives copies goals into a new set. Negative counts are clamped to 0.
func NewObjectives(goals []Objective) *Objectives {
	items := make([]Objective, len(goals))
	copy(items, goals)
	for i := range items {
		if items[i].Remaining < 0 {
			items[i].Remaining = 0
		}
	}
	return &Objectives{items: items}
}

// Decrease counts one destroyed figure of colour c.
func (o *Objectives) Decrease(c Color) bool {
	return o.DecreaseBy(c, 1)
}

// DecreaseBy lowers the objective tracking c by n, stopping at zero.
// It reports whether a count changed.
func (o *Objectives) DecreaseBy(c Color, n int) bool {
	if n <= 0 {
		return false
	}
	for i := range o.items {
		if o.items[i].Color != c {
			continue
		}
		if o.items[i].Remaining == 0 {
			return false
		}
		o.items[i].Remaining = max(o.items[i].Remaining-n, 0)
		return true
	}
	return false
}

// Remaining returns the count left for c, or 0 when c is not tracked.
func (o *Objectives) Remaining(c Color) int {
	for _, it := range o.items {
		if it.Color == c {
			return it.Remaining
		}
	}
	return 0
}

// Completed reports whether every objective is done.
func (o *Objectives) Completed() bool {
	for _, it := range o.items {
		if !it.Done() {
			return false
		}
	}
	return true
}

// List returns a copy of the objectives in configuration order.
func (o *Objectives) List() []Objective {
	out := make([]Objective, len(o.items))
	copy(out, o.items)
	return out
}
