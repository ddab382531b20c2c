package engine

import "testing"

func TestObjectiveDecreaseClamps(t *testing.T) {
	o := NewObjectives([]Objective{{Color: Red, Remaining: 1}})

	if !o.DecreaseBy(Red, 5) {
		t.Fatal("DecreaseBy() reported no change")
	}
	if got := o.Remaining(Red); got != 0 {
		t.Errorf("Remaining() = %d, expected 0", got)
	}
	if o.Decrease(Red) {
		t.Error("Decrease() on a finished objective should report no change")
	}
	if got := o.Remaining(Red); got != 0 {
		t.Errorf("Remaining() = %d after extra decrease, expected 0", got)
	}
}

func TestObjectivesCompleted(t *testing.T) {
	o := NewObjectives([]Objective{
		{Color: Blue, Remaining: 2},
		{Color: Green, Remaining: 1},
	})

	tests := []struct {
		color     Color
		changed   bool
		completed bool
	}{
		{Red, false, false},
		{Blue, true, false},
		{Green, true, false},
		{Green, false, false},
		{Blue, true, true},
	}
	for i, tt := range tests {
		if got := o.Decrease(tt.color); got != tt.changed {
			t.Errorf("step %d: Decrease(%v) = %v, expected %v", i, tt.color, got, tt.changed)
		}
		if got := o.Completed(); got != tt.completed {
			t.Errorf("step %d: Completed() = %v, expected %v", i, got, tt.completed)
		}
	}
}

func TestObjectivesListIsCopy(t *testing.T) {
	o := NewObjectives([]Objective{{Color: Orange, Remaining: 3}, {Color: Violet, Remaining: -2}})
	list := o.List()
	list[0].Remaining = 0

	if o.Remaining(Orange) != 3 {
		t.Error("List() must return a copy")
	}
	if o.Remaining(Violet) != 0 {
		t.Errorf("negative counts should be clamped, got %d", o.Remaining(Violet))
	}
}
