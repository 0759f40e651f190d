package domain

import "testing"

func TestTaskStatusValid(t *testing.T) {
	for _, s := range []TaskStatus{StatusTodo, StatusInProgress, StatusDone} {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if TaskStatus("archived").Valid() {
		t.Error("unknown status reported valid")
	}
}

func TestTaskPriorityValid(t *testing.T) {
	for _, p := range []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh} {
		if !p.Valid() {
			t.Errorf("expected %q to be valid", p)
		}
	}
	if TaskPriority("urgent").Valid() {
		t.Error("unknown priority reported valid")
	}
}
