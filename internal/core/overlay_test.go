package core

import "testing"

func TestOverlay_Active(t *testing.T) {
	o := NewOverlay(2)

	o.Activate(0)
	o.Activate(70)
	if !o.IsActive(0) || !o.IsActive(70) {
		t.Fatal("activated states are not active")
	}
	if o.IsActive(1) || o.IsActive(500) {
		t.Error("inactive states reported active")
	}
	if got := o.ActiveCount(); got != 2 {
		t.Errorf("ActiveCount() = %d, want 2", got)
	}

	o.Deactivate(70)
	if o.IsActive(70) {
		t.Error("deactivated state still active")
	}
}

func TestOverlay_History(t *testing.T) {
	o := NewOverlay(1)

	if _, ok := o.History(0); ok {
		t.Error("fresh overlay has history")
	}
	if _, ok := o.History(-1); ok {
		t.Error("negative index has history")
	}

	o.RecordExit(3, 4)
	o.RecordExit(3, 5)
	child, ok := o.History(3)
	if !ok || child != 5 {
		t.Errorf("History(3) = %d, %v, want 5 true", child, ok)
	}
	if _, ok := o.History(2); ok {
		t.Error("grown slot has history")
	}
}
