package statetree_test

import (
	"testing"

	"github.com/dannyduc/statetree"
)

func nop(*statetree.State) error { return nil }

func TestConfigurationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(root *statetree.State)
	}{
		{
			name: "default root",
			build: func(root *statetree.State) {
				root.DefaultState()
			},
		},
		{
			name: "enter twice",
			build: func(root *statetree.State) {
				root.SubState("a").Enter(nop).Enter(nop)
			},
		},
		{
			name: "exit twice",
			build: func(root *statetree.State) {
				root.SubState("a").Exit(nop).Exit(nop)
			},
		},
		{
			name: "nil callback",
			build: func(root *statetree.State) {
				root.SubState("a").Enter(nil)
			},
		},
		{
			name: "default then concurrent",
			build: func(root *statetree.State) {
				root.SubState("a").DefaultState()
				root.ConcurrentSubStates()
			},
		},
		{
			name: "concurrent then default",
			build: func(root *statetree.State) {
				root.ConcurrentSubStates()
				root.SubState("a").DefaultState()
			},
		},
		{
			name: "concurrent then change default",
			build: func(root *statetree.State) {
				a := root.SubState("a")
				root.ConcurrentSubStates().ChangeDefaultTo(a)
			},
		},
		{
			name: "default twice",
			build: func(root *statetree.State) {
				root.SubState("a").DefaultState()
				root.SubState("b").DefaultState()
			},
		},
		{
			name: "default to grandchild",
			build: func(root *statetree.State) {
				b := root.SubState("a").SubState("b")
				root.DefaultTo(b)
			},
		},
		{
			name: "default to nil",
			build: func(root *statetree.State) {
				root.DefaultTo(nil)
			},
		},
		{
			name: "duplicate name",
			build: func(root *statetree.State) {
				root.SubState("a")
				root.SubState("b").SubState("a")
			},
		},
		{
			name: "duplicate root name",
			build: func(root *statetree.State) {
				root.SubState("root")
			},
		},
		{
			name: "empty name",
			build: func(root *statetree.State) {
				root.SubState("")
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			chart := newChart(t)
			tc.build(chart.Root())

			err := chart.Validate()
			if !statetree.IsConfiguration(err) {
				t.Fatalf("Validate() = %v, want configuration error", err)
			}
			if len(chart.ConfigErrors()) != 1 {
				t.Errorf("got %d configuration errors, want 1: %v", len(chart.ConfigErrors()), chart.ConfigErrors())
			}
			if err := chart.Root().GoTo(); !statetree.IsConfiguration(err) {
				t.Errorf("GoTo on invalid chart = %v, want configuration error", err)
			}
		})
	}
}

func TestChangeDefaultTo(t *testing.T) {
	t.Parallel()

	chart := newChart(t)
	root := chart.Root()
	a := root.SubState("a").DefaultState()
	b := root.SubState("b")

	if got := root.DefaultSubState(); got != a {
		t.Fatalf("default = %v, want a", got)
	}
	root.ChangeDefaultTo(b)
	if got := root.DefaultSubState(); got != b {
		t.Fatalf("default = %v, want b", got)
	}
	if err := chart.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if err := root.GoTo(); err != nil {
		t.Fatalf("GoTo(root): %v", err)
	}
	if !b.IsActive() || a.IsActive() {
		t.Error("root did not resolve to the changed default")
	}
}

func TestDuplicateNameKeepsFirstState(t *testing.T) {
	t.Parallel()

	chart := newChart(t)
	root := chart.Root()
	first := root.SubState("a")
	dup := root.SubState("a")

	if got, _ := chart.StateByName("a"); got != first {
		t.Error("name index was overwritten by the duplicate")
	}
	if len(root.Children()) != 1 {
		t.Errorf("root has %d children, want 1", len(root.Children()))
	}
	if dup.IsActive() || dup.Parent() != nil || dup.IsRoot() {
		t.Error("duplicate state is attached")
	}
	if err := dup.GoTo(); !statetree.IsConfiguration(err) {
		t.Errorf("GoTo(duplicate) = %v, want configuration error", err)
	}
}

func TestChaining(t *testing.T) {
	t.Parallel()

	chart := newChart(t)
	root := chart.Root()

	a := root.SubState("a")
	if a.DefaultState() != a || a.Enter(nop) != a || a.Exit(nop) != a || a.ConcurrentSubStates() != a {
		t.Error("configuration calls do not return the receiver")
	}
	if !a.Concurrent() {
		t.Error("a is not concurrent")
	}
	if err := chart.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
