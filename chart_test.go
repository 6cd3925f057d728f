package statetree_test

import (
	"testing"

	"github.com/giantswarm/micrologger/microloggertest"
	"github.com/google/go-cmp/cmp"

	"github.com/dannyduc/statetree"
	"github.com/dannyduc/statetree/testutil"
)

func newChart(t *testing.T, opts ...statetree.Option) *statetree.Chart {
	t.Helper()

	opts = append([]statetree.Option{statetree.WithLogger(microloggertest.New())}, opts...)
	chart, err := statetree.NewChart(opts...)
	if err != nil {
		t.Fatalf("NewChart: %v", err)
	}
	return chart
}

func TestNewChart(t *testing.T) {
	t.Parallel()

	chart := newChart(t)

	if got := chart.Root().Name(); got != "root" {
		t.Errorf("root name = %q, want root", got)
	}
	if !chart.IsActive("root") {
		t.Error("root is not active")
	}
	if !chart.Root().IsRoot() {
		t.Error("root does not report IsRoot")
	}
	if diff := cmp.Diff([]string{"root"}, testutil.Names(chart.CurrentStates())); diff != "" {
		t.Errorf("current states (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"root"}, testutil.Names(chart.ActiveStates())); diff != "" {
		t.Errorf("active states (-want +got):\n%s", diff)
	}
	if chart.DefaultToHistory() {
		t.Error("history preferred by default")
	}
	if err := chart.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestNewChartOptions(t *testing.T) {
	t.Parallel()

	chart := newChart(t, statetree.WithRootName("app"), statetree.WithDefaultToHistory())
	if got := chart.Root().Name(); got != "app" {
		t.Errorf("root name = %q, want app", got)
	}
	if _, ok := chart.StateByName("app"); !ok {
		t.Error("root is not in the name index")
	}
	if !chart.DefaultToHistory() {
		t.Error("WithDefaultToHistory not applied")
	}

	_, err := statetree.NewChart(statetree.WithRootName(""), statetree.WithLogger(microloggertest.New()))
	if !statetree.IsInvalidConfig(err) {
		t.Errorf("empty root name: got %v, want invalid config error", err)
	}
}

func TestStateLookup(t *testing.T) {
	t.Parallel()

	chart := newChart(t)
	a := chart.Root().SubState("a")
	b := a.SubState("b")

	got, ok := chart.StateByName("b")
	if !ok || got != b {
		t.Fatalf("StateByName(b) = %v, %v", got, ok)
	}
	if _, ok := chart.StateByName("missing"); ok {
		t.Error("StateByName found a missing state")
	}
	if chart.IsActive("missing") {
		t.Error("unknown state reported active")
	}
	if b.Parent() != a || a.Parent() != chart.Root() {
		t.Error("parent links are wrong")
	}
	if diff := cmp.Diff([]string{"root", "a", "b"}, testutil.Names(chart.States())); diff != "" {
		t.Errorf("states (-want +got):\n%s", diff)
	}
	if b.ID() != 2 {
		t.Errorf("b.ID() = %d, want 2", b.ID())
	}
	if !b.IsLeaf() || a.IsLeaf() {
		t.Error("IsLeaf is wrong")
	}
}

func TestActiveAndCurrentStates(t *testing.T) {
	t.Parallel()

	chart := newChart(t)
	root := chart.Root()
	multi := root.SubState("multi").ConcurrentSubStates()
	r1 := multi.SubState("region1")
	x := r1.SubState("x")
	r1.SubState("y")
	r2 := multi.SubState("region2")
	p := r2.SubState("p")
	root.SubState("other")

	if err := x.GoTo(); err != nil {
		t.Fatalf("GoTo(x): %v", err)
	}
	if err := p.GoTo(); err != nil {
		t.Fatalf("GoTo(p): %v", err)
	}

	if diff := cmp.Diff([]string{"root", "multi", "region1", "x", "region2", "p"}, testutil.Names(chart.ActiveStates())); diff != "" {
		t.Errorf("active states (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x", "p"}, testutil.Names(chart.CurrentStates())); diff != "" {
		t.Errorf("current states (-want +got):\n%s", diff)
	}
	if got := multi.ActiveSubState(); got != r1 {
		t.Errorf("ActiveSubState(multi) = %v, want region1", got)
	}
	if got := r2.ActiveSubState(); got != p {
		t.Errorf("ActiveSubState(region2) = %v, want p", got)
	}
	if got := x.ActiveSubState(); got != nil {
		t.Errorf("ActiveSubState(x) = %v, want nil", got)
	}
}
