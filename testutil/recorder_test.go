package testutil

import (
	"testing"

	"github.com/giantswarm/micrologger/microloggertest"
	"github.com/google/go-cmp/cmp"

	"github.com/dannyduc/statetree"
)

func TestRecorderAndCounter(t *testing.T) {
	rec := &Recorder{}
	counter := NewCounter()
	sink := &ErrorSink{}

	chart, err := statetree.NewChart(
		statetree.WithLogger(microloggertest.New()),
		statetree.WithObserver(rec),
		statetree.WithErrorHandler(sink.Handler()),
	)
	if err != nil {
		t.Fatalf("NewChart: %v", err)
	}
	a := chart.Root().SubState("a").DefaultState().Enter(counter.Callback()).Exit(Failing())
	chart.Root().SubState("b")

	if err := chart.Root().GoTo(); err != nil {
		t.Fatalf("GoTo(root): %v", err)
	}
	if err := chart.GoTo("b"); err != nil {
		t.Fatalf("GoTo(b): %v", err)
	}

	want := []string{"enter:a", "goto:root->a", "exit:a", "enter:b", "goto:b->b"}
	if diff := cmp.Diff(want, rec.Events); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"exit:a"}, rec.Filter("exit:")); diff != "" {
		t.Errorf("filtered events (-want +got):\n%s", diff)
	}
	if counter.Calls[a.Name()] != 1 {
		t.Errorf("enter callback ran %d times, want 1", counter.Calls[a.Name()])
	}
	if len(sink.Handled) != 1 || sink.Handled[0].State != "a" || sink.Handled[0].Phase != statetree.PhaseExit {
		t.Fatalf("unexpected handled errors %+v", sink.Handled)
	}
	if !statetree.IsCallbackFailed(sink.Handled[0].Err) {
		t.Errorf("handled error %v is not a callback failure", sink.Handled[0].Err)
	}
	if diff := cmp.Diff([]string{"root", "b"}, Names(chart.ActiveStates())); diff != "" {
		t.Errorf("active states (-want +got):\n%s", diff)
	}

	rec.Reset()
	if len(rec.Events) != 0 {
		t.Error("Reset kept events")
	}
}
