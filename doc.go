// Package statetree implements a hierarchical state machine, a statechart, as a
// tree of named states of which one branch per level of concurrency is active.
//
// A chart is built by adding sub states to the root and configuring them:
//
//	chart, err := statetree.NewChart()
//	if err != nil {
//		return err
//	}
//	root := chart.Root()
//	idle := root.SubState("idle").DefaultState()
//	running := root.SubState("running").Enter(func(s *statetree.State) error {
//		fmt.Println("running")
//		return nil
//	})
//	if err := chart.Validate(); err != nil {
//		return err
//	}
//
// Transitions are requested with GoTo on the target state. A transition exits the
// active states that are not ancestors of the target, deepest first, and enters
// the path from the nearest active ancestor down to the target and its chain of
// default (or, with DefaultToHistoryState, history) substates:
//
//	if err := running.GoTo(); err != nil {
//		return err
//	}
//	fmt.Println(chart.CurrentStates()) // [running]
//	_ = idle.GoTo()
//
// Enter and exit callbacks never abort a transition. Errors and panics they
// produce are routed to the chart's ErrorHandler. A callback may itself call GoTo
// once per transition; the request is run after the current transition completes.
package statetree
