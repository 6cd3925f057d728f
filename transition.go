package statetree

import (
	"strings"

	"github.com/giantswarm/microerror"

	"github.com/dannyduc/statetree/internal/core"
)

// GoTo looks up the state called name and transitions to it.
func (c *Chart) GoTo(name string) error {
	s, ok := c.byName[name]
	if !ok {
		return microerror.Maskf(notFoundError, "state %q", name)
	}
	return s.GoTo()
}

// GoTo makes s active. The tree is walked upwards from s to the nearest active
// ancestor, the pivot. Unless the pivot holds concurrent regions, its other active
// children are exited together with their active sub-trees. Then every state
// between the pivot and s is entered, followed by the chain of history or default
// substates below s.
//
// Exits run deepest first and precede all entries, which run from the pivot down.
// When s is already active nothing happens, except for a root without an active
// child: going to it enters its default or history chain, which is how a chart
// is started.
//
// GoTo calls made by callbacks while a transition runs are queued. One queued call
// is run after the current transition completes; more than one is an invariant
// violation.
func (s *State) GoTo() error {
	c := s.chart

	if s.detached {
		return microerror.Maskf(configurationError, "state %q is not part of the tree", s.name)
	}
	if err := c.Validate(); err != nil {
		return microerror.Mask(err)
	}

	if !c.tc.Begin() {
		c.tc.Queue(int(s.id))
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			// A panicking hook must not leave a transition in progress.
			c.tc.End()
			c.tc.Drain()
			panic(r)
		}
	}()

	err := c.transition(s)
	c.tc.End()
	if err != nil {
		// Requests parked by the failed transition are dropped with it.
		c.tc.Drain()
		return microerror.Mask(err)
	}

	return c.handlePending(s)
}

func (c *Chart) transition(target *State) error {
	var entered, exited []*State

	pivot := moveUpToActive(target, &entered)
	if pivot == nil {
		return microerror.Maskf(invariantViolationError, "state %q has no active ancestor", target.name)
	}
	reverse(entered)

	if pivot == target {
		if !target.IsRoot() || target.hasActiveChild() {
			c.notifyTransitioned(target, target)
			return nil
		}
		// A root without an active child starts the chart by resolving its
		// default chain.
		entered = append(entered, target)
	} else if !pivot.Concurrent() {
		for _, sibling := range pivot.children {
			if sibling == entered[0] || !sibling.IsActive() {
				continue
			}
			exited = append(exited, sibling)
			iterateActive(sibling, func(a *State) {
				exited = append(exited, a)
			})
		}
	}

	expected := target
	for {
		next := c.resolveOne(entered[len(entered)-1])
		if next == nil {
			break
		}
		entered = append(entered, next)
		expected = next
	}
	if pivot == target {
		entered = entered[1:]
	}

	c.exitStates(exited)
	c.enterStates(entered)

	// Callbacks cannot move the chart while it transitions; their GoTo calls are
	// queued. The check guards the resolution above.
	if !containsState(c.CurrentStates(), expected) {
		return microerror.Maskf(invariantViolationError, "expected to go to state %q, but now in states %s", expected.name, stateNames(c.CurrentStates()))
	}

	c.notifyTransitioned(target, expected)
	return nil
}

// resolveOne returns the child that entering s continues into, preferring history
// when the chart asks for it.
func (c *Chart) resolveOne(s *State) *State {
	if c.defaultToHistory {
		if h := s.History(); h != nil {
			return h
		}
	}
	return s.policy.defaultSub
}

func (c *Chart) exitStates(exited []*State) {
	for i := len(exited) - 1; i >= 0; i-- {
		s := exited[i]
		c.overlay.Deactivate(int(s.id))
		if s.parent != nil {
			c.overlay.RecordExit(int(s.parent.id), int(s.id))
		}
		c.notifyExited(s)
		c.safeCallback(s, s.exitFn, PhaseExit)
	}
}

func (c *Chart) enterStates(entered []*State) {
	for _, s := range entered {
		c.overlay.Activate(int(s.id))
		c.notifyEntered(s)
		c.safeCallback(s, s.enterFn, PhaseEnter)
	}
}

// safeCallback runs cb and hands any returned error or panic to the error hook.
func (c *Chart) safeCallback(s *State, cb Callback, phase Phase) {
	if cb == nil {
		return
	}
	if err := runCallback(s, cb, phase); err != nil {
		c.handleError(err, s, phase)
	}
}

func runCallback(s *State, cb Callback, phase Phase) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = microerror.Maskf(callbackFailedError, "%s callback of state %q panicked: %v", phase, s.name, r)
		}
	}()

	if err := cb(s); err != nil {
		return microerror.Maskf(callbackFailedError, "%s callback of state %q: %s", phase, s.name, err)
	}
	return nil
}

func (c *Chart) handlePending(current *State) error {
	next, conflicts := c.tc.Drain()
	if len(conflicts) > 0 {
		names := make([]string, 0, len(conflicts))
		for _, i := range conflicts {
			names = append(names, c.states[i].name)
		}
		return microerror.Maskf(multipleRedirectError, "requested to go to multiple other states %s while using a goTo to enter state %q", strings.Join(names, ","), current.name)
	}
	if next == core.NoState {
		return nil
	}
	return c.states[next].GoTo()
}

// moveUpToActive collects s and its inactive ancestors into entered, deepest first,
// and returns the first active one.
func moveUpToActive(s *State, entered *[]*State) *State {
	for s != nil {
		if s.IsActive() {
			return s
		}
		*entered = append(*entered, s)
		s = s.parent
	}
	return nil
}

func reverse(states []*State) {
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}
}

func containsState(states []*State, s *State) bool {
	for _, x := range states {
		if x == s {
			return true
		}
	}
	return false
}

func stateNames(states []*State) string {
	names := make([]string, 0, len(states))
	for _, s := range states {
		names = append(names, s.name)
	}
	return strings.Join(names, ",")
}
