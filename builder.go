package statetree

import "github.com/giantswarm/microerror"

// The methods in this file configure the tree. They return a state so calls can be
// chained. An invalid call leaves the tree unchanged and records a configuration
// error on the chart, which Validate reports and which makes GoTo refuse to run.

// SubState creates a child named name and appends it to s. Names must be unique
// within the chart; a duplicate yields a detached state that is not part of the
// tree.
func (s *State) SubState(name string) *State {
	return s.chart.addState(s, name)
}

// DefaultTo marks child as the substate entered when s is entered without a more
// specific target. It fails if s already has a default or holds concurrent
// regions.
func (s *State) DefaultTo(child *State) *State {
	if s.policy.defaultSub != nil {
		s.chart.configError(microerror.Maskf(configurationError, "state %q already defaults to %q", s.name, s.policy.defaultSub.name))
		return s
	}
	return s.ChangeDefaultTo(child)
}

// ChangeDefaultTo is DefaultTo without the already-set check. It replaces any
// previous default.
func (s *State) ChangeDefaultTo(child *State) *State {
	if !s.assertExclusive() {
		return s
	}
	if !s.isChild(child) {
		s.chart.configError(microerror.Maskf(configurationError, "state %q cannot default to %s, it is not a direct child", s.name, quoted(child)))
		return s
	}
	s.policy.defaultSub = child
	return s
}

// ConcurrentSubStates marks the children of s as independently active regions.
func (s *State) ConcurrentSubStates() *State {
	if !s.assertExclusive() {
		return s
	}
	if s.policy.defaultSub != nil {
		s.chart.configError(microerror.Maskf(configurationError, "state %q cannot have concurrent sub states, it defaults to %q", s.name, s.policy.defaultSub.name))
		return s
	}
	s.policy.kind = concurrent
	return s
}

// DefaultState makes s the default substate of its parent.
func (s *State) DefaultState() *State {
	if s.detached {
		s.chart.configError(microerror.Maskf(configurationError, "state %q is not part of the tree", s.name))
		return s
	}
	if s.parent == nil {
		s.chart.configError(microerror.Maskf(configurationError, "cannot default root state %q", s.name))
		return s
	}
	s.parent.DefaultTo(s)
	return s
}

// Enter attaches the callback run when s becomes active. It can be set once.
func (s *State) Enter(fn Callback) *State {
	if s.assertCallback(s.enterFn, fn, PhaseEnter) {
		s.enterFn = fn
	}
	return s
}

// Exit attaches the callback run when s becomes inactive. It can be set once.
func (s *State) Exit(fn Callback) *State {
	if s.assertCallback(s.exitFn, fn, PhaseExit) {
		s.exitFn = fn
	}
	return s
}

func (s *State) assertExclusive() bool {
	if s.policy.kind == concurrent {
		s.chart.configError(microerror.Maskf(configurationError, "cannot have a default sub state among concurrent states of %q", s.name))
		return false
	}
	return true
}

func (s *State) assertCallback(current, fn Callback, phase Phase) bool {
	if fn == nil {
		s.chart.configError(microerror.Maskf(configurationError, "%s function of state %q must not be nil", phase, s.name))
		return false
	}
	if current != nil {
		s.chart.configError(microerror.Maskf(configurationError, "%s function of state %q already defined", phase, s.name))
		return false
	}
	return true
}

func quoted(s *State) string {
	if s == nil {
		return "<nil>"
	}
	return `"` + s.name + `"`
}
