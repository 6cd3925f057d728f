package statetree

// Observer is notified about state changes. Notifications happen inside the
// transition, before the matching callback runs.
type Observer interface {
	// Entered is called after s became active.
	Entered(s *State)
	// Exited is called after s became inactive and was recorded as its parent's
	// history.
	Exited(s *State)
	// Transitioned is called when a GoTo completed. resolved is the state the
	// transition settled in after default and history resolution.
	Transitioned(requested, resolved *State)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnEntered      func(s *State)
	OnExited       func(s *State)
	OnTransitioned func(requested, resolved *State)
}

func (o ObserverFuncs) Entered(s *State) {
	if o.OnEntered != nil {
		o.OnEntered(s)
	}
}

func (o ObserverFuncs) Exited(s *State) {
	if o.OnExited != nil {
		o.OnExited(s)
	}
}

func (o ObserverFuncs) Transitioned(requested, resolved *State) {
	if o.OnTransitioned != nil {
		o.OnTransitioned(requested, resolved)
	}
}

func (c *Chart) notifyEntered(s *State) {
	for _, o := range c.observers {
		o.Entered(s)
	}
}

func (c *Chart) notifyExited(s *State) {
	for _, o := range c.observers {
		o.Exited(s)
	}
}

func (c *Chart) notifyTransitioned(requested, resolved *State) {
	for _, o := range c.observers {
		o.Transitioned(requested, resolved)
	}
}
