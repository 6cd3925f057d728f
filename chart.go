package statetree

import (
	"context"
	"fmt"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"

	"github.com/dannyduc/statetree/internal/core"
)

// Phase tells which kind of callback failed.
type Phase int

const (
	PhaseEnter Phase = iota
	PhaseExit
)

func (p Phase) String() string {
	switch p {
	case PhaseEnter:
		return "enter"
	case PhaseExit:
		return "exit"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ErrorHandler receives failures of enter and exit callbacks. err is a
// callbackFailedError wrapping what the callback returned or panicked with.
type ErrorHandler func(err error, s *State, phase Phase)

// Chart is the runtime overlay of a state tree: the active states, the name index,
// the transition entry point and the error hook. A Chart is not safe for
// concurrent use.
type Chart struct {
	root   *State
	states []*State
	byName map[string]*State

	overlay *core.Overlay
	tc      core.TransitionContext

	rootName         string
	defaultToHistory bool
	handleError      ErrorHandler
	logger           micrologger.Logger
	observers        []Observer

	configErrs []error
}

// NewChart creates a chart holding only its root state, which is already active.
func NewChart(opts ...Option) (*Chart, error) {
	c := &Chart{
		byName:   map[string]*State{},
		rootName: defaultRootName,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.rootName == "" {
		return nil, microerror.Maskf(invalidConfigError, "root name must not be empty")
	}
	if c.logger == nil {
		l, err := micrologger.New(micrologger.Config{})
		if err != nil {
			return nil, microerror.Mask(err)
		}
		c.logger = l
	}
	if c.handleError == nil {
		c.handleError = c.logError
	}

	c.root = &State{
		id:    0,
		name:  c.rootName,
		chart: c,
	}
	c.states = append(c.states, c.root)
	c.byName[c.rootName] = c.root

	c.overlay = core.NewOverlay(1)
	c.overlay.Activate(int(c.root.id))

	return c, nil
}

// Root returns the root state.
func (c *Chart) Root() *State {
	return c.root
}

// States returns every state of the tree ordered by ID.
func (c *Chart) States() []*State {
	return append([]*State(nil), c.states...)
}

// StateByName looks a state up in the name index.
func (c *Chart) StateByName(name string) (*State, bool) {
	s, ok := c.byName[name]
	return s, ok
}

// IsActive reports whether the state called name is active. Unknown names are
// never active.
func (c *Chart) IsActive(name string) bool {
	s, ok := c.byName[name]
	if !ok {
		return false
	}
	return s.IsActive()
}

// DefaultToHistory reports whether entering a compound state prefers its history.
func (c *Chart) DefaultToHistory() bool {
	return c.defaultToHistory
}

// DefaultToHistoryState makes every later transition prefer a state's recorded
// history over its default substate.
func (c *Chart) DefaultToHistoryState() {
	c.defaultToHistory = true
}

// SetErrorHandler replaces the callback error hook. A nil handler restores the
// default, which logs the error and its stack.
func (c *Chart) SetErrorHandler(h ErrorHandler) {
	if h == nil {
		h = c.logError
	}
	c.handleError = h
}

// Validate returns the first configuration error recorded while building the tree.
func (c *Chart) Validate() error {
	if len(c.configErrs) == 0 {
		return nil
	}
	return c.configErrs[0]
}

// ConfigErrors returns every configuration error recorded so far.
func (c *Chart) ConfigErrors() []error {
	return append([]error(nil), c.configErrs...)
}

// ActiveStates returns the root followed by every active state in pre-order, so a
// parent always precedes its active children.
func (c *Chart) ActiveStates() []*State {
	actives := []*State{c.root}
	iterateActive(c.root, func(s *State) {
		actives = append(actives, s)
	})
	return actives
}

// CurrentStates returns the active leaves: active states without an active child.
// The result is never empty; the root is returned when nothing below it is active.
func (c *Chart) CurrentStates() []*State {
	var leaves []*State
	iterateActive(c.root, func(s *State) {
		if !s.hasActiveChild() {
			leaves = append(leaves, s)
		}
	})
	if len(leaves) == 0 {
		return []*State{c.root}
	}
	return leaves
}

func (c *Chart) addState(parent *State, name string) *State {
	s := &State{
		id:    detachedID,
		name:  name,
		chart: c,
	}

	if parent.detached {
		c.configError(microerror.Maskf(configurationError, "cannot add sub state %q to %q, it is not part of the tree", name, parent.name))
		s.detached = true
		return s
	}
	if name == "" {
		c.configError(microerror.Maskf(configurationError, "sub state of %q must have a name", parent.name))
		s.detached = true
		return s
	}
	if existing, ok := c.byName[name]; ok {
		c.configError(microerror.Maskf(configurationError, "state name %q is already used below %q", name, existing.parentName()))
		s.detached = true
		return s
	}

	s.id = StateID(len(c.states))
	s.parent = parent
	parent.children = append(parent.children, s)
	c.states = append(c.states, s)
	c.byName[name] = s
	c.overlay.Grow(len(c.states))

	return s
}

func (c *Chart) configError(err error) {
	c.configErrs = append(c.configErrs, err)
	c.logger.Debugf(context.Background(), "rejected configuration: %s", err)
}

func (c *Chart) logError(err error, s *State, phase Phase) {
	c.logger.Errorf(context.Background(), err, "%s callback of state %q failed", phase, s.name)
}

func (s *State) parentName() string {
	if s.parent == nil {
		return "<none>"
	}
	return s.parent.name
}

// iterateActive walks the active descendants of s in pre-order.
func iterateActive(s *State, fn func(*State)) {
	for _, child := range s.children {
		if child.IsActive() {
			fn(child)
			iterateActive(child, fn)
		}
	}
}
