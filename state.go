package statetree

// StateID is the stable arena index of a state within its chart. The root is 0,
// every other state gets the next index in declaration order.
type StateID int

const detachedID StateID = -1

// Callback is an enter or exit side effect. A returned error, like a panic, is
// routed to the chart's ErrorHandler and never aborts the transition.
type Callback func(s *State) error

type policyKind int

const (
	exclusive policyKind = iota
	concurrent
)

// childPolicy says how the children of a state are activated: one at a time,
// optionally with a default, or as independent concurrent regions which never
// carry a default.
type childPolicy struct {
	kind       policyKind
	defaultSub *State
}

// State is a node of the tree. States are created with NewChart and SubState and
// live as long as their chart.
type State struct {
	id       StateID
	name     string
	chart    *Chart
	parent   *State
	children []*State
	policy   childPolicy
	enterFn  Callback
	exitFn   Callback

	// detached is set for states rejected at creation time. They belong to no
	// tree and can never become active.
	detached bool
}

func (s *State) ID() StateID {
	return s.id
}

func (s *State) Name() string {
	return s.name
}

func (s *State) Chart() *Chart {
	return s.chart
}

// Parent returns the owning state, or nil for the root.
func (s *State) Parent() *State {
	return s.parent
}

// Children returns the direct children in declaration order.
func (s *State) Children() []*State {
	return append([]*State(nil), s.children...)
}

// IsRoot reports whether s is the root of its chart.
func (s *State) IsRoot() bool {
	return !s.detached && s.parent == nil
}

// IsLeaf reports whether s has no children.
func (s *State) IsLeaf() bool {
	return len(s.children) == 0
}

// Concurrent reports whether the children of s are concurrent regions.
func (s *State) Concurrent() bool {
	return s.policy.kind == concurrent
}

// DefaultSubState returns the child entered by default, or nil.
func (s *State) DefaultSubState() *State {
	return s.policy.defaultSub
}

// History returns the most recently exited direct child of s, or nil.
func (s *State) History() *State {
	if s.detached {
		return nil
	}
	i, ok := s.chart.overlay.History(int(s.id))
	if !ok {
		return nil
	}
	return s.chart.states[i]
}

// IsActive reports whether s is on an active path.
func (s *State) IsActive() bool {
	if s.detached {
		return false
	}
	return s.chart.overlay.IsActive(int(s.id))
}

// ActiveSubState returns the first direct child that is active, or nil.
func (s *State) ActiveSubState() *State {
	for _, child := range s.children {
		if child.IsActive() {
			return child
		}
	}
	return nil
}

func (s *State) hasActiveChild() bool {
	return s.ActiveSubState() != nil
}

func (s *State) isChild(child *State) bool {
	return child != nil && !child.detached && child.parent == s
}

func (s *State) String() string {
	return s.name
}
