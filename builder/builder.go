// Package builder declares state trees with functional options instead of chained
// calls:
//
//	chart, err := builder.Chart(
//		builder.State("idle", builder.Default()),
//		builder.State("running",
//			builder.OnEnter(start),
//			builder.State("fast"),
//			builder.State("slow", builder.Default()),
//		),
//	).Build()
package builder

import (
	"github.com/giantswarm/microerror"

	"github.com/dannyduc/statetree"
)

// Option configures a node of the tree.
type Option func(*Node)

// Node is the declaration of one state.
type Node struct {
	name       string
	isDefault  bool
	concurrent bool
	enter      statetree.Callback
	exit       statetree.Callback
	children   []*Node
}

// Tree is the declaration of a whole chart, rooted at an unnamed node whose name
// comes from the chart options.
type Tree struct {
	root *Node
}

// Chart declares a tree whose root is configured by opts.
func Chart(opts ...Option) *Tree {
	root := &Node{}
	for _, opt := range opts {
		opt(root)
	}
	return &Tree{root: root}
}

// State adds a child named name, configured by opts.
func State(name string, opts ...Option) Option {
	return func(n *Node) {
		child := &Node{name: name}
		for _, opt := range opts {
			opt(child)
		}
		n.children = append(n.children, child)
	}
}

// Default makes the state its parent's default substate.
func Default() Option {
	return func(n *Node) { n.isDefault = true }
}

// Concurrent makes the children of the state concurrent regions.
func Concurrent() Option {
	return func(n *Node) { n.concurrent = true }
}

// OnEnter sets the enter callback.
func OnEnter(cb statetree.Callback) Option {
	return func(n *Node) { n.enter = cb }
}

// OnExit sets the exit callback.
func OnExit(cb statetree.Callback) Option {
	return func(n *Node) { n.exit = cb }
}

// Build creates a chart with opts and adds the declared states to it. The chart is
// returned only if the declaration is valid.
func (t *Tree) Build(opts ...statetree.Option) (*statetree.Chart, error) {
	chart, err := statetree.NewChart(opts...)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	apply(chart.Root(), t.root)

	if err := chart.Validate(); err != nil {
		return nil, microerror.Mask(err)
	}
	return chart, nil
}

func apply(s *statetree.State, n *Node) {
	if n.concurrent {
		s.ConcurrentSubStates()
	}
	if n.isDefault {
		s.DefaultState()
	}
	if n.enter != nil {
		s.Enter(n.enter)
	}
	if n.exit != nil {
		s.Exit(n.exit)
	}
	for _, child := range n.children {
		apply(s.SubState(child.name), child)
	}
}
