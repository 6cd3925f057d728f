// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"github.com/giantswarm/micrologger/microloggertest"

	"github.com/dannyduc/statetree"
	"github.com/dannyduc/statetree/definition"
)

func newChart(opts ...statetree.Option) *statetree.Chart {
	opts = append([]statetree.Option{statetree.WithLogger(microloggertest.New())}, opts...)
	chart, err := statetree.NewChart(opts...)
	if err != nil {
		panic(err)
	}
	return chart
}

func mustValid(chart *statetree.Chart) *statetree.Chart {
	if err := chart.Validate(); err != nil {
		panic(err)
	}
	return chart
}

// GenFlatChart creates a root with n leaf states s0..s(n-1); s0 is the default.
func GenFlatChart(n int, opts ...statetree.Option) *statetree.Chart {
	if n < 1 {
		n = 1
	}
	chart := newChart(opts...)
	for i := 0; i < n; i++ {
		s := chart.Root().SubState(fmt.Sprintf("s%d", i))
		if i == 0 {
			s.DefaultState()
		}
	}
	return mustValid(chart)
}

// GenDeepChart nests depth compound states c0..c(depth-1) below the root, each the
// default of its parent, with leaves "a" (default) and "b" at the bottom. A leaf
// "other" next to c0 allows leaving the whole branch.
func GenDeepChart(depth int, opts ...statetree.Option) *statetree.Chart {
	if depth < 1 {
		depth = 1
	}
	chart := newChart(opts...)
	s := chart.Root()
	for i := 0; i < depth; i++ {
		s = s.SubState(fmt.Sprintf("c%d", i)).DefaultState()
	}
	s.SubState("a").DefaultState()
	s.SubState("b")
	chart.Root().SubState("other")
	return mustValid(chart)
}

// GenConcurrentChart creates a concurrent state "regions" holding n regions r0..,
// each with leaves on<i> (default) and off<i>.
func GenConcurrentChart(n int, opts ...statetree.Option) *statetree.Chart {
	if n < 1 {
		n = 1
	}
	chart := newChart(opts...)
	regions := chart.Root().SubState("regions").DefaultState().ConcurrentSubStates()
	for i := 0; i < n; i++ {
		r := regions.SubState(fmt.Sprintf("r%d", i))
		r.SubState(fmt.Sprintf("on%d", i)).DefaultState()
		r.SubState(fmt.Sprintf("off%d", i))
	}
	return mustValid(chart)
}

// GenDefinitionYAML renders a chart definition with n states, either flat below
// the root or nested n levels deep.
func GenDefinitionYAML(n int, hierarchical bool) []byte {
	if n < 1 {
		n = 1
	}
	def := &definition.ChartConfig{Name: "bench"}
	if hierarchical {
		parent := &def.States
		for i := 0; i < n; i++ {
			s := &definition.StateConfig{Name: fmt.Sprintf("s%d", i), Default: true, Enter: "nop"}
			*parent = append(*parent, s)
			parent = &s.States
		}
	} else {
		for i := 0; i < n; i++ {
			def.States = append(def.States, &definition.StateConfig{Name: fmt.Sprintf("s%d", i), Default: i == 0, Enter: "nop"})
		}
	}
	data, err := definition.Marshal(def)
	if err != nil {
		panic(err)
	}
	return data
}
