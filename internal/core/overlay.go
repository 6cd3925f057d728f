// Package core provides the runtime tier of the state tree: the active-state overlay,
// the history slots and the per-chart transition context. It works on plain integer
// indices so it has no knowledge of the tree shape.
package core

import (
	"github.com/bits-and-blooms/bitset"
)

// NoState marks an empty history slot.
const NoState = -1

// Overlay tracks which states are active and which child each parent exited last.
// Indices are the arena positions of the owning chart.
type Overlay struct {
	active  *bitset.BitSet
	history []int
}

// NewOverlay creates an overlay with capacity for size states and nothing active.
func NewOverlay(size int) *Overlay {
	o := &Overlay{
		active: bitset.New(uint(size)),
	}
	o.Grow(size)
	return o
}

// Grow makes room for states up to size. Existing slots are kept.
func (o *Overlay) Grow(size int) {
	for len(o.history) < size {
		o.history = append(o.history, NoState)
	}
}

// Activate marks state i active.
func (o *Overlay) Activate(i int) {
	o.active.Set(uint(i))
}

// Deactivate clears the active flag of state i.
func (o *Overlay) Deactivate(i int) {
	o.active.Clear(uint(i))
}

// IsActive reports whether state i is active.
func (o *Overlay) IsActive(i int) bool {
	return o.active.Test(uint(i))
}

// ActiveCount returns the number of active states.
func (o *Overlay) ActiveCount() int {
	return int(o.active.Count())
}

// RecordExit remembers child as the most recently exited child of parent.
func (o *Overlay) RecordExit(parent, child int) {
	o.Grow(parent + 1)
	o.history[parent] = child
}

// History returns the most recently exited child of parent.
func (o *Overlay) History(parent int) (int, bool) {
	if parent < 0 || parent >= len(o.history) {
		return NoState, false
	}
	child := o.history[parent]
	return child, child != NoState
}
