package core

// TransitionContext serializes re-entrant transition requests for a single chart.
// While a transition runs, requests are parked; one parked request is honored
// once the running transition completes.
type TransitionContext struct {
	inProgress bool
	pending    []int
}

// Begin marks a transition as running. It reports false when one is already in
// progress, in which case the caller should Queue the request instead.
func (t *TransitionContext) Begin() bool {
	if t.inProgress {
		return false
	}
	t.inProgress = true
	return true
}

// End marks the running transition as finished.
func (t *TransitionContext) End() {
	t.inProgress = false
}

// InProgress reports whether a transition is running.
func (t *TransitionContext) InProgress() bool {
	return t.inProgress
}

// Queue parks a request for state i made during the running transition.
func (t *TransitionContext) Queue(i int) {
	t.pending = append(t.pending, i)
}

// Drain empties the pending slot. next is the request to run, or NoState when
// nothing was queued. conflicts holds every request when more than one was
// queued; the caller must treat that as fatal and run none of them.
func (t *TransitionContext) Drain() (next int, conflicts []int) {
	pending := t.pending
	t.pending = nil

	switch len(pending) {
	case 0:
		return NoState, nil
	case 1:
		return pending[0], nil
	default:
		return NoState, pending
	}
}
