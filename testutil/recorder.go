// Package testutil provides fixtures shared by the state tree tests: an observer
// that records what happened and callbacks that count their invocations.
package testutil

import (
	"errors"
	"strings"

	"github.com/dannyduc/statetree"
)

// Recorder is an Observer that records every notification as "enter:<name>",
// "exit:<name>" or "goto:<requested>-><resolved>".
type Recorder struct {
	Events []string
}

func (r *Recorder) Entered(s *statetree.State) {
	r.Events = append(r.Events, "enter:"+s.Name())
}

func (r *Recorder) Exited(s *statetree.State) {
	r.Events = append(r.Events, "exit:"+s.Name())
}

func (r *Recorder) Transitioned(requested, resolved *statetree.State) {
	r.Events = append(r.Events, "goto:"+requested.Name()+"->"+resolved.Name())
}

// Filter returns the recorded events starting with prefix.
func (r *Recorder) Filter(prefix string) []string {
	var out []string
	for _, e := range r.Events {
		if strings.HasPrefix(e, prefix) {
			out = append(out, e)
		}
	}
	return out
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.Events = nil
}

// Counter counts callback invocations per state name.
type Counter struct {
	Calls map[string]int
}

// NewCounter creates an empty Counter.
func NewCounter() *Counter {
	return &Counter{Calls: map[string]int{}}
}

// Callback returns a callback that counts its calls.
func (c *Counter) Callback() statetree.Callback {
	return func(s *statetree.State) error {
		c.Calls[s.Name()]++
		return nil
	}
}

// ErrFailing is what Failing callbacks return.
var ErrFailing = errors.New("failing callback")

// Failing returns a callback that always returns ErrFailing.
func Failing() statetree.Callback {
	return func(s *statetree.State) error {
		return ErrFailing
	}
}

// Names maps states to their names.
func Names(states []*statetree.State) []string {
	names := make([]string, 0, len(states))
	for _, s := range states {
		names = append(names, s.Name())
	}
	return names
}

// HandledError is one invocation of an ErrorHandler.
type HandledError struct {
	Err   error
	State string
	Phase statetree.Phase
}

// ErrorSink collects everything handed to its Handler.
type ErrorSink struct {
	Handled []HandledError
}

func (e *ErrorSink) Handler() statetree.ErrorHandler {
	return func(err error, s *statetree.State, phase statetree.Phase) {
		e.Handled = append(e.Handled, HandledError{Err: err, State: s.Name(), Phase: phase})
	}
}
