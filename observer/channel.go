package observer

import (
	"github.com/dannyduc/statetree"
)

// Kind tells what an Event reports.
type Kind string

const (
	KindEntered      Kind = "entered"
	KindExited       Kind = "exited"
	KindTransitioned Kind = "transitioned"
)

// Event is one notification forwarded by Channel. Requested is only set for
// KindTransitioned. Parent is the state whose history an exit updated.
type Event struct {
	Kind      Kind
	State     string
	Parent    string
	Requested string
}

// Channel forwards notifications to a Go channel. Sends never block: events are
// dropped when the channel is full, and the number of drops is kept.
type Channel struct {
	ch      chan<- Event
	dropped int
}

// NewChannel creates a Channel sending to ch.
func NewChannel(ch chan<- Event) *Channel {
	return &Channel{ch: ch}
}

// Dropped returns how many events did not fit into the channel.
func (c *Channel) Dropped() int {
	return c.dropped
}

func (c *Channel) Entered(s *statetree.State) {
	c.send(Event{Kind: KindEntered, State: s.Name()})
}

func (c *Channel) Exited(s *statetree.State) {
	e := Event{Kind: KindExited, State: s.Name()}
	if p := s.Parent(); p != nil {
		e.Parent = p.Name()
	}
	c.send(e)
}

func (c *Channel) Transitioned(requested, resolved *statetree.State) {
	c.send(Event{Kind: KindTransitioned, State: resolved.Name(), Requested: requested.Name()})
}

func (c *Channel) send(e Event) {
	select {
	case c.ch <- e:
	default:
		c.dropped++
	}
}
