// Package observer provides statetree observers for debugging and monitoring.
package observer

import (
	"context"

	"github.com/giantswarm/micrologger"

	"github.com/dannyduc/statetree"
)

// Log writes every enter and exit of a chart to a logger at debug level.
type Log struct {
	logger micrologger.Logger
}

// NewLog creates a Log observer writing to logger.
func NewLog(logger micrologger.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Entered(s *statetree.State) {
	l.logger.Debugf(context.Background(), "entering %s", s.Name())
}

func (l *Log) Exited(s *statetree.State) {
	parent := "<none>"
	if p := s.Parent(); p != nil {
		parent = p.Name()
	}
	l.logger.Debugf(context.Background(), "exiting %s history of %s", s.Name(), parent)
}

func (l *Log) Transitioned(requested, resolved *statetree.State) {
	if requested == resolved {
		l.logger.Debugf(context.Background(), "now in %s", resolved.Name())
		return
	}
	l.logger.Debugf(context.Background(), "now in %s, requested %s", resolved.Name(), requested.Name())
}
