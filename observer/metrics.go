package observer

import (
	"github.com/giantswarm/microerror"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dannyduc/statetree"
)

const (
	namespace = "statetree"

	labelState = "state"
	labelPhase = "phase"
)

type MetricsConfig struct {
	Registerer prometheus.Registerer

	// Chart is added to every series as the "chart" label. Optional.
	Chart string
}

// Metrics counts enters, exits, transitions and callback failures.
type Metrics struct {
	entered        *prometheus.CounterVec
	exited         *prometheus.CounterVec
	transitions    *prometheus.CounterVec
	callbackErrors *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with config.Registerer.
func NewMetrics(config MetricsConfig) (*Metrics, error) {
	if config.Registerer == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Registerer must not be empty", config)
	}

	var constLabels prometheus.Labels
	if config.Chart != "" {
		constLabels = prometheus.Labels{"chart": config.Chart}
	}

	m := &Metrics{
		entered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "state",
			Name:        "entered_total",
			Help:        "Number of times a state became active.",
			ConstLabels: constLabels,
		}, []string{labelState}),
		exited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "state",
			Name:        "exited_total",
			Help:        "Number of times a state became inactive.",
			ConstLabels: constLabels,
		}, []string{labelState}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "transitions_total",
			Help:        "Number of completed transitions by resolved target state.",
			ConstLabels: constLabels,
		}, []string{labelState}),
		callbackErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "callback_errors_total",
			Help:        "Number of failed enter and exit callbacks.",
			ConstLabels: constLabels,
		}, []string{labelState, labelPhase}),
	}

	for _, c := range []prometheus.Collector{m.entered, m.exited, m.transitions, m.callbackErrors} {
		if err := config.Registerer.Register(c); err != nil {
			return nil, microerror.Mask(err)
		}
	}

	return m, nil
}

func (m *Metrics) Entered(s *statetree.State) {
	m.entered.WithLabelValues(s.Name()).Inc()
}

func (m *Metrics) Exited(s *statetree.State) {
	m.exited.WithLabelValues(s.Name()).Inc()
}

func (m *Metrics) Transitioned(requested, resolved *statetree.State) {
	m.transitions.WithLabelValues(resolved.Name()).Inc()
}

// CountErrors wraps next so that every callback failure is counted before next
// handles it. A nil next only counts.
func (m *Metrics) CountErrors(next statetree.ErrorHandler) statetree.ErrorHandler {
	return func(err error, s *statetree.State, phase statetree.Phase) {
		m.callbackErrors.WithLabelValues(s.Name(), phase.String()).Inc()
		if next != nil {
			next(err, s, phase)
		}
	}
}
