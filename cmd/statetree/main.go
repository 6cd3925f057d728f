// Command statetree loads a YAML chart definition, walks it through the states
// named on the command line and prints where it ended up.
//
//	STATETREE_CHART=player.yaml statetree playing fast stopped
//
// Settings are read from the environment: STATETREE_CHART, STATETREE_FORMAT
// (text, json, yaml or dot), STATETREE_DEBUG, STATETREE_HISTORY and
// STATETREE_EVENTS.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/dannyduc/statetree"
	"github.com/dannyduc/statetree/definition"
	"github.com/dannyduc/statetree/internal/config"
	"github.com/dannyduc/statetree/internal/production"
	"github.com/dannyduc/statetree/observer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		exitf("statetree: %s", err)
	}
	if cfg.Chart == "" {
		exitf("statetree: STATETREE_CHART is not set")
	}

	if err := run(cfg, os.Args[1:], os.Stdout); err != nil {
		if cfg.Debug {
			exitf("statetree: %s", microerror.JSON(err))
		}
		exitf("statetree: %s", err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func run(cfg config.Config, targets []string, out io.Writer) error {
	ctx := context.Background()

	var logger micrologger.Logger
	{
		w := io.Discard
		if cfg.Debug {
			w = os.Stderr
		}
		var err error
		logger, err = micrologger.New(micrologger.Config{IOWriter: w})
		if err != nil {
			return microerror.Mask(err)
		}
	}

	def, err := definition.Load(cfg.Chart)
	if err != nil {
		return microerror.Mask(err)
	}
	if cfg.History {
		def.DefaultToHistory = true
	}

	registry := prometheus.NewRegistry()
	metrics, err := observer.NewMetrics(observer.MetricsConfig{
		Registerer: registry,
		Chart:      def.RootName(),
	})
	if err != nil {
		return microerror.Mask(err)
	}

	opts := []statetree.Option{
		statetree.WithLogger(logger),
		statetree.WithObserver(metrics),
	}
	if cfg.Debug {
		opts = append(opts, statetree.WithObserver(observer.NewLog(logger)))
	}

	var events chan observer.Event
	var forwarder *observer.Channel
	if cfg.Events > 0 {
		events = make(chan observer.Event, cfg.Events)
		forwarder = observer.NewChannel(events)
		opts = append(opts, statetree.WithObserver(forwarder))
	}

	chart, err := definition.Build(def, callbacks(ctx, def, logger), opts...)
	if err != nil {
		return microerror.Mask(err)
	}
	chart.SetErrorHandler(metrics.CountErrors(func(err error, s *statetree.State, phase statetree.Phase) {
		logger.Errorf(ctx, err, "%s callback of state %q failed", phase, s.Name())
	}))

	if len(targets) == 0 {
		targets = []string{chart.Root().Name()}
	}
	text := cfg.Format == "text"
	for _, target := range targets {
		if err := chart.GoTo(target); err != nil {
			return microerror.Mask(err)
		}
		if text {
			fmt.Fprintf(out, "%s -> %s\n", target, names(chart.CurrentStates()))
		}
		if events != nil {
			drain(events, out, text)
		}
	}
	if forwarder != nil && forwarder.Dropped() > 0 {
		logger.Debugf(ctx, "dropped %d events", forwarder.Dropped())
	}

	switch cfg.Format {
	case "json":
		err = production.WriteJSON(out, production.TakeSnapshot(chart))
	case "yaml":
		err = production.WriteYAML(out, production.TakeSnapshot(chart))
	case "dot":
		_, err = io.WriteString(out, production.ExportDOT(chart))
	}
	if err != nil {
		return microerror.Mask(err)
	}

	if cfg.Debug {
		if err := printCounters(registry, os.Stderr); err != nil {
			return microerror.Mask(err)
		}
	}

	return nil
}

// callbacks registers a logging callback for every name the definition uses.
func callbacks(ctx context.Context, def *definition.ChartConfig, logger micrologger.Logger) definition.Registry {
	reg := definition.Registry{}
	for _, name := range def.Root().Callbacks() {
		name := name
		reg[name] = func(s *statetree.State) error {
			logger.Debugf(ctx, "callback %s on %s", name, s.Name())
			return nil
		}
	}
	return reg
}

func drain(events <-chan observer.Event, out io.Writer, print bool) {
	for {
		select {
		case e := <-events:
			if !print {
				continue
			}
			switch e.Kind {
			case observer.KindExited:
				fmt.Fprintf(out, "  %s %s (history of %s)\n", e.Kind, e.State, e.Parent)
			case observer.KindTransitioned:
				fmt.Fprintf(out, "  %s %s (requested %s)\n", e.Kind, e.State, e.Requested)
			default:
				fmt.Fprintf(out, "  %s %s\n", e.Kind, e.State)
			}
		default:
			return
		}
	}
}

func printCounters(g prometheus.Gatherer, w io.Writer) error {
	families, err := g.Gather()
	if err != nil {
		return microerror.Mask(err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fmt.Fprintf(w, "%s{%s} %g\n", mf.GetName(), labels(m), m.GetCounter().GetValue())
		}
	}
	return nil
}

func labels(m *dto.Metric) string {
	pairs := make([]string, 0, len(m.GetLabel()))
	for _, l := range m.GetLabel() {
		pairs = append(pairs, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func names(states []*statetree.State) string {
	out := make([]string, 0, len(states))
	for _, s := range states {
		out = append(out, s.Name())
	}
	return "[" + strings.Join(out, " ") + "]"
}
