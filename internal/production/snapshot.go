package production

import (
	"encoding/json"
	"io"
	"time"

	"github.com/giantswarm/microerror"
	"gopkg.in/yaml.v3"

	"github.com/dannyduc/statetree"
)

// Snapshot is a read-only view of a chart at one point in time. It is meant for
// inspection; there is no way to restore a chart from it.
type Snapshot struct {
	Root             string            `json:"root" yaml:"root"`
	DefaultToHistory bool              `json:"defaultToHistory" yaml:"defaultToHistory"`
	Active           []string          `json:"active" yaml:"active"`
	Current          []string          `json:"current" yaml:"current"`
	History          map[string]string `json:"history,omitempty" yaml:"history,omitempty"`
	Timestamp        time.Time         `json:"timestamp" yaml:"timestamp"`
}

// TakeSnapshot captures the active states, the current states and every recorded
// history slot of chart.
func TakeSnapshot(chart *statetree.Chart) Snapshot {
	snap := Snapshot{
		Root:             chart.Root().Name(),
		DefaultToHistory: chart.DefaultToHistory(),
		Active:           names(chart.ActiveStates()),
		Current:          names(chart.CurrentStates()),
		Timestamp:        time.Now().UTC(),
	}
	for _, s := range chart.States() {
		if h := s.History(); h != nil {
			if snap.History == nil {
				snap.History = map[string]string{}
			}
			snap.History[s.Name()] = h.Name()
		}
	}
	return snap
}

// WriteJSON encodes snap as indented JSON.
func WriteJSON(w io.Writer, snap Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return microerror.Mask(err)
	}
	return nil
}

// WriteYAML encodes snap as YAML.
func WriteYAML(w io.Writer, snap Snapshot) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(snap); err != nil {
		return microerror.Mask(err)
	}
	return nil
}

func names(states []*statetree.State) []string {
	out := make([]string, 0, len(states))
	for _, s := range states {
		out = append(out, s.Name())
	}
	return out
}
