// Package definition describes state trees as YAML documents and builds charts
// from them. Callbacks are referenced by name and bound through a Registry.
//
//	name: player
//	defaultToHistory: true
//	states:
//	  - name: stopped
//	    default: true
//	  - name: playing
//	    enter: startAudio
//	    exit: stopAudio
//	    states:
//	      - name: normal
//	        default: true
//	      - name: fast
package definition

import (
	"strings"

	"github.com/giantswarm/microerror"
)

// StateConfig declares one state and its sub-tree.
type StateConfig struct {
	Name       string         `json:"name" yaml:"name"`
	Default    bool           `json:"default,omitempty" yaml:"default,omitempty"`
	Concurrent bool           `json:"concurrent,omitempty" yaml:"concurrent,omitempty"`
	Enter      string         `json:"enter,omitempty" yaml:"enter,omitempty"`
	Exit       string         `json:"exit,omitempty" yaml:"exit,omitempty"`
	States     []*StateConfig `json:"states,omitempty" yaml:"states,omitempty"`
}

// State creates and appends a child declaration, returning it for chaining.
func (s *StateConfig) State(name string) *StateConfig {
	child := &StateConfig{Name: name}
	s.States = append(s.States, child)
	return child
}

// Validate checks s and its sub-tree. seen collects the names met so far.
func (s *StateConfig) Validate(seen map[string]struct{}) error {
	if strings.TrimSpace(s.Name) == "" {
		return microerror.Maskf(invalidDefinitionError, "state name is required")
	}
	if _, ok := seen[s.Name]; ok {
		return microerror.Maskf(invalidDefinitionError, "state name %q is used twice", s.Name)
	}
	seen[s.Name] = struct{}{}

	defaults := 0
	for i, child := range s.States {
		if child == nil {
			return microerror.Maskf(invalidDefinitionError, "child %d of %q is empty", i, s.Name)
		}
		if child.Default {
			defaults++
		}
	}
	if defaults > 0 && s.Concurrent {
		return microerror.Maskf(invalidDefinitionError, "concurrent state %q cannot have a default sub state", s.Name)
	}
	if defaults > 1 {
		return microerror.Maskf(invalidDefinitionError, "state %q has %d default sub states", s.Name, defaults)
	}

	for _, child := range s.States {
		if err := child.Validate(seen); err != nil {
			return microerror.Mask(err)
		}
	}

	return nil
}

// Callbacks returns the callback names referenced by s and its sub-tree.
func (s *StateConfig) Callbacks() []string {
	var names []string
	if s.Enter != "" {
		names = append(names, s.Enter)
	}
	if s.Exit != "" {
		names = append(names, s.Exit)
	}
	for _, child := range s.States {
		names = append(names, child.Callbacks()...)
	}
	return names
}
