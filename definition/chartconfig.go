package definition

import (
	"bytes"
	"os"
	"sort"
	"strings"

	"github.com/giantswarm/microerror"
	"gopkg.in/yaml.v3"

	"github.com/dannyduc/statetree"
	"github.com/dannyduc/statetree/builder"
)

const defaultRootName = "root"

// ChartConfig is a whole chart document. The root state is implicit; its name
// defaults to "root".
type ChartConfig struct {
	Name             string         `json:"name,omitempty" yaml:"name,omitempty"`
	DefaultToHistory bool           `json:"defaultToHistory,omitempty" yaml:"defaultToHistory,omitempty"`
	Concurrent       bool           `json:"concurrent,omitempty" yaml:"concurrent,omitempty"`
	States           []*StateConfig `json:"states" yaml:"states"`
}

// Registry binds callback names used in documents to functions.
type Registry map[string]statetree.Callback

// RootName returns the name of the root state.
func (c *ChartConfig) RootName() string {
	if c.Name == "" {
		return defaultRootName
	}
	return c.Name
}

// Root returns the implicit root as a StateConfig.
func (c *ChartConfig) Root() *StateConfig {
	return &StateConfig{
		Name:       c.RootName(),
		Concurrent: c.Concurrent,
		States:     c.States,
	}
}

// Validate checks the whole document: non-empty unique names and at most one
// default per exclusive state, none in concurrent ones.
func (c *ChartConfig) Validate() error {
	if len(c.States) == 0 {
		return microerror.Maskf(invalidDefinitionError, "chart %q has no states", c.RootName())
	}
	if err := c.Root().Validate(map[string]struct{}{}); err != nil {
		return microerror.Mask(err)
	}
	return nil
}

// Parse decodes and validates a YAML chart document. Unknown fields are rejected.
func Parse(data []byte) (*ChartConfig, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c ChartConfig
	if err := dec.Decode(&c); err != nil {
		return nil, microerror.Maskf(invalidDefinitionError, "yaml unmarshal: %s", err)
	}
	if err := c.Validate(); err != nil {
		return nil, microerror.Mask(err)
	}
	return &c, nil
}

// Load reads and parses the chart document at path.
func Load(path string) (*ChartConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, microerror.Mask(err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, microerror.Mask(err)
	}
	return c, nil
}

// Marshal encodes c as YAML.
func Marshal(c *ChartConfig) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, microerror.Mask(err)
	}
	return data, nil
}

// Build creates a chart from c, binding callbacks from reg. Every callback name in
// the document must be registered. opts are applied before the document's own
// settings.
func Build(c *ChartConfig, reg Registry, opts ...statetree.Option) (*statetree.Chart, error) {
	if err := c.Validate(); err != nil {
		return nil, microerror.Mask(err)
	}

	var missing []string
	for _, name := range c.Root().Callbacks() {
		if _, ok := reg[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, microerror.Maskf(unknownCallbackError, "%s", strings.Join(missing, ", "))
	}

	opts = append(opts, statetree.WithRootName(c.RootName()))
	if c.DefaultToHistory {
		opts = append(opts, statetree.WithDefaultToHistory())
	}

	var rootOpts []builder.Option
	if c.Concurrent {
		rootOpts = append(rootOpts, builder.Concurrent())
	}
	rootOpts = append(rootOpts, children(c.States, reg)...)

	chart, err := builder.Chart(rootOpts...).Build(opts...)
	if err != nil {
		return nil, microerror.Mask(err)
	}
	return chart, nil
}

func children(states []*StateConfig, reg Registry) []builder.Option {
	opts := make([]builder.Option, 0, len(states))
	for _, s := range states {
		var o []builder.Option
		if s.Default {
			o = append(o, builder.Default())
		}
		if s.Concurrent {
			o = append(o, builder.Concurrent())
		}
		if s.Enter != "" {
			o = append(o, builder.OnEnter(reg[s.Enter]))
		}
		if s.Exit != "" {
			o = append(o, builder.OnExit(reg[s.Exit]))
		}
		o = append(o, children(s.States, reg)...)
		opts = append(opts, builder.State(s.Name, o...))
	}
	return opts
}
