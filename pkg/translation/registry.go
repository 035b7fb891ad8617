package translation

import (
	"github.com/arthur-debert/respath/pkg/errors"
)

// Registry is the ordered, immutable list of translation configurations. The
// first configuration has the highest priority. A Registry is built once and
// can then be shared by any number of goroutines without locking.
type Registry struct {
	configs []*Config
	byName  map[string]*Config
}

// NewRegistry validates configs and returns them as a Registry, keeping their order
func NewRegistry(configs ...*Config) (*Registry, error) {
	r := &Registry{
		configs: make([]*Config, 0, len(configs)),
		byName:  make(map[string]*Config, len(configs)),
	}

	for _, c := range configs {
		if c == nil {
			continue
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byName[c.Name]; dup {
			return nil, errors.Newf(errors.ErrConfigValid, "translation config %q registered twice", c.Name).
				WithDetail("source", c.Source)
		}
		r.configs = append(r.configs, c)
		r.byName[c.Name] = c
	}

	return r, nil
}

// MustRegistry is NewRegistry for configurations known to be valid
func MustRegistry(configs ...*Config) *Registry {
	r, err := NewRegistry(configs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Configs returns every configuration in priority order
func (r *Registry) Configs() []*Config {
	return append([]*Config(nil), r.configs...)
}

// Enabled returns the enabled configurations in priority order
func (r *Registry) Enabled() []*Config {
	enabled := make([]*Config, 0, len(r.configs))
	for _, c := range r.configs {
		if c.Enabled {
			enabled = append(enabled, c)
		}
	}
	return enabled
}

// Get returns the configuration named name
func (r *Registry) Get(name string) (*Config, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Names returns configuration names in priority order
func (r *Registry) Names() []string {
	names := make([]string, len(r.configs))
	for i, c := range r.configs {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of configurations
func (r *Registry) Len() int {
	return len(r.configs)
}

// Only returns a registry holding just the named configuration
func (r *Registry) Only(name string) (*Registry, error) {
	c, ok := r.byName[name]
	if !ok {
		return nil, errors.Newf(errors.ErrNotFound, "translation config %q not found", name).
			WithDetail("available", r.Names())
	}
	return &Registry{configs: []*Config{c}, byName: map[string]*Config{name: c}}, nil
}
