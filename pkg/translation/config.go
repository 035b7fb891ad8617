package translation

import (
	"github.com/arthur-debert/respath/pkg/errors"
	"github.com/arthur-debert/respath/pkg/types"
)

// MappingEntry binds a logical resource to its anchor token list per style.
// A style missing from Anchors has no representation for this resource.
type MappingEntry struct {
	Name    string
	Anchors map[types.Style][]types.Token
	Enabled *bool
}

// IsEnabled reports whether the entry takes part in detection and rendering
func (m MappingEntry) IsEnabled() bool {
	return m.Enabled == nil || *m.Enabled
}

// AnchorFor returns the anchor tokens for style
func (m MappingEntry) AnchorFor(style types.Style) ([]types.Token, bool) {
	tokens, ok := m.Anchors[style]
	return tokens, ok
}

// Config is one translation configuration. It is read-only once it has been
// handed to a Registry.
type Config struct {
	Name          string
	Enabled       bool
	Validator     Validator
	ValidatorName string
	Mappings      []MappingEntry

	// Source records where the configuration was loaded from
	Source string
}

// Lookup returns the first enabled mapping entry named resource
func (c *Config) Lookup(resource string) (MappingEntry, bool) {
	for _, m := range c.Mappings {
		if m.Name == resource && m.IsEnabled() {
			return m, true
		}
	}
	return MappingEntry{}, false
}

// Resources returns the names of the enabled mapping entries in table order
func (c *Config) Resources() []string {
	names := make([]string, 0, len(c.Mappings))
	for _, m := range c.Mappings {
		if m.IsEnabled() {
			names = append(names, m.Name)
		}
	}
	return names
}

// validate checks the structural rules a configuration must satisfy before it
// can join a registry
func (c *Config) validate() error {
	if c.Name == "" {
		return errors.New(errors.ErrConfigValid, "translation config has no name").
			WithDetail("source", c.Source)
	}
	if c.Validator == nil {
		return errors.Newf(errors.ErrConfigValid, "translation config %q has no validator", c.Name).
			WithDetail("source", c.Source)
	}

	seen := make(map[string]bool, len(c.Mappings))
	for i, m := range c.Mappings {
		if m.Name == "" {
			return errors.Newf(errors.ErrConfigValid, "mapping %d in %q has no name", i, c.Name).
				WithDetail("source", c.Source)
		}
		if seen[m.Name] {
			return errors.Newf(errors.ErrConfigValid, "resource %q defined twice in %q", m.Name, c.Name).
				WithDetail("source", c.Source)
		}
		seen[m.Name] = true

		for style := range m.Anchors {
			if !style.IsValid() {
				return errors.Newf(errors.ErrConfigValid, "resource %q in %q maps an unknown style", m.Name, c.Name).
					WithDetail("source", c.Source)
			}
		}
	}
	return nil
}
