package translation

import (
	"embed"
	"path"

	"github.com/arthur-debert/respath/pkg/errors"
	"github.com/knadh/koanf/parsers/toml"
)

//go:embed builtin
var builtinFS embed.FS

// BuiltinNames lists the embedded configurations in their default priority order
var BuiltinNames = []string{"local", "network", "dev"}

// Builtin loads one embedded configuration
func (l *Loader) Builtin(name string) (*Config, error) {
	source := path.Join("builtin", name, TableFiles[0])
	data, err := builtinFS.ReadFile(source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "no built-in translation config named %q", name).
			WithDetail("available", BuiltinNames)
	}
	return l.parse(data, toml.Parser(), "builtin:"+name, name)
}

// BuiltinRegistry builds a registry from embedded configurations. With no
// names, every built-in configuration is used in BuiltinNames order.
func (l *Loader) BuiltinRegistry(names ...string) (*Registry, error) {
	if len(names) == 0 {
		names = BuiltinNames
	}
	configs := make([]*Config, 0, len(names))
	for _, name := range names {
		cfg, err := l.Builtin(name)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return NewRegistry(configs...)
}
