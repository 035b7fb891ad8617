package translation

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/respath/pkg/env"
	"github.com/arthur-debert/respath/pkg/errors"
	"github.com/arthur-debert/respath/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Environment variables naming the translation search path
const (
	EnvSearchPath       = "RESPATH_TRANSLATION_MAP_PATH"
	EnvLegacySearchPath = "SC_TRANSLATION_MAP_PATH"
)

// TableFiles lists the file names looked up in each search path directory,
// in preference order
var TableFiles = []string{"translation_map.toml", "translation_map.yaml", "translation_map.yml"}

// EnabledFile is the optional sibling file overriding a table's enabled flag
const EnabledFile = "enabled"

// fileTable is the on-disk form of a translation configuration
type fileTable struct {
	Name      string        `koanf:"name" toml:"name" yaml:"name"`
	Enabled   *bool         `koanf:"enabled" toml:"enabled,omitempty" yaml:"enabled,omitempty"`
	Validator string        `koanf:"validator" toml:"validator,omitempty" yaml:"validator,omitempty"`
	Mapping   []fileMapping `koanf:"mapping" toml:"mapping" yaml:"mapping"`
}

type fileMapping struct {
	Name    string              `koanf:"name" toml:"name" yaml:"name"`
	Enabled *bool               `koanf:"enabled" toml:"enabled,omitempty" yaml:"enabled,omitempty"`
	Styles  map[string][]string `koanf:"styles" toml:"styles" yaml:"styles"`
}

// Loader reads translation configurations from disk
type Loader struct {
	fs         afero.Fs
	validators map[string]Validator
}

// NewLoader returns a loader reading from fs. Existence validators of the
// loaded configurations also check fs.
func NewLoader(fs afero.Fs) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{fs: fs, validators: Validators(fs)}
}

// SplitSearchPath splits a search path on os.PathListSeparator, dropping
// empty elements
func SplitSearchPath(searchPath string) []string {
	var dirs []string
	for _, d := range filepath.SplitList(searchPath) {
		if d = strings.TrimSpace(d); d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// LoadSearchPath loads one configuration per directory. Directory order is
// priority order.
func (l *Loader) LoadSearchPath(searchPath string) (*Registry, error) {
	return l.LoadDirs(SplitSearchPath(searchPath)...)
}

// LoadDirs loads one configuration from each directory, in order
func (l *Loader) LoadDirs(dirs ...string) (*Registry, error) {
	configs := make([]*Config, 0, len(dirs))
	for _, dir := range dirs {
		cfg, err := l.LoadDir(dir)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return NewRegistry(configs...)
}

// LoadFromEnv loads the search path named by RESPATH_TRANSLATION_MAP_PATH,
// or SC_TRANSLATION_MAP_PATH when the former is unset. ok is false when
// neither is set.
func (l *Loader) LoadFromEnv(p env.Provider) (reg *Registry, ok bool, err error) {
	for _, name := range []string{EnvSearchPath, EnvLegacySearchPath} {
		if searchPath, found := p.Lookup(name); found && strings.TrimSpace(searchPath) != "" {
			log.Debug().Str("var", name).Str("path", searchPath).Msg("Loading translation search path")
			reg, err = l.LoadSearchPath(searchPath)
			return reg, true, err
		}
	}
	return nil, false, nil
}

// LoadDir loads the translation table held in dir
func (l *Loader) LoadDir(dir string) (*Config, error) {
	info, err := l.fs.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "translation config directory %s not readable", dir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrConfigLoad, "translation config path %s is not a directory", dir)
	}

	for _, name := range TableFiles {
		path := filepath.Join(dir, name)
		data, err := afero.ReadFile(l.fs, path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
		}

		cfg, err := l.parse(data, parserFor(name), path, filepath.Base(dir))
		if err != nil {
			return nil, err
		}

		if enabled, found, err := l.readEnabledFlag(dir); err != nil {
			return nil, err
		} else if found {
			cfg.Enabled = enabled
		}

		log.Debug().
			Str("config", cfg.Name).
			Str("source", path).
			Bool("enabled", cfg.Enabled).
			Int("mappings", len(cfg.Mappings)).
			Msg("Loaded translation config")
		return cfg, nil
	}

	return nil, errors.Newf(errors.ErrConfigLoad, "no translation map found in %s", dir).
		WithDetail("looked_for", TableFiles)
}

func (l *Loader) readEnabledFlag(dir string) (enabled bool, found bool, err error) {
	path := filepath.Join(dir, EnabledFile)
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, false, nil
		}
		return false, false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
	}
	return ToBool(strings.TrimSpace(string(data))), true, nil
}

func parserFor(name string) koanf.Parser {
	if strings.HasSuffix(name, ".toml") {
		return toml.Parser()
	}
	return yaml.Parser()
}

// parse decodes one table. defaultName is used when the table has no name.
func (l *Loader) parse(data []byte, parser koanf.Parser, source, defaultName string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", source)
	}

	var table fileTable
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &table,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &table, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to decode %s", source)
	}

	if table.Name == "" {
		table.Name = defaultName
	}
	return l.fromTable(table, source)
}

func (l *Loader) fromTable(table fileTable, source string) (*Config, error) {
	validator, err := lookupValidator(l.validators, table.Validator)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid translation config %s", source)
	}

	cfg := &Config{
		Name:          table.Name,
		Enabled:       table.Enabled == nil || *table.Enabled,
		Validator:     validator,
		ValidatorName: table.Validator,
		Mappings:      make([]MappingEntry, 0, len(table.Mapping)),
		Source:        source,
	}
	if cfg.ValidatorName == "" {
		cfg.ValidatorName = ValidatorExists
	}

	for _, fm := range table.Mapping {
		entry := MappingEntry{
			Name:    fm.Name,
			Enabled: fm.Enabled,
			Anchors: make(map[types.Style][]types.Token, len(fm.Styles)),
		}
		for styleName, raw := range fm.Styles {
			style, err := types.ParseStyle(styleName)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigValid, "resource %q in %s", fm.Name, source)
			}
			entry.Anchors[style] = types.ParseTokens(raw)
		}
		cfg.Mappings = append(cfg.Mappings, entry)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ToBool interprets the words used for boolean flags in translation
// directories: true, True, 1, on and yes are true, anything else is false.
func ToBool(value string) bool {
	switch value {
	case "true", "True", "1", "on", "yes":
		return true
	}
	return false
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}
