package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	rerrors "github.com/arthur-debert/respath/pkg/errors"
	"github.com/arthur-debert/respath/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix of environment variables read into the configuration
const EnvPrefix = "RESPATH_"

// DefaultsContent returns the embedded default configuration
func DefaultsContent() string {
	return string(defaultConfig)
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Options selects the user file and explicit overrides
type Options struct {
	// File is an explicit configuration file; it must exist
	File string
	// Dirs locates the default configuration files. Nil means paths.NewDirs().
	Dirs *paths.Dirs
	// Overrides are applied last, keyed by dotted path (format.default_style)
	Overrides map[string]interface{}
	// Fs reads the user file. Nil means the OS filesystem.
	Fs afero.Fs
}

// Load builds the configuration from all layers
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")
	var sources []string

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, rerrors.Wrap(err, rerrors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	userFile, err := findUserFile(fs, opts)
	if err != nil {
		return nil, err
	}
	if userFile != "" {
		data, err := afero.ReadFile(fs, userFile)
		if err != nil {
			return nil, rerrors.Wrapf(err, rerrors.ErrConfigLoad, "failed to read config from %s", userFile).
				WithDetail("path", userFile)
		}
		if err := k.Load(&rawBytesProvider{bytes: data}, parserFor(userFile)); err != nil {
			return nil, rerrors.Wrapf(err, rerrors.ErrConfigParse, "failed to load config from %s", userFile).
				WithDetail("path", userFile)
		}
		sources = append(sources, userFile)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, rerrors.Wrap(err, rerrors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, rerrors.Wrap(err, rerrors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(string(os.PathListSeparator)),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, rerrors.Wrap(err, rerrors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Sources = sources

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.Debug().Strs("sources", sources).Msg("Configuration loaded")
	return &cfg, nil
}

func findUserFile(fs afero.Fs, opts Options) (string, error) {
	if opts.File != "" {
		path := paths.ExpandHome(opts.File)
		if _, err := fs.Stat(path); err != nil {
			return "", rerrors.Wrapf(err, rerrors.ErrConfigLoad, "config file %s not readable", path).
				WithDetail("path", path)
		}
		return path, nil
	}

	dirs := opts.Dirs
	if dirs == nil {
		dirs = paths.NewDirs()
	}
	for _, candidate := range dirs.ConfigFiles() {
		if _, err := fs.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps RESPATH_FORMAT__DEFAULT_STYLE to format.default_style. Names
// under the env table keep their case: RESPATH_ENV__RLP_SITE sets env.RLP_SITE.
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	parts := strings.Split(s, "__")
	for i, p := range parts {
		if i > 0 && strings.EqualFold(parts[0], "env") {
			continue
		}
		parts[i] = strings.ToLower(p)
	}
	return strings.Join(parts, ".")
}

func (c *Config) validate() error {
	if _, err := c.MatchMode(); err != nil {
		return rerrors.Wrap(err, rerrors.ErrConfigValid, "invalid translation.match")
	}
	if _, err := c.DefaultStyle(); err != nil {
		return rerrors.Wrap(err, rerrors.ErrConfigValid, "invalid format.default_style")
	}
	return nil
}
