package config

import (
	"github.com/arthur-debert/respath/pkg/anchor"
	"github.com/arthur-debert/respath/pkg/env"
	"github.com/arthur-debert/respath/pkg/logging"
	"github.com/arthur-debert/respath/pkg/paths"
	"github.com/arthur-debert/respath/pkg/types"
)

// Config is the decoded application configuration
type Config struct {
	Translation TranslationConfig `koanf:"translation"`
	Format      FormatConfig      `koanf:"format"`
	Env         map[string]string `koanf:"env"`
	EnvFiles    []string          `koanf:"env_files"`
	Logging     LoggingConfig     `koanf:"logging"`
	Output      OutputConfig      `koanf:"output"`

	// Sources lists the files that contributed, in load order
	Sources []string `koanf:"-"`
}

// TranslationConfig selects the translation registry
type TranslationConfig struct {
	SearchPath []string `koanf:"search_path"`
	Builtin    []string `koanf:"builtin"`
	Only       string   `koanf:"only"`
	Match      string   `koanf:"match"`
}

// FormatConfig holds the defaults of format operations
type FormatConfig struct {
	DefaultStyle  string `koanf:"default_style"`
	ForceValidate bool   `koanf:"force_validate"`
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	FileEnabled bool `koanf:"file_enabled"`
	MaxSizeMB   int  `koanf:"max_size_mb"`
	MaxAgeDays  int  `koanf:"max_age_days"`
	MaxBackups  int  `koanf:"max_backups"`
}

// OutputConfig controls command output
type OutputConfig struct {
	Format string `koanf:"format"`
}

// EnvProvider returns the configured overrides layered above the process
// environment and the built-in defaults
func (c *Config) EnvProvider() env.Provider {
	return env.Standard(c.Env)
}

// MatchMode parses translation.match
func (c *Config) MatchMode() (anchor.Mode, error) {
	return anchor.ParseMode(c.Translation.Match)
}

// DefaultStyle parses format.default_style; empty means the platform default
func (c *Config) DefaultStyle() (types.Style, error) {
	if c.Format.DefaultStyle == "" {
		return types.DefaultStyle(), nil
	}
	return types.ParseStyle(c.Format.DefaultStyle)
}

// FormatOptions returns the format options implied by the configuration
func (c *Config) FormatOptions() []paths.FormatOption {
	var opts []paths.FormatOption
	if c.Format.ForceValidate {
		opts = append(opts, paths.ForceValidate())
	}
	return opts
}

// PathOptions returns the options for paths.New implied by the configuration
func (c *Config) PathOptions() ([]paths.Option, error) {
	mode, err := c.MatchMode()
	if err != nil {
		return nil, err
	}
	style, err := c.DefaultStyle()
	if err != nil {
		return nil, err
	}
	return []paths.Option{
		paths.WithEnv(c.EnvProvider()),
		paths.WithMatchMode(mode),
		paths.WithDefaultStyle(style, c.FormatOptions()...),
	}, nil
}

// LogFile returns the log file settings, writing to the respath state directory
func (c *Config) LogFile(dirs *paths.Dirs) logging.FileConfig {
	return logging.FileConfig{
		Enabled:    c.Logging.FileEnabled,
		Path:       dirs.LogFilePath(),
		MaxSizeMB:  c.Logging.MaxSizeMB,
		MaxAgeDays: c.Logging.MaxAgeDays,
		MaxBackups: c.Logging.MaxBackups,
	}
}
