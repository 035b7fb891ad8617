package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/respath/pkg/anchor"
	"github.com/arthur-debert/respath/pkg/errors"
	"github.com/arthur-debert/respath/pkg/paths"
	"github.com/arthur-debert/respath/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config directory at an empty temp dir and clears the
// variables the loader reads
func isolate(t *testing.T) *paths.Dirs {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	t.Setenv("RESPATH_TRANSLATION_MAP_PATH", "")
	t.Setenv("SC_TRANSLATION_MAP_PATH", "")
	return paths.NewDirs()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	dirs := isolate(t)

	cfg, err := Load(Options{Dirs: dirs})
	require.NoError(t, err)

	assert.Empty(t, cfg.Translation.SearchPath)
	assert.Equal(t, []string{"local", "network", "dev"}, cfg.Translation.Builtin)
	assert.Equal(t, "resolved", cfg.Translation.Match)
	assert.False(t, cfg.Format.ForceValidate)
	assert.True(t, cfg.Logging.FileEnabled)
	assert.Equal(t, 50, cfg.Logging.MaxSizeMB)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.Empty(t, cfg.Sources)
	assert.Empty(t, cfg.EnvFiles)

	mode, err := cfg.MatchMode()
	require.NoError(t, err)
	assert.Equal(t, anchor.MatchResolved, mode)

	style, err := cfg.DefaultStyle()
	require.NoError(t, err)
	assert.Equal(t, types.DefaultStyle(), style)
}

func TestLoadUserFile(t *testing.T) {
	dirs := isolate(t)
	writeFile(t, dirs.ConfigFiles()[0], `
[translation]
builtin = ["network"]
match = "literal"

[format]
default_style = "UNC"
force_validate = true

[env]
RLP_SITE = "siteB"
`)

	cfg, err := Load(Options{Dirs: dirs})
	require.NoError(t, err)
	assert.Equal(t, []string{dirs.ConfigFiles()[0]}, cfg.Sources)
	assert.Equal(t, []string{"network"}, cfg.Translation.Builtin)
	assert.Equal(t, "siteB", cfg.Env["RLP_SITE"])

	style, err := cfg.DefaultStyle()
	require.NoError(t, err)
	assert.Equal(t, types.StyleUNC, style)

	v, ok := cfg.EnvProvider().Lookup("RLP_SITE")
	require.True(t, ok)
	assert.Equal(t, "siteB", v)

	assert.Len(t, cfg.FormatOptions(), 1)
	opts, err := cfg.PathOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 3)
}

func TestLoadYAMLFile(t *testing.T) {
	dirs := isolate(t)
	writeFile(t, dirs.ConfigFiles()[1], "output:\n  format: json\n")

	cfg, err := Load(Options{Dirs: dirs})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadExplicitFile(t *testing.T) {
	dirs := isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, "[output]\nformat = \"yaml\"\n")

	cfg, err := Load(Options{File: path, Dirs: dirs})
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)

	_, err = Load(Options{File: filepath.Join(t.TempDir(), "missing.toml"), Dirs: dirs})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadFromFs(t *testing.T) {
	dirs := isolate(t)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, dirs.ConfigFiles()[1], []byte("output:\n  format: yaml\n"), 0644))

	cfg, err := Load(Options{Dirs: dirs, Fs: fs})
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, []string{dirs.ConfigFiles()[1]}, cfg.Sources)
	assert.NoFileExists(t, dirs.ConfigFiles()[1])

	require.NoError(t, afero.WriteFile(fs, "/etc/respath.toml", []byte("[output]\nformat = \"json\"\n"), 0644))
	cfg, err = Load(Options{File: "/etc/respath.toml", Dirs: dirs, Fs: fs})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)

	_, err = Load(Options{File: "/etc/missing.toml", Dirs: dirs, Fs: fs})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadEnvAndOverrides(t *testing.T) {
	dirs := isolate(t)
	t.Setenv("RESPATH_FORMAT__DEFAULT_STYLE", "DriveLetter")
	t.Setenv("RESPATH_ENV__RLP_SITE", "siteC")
	t.Setenv("RESPATH_OUTPUT__FORMAT", "text")

	cfg, err := Load(Options{
		Dirs:      dirs,
		Overrides: map[string]interface{}{"output.format": "json"},
	})
	require.NoError(t, err)
	assert.Equal(t, "DriveLetter", cfg.Format.DefaultStyle)
	assert.Equal(t, "siteC", cfg.Env["RLP_SITE"])
	assert.Equal(t, "json", cfg.Output.Format, "overrides beat the environment")
}

func TestLoadInvalid(t *testing.T) {
	dirs := isolate(t)
	writeFile(t, dirs.ConfigFiles()[0], "[translation]\nmatch = \"fuzzy\"\n")

	_, err := Load(Options{Dirs: dirs})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "format.default_style", envKey("RESPATH_FORMAT__DEFAULT_STYLE"))
	assert.Equal(t, "env.HOME", envKey("RESPATH_ENV__HOME"))
	assert.Equal(t, "translation_map_path", envKey("RESPATH_TRANSLATION_MAP_PATH"))
}

const tableTOML = `
name = "%s"
validator = "accept"

[[mapping]]
name = "thirdbase"
[mapping.styles]
URI = ["thirdbase"]
Posix = ["opt", "%s"]
`

func TestRegistrySources(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{"alpha", "beta"} {
		content := []byte(fmt.Sprintf(tableTOML, name, name))
		require.NoError(t, afero.WriteFile(fs, filepath.Join("/maps", name, "translation_map.toml"), content, 0644))
	}

	t.Run("search_path", func(t *testing.T) {
		cfg := &Config{Translation: TranslationConfig{SearchPath: []string{"/maps/beta", "/maps/alpha"}}}
		reg, err := cfg.Registry(fs)
		require.NoError(t, err)
		assert.Equal(t, []string{"beta", "alpha"}, reg.Names())
	})

	t.Run("env", func(t *testing.T) {
		cfg := &Config{Env: map[string]string{"SC_TRANSLATION_MAP_PATH": "/maps/alpha"}}
		t.Setenv("RESPATH_TRANSLATION_MAP_PATH", "")
		reg, err := cfg.Registry(fs)
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha"}, reg.Names())
	})

	t.Run("builtin", func(t *testing.T) {
		t.Setenv("RESPATH_TRANSLATION_MAP_PATH", "")
		t.Setenv("SC_TRANSLATION_MAP_PATH", "")
		cfg := &Config{Translation: TranslationConfig{Builtin: []string{"network", "local"}}}
		reg, err := cfg.Registry(fs)
		require.NoError(t, err)
		assert.Equal(t, []string{"network", "local"}, reg.Names())
	})

	t.Run("only", func(t *testing.T) {
		cfg := &Config{Translation: TranslationConfig{SearchPath: []string{"/maps/alpha", "/maps/beta"}, Only: "beta"}}
		reg, err := cfg.Registry(fs)
		require.NoError(t, err)
		assert.Equal(t, []string{"beta"}, reg.Names())

		cfg.Translation.Only = "gamma"
		_, err = cfg.Registry(fs)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("bad_dir", func(t *testing.T) {
		cfg := &Config{Translation: TranslationConfig{SearchPath: []string{"/maps/missing"}}}
		_, err := cfg.Registry(fs)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestLogFile(t *testing.T) {
	t.Setenv(paths.EnvStateDir, "/var/state/respath")
	cfg := &Config{Logging: LoggingConfig{FileEnabled: true, MaxSizeMB: 10, MaxAgeDays: 2, MaxBackups: 1}}

	lf := cfg.LogFile(paths.NewDirs())
	assert.True(t, lf.Enabled)
	assert.Equal(t, filepath.Join("/var/state/respath", "respath.log"), lf.Path)
	assert.Equal(t, 10, lf.MaxSizeMB)
}

func TestLoadEnvFiles(t *testing.T) {
	dirs := isolate(t)
	writeFile(t, filepath.Join(dirs.ConfigDir(), "config.toml"), `
env_files = ["/etc/respath/site.env", "/etc/respath/fallback.env"]

[env]
RLP_SITE = "siteB"
`)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/respath/site.env", []byte("RLP_SITE=siteA\nRLP_FS_ROOT=/mnt/rlp\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/etc/respath/fallback.env", []byte("RLP_FS_ROOT=/srv/rlp\nSC_PLATFORM=Linux-aarch64\n"), 0644))

	cfg, err := Load(Options{Dirs: dirs})
	require.NoError(t, err)
	require.NoError(t, cfg.LoadEnvFiles(fs))

	assert.Equal(t, map[string]string{
		"RLP_SITE":    "siteB",
		"RLP_FS_ROOT": "/mnt/rlp",
		"SC_PLATFORM": "Linux-aarch64",
	}, cfg.Env)

	v, ok := cfg.EnvProvider().Lookup("RLP_FS_ROOT")
	assert.True(t, ok)
	assert.Equal(t, "/mnt/rlp", v)

	cfg.EnvFiles = []string{"/missing.env"}
	err = cfg.LoadEnvFiles(fs)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}
