package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	// EnvMemoryOnly keeps translation maps and validated paths in memory
	EnvMemoryOnly EnvType = iota
	// EnvIsolated backs the filesystem with a temp directory
	EnvIsolated
)

// TestEnvironment points every location respath reads at test-owned
// directories and installs the reference scenario environment
type TestEnvironment struct {
	// ConfigDir holds config.toml on FS
	ConfigDir string
	StateDir  string

	// FS is handed to the code under test for configuration, translation
	// maps and validation
	FS afero.Fs

	Type EnvType

	t       *testing.T
	tempDir string
}

// NewTestEnvironment creates an isolated environment. The variables it sets
// are restored when the test ends.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	e := &TestEnvironment{t: t, Type: envType, tempDir: t.TempDir()}
	e.ConfigDir = filepath.Join(e.tempDir, "config")
	e.StateDir = filepath.Join(e.tempDir, "state")

	switch envType {
	case EnvIsolated:
		root := filepath.Join(e.tempDir, "fs")
		require.NoError(t, os.MkdirAll(root, 0755))
		e.FS = afero.NewBasePathFs(afero.NewOsFs(), root)
	default:
		e.FS = afero.NewMemMapFs()
	}

	t.Setenv("RESPATH_CONFIG_DIR", e.ConfigDir)
	t.Setenv("RESPATH_STATE_DIR", e.StateDir)
	t.Setenv("RESPATH_LOGGING__FILE_ENABLED", "false")
	t.Setenv("RESPATH_TRANSLATION_MAP_PATH", "")
	t.Setenv("SC_TRANSLATION_MAP_PATH", "")
	for k, v := range AliceEnv() {
		t.Setenv(k, v)
	}

	return e
}

// TempDir returns the root of the environment's temp directory
func (e *TestEnvironment) TempDir() string { return e.tempDir }

// WriteConfig writes config.toml into ConfigDir on FS and returns its path
func (e *TestEnvironment) WriteConfig(content string) string {
	e.t.Helper()
	require.NoError(e.t, e.FS.MkdirAll(e.ConfigDir, 0755))
	path := filepath.Join(e.ConfigDir, "config.toml")
	require.NoError(e.t, afero.WriteFile(e.FS, path, []byte(content), 0644))
	return path
}

// WriteTranslationMap writes translation_map.toml into dir on FS
func (e *TestEnvironment) WriteTranslationMap(dir, content string) {
	e.t.Helper()
	require.NoError(e.t, e.FS.MkdirAll(dir, 0755))
	require.NoError(e.t, afero.WriteFile(e.FS, filepath.Join(dir, "translation_map.toml"), []byte(content), 0644))
}

// MakeDirs creates directories on FS, so the exists validator accepts them
func (e *TestEnvironment) MakeDirs(paths ...string) {
	e.t.Helper()
	for _, p := range paths {
		require.NoError(e.t, e.FS.MkdirAll(p, 0755))
	}
}
