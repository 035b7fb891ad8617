package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		envType EnvType
	}{
		{"memory", EnvMemoryOnly},
		{"isolated", EnvIsolated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewTestEnvironment(t, tt.envType)

			assert.Equal(t, e.ConfigDir, os.Getenv("RESPATH_CONFIG_DIR"))
			assert.Equal(t, e.StateDir, os.Getenv("RESPATH_STATE_DIR"))
			assert.Equal(t, "/home/alice", os.Getenv("HOME"))

			e.MakeDirs(ScenarioPosixRoot)
			ok, err := afero.DirExists(e.FS, ScenarioPosixRoot)
			require.NoError(t, err)
			assert.True(t, ok)

			e.WriteTranslationMap("/maps/site", `name = "site"`)
			data, err := afero.ReadFile(e.FS, "/maps/site/translation_map.toml")
			require.NoError(t, err)
			assert.Equal(t, `name = "site"`, string(data))
		})
	}
}

func TestIsolatedFSStaysInTempDir(t *testing.T) {
	e := NewTestEnvironment(t, EnvIsolated)
	e.MakeDirs("/srv/data")
	assert.DirExists(t, filepath.Join(e.TempDir(), "fs", "srv", "data"))
}

func TestWriteConfig(t *testing.T) {
	e := NewTestEnvironment(t, EnvMemoryOnly)
	path := e.WriteConfig("[format]\n")
	assert.Equal(t, filepath.Join(e.ConfigDir, "config.toml"), path)

	ok, err := afero.Exists(e.FS, path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoFileExists(t, path, "config is written to FS, not the real disk")
}
