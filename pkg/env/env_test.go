package env

import (
	"testing"

	"github.com/arthur-debert/respath/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLookup(t *testing.T) {
	m := Map{"HOME": "/home/alice", "EMPTY": ""}

	v, ok := m.Lookup("HOME")
	assert.True(t, ok)
	assert.Equal(t, "/home/alice", v)

	v, ok = m.Lookup("EMPTY")
	assert.True(t, ok, "an empty value is still a hit")
	assert.Equal(t, "", v)

	_, ok = m.Lookup("MISSING")
	assert.False(t, ok)
}

func TestChainPrecedence(t *testing.T) {
	p := Chain(
		Map{"RLP_SITE": "siteA"},
		nil,
		Map{"RLP_SITE": "siteB", "HOME": "/home/bob"},
	)

	v, ok := p.Lookup("RLP_SITE")
	require.True(t, ok)
	assert.Equal(t, "siteA", v)

	v, ok = p.Lookup("HOME")
	require.True(t, ok)
	assert.Equal(t, "/home/bob", v)

	_, ok = p.Lookup("NOPE")
	assert.False(t, ok)
}

func TestOSProvider(t *testing.T) {
	t.Setenv("RESPATH_TEST_VALUE", "xyz")

	v, ok := OS().Lookup("RESPATH_TEST_VALUE")
	assert.True(t, ok)
	assert.Equal(t, "xyz", v)
}

func TestStandard(t *testing.T) {
	t.Setenv(ThirdbaseVersionVar, "23_01")
	t.Setenv("RLP_SITE", "fromenv")

	p := Standard(map[string]string{"RLP_SITE": "override"})

	v, _ := p.Lookup("RLP_SITE")
	assert.Equal(t, "override", v)

	v, _ = p.Lookup(ThirdbaseVersionVar)
	assert.Equal(t, "23_01", v, "process environment wins over defaults")

	v, ok := p.Lookup(PlatformVar)
	assert.True(t, ok)
	assert.Equal(t, Platform(), v)
}

func TestPlatformString(t *testing.T) {
	tests := []struct {
		goos, goarch string
		expected     string
	}{
		{"linux", "amd64", "Linux-x86_64"},
		{"linux", "arm64", "Linux-aarch64"},
		{"darwin", "arm64", "Darwin-arm64"},
		{"windows", "amd64", "Windows-x86_64"},
		{"freebsd", "386", "Freebsd-i686"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, platformString(tt.goos, tt.goarch))
		})
	}
}

func TestLoadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `# site settings
RLP_SITE=siteA
export HOME="/home/alice"
BARE

RLP_FS_ROOT='/mnt/rlp'
=ignored
`
	require.NoError(t, afero.WriteFile(fs, "/etc/respath.env", []byte(content), 0644))

	m, err := LoadFile(fs, "/etc/respath.env")
	require.NoError(t, err)
	assert.Equal(t, Map{
		"RLP_SITE":    "siteA",
		"HOME":        "/home/alice",
		"BARE":        "",
		"RLP_FS_ROOT": "/mnt/rlp",
	}, m)

	_, err = LoadFile(fs, "/missing.env")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}
