package testutil

import (
	"testing"

	"github.com/arthur-debert/respath/pkg/env"
	"github.com/arthur-debert/respath/pkg/translation"
	"github.com/arthur-debert/respath/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// ScenarioPosixAnchor is the Posix anchor of thirdbase in the reference
// local configuration
var ScenarioPosixAnchor = []string{"$HOME", ".config", "rlp", "$RLP_SITE", "thirdbase", "$SC_THIRDBASE_VERSION", "$SC_PLATFORM"}

// ScenarioPosixRoot is ScenarioPosixAnchor resolved against AliceEnv
const ScenarioPosixRoot = "/home/alice/.config/rlp/siteA/thirdbase/22_09/Linux-x86_64"

// AliceEnv returns the environment of the reference scenario
func AliceEnv() env.Map {
	return env.Map{
		"HOME":                 "/home/alice",
		"RLP_SITE":             "siteA",
		"SC_THIRDBASE_VERSION": "22_09",
		"SC_PLATFORM":          "Linux-x86_64",
	}
}

// WindowsEnv extends AliceEnv with the drive variables used by DriveLetter
// anchors
func WindowsEnv() env.Map {
	m := AliceEnv()
	m["HOMEDRIVE"] = "C:"
	m["HOMEPATH"] = `\Users\alice`
	return m
}

// Entry builds a mapping entry from raw token lists
func Entry(name string, anchors map[types.Style][]string) translation.MappingEntry {
	e := translation.MappingEntry{Name: name, Anchors: make(map[types.Style][]types.Token, len(anchors))}
	for style, raw := range anchors {
		e.Anchors[style] = types.ParseTokens(raw)
	}
	return e
}

// Disabled returns e with its enabled flag switched off
func Disabled(e translation.MappingEntry) translation.MappingEntry {
	off := false
	e.Enabled = &off
	return e
}

// Config builds an enabled configuration that accepts every candidate
func Config(name string, entries ...translation.MappingEntry) *translation.Config {
	return &translation.Config{
		Name:          name,
		Enabled:       true,
		Validator:     translation.Accept(),
		ValidatorName: "accept",
		Mappings:      entries,
		Source:        "test:" + name,
	}
}

// ScenarioConfig returns the reference "local" configuration: thirdbase with
// URI, Posix and DriveLetter anchors, plus apps with only a URI anchor
func ScenarioConfig() *translation.Config {
	return Config("local",
		Entry("thirdbase", map[types.Style][]string{
			types.StyleURI:         {"thirdbase"},
			types.StylePosix:       ScenarioPosixAnchor,
			types.StyleDriveLetter: {"$HOMEDRIVE", "$HOMEPATH", ".config", "rlp", "$RLP_SITE", "thirdbase"},
			types.StyleUNC:         {"rlp", "$RLP_SITE", "thirdbase"},
		}),
		Entry("apps", map[types.Style][]string{
			types.StyleURI: {"apps"},
		}),
	)
}

// Registry builds a registry and fails the test on error
func Registry(t *testing.T, configs ...*translation.Config) *translation.Registry {
	t.Helper()
	reg, err := translation.NewRegistry(configs...)
	require.NoError(t, err)
	return reg
}

// ExistingFS returns an in-memory filesystem in which every path exists as a
// directory
func ExistingFS(t *testing.T, paths ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, p := range paths {
		require.NoError(t, fs.MkdirAll(p, 0755))
	}
	return fs
}
