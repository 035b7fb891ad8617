// Package env supplies the named values that placeholder tokens resolve
// against. Providers are plain lookups and can be layered with Chain.
package env

import (
	"os"
	"runtime"
	"strings"
)

// Names of the values the built-in mapping tables reference
const (
	PlatformVar         = "SC_PLATFORM"
	ThirdbaseVersionVar = "SC_THIRDBASE_VERSION"

	// DefaultThirdbaseVersion is the package version exported when
	// SC_THIRDBASE_VERSION is not set
	DefaultThirdbaseVersion = "22_09"
)

// Provider looks up a named value
type Provider interface {
	Lookup(name string) (string, bool)
}

// Func adapts a function to the Provider interface
type Func func(name string) (string, bool)

// Lookup implements Provider
func (f Func) Lookup(name string) (string, bool) {
	return f(name)
}

// OS returns a provider backed by the process environment
func OS() Provider {
	return Func(os.LookupEnv)
}

// Map is a provider backed by a fixed set of values
type Map map[string]string

// Lookup implements Provider
func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// chain tries each provider in order; the first hit wins
type chain []Provider

// Chain layers providers, highest precedence first. Nil providers are skipped.
func Chain(providers ...Provider) Provider {
	c := make(chain, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			c = append(c, p)
		}
	}
	return c
}

// Lookup implements Provider
func (c chain) Lookup(name string) (string, bool) {
	for _, p := range c {
		if v, ok := p.Lookup(name); ok {
			return v, true
		}
	}
	return "", false
}

// Defaults provides the values the control layer exports before any path is
// translated: the platform identifier and the third-party package version.
func Defaults() Provider {
	return Map{
		PlatformVar:         Platform(),
		ThirdbaseVersionVar: DefaultThirdbaseVersion,
	}
}

// Standard layers overrides over the process environment over Defaults
func Standard(overrides map[string]string) Provider {
	var top Provider
	if len(overrides) > 0 {
		top = Map(overrides)
	}
	return Chain(top, OS(), Defaults())
}

// Platform returns the platform identifier for the running system, e.g.
// "Linux-x86_64" or "Darwin-arm64".
func Platform() string {
	return platformString(runtime.GOOS, runtime.GOARCH)
}

func platformString(goos, goarch string) string {
	system := goos
	switch goos {
	case "darwin":
		system = "Darwin"
	case "windows":
		system = "Windows"
	default:
		if goos != "" {
			system = strings.ToUpper(goos[:1]) + goos[1:]
		}
	}

	machine := goarch
	switch goarch {
	case "amd64":
		machine = "x86_64"
	case "386":
		machine = "i686"
	case "arm64":
		if goos == "linux" {
			machine = "aarch64"
		}
	}

	return system + "-" + machine
}
