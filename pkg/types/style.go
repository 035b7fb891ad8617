package types

import (
	"runtime"
	"strings"

	"github.com/arthur-debert/respath/pkg/errors"
)

// Style identifies one of the path grammars the engine understands
type Style int

const (
	// StyleUnknown is the zero value and never produced by detection
	StyleUnknown Style = iota
	// StyleUNC is a network share path: \\host\share\... or //host/share/...
	StyleUNC
	// StyleDriveLetter is a drive rooted path: C:\...
	StyleDriveLetter
	// StylePosix is an absolute slash separated path: /...
	StylePosix
	// StyleURI is a logical reference: resource[@k=v&...]://rest
	StyleURI
	// StyleRFS shares the Posix grammar but has its own mapping key
	StyleRFS
)

// AllStyles returns every style in detection order
func AllStyles() []Style {
	return []Style{StyleUNC, StyleDriveLetter, StylePosix, StyleURI, StyleRFS}
}

// String returns the name used for the style in mapping tables
func (s Style) String() string {
	switch s {
	case StyleUNC:
		return "UNC"
	case StyleDriveLetter:
		return "DriveLetter"
	case StylePosix:
		return "Posix"
	case StyleURI:
		return "URI"
	case StyleRFS:
		return "RFS"
	default:
		return "Unknown"
	}
}

// IsValid reports whether s is one of the known styles
func (s Style) IsValid() bool {
	return s >= StyleUNC && s <= StyleRFS
}

// ParseStyle converts a style name into a Style. Matching is case-insensitive
// and "LogicalURI" is accepted as an alias of "URI".
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "unc":
		return StyleUNC, nil
	case "driveletter", "drive_letter", "drive":
		return StyleDriveLetter, nil
	case "posix":
		return StylePosix, nil
	case "uri", "logicaluri", "logical_uri":
		return StyleURI, nil
	case "rfs":
		return StyleRFS, nil
	default:
		return StyleUnknown, errors.Newf(errors.ErrInvalidInput, "unknown path style: %q", name).
			WithDetail("style", name)
	}
}

// DefaultStyle returns the style native to the running platform
func DefaultStyle() Style {
	if runtime.GOOS == "windows" {
		return StyleDriveLetter
	}
	return StylePosix
}

// MarshalText implements encoding.TextMarshaler
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
