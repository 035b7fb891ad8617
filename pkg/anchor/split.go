package anchor

import (
	"regexp"
	"strings"
)

var driveLetterRE = regexp.MustCompile(`^[A-Za-z]:`)

// SplitPath drops leading separators and splits the remainder on both / and \.
// Empty components between consecutive separators or after a trailing one
// are kept, so "a//b/" splits into a, "", b, "".
func SplitPath(p string) []string {
	p = strings.TrimLeft(p, `/\`)
	return strings.Split(strings.ReplaceAll(p, `\`, "/"), "/")
}

// IsDriveLetter reports whether s starts with a drive designator such as C:
func IsDriveLetter(s string) bool {
	return driveLetterRE.MatchString(s)
}

// NormalizeDrive upper-cases the drive letter of s, leaving the rest alone.
// Strings without a drive designator are returned unchanged.
func NormalizeDrive(s string) string {
	if !IsDriveLetter(s) {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
