package anchor

import (
	"strings"

	"github.com/arthur-debert/respath/pkg/env"
	"github.com/arthur-debert/respath/pkg/errors"
	"github.com/arthur-debert/respath/pkg/translation"
	"github.com/arthur-debert/respath/pkg/types"
	"github.com/rs/zerolog/log"
)

// Mode selects how anchor tokens are compared with path segments
type Mode int

const (
	// MatchLiteral compares each token, as written, with one segment
	MatchLiteral Mode = iota
	// MatchResolved also lets placeholder and computed tokens match the
	// components of their resolved value
	MatchResolved
)

// String returns the name used in configuration
func (m Mode) String() string {
	if m == MatchResolved {
		return "resolved"
	}
	return "literal"
}

// ParseMode converts a configuration value into a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "literal":
		return MatchLiteral, nil
	case "resolved", "":
		return MatchResolved, nil
	default:
		return MatchLiteral, errors.Newf(errors.ErrInvalidInput, "unknown match mode %q", s).
			WithDetail("available", []string{"literal", "resolved"})
	}
}

// Matcher finds the mapping entry a decomposed path belongs to
type Matcher struct {
	Mode Mode
	// Env resolves placeholders under MatchResolved; it is unused otherwise
	Env env.Provider
}

// Match walks the enabled mapping entries of cfg in table order and returns
// the identity built from the first one whose anchor list for style matches
// the leading segments. The matched segments are stripped. Entries are never
// scored or reordered: first match wins.
func (m Matcher) Match(style types.Style, segments []string, metadata map[string]string, cfg *translation.Config) (*types.Identity, bool) {
	for _, entry := range cfg.Mappings {
		if !entry.IsEnabled() {
			continue
		}
		tokens, ok := entry.AnchorFor(style)
		if !ok {
			continue
		}

		n, ok := m.matchLen(style, tokens, segments, metadata)
		if !ok {
			log.Trace().
				Str("style", style.String()).
				Str("config", cfg.Name).
				Str("resource", entry.Name).
				Msg("Anchor mismatch")
			continue
		}

		return types.NewIdentity(style, segments[n:], tokens, entry.Name, metadata, cfg.Name), true
	}
	return nil, false
}

// matchLen reports how many leading segments tokens consume
func (m Matcher) matchLen(style types.Style, tokens []types.Token, segments []string, metadata map[string]string) (int, bool) {
	if m.Mode == MatchLiteral {
		if len(tokens) > len(segments) {
			return 0, false
		}
		for i, tok := range tokens {
			if tok.Raw() != segments[i] {
				return 0, false
			}
		}
		return len(tokens), true
	}

	pos := 0
	for _, tok := range tokens {
		if pos < len(segments) && tok.Raw() == segments[pos] {
			pos++
			continue
		}
		if tok.Kind == types.TokenLiteral {
			return 0, false
		}

		value, ok := m.lookup(tok, metadata)
		if !ok {
			return 0, false
		}
		parts := SplitPath(value)
		if pos+len(parts) > len(segments) {
			return 0, false
		}
		for _, part := range parts {
			if style == types.StyleDriveLetter {
				part = NormalizeDrive(part)
			}
			if part != segments[pos] {
				return 0, false
			}
			pos++
		}
	}
	return pos, true
}

func (m Matcher) lookup(tok types.Token, metadata map[string]string) (string, bool) {
	switch tok.Kind {
	case types.TokenPlaceholder:
		if m.Env == nil {
			return "", false
		}
		return m.Env.Lookup(tok.Value)
	case types.TokenComputed:
		v, ok := metadata[tok.Value]
		return v, ok
	}
	return "", false
}
