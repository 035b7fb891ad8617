package types

import "strings"

const (
	// PlaceholderPrefix marks a token resolved from the environment provider
	PlaceholderPrefix = "$"
	// ComputedPrefix marks a token resolved from the identity's metadata
	ComputedPrefix = "@"
)

// TokenKind classifies an anchor token
type TokenKind int

const (
	// TokenLiteral is used verbatim
	TokenLiteral TokenKind = iota
	// TokenPlaceholder names an environment value, written $NAME
	TokenPlaceholder
	// TokenComputed names an identity metadata key, written @key
	TokenComputed
)

// String returns a short name for the kind
func (k TokenKind) String() string {
	switch k {
	case TokenPlaceholder:
		return "placeholder"
	case TokenComputed:
		return "computed"
	default:
		return "literal"
	}
}

// Token is one component of an anchor list. Value holds the literal text, the
// environment variable name, or the metadata key, without prefix.
type Token struct {
	Kind  TokenKind
	Value string
}

// ParseToken classifies a raw token as written in a mapping table
func ParseToken(raw string) Token {
	switch {
	case len(raw) > len(PlaceholderPrefix) && strings.HasPrefix(raw, PlaceholderPrefix):
		return Token{Kind: TokenPlaceholder, Value: raw[len(PlaceholderPrefix):]}
	case len(raw) > len(ComputedPrefix) && strings.HasPrefix(raw, ComputedPrefix):
		return Token{Kind: TokenComputed, Value: raw[len(ComputedPrefix):]}
	default:
		return Token{Kind: TokenLiteral, Value: raw}
	}
}

// ParseTokens classifies every entry of raw
func ParseTokens(raw []string) []Token {
	tokens := make([]Token, len(raw))
	for i, r := range raw {
		tokens[i] = ParseToken(r)
	}
	return tokens
}

// Literal builds a literal token
func Literal(value string) Token {
	return Token{Kind: TokenLiteral, Value: value}
}

// Placeholder builds a placeholder token for the named environment value
func Placeholder(name string) Token {
	return Token{Kind: TokenPlaceholder, Value: name}
}

// Computed builds a computed token for the named metadata key
func Computed(key string) Token {
	return Token{Kind: TokenComputed, Value: key}
}

// Raw returns the token as written in a mapping table
func (t Token) Raw() string {
	switch t.Kind {
	case TokenPlaceholder:
		return PlaceholderPrefix + t.Value
	case TokenComputed:
		return ComputedPrefix + t.Value
	default:
		return t.Value
	}
}

// String implements fmt.Stringer
func (t Token) String() string {
	return t.Raw()
}

// RawTokens returns the written form of every token
func RawTokens(tokens []Token) []string {
	raw := make([]string, len(tokens))
	for i, t := range tokens {
		raw[i] = t.Raw()
	}
	return raw
}
