package types

import (
	"fmt"
	"sort"
	"strings"
)

// Identity is the logical identity recovered from a path string: which style
// claimed it, which resource anchor matched, and what remains after the
// anchor. An Identity is never modified after construction; accessors hand
// out copies.
type Identity struct {
	style      Style
	segments   []string
	anchors    []Token
	resource   string
	metadata   map[string]string
	configName string
}

// NewIdentity builds an Identity, copying every slice and map it is given
func NewIdentity(style Style, segments []string, anchors []Token, resource string, metadata map[string]string, configName string) *Identity {
	return &Identity{
		style:      style,
		segments:   cloneStrings(segments),
		anchors:    append([]Token(nil), anchors...),
		resource:   resource,
		metadata:   cloneMap(metadata),
		configName: configName,
	}
}

// Style returns the grammar that detected the path
func (i *Identity) Style() Style { return i.style }

// Segments returns the path components that follow the matched anchor
func (i *Identity) Segments() []string { return cloneStrings(i.segments) }

// AnchorTokens returns the unresolved anchor tokens of the winning mapping
func (i *Identity) AnchorTokens() []Token { return append([]Token(nil), i.anchors...) }

// ResourceName returns the matched logical resource, or "" if none matched
func (i *Identity) ResourceName() string { return i.resource }

// HasResource reports whether a mapping entry matched
func (i *Identity) HasResource() bool { return i.resource != "" }

// Metadata returns grammar specific side data, such as URI key/value pairs
func (i *Identity) Metadata() map[string]string { return cloneMap(i.metadata) }

// MetadataValue returns a single metadata entry
func (i *Identity) MetadataValue(key string) (string, bool) {
	v, ok := i.metadata[key]
	return v, ok
}

// ConfigName returns the translation configuration that matched during detection
func (i *Identity) ConfigName() string { return i.configName }

// String renders a diagnostic form of the identity
func (i *Identity) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Identity{style=%s resource=%q anchor=[%s] segments=[%s]",
		i.style, i.resource,
		strings.Join(RawTokens(i.anchors), " "),
		strings.Join(i.segments, " "))
	if len(i.metadata) > 0 {
		keys := make([]string, 0, len(i.metadata))
		for k := range i.metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for n, k := range keys {
			pairs[n] = k + "=" + i.metadata[k]
		}
		fmt.Fprintf(&b, " metadata={%s}", strings.Join(pairs, " "))
	}
	if i.configName != "" {
		fmt.Fprintf(&b, " config=%s", i.configName)
	}
	b.WriteString("}")
	return b.String()
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func cloneMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
