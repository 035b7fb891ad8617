package styles

import (
	"sort"
	"strings"

	"github.com/arthur-debert/respath/pkg/anchor"
	"github.com/arthur-debert/respath/pkg/env"
	"github.com/arthur-debert/respath/pkg/logging"
	"github.com/arthur-debert/respath/pkg/translation"
	"github.com/arthur-debert/respath/pkg/types"
)

// URISentinel separates the resource from the path in a logical URI
const URISentinel = "://"

// URI handles logical references: resource[@key=value&...]://path
type URI struct{}

// NewURI creates the URI handler
func NewURI() *URI { return &URI{} }

// Style returns types.StyleURI
func (h *URI) Style() types.Style { return types.StyleURI }

// Detect splits raw on the sentinel. Exactly one sentinel is required. The
// scheme is the first segment; the optional metadata block after @ becomes
// the identity's metadata.
func (h *URI) Detect(raw string, cfg *translation.Config, m anchor.Matcher) (*types.Identity, bool) {
	parts := strings.Split(raw, URISentinel)
	if len(parts) != 2 {
		return nil, false
	}

	scheme, meta, hasMeta := strings.Cut(parts[0], "@")
	var metadata map[string]string
	if hasMeta {
		metadata = parseMetadata(parts[0], meta)
	}

	segments := append([]string{scheme}, strings.Split(parts[1], "/")...)
	return m.Match(types.StyleURI, segments, metadata, cfg)
}

// parseMetadata reads key=value pairs joined by &. Parsing stops at the first
// malformed pair; pairs read before it are kept.
func parseMetadata(head, block string) map[string]string {
	out := map[string]string{}
	for _, kv := range strings.Split(block, "&") {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || strings.Contains(value, "=") {
			logger := logging.GetLogger("styles.uri")
			logger.Warn().
				Str("uri", head).
				Str("entry", kv).
				Msg("Could not parse URI metadata")
			break
		}
		out[key] = value
	}
	return out
}

// Render re-attaches the scheme and metadata to the segments. The first
// anchor value is the scheme; any further anchor values lead the path.
func (h *URI) Render(id *types.Identity, cfg *translation.Config, p env.Provider, _ RenderOptions) (string, error) {
	values, err := resolveAnchor(id, types.StyleURI, cfg, p)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(values[0])
	if meta := formatMetadata(id.Metadata()); meta != "" {
		b.WriteString("@")
		b.WriteString(meta)
	}
	b.WriteString(URISentinel)
	b.WriteString(strings.Join(append(values[1:], id.Segments()...), "/"))
	return b.String(), nil
}

func formatMetadata(metadata map[string]string) string {
	if len(metadata) == 0 {
		return ""
	}
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+metadata[k])
	}
	return strings.Join(pairs, "&")
}
