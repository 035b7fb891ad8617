package styles

import (
	"strings"

	"github.com/arthur-debert/respath/pkg/anchor"
	"github.com/arthur-debert/respath/pkg/env"
	"github.com/arthur-debert/respath/pkg/logging"
	"github.com/arthur-debert/respath/pkg/translation"
	"github.com/arthur-debert/respath/pkg/types"
)

// Posix handles absolute slash-separated paths. The same grammar is exposed a
// second time under the RFS name with its own anchors.
type Posix struct {
	style types.Style
}

// NewPosix creates the Posix handler
func NewPosix() *Posix { return &Posix{style: types.StylePosix} }

// NewRFS creates the handler for RFS, the Posix grammar keyed separately in
// mapping tables
func NewRFS() *Posix { return &Posix{style: types.StyleRFS} }

// Style returns types.StylePosix or types.StyleRFS
func (h *Posix) Style() types.Style { return h.style }

// Detect accepts strings starting with exactly one slash and containing no
// backslash. A leading double slash belongs to UNC.
func (h *Posix) Detect(raw string, cfg *translation.Config, m anchor.Matcher) (*types.Identity, bool) {
	if !isPosix(raw) {
		return nil, false
	}

	logger := logging.GetLogger("styles.posix")
	logger.Trace().
		Str("style", h.style.String()).
		Str("raw", raw).
		Str("config", cfg.Name).
		Msg("Posix candidate")

	return m.Match(h.style, anchor.SplitPath(raw), nil, cfg)
}

// Render joins anchor and segments with / and guarantees a single leading /
func (h *Posix) Render(id *types.Identity, cfg *translation.Config, p env.Provider, _ RenderOptions) (string, error) {
	values, err := resolveAnchor(id, h.style, cfg, p)
	if err != nil {
		return "", err
	}

	result := strings.Join(values, "/") + "/" + strings.Join(id.Segments(), "/")
	if !strings.HasPrefix(result, "/") {
		result = "/" + result
	}
	return result, nil
}

func isPosix(raw string) bool {
	return len(raw) > 1 &&
		raw[0] == '/' &&
		raw[1] != '/' &&
		!strings.Contains(raw, `\`)
}
