package styles

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/respath/pkg/anchor"
	"github.com/arthur-debert/respath/pkg/env"
	"github.com/arthur-debert/respath/pkg/logging"
	"github.com/arthur-debert/respath/pkg/translation"
	"github.com/arthur-debert/respath/pkg/types"
)

var uncRE = regexp.MustCompile(`^(//\w+/\w+)/\w+|(\\\\\w+\\\w+)\\\w+|(\\\\[\w\-]+\\\w+)`)

// UNC handles network share paths: \\host\share\dir or //host/share/dir
type UNC struct{}

// NewUNC creates the UNC handler
func NewUNC() *UNC { return &UNC{} }

// Style returns types.StyleUNC
func (h *UNC) Style() types.Style { return types.StyleUNC }

// Detect accepts a leading host/share pair in either slash direction. The
// host and share are the first two segments compared against the anchors.
func (h *UNC) Detect(raw string, cfg *translation.Config, m anchor.Matcher) (*types.Identity, bool) {
	if !uncRE.MatchString(raw) {
		return nil, false
	}

	logger := logging.GetLogger("styles.unc")
	logger.Trace().
		Str("raw", raw).
		Str("config", cfg.Name).
		Msg("UNC candidate")

	return m.Match(types.StyleUNC, anchor.SplitPath(raw), nil, cfg)
}

// Render joins anchor and segments and prefixes two separators. A result that
// begins with a drive letter is left without the prefix.
func (h *UNC) Render(id *types.Identity, cfg *translation.Config, p env.Provider, opts RenderOptions) (string, error) {
	values, err := resolveAnchor(id, types.StyleUNC, cfg, p)
	if err != nil {
		return "", err
	}

	sep := opts.separator(`\`)
	result := strings.Join(values, sep) + sep + strings.Join(id.Segments(), sep)

	leading := sep + sep
	if len(result) > 1 && result[1] == ':' {
		return result, nil
	}
	if !strings.HasPrefix(result, leading) {
		result = leading + result
	}
	return result, nil
}
