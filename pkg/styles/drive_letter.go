package styles

import (
	"strings"

	"github.com/arthur-debert/respath/pkg/anchor"
	"github.com/arthur-debert/respath/pkg/env"
	"github.com/arthur-debert/respath/pkg/logging"
	"github.com/arthur-debert/respath/pkg/translation"
	"github.com/arthur-debert/respath/pkg/types"
)

// DriveLetter handles paths such as C:\Users\alice
type DriveLetter struct{}

// NewDriveLetter creates the DriveLetter handler
func NewDriveLetter() *DriveLetter { return &DriveLetter{} }

// Style returns types.StyleDriveLetter
func (h *DriveLetter) Style() types.Style { return types.StyleDriveLetter }

// Detect accepts strings starting with a drive designator. The drive letter is
// upper-cased before matching so c: and C: resolve alike.
func (h *DriveLetter) Detect(raw string, cfg *translation.Config, m anchor.Matcher) (*types.Identity, bool) {
	if !anchor.IsDriveLetter(raw) {
		return nil, false
	}

	segments := anchor.SplitPath(raw)
	segments[0] = anchor.NormalizeDrive(segments[0])

	logger := logging.GetLogger("styles.drive_letter")
	logger.Trace().
		Str("raw", raw).
		Str("config", cfg.Name).
		Msg("Drive letter candidate")

	return m.Match(types.StyleDriveLetter, segments, nil, cfg)
}

// Render joins the anchor and segments with a backslash unless another
// separator is requested. Doubled backslashes are collapsed.
func (h *DriveLetter) Render(id *types.Identity, cfg *translation.Config, p env.Provider, opts RenderOptions) (string, error) {
	values, err := resolveAnchor(id, types.StyleDriveLetter, cfg, p)
	if err != nil {
		return "", err
	}

	sep := opts.separator(`\`)
	var b strings.Builder
	b.WriteString(values[0])
	b.WriteString(sep)
	for _, v := range values[1:] {
		b.WriteString(v)
		b.WriteString(sep)
	}
	b.WriteString(strings.Join(id.Segments(), sep))

	return strings.ReplaceAll(b.String(), `\\`, `\`), nil
}
