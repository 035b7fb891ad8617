package styles

import (
	"github.com/arthur-debert/respath/pkg/anchor"
	"github.com/arthur-debert/respath/pkg/env"
	"github.com/arthur-debert/respath/pkg/errors"
	"github.com/arthur-debert/respath/pkg/translation"
	"github.com/arthur-debert/respath/pkg/types"
)

// Handler is implemented by every path grammar
type Handler interface {
	// Style returns the grammar this handler implements
	Style() types.Style

	// Detect classifies raw and matches it against cfg. It returns false
	// when the grammar does not claim raw for cfg.
	Detect(raw string, cfg *translation.Config, m anchor.Matcher) (*types.Identity, bool)

	// Render produces the string form of id in this grammar using cfg's
	// anchors for the identity's resource
	Render(id *types.Identity, cfg *translation.Config, p env.Provider, opts RenderOptions) (string, error)
}

// RenderOptions tune the output of Render
type RenderOptions struct {
	// Separator replaces the default separator of grammars that allow it
	// (DriveLetter and UNC). Empty means the grammar default.
	Separator string
}

func (o RenderOptions) separator(def string) string {
	if o.Separator == "" {
		return def
	}
	return o.Separator
}

var handlers = map[types.Style]Handler{
	types.StyleUNC:         NewUNC(),
	types.StyleDriveLetter: NewDriveLetter(),
	types.StylePosix:       NewPosix(),
	types.StyleURI:         NewURI(),
	types.StyleRFS:         NewRFS(),
}

// For returns the handler for style
func For(style types.Style) (Handler, error) {
	switch style {
	case types.StyleUNC, types.StyleDriveLetter, types.StylePosix, types.StyleURI, types.StyleRFS:
		return handlers[style], nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown path style %q", style.String())
	}
}

// All returns one handler per style in detection order
func All() []Handler {
	styles := types.AllStyles()
	out := make([]Handler, 0, len(styles))
	for _, s := range styles {
		out = append(out, handlers[s])
	}
	return out
}

// resolveAnchor resolves the anchor of id for style. An empty anchor list
// cannot root a path, so it is reported as unsupported.
func resolveAnchor(id *types.Identity, style types.Style, cfg *translation.Config, p env.Provider) ([]string, error) {
	values, err := anchor.Resolve(id, style, cfg, p)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errors.Newf(errors.ErrRenderUnsupported, "resource %q has an empty %s anchor in %q", id.ResourceName(), style, cfg.Name).
			WithDetail("config", cfg.Name).
			WithDetail("resource", id.ResourceName()).
			WithDetail("style", style.String())
	}
	return values, nil
}
