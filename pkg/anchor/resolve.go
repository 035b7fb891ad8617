package anchor

import (
	"github.com/arthur-debert/respath/pkg/env"
	"github.com/arthur-debert/respath/pkg/errors"
	"github.com/arthur-debert/respath/pkg/translation"
	"github.com/arthur-debert/respath/pkg/types"
)

// Resolve returns the concrete anchor components of id's resource for style
// in cfg. A resource without a mapping for style yields ErrRenderUnsupported;
// a placeholder or computed token without a value yields
// ErrPlaceholderUnresolved. Both only disqualify cfg.
func Resolve(id *types.Identity, style types.Style, cfg *translation.Config, p env.Provider) ([]string, error) {
	if !id.HasResource() {
		return nil, errors.New(errors.ErrRenderUnsupported, "identity has no resource").
			WithDetail("config", cfg.Name)
	}

	entry, ok := cfg.Lookup(id.ResourceName())
	if !ok {
		return nil, errors.Newf(errors.ErrRenderUnsupported, "resource %q not mapped in %q", id.ResourceName(), cfg.Name).
			WithDetail("config", cfg.Name).
			WithDetail("resource", id.ResourceName())
	}

	tokens, ok := entry.AnchorFor(style)
	if !ok {
		return nil, errors.Newf(errors.ErrRenderUnsupported, "resource %q has no %s mapping in %q", id.ResourceName(), style, cfg.Name).
			WithDetail("config", cfg.Name).
			WithDetail("resource", id.ResourceName()).
			WithDetail("style", style.String())
	}

	values := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		value, err := resolveToken(tok, id, p)
		if err != nil {
			return nil, err.WithDetail("config", cfg.Name).WithDetail("resource", id.ResourceName())
		}
		values = append(values, value)
	}
	return values, nil
}

func resolveToken(tok types.Token, id *types.Identity, p env.Provider) (string, *errors.Error) {
	switch tok.Kind {
	case types.TokenPlaceholder:
		if p != nil {
			if v, ok := p.Lookup(tok.Value); ok {
				return v, nil
			}
		}
		return "", errors.Newf(errors.ErrPlaceholderUnresolved, "env. variable not found: %s", tok.Raw()).
			WithDetail("token", tok.Raw())
	case types.TokenComputed:
		if v, ok := id.MetadataValue(tok.Value); ok {
			return v, nil
		}
		return "", errors.Newf(errors.ErrPlaceholderUnresolved, "metadata value not found: %s", tok.Raw()).
			WithDetail("token", tok.Raw())
	default:
		return tok.Value, nil
	}
}
