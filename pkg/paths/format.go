package paths

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/respath/pkg/errors"
	"github.com/arthur-debert/respath/pkg/styles"
	"github.com/arthur-debert/respath/pkg/translation"
	"github.com/arthur-debert/respath/pkg/types"
)

// FormatOption tunes a single Format call
type FormatOption func(*formatOptions)

type formatOptions struct {
	force     bool
	separator string
	only      string
	configs   []*translation.Config
	vars      map[string]string
}

// ForceValidate accepts the first rendered candidate without running the
// configuration's validator. Used for destinations that do not exist yet.
func ForceValidate() FormatOption {
	return func(o *formatOptions) { o.force = true }
}

// WithSeparator overrides the separator of the DriveLetter and UNC grammars
func WithSeparator(sep string) FormatOption {
	return func(o *formatOptions) { o.separator = sep }
}

// OnlyConfig restricts the candidates to the named configuration
func OnlyConfig(name string) FormatOption {
	return func(o *formatOptions) { o.only = name }
}

// WithConfigs replaces the registry's configurations as the candidate list.
// Disabled configurations in the list are still skipped.
func WithConfigs(configs []*translation.Config) FormatOption {
	return func(o *formatOptions) { o.configs = configs }
}

// WithVars substitutes {key} markers in every rendered candidate before it
// is validated
func WithVars(vars map[string]string) FormatOption {
	return func(o *formatOptions) { o.vars = vars }
}

// Attempt records why one configuration did not produce the result
type Attempt struct {
	Config string           `json:"config" yaml:"config"`
	Code   errors.ErrorCode `json:"code" yaml:"code"`
	Reason string           `json:"reason" yaml:"reason"`
}

// String implements fmt.Stringer
func (a Attempt) String() string {
	return fmt.Sprintf("%s: %s (%s)", a.Config, a.Reason, a.Code)
}

// Format renders the path in style. The candidate configurations are tried in
// priority order; the first one that renders a candidate its validator
// accepts wins. A configuration that cannot render the identity is skipped.
// When none succeeds the error is errors.ErrAllConfigsExhausted and its
// "attempts" detail lists the reason each configuration was skipped.
func (p *Path) Format(style types.Style, opts ...FormatOption) (string, error) {
	if p.id == nil {
		return "", errors.Newf(errors.ErrDetectionExhausted, "cannot format %q: path detection failed", p.raw).
			WithDetail("raw", p.raw).
			WithDetail("configs", p.registry.Names())
	}

	h, err := styles.For(style)
	if err != nil {
		return "", err
	}

	var o formatOptions
	for _, opt := range opts {
		opt(&o)
	}

	candidates, err := p.candidates(o)
	if err != nil {
		return "", err
	}

	attempts := make([]Attempt, 0, len(candidates))
	for _, cfg := range candidates {
		candidate, err := h.Render(p.id, cfg, p.env, styles.RenderOptions{Separator: o.separator})
		if err != nil {
			if !errors.IsFallthrough(err) {
				return "", err
			}
			p.logger.Trace().
				Err(err).
				Str("config", cfg.Name).
				Str("style", style.String()).
				Msg("Configuration cannot render path")
			attempts = append(attempts, Attempt{Config: cfg.Name, Code: errors.GetErrorCode(err), Reason: err.Error()})
			continue
		}

		candidate = substitute(candidate, o.vars)

		if o.force {
			return candidate, nil
		}
		if cfg.Validator != nil && !cfg.Validator(candidate, p.id, style, cfg) {
			p.logger.Debug().
				Str("config", cfg.Name).
				Str("validator", cfg.ValidatorName).
				Str("candidate", candidate).
				Msg("Candidate rejected")
			attempts = append(attempts, Attempt{
				Config: cfg.Name,
				Code:   errors.ErrValidationRejected,
				Reason: fmt.Sprintf("validator %q rejected %s", cfg.ValidatorName, candidate),
			})
			continue
		}
		return candidate, nil
	}

	return "", errors.Newf(errors.ErrAllConfigsExhausted, "style not available: %s - %s", style, p.id).
		WithDetail("style", style.String()).
		WithDetail("identity", p.id.String()).
		WithDetail("attempts", attempts)
}

func (p *Path) candidates(o formatOptions) ([]*translation.Config, error) {
	configs := o.configs
	if configs == nil {
		configs = p.registry.Configs()
	}

	if o.only != "" {
		var picked []*translation.Config
		for _, cfg := range configs {
			if cfg != nil && cfg.Name == o.only {
				picked = append(picked, cfg)
				break
			}
		}
		if picked == nil {
			return nil, errors.Newf(errors.ErrNotFound, "translation config %q not found", o.only).
				WithDetail("available", configNames(configs))
		}
		configs = picked
	}

	enabled := make([]*translation.Config, 0, len(configs))
	for _, cfg := range configs {
		if cfg == nil || !cfg.Enabled {
			continue
		}
		enabled = append(enabled, cfg)
	}
	return enabled, nil
}

func configNames(configs []*translation.Config) []string {
	names := make([]string, 0, len(configs))
	for _, c := range configs {
		if c != nil {
			names = append(names, c.Name)
		}
	}
	return names
}

// substitute replaces {key} with vars[key]. Keys are applied in sorted order
// so the result does not depend on map iteration.
func substitute(s string, vars map[string]string) string {
	if len(vars) == 0 {
		return s
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", vars[k])
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// Translate detects raw and formats it in style in one call
func Translate(raw string, style types.Style, reg *translation.Registry, opts []Option, formatOpts ...FormatOption) (string, error) {
	return New(raw, reg, opts...).Format(style, formatOpts...)
}
