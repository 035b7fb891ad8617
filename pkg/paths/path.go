package paths

import (
	"github.com/arthur-debert/respath/pkg/anchor"
	"github.com/arthur-debert/respath/pkg/env"
	"github.com/arthur-debert/respath/pkg/logging"
	"github.com/arthur-debert/respath/pkg/styles"
	"github.com/arthur-debert/respath/pkg/translation"
	"github.com/arthur-debert/respath/pkg/types"
	"github.com/rs/zerolog"
)

// State is the detection state of a Path
type State int

const (
	// StateUnresolved means no grammar and configuration claimed the input
	StateUnresolved State = iota
	// StateResolved means the path holds an identity
	StateResolved
)

// String returns the state name
func (s State) String() string {
	if s == StateResolved {
		return "Resolved"
	}
	return "Unresolved"
}

// Path is a raw path string together with the identity detection found for it.
// A Path is not safe for concurrent use; the registry it borrows is.
type Path struct {
	raw      string
	registry *translation.Registry
	env      env.Provider
	matcher  anchor.Matcher
	logger   zerolog.Logger

	defaultStyle   types.Style
	defaultOptions []FormatOption

	id *types.Identity
}

// Option configures a Path
type Option func(*Path)

// WithEnv sets the provider used to resolve placeholders. The default is
// env.Standard(nil): the process environment over the built-in defaults.
func WithEnv(p env.Provider) Option {
	return func(path *Path) {
		path.env = p
	}
}

// WithDefaultStyle sets the style, and optionally the format options, used
// by String
func WithDefaultStyle(style types.Style, opts ...FormatOption) Option {
	return func(path *Path) {
		path.defaultStyle = style
		path.defaultOptions = opts
	}
}

// WithLogger replaces the package logger
func WithLogger(logger zerolog.Logger) Option {
	return func(path *Path) {
		path.logger = logger
	}
}

// WithMatchMode selects how anchors are compared during detection. The
// default is anchor.MatchResolved.
func WithMatchMode(mode anchor.Mode) Option {
	return func(path *Path) {
		path.matcher.Mode = mode
	}
}

// New builds a Path and runs detection on raw. A nil registry leaves the
// path unresolved.
func New(raw string, reg *translation.Registry, opts ...Option) *Path {
	p := newPath(raw, reg, opts)
	p.id = p.detect()
	return p
}

// FromIdentity builds a resolved Path around an existing identity without
// running detection
func FromIdentity(id *types.Identity, reg *translation.Registry, opts ...Option) *Path {
	p := newPath("", reg, opts)
	p.id = id
	return p
}

func newPath(raw string, reg *translation.Registry, opts []Option) *Path {
	if reg == nil {
		reg = translation.MustRegistry()
	}
	p := &Path{
		raw:          raw,
		registry:     reg,
		env:          env.Standard(nil),
		matcher:      anchor.Matcher{Mode: anchor.MatchResolved},
		logger:       logging.GetLogger("paths"),
		defaultStyle: types.DefaultStyle(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.matcher.Env = p.env
	return p
}

func (p *Path) detect() *types.Identity {
	for _, cfg := range p.registry.Enabled() {
		for _, h := range styles.All() {
			id, ok := h.Detect(p.raw, cfg, p.matcher)
			if !ok {
				continue
			}
			p.logger.Debug().
				Str("raw", p.raw).
				Str("config", cfg.Name).
				Str("style", h.Style().String()).
				Str("resource", id.ResourceName()).
				Msg("Path detected")
			return id
		}
		p.logger.Trace().
			Str("raw", p.raw).
			Str("config", cfg.Name).
			Msg("No style claimed path")
	}

	p.logger.Debug().
		Str("raw", p.raw).
		Strs("configs", p.registry.Names()).
		Msg("Path detection exhausted")
	return nil
}

// State reports whether detection succeeded
func (p *Path) State() State {
	if p.id == nil {
		return StateUnresolved
	}
	return StateResolved
}

// Identity returns the detected identity, or nil when unresolved
func (p *Path) Identity() *types.Identity { return p.id }

// Raw returns the input string. It is empty for paths built with FromIdentity.
func (p *Path) Raw() string { return p.raw }

// String renders the path with the default style. On failure it logs a
// warning and returns the raw input, or the identity's diagnostic form when
// there is no raw input.
func (p *Path) String() string {
	s, err := p.Format(p.defaultStyle, p.defaultOptions...)
	if err == nil {
		return s
	}

	fallback := p.raw
	if fallback == "" && p.id != nil {
		fallback = p.id.String()
	}
	p.logger.Warn().
		Err(err).
		Str("style", p.defaultStyle.String()).
		Str("fallback", fallback).
		Msg("Path formatting failed, returning raw input")
	return fallback
}
