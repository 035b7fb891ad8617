package output

import (
	"github.com/arthur-debert/respath/pkg/errors"
	"github.com/arthur-debert/respath/pkg/paths"
	"github.com/arthur-debert/respath/pkg/translation"
	"github.com/arthur-debert/respath/pkg/types"
)

// FormatView is the result of formatting one path
type FormatView struct {
	Input  string `json:"input" yaml:"input"`
	Style  string `json:"style" yaml:"style"`
	Result string `json:"result" yaml:"result"`
}

// IdentityView describes what detection found for an input
type IdentityView struct {
	Input    string            `json:"input,omitempty" yaml:"input,omitempty"`
	State    string            `json:"state" yaml:"state"`
	Style    string            `json:"style,omitempty" yaml:"style,omitempty"`
	Resource string            `json:"resource,omitempty" yaml:"resource,omitempty"`
	Config   string            `json:"config,omitempty" yaml:"config,omitempty"`
	Anchor   []string          `json:"anchor,omitempty" yaml:"anchor,omitempty"`
	Segments []string          `json:"segments,omitempty" yaml:"segments,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// NewIdentityView builds the view of p
func NewIdentityView(p *paths.Path) IdentityView {
	v := IdentityView{Input: p.Raw(), State: p.State().String()}
	id := p.Identity()
	if id == nil {
		return v
	}
	v.Style = id.Style().String()
	v.Resource = id.ResourceName()
	v.Config = id.ConfigName()
	v.Anchor = types.RawTokens(id.AnchorTokens())
	v.Segments = id.Segments()
	if md := id.Metadata(); len(md) > 0 {
		v.Metadata = md
	}
	return v
}

// ConfigView summarises one translation configuration
type ConfigView struct {
	Priority  int      `json:"priority" yaml:"priority"`
	Name      string   `json:"name" yaml:"name"`
	Enabled   bool     `json:"enabled" yaml:"enabled"`
	Validator string   `json:"validator" yaml:"validator"`
	Source    string   `json:"source,omitempty" yaml:"source,omitempty"`
	Resources []string `json:"resources" yaml:"resources"`
}

// NewConfigViews lists the configurations of reg in priority order
func NewConfigViews(reg *translation.Registry) []ConfigView {
	configs := reg.Configs()
	views := make([]ConfigView, 0, len(configs))
	for i, c := range configs {
		views = append(views, ConfigView{
			Priority:  i + 1,
			Name:      c.Name,
			Enabled:   c.Enabled,
			Validator: c.ValidatorName,
			Source:    c.Source,
			Resources: c.Resources(),
		})
	}
	return views
}

// RoundTripView reports a URI -> style -> URI conversion
type RoundTripView struct {
	Input        string `json:"input" yaml:"input"`
	Via          string `json:"via" yaml:"via"`
	Intermediate string `json:"intermediate" yaml:"intermediate"`
	Output       string `json:"output" yaml:"output"`
	OK           bool   `json:"ok" yaml:"ok"`
}

// ErrorView is the machine readable form of an error
type ErrorView struct {
	Code     string          `json:"code" yaml:"code"`
	Message  string          `json:"message" yaml:"message"`
	Attempts []paths.Attempt `json:"attempts,omitempty" yaml:"attempts,omitempty"`
}

// NewErrorView extracts the code and format attempts from err
func NewErrorView(err error) ErrorView {
	v := ErrorView{Code: string(errors.GetErrorCode(err)), Message: err.Error()}
	if attempts, ok := errors.GetErrorDetails(err)["attempts"].([]paths.Attempt); ok {
		v.Attempts = attempts
	}
	return v
}
