package translation

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/respath/pkg/errors"
	"github.com/arthur-debert/respath/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Validator decides whether a rendered candidate is acceptable for cfg
type Validator func(candidate string, id *types.Identity, style types.Style, cfg *Config) bool

// Names of the validators a configuration file can select
const (
	ValidatorExists = "exists"
	ValidatorAccept = "accept"
	ValidatorReject = "reject"
)

// Exists accepts a candidate when it names something on fs. The check is
// read-only. URI candidates are not filesystem paths, so for them the raw
// anchor tokens joined with the segments are checked instead.
func Exists(fs afero.Fs) Validator {
	return func(candidate string, id *types.Identity, style types.Style, cfg *Config) bool {
		if candidate == "" {
			return false
		}

		target := candidate
		if style == types.StyleURI && id != nil {
			parts := append(types.RawTokens(id.AnchorTokens()), id.Segments()...)
			target = strings.Join(parts, string(filepath.Separator))
		}

		exists, err := afero.Exists(fs, target)
		if err != nil {
			log.Debug().Err(err).Str("path", target).Msg("Existence check failed")
			return false
		}

		log.Trace().
			Str("path", target).
			Bool("exists", exists).
			Str("config", cfgName(cfg)).
			Msg("Check if exists on disk")
		return exists
	}
}

// Accept accepts every candidate
func Accept() Validator {
	return func(string, *types.Identity, types.Style, *Config) bool { return true }
}

// Reject rejects every candidate
func Reject() Validator {
	return func(string, *types.Identity, types.Style, *Config) bool { return false }
}

// Validators returns the named validators available to configuration files,
// with existence checks running against fs
func Validators(fs afero.Fs) map[string]Validator {
	return map[string]Validator{
		ValidatorExists: Exists(fs),
		ValidatorAccept: Accept(),
		ValidatorReject: Reject(),
	}
}

func lookupValidator(validators map[string]Validator, name string) (Validator, error) {
	if name == "" {
		name = ValidatorExists
	}
	v, ok := validators[name]
	if !ok {
		known := make([]string, 0, len(validators))
		for k := range validators {
			known = append(known, k)
		}
		sort.Strings(known)
		return nil, errors.Newf(errors.ErrConfigValid, "unknown validator %q", name).
			WithDetail("available", known)
	}
	return v, nil
}

func cfgName(cfg *Config) string {
	if cfg == nil {
		return ""
	}
	return cfg.Name
}
