package config

import (
	"github.com/arthur-debert/respath/pkg/paths"
	"github.com/arthur-debert/respath/pkg/translation"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Registry builds the translation registry. The first source that is set
// wins: translation.search_path, then the RESPATH_TRANSLATION_MAP_PATH and
// SC_TRANSLATION_MAP_PATH variables, then the built-in configurations named
// by translation.builtin. translation.only narrows the result to one
// configuration.
func (c *Config) Registry(fs afero.Fs) (*translation.Registry, error) {
	loader := translation.NewLoader(fs)

	reg, source, err := c.loadRegistry(loader)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("source", source).
		Strs("configs", reg.Names()).
		Msg("Translation registry loaded")

	if c.Translation.Only != "" {
		return reg.Only(c.Translation.Only)
	}
	return reg, nil
}

func (c *Config) loadRegistry(loader *translation.Loader) (*translation.Registry, string, error) {
	if len(c.Translation.SearchPath) > 0 {
		dirs := make([]string, 0, len(c.Translation.SearchPath))
		for _, d := range c.Translation.SearchPath {
			dirs = append(dirs, paths.ExpandHome(d))
		}
		reg, err := loader.LoadDirs(dirs...)
		return reg, "config", err
	}

	reg, ok, err := loader.LoadFromEnv(c.EnvProvider())
	if ok || err != nil {
		return reg, "env", err
	}

	reg, err = loader.BuiltinRegistry(c.Translation.Builtin...)
	return reg, "builtin", err
}
