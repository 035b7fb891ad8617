package config

import (
	"github.com/arthur-debert/respath/pkg/env"
	"github.com/arthur-debert/respath/pkg/paths"
	"github.com/spf13/afero"
)

// LoadEnvFiles merges the files listed in env_files into Env. Keys already
// set in the [env] table are kept, and an earlier file wins over a later one.
func (c *Config) LoadEnvFiles(fs afero.Fs) error {
	for _, path := range c.EnvFiles {
		values, err := env.LoadFile(fs, paths.ExpandHome(path))
		if err != nil {
			return err
		}
		if c.Env == nil {
			c.Env = make(map[string]string, len(values))
		}
		for k, v := range values {
			if _, set := c.Env[k]; !set {
				c.Env[k] = v
			}
		}
	}
	return nil
}
