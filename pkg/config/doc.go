// Package config loads respath's application configuration.
//
// Layers are applied in order, later ones winning:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. a user file: the --config path, or the first of config.toml and
//     config.yaml found in the respath config directory
//  3. RESPATH_ environment variables, with a double underscore separating
//     nesting levels (RESPATH_FORMAT__DEFAULT_STYLE=UNC)
//  4. explicit overrides, typically command-line flags
//
// The resulting Config builds the translation registry, the environment
// provider and the path options used by the command line.
package config
