package translation

import (
	"io"
	"strings"

	"github.com/arthur-debert/respath/pkg/errors"
	"github.com/arthur-debert/respath/pkg/types"
	gotoml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Export formats
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// WriteTable writes cfg in the on-disk table format, so that the output placed
// in a search path directory loads back to an equivalent configuration
func WriteTable(w io.Writer, cfg *Config, format string) error {
	table := toTable(cfg)

	switch strings.ToLower(format) {
	case FormatTOML, "":
		enc := gotoml.NewEncoder(w)
		enc.SetIndentTables(true)
		if err := enc.Encode(table); err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to encode %q as toml", cfg.Name)
		}
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(table); err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to encode %q as yaml", cfg.Name)
		}
		if err := enc.Close(); err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to encode %q as yaml", cfg.Name)
		}
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown export format %q", format).
			WithDetail("available", []string{FormatTOML, FormatYAML})
	}
	return nil
}

func toTable(cfg *Config) fileTable {
	table := fileTable{
		Name:      cfg.Name,
		Validator: cfg.ValidatorName,
		Mapping:   make([]fileMapping, 0, len(cfg.Mappings)),
	}
	if !cfg.Enabled {
		disabled := false
		table.Enabled = &disabled
	}

	for _, m := range cfg.Mappings {
		fm := fileMapping{
			Name:    m.Name,
			Enabled: m.Enabled,
			Styles:  make(map[string][]string, len(m.Anchors)),
		}
		for _, style := range types.AllStyles() {
			if tokens, ok := m.Anchors[style]; ok {
				fm.Styles[style.String()] = types.RawTokens(tokens)
			}
		}
		table.Mapping = append(table.Mapping, fm)
	}
	return table
}
