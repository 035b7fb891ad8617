package env

import (
	"bufio"
	"strings"

	"github.com/arthur-debert/respath/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// LoadFile reads KEY=VALUE lines into a Map. Blank lines and # comments are
// skipped; a bare KEY sets an empty value.
func LoadFile(fs afero.Fs, path string) (Map, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot open env file %s", path)
	}
	defer func() { _ = f.Close() }()

	result := make(Map)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, _ := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		result[key] = unquote(strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read env file %s", path)
	}

	log.Debug().Str("file", path).Int("count", len(result)).Msg("Loaded env file")
	return result, nil
}

func unquote(v string) string {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}
