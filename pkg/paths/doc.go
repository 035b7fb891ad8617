// Package paths is the public entry point of respath.
//
// A Path is built from a raw string and a translation registry. Construction
// runs detection: the enabled configurations are tried in registry order and,
// within each configuration, every grammar in detection order. The first
// grammar that claims the string fixes the path's identity.
//
//	reg, _ := translation.NewLoader(nil).BuiltinRegistry()
//	p := paths.New("thirdbase://FFMpeg/4.4.1", reg)
//	posix, err := p.Format(types.StylePosix)
//
// Format renders the identity into any grammar. It walks the same ordered
// configuration list, renders a candidate with each one and returns the
// first candidate the configuration's validator accepts. Configurations
// that cannot render the identity, or whose placeholders cannot be
// resolved, are skipped. Only when every configuration has been tried does
// Format fail, with errors.ErrAllConfigsExhausted.
//
// String never fails. It renders with the default style and falls back to
// the raw input.
//
// The package also locates respath's own files (configuration and log
// directories) following the XDG base directory layout; see Dirs.
package paths
