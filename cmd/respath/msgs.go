package respath

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Translate resource paths between path styles"
	MsgFormatShort     = "Render a path in another style"
	MsgDetectShort     = "Show the style and resource of a path"
	MsgConfigsShort    = "List or export the translation configurations"
	MsgRoundTripShort  = "Check that a URI survives a trip through another style"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Version output
	MsgVersionFormat = "respath version %s\n"
	MsgCommitFormat  = "  commit: %s\n"
	MsgBuiltFormat   = "  built:  %s\n"

	// Error messages
	MsgErrLoadConfig    = "failed to load configuration: %w"
	MsgErrLoadRegistry  = "failed to load translation configurations: %w"
	MsgErrNoCommand     = "no command specified"
	MsgErrExportMany    = "%d configurations loaded; name the one to export as toml"
	MsgErrRoundTripURI  = "roundtrip needs a URI input, %q was detected as %s"
	MsgErrRoundTripDiff = "round trip of %q returned %q"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Configuration file (default $XDG_CONFIG_HOME/respath/config.toml)"
	MsgFlagFormat  = "Output format: auto, term, text, json or yaml"
	MsgFlagStyle   = "Target style: DriveLetter, UNC, Posix, RFS or URI"
	MsgFlagForce   = "Return the first rendered candidate without validation"
	MsgFlagOnly    = "Only try the named translation configuration"
	MsgFlagSep     = "Separator placed between rendered components"
	MsgFlagVar     = "Replace {key} in the result with value (repeatable)"
	MsgFlagExport  = "Export the configurations as toml or yaml"
	MsgFlagVia     = "Intermediate style of the round trip"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/format-long.txt
	msgFormatLongRaw string
	MsgFormatLong    = strings.TrimSpace(msgFormatLongRaw)

	//go:embed msgs/format-example.txt
	msgFormatExampleRaw string
	MsgFormatExample    = strings.TrimRight(msgFormatExampleRaw, "\n")

	//go:embed msgs/detect-long.txt
	msgDetectLongRaw string
	MsgDetectLong    = strings.TrimSpace(msgDetectLongRaw)

	//go:embed msgs/detect-example.txt
	msgDetectExampleRaw string
	MsgDetectExample    = strings.TrimRight(msgDetectExampleRaw, "\n")

	//go:embed msgs/configs-long.txt
	msgConfigsLongRaw string
	MsgConfigsLong    = strings.TrimSpace(msgConfigsLongRaw)

	//go:embed msgs/configs-example.txt
	msgConfigsExampleRaw string
	MsgConfigsExample    = strings.TrimRight(msgConfigsExampleRaw, "\n")

	//go:embed msgs/roundtrip-long.txt
	msgRoundTripLongRaw string
	MsgRoundTripLong    = strings.TrimSpace(msgRoundTripLongRaw)

	//go:embed msgs/roundtrip-example.txt
	msgRoundTripExampleRaw string
	MsgRoundTripExample    = strings.TrimRight(msgRoundTripExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
