// Package translation holds the translation configurations that drive path
// detection and rendering.
//
// A translation configuration is a named, ordered table of resource mappings.
// Each mapping entry binds a logical resource name (thirdbase, apps, dist, ...)
// to one anchor token list per path style. Configurations are collected into
// a Registry whose order is the priority order: the first configuration that
// detects or renders a path wins.
//
// # Search path
//
// Configurations are loaded from an ordered list of directories, separated by
// os.PathListSeparator and usually supplied through RESPATH_TRANSLATION_MAP_PATH
// (SC_TRANSLATION_MAP_PATH is honoured as a fallback). Each directory holds one
// translation_map.toml, translation_map.yaml or translation_map.yml:
//
//	name = "local"
//	validator = "exists"
//
//	[[mapping]]
//	name = "thirdbase"
//	[mapping.styles]
//	Posix = ["$HOME", ".config", "rlp", "$RLP_SITE", "thirdbase"]
//	URI = ["thirdbase"]
//
// Tokens starting with $ are placeholders resolved from the environment at
// render time, tokens starting with @ are read from the identity metadata,
// everything else is literal. An optional file named "enabled" next to the
// table overrides its enabled flag.
//
// The configurations shipped with the tool (local, network, dev) are embedded
// and available through Builtin and BuiltinRegistry.
package translation
