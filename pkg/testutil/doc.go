// Package testutil provides fixtures for testing respath components.
//
// Key components:
//   - Scenario helpers: the reference "local" configuration, its environment
//     and registry builders for engine tests
//   - TestEnvironment: isolates configuration, state and translation search
//     paths from the user's files, for tests that load configuration
//
// All test data is defined inline; filesystems are afero MemMapFs unless a
// test needs files that code outside afero reads (configuration files).
package testutil
