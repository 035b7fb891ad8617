// Package styles implements the path grammars: DriveLetter, UNC, Posix, RFS
// and URI.
//
// Every grammar provides two operations. Detect decides whether a raw string
// belongs to the grammar and, with the help of the anchor package, matches it
// against one translation configuration. Render resolves an identity's anchor
// for the grammar and joins it with the residual segments.
//
// Detection never returns an error: a grammar either claims the path for a
// configuration or it does not. Render errors carry the codes from pkg/errors
// and only disqualify the configuration being tried.
package styles
