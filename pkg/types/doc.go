// Package types defines the values shared by the translation engine: the
// closed set of path styles, the anchor tokens found in mapping tables, and
// the resolved identity produced when a path is detected.
package types
