// Package anchor matches decomposed path segments against the anchor token
// lists of a translation configuration, and resolves those token lists into
// concrete path components at render time.
//
// Matching always accepts a position whose segment is textually equal to the
// token as written in the mapping table. Under MatchResolved a placeholder or
// computed token may also match the components its value splits into, which
// lets filesystem paths built from $HOME and friends be detected again.
package anchor
