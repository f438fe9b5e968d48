// Package canon filters normalization candidates down to canonical paths.
//
// A canonical path consists only of [a-zA-Z0-9_:.] characters. Candidates
// that still carry unresolved syntax (dereferences, accessor calls, presence
// or emptiness checks) are rejected; item(pos) and list_value(N) calls are
// collapsed before the final character-class test. Rejection is ordinary:
// many expressions are simply not convertible.
package canon
