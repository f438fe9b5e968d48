// Package enum assigns registry ids to canonical paths and renders the
// resulting C++ enumeration.
//
// Member names are derived by replacing '.' and ':' with '_', so distinct
// paths such as "a.b" and "a:b" collapse onto the same identifier. Such
// collisions are reported and the later member is left out instead of
// silently overwriting the earlier one.
package enum
