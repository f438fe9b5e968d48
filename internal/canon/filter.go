package canon

import (
	"regexp"
	"strings"
)

// Predicate rejects malformed candidates before they are rewritten.
type Predicate struct {
	// Reason names the predicate in logs.
	Reason string
	Reject func(candidate string) bool
}

// Rewrite normalizes the shape of a surviving candidate.
type Rewrite struct {
	Name  string
	Apply func(candidate string) string
}

// Reasons reported for candidates that fail the final acceptance test.
const (
	ReasonUnresolvedCall = "unresolved call"
	ReasonInvalidChars   = "invalid characters"
)

var (
	listValueCall = regexp.MustCompile(`(.*)\.list_value\(\d+\)`)
	canonicalPath = regexp.MustCompile(`^[a-zA-Z0-9_:.]+$`)
)

// Predicates are evaluated on the raw candidate; any match rejects it.
var Predicates = []Predicate{
	{"unresolved dereference", func(s string) bool { return strings.HasPrefix(s, "(*") }},
	{"name value", func(s string) bool { return strings.HasSuffix(s, "name_value") }},
	{"bare item", func(s string) bool { return strings.HasSuffix(s, "adlog.item(pos)") }},
	{"emptiness check", func(s string) bool { return strings.HasSuffix(s, ".empty") }},
	{"unresolved accessor", func(s string) bool { return strings.Contains(s, "common_info_attr(i).") }},
	{"presence check", func(s string) bool { return strings.Contains(s, "has_") }},
}

// Rewrites are applied in order to every candidate that passed Predicates.
var Rewrites = []Rewrite{
	{"item index", func(s string) string { return strings.ReplaceAll(s, "item(pos)", "item") }},
	{"list index", func(s string) string { return listValueCall.ReplaceAllString(s, "${1}.list_value") }},
}

// Canonicalize filters and rewrites a candidate. It returns the canonical
// path and true, or the rejection reason and false.
func Canonicalize(candidate string) (string, bool) {
	for _, p := range Predicates {
		if p.Reject(candidate) {
			return p.Reason, false
		}
	}

	s := candidate
	for _, r := range Rewrites {
		s = r.Apply(s)
	}

	if strings.Contains(s, "(") {
		return ReasonUnresolvedCall, false
	}

	if !IsCanonical(s) {
		return ReasonInvalidChars, false
	}

	return s, true
}

// IsCanonical reports whether s is a well-formed canonical path.
func IsCanonical(s string) bool {
	return canonicalPath.MatchString(s)
}
