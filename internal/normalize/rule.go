package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=RuleKind -output=rule_kind_string.go

// RuleKind identifies a normalization rule.
type RuleKind int

const (
	_ RuleKind = iota // zero value means no rule fired

	RuleIntVar
	RuleDerefMap
	RuleDerefScalar
	RuleAccessorMap
	RuleAccessorScalar
	RuleFallback
)

// Rule is one (matcher, rewriter, arity) entry of the normalization table.
type Rule struct {
	Kind RuleKind
	// Pattern matches the fragment that is rewritten.
	Pattern *regexp.Regexp
	// Replacement returns the regexp replacement template for a variable key.
	// It may reference capture groups of Pattern.
	Replacement func(key int) string
	// Suffixes lists what is appended to the rewritten expression, one
	// candidate per entry. A nil Suffixes yields the rewritten expression alone.
	Suffixes []string
}

// mapSuffixes expand a map-typed value into its key and value halves.
var mapSuffixes = []string{".key", ".value"}

// Apply rewrites expr with key and returns the candidates, or nil when the
// rule does not match.
func (r Rule) Apply(expr string, key int) []string {
	if !r.Pattern.MatchString(expr) {
		return nil
	}

	s := StripCalls(r.Pattern.ReplaceAllString(expr, r.Replacement(key)))
	if r.Suffixes == nil {
		return []string{s}
	}

	out := make([]string, 0, len(r.Suffixes))
	for _, suffix := range r.Suffixes {
		out = append(out, s+suffix)
	}

	return out
}

// Arity is the number of candidates the rule emits on a match.
func (r Rule) Arity() int {
	if r.Suffixes == nil {
		return 1
	}

	return len(r.Suffixes)
}

// StripCalls removes every empty call marker "()" from expr.
func StripCalls(expr string) string {
	return strings.ReplaceAll(expr, "()", "")
}

// IntVarRule returns the rule resolving find(name)->second lookups.
func IntVarRule(name string) Rule {
	return Rule{
		Kind:    RuleIntVar,
		Pattern: regexp.MustCompile(`find\(` + regexp.QuoteMeta(name) + `\)->second`),
		Replacement: func(key int) string {
			return "key:" + strconv.Itoa(key)
		},
	}
}

// CommonInfoRules returns the common info rules in priority order:
// iterator dereference before the common_info_attr(i) accessor, map-typed
// before scalar-typed within each shape.
func CommonInfoRules() []Rule {
	derefKey := func(key int) string {
		return "key:" + strconv.Itoa(key)
	}
	accessorKey := func(key int) string {
		return "${1}.common_info_attr.key:" + strconv.Itoa(key)
	}

	return []Rule{
		{
			Kind:        RuleDerefMap,
			Pattern:     regexp.MustCompile(`\(\*(.*)\.begin\(\)\)\.map[a-z0-9_]+`),
			Replacement: derefKey,
			Suffixes:    mapSuffixes,
		},
		{
			Kind:        RuleDerefScalar,
			Pattern:     regexp.MustCompile(`\(\*(.*)\.begin\(\)\)\.(?:int|float|string)[a-z0-9_]+`),
			Replacement: derefKey,
		},
		{
			Kind:        RuleAccessorMap,
			Pattern:     regexp.MustCompile(`(.*)\.common_info_attr\(i\)\.map[a-z0-9_]+`),
			Replacement: accessorKey,
			Suffixes:    mapSuffixes,
		},
		{
			Kind:        RuleAccessorScalar,
			Pattern:     regexp.MustCompile(`(.*)\.common_info_attr\(i\)\.(?:int|float|string)[a-z0-9_]+`),
			Replacement: accessorKey,
		},
	}
}
