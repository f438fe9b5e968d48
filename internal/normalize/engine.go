package normalize

import (
	"log/slog"

	"bsfield-generator/internal/catalog"
	"bsfield-generator/internal/common"
)

// Expansion is the outcome of normalizing one raw expression.
type Expansion struct {
	// Expr is the raw expression.
	Expr string
	// Rule is the variable rule that fired, or RuleFallback if none did.
	Rule RuleKind
	// Var is the variable whose key parameterized the rewrite, if any.
	Var string
	// Candidates holds the rule output followed by the fallback candidate.
	Candidates []string
}

// Engine turns raw field expressions into canonical path candidates.
type Engine struct {
	logger  *slog.Logger
	common  []Rule
	intVars map[string]Rule
}

// NewEngine creates an Engine logging rule hits at debug level.
func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{
		logger:  logger,
		common:  CommonInfoRules(),
		intVars: make(map[string]Rule),
	}
}

// Expand normalizes a single expression against the feature's variable tables.
//
// Integer variables are tried first, in declaration order; the first one
// whose find(name)->second lookup occurs in expr wins. Only if none matched
// are the common info rules tried. The fallback candidate (expr with call
// markers stripped) is always appended.
func (e *Engine) Expand(expr string, intVar, commonInfoVar catalog.VarTable) Expansion {
	exp := Expansion{Expr: expr, Rule: RuleFallback}

	for _, v := range intVar {
		if out := e.intVarRule(v.Name).Apply(expr, v.Key); out != nil {
			exp.Rule, exp.Var, exp.Candidates = RuleIntVar, v.Name, out
			break
		}
	}

	// The common info shapes do not mention the variable name, so the first
	// declared variable supplies the key.
	if exp.Rule == RuleFallback {
		if v, ok := common.First(commonInfoVar); ok {
			for _, rule := range e.common {
				if out := rule.Apply(expr, v.Key); out != nil {
					exp.Rule, exp.Var, exp.Candidates = rule.Kind, v.Name, out
					break
				}
			}
		}
	}

	exp.Candidates = append(exp.Candidates, StripCalls(expr))

	return exp
}

// Candidates expands every adlog field of f and returns the distinct
// candidates in first-produced order.
func (e *Engine) Candidates(f *catalog.Feature) []string {
	var set common.OrderedSet[string]

	for _, expr := range f.AdlogFields {
		exp := e.Expand(expr, f.IntVar, f.CommonInfoVar)
		if exp.Rule != RuleFallback {
			e.logger.Debug("rule matched",
				"feature", f.Name,
				"rule", exp.Rule.String(),
				"var", exp.Var,
				"expr", expr,
				"candidates", exp.Candidates[:len(exp.Candidates)-1])
		}

		set.Add(exp.Candidates...)
	}

	return set.Items()
}

func (e *Engine) intVarRule(name string) Rule {
	rule, ok := e.intVars[name]
	if !ok {
		rule = IntVarRule(name)
		e.intVars[name] = rule
	}

	return rule
}
