package canon

import (
	"log/slog"

	"bsfield-generator/internal/catalog"
	"bsfield-generator/internal/common"
	"bsfield-generator/internal/diagnostic"
	"bsfield-generator/internal/normalize"
)

// Pipeline annotates features with canonical paths and accumulates the
// global field set across them. It is meant for a single run.
type Pipeline struct {
	logger *slog.Logger
	engine *normalize.Engine
	global common.OrderedSet[string]
	diags  diagnostic.Diagnostics
}

// NewPipeline creates a Pipeline expanding expressions with engine.
func NewPipeline(logger *slog.Logger, engine *normalize.Engine) *Pipeline {
	return &Pipeline{logger: logger, engine: engine}
}

// Run processes every feature of c in declaration order.
func (p *Pipeline) Run(c *catalog.Catalog) {
	for _, f := range c.Features {
		p.Feature(f)
	}

	p.logger.Info("canonical paths collected", "features", len(c.Features), "paths", p.global.Len())
}

// Feature sets f.BSFields to the accepted canonical paths of f and merges
// them into the global set.
func (p *Pipeline) Feature(f *catalog.Feature) {
	candidates := p.engine.Candidates(f)
	accepted := make([]string, 0, len(candidates))

	var seen common.OrderedSet[string]

	for _, c := range candidates {
		path, ok := Canonicalize(c)
		if !ok {
			p.logger.Debug("candidate rejected", "feature", f.Name, "candidate", c, "reason", path)
			continue
		}

		// Distinct candidates can rewrite to the same path, e.g. item(pos) and item.
		if seen.Add(path) {
			accepted = append(accepted, path)
		}
	}

	f.BSFields = accepted
	p.global.Add(accepted...)

	if len(accepted) == 0 && len(f.AdlogFields) > 0 {
		p.diags.AddInfo(diagnostic.CodeEmptyFeature, "no expression produced a canonical path", f.Name, "")
	}

	p.logger.Info("feature processed",
		"feature", f.Name,
		"expressions", len(f.AdlogFields),
		"candidates", len(candidates),
		"bs_fields", len(accepted))
}

// Global returns the distinct accepted paths of all processed features in
// first-seen order.
func (p *Pipeline) Global() []string {
	return p.global.Items()
}

// Diagnostics returns what the pipeline recorded so far.
func (p *Pipeline) Diagnostics() diagnostic.Diagnostics {
	return p.diags
}
