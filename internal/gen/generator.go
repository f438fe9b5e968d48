package gen

import (
	"fmt"
	"log/slog"

	"bsfield-generator/internal/canon"
	"bsfield-generator/internal/catalog"
	"bsfield-generator/internal/diagnostic"
	"bsfield-generator/internal/enum"
	"bsfield-generator/internal/normalize"
)

// GeneratorConfig holds configuration for artifact generation.
type GeneratorConfig struct {
	// EnumName is the C++ type name of the generated enumeration.
	EnumName string
	// AnnotatedPath is where the catalog with bs_fields is written.
	AnnotatedPath string
	// GlobalPath is where the flat list of canonical paths is written.
	GlobalPath string
	// EnumPath is where the enumeration artifact is written.
	EnumPath string
}

// Generator runs the normalization pipeline over a catalog and renders the
// output artifacts.
type Generator struct {
	config GeneratorConfig
	logger *slog.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, logger *slog.Logger) *Generator {
	return &Generator{config: config, logger: logger}
}

// GeneratedFile is one output artifact.
type GeneratedFile struct {
	// Path is where the file is written.
	Path string
	// Content is the rendered file body.
	Content []byte
}

// Result is the outcome of a generation.
type Result struct {
	// Files are the artifacts in write order: annotated catalog, global
	// list, enum.
	Files []GeneratedFile
	// Global lists every accepted canonical path in first-seen order.
	Global []string
	// Assignment holds the enum entries and what was left out of them.
	Assignment enum.Assignment
	// Diagnostics merges the findings of every stage.
	Diagnostics diagnostic.Diagnostics
}

// Generate annotates c in place with bs_fields, assigns ids from reg and
// renders the artifacts. Nothing is written to disk.
func (g *Generator) Generate(c *catalog.Catalog, reg enum.Registry) (*Result, error) {
	pipeline := canon.NewPipeline(g.logger, normalize.NewEngine(g.logger))
	pipeline.Run(c)

	res := &Result{Global: pipeline.Global()}
	res.Diagnostics.Merge(pipeline.Diagnostics())

	res.Assignment = enum.Assign(g.logger, res.Global, reg)
	res.Diagnostics.Merge(res.Assignment.Diagnostics)

	annotated, err := catalog.Encode(c)
	if err != nil {
		return nil, fmt.Errorf("encoding annotated catalog: %w", err)
	}

	global, err := catalog.Encode(res.Global)
	if err != nil {
		return nil, fmt.Errorf("encoding global field list: %w", err)
	}

	enumBody, err := enum.Render(g.config.EnumName, res.Assignment.Entries)
	if err != nil {
		return nil, err
	}

	res.Files = []GeneratedFile{
		{Path: g.config.AnnotatedPath, Content: annotated},
		{Path: g.config.GlobalPath, Content: global},
		{Path: g.config.EnumPath, Content: enumBody},
	}

	return res, nil
}
