package gen

import (
	"log/slog"

	"bsfield-generator/internal/catalog"
	"bsfield-generator/internal/registry"
)

// Run loads the catalog and the registry, generates every artifact and
// writes them out. Inputs are fully loaded and validated before the first
// file is written, so an input error leaves existing outputs untouched.
func Run(logger *slog.Logger, catalogPath, registryPath string, config GeneratorConfig) (*Result, error) {
	c, err := catalog.LoadFile(catalogPath)
	if err != nil {
		return nil, err
	}

	reg, err := registry.LoadFile(registryPath)
	if err != nil {
		return nil, err
	}

	logger.Info("inputs loaded",
		"catalog", catalogPath,
		"features", len(c.Features),
		"registry", registryPath,
		"registered_paths", reg.Len())

	res, err := NewGenerator(config, logger).Generate(c, reg)
	if err != nil {
		return nil, err
	}

	err = WriteFiles(res.Files)
	if err != nil {
		return nil, err
	}

	for _, f := range res.Files {
		logger.Info("artifact written", "path", f.Path, "bytes", len(f.Content))
	}

	return res, nil
}
