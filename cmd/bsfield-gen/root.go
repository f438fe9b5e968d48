package main

import (
	"github.com/spf13/cobra"

	"bsfield-generator/internal/config"
	"bsfield-generator/internal/gen"
	"bsfield-generator/internal/logging"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bsfield-gen [catalog]",
		Short: "Generate canonical bs field paths and the BsFieldEnum enumeration",
		Long: "bsfield-gen reads a feature catalog (default data/adlog_fields.json), " +
			"annotates every feature with its canonical bs field paths and writes " +
			"the global path list and the id-sorted BsFieldEnum declaration.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	v := config.New()

	err := config.ReadFile(v)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		v.Set("catalog_path", args[0])
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger := logging.WithRunID(logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr()))

	res, err := gen.Run(logger, cfg.CatalogPath, cfg.RegistryPath, gen.GeneratorConfig{
		EnumName:      cfg.EnumName,
		AnnotatedPath: cfg.AnnotatedPath,
		GlobalPath:    cfg.GlobalPath,
		EnumPath:      cfg.EnumPath,
	})
	if err != nil {
		logger.Error("generation failed", "error", err)
		return err
	}

	if res.Diagnostics.HasErrors() {
		// Collisions are anomalies to follow up on, not a failed run.
		logger.Error("generation finished with errors", "errors", res.Diagnostics.Error())
	}

	logger.Info("generation finished",
		"bs_fields", len(res.Global),
		"enum_entries", len(res.Assignment.Entries),
		"missing_ids", len(res.Assignment.Missing))

	return nil
}
