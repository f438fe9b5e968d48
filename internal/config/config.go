package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables the generator reads.
const EnvPrefix = "BSFIELD"

// Config holds all runtime configuration for a generator run.
// Values come from built-in defaults, an optional .bsfield.yaml in the
// working directory, BSFIELD_LOG_* env vars, and the CLI argument.
type Config struct {
	CatalogPath   string `mapstructure:"catalog_path"`
	RegistryPath  string `mapstructure:"registry_path"`
	AnnotatedPath string `mapstructure:"annotated_path"`
	GlobalPath    string `mapstructure:"global_path"`
	EnumPath      string `mapstructure:"enum_path"`
	EnumName      string `mapstructure:"enum_name"`
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// New returns a viper instance with defaults, the logging env bindings and
// the optional config file location set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("catalog_path", filepath.Join("data", "adlog_fields.json"))
	v.SetDefault("registry_path", filepath.Join("data", "feature_config_map.json"))
	v.SetDefault("annotated_path", filepath.Join("data", "adlog_fields_bs.json"))
	v.SetDefault("global_path", filepath.Join("data", "all_bs_fields.json"))
	v.SetDefault("enum_path", filepath.Join("data", "bs_fields_enum.h"))
	v.SetDefault("enum_name", "BsFieldEnum")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetEnvPrefix(EnvPrefix)
	// Only logging is configurable through the environment.
	_ = v.BindEnv("log_level")
	_ = v.BindEnv("log_format")

	v.SetConfigName(".bsfield")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	return v
}

// ReadFile reads the config file if one exists. A missing file is fine; a
// malformed one is not.
func ReadFile(v *viper.Viper) error {
	err := v.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config

	err := v.Unmarshal(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if !slices.Contains(logLevels, cfg.LogLevel) {
		return Config{}, fmt.Errorf("log_level %q: expected one of %v", cfg.LogLevel, logLevels)
	}

	if !slices.Contains(logFormats, cfg.LogFormat) {
		return Config{}, fmt.Errorf("log_format %q: expected one of %v", cfg.LogFormat, logFormats)
	}

	for key, path := range map[string]string{
		"catalog_path":   cfg.CatalogPath,
		"registry_path":  cfg.RegistryPath,
		"annotated_path": cfg.AnnotatedPath,
		"global_path":    cfg.GlobalPath,
		"enum_path":      cfg.EnumPath,
	} {
		if path == "" {
			return Config{}, fmt.Errorf("%s must not be empty", key)
		}
	}

	return cfg, nil
}
