// Package config loads this repository's own runtime configuration (log
// mode, default concurrency, default ontology path) — distinct from the
// ontology axioms package. Settings come from one TOML config file (the
// project file, or else the user file) with env var overrides on top,
// read through spf13/viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const envPrefix = "ELREASON"

// Config is this repository's runtime configuration.
type Config struct {
	// LogMode selects obslog.New's mode ("dev" or "prod").
	LogMode string `mapstructure:"log_mode"`
	// Concurrency bounds SubsumersBatch's in-flight goroutines.
	Concurrency int `mapstructure:"concurrency"`
	// OntologyPath is the ontology source file ResolveOntologyPath falls
	// back to when the command-line path argument is an empty string. The
	// commands still require that positional argument to be present.
	OntologyPath string `mapstructure:"ontology_path"`
}

func defaults() Config {
	return Config{
		LogMode:     "dev",
		Concurrency: 4,
	}
}

// Load reads the first .elreason.toml it finds, looking in the current
// working directory and then in the user's home directory, then applies
// ELREASON_* environment overrides. When a project file exists the user
// file is not read at all; the two are not merged. A missing file in
// either location is not an error; Load always returns a usable Config.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigName(".elreason")

	if cwd, err := os.Getwd(); err == nil {
		v.AddConfigPath(cwd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	cfg := defaults()
	v.SetDefault("log_mode", cfg.LogMode)
	v.SetDefault("concurrency", cfg.Concurrency)
	v.SetDefault("ontology_path", cfg.OntologyPath)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return cfg, fmt.Errorf("config: reading .elreason.toml: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decoding configuration: %w", err)
	}
	return cfg, nil
}

// ResolveOntologyPath returns path if non-empty, otherwise cfg.OntologyPath
// resolved against the current working directory, or an error if neither
// is set.
func ResolveOntologyPath(cfg Config, path string) (string, error) {
	if path != "" {
		return path, nil
	}
	if cfg.OntologyPath == "" {
		return "", fmt.Errorf("config: no ontology path given and no default configured")
	}
	if filepath.IsAbs(cfg.OntologyPath) {
		return cfg.OntologyPath, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: resolving default ontology path: %w", err)
	}
	return filepath.Join(cwd, cfg.OntologyPath), nil
}
