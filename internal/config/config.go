// Package config loads pricer settings.
//
// Precedence, lowest first: built-in defaults, YAML file, .env file,
// process environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/contactkeval/option-pricer/internal/scenario"
)

// Config holds the application settings.
type Config struct {
	Verbosity int                 `yaml:"verbosity"` // 0=error,1=info,2=debug,3=trace
	Addr      string              `yaml:"addr"`      // HTTP listen address
	Decimals  int                 `yaml:"decimals"`  // display precision for prices
	OutputDir string              `yaml:"output_dir"`
	Scenarios []scenario.Scenario `yaml:"scenarios"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Verbosity: 1,
		Addr:      ":8080",
		Decimals:  2,
		Scenarios: scenario.Defaults(),
	}
}

// Load builds the configuration. yamlPath and envPath may be empty; a
// missing .env file is not an error, a missing YAML file is.
func Load(yamlPath, envPath string) (*Config, error) {
	cfg := Default()

	if yamlPath != "" {
		if err := cfg.mergeYAML(yamlPath); err != nil {
			return nil, err
		}
	}

	if envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return nil, fmt.Errorf("failed to load %s file: %w", envPath, err)
			}
		}
	}

	cfg.Verbosity = getEnvInt("PRICER_VERBOSITY", cfg.Verbosity)
	cfg.Addr = getEnv("PRICER_ADDR", cfg.Addr)
	cfg.Decimals = getEnvInt("PRICER_DECIMALS", cfg.Decimals)
	cfg.OutputDir = getEnv("PRICER_OUT_DIR", cfg.OutputDir)

	if cfg.Decimals < 0 {
		cfg.Decimals = 0
	}
	return cfg, nil
}

func (cfg *Config) mergeYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	// Keys present in the file replace defaults, explicit zeros included.
	defaults := cfg.Scenarios
	cfg.Scenarios = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg.Scenarios = defaults
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	if len(cfg.Scenarios) == 0 {
		cfg.Scenarios = defaults
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
