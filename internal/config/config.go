// Package config loads threshold overrides for the corpusclean command.
//
// Priority: ENV > YAML > defaults (via env-default tags). The YAML file
// path comes from the CONFIG_PATH env var (fallback "./corpusclean.yaml").
// CLI flags, applied by the command itself, override everything here.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config carries the tunable filter thresholds. Defaults mirror the
// clean package's Default* constants.
type Config struct {
	MinScore float64 `yaml:"min_score" env:"CLEAN_MIN_SCORE" env-default:"1.1"`
	MaxWords int     `yaml:"max_words" env:"CLEAN_MAX_WORDS" env-default:"80"`
	MaxRatio float64 `yaml:"max_ratio" env:"CLEAN_MAX_RATIO" env-default:"3.0"`
	Dedup    bool    `yaml:"dedup" env:"CLEAN_DEDUP" env-default:"false"`
}

// Load reads configuration from the YAML file and environment. If the
// file does not exist and CONFIG_PATH was not set explicitly, only ENV
// and defaults are used.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./corpusclean.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate rejects threshold values the filters cannot work with.
func (c *Config) Validate() error {
	if c.MaxWords < 1 {
		return fmt.Errorf("max_words must be >= 1, got %d", c.MaxWords)
	}
	if c.MaxRatio < 1 {
		return fmt.Errorf("max_ratio must be >= 1, got %g", c.MaxRatio)
	}
	return nil
}
