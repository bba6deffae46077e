// Package config loads the command line tool configuration.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the file.
const (
	EnvRenderer = "ANCHORS_RENDERER"
	EnvDatabase = "ANCHORS_DATABASE"
	EnvLocale   = "ANCHORS_LOCALE"
	EnvStrict   = "ANCHORS_STRICT"
)

type Config struct {
	// Renderer names the anchor renderer used when expanding ("a" or "span").
	Renderer string `yaml:"renderer"`
	// Database is the SQLite file holding the page table.
	Database string `yaml:"database"`
	Locale   string `yaml:"locale"`
	// Strict turns unknown blocks, entities and styles into errors.
	Strict bool `yaml:"strict"`
	Log    struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// LoadConfig reads the YAML file at path, then applies .env and environment
// overrides. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if renderer := os.Getenv(EnvRenderer); renderer != "" {
		cfg.Renderer = renderer
	}
	if database := os.Getenv(EnvDatabase); database != "" {
		cfg.Database = database
	}
	if locale := os.Getenv(EnvLocale); locale != "" {
		cfg.Locale = locale
	}
	if strict := os.Getenv(EnvStrict); strict != "" {
		value, err := strconv.ParseBool(strict)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", EnvStrict, strict, err)
		}
		cfg.Strict = value
	}

	return &cfg, nil
}
