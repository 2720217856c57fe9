package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Hevy    HevyConfig    `yaml:"hevy"`
	Program ProgramConfig `yaml:"program"`
	Catalog CatalogConfig `yaml:"catalog"`
}

type HevyConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

type ProgramConfig struct {
	File  string `yaml:"file"`
	Sheet string `yaml:"sheet"`
	Name  string `yaml:"name"`
}

type CatalogConfig struct {
	Path string `yaml:"path"`
}

// Default values used when the config file leaves a field empty.
const (
	DefaultBaseURL     = "https://api.hevyapp.com"
	DefaultProgramFile = "Min-Max_Program_4x.xlsx"
	DefaultSheet       = "4x Per Week"
	DefaultProgramName = "Min-Max 4x"
)

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. Env vars use the prefix HEVYLIFT_:
//
//	HEVYLIFT_API_KEY, HEVYLIFT_BASE_URL,
//	HEVYLIFT_PROGRAM_FILE, HEVYLIFT_PROGRAM_SHEET, HEVYLIFT_PROGRAM_NAME,
//	HEVYLIFT_CATALOG_PATH
//
// A missing config file is not an error: the tool can run on defaults plus
// environment, which is how dry runs usually happen.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case os.IsNotExist(err):
		// fall through to env + defaults
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HEVYLIFT_API_KEY"); v != "" {
		cfg.Hevy.APIKey = v
	}
	if v := os.Getenv("HEVYLIFT_BASE_URL"); v != "" {
		cfg.Hevy.BaseURL = v
	}
	if v := os.Getenv("HEVYLIFT_PROGRAM_FILE"); v != "" {
		cfg.Program.File = v
	}
	if v := os.Getenv("HEVYLIFT_PROGRAM_SHEET"); v != "" {
		cfg.Program.Sheet = v
	}
	if v := os.Getenv("HEVYLIFT_PROGRAM_NAME"); v != "" {
		cfg.Program.Name = v
	}
	if v := os.Getenv("HEVYLIFT_CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Hevy.BaseURL == "" {
		cfg.Hevy.BaseURL = DefaultBaseURL
	}
	if cfg.Program.File == "" {
		cfg.Program.File = DefaultProgramFile
	}
	if cfg.Program.Sheet == "" {
		cfg.Program.Sheet = DefaultSheet
	}
	if cfg.Program.Name == "" {
		cfg.Program.Name = DefaultProgramName
	}
}

// validate checks structural fields. The API key is deliberately not
// required here: dry runs and preview mode never contact Hevy. main
// enforces the key before submitting.
func (c *Config) validate() error {
	if c.Program.File == "" {
		return fmt.Errorf("program.file is required")
	}
	if c.Program.Sheet == "" {
		return fmt.Errorf("program.sheet is required")
	}
	if c.Hevy.BaseURL == "" {
		return fmt.Errorf("hevy.base_url is required")
	}
	return nil
}
