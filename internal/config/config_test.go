package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
hevy:
  base_url: "https://hevy.test"
  api_key: "test-key-123"
program:
  file: "My_Program.xlsx"
  sheet: "4x Per Week"
  name: "Min-Max 4x"
catalog:
  path: "catalog.yaml"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all
// fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Hevy.BaseURL != "https://hevy.test" {
		t.Errorf("hevy.base_url = %q, want %q", cfg.Hevy.BaseURL, "https://hevy.test")
	}
	if cfg.Hevy.APIKey != "test-key-123" {
		t.Errorf("hevy.api_key = %q, want %q", cfg.Hevy.APIKey, "test-key-123")
	}
	if cfg.Program.File != "My_Program.xlsx" {
		t.Errorf("program.file = %q, want %q", cfg.Program.File, "My_Program.xlsx")
	}
	if cfg.Catalog.Path != "catalog.yaml" {
		t.Errorf("catalog.path = %q, want %q", cfg.Catalog.Path, "catalog.yaml")
	}
}

// TestEnvOverride verifies that HEVYLIFT_ env vars take precedence over YAML
// values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("HEVYLIFT_API_KEY", "env-key")
	t.Setenv("HEVYLIFT_PROGRAM_SHEET", "3x Per Week")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Hevy.APIKey != "env-key" {
		t.Errorf("hevy.api_key = %q, want %q", cfg.Hevy.APIKey, "env-key")
	}
	if cfg.Program.Sheet != "3x Per Week" {
		t.Errorf("program.sheet = %q, want %q", cfg.Program.Sheet, "3x Per Week")
	}
	// Unchanged fields should keep YAML values
	if cfg.Program.File != "My_Program.xlsx" {
		t.Errorf("program.file = %q, want %q", cfg.Program.File, "My_Program.xlsx")
	}
}

// TestLoadMissingFileUsesDefaults verifies that a missing config file falls
// back to defaults plus environment, so dry runs need no config at all.
func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Hevy.BaseURL != DefaultBaseURL {
		t.Errorf("base_url = %q, want default %q", cfg.Hevy.BaseURL, DefaultBaseURL)
	}
	if cfg.Program.File != DefaultProgramFile {
		t.Errorf("program.file = %q, want default %q", cfg.Program.File, DefaultProgramFile)
	}
	if cfg.Program.Sheet != DefaultSheet {
		t.Errorf("program.sheet = %q, want default %q", cfg.Program.Sheet, DefaultSheet)
	}
	if cfg.Program.Name != DefaultProgramName {
		t.Errorf("program.name = %q, want default %q", cfg.Program.Name, DefaultProgramName)
	}
}

// TestDefaultsFillEmptyFields verifies partial configs are completed with
// defaults rather than rejected.
func TestDefaultsFillEmptyFields(t *testing.T) {
	cfg, err := Load(writeTemp(t, "hevy:\n  api_key: \"k\"\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Hevy.BaseURL != DefaultBaseURL {
		t.Errorf("base_url = %q, want default", cfg.Hevy.BaseURL)
	}
	if cfg.Program.Sheet != DefaultSheet {
		t.Errorf("program.sheet = %q, want default", cfg.Program.Sheet)
	}
	if cfg.Hevy.APIKey != "k" {
		t.Errorf("api_key = %q, want k", cfg.Hevy.APIKey)
	}
}
