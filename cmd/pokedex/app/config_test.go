package app

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadConfig verifies defaults when nothing is configured.
func TestLoadConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LOG_OUTPUT", "")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
	if config.LogOutput != "stderr" {
		t.Errorf("LogOutput = %q, want stderr", config.LogOutput)
	}
	if config.DataPath != "" || config.UseEmbeddedCatalog {
		t.Errorf("unexpected catalog source: %+v", config)
	}
}

// TestConfig_EnvironmentVariables verifies POKEDEX_* variables are read.
func TestConfig_EnvironmentVariables(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("POKEDEX_DATA_PATH", "/srv/pokemon.json.zst")
	t.Setenv("POKEDEX_USE_EMBEDDED_CATALOG", "true")
	t.Setenv("POKEDEX_API_KEY", "secret")
	t.Setenv("POKEDEX_FORMAT", "yaml")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.DataPath != "/srv/pokemon.json.zst" {
		t.Errorf("DataPath = %q", config.DataPath)
	}
	if !config.UseEmbeddedCatalog {
		t.Error("POKEDEX_USE_EMBEDDED_CATALOG not loaded")
	}
	if config.APIKey != "secret" {
		t.Errorf("APIKey = %q, want secret", config.APIKey)
	}
	if config.Format != "yaml" {
		t.Errorf("Format = %q, want yaml", config.Format)
	}
}

// TestConfig_File verifies the config file is read and env vars override it.
func TestConfig_File(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "pokedex.yaml")
	content := "data_path: catalog.yaml\nlog_level: debug\nlog_format: json\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("LOG_LEVEL", "")

	config, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}

	if config.ConfigFile != path {
		t.Errorf("ConfigFile = %q, want %q", config.ConfigFile, path)
	}
	if config.DataPath != "catalog.yaml" {
		t.Errorf("DataPath = %q", config.DataPath)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", config.LogLevel)
	}
	if config.LogFormat != "console" {
		t.Errorf("LogFormat = %q, want console (env wins)", config.LogFormat)
	}
}

// TestConfig_MissingExplicitFile verifies an explicit config path must exist.
func TestConfig_MissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

// TestConfig_UpdateFromFlags verifies flags take precedence.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{Format: "table", DataPath: "a.json"}
	config.UpdateFromFlags(true, false, true, "json", "trace", "b.yaml", true)

	if !config.Verbose || config.Quiet || !config.NoColor {
		t.Errorf("booleans not applied: %+v", config)
	}
	if config.Format != "json" || config.LogLevel != "trace" || config.DataPath != "b.yaml" {
		t.Errorf("strings not applied: %+v", config)
	}
	if !config.UseEmbeddedCatalog {
		t.Error("embedded flag not applied")
	}

	config.UpdateFromFlags(false, false, false, "", "", "", false)
	if config.Format != "json" || config.DataPath != "b.yaml" {
		t.Errorf("empty flags overwrote values: %+v", config)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := expandHome("~/data/pokemon.json"); got != filepath.Join(home, "data/pokemon.json") {
		t.Errorf("expandHome() = %q", got)
	}
	if got := expandHome("/abs/pokemon.json"); got != "/abs/pokemon.json" {
		t.Errorf("expandHome() = %q", got)
	}
}
