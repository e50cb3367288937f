package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.ImplementationType != "" {
		t.Errorf("ImplementationType = %q, want empty", cfg.ImplementationType)
	}
	if cfg.Programmatic || cfg.Decode || cfg.JSON || cfg.Quiet {
		t.Errorf("boolean defaults should be false, got %+v", cfg)
	}
	if cfg.Color != "auto" {
		t.Errorf("Color = %q, want %q", cfg.Color, "auto")
	}
}

func TestLoadLocalConfigOverridesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	content := `{"implementation_type": "ctv", "programmatic": true, "color": "never"}`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.ImplementationType != "ctv" {
		t.Errorf("ImplementationType = %q, want %q", cfg.ImplementationType, "ctv")
	}
	if !cfg.Programmatic {
		t.Error("Programmatic = false, want true")
	}
	if cfg.Color != "never" {
		t.Errorf("Color = %q, want %q", cfg.Color, "never")
	}
}

func TestLoadGlobalConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	globalDir := filepath.Join(home, ".vastcheck")
	if err := os.MkdirAll(globalDir, 0755); err != nil {
		t.Fatalf("Failed to create global config dir: %v", err)
	}
	content := `{"decode": true}`
	if err := os.WriteFile(filepath.Join(globalDir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write global config: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if !cfg.Decode {
		t.Error("Decode = false, want true from global config")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	if err := os.WriteFile(configPath, []byte(`{"implementation_type": "web"}`), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	t.Setenv("VASTCHECK_IMPLEMENTATION_TYPE", "audio")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.ImplementationType != "audio" {
		t.Errorf("ImplementationType = %q, want %q (env should win)", cfg.ImplementationType, "audio")
	}
}

func TestLoadRejectsInvalidImplementationType(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	if err := os.WriteFile(configPath, []byte(`{"implementation_type": "desktop"}`), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Load() accepted invalid implementation_type")
	}
}

func TestLoadRejectsInvalidColorMode(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	if err := os.WriteFile(configPath, []byte(`{"color": "sometimes"}`), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Load() accepted invalid color mode")
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	if err := os.WriteFile(configPath, []byte(`{not json`), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Load() accepted malformed JSON")
	}
}
