package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ScreenWidth != 1280 || cfg.ScreenHeight != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.PlayPath != "data/plays/prologue.json" {
		t.Errorf("expected default play path, got %q", cfg.PlayPath)
	}
	if !cfg.Resizable {
		t.Error("expected resizable by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FOOTLIGHTS_SCREEN_WIDTH", "800")
	t.Setenv("FOOTLIGHTS_TITLE", "Rehearsal")

	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ScreenWidth != 800 || cfg.Title != "Rehearsal" {
		t.Errorf("expected env overrides, got %+v", cfg)
	}
}

func TestLoadFromDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("FOOTLIGHTS_PORTRAIT_DIR=assets/faces\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	// godotenv sets the variable for the whole process.
	t.Setenv("FOOTLIGHTS_PORTRAIT_DIR", "")
	os.Unsetenv("FOOTLIGHTS_PORTRAIT_DIR")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PortraitDir != "assets/faces" {
		t.Errorf("expected portrait dir from file, got %q", cfg.PortraitDir)
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("FOOTLIGHTS_SCREEN_HEIGHT", "tall")

	_, err := Load(missingEnvFile(t))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadRejectsNonPositiveSize(t *testing.T) {
	t.Setenv("FOOTLIGHTS_SCREEN_WIDTH", "0")

	if _, err := Load(missingEnvFile(t)); err == nil {
		t.Fatal("expected error for zero width")
	}
}
