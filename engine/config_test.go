package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/maestro/constants"
)

// TestLoadConfigAbsent verifies a missing file yields the defaults
func TestLoadConfigAbsent(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Absent config file errored: %v", err)
	}
	def := DefaultConfig()
	if *cfg != *def {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

// TestLoadConfigOverlay verifies file values overlay the defaults and
// unspecified fields keep theirs
func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maestro.yaml")
	body := "width: 1920\nheight: 1080\nsource: socket\ntracker_url: ws://tracker:7000/hands\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 1920 || cfg.Height != 1080 {
		t.Errorf("Size not applied: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Source != "socket" || cfg.TrackerURL != "ws://tracker:7000/hands" {
		t.Errorf("Source not applied: %s %s", cfg.Source, cfg.TrackerURL)
	}
	if cfg.Scheme != DefaultConfig().Scheme {
		t.Errorf("Unset scheme changed: %s", cfg.Scheme)
	}
	if cfg.Persistence != constants.TrailPersistence {
		t.Errorf("Unset persistence changed: %f", cfg.Persistence)
	}
}

// TestLoadConfigMalformed verifies a broken file is an error, not a
// silent fallback
func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected parse error for malformed config")
	}
}

// TestLoadConfigSanitizes verifies nonsense values fall back to safe
// defaults
func TestLoadConfigSanitizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odd.yaml")
	body := "width: -5\nheight: 0\npersistence: 7.5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != constants.CanvasWidth || cfg.Height != constants.CanvasHeight {
		t.Errorf("Size not sanitized: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Persistence != constants.TrailPersistence {
		t.Errorf("Persistence not sanitized: %f", cfg.Persistence)
	}
}
