package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hamidzr/screenfix/model"
)

func setupHome(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, ".config"))
	return tempDir
}

func writeProfile(t *testing.T, home, profile string, lines ...string) {
	t.Helper()
	configDir := filepath.Join(home, ".config", model.ProjectName, profile)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoadProfile_NormalizesKeyVariants(t *testing.T) {
	home := setupHome(t)
	writeProfile(t, home, "device",
		"OverrideWidth: 750",
		"override-height: 1334",
		"onMissing: abort",
	)

	cfg, err := LoadProfile("device")
	if err != nil {
		t.Fatalf("LoadProfile returned error: %v", err)
	}

	if cfg.OverrideWidth != 750 || cfg.OverrideHeight != 1334 {
		t.Fatalf("expected override 750x1334, got %vx%v", cfg.OverrideWidth, cfg.OverrideHeight)
	}
	if cfg.OnMissing != model.OnMissingAbort {
		t.Fatalf("expected on_missing abort, got %q", cfg.OnMissing)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level, got %q", cfg.LogLevel)
	}
}

func TestLoadProfile_DetectsDuplicateKeys(t *testing.T) {
	home := setupHome(t)
	writeProfile(t, home, "device",
		"override_width: 600",
		"OverrideWidth: 800",
	)

	if _, err := LoadProfile("device"); err == nil {
		t.Fatal("expected error due to duplicate key variants, got nil")
	}
}

func TestLoadProfile_RejectsUnknownKeys(t *testing.T) {
	home := setupHome(t)
	writeProfile(t, home, "device",
		"overide_width: 750",
		"override_height: 1334",
	)

	cfg, err := LoadProfile("device")
	if err == nil {
		t.Fatalf("expected error for misspelled key, got config %+v", cfg)
	}
	if !strings.Contains(err.Error(), `invalid key "overide_width"`) {
		t.Fatalf("expected the misspelled key in the error, got %v", err)
	}
}

func TestLoadProfile_FallsBackToDefaults(t *testing.T) {
	setupHome(t)

	cfg, err := LoadProfile("missing")
	if err != nil {
		t.Fatalf("LoadProfile returned error: %v", err)
	}
	if *cfg != *model.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadProfile_FallsBackToSharedConfig(t *testing.T) {
	home := setupHome(t)
	writeProfile(t, home, "", "platform: ios")

	cfg, err := LoadProfile("device")
	if err != nil {
		t.Fatalf("LoadProfile returned error: %v", err)
	}
	if cfg.Platform != "ios" {
		t.Fatalf("expected platform ios, got %q", cfg.Platform)
	}
}
