package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		t.Errorf("screen size = %dx%d, want positive", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Stats.Mode != "polling" && cfg.Stats.Mode != "continuous" {
		t.Errorf("mode = %q, want polling or continuous", cfg.Stats.Mode)
	}
	if len(cfg.Stats.Requested) == 0 {
		t.Error("defaults should request at least one stat")
	}
	if cfg.Stats.Alpha <= 0 || cfg.Stats.Alpha > 1 {
		t.Errorf("alpha = %v, want in (0,1]", cfg.Stats.Alpha)
	}
}

func TestLoad_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	overlay := "scene:\n  particles: 7\nstats:\n  mode: continuous\n"
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatalf("writing overlay: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Scene.Particles != 7 {
		t.Errorf("particles = %d, want overlay value 7", cfg.Scene.Particles)
	}
	if cfg.Stats.Mode != "continuous" {
		t.Errorf("mode = %q, want overlay value continuous", cfg.Stats.Mode)
	}
	// Fields absent from the overlay keep their defaults
	if cfg.Screen.Width <= 0 {
		t.Errorf("width = %d, want default preserved", cfg.Screen.Width)
	}
}
