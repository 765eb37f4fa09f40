package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	def := Default()
	if cfg.Window != def.Window || cfg.Gameplay != def.Gameplay || cfg.Storage != def.Storage || cfg.Log != def.Log {
		t.Fatalf("embedded default differs from Default():\n%+v\n%+v", cfg, def)
	}
	if cfg.Physics.MaxSubsteps != def.Physics.MaxSubsteps || cfg.Physics.Gravity != def.Physics.Gravity {
		t.Fatalf("physics defaults differ: %+v vs %+v", cfg.Physics, def.Physics)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	data := "storage:\n  backend: sqlite\n  path: " + filepath.Join(dir, "p.db") + "\ngameplay:\n  seed: 42\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Backend != StorageSQLite || cfg.Gameplay.Seed != 42 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Physics.MaxSubsteps != 6 || cfg.Gameplay.RequiredStarRatio != 0.3 {
		t.Fatalf("unset keys lost their defaults: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name string
		data string
	}{
		{"bad_yaml", "window: [\n"},
		{"bad_backend", "storage:\n  backend: redis\n"},
		{"bad_ratio", "gameplay:\n  required_star_ratio: 2\n"},
		{"bad_step", "physics:\n  fixed_step: 0\n"},
		{"bad_log", "log:\n  level: loud\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(dir, c.name+".yaml")
			if err := os.WriteFile(path, []byte(c.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing custom path")
	}
}
