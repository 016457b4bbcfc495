package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
game:
  spawn_delay_ms: 50
ui:
  highlight_spawn: false
  show_help: true
storage:
  path: /tmp/scores.db
variants:
  - id: tiny
    title: Tiny 3x3
    grid_size: 3
    win_target: 256
    spawn_bias: 0.8
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Game.SpawnDelayMs != 50 {
		t.Errorf("SpawnDelayMs = %d, want 50", cfg.Game.SpawnDelayMs)
	}
	if cfg.UI.HighlightSpawn {
		t.Error("HighlightSpawn = true, want false")
	}
	if cfg.Storage.Path != "/tmp/scores.db" {
		t.Errorf("Storage.Path = %q", cfg.Storage.Path)
	}
	if len(cfg.Variants) != 1 || cfg.Variants[0].ID != "tiny" || cfg.Variants[0].GridSize != 3 {
		t.Errorf("Variants = %+v", cfg.Variants)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load() with missing explicit path should fail")
	}
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("game: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() with broken YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default is valid", Default(), false},
		{
			"negative spawn delay",
			Config{Game: GameConfig{SpawnDelayMs: -1}},
			true,
		},
		{
			"variant without id",
			Config{Variants: []VariantConfig{{GridSize: 4, WinTarget: 2048, SpawnBias: 0.9}}},
			true,
		},
		{
			"variant grid too small",
			Config{Variants: []VariantConfig{{ID: "x", GridSize: 1, WinTarget: 2048, SpawnBias: 0.9}}},
			true,
		},
		{
			"variant bias out of range",
			Config{Variants: []VariantConfig{{ID: "x", GridSize: 4, WinTarget: 2048, SpawnBias: 1.5}}},
			true,
		},
		{
			"valid custom variant",
			Config{Variants: []VariantConfig{{ID: "x", GridSize: 6, WinTarget: 4096, SpawnBias: 0.5}}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEmbeddedDefaultMatchesCode(t *testing.T) {
	if len(DefaultYAML()) == 0 {
		t.Fatal("embedded default is empty")
	}
}

func TestDBPathExpandsHome(t *testing.T) {
	cfg := Config{Storage: StorageConfig{Path: "~/.merge2048/merge2048.db"}}
	got := cfg.DBPath()
	if strings.HasPrefix(got, "~") {
		t.Errorf("DBPath() = %q, ~ not expanded", got)
	}
	if !strings.HasSuffix(got, filepath.Join(".merge2048", "merge2048.db")) {
		t.Errorf("DBPath() = %q", got)
	}

	cfg.Storage.Path = "/var/lib/merge2048.db"
	if got := cfg.DBPath(); got != "/var/lib/merge2048.db" {
		t.Errorf("DBPath() = %q, absolute path should pass through", got)
	}
}
