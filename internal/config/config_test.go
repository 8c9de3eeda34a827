package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/player"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SortType != "bubble-sort" {
		t.Errorf("expected sort type bubble-sort, got %s", cfg.SortType)
	}
	if cfg.Children != 50 {
		t.Errorf("expected 50 children, got %d", cfg.Children)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	if got := cfg.GetPacing(); got.Compare != player.DefaultCompare || got.Swap != player.DefaultSwap {
		t.Errorf("expected default pacing, got %+v", got)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	data := []byte("sort_type: quick-sort\nchildren: 10\npacing:\n  compare_ms: 100\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.SortType != "quick-sort" || cfg.Children != 10 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Pacing.CompareMs != 100 {
		t.Errorf("expected compare 100ms, got %d", cfg.Pacing.CompareMs)
	}
	if cfg.Pacing.SwapMs != 100 {
		t.Errorf("expected default swap delay to survive, got %d", cfg.Pacing.SwapMs)
	}
}

func TestLoadRejectsUnknownSortType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("sort_type: heap-sort\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown sort type")
	}
}

func TestValidateChildrenBounds(t *testing.T) {
	tests := []struct {
		children int
		wantErr  bool
	}{
		{0, false},
		{bars.MaxChildren, false},
		{bars.MaxChildren + 1, true},
		{1000000000, true},
		{-1, true},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Children = tt.children
		if err := cfg.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("children %d: expected error %v, got %v", tt.children, tt.wantErr, err)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := GetPreset("brisk")
	cfg.Seed = 99

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Seed != 99 || loaded.Pacing.FlourishMs != 75 {
		t.Errorf("unexpected loaded config %+v", loaded)
	}
}

func TestGetPacingSpeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Speed = 2
	if got := cfg.GetPacing().Compare; got != 125*time.Millisecond {
		t.Errorf("expected halved compare delay, got %v", got)
	}

	cfg.Speed = 0
	if cfg.GetPacing() != player.Instant() {
		t.Error("expected instant pacing for zero speed")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("brisk")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Pacing.CompareMs != 100 {
		t.Errorf("expected compare 100, got %d", cfg.Pacing.CompareMs)
	}

	cfg.Children = 1
	if Presets["brisk"].Children == 1 {
		t.Error("GetPreset should return a copy")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}
