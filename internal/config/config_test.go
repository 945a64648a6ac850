package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var embedded PanelConfig
	if err := yaml.Unmarshal(defaultPanelYAML, &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if embedded != DefaultPanelConfig() {
		t.Errorf("embedded default diverged from DefaultPanelConfig():\nembedded: %+v\nhardcoded: %+v",
			embedded, DefaultPanelConfig())
	}
}

func TestLoadPanelCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	content := []byte(`
board:
  width: 8
  height: 14
  kill_row: 12
  colors: 4
timing:
  swap_ticks: 2
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := LoadPanel(path)
	if err != nil {
		t.Fatalf("LoadPanel() failed: %v", err)
	}

	if cfg.Board.Width != 8 {
		t.Errorf("Expected width 8, got %d", cfg.Board.Width)
	}
	if cfg.Board.Colors != 4 {
		t.Errorf("Expected 4 colors, got %d", cfg.Board.Colors)
	}
	if cfg.Timing.SwapTicks != 2 {
		t.Errorf("Expected swap_ticks 2, got %d", cfg.Timing.SwapTicks)
	}
}

func TestLoadPanelMissingCustomPath(t *testing.T) {
	_, err := LoadPanel("/nonexistent/path/panelpon.yaml")
	if err == nil {
		t.Error("Expected error for missing custom config path")
	}
}

func TestApplyPanelPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		wantEnabled  bool
		wantLevel    float64
		wantDelay    int
		wantLiftTick int
	}{
		{DifficultyEasy, true, 0.0, 90, 2},
		{DifficultyNormal, true, 0.3, 60, 3},
		{DifficultyHard, true, 0.7, 40, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultPanelConfig()
			ApplyPanelPreset(&cfg, tt.preset)

			if cfg.Difficulty.Enabled != tt.wantEnabled {
				t.Errorf("Enabled = %v, want %v", cfg.Difficulty.Enabled, tt.wantEnabled)
			}
			if cfg.Difficulty.InitialLevel != tt.wantLevel {
				t.Errorf("InitialLevel = %v, want %v", cfg.Difficulty.InitialLevel, tt.wantLevel)
			}
			if cfg.Timing.LiftDelayTicks != tt.wantDelay {
				t.Errorf("LiftDelayTicks = %d, want %d", cfg.Timing.LiftDelayTicks, tt.wantDelay)
			}
			if cfg.Speed.LiftPerTick != tt.wantLiftTick {
				t.Errorf("LiftPerTick = %d, want %d", cfg.Speed.LiftPerTick, tt.wantLiftTick)
			}
		})
	}
}

func TestApplyPanelPresetFixed(t *testing.T) {
	cfg := DefaultPanelConfig()
	ApplyPanelPreset(&cfg, DifficultyFixed)

	if cfg.Difficulty.Enabled {
		t.Error("Fixed preset should disable difficulty progression")
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 2.0, DelayReduction: 0.5},
	}
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(0, 0); got != 0.0 {
		t.Errorf("Level at start = %v, want 0.0", got)
	}
	if got := dm.Level(0, 500); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level at half progression = %v, want 0.5", got)
	}
	if got := dm.Level(0, 2000); got != 1.0 {
		t.Errorf("Level past max = %v, want 1.0", got)
	}
}

func TestDifficultyDisabledStaysAtInitial(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.7,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 1000},
	}
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(9999, 9999); got != 0.7 {
		t.Errorf("Disabled progression should stay at initial level, got %v", got)
	}
}

func TestDifficultySpeedScales(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 2.0},
	}
	dm := NewDifficultyManager(cfg)

	if got := dm.Speed(3, 0, 0); got != 3 {
		t.Errorf("Speed at level 0 = %d, want base 3", got)
	}
	if got := dm.Speed(3, 0, 100); got != 9 {
		t.Errorf("Speed at level 1 = %d, want 9 (base * 3)", got)
	}
}

func TestDifficultyLiftDelayShrinks(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{DelayReduction: 0.5},
	}
	dm := NewDifficultyManager(cfg)

	if got := dm.LiftDelay(60, 0, 0); got != 60 {
		t.Errorf("LiftDelay at level 0 = %d, want 60", got)
	}
	if got := dm.LiftDelay(60, 0, 100); got != 30 {
		t.Errorf("LiftDelay at level 1 = %d, want 30", got)
	}

	// Never drops below the playable floor
	if got := dm.LiftDelay(12, 0, 100); got != 10 {
		t.Errorf("LiftDelay floor = %d, want 10", got)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if GetDefaultYAML("panelpon") == nil {
		t.Error("Expected embedded YAML for panelpon")
	}
	if GetDefaultYAML("panelpon_timed") == nil {
		t.Error("Expected embedded YAML for panelpon_timed")
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("Expected nil for unknown game ID")
	}
}
