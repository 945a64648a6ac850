package config

import (
	_ "embed"
)

//go:embed defaults/panelpon.yaml
var defaultPanelYAML []byte

// DefaultPanelConfig returns the default panel game configuration.
// Values assume 60 simulation ticks per second and the fixed-point
// block scale used by the game package (1000 units per cell).
func DefaultPanelConfig() PanelConfig {
	return PanelConfig{
		Board: PanelBoard{
			Width:   6,
			Height:  13,
			KillRow: 11,
			Colors:  5,
		},
		Timing: PanelTiming{
			SwapTicks:        3,  // ~0.05s horizontal move
			FloatTicks:       1,  // brief hang before a fall
			DespawnUnitTicks: 18, // 0.3s per matched block
			LiftDelayTicks:   60, // 1s before auto-lift starts
			ChainGraceTicks:  6,
		},
		Speed: PanelSpeed{
			FallPerTick:       200, // 12 cells per second
			LiftPerTick:       3,
			ManualLiftPerTick: 60,
		},
		Gameplay: PanelGameplay{
			ClearPoints:       10,
			TimeAttackSeconds: 120,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 21600, // 6 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
				DelayReduction:  0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "panelpon", "panelpon_timed":
		return defaultPanelYAML
	default:
		return nil
	}
}
