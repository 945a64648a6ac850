// Package config provides YAML-based game configuration loading and
// difficulty management for the panelpon platform.
package config

// PanelConfig contains all configuration for the panel-matching game.
type PanelConfig struct {
	Board      PanelBoard       `yaml:"board"`
	Timing     PanelTiming      `yaml:"timing"`
	Speed      PanelSpeed       `yaml:"speed"`
	Gameplay   PanelGameplay    `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PanelBoard defines the playfield dimensions.
type PanelBoard struct {
	Width   int `yaml:"width"`    // Columns
	Height  int `yaml:"height"`   // Visible rows
	KillRow int `yaml:"kill_row"` // Row above which a settled block ends the game
	Colors  int `yaml:"colors"`   // Active block colors (2..5)
}

// PanelTiming defines tick-based timers. All values are simulation ticks.
type PanelTiming struct {
	SwapTicks        int `yaml:"swap_ticks"`         // Horizontal move duration
	FloatTicks       int `yaml:"float_ticks"`        // Hang time before a fall
	DespawnUnitTicks int `yaml:"despawn_unit_ticks"` // Despawn duration per matched block
	LiftDelayTicks   int `yaml:"lift_delay_ticks"`   // Countdown before auto-lift engages
	ChainGraceTicks  int `yaml:"chain_grace_ticks"`  // How long a chain flag survives on a settled block
}

// PanelSpeed defines movement speeds in fixed-point units per tick.
type PanelSpeed struct {
	FallPerTick       int `yaml:"fall_per_tick"`
	LiftPerTick       int `yaml:"lift_per_tick"`
	ManualLiftPerTick int `yaml:"manual_lift_per_tick"`
}

// PanelGameplay defines scoring and mode parameters.
type PanelGameplay struct {
	ClearPoints       int `yaml:"clear_points"`        // Points per block at chain x1
	TimeAttackSeconds int `yaml:"time_attack_seconds"` // Duration of the timed mode
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to lift speed at max difficulty
	DelayReduction  float64 `yaml:"delay_reduction"`  // Fraction of lift delay removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
