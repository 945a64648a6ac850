package panelpon

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-panelpon/internal/config"
	"github.com/vovakirdan/tui-panelpon/internal/core"
	"github.com/vovakirdan/tui-panelpon/internal/registry"
)

// GameMode selects between the endless climb and the timed score attack.
type GameMode int

const (
	ModeEndless GameMode = iota
	ModeTimeAttack
)

// Package-level configuration applied before game creation (set from
// CLI flags).
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for the next game.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next game.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

func init() {
	registry.Register("panelpon", func() registry.Game {
		return New(ModeEndless)
	})
	registry.Register("panelpon_timed", func() registry.Game {
		return New(ModeTimeAttack)
	})
}

// Game is the panel-matching game behind the platform's Game interface.
// All simulation lives in Board; Game owns mode, scoring and pause.
type Game struct {
	cfg        core.RuntimeConfig
	panelCfg   config.PanelConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	board *Board
	mode  GameMode

	score     int
	maxChain  int
	gameOver  bool
	paused    bool
	tickCount int
	timeLeft  int // Ticks remaining in time attack mode
}

// New creates a game in the given mode. Reset must be called before
// stepping.
func New(mode GameMode) *Game {
	return &Game{mode: mode}
}

// ID returns the unique game identifier.
func (g *Game) ID() string {
	if g.mode == ModeTimeAttack {
		return "panelpon_timed"
	}
	return "panelpon"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeTimeAttack {
		return "Panelpon Time Attack"
	}
	return "Panelpon"
}

// Reset initializes the game state from the runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg

	panelCfg, err := config.LoadPanel(configPath)
	if err != nil {
		panelCfg = config.DefaultPanelConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPanelPreset(&panelCfg, config.DifficultyPreset(difficultyPreset))
	}
	g.panelCfg = panelCfg
	g.difficulty = config.NewDifficultyManager(panelCfg.Difficulty)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.board = NewBoard(panelCfg, g.rng)
	g.board.liftCountdown = g.difficulty.LiftDelay(panelCfg.Timing.LiftDelayTicks, 0, 0)

	g.score = 0
	g.maxChain = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.timeLeft = panelCfg.Gameplay.TimeAttackSeconds * tickRate
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(g.cfg)
		return core.StepResult{State: g.State()}
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Difficulty ramps the lift over the course of a run.
	g.board.SetLiftSpeed(g.difficulty.Speed(
		g.panelCfg.Speed.LiftPerTick, g.score, g.tickCount))

	ev := g.board.Step(in)

	for _, clear := range ev.Clears {
		g.score += clear.Combo * g.panelCfg.Gameplay.ClearPoints * clear.Chain
		if clear.Chain > g.maxChain {
			g.maxChain = clear.Chain
		}
	}

	if ev.TopOut {
		g.gameOver = true
	}

	if g.mode == ModeTimeAttack && !g.gameOver {
		g.timeLeft--
		if g.timeLeft <= 0 {
			g.timeLeft = 0
			g.gameOver = true
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// MaxChain returns the longest chain reached this run.
func (g *Game) MaxChain() int {
	return g.maxChain
}

// Board exposes the simulation state, mainly for tests.
func (g *Game) Board() *Board {
	return g.board
}
