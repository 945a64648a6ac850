package panelpon

import (
	"math/rand"

	"github.com/vovakirdan/tui-panelpon/internal/config"
	"github.com/vovakirdan/tui-panelpon/internal/core"
)

// ClearEvent describes one match group armed for despawn during a tick.
type ClearEvent struct {
	Combo int // Number of blocks in the group
	Chain int // Chain counter value at the time of the clear
}

// TickEvents is what Board.Step reports back to the game layer.
type TickEvents struct {
	Clears []ClearEvent
	TopOut bool // Set on the single tick the loss condition fires
}

// Board is the full simulation state: blocks, cursor, lift and chain
// tracking. It is stepped once per tick and knows nothing about input
// devices or rendering targets.
type Board struct {
	cfg config.PanelConfig
	rng *rand.Rand

	blocks []*Block
	nextID int

	// Cursor position of the left cell of the 2-wide cursor.
	CursorX, CursorY Fixed

	// marker tracks the top preview row. When it reaches the board
	// bottom it recycles one block down and a fresh row is generated.
	marker Fixed

	liftCountdown int
	liftActive    bool
	manualLift    bool

	// Per-tick lift parameters, set by the game layer so difficulty
	// progression can ramp them.
	liftSpeed Fixed

	chainCounter int
	topOut       bool

	// Spawn color exclusion window: the most recent pick is kept out
	// of the pool for the next one.
	recentColors []BlockColor
}

// NewBoard creates a board seeded with one of the starting patterns
// plus two preview rows below the bottom edge.
func NewBoard(cfg config.PanelConfig, rng *rand.Rand) *Board {
	b := &Board{
		cfg:           cfg,
		rng:           rng,
		CursorX:       ToFixed(2),
		CursorY:       ToFixed(6),
		marker:        -ToFixed(1),
		liftCountdown: cfg.Timing.LiftDelayTicks,
		liftSpeed:     Fixed(cfg.Speed.LiftPerTick),
		chainCounter:  1,
	}
	b.fillStartPattern()
	b.spawnRow(-ToFixed(1))
	b.spawnRow(-ToFixed(2))
	return b
}

// SetLiftSpeed updates the auto-lift speed for the next tick.
func (b *Board) SetLiftSpeed(unitsPerTick int) {
	b.liftSpeed = Fixed(unitsPerTick)
}

// ChainCounter returns the current chain multiplier (1 when idle).
func (b *Board) ChainCounter() int {
	return b.chainCounter
}

// Blocks returns the live block slice. Callers must not mutate it.
func (b *Board) Blocks() []*Block {
	return b.blocks
}

// Step advances the simulation by one tick. The stage order matters:
// movement resolves before gravity, gravity before the lift, and the
// lift before matching, so a block never matches mid-flight.
func (b *Board) Step(in core.InputFrame) TickEvents {
	var ev TickEvents

	b.applySwap(in)
	b.stepMoving()

	// Floaters from the previous tick release before new ones are
	// created, so the hang time is a full tick.
	b.stepFloating()
	b.checkFall()
	b.groupFloat()
	b.stepFalling()
	b.snapColumns()

	b.settleSpawnRows()
	b.stepLift(in, &ev)
	b.moveCursor(in)

	// Timers first, then detection: a group matched this tick keeps
	// its flash frame until the next tick converts it.
	b.stepDespawning()
	b.detectMatches(&ev)
	b.decayChain()
	b.resetChainCounter()

	return ev
}

// newBlock appends a block and returns it.
func (b *Board) newBlock(x, y Fixed, color BlockColor, state BlockState) *Block {
	blk := &Block{
		ID:    b.nextID,
		X:     x,
		Y:     y,
		Color: color,
		State: state,
	}
	b.nextID++
	b.blocks = append(b.blocks, blk)
	return blk
}

// removeBlock deletes a block from the slice, preserving order so
// iteration stays deterministic.
func (b *Board) removeBlock(target *Block) {
	for i, blk := range b.blocks {
		if blk == target {
			b.blocks = append(b.blocks[:i], b.blocks[i+1:]...)
			return
		}
	}
}

// blockAt returns the block occupying the cell around (x, y), in any
// state, or nil. Positions are compared with the same-cell tolerance
// because the whole stack can carry a fractional lift offset.
func (b *Board) blockAt(x, y Fixed) *Block {
	for _, blk := range b.blocks {
		if near(blk.X, x) && near(blk.Y, y) {
			return blk
		}
	}
	return nil
}

// settledAt returns the settled block occupying the cell around
// (x, y), or nil. A faller passing through the cell does not shadow a
// settled occupant.
func (b *Board) settledAt(x, y Fixed) *Block {
	for _, blk := range b.blocks {
		if blk.State == StateSettled && near(blk.X, x) && near(blk.Y, y) {
			return blk
		}
	}
	return nil
}

// columnAbove returns blocks over (x, y) in the same column, sorted by
// ascending Y. The filter selects which blocks participate.
func (b *Board) columnAbove(x, y Fixed, filter func(*Block) bool) []*Block {
	var column []*Block
	for _, blk := range b.blocks {
		if blk.Y > y && near(blk.X, x) && filter(blk) {
			column = append(column, blk)
		}
	}
	sortBlocksByY(column)
	return column
}

// sortBlocksByY sorts in place by ascending Y (insertion sort; columns
// hold at most boardHeight blocks).
func sortBlocksByY(blocks []*Block) {
	for i := 1; i < len(blocks); i++ {
		for j := i; j > 0 && blocks[j].Y < blocks[j-1].Y; j-- {
			blocks[j], blocks[j-1] = blocks[j-1], blocks[j]
		}
	}
}

// moveCursor applies cursor movement intents. The cursor rides the
// lift, so limits are checked against world positions rather than
// grid indices.
func (b *Board) moveCursor(in core.InputFrame) {
	maxX := ToFixed(b.cfg.Board.Width - 2)
	maxY := ToFixed(b.cfg.Board.Height - 1)

	if in.Has(core.ActionLeft) && b.CursorX > HalfBlock {
		b.CursorX -= Scale
	}
	if in.Has(core.ActionRight) && b.CursorX < maxX-HalfBlock {
		b.CursorX += Scale
	}
	if in.Has(core.ActionDown) && b.CursorY > HalfBlock {
		b.CursorY -= Scale
	}
	if in.Has(core.ActionUp) && b.CursorY < maxY-HalfBlock {
		b.CursorY += Scale
	}
}
