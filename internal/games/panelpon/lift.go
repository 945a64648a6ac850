package panelpon

import "github.com/vovakirdan/tui-panelpon/internal/core"

// stepLift drives the rising stack. After an initial countdown the
// whole board (blocks, cursor and preview marker) creeps upward, but
// only while every block is at rest; swaps, falls and clears in
// progress stall the lift until they resolve. A manual lift intent
// skips the countdown and boosts the speed until the next row of
// blocks has fully surfaced.
func (b *Board) stepLift(in core.InputFrame, ev *TickEvents) {
	if in.Has(core.ActionLift) {
		b.manualLift = true
		b.liftCountdown = 0
	}

	if b.liftCountdown > 0 {
		b.liftCountdown--
		return
	}
	b.liftActive = true

	if b.topOut {
		return
	}

	// Loss check: a settled block pushed past the kill row ends the
	// game. Reported exactly once.
	killY := ToFixed(b.cfg.Board.KillRow)
	for _, blk := range b.blocks {
		if blk.State == StateSettled && blk.Y > killY {
			b.topOut = true
			ev.TopOut = true
			return
		}
	}

	for _, blk := range b.blocks {
		if blk.State != StateSettled && blk.State != StateSpawning {
			return
		}
	}

	speed := b.liftSpeed
	if b.manualLift {
		speed = Fixed(b.cfg.Speed.ManualLiftPerTick)
	}
	for _, blk := range b.blocks {
		blk.Y += speed
	}
	b.CursorY += speed
	b.marker += speed

	// The top preview row reached the board bottom: recycle the marker
	// one cell down and generate a fresh row beneath it.
	if b.marker >= 0 {
		b.marker -= Scale
		b.spawnRow(b.marker - Scale)
		b.manualLift = false
	}
}

// settleSpawnRows activates preview blocks that have risen onto the
// board. They become regular settled blocks and can match and swap.
func (b *Board) settleSpawnRows() {
	for _, blk := range b.blocks {
		if blk.State == StateSpawning && blk.Y > 0 {
			blk.State = StateSettled
		}
	}
}

// LiftActive reports whether the post-countdown auto-lift has engaged.
func (b *Board) LiftActive() bool {
	return b.liftActive
}
