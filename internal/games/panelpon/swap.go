package panelpon

import "github.com/vovakirdan/tui-panelpon/internal/core"

// applySwap handles the swap intent for the two cells under the cursor.
//
// The rule table:
//   - both cells hold settled blocks: swap them.
//   - one cell holds a settled block, the other is empty: the block
//     slides into the empty cell, unless a block hangs less than one
//     cell above the empty target (it would land on the mover).
//   - anything else (mid-air, matched, moving or spawning occupants,
//     two empty cells): no-op. The input is consumed either way.
func (b *Board) applySwap(in core.InputFrame) {
	if !in.Has(core.ActionSwap) {
		return
	}

	leftX := b.CursorX
	rightX := b.CursorX + Scale
	y := b.CursorY

	left := b.blockAt(leftX, y)
	right := b.blockAt(rightX, y)

	switch {
	case left != nil && right != nil:
		if left.State == StateSettled && right.State == StateSettled {
			startMove(left, rightX, b.cfg.Timing.SwapTicks)
			startMove(right, leftX, b.cfg.Timing.SwapTicks)
		}

	case left != nil && right == nil:
		if left.State == StateSettled && !b.hangsAbove(rightX, y) {
			startMove(left, rightX, b.cfg.Timing.SwapTicks)
		}

	case right != nil && left == nil:
		if right.State == StateSettled && !b.hangsAbove(leftX, y) {
			startMove(right, leftX, b.cfg.Timing.SwapTicks)
		}
	}
}

// hangsAbove reports whether a block occupies the air less than one
// cell above the given position. Sliding a block under it would
// collide once it drops.
func (b *Board) hangsAbove(x, y Fixed) bool {
	for _, blk := range b.blocks {
		if near(blk.X, x) && blk.Y > y && blk.Y-y < Scale {
			return true
		}
	}
	return false
}

// startMove puts a block into the moving state toward targetX.
func startMove(blk *Block, targetX Fixed, swapTicks int) {
	blk.State = StateMoving
	blk.MoveFrom = blk.X
	blk.MoveTarget = targetX
	blk.MoveTick = 0
	if swapTicks <= 0 {
		// Degenerate config: snap instantly on the next motion step.
		blk.MoveTick = -1
	}
}
