package panelpon

// stepMoving advances horizontal swap movement. Blocks interpolate
// linearly and settle exactly on the target cell, so a swap can never
// leave a block off-grid.
func (b *Board) stepMoving() {
	for _, blk := range b.blocks {
		if blk.State != StateMoving {
			continue
		}

		blk.MoveTick++
		total := b.cfg.Timing.SwapTicks
		if blk.MoveTick >= total {
			blk.X = blk.MoveTarget
			blk.State = StateSettled
			continue
		}
		blk.X = blk.MoveFrom.Lerp(blk.MoveTarget, blk.MoveTick, total)
	}
}
