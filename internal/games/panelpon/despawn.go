package panelpon

// armDespawn claims a freshly matched group. If any block in the group
// is chain-eligible the chain counter grows first, so the clear itself
// reports the extended chain. Every block in the group shares the same
// timer: the bigger the combo, the longer the blocks stay visible.
func (b *Board) armDespawn(group []*Block, ev *TickEvents) {
	combo := len(group)

	extended := false
	for _, blk := range group {
		if blk.Chain {
			extended = true
			break
		}
	}
	if extended {
		b.chainCounter++
	}

	// Chain flags stay on the claimed blocks; they hold the counter up
	// until the column above has had its shot at extending it. The
	// group flashes as Matched for one tick before the timer starts.
	duration := combo * b.cfg.Timing.DespawnUnitTicks
	for _, blk := range group {
		blk.State = StateMatched
		blk.DespawnTicks = duration
	}

	ev.Clears = append(ev.Clears, ClearEvent{Combo: combo, Chain: b.chainCounter})
}

// stepDespawning converts last tick's matched flash into the despawn
// and runs the timers. When one expires the block is removed and the
// contiguous column resting above the vacancy becomes chain-eligible:
// if those blocks fall and land in a new match, the chain continues.
func (b *Board) stepDespawning() {
	for _, blk := range b.blocks {
		if blk.State == StateMatched {
			blk.State = StateDespawning
		}
	}

	// Collect first: removal mutates the block slice.
	var expired []*Block
	for _, blk := range b.blocks {
		if blk.State != StateDespawning {
			continue
		}
		blk.DespawnTicks--
		if blk.DespawnTicks <= 0 {
			expired = append(expired, blk)
		}
	}

	for _, blk := range expired {
		b.flagChainColumn(blk)
		b.removeBlock(blk)
	}
}

// flagChainColumn marks the unbroken column of blocks directly above a
// vanishing block. The walk stops at the first vertical gap; blocks
// past a gap were not resting on the cleared block.
func (b *Board) flagChainColumn(gone *Block) {
	column := b.columnAbove(gone.X, gone.Y, func(c *Block) bool {
		return c.State != StateDespawning && c.State != StateMatched
	})

	current := gone.Y
	for _, c := range column {
		if (c.Y - Scale - current).Abs() >= HalfBlock {
			break
		}
		c.Chain = true
		c.ChainTicks = b.cfg.Timing.ChainGraceTicks
		current = c.Y
	}
}

// decayChain expires chain eligibility on blocks that have come to
// rest. Airborne blocks keep the flag for as long as the fall takes;
// the timer only runs while the block is settled.
func (b *Board) decayChain() {
	for _, blk := range b.blocks {
		if !blk.Chain || blk.State != StateSettled {
			continue
		}
		blk.ChainTicks--
		if blk.ChainTicks <= 0 {
			blk.Chain = false
		}
	}
}

// resetChainCounter drops the chain multiplier back to one when no
// block is chain-eligible anymore.
func (b *Board) resetChainCounter() {
	if b.chainCounter == 1 {
		return
	}
	for _, blk := range b.blocks {
		if blk.Chain {
			return
		}
	}
	b.chainCounter = 1
}
