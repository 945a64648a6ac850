package panelpon

// detectMatches scans settled blocks for maximal same-color runs of
// three or more along each axis and marks the union. A block shared by
// a horizontal and a vertical run is marked once, so L and T shapes
// clear as a single group.
func (b *Board) detectMatches(ev *TickEvents) {
	matched := make(map[*Block]bool)

	for _, blk := range b.blocks {
		if blk.State != StateSettled {
			continue
		}
		b.collectRun(blk, Scale, 0, matched)
		b.collectRun(blk, 0, Scale, matched)
	}

	if len(matched) == 0 {
		return
	}

	group := make([]*Block, 0, len(matched))
	for _, blk := range b.blocks {
		if matched[blk] {
			group = append(group, blk)
		}
	}
	b.armDespawn(group, ev)
}

// collectRun walks the maximal run starting at blk along (dx, dy) and
// marks it if it reaches three. Only run starts are walked: if the
// previous cell holds a settled block of the same color, blk is in the
// middle of a run that another call covers.
func (b *Board) collectRun(blk *Block, dx, dy Fixed, matched map[*Block]bool) {
	if prev := b.settledAt(blk.X-dx, blk.Y-dy); prev != nil && prev.Color == blk.Color {
		return
	}

	run := []*Block{blk}
	for {
		last := run[len(run)-1]
		next := b.settledAt(last.X+dx, last.Y+dy)
		if next == nil || next.Color != blk.Color {
			break
		}
		run = append(run, next)
	}

	if len(run) < 3 {
		return
	}
	for _, r := range run {
		matched[r] = true
	}
}
