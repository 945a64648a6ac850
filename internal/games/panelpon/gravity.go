package panelpon

// Gravity pipeline. Each tick: settled blocks that lost their support
// are flagged, whole contiguous columns above them are lifted into a
// brief float, floaters tip into a fall, fallers descend and land, and
// landed columns are snapped back onto the grid.

// fallGroupGap is the vertical gap (1.5 cells) that splits a column
// into separate fall groups.
const fallGroupGap = Scale * 3 / 2

// checkFall flags settled blocks that have nothing underneath. Blocks
// in the bottom row rest on the preview stack and never fall.
func (b *Board) checkFall() {
	for _, blk := range b.blocks {
		if blk.State != StateSettled || blk.Y <= 0 {
			continue
		}
		if !b.supported(blk) {
			blk.State = StateFallPending
		}
	}
}

// supported reports whether any block sits one cell below blk. The x
// tolerance is a full cell: a block partway through a swap still
// counts as support.
func (b *Board) supported(blk *Block) bool {
	for _, other := range b.blocks {
		if other == blk {
			continue
		}
		if (blk.Y - other.Y - Scale).Abs() < HalfBlock && (blk.X - other.X).Abs() < Scale {
			return true
		}
	}
	return false
}

// groupFloat converts each fall-pending block, together with the
// contiguous run of settled blocks resting on it, into floaters. A
// vertical gap larger than fallGroupGap ends the group; blocks above
// the gap keep their own support and are picked up by a later tick if
// they lose it.
func (b *Board) groupFloat() {
	for _, blk := range b.blocks {
		if blk.State != StateFallPending {
			continue
		}

		group := append([]*Block{blk}, b.columnAbove(blk.X, blk.Y, func(c *Block) bool {
			return c.State == StateSettled
		})...)
		sortBlocksByY(group)

		prev := group[0].Y
		for i, c := range group {
			if i > 0 {
				if c.Y-prev > fallGroupGap {
					break
				}
				prev = c.Y
			}
			c.State = StateFloating
			c.FloatTicks = b.cfg.Timing.FloatTicks
		}
	}
}

// stepFloating counts down the hang time and releases floaters into
// the fall.
func (b *Board) stepFloating() {
	for _, blk := range b.blocks {
		if blk.State != StateFloating {
			continue
		}
		blk.FloatTicks--
		if blk.FloatTicks <= 0 {
			blk.State = StateFalling
		}
	}
}

// stepFalling moves falling blocks down and lands them on the first
// resting block they touch. Fallers are processed bottom-up so a
// landed block immediately becomes a surface for the one above it.
func (b *Board) stepFalling() {
	var fallers []*Block
	for _, blk := range b.blocks {
		if blk.State == StateFalling {
			fallers = append(fallers, blk)
		}
	}
	sortBlocksByY(fallers)

	speed := Fixed(b.cfg.Speed.FallPerTick)
	for _, blk := range fallers {
		blk.Y -= speed
		b.landIfTouching(blk)
	}
}

// landIfTouching snaps a falling block onto the top of the first
// resting block it overlaps and marks it for the grid snap.
func (b *Board) landIfTouching(blk *Block) {
	for _, other := range b.blocks {
		if other == blk || !other.Resting() {
			continue
		}
		if (blk.X-other.X).Abs() >= Scale {
			continue
		}
		top := other.Y + Scale
		if blk.Y < top && blk.Y > other.Y {
			blk.Y = top
			blk.State = StateFixedPending
			return
		}
	}
}

// snapColumns settles landed blocks and re-grids the falling column
// above each of them. Each follower within half a cell of its slot is
// pulled onto consecutive cells; the first one further away than that
// ends the column and keeps falling.
func (b *Board) snapColumns() {
	var landed []*Block
	for _, blk := range b.blocks {
		if blk.State == StateFixedPending {
			landed = append(landed, blk)
		}
	}
	sortBlocksByY(landed)

	for _, blk := range landed {
		if blk.State != StateFixedPending {
			continue // Already settled as part of a lower column
		}

		column := append([]*Block{blk}, b.columnAbove(blk.X, blk.Y, func(c *Block) bool {
			return c.State == StateFalling || c.State == StateFixedPending
		})...)
		sortBlocksByY(column)

		base := blk.Y
		for idx, c := range column {
			slot := base + ToFixed(idx)
			if c.Y-slot > HalfBlock {
				break
			}
			c.Y = slot
			c.State = StateSettled
		}
	}
}
