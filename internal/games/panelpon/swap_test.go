package panelpon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-panelpon/internal/core"
)

func TestSwapExchangesSettledBlocks(t *testing.T) {
	b := emptyBoard()
	left := place(b, 2, 0, Red, StateSettled)
	right := place(b, 3, 0, Green, StateSettled)

	b.Step(inputWith(core.ActionSwap))
	assert.Equal(t, StateMoving, left.State)
	assert.Equal(t, StateMoving, right.State)

	stepN(b, b.cfg.Timing.SwapTicks)

	assert.Equal(t, StateSettled, left.State)
	assert.Equal(t, StateSettled, right.State)
	assert.Equal(t, 3, left.Col())
	assert.Equal(t, 2, right.Col())
	assert.Len(t, b.Blocks(), 2)
}

func TestSwapMovesSingleBlockIntoEmptyCell(t *testing.T) {
	tests := []struct {
		name    string
		fromCol int
		wantCol int
	}{
		{name: "left block slides right", fromCol: 2, wantCol: 3},
		{name: "right block slides left", fromCol: 3, wantCol: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := emptyBoard()
			blk := place(b, tt.fromCol, 0, Blue, StateSettled)

			b.Step(inputWith(core.ActionSwap))
			stepN(b, b.cfg.Timing.SwapTicks)

			assert.Equal(t, StateSettled, blk.State)
			assert.Equal(t, tt.wantCol, blk.Col())
		})
	}
}

func TestSwapBlockedByHangingBlock(t *testing.T) {
	b := emptyBoard()
	mover := place(b, 2, 0, Red, StateSettled)

	// A block hangs half a cell above the empty target cell.
	hanging := place(b, 3, 0, Green, StateFalling)
	hanging.Y = HalfBlock + Scale/4

	b.Step(inputWith(core.ActionSwap))

	assert.Equal(t, StateSettled, mover.State, "swap under a hanging block must be refused")
	assert.Equal(t, 2, mover.Col())
}

func TestSwapRefusedForAirborneOccupant(t *testing.T) {
	b := emptyBoard()
	settled := place(b, 2, 0, Red, StateSettled)
	faller := place(b, 3, 0, Green, StateFalling)

	b.Step(inputWith(core.ActionSwap))

	assert.Equal(t, StateSettled, settled.State)
	assert.Equal(t, 2, settled.Col())
	assert.Equal(t, 3, faller.Col())
}

func TestSwapWithBothCellsEmptyIsNoop(t *testing.T) {
	b := emptyBoard()
	bystander := place(b, 0, 0, Red, StateSettled)

	b.Step(inputWith(core.ActionSwap))

	assert.Equal(t, StateSettled, bystander.State)
	assert.Equal(t, 0, bystander.Col())
}

func TestSwapLandsExactlyOnTargetCell(t *testing.T) {
	b := emptyBoard()
	blk := place(b, 2, 0, Yellow, StateSettled)

	b.Step(inputWith(core.ActionSwap))
	stepN(b, b.cfg.Timing.SwapTicks)

	require.Equal(t, ToFixed(3), blk.X, "moved block must settle on the exact grid position")
}

func TestSwappedBlockFallsFromUnsupportedCell(t *testing.T) {
	b := emptyBoard()

	// A block slides sideways into a column whose stack is two cells
	// lower and must drop onto it.
	place(b, 2, 0, Red, StateSettled)
	place(b, 2, 1, Blue, StateSettled)
	mover := place(b, 2, 2, Green, StateSettled)
	place(b, 3, 0, Yellow, StateSettled)
	b.CursorY = ToFixed(2)

	b.Step(inputWith(core.ActionSwap))
	stepN(b, 20)

	assert.Equal(t, StateSettled, mover.State)
	assert.Equal(t, 3, mover.Col())
	assert.Equal(t, 1, mover.Row())
}
