package panelpon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainSetup builds a board where clearing the red column drops the
// greens above it onto the bottom row, completing a horizontal green
// run there. A preview block under column 0 is the landing surface,
// as the full preview rows are on a real board:
//
//	col:   0  1  2
//	row4   G
//	row3   G
//	row2   R
//	row1   R
//	row0   R  G  G
//	row-1  P
func chainSetup() *Board {
	b := emptyBoard()
	place(b, 0, -1, Purple, StateSpawning)
	place(b, 0, 0, Red, StateSettled)
	place(b, 0, 1, Red, StateSettled)
	place(b, 0, 2, Red, StateSettled)
	place(b, 0, 3, Green, StateSettled)
	place(b, 0, 4, Green, StateSettled)
	place(b, 1, 0, Green, StateSettled)
	place(b, 2, 0, Green, StateSettled)
	return b
}

func TestChainExtendsOnFollowupMatch(t *testing.T) {
	b := chainSetup()

	var clears []ClearEvent
	for range 120 {
		clears = append(clears, stepN(b, 1)...)
		if len(clears) == 2 {
			break
		}
	}

	require.Len(t, clears, 2, "the dropped greens must complete a second clear")
	assert.Equal(t, 3, clears[0].Combo)
	assert.Equal(t, 1, clears[0].Chain, "opening clear is chain x1")
	assert.Equal(t, 3, clears[1].Combo)
	assert.Equal(t, 2, clears[1].Chain, "follow-up clear extends the chain")
}

func TestChainFlagSetOnColumnAboveVacancy(t *testing.T) {
	b := chainSetup()

	var above []*Block
	for _, blk := range b.Blocks() {
		if blk.Col() == 0 && blk.Row() >= 3 {
			above = append(above, blk)
		}
	}
	require.Len(t, above, 2)

	// Run until the red column despawns: one flash tick plus the timer.
	unit := b.cfg.Timing.DespawnUnitTicks
	stepN(b, 3*unit+1)

	for _, blk := range above {
		assert.True(t, blk.Chain, "blocks above a vacancy become chain-eligible")
	}
}

func TestChainCounterResetsWhenFlagsExpire(t *testing.T) {
	b := chainSetup()

	stepN(b, 300)

	assert.Equal(t, 1, b.ChainCounter(), "counter returns to one once no flag remains")
	for _, blk := range b.Blocks() {
		assert.False(t, blk.Chain)
	}
}

func TestChainFlagDecaysOnlyWhileSettled(t *testing.T) {
	b := emptyBoard()
	blk := place(b, 0, 0, Red, StateFalling)
	blk.Chain = true
	blk.ChainTicks = 2
	blk.Y = ToFixed(5)

	// Airborne: the grace timer must not run.
	b.decayChain()
	b.decayChain()
	assert.True(t, blk.Chain)
	assert.Equal(t, 2, blk.ChainTicks)

	blk.State = StateSettled
	b.decayChain()
	b.decayChain()
	assert.False(t, blk.Chain, "grace expires after two settled ticks")
}

func TestChainBreaksAtColumnGap(t *testing.T) {
	b := emptyBoard()
	gone := place(b, 0, 0, Red, StateDespawning)
	gone.DespawnTicks = 1
	neighbor := place(b, 0, 1, Green, StateSettled)
	far := place(b, 0, 3, Blue, StateSettled) // Gap at row 2

	b.stepDespawning()

	assert.True(t, neighbor.Chain)
	assert.False(t, far.Chain, "the chain walk stops at the first gap")
}

func TestNonChainClearKeepsCounter(t *testing.T) {
	b := emptyBoard()
	place(b, 0, 0, Red, StateSettled)
	place(b, 1, 0, Red, StateSettled)
	place(b, 2, 0, Red, StateSettled)

	clears := stepN(b, 1)

	require.Len(t, clears, 1)
	assert.Equal(t, 1, clears[0].Chain)
	assert.Equal(t, 1, b.ChainCounter(), "a plain clear never grows the counter")
}
