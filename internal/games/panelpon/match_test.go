package panelpon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHorizontalRunOfThreeMatches(t *testing.T) {
	b := emptyBoard()
	place(b, 0, 0, Red, StateSettled)
	place(b, 1, 0, Red, StateSettled)
	place(b, 2, 0, Red, StateSettled)

	clears := stepN(b, 1)

	require.Len(t, clears, 1)
	assert.Equal(t, 3, clears[0].Combo)
	assert.Equal(t, 1, clears[0].Chain)
	for _, blk := range b.Blocks() {
		assert.Equal(t, StateMatched, blk.State, "a fresh match flashes for one tick")
	}

	stepN(b, 1)
	for _, blk := range b.Blocks() {
		assert.Equal(t, StateDespawning, blk.State)
	}
}

func TestMaximalRunMarksEveryBlock(t *testing.T) {
	b := emptyBoard()
	for col := range 5 {
		place(b, col, 0, Green, StateSettled)
	}

	clears := stepN(b, 1)

	require.Len(t, clears, 1)
	assert.Equal(t, 5, clears[0].Combo, "a run of five clears as one group of five")
}

func TestVerticalRunMatches(t *testing.T) {
	b := emptyBoard()
	place(b, 1, 0, Blue, StateSettled)
	place(b, 1, 1, Blue, StateSettled)
	place(b, 1, 2, Blue, StateSettled)

	clears := stepN(b, 1)

	require.Len(t, clears, 1)
	assert.Equal(t, 3, clears[0].Combo)
}

func TestLShapeClearsAsOneGroup(t *testing.T) {
	b := emptyBoard()

	// Vertical run in column 0, horizontal run along the bottom,
	// sharing the corner block.
	place(b, 0, 0, Yellow, StateSettled)
	place(b, 0, 1, Yellow, StateSettled)
	place(b, 0, 2, Yellow, StateSettled)
	place(b, 1, 0, Yellow, StateSettled)
	place(b, 2, 0, Yellow, StateSettled)

	clears := stepN(b, 1)

	require.Len(t, clears, 1, "overlapping runs merge into a single clear")
	assert.Equal(t, 5, clears[0].Combo)
}

func TestTwoBlocksDoNotMatch(t *testing.T) {
	b := emptyBoard()
	place(b, 0, 0, Red, StateSettled)
	place(b, 1, 0, Red, StateSettled)
	place(b, 2, 0, Green, StateSettled)

	clears := stepN(b, 5)

	assert.Empty(t, clears)
}

func TestSeparateRunsReportSeparateCombos(t *testing.T) {
	b := emptyBoard()
	place(b, 0, 0, Red, StateSettled)
	place(b, 1, 0, Red, StateSettled)
	place(b, 2, 0, Red, StateSettled)
	place(b, 3, 0, Blue, StateSettled)
	place(b, 4, 0, Blue, StateSettled)
	place(b, 5, 0, Blue, StateSettled)

	clears := stepN(b, 1)

	// Disjoint groups matched on the same tick share one event with
	// the union size: they despawn together as one combo.
	require.Len(t, clears, 1)
	assert.Equal(t, 6, clears[0].Combo)
}

func TestAirborneBlocksNeverMatch(t *testing.T) {
	b := emptyBoard()
	place(b, 0, 0, Red, StateSettled)
	place(b, 1, 0, Red, StateSettled)
	faller := place(b, 2, 0, Red, StateFalling)
	faller.Y = ToFixed(0) // Aligned with the run, but mid-air

	var ev TickEvents
	b.detectMatches(&ev)

	assert.Empty(t, ev.Clears, "falling blocks must not participate in matches")
}

func TestDespawnDurationScalesWithCombo(t *testing.T) {
	b := emptyBoard()
	place(b, 0, 0, Red, StateSettled)
	place(b, 1, 0, Red, StateSettled)
	place(b, 2, 0, Red, StateSettled)

	unit := b.cfg.Timing.DespawnUnitTicks

	// One flash tick, then combo x unit timer ticks.
	stepN(b, 3*unit)
	require.Len(t, b.Blocks(), 3, "blocks must survive until the timer expires")

	stepN(b, 1)
	assert.Empty(t, b.Blocks(), "blocks must be removed when the timer expires")
}
