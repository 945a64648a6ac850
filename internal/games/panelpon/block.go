package panelpon

// BlockColor identifies one of the five block colors.
type BlockColor int

const (
	Red BlockColor = iota
	Green
	Blue
	Yellow
	Purple

	// MaxColors is the number of distinct colors available.
	MaxColors = 5
)

// String returns a single-letter color code, used by tests and debug dumps.
func (c BlockColor) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Yellow:
		return "Y"
	case Purple:
		return "P"
	default:
		return "?"
	}
}

// BlockState is the lifecycle state of a block. A block is in exactly
// one state at a time; stage functions own the transitions.
type BlockState int

const (
	// StateSettled blocks are at rest on the grid. Only settled blocks
	// can be swapped, matched, or picked up by the fall check.
	StateSettled BlockState = iota

	// StateSpawning blocks are in the preview rows below the board.
	// They rise with the stack and settle when they enter the board.
	StateSpawning

	// StateMoving blocks are interpolating horizontally during a swap.
	StateMoving

	// StateMatched blocks have been claimed by the match detector.
	// The state lasts one tick, a visible flash, before the despawn
	// timer takes over.
	StateMatched

	// StateDespawning blocks are running their despawn timer and are
	// removed from the board when it expires.
	StateDespawning

	// StateFallPending blocks lost their support this tick.
	StateFallPending

	// StateFloating blocks hang in place briefly before falling.
	StateFloating

	// StateFalling blocks descend until they land on something.
	StateFalling

	// StateFixedPending blocks have landed and are waiting for their
	// falling column to be snapped back onto the grid.
	StateFixedPending
)

// String returns a human-readable state name.
func (s BlockState) String() string {
	switch s {
	case StateSettled:
		return "Settled"
	case StateSpawning:
		return "Spawning"
	case StateMoving:
		return "Moving"
	case StateMatched:
		return "Matched"
	case StateDespawning:
		return "Despawning"
	case StateFallPending:
		return "FallPending"
	case StateFloating:
		return "Floating"
	case StateFalling:
		return "Falling"
	case StateFixedPending:
		return "FixedPending"
	default:
		return "Unknown"
	}
}

// Block is a single panel on the board. Positions are fixed-point with
// the cell origin at the bottom-left: X = column * Scale when aligned,
// Y = row * Scale when aligned. Y grows upward. During a lift the whole
// stack carries a shared fractional offset.
type Block struct {
	ID    int
	X, Y  Fixed
	Color BlockColor
	State BlockState

	// Moving state: horizontal interpolation.
	MoveFrom   Fixed
	MoveTarget Fixed
	MoveTick   int

	// Floating state: ticks left before the fall starts.
	FloatTicks int

	// Despawning state: ticks left before removal.
	DespawnTicks int

	// Chain marks the block as chain-eligible: if it is matched while
	// the flag is set, the clear extends the current chain. The flag
	// survives ChainTicks ticks of rest and any time spent airborne.
	Chain      bool
	ChainTicks int
}

// Col returns the block's nearest column.
func (b *Block) Col() int {
	return b.X.ToCellRounded()
}

// Row returns the block's nearest row.
func (b *Block) Row() int {
	return b.Y.ToCellRounded()
}

// Airborne reports whether the block is part of a fall in progress.
func (b *Block) Airborne() bool {
	switch b.State {
	case StateFallPending, StateFloating, StateFalling:
		return true
	}
	return false
}

// Resting reports whether the block can support a block above it and
// act as a landing surface for falling blocks.
func (b *Block) Resting() bool {
	return !b.Airborne()
}
