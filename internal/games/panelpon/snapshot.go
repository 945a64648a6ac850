package panelpon

// Snapshot contains the complete game state for replay/save testing.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64
	Score    int
	MaxChain int
	Mode     int
	GameOver bool
	Paused   bool
	TimeLeft int

	CursorX, CursorY int
	Marker           int
	LiftCountdown    int
	LiftActive       bool
	ManualLift       bool
	ChainCounter     int
	TopOut           bool
	NextID           int
	RecentColor      int // -1 when the exclusion window is empty

	// Block state (each block is 12 ints: ID, X, Y, Color, State,
	// MoveFrom, MoveTarget, MoveTick, FloatTicks, DespawnTicks,
	// Chain, ChainTicks)
	BlockCount int
	BlockData  []int
}

const blockInts = 12

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	b := g.board

	blockData := make([]int, len(b.blocks)*blockInts)
	for i, blk := range b.blocks {
		idx := i * blockInts
		blockData[idx] = blk.ID
		blockData[idx+1] = int(blk.X)
		blockData[idx+2] = int(blk.Y)
		blockData[idx+3] = int(blk.Color)
		blockData[idx+4] = int(blk.State)
		blockData[idx+5] = int(blk.MoveFrom)
		blockData[idx+6] = int(blk.MoveTarget)
		blockData[idx+7] = blk.MoveTick
		blockData[idx+8] = blk.FloatTicks
		blockData[idx+9] = blk.DespawnTicks
		if blk.Chain {
			blockData[idx+10] = 1
		}
		blockData[idx+11] = blk.ChainTicks
	}

	recent := -1
	if len(b.recentColors) > 0 {
		recent = int(b.recentColors[0])
	}

	return Snapshot{
		Tick:     uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:    g.score,
		MaxChain: g.maxChain,
		Mode:     int(g.mode),
		GameOver: g.gameOver,
		Paused:   g.paused,
		TimeLeft: g.timeLeft,

		CursorX:       int(b.CursorX),
		CursorY:       int(b.CursorY),
		Marker:        int(b.marker),
		LiftCountdown: b.liftCountdown,
		LiftActive:    b.liftActive,
		ManualLift:    b.manualLift,
		ChainCounter:  b.chainCounter,
		TopOut:        b.topOut,
		NextID:        b.nextID,
		RecentColor:   recent,

		BlockCount: len(b.blocks),
		BlockData:  blockData,
	}
}

// ApplySnapshot restores game state from a snapshot.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.score = snap.Score
	g.maxChain = snap.MaxChain
	g.mode = GameMode(snap.Mode)
	g.gameOver = snap.GameOver
	g.paused = snap.Paused
	g.timeLeft = snap.TimeLeft

	b := g.board
	b.CursorX = Fixed(snap.CursorX)
	b.CursorY = Fixed(snap.CursorY)
	b.marker = Fixed(snap.Marker)
	b.liftCountdown = snap.LiftCountdown
	b.liftActive = snap.LiftActive
	b.manualLift = snap.ManualLift
	b.chainCounter = snap.ChainCounter
	b.topOut = snap.TopOut
	b.nextID = snap.NextID

	b.recentColors = nil
	if snap.RecentColor >= 0 {
		b.recentColors = []BlockColor{BlockColor(snap.RecentColor)}
	}

	b.blocks = make([]*Block, 0, snap.BlockCount)
	for i := range snap.BlockCount {
		idx := i * blockInts
		if idx+blockInts > len(snap.BlockData) {
			break
		}
		b.blocks = append(b.blocks, &Block{
			ID:           snap.BlockData[idx],
			X:            Fixed(snap.BlockData[idx+1]),
			Y:            Fixed(snap.BlockData[idx+2]),
			Color:        BlockColor(snap.BlockData[idx+3]),
			State:        BlockState(snap.BlockData[idx+4]),
			MoveFrom:     Fixed(snap.BlockData[idx+5]),
			MoveTarget:   Fixed(snap.BlockData[idx+6]),
			MoveTick:     snap.BlockData[idx+7],
			FloatTicks:   snap.BlockData[idx+8],
			DespawnTicks: snap.BlockData[idx+9],
			Chain:        snap.BlockData[idx+10] == 1,
			ChainTicks:   snap.BlockData[idx+11],
		})
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MaxChain) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)     //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}
	if snap.Paused {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.TimeLeft)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Marker)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LiftCountdown) //#nosec G115 -- hash computation
	if snap.LiftActive {
		h = h*31 + 1
	}
	if snap.ManualLift {
		h = h*31 + 1
	}
	if snap.TopOut {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.ChainCounter)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextID)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RecentColor+1) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlockCount)    //#nosec G115 -- hash computation

	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
