package panelpon

// Starting layouts, top row first. Letters are color codes, dots are
// empty cells. Layouts are authored so that no three same-color blocks
// line up and every block rests on the one below it.
var startPatterns = [][]string{
	{
		"..R...",
		"..G..P",
		".RB..G",
		".GRY.B",
		"RBGPYR",
		"GRYBPG",
		"BGRYGB",
	},
	{
		".Y..B.",
		".RG.Y.",
		"YBRGPB",
		"RGYPBR",
		"GYBRGP",
	},
	{
		"R.B.G.",
		"GYRPBY",
		"YGBRYP",
	},
}

// fillStartPattern seeds the board with a randomly chosen layout.
func (b *Board) fillStartPattern() {
	pattern := startPatterns[b.rng.Intn(len(startPatterns))]
	rows := len(pattern)
	for i, line := range pattern {
		row := rows - 1 - i
		for col, ch := range line {
			if col >= b.cfg.Board.Width {
				break
			}
			if color, ok := colorFromRune(ch); ok {
				b.newBlock(ToFixed(col), ToFixed(row), color, StateSettled)
			}
		}
	}
}

func colorFromRune(r rune) (BlockColor, bool) {
	switch r {
	case 'R':
		return Red, true
	case 'G':
		return Green, true
	case 'B':
		return Blue, true
	case 'Y':
		return Yellow, true
	case 'P':
		return Purple, true
	}
	return 0, false
}

// spawnRow generates a full preview row at the given height.
func (b *Board) spawnRow(y Fixed) {
	for col := 0; col < b.cfg.Board.Width; col++ {
		b.newBlock(ToFixed(col), y, b.nextColor(), StateSpawning)
	}
}

// nextColor draws a spawn color. The most recent pick sits in a
// one-slot exclusion window, so two consecutive spawns never share a
// color and a fresh row can never arrive pre-matched.
func (b *Board) nextColor() BlockColor {
	colors := b.cfg.Board.Colors
	if colors < 2 {
		colors = 2
	}
	if colors > MaxColors {
		colors = MaxColors
	}

	avail := make([]BlockColor, 0, colors)
	for c := BlockColor(0); int(c) < colors; c++ {
		if len(b.recentColors) > 0 && b.recentColors[0] == c {
			continue
		}
		avail = append(avail, c)
	}

	pick := avail[b.rng.Intn(len(avail))]
	b.recentColors = append(b.recentColors, pick)
	if len(b.recentColors) > 1 {
		b.recentColors = b.recentColors[1:]
	}
	return pick
}
