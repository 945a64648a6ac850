package panelpon

// Fixed-point scale factor: 1 cell = 1000 units.
// This allows for sub-cell precision while maintaining determinism.
const Scale = 1000

// HalfBlock is the tolerance used for "same cell" position tests.
// Two blocks closer than this on an axis occupy the same logical cell.
const HalfBlock = Scale / 2

// Fixed represents a fixed-point integer (scaled by Scale).
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// ToCellRounded converts fixed-point to the nearest cell.
func (f Fixed) ToCellRounded() int {
	if f >= 0 {
		return int(f+Scale/2) / Scale
	}
	return int(f-Scale/2) / Scale
}

// Abs returns absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Lerp interpolates from f toward target, step tick out of total.
// The final step lands exactly on the target.
func (f Fixed) Lerp(target Fixed, tick, total int) Fixed {
	if total <= 0 || tick >= total {
		return target
	}
	return f + Fixed(int(target-f)*tick/total)
}

// near reports whether two positions are within the same-cell tolerance.
func near(a, b Fixed) bool {
	return (a - b).Abs() < HalfBlock
}
