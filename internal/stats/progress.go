package stats

// Wall describes the annual total measured against the ceiling
type Wall struct {
	Total   int
	Ceiling int
	// Fraction is Total/Ceiling clamped to [0, 1] for drawing a bar
	Fraction float64
	// Percent is the unclamped percentage of the ceiling used
	Percent float64
	// Remaining is Ceiling-Total; negative once the ceiling is crossed
	Remaining int
	// Warning is set when the unclamped fraction exceeds the threshold
	Warning bool
}

// Progress measures total against ceiling. A non-positive ceiling reports a
// full bar in the warning state.
func Progress(total, ceiling int, threshold float64) Wall {
	p := Wall{Total: total, Ceiling: ceiling, Remaining: ceiling - total}
	if ceiling <= 0 {
		p.Fraction = 1
		p.Warning = true
		return p
	}

	raw := float64(total) / float64(ceiling)
	p.Percent = raw * 100
	p.Fraction = min(max(raw, 0), 1)
	p.Warning = raw > threshold
	return p
}
