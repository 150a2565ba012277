package stats

// Bar is one column of the per-category completion chart.
type Bar struct {
	Label string
	// Height is in cells, 0..maxHeight.
	Height int
	// Percent is the rounded label drawn above the bar.
	Percent int
}

// Bars lays out one bar per category. A bar's height is proportional to
// its completion percentage, truncated to whole cells.
func (s Stats) Bars(maxHeight int) []Bar {
	if maxHeight < 0 {
		maxHeight = 0
	}
	out := make([]Bar, 0, len(s.Categories))
	for _, c := range s.Categories {
		h := int(c.Percentage / 100 * float64(maxHeight))
		if h > maxHeight {
			h = maxHeight
		}
		out = append(out, Bar{Label: c.Category, Height: h, Percent: c.Rounded()})
	}
	return out
}
