package search

// checkPeriod reports whether a just-found solution genuinely has the
// configured period, rejecting it if any proper divisor d of
// gcd-compatible (P, dx, dy) reproduces the same generation-0 pattern at
// the shorter period P/d, per spec.md §4.6.
func (w *World) checkPeriod() bool {
	width, height, period := w.Config.Width, w.Config.Height, w.Config.Period
	dx, dy := w.Config.DX, w.Config.DY

divisors:
	for d := 2; d <= period; d++ {
		if period%d != 0 || dx%d != 0 || dy%d != 0 {
			continue
		}
		p0, dx0, dy0 := period/d, dx/d, dy/d

		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				state0 := w.CellState(x, y, 0)
				state1 := w.CellState(x-dx0, y-dy0, p0)
				if state0 != state1 {
					continue divisors
				}
			}
		}
		return false
	}
	return true
}
