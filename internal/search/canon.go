package search

// canonicalize walks t into [0, period) by repeatedly applying the
// transformation and translation at each period boundary crossed, per
// spec.md §4.2. The transformation is applied about the center of the W×H
// box (ApplyWithSize), since Config.Transformation describes a geometric
// transform of the pattern itself, not of an origin-centered coordinate.
func (w *World) canonicalize(x, y, t int) (int, int, int) {
	period := w.Config.Period
	width, height := w.Config.Width, w.Config.Height
	tr := w.Config.Transformation
	dx, dy := w.Config.DX, w.Config.DY

	for t < 0 {
		t += period
		x, y = tr.Inverse().ApplyWithSize(x, y, width, height)
		x -= dx
		y -= dy
	}
	for t >= period {
		t -= period
		x += dx
		y += dy
		x, y = tr.ApplyWithSize(x, y, width, height)
	}
	return x, y, t
}
