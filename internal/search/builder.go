package search

import (
	"sort"

	"github.com/telepair/lifesearch/internal/rule"
	"github.com/telepair/lifesearch/internal/symmetry"
)

// build constructs the lattice in the order spec.md §4.3 mandates: allocate,
// mark the front, wire neighborhoods, wire predecessor/successor, wire
// symmetry peers, thread the search order, then seed known cells.
func (w *World) build() {
	w.allocate()
	w.markFront()
	w.wireNeighborhoods()
	w.wirePredecessorSuccessor()
	w.wireSymmetry()
	w.threadSearchOrder()
	w.seedKnown()
}

func (w *World) allocate() {
	total := w.dimX * w.dimY * w.Config.Period
	w.cells = make([]Cell, total)
	r := w.radius
	period := w.Config.Period
	for y := -r; y < w.Config.Height+r; y++ {
		for x := -r; x < w.Config.Width+r; x++ {
			for t := 0; t < period; t++ {
				idx, _ := w.cellIndex(x, y, t)
				w.cells[idx] = newCell(t)
			}
		}
	}
}

// markFront marks the cells whose state must not be entirely Dead, per
// spec.md §4.7. The choices below follow the spec's prose for each search
// order; the fallback (entire generation-0 box) is always a safe, if less
// aggressively pruning, choice.
func (w *World) markFront() {
	width, height := w.Config.Width, w.Config.Height
	dx, dy := w.Config.DX, w.Config.DY
	sym := w.Config.Symmetry
	hasDiagonalWidth := w.Config.DiagonalWidth != nil

	markBox := func(x0, x1, y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				idx, ok := w.cellIndex(x, y, 0)
				if ok {
					w.cells[idx].IsFront = true
					w.frontCount++
				}
			}
		}
	}

	horizontalReflectionSubgroup := sym == symmetry.D2H || sym == symmetry.D4O || sym == symmetry.D8
	verticalReflectionSubgroup := sym == symmetry.D2V || sym == symmetry.D4O || sym == symmetry.D8

	switch w.Config.SearchOrder {
	case RowFirst:
		if horizontalReflectionSubgroup && !hasDiagonalWidth {
			effectiveWidth := width
			if dx == 0 {
				effectiveWidth = (width + 1) / 2
			}
			if dx == 0 && dy >= 0 {
				y0 := dy - 1
				if y0 < 0 {
					y0 = 0
				}
				markBox(0, effectiveWidth, y0, y0+1)
			} else {
				markBox(0, effectiveWidth, 0, height)
			}
			return
		}
	case ColumnFirst:
		if verticalReflectionSubgroup && !hasDiagonalWidth {
			effectiveHeight := height
			if dy == 0 {
				effectiveHeight = (height + 1) / 2
			}
			if dy == 0 && dx >= 0 {
				x0 := dx - 1
				if x0 < 0 {
					x0 = 0
				}
				markBox(x0, x0+1, 0, effectiveHeight)
			} else {
				markBox(0, width, 0, effectiveHeight)
			}
			return
		}
	case Diagonal:
		markBox(0, width, 0, 1)
		if dx != dy {
			markBox(0, 1, 0, height)
		}
		return
	}

	markBox(0, width, 0, height)
}

// wireNeighborhoods sets Cell.Neighborhood for every cell and accounts for
// out-of-world neighbors in the initial descriptor.
func (w *World) wireNeighborhoods() {
	offsets := w.Rule.Offsets
	n := len(offsets)
	r := w.radius

	for y := -r; y < w.Config.Height+r; y++ {
		for x := -r; x < w.Config.Width+r; x++ {
			for t := 0; t < w.Config.Period; t++ {
				idx, _ := w.cellIndex(x, y, t)
				cell := &w.cells[idx]
				cell.Neighborhood = make([]int, n)
				for i, off := range offsets {
					nIdx, ok := w.cellIndex(x+off.X, y+off.Y, t)
					if ok {
						cell.Neighborhood[i] = nIdx
					} else {
						cell.Neighborhood[i] = noCell
						cell.descriptor.IncrementDead()
					}
				}
			}
		}
	}
}

// wirePredecessorSuccessor sets Cell.Predecessor/Successor to the
// canonicalized (x, y, t-1)/(x, y, t+1) cell, and for cells with no
// successor (a generation P-1 cell whose translated or transformed
// successor lies outside the world) pre-sets the descriptor's successor
// field to Dead.
func (w *World) wirePredecessorSuccessor() {
	r := w.radius
	for y := -r; y < w.Config.Height+r; y++ {
		for x := -r; x < w.Config.Width+r; x++ {
			for t := 0; t < w.Config.Period; t++ {
				idx, _ := w.cellIndex(x, y, t)
				cell := &w.cells[idx]

				if pIdx, ok := w.cellAt(x, y, t-1); ok {
					cell.Predecessor = pIdx
				}
				if sIdx, ok := w.cellAt(x, y, t+1); ok {
					cell.Successor = sIdx
				} else {
					cell.descriptor.SetSuccessor(rule.Dead)
				}
			}
		}
	}
}

// wireSymmetry sets Cell.Symmetry to the in-world peers forced equal to
// each cell by the configured symmetry group.
func (w *World) wireSymmetry() {
	transformations := w.Config.Symmetry.Transformations()
	r := w.radius

	for y := -r; y < w.Config.Height+r; y++ {
		for x := -r; x < w.Config.Width+r; x++ {
			for t := 0; t < w.Config.Period; t++ {
				idx, _ := w.cellIndex(x, y, t)
				cell := &w.cells[idx]

				seen := make(map[int]bool)
				var peers []int
				for _, tr := range transformations {
					if tr == symmetry.R0 {
						continue
					}
					gx, gy := tr.ApplyWithSize(x, y, w.Config.Width, w.Config.Height)
					pIdx, ok := w.cellIndex(gx, gy, t)
					if !ok || pIdx == idx || seen[pIdx] {
						continue
					}
					seen[pIdx] = true
					peers = append(peers, pIdx)
				}
				sort.Ints(peers)
				cell.Symmetry = peers
			}
		}
	}
}

// threadSearchOrder walks cells in reverse of the configured order, pushing
// each still-unknown, in-bounds (and, with a diagonal width, in-band) cell
// onto the head of the Next-linked list; w.start ends up at the first cell
// to guess.
func (w *World) threadSearchOrder() {
	w.start = noCell

	push := func(x, y int) {
		idx, ok := w.cellIndex(x, y, 0)
		if !ok {
			return
		}
		if x < 0 || x >= w.Config.Width || y < 0 || y >= w.Config.Height {
			return
		}
		if d := w.Config.DiagonalWidth; d != nil && abs(x-y) >= *d {
			return
		}
		cell := &w.cells[idx]
		if cell.Known() {
			return
		}
		cell.Next = w.start
		w.start = idx
	}

	width, height := w.Config.Width, w.Config.Height
	switch w.Config.SearchOrder {
	case RowFirst:
		for y := height - 1; y >= 0; y-- {
			for x := width - 1; x >= 0; x-- {
				push(x, y)
			}
		}
	case ColumnFirst:
		for x := width - 1; x >= 0; x-- {
			for y := height - 1; y >= 0; y-- {
				push(x, y)
			}
		}
	case Diagonal:
		maxSum := width + height - 2
		for sum := maxSum; sum >= 0; sum-- {
			for x := width - 1; x >= 0; x-- {
				y := sum - x
				if y < 0 || y >= height {
					continue
				}
				push(x, y)
			}
		}
	}
}

// seedKnown marks every cell outside the bounding box, outside the diagonal
// band, or without a predecessor (a generation-0 cell whose translated or
// transformed predecessor lies outside the world) as Dead with Reason=Known.
func (w *World) seedKnown() {
	r := w.radius
	for y := -r; y < w.Config.Height+r; y++ {
		for x := -r; x < w.Config.Width+r; x++ {
			outOfBounds := x < 0 || x >= w.Config.Width || y < 0 || y >= w.Config.Height
			outOfBand := false
			if d := w.Config.DiagonalWidth; d != nil {
				outOfBand = abs(x-y) >= *d
			}

			for t := 0; t < w.Config.Period; t++ {
				idx, _ := w.cellIndex(x, y, t)
				cell := &w.cells[idx]
				if cell.Known() {
					continue
				}
				if outOfBounds || outOfBand || cell.Predecessor == noCell {
					w.setCell(idx, rule.Dead, Known)
				}
			}
		}
	}
}
