package rule

import "sort"

// NeighborhoodType selects which cells around a center count as neighbors.
type NeighborhoodType int

const (
	Moore NeighborhoodType = iota
	VonNeumann
	Cross
)

// Offset is a relative (dx, dy) neighbor position.
type Offset struct{ X, Y int }

// Offsets returns the neighbor offsets of t at the given radius, sorted in
// (x, y) lexical order.
func (t NeighborhoodType) Offsets(radius int) []Offset {
	var offsets []Offset
	switch t {
	case Moore:
		for x := -radius; x <= radius; x++ {
			for y := -radius; y <= radius; y++ {
				if x != 0 || y != 0 {
					offsets = append(offsets, Offset{x, y})
				}
			}
		}
	case VonNeumann:
		for x := -radius; x <= radius; x++ {
			for y := -radius; y <= radius; y++ {
				if abs(x)+abs(y) <= radius && (x != 0 || y != 0) {
					offsets = append(offsets, Offset{x, y})
				}
			}
		}
	case Cross:
		for x := -radius; x <= radius; x++ {
			if x != 0 {
				offsets = append(offsets, Offset{x, 0})
			}
		}
		for y := -radius; y <= radius; y++ {
			if y != 0 {
				offsets = append(offsets, Offset{0, y})
			}
		}
	}
	sort.Slice(offsets, func(i, j int) bool {
		if offsets[i].X != offsets[j].X {
			return offsets[i].X < offsets[j].X
		}
		return offsets[i].Y < offsets[j].Y
	})
	return offsets
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func (t NeighborhoodType) String() string {
	switch t {
	case Moore:
		return "Moore"
	case VonNeumann:
		return "VonNeumann"
	case Cross:
		return "Cross"
	default:
		return "Unknown"
	}
}
