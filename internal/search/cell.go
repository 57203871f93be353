package search

import "github.com/telepair/lifesearch/internal/rule"

// noCell marks an absent cell reference (out of world, or "no predecessor").
const noCell = -1

// Cell is one lattice node (x, y, t). All cross-references are indices into
// World.cells rather than pointers, per the index-graph strategy spec.md
// allows for languages without a borrow checker.
type Cell struct {
	Generation int
	state      rule.CellState // zero value means unknown
	descriptor rule.Descriptor

	Predecessor int
	Successor   int
	Neighborhood []int
	Symmetry     []int
	Next         int
	IsFront      bool
}

func newCell(generation int) Cell {
	return Cell{
		Generation:  generation,
		Predecessor: noCell,
		Successor:   noCell,
		Next:        noCell,
	}
}

// State returns the cell's known state, or 0 if unknown.
func (c *Cell) State() rule.CellState { return c.state }

// Known reports whether the cell's state has been determined.
func (c *Cell) Known() bool { return c.state != 0 }

// Descriptor returns the cell's current neighborhood descriptor.
func (c *Cell) Descriptor() rule.Descriptor { return c.descriptor }

// Reason records why a cell's state was set.
type Reason int

const (
	Known Reason = iota
	Deduced
	Guessed
)

func (r Reason) String() string {
	switch r {
	case Known:
		return "known"
	case Deduced:
		return "deduced"
	case Guessed:
		return "guessed"
	default:
		return "invalid"
	}
}
