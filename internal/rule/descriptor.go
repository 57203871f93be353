package rule

// MaxNeighborhoodSize bounds the neighbor count fields of a Descriptor to 6
// bits each. spec.md permits a cap of up to 24 and requires the choice to be
// documented; this module uses the full 24-neighbor ceiling (see DESIGN.md).
const MaxNeighborhoodSize = 24

// Descriptor packs the known state of a cell, its successor, and the
// dead/alive counts of its neighborhood into a single uint16:
//
//	bits 10-15: number of known-dead neighbors (0-24)
//	bits  4-9:  number of known-alive neighbors (0-24)
//	bits  2-3:  state of the successor cell (0 = unknown, 1 = dead, 2 = alive)
//	bits  0-1:  state of the current cell (0 = unknown, 1 = dead, 2 = alive)
type Descriptor uint16

func newDescriptor(dead, alive int, successor, current CellState) Descriptor {
	return Descriptor(uint16(dead)<<10 | uint16(alive)<<4 | uint16(successor)<<2 | uint16(current))
}

// NewKnownDescriptor builds the Descriptor of a cell whose entire
// neighborhood and current state are known but whose successor is not —
// exactly the shape Table.Implies needs to compute the next generation of a
// fully-known grid (see internal/simulate).
func NewKnownDescriptor(deadNeighbors, aliveNeighbors int, current CellState) Descriptor {
	return newDescriptor(deadNeighbors, aliveNeighbors, 0, current)
}

// DeadCount returns the number of known-dead neighbors.
func (d Descriptor) DeadCount() int { return int(d>>10) & 0x3f }

// AliveCount returns the number of known-alive neighbors.
func (d Descriptor) AliveCount() int { return int(d>>4) & 0x3f }

// Successor returns the known state of the successor cell, or 0 (unknown).
func (d Descriptor) Successor() CellState { return CellState(d>>2) & 0b11 }

// Current returns the known state of the current cell, or 0 (unknown).
func (d Descriptor) Current() CellState { return CellState(d) & 0b11 }

// IncrementDead increments the dead-neighbor count.
func (d *Descriptor) IncrementDead() { *d += 1 << 10 }

// IncrementAlive increments the alive-neighbor count.
func (d *Descriptor) IncrementAlive() { *d += 1 << 4 }

// DecrementDead decrements the dead-neighbor count.
func (d *Descriptor) DecrementDead() { *d -= 1 << 10 }

// DecrementAlive decrements the alive-neighbor count.
func (d *Descriptor) DecrementAlive() { *d -= 1 << 4 }

// SetSuccessor toggles the successor field to state if it was unknown, or
// back to unknown if it already held state. Callers must only pass a state
// complementary to the field's current knowledge (unknown, or state itself).
func (d *Descriptor) SetSuccessor(state CellState) { *d ^= Descriptor(state) << 2 }

// SetCurrent toggles the current field the same way SetSuccessor does.
func (d *Descriptor) SetCurrent(state CellState) { *d ^= Descriptor(state) }
