package rule

import (
	"errors"
	"fmt"
)

// ErrNeighborhoodTooLarge is returned when a rule's neighborhood exceeds
// MaxNeighborhoodSize.
var ErrNeighborhoodTooLarge = errors.New("rule: neighborhood size is too large")

// tableSize covers every possible 16-bit Descriptor value.
const tableSize = 1 << 16

// Table is the lookup table and metadata of a parsed outer-totalistic rule.
type Table struct {
	Name             string
	NeighborhoodSize int
	Offsets          []Offset
	Radius           int

	table []Implication
}

// NewTable builds and initializes the implication table for a rule whose
// dead cells come to life with exactly the neighbor counts in born, and
// whose live cells survive with exactly the neighbor counts in survive.
func NewTable(name string, neighborhoodType NeighborhoodType, radius int, born, survive []int) (*Table, error) {
	offsets := neighborhoodType.Offsets(radius)
	if len(offsets) > MaxNeighborhoodSize {
		return nil, fmt.Errorf("%w: %d neighbors (max %d)", ErrNeighborhoodTooLarge, len(offsets), MaxNeighborhoodSize)
	}

	t := &Table{
		Name:             name,
		NeighborhoodSize: len(offsets),
		Offsets:          offsets,
		Radius:           radius,
		table:            make([]Implication, tableSize),
	}
	t.init(born, survive)
	return t, nil
}

// Implies returns the implication of d, as computed at table construction
// time.
func (t *Table) Implies(d Descriptor) Implication {
	return t.table[d]
}

// NextState returns the state a cell currently in state current, surrounded
// by exactly deadNeighbors dead and aliveNeighbors alive neighbors,
// transitions to. deadNeighbors+aliveNeighbors must equal t.NeighborhoodSize
// (the caller knows every neighbor), in which case the implication is always
// resolved to SuccessorAlive or SuccessorDead.
func (t *Table) NextState(deadNeighbors, aliveNeighbors int, current CellState) CellState {
	implication := t.Implies(NewKnownDescriptor(deadNeighbors, aliveNeighbors, current))
	if implication.Has(SuccessorAlive) {
		return Alive
	}
	return Dead
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func (t *Table) init(born, survive []int) {
	t.deduceSuccessor(born, survive)
	t.deduceConflict()
	t.deduceCurrent()
	t.deduceNeighborhood()
}

// deduceSuccessor fills in SuccessorAlive/SuccessorDead for every descriptor
// where the successor is still unknown, working outward from the
// all-neighbors-known case to descriptors with one or more unknown
// neighbors.
func (t *Table) deduceSuccessor(born, survive []int) {
	n := t.NeighborhoodSize

	for dead := 0; dead <= n; dead++ {
		alive := n - dead

		descDead := newDescriptor(dead, alive, 0, Dead)
		if containsInt(born, alive) {
			t.table[descDead] |= SuccessorAlive
		} else {
			t.table[descDead] |= SuccessorDead
		}

		descAlive := newDescriptor(dead, alive, 0, Alive)
		if containsInt(survive, alive) {
			t.table[descAlive] |= SuccessorAlive
		} else {
			t.table[descAlive] |= SuccessorDead
		}

		descUnknown := newDescriptor(dead, alive, 0, 0)
		if !containsInt(born, alive) && !containsInt(survive, alive) {
			t.table[descUnknown] |= SuccessorDead
		}
	}

	currents := []CellState{0, Dead, Alive}
	for unknown := 1; unknown <= n; unknown++ {
		for dead := 0; dead <= n-unknown; dead++ {
			alive := n - dead - unknown

			for _, current := range currents {
				desc := newDescriptor(dead, alive, 0, current)
				oneMoreDead := newDescriptor(dead+1, alive, 0, current)
				oneMoreAlive := newDescriptor(dead, alive+1, 0, current)

				if t.Implies(oneMoreDead) == t.Implies(oneMoreAlive) {
					t.table[desc] = t.Implies(oneMoreDead)
				}
			}
		}
	}
}

// deduceConflict marks descriptors Conflict where a known successor
// disagrees with the successor deduced above.
func (t *Table) deduceConflict() {
	n := t.NeighborhoodSize
	currents := []CellState{0, Dead, Alive}

	for dead := 0; dead <= n; dead++ {
		for alive := 0; alive <= n-dead; alive++ {
			for _, current := range currents {
				desc := newDescriptor(dead, alive, 0, current)
				implication := t.Implies(desc)

				if implication.Has(SuccessorAlive) {
					descDead := newDescriptor(dead, alive, Dead, current)
					t.table[descDead] = Conflict
				}
				if implication.Has(SuccessorDead) {
					descAlive := newDescriptor(dead, alive, Alive, current)
					t.table[descAlive] = Conflict
				}
			}
		}
	}
}

// deduceCurrent marks CurrentAlive/CurrentDead where fixing the current
// cell to the opposite state would conflict.
func (t *Table) deduceCurrent() {
	n := t.NeighborhoodSize
	successors := []CellState{Dead, Alive}

	for dead := 0; dead <= n; dead++ {
		for alive := 0; alive <= n-dead; alive++ {
			for _, successor := range successors {
				desc := newDescriptor(dead, alive, successor, 0)
				currentDead := newDescriptor(dead, alive, successor, Dead)
				currentAlive := newDescriptor(dead, alive, successor, Alive)

				if t.Implies(currentDead).Has(Conflict) {
					t.table[desc] |= CurrentAlive
				}
				if t.Implies(currentAlive).Has(Conflict) {
					t.table[desc] |= CurrentDead
				}
			}
		}
	}
}

// deduceNeighborhood marks NeighborhoodAlive/NeighborhoodDead where fixing
// an unknown neighbor to the opposite state would conflict.
func (t *Table) deduceNeighborhood() {
	n := t.NeighborhoodSize
	successors := []CellState{Dead, Alive}
	currents := []CellState{0, Dead, Alive}

	for unknown := 1; unknown <= n; unknown++ {
		for dead := 0; dead <= n-unknown; dead++ {
			alive := n - dead - unknown

			for _, successor := range successors {
				for _, current := range currents {
					desc := newDescriptor(dead, alive, successor, current)
					oneMoreDead := newDescriptor(dead+1, alive, successor, current)
					oneMoreAlive := newDescriptor(dead, alive+1, successor, current)

					if t.Implies(oneMoreDead).Has(Conflict) {
						t.table[desc] |= NeighborhoodAlive
					}
					if t.Implies(oneMoreAlive).Has(Conflict) {
						t.table[desc] |= NeighborhoodDead
					}
				}
			}
		}
	}
}
